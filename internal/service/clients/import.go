package clients

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportResult reports the outcome of ImportCSV. Invalid rows lack a name or
// an email; Skipped rows repeat an email already known.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Invalid  int `json:"invalid"`
}

type columnIndex struct {
	name, company, email, notes int
}

func (ci columnIndex) value(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// ImportCSV adds the clients from a CSV document with a header row. Header
// names are matched case-insensitively and name and email are required.
// Quoted fields may contain delimiters and line breaks.
//
// Rows whose email already exists in the registry or earlier in the file are
// skipped. The accepted rows are reversed and placed in front of the existing
// clients, then the registry is saved once. A malformed document aborts the
// import without changes.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	records, err := readRecords(r)
	if err != nil {
		return ImportResult{}, err
	}
	if len(records) < 2 {
		return ImportResult{}, domain.NewValidationError("file", "CSV file is empty or contains only a header.")
	}

	cols, err := parseHeader(records[0])
	if err != nil {
		return ImportResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.clients))
	for _, c := range s.clients {
		seen[strings.ToLower(c.Email)] = struct{}{}
	}

	var (
		result ImportResult
		batch  []domain.Client
	)
	for _, record := range records[1:] {
		name := cols.value(record, cols.name)
		email := cols.value(record, cols.email)
		if name == "" || email == "" {
			result.Invalid++
			continue
		}

		key := strings.ToLower(email)
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}

		batch = append(batch, domain.Client{
			ID:      s.newID(),
			Name:    name,
			Company: cols.value(record, cols.company),
			Email:   email,
			Notes:   cols.value(record, cols.notes),
		})
	}
	result.Imported = len(batch)

	if result.Imported > 0 {
		slices.Reverse(batch)
		s.clients = append(batch, s.clients...)
		s.persistLocked(ctx, "import")
	}

	s.log.InfoContext(ctx, "clients imported",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("invalid", result.Invalid),
	)

	return result, nil
}

func readRecords(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewValidationError("file", "An error occurred while parsing the CSV file: "+err.Error())
	}

	records := all[:0]
	for _, rec := range all {
		if !blankRecord(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func parseHeader(header []string) (columnIndex, error) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), `"`, "")
	}

	cols := columnIndex{
		name:    slices.Index(names, "name"),
		company: slices.Index(names, "company"),
		email:   slices.Index(names, "email"),
		notes:   slices.Index(names, "notes"),
	}
	if cols.name < 0 || cols.email < 0 {
		return columnIndex{}, domain.NewValidationError("file", `CSV header must contain "name" and "email" columns.`)
	}
	return cols, nil
}
