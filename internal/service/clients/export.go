package clients

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// Download filenames for exported registries.
const (
	ExportCSVFilename  = "clients_export.csv"
	ExportXLSXFilename = "clients_export.xlsx"
)

const xlsxSheet = "Clients"

var exportHeader = []string{"name", "company", "email", "notes"}

func (s *Service) snapshotForExport(ctx context.Context) ([]domain.Client, error) {
	clients := s.List(ctx)
	if len(clients) == 0 {
		return nil, domain.NewValidationError("clients", "There are no clients to export.")
	}
	return clients, nil
}

// ExportCSV renders the registry as CSV with the columns name, company,
// email, notes. Lines are joined with "\n" and there is no trailing newline.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	clients, err := s.snapshotForExport(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(clients)+1)
	lines = append(lines, strings.Join(exportHeader, ","))
	for _, c := range clients {
		lines = append(lines, strings.Join([]string{
			escapeCSVField(c.Name),
			escapeCSVField(c.Company),
			escapeCSVField(c.Email),
			escapeCSVField(c.Notes),
		}, ","))
	}

	s.log.InfoContext(ctx, "clients exported", slog.String("format", "csv"), slog.Int("clients", len(clients)))
	return []byte(strings.Join(lines, "\n")), nil
}

// escapeCSVField quotes a field only when it contains a delimiter, a quote or
// a line break, doubling interior quotes.
func escapeCSVField(v string) string {
	if !strings.ContainsAny(v, ",\"\n\r") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// ExportXLSX renders the registry as a single-sheet workbook with the same
// columns as ExportCSV.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	clients, err := s.snapshotForExport(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range exportHeader {
		if err := setCell(f, col+1, 1, h); err != nil {
			return nil, err
		}
	}
	for i, c := range clients {
		row := i + 2
		for col, v := range []string{c.Name, c.Company, c.Email, c.Notes} {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.log.InfoContext(ctx, "clients exported", slog.String("format", "xlsx"), slog.Int("clients", len(clients)))
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, v string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStr(xlsxSheet, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
