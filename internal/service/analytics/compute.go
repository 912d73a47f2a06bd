package analytics

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// TopKeywordsLimit caps AnalyticsSnapshot.TopKeywords.
const TopKeywordsLimit = 10

const minKeywordLength = 4

var wordPattern = regexp.MustCompile(`\b(\w+)\b`)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "in": {}, "on": {}, "for": {}, "with": {},
	"of": {}, "to": {}, "and": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"it": {}, "i": {}, "you": {}, "he": {}, "she": {}, "they": {}, "we": {},
	"about": {}, "as": {}, "e.g.": {}, "like": {},
}

// Compute derives usage statistics from snapshots of the history and the
// client registry. The result depends only on its arguments; ties keep the
// order in which values were first seen while walking history newest first.
func Compute(history []domain.HistoryItem, clients []domain.Client) domain.AnalyticsSnapshot {
	snap := domain.AnalyticsSnapshot{
		TotalGenerations: len(history),
		TotalClients:     len(clients),
		ByContentType:    countContentTypes(history),
		TopKeywords:      topKeywords(history, TopKeywordsLimit),
	}
	if len(snap.ByContentType) > 0 {
		snap.MostUsed = snap.ByContentType[0].ContentType
	}
	return snap
}

func countContentTypes(history []domain.HistoryItem) []domain.ContentTypeCount {
	counts := []domain.ContentTypeCount{}
	index := make(map[domain.ContentType]int)

	for _, item := range history {
		i, ok := index[item.ContentType]
		if !ok {
			i = len(counts)
			index[item.ContentType] = i
			counts = append(counts, domain.ContentTypeCount{
				ContentType: item.ContentType,
				Label:       item.ContentType.Label(),
			})
		}
		counts[i].Count++
	}

	slices.SortStableFunc(counts, func(a, b domain.ContentTypeCount) int {
		return b.Count - a.Count
	})
	return counts
}

func topKeywords(history []domain.HistoryItem, limit int) []domain.KeywordCount {
	counts := []domain.KeywordCount{}
	index := make(map[string]int)

	for _, item := range history {
		for _, word := range keywords(item.Input) {
			i, ok := index[word]
			if !ok {
				i = len(counts)
				index[word] = i
				counts = append(counts, domain.KeywordCount{Keyword: word})
			}
			counts[i].Count++
		}
	}

	slices.SortStableFunc(counts, func(a, b domain.KeywordCount) int {
		return b.Count - a.Count
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// keywords tokenizes the JSON rendering of an input map. Keys are part of
// the text, as are the values.
func keywords(input map[string]string) []string {
	if input == nil {
		input = map[string]string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(input); err != nil {
		return nil
	}
	raw := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	var out []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(string(raw)), -1) {
		if len(word) < minKeywordLength || isNumeric(word) {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		out = append(out, word)
	}
	return out
}

// isNumeric reports whether a word token reads entirely as a number,
// including exponent and 0x/0o/0b forms.
func isNumeric(word string) bool {
	if word == "" || word[0] < '0' || word[0] > '9' {
		return false
	}
	if _, err := strconv.ParseFloat(word, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return true
	}
	_, err := strconv.ParseUint(word, 0, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
