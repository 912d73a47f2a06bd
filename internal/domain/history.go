package domain

import "time"

// HistoryTimestampLayout renders HistoryItem.Timestamp for display.
const HistoryTimestampLayout = "1/2/2006, 3:04:05 PM"

// HistoryItem records one successful generation. Items are never mutated
// after creation.
//
// ID is the creation time in Unix milliseconds. Two items created within the
// same millisecond share an ID.
type HistoryItem struct {
	ID          string            `json:"id"`
	ContentType ContentType       `json:"content_type"`
	Input       map[string]string `json:"input"`
	Output      Output            `json:"output"`
	Timestamp   string            `json:"timestamp"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Collection keys in the key-value store. Each key holds one full snapshot.
const (
	KeyHistory      = "generationHistory"
	KeyClients      = "clients"
	KeySMTPSettings = "smtpSettings"
	KeySession      = "session"
)
