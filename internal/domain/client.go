package domain

import "github.com/google/uuid"

// Client is a contact record in the client registry. Email uniqueness is
// only enforced by bulk import.
type Client struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
	Email   string    `json:"email"`
	Notes   string    `json:"notes"`
}
