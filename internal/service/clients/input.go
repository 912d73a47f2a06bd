package clients

import (
	"strings"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// ClientInput is the form payload for Add and Update.
type ClientInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
}

func (i ClientInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ClientInput) toClient() domain.Client {
	return domain.Client{
		Name:    strings.TrimSpace(i.Name),
		Company: strings.TrimSpace(i.Company),
		Email:   strings.TrimSpace(i.Email),
		Notes:   strings.TrimSpace(i.Notes),
	}
}
