package studio

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// Selectable values. The first entry of each list is the default.
var (
	SocialPlatforms = []string{"Facebook", "Twitter", "LinkedIn", "Instagram"}
	Tones           = []string{"Professional", "Casual", "Witty", "Enthusiastic"}
	AdPlatforms     = []string{"Google Ads", "Facebook Ads", "LinkedIn Ads"}
)

// IdeasInput holds the parameters for content ideas.
type IdeasInput struct {
	Topic string `json:"topic"`
}

// Validate checks all fields and collects all errors.
func (i IdeasInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Topic) == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SocialPostInput holds the parameters for a social media post. Audience is
// optional; empty Platform and Tone take the defaults.
type SocialPostInput struct {
	Idea     string `json:"idea"`
	Platform string `json:"platform"`
	Tone     string `json:"tone"`
	Audience string `json:"audience"`
}

func (i SocialPostInput) withDefaults() SocialPostInput {
	if strings.TrimSpace(i.Platform) == "" {
		i.Platform = SocialPlatforms[0]
	}
	if strings.TrimSpace(i.Tone) == "" {
		i.Tone = Tones[0]
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i SocialPostInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Idea) == "" {
		errs = append(errs, domain.FieldError{Field: "idea", Message: "required"})
	}
	if i.Platform != "" && !slices.Contains(SocialPlatforms, i.Platform) {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "must be one of " + strings.Join(SocialPlatforms, ", ")})
	}
	if i.Tone != "" && !slices.Contains(Tones, i.Tone) {
		errs = append(errs, domain.FieldError{Field: "tone", Message: "must be one of " + strings.Join(Tones, ", ")})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EmailInput holds the parameters for an email campaign.
type EmailInput struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
}

// Validate checks all fields and collects all errors.
func (i EmailInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Product) == "" {
		errs = append(errs, domain.FieldError{Field: "product", Message: "required"})
	}
	if strings.TrimSpace(i.Audience) == "" {
		errs = append(errs, domain.FieldError{Field: "audience", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdCopyInput holds the parameters for ad copy. Empty Platform takes the
// default.
type AdCopyInput struct {
	Product  string `json:"product"`
	Platform string `json:"platform"`
}

func (i AdCopyInput) withDefaults() AdCopyInput {
	if strings.TrimSpace(i.Platform) == "" {
		i.Platform = AdPlatforms[0]
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i AdCopyInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Product) == "" {
		errs = append(errs, domain.FieldError{Field: "product", Message: "required"})
	}
	if i.Platform != "" && !slices.Contains(AdPlatforms, i.Platform) {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "must be one of " + strings.Join(AdPlatforms, ", ")})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImageInput holds the prompt for an image.
type ImageInput struct {
	Prompt string `json:"prompt"`
}

// Validate requires the trimmed prompt to have at least minLength characters.
func (i ImageInput) Validate(minLength int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(i.Prompt))
	switch {
	case n == 0:
		return domain.NewValidationError("prompt", "required")
	case n < minLength:
		return domain.NewValidationError("prompt", fmt.Sprintf("must be at least %d characters", minLength))
	}
	return nil
}
