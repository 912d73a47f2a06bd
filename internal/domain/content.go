package domain

import (
	"encoding/base64"
	"fmt"
)

// ContentType is the discriminator shared by generation requests, results and
// history items.
type ContentType string

const (
	ContentTypeIdeas         ContentType = "content-ideas"
	ContentTypeSocialPost    ContentType = "social-post"
	ContentTypeEmailCampaign ContentType = "email-campaign"
	ContentTypeAdCopy        ContentType = "ad-copy"
	ContentTypeImage         ContentType = "image"
)

// AllContentTypes lists every content type in menu order.
var AllContentTypes = []ContentType{
	ContentTypeIdeas,
	ContentTypeSocialPost,
	ContentTypeEmailCampaign,
	ContentTypeAdCopy,
	ContentTypeImage,
}

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeIdeas, ContentTypeSocialPost, ContentTypeEmailCampaign, ContentTypeAdCopy, ContentTypeImage:
		return true
	}
	return false
}

// Label returns the human-readable tool name.
func (c ContentType) Label() string {
	switch c {
	case ContentTypeIdeas:
		return "Content Ideas"
	case ContentTypeSocialPost:
		return "Social Media Post"
	case ContentTypeEmailCampaign:
		return "Email Campaign"
	case ContentTypeAdCopy:
		return "Ad Copy"
	case ContentTypeImage:
		return "Image Generation"
	}
	return string(c)
}

// FailureMessage is the user-facing text reported when generation of c fails.
func (c ContentType) FailureMessage() string {
	switch c {
	case ContentTypeIdeas:
		return "An error occurred while generating ideas. Please try again."
	case ContentTypeSocialPost:
		return "An error occurred while generating the post. Please try again."
	case ContentTypeEmailCampaign:
		return "An error occurred while generating the email campaign. Please try again."
	case ContentTypeAdCopy:
		return "An error occurred while generating the ad copy. Please try again."
	case ContentTypeImage:
		return "An error occurred while generating the image. Please try again."
	}
	return "An error occurred. Please try again."
}

// EmailCampaign is the structured result of an email campaign generation.
type EmailCampaign struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// AdCopy is the structured result of an ad copy generation.
type AdCopy struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

// GeneratedImage holds one generated image as base64 text.
type GeneratedImage struct {
	Data     string `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Bytes decodes the base64 payload.
func (i GeneratedImage) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(i.Data)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return b, nil
}

// Output is a generation result. Exactly one field is set and it matches the
// content type of the request that produced it.
type Output struct {
	Ideas  []string        `json:"ideas,omitempty"`
	Text   string          `json:"text,omitempty"`
	Email  *EmailCampaign  `json:"email,omitempty"`
	AdCopy *AdCopy         `json:"ad_copy,omitempty"`
	Image  *GeneratedImage `json:"image,omitempty"`
}

func IdeasOutput(ideas []string) Output { return Output{Ideas: ideas} }
func TextOutput(text string) Output { return Output{Text: text} }
func EmailOutput(c EmailCampaign) Output { return Output{Email: &c} }
func AdCopyOutput(c AdCopy) Output { return Output{AdCopy: &c} }
func ImageOutput(img GeneratedImage) Output { return Output{Image: &img} }

// Matches reports whether o holds exactly the shape produced for ct.
func (o Output) Matches(ct ContentType) bool {
	set := 0
	if o.Ideas != nil {
		set++
	}
	if o.Text != "" {
		set++
	}
	if o.Email != nil {
		set++
	}
	if o.AdCopy != nil {
		set++
	}
	if o.Image != nil {
		set++
	}
	if set != 1 {
		return false
	}

	switch ct {
	case ContentTypeIdeas:
		return o.Ideas != nil
	case ContentTypeSocialPost:
		return o.Text != ""
	case ContentTypeEmailCampaign:
		return o.Email != nil
	case ContentTypeAdCopy:
		return o.AdCopy != nil
	case ContentTypeImage:
		return o.Image != nil
	}
	return false
}
