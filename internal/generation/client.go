// Package generation turns one content request into one provider call and
// returns either a typed result or a *domain.GenerationError.
package generation

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/metrics"
)

// DefaultImageMIMEType is requested when no MIME type is configured.
const DefaultImageMIMEType = "image/jpeg"

// TextRequest is one text generation call. Schema is nil for free text.
type TextRequest struct {
	Prompt string
	Schema *Schema
}

// ImageRequest is one image generation call.
type ImageRequest struct {
	Prompt         string
	NumberOfImages int
	MIMEType       string
}

// TextGenerator produces text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}

// ImageGenerator produces base64-encoded images from a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (domain.GeneratedImage, error)
}

type recorder interface {
	ObserveGeneration(contentType, status string, d time.Duration)
}

// SocialPostParams are the inputs of a social media post.
type SocialPostParams struct {
	Idea     string
	Platform string
	Tone     string
	Audience string
}

// Client issues generation calls. Inputs are expected to be validated by the
// caller; Client performs no validation of its own.
type Client struct {
	log       *slog.Logger
	text      TextGenerator
	image     ImageGenerator
	rec       recorder
	imageMIME string
	now       func() time.Time
}

// NewClient creates a generation client. rec may be nil.
func NewClient(log *slog.Logger, text TextGenerator, image ImageGenerator, rec recorder, imageMIMEType string) *Client {
	if imageMIMEType == "" {
		imageMIMEType = DefaultImageMIMEType
	}
	return &Client{
		log:       log.With("service", "generation"),
		text:      text,
		image:     image,
		rec:       rec,
		imageMIME: imageMIMEType,
		now:       time.Now,
	}
}

// ContentIdeas asks for 5 distinct content ideas about topic.
func (c *Client) ContentIdeas(ctx context.Context, topic string) ([]string, error) {
	var ideas []string
	err := c.do(ctx, domain.ContentTypeIdeas, func(ctx context.Context) error {
		raw, err := c.structured(ctx, ideasPrompt(topic), ArrayOfStrings())
		if err != nil {
			return err
		}
		ideas, err = decodeStrings(raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

// SocialPost writes one post for p.Platform.
func (c *Client) SocialPost(ctx context.Context, p SocialPostParams) (string, error) {
	var post string
	err := c.do(ctx, domain.ContentTypeSocialPost, func(ctx context.Context) error {
		text, err := c.text.GenerateText(ctx, TextRequest{Prompt: socialPostPrompt(p)})
		if err != nil {
			return err
		}
		post = strings.TrimSpace(text)
		if post == "" {
			return errors.New("empty response")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return post, nil
}

// EmailCampaign writes a subject line and body for product.
func (c *Client) EmailCampaign(ctx context.Context, product, audience string) (domain.EmailCampaign, error) {
	var campaign domain.EmailCampaign
	err := c.do(ctx, domain.ContentTypeEmailCampaign, func(ctx context.Context) error {
		raw, err := c.structured(ctx, emailPrompt(product, audience), emailSchema)
		if err != nil {
			return err
		}
		obj, err := emailSchema.decodeObject(raw)
		if err != nil {
			return err
		}
		campaign = domain.EmailCampaign{Subject: obj["subject"], Body: obj["body"]}
		return nil
	})
	if err != nil {
		return domain.EmailCampaign{}, err
	}
	return campaign, nil
}

// AdCopy writes a headline and description for an ad on platform.
func (c *Client) AdCopy(ctx context.Context, product, platform string) (domain.AdCopy, error) {
	var ad domain.AdCopy
	err := c.do(ctx, domain.ContentTypeAdCopy, func(ctx context.Context) error {
		schema := adCopySchema(platform)
		raw, err := c.structured(ctx, adCopyPrompt(product, platform), schema)
		if err != nil {
			return err
		}
		obj, err := schema.decodeObject(raw)
		if err != nil {
			return err
		}
		ad = domain.AdCopy{Headline: obj["headline"], Description: obj["description"]}
		return nil
	})
	if err != nil {
		return domain.AdCopy{}, err
	}
	return ad, nil
}

// Image generates exactly one image for prompt.
func (c *Client) Image(ctx context.Context, prompt string) (domain.GeneratedImage, error) {
	var img domain.GeneratedImage
	err := c.do(ctx, domain.ContentTypeImage, func(ctx context.Context) error {
		out, err := c.image.GenerateImage(ctx, ImageRequest{
			Prompt:         prompt,
			NumberOfImages: 1,
			MIMEType:       c.imageMIME,
		})
		if err != nil {
			return err
		}
		if out.Data == "" {
			return errors.New("no image was generated")
		}
		if _, err := base64.StdEncoding.DecodeString(out.Data); err != nil {
			return fmt.Errorf("image payload is not base64: %w", err)
		}
		if out.MIMEType == "" {
			out.MIMEType = c.imageMIME
		}
		img = out
		return nil
	})
	if err != nil {
		return domain.GeneratedImage{}, err
	}
	return img, nil
}

// structured issues a schema-constrained call and returns the raw JSON value.
func (c *Client) structured(ctx context.Context, prompt string, schema *Schema) (string, error) {
	text, err := c.text.GenerateText(ctx, TextRequest{Prompt: prompt, Schema: schema})
	if err != nil {
		return "", err
	}
	return extractJSON(text, schema.Kind)
}

// do runs fn, records the outcome and converts any failure into a
// *domain.GenerationError.
func (c *Client) do(ctx context.Context, ct domain.ContentType, fn func(ctx context.Context) error) error {
	start := c.now()
	err := fn(ctx)
	elapsed := c.now().Sub(start)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	if c.rec != nil {
		c.rec.ObserveGeneration(ct.String(), status, elapsed)
	}

	if err == nil {
		c.log.DebugContext(ctx, "generation succeeded",
			slog.String("content_type", ct.String()),
			slog.Duration("duration", elapsed),
		)
		return nil
	}

	c.log.ErrorContext(ctx, "generation failed",
		slog.String("content_type", ct.String()),
		slog.Duration("duration", elapsed),
		slog.String("error", err.Error()),
	)
	return domain.NewGenerationError(ct, err)
}
