package studio

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/generation"
)

// Ideas generates five content ideas for a topic.
func (s *Service) Ideas(ctx context.Context, input IdeasInput) (Result, error) {
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	release, err := s.acquire(ctx, domain.ContentTypeIdeas)
	if err != nil {
		return Result{}, err
	}
	defer release()

	ideas, err := s.gen.ContentIdeas(ctx, strings.TrimSpace(input.Topic))
	if err != nil {
		return Result{}, err
	}

	return s.record(ctx, domain.ContentTypeIdeas,
		map[string]string{"topic": input.Topic},
		domain.IdeasOutput(ideas),
	)
}

// SocialPost writes a post for one platform. The result flags Twitter posts
// longer than the configured character limit; the limit is not enforced.
func (s *Service) SocialPost(ctx context.Context, input SocialPostInput) (Result, error) {
	input = input.withDefaults()
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	release, err := s.acquire(ctx, domain.ContentTypeSocialPost)
	if err != nil {
		return Result{}, err
	}
	defer release()

	post, err := s.gen.SocialPost(ctx, generation.SocialPostParams{
		Idea:     strings.TrimSpace(input.Idea),
		Platform: input.Platform,
		Tone:     input.Tone,
		Audience: strings.TrimSpace(input.Audience),
	})
	if err != nil {
		return Result{}, err
	}

	res, err := s.record(ctx, domain.ContentTypeSocialPost,
		map[string]string{
			"idea":     input.Idea,
			"platform": input.Platform,
			"tone":     input.Tone,
			"audience": input.Audience,
		},
		domain.TextOutput(post),
	)
	if err != nil {
		return Result{}, err
	}

	res.CharCount = utf8.RuneCountInString(post)
	res.ExceedsLimit = input.Platform == generation.PlatformTwitter && res.CharCount > s.cfg.TwitterCharLimit
	return res, nil
}

// EmailCampaign writes a subject line and body.
func (s *Service) EmailCampaign(ctx context.Context, input EmailInput) (Result, error) {
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	release, err := s.acquire(ctx, domain.ContentTypeEmailCampaign)
	if err != nil {
		return Result{}, err
	}
	defer release()

	email, err := s.gen.EmailCampaign(ctx, strings.TrimSpace(input.Product), strings.TrimSpace(input.Audience))
	if err != nil {
		return Result{}, err
	}

	return s.record(ctx, domain.ContentTypeEmailCampaign,
		map[string]string{"product": input.Product, "audience": input.Audience},
		domain.EmailOutput(email),
	)
}

// AdCopy writes a headline and description for an ad platform.
func (s *Service) AdCopy(ctx context.Context, input AdCopyInput) (Result, error) {
	input = input.withDefaults()
	if err := input.Validate(); err != nil {
		return Result{}, err
	}

	release, err := s.acquire(ctx, domain.ContentTypeAdCopy)
	if err != nil {
		return Result{}, err
	}
	defer release()

	ad, err := s.gen.AdCopy(ctx, strings.TrimSpace(input.Product), input.Platform)
	if err != nil {
		return Result{}, err
	}

	return s.record(ctx, domain.ContentTypeAdCopy,
		map[string]string{"product": input.Product, "platform": input.Platform},
		domain.AdCopyOutput(ad),
	)
}

// Image generates one image from a prompt.
func (s *Service) Image(ctx context.Context, input ImageInput) (Result, error) {
	if err := input.Validate(s.cfg.MinImagePromptLength); err != nil {
		return Result{}, err
	}

	release, err := s.acquire(ctx, domain.ContentTypeImage)
	if err != nil {
		return Result{}, err
	}
	defer release()

	img, err := s.gen.Image(ctx, strings.TrimSpace(input.Prompt))
	if err != nil {
		return Result{}, err
	}

	return s.record(ctx, domain.ContentTypeImage,
		map[string]string{"prompt": input.Prompt},
		domain.ImageOutput(img),
	)
}
