package studio

import (
	"context"
	"sync"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/generation"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	ContentIdeasFunc  func(ctx context.Context, topic string) ([]string, error)
	SocialPostFunc    func(ctx context.Context, p generation.SocialPostParams) (string, error)
	EmailCampaignFunc func(ctx context.Context, product string, audience string) (domain.EmailCampaign, error)
	AdCopyFunc        func(ctx context.Context, product string, platform string) (domain.AdCopy, error)
	ImageFunc         func(ctx context.Context, prompt string) (domain.GeneratedImage, error)

	calls struct {
		ContentIdeas []struct {
			Ctx   context.Context
			Topic string
		}
		SocialPost []struct {
			Ctx context.Context
			P   generation.SocialPostParams
		}
		EmailCampaign []struct {
			Ctx      context.Context
			Product  string
			Audience string
		}
		AdCopy []struct {
			Ctx      context.Context
			Product  string
			Platform string
		}
		Image []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockContentIdeas  sync.RWMutex
	lockSocialPost    sync.RWMutex
	lockEmailCampaign sync.RWMutex
	lockAdCopy        sync.RWMutex
	lockImage         sync.RWMutex
}

func (mock *generatorMock) ContentIdeas(ctx context.Context, topic string) ([]string, error) {
	if mock.ContentIdeasFunc == nil {
		panic("generatorMock.ContentIdeasFunc: method is nil but generator.ContentIdeas was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic string
	}{Ctx: ctx, Topic: topic}
	mock.lockContentIdeas.Lock()
	mock.calls.ContentIdeas = append(mock.calls.ContentIdeas, callInfo)
	mock.lockContentIdeas.Unlock()
	return mock.ContentIdeasFunc(ctx, topic)
}

func (mock *generatorMock) ContentIdeasCalls() []struct {
	Ctx   context.Context
	Topic string
} {
	mock.lockContentIdeas.RLock()
	calls := mock.calls.ContentIdeas
	mock.lockContentIdeas.RUnlock()
	return calls
}

func (mock *generatorMock) SocialPost(ctx context.Context, p generation.SocialPostParams) (string, error) {
	if mock.SocialPostFunc == nil {
		panic("generatorMock.SocialPostFunc: method is nil but generator.SocialPost was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   generation.SocialPostParams
	}{Ctx: ctx, P: p}
	mock.lockSocialPost.Lock()
	mock.calls.SocialPost = append(mock.calls.SocialPost, callInfo)
	mock.lockSocialPost.Unlock()
	return mock.SocialPostFunc(ctx, p)
}

func (mock *generatorMock) SocialPostCalls() []struct {
	Ctx context.Context
	P   generation.SocialPostParams
} {
	mock.lockSocialPost.RLock()
	calls := mock.calls.SocialPost
	mock.lockSocialPost.RUnlock()
	return calls
}

func (mock *generatorMock) EmailCampaign(ctx context.Context, product string, audience string) (domain.EmailCampaign, error) {
	if mock.EmailCampaignFunc == nil {
		panic("generatorMock.EmailCampaignFunc: method is nil but generator.EmailCampaign was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Product  string
		Audience string
	}{Ctx: ctx, Product: product, Audience: audience}
	mock.lockEmailCampaign.Lock()
	mock.calls.EmailCampaign = append(mock.calls.EmailCampaign, callInfo)
	mock.lockEmailCampaign.Unlock()
	return mock.EmailCampaignFunc(ctx, product, audience)
}

func (mock *generatorMock) EmailCampaignCalls() []struct {
	Ctx      context.Context
	Product  string
	Audience string
} {
	mock.lockEmailCampaign.RLock()
	calls := mock.calls.EmailCampaign
	mock.lockEmailCampaign.RUnlock()
	return calls
}

func (mock *generatorMock) AdCopy(ctx context.Context, product string, platform string) (domain.AdCopy, error) {
	if mock.AdCopyFunc == nil {
		panic("generatorMock.AdCopyFunc: method is nil but generator.AdCopy was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Product  string
		Platform string
	}{Ctx: ctx, Product: product, Platform: platform}
	mock.lockAdCopy.Lock()
	mock.calls.AdCopy = append(mock.calls.AdCopy, callInfo)
	mock.lockAdCopy.Unlock()
	return mock.AdCopyFunc(ctx, product, platform)
}

func (mock *generatorMock) AdCopyCalls() []struct {
	Ctx      context.Context
	Product  string
	Platform string
} {
	mock.lockAdCopy.RLock()
	calls := mock.calls.AdCopy
	mock.lockAdCopy.RUnlock()
	return calls
}

func (mock *generatorMock) Image(ctx context.Context, prompt string) (domain.GeneratedImage, error) {
	if mock.ImageFunc == nil {
		panic("generatorMock.ImageFunc: method is nil but generator.Image was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockImage.Lock()
	mock.calls.Image = append(mock.calls.Image, callInfo)
	mock.lockImage.Unlock()
	return mock.ImageFunc(ctx, prompt)
}

func (mock *generatorMock) ImageCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockImage.RLock()
	calls := mock.calls.Image
	mock.lockImage.RUnlock()
	return calls
}

var _ historyAppender = &historyAppenderMock{}

type historyAppenderMock struct {
	AppendFunc func(ctx context.Context, ct domain.ContentType, input map[string]string, output domain.Output) (domain.HistoryItem, error)

	calls struct {
		Append []struct {
			Ctx    context.Context
			Ct     domain.ContentType
			Input  map[string]string
			Output domain.Output
		}
	}
	lockAppend sync.RWMutex
}

func (mock *historyAppenderMock) Append(ctx context.Context, ct domain.ContentType, input map[string]string, output domain.Output) (domain.HistoryItem, error) {
	if mock.AppendFunc == nil {
		panic("historyAppenderMock.AppendFunc: method is nil but historyAppender.Append was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Ct     domain.ContentType
		Input  map[string]string
		Output domain.Output
	}{Ctx: ctx, Ct: ct, Input: input, Output: output}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, ct, input, output)
}

func (mock *historyAppenderMock) AppendCalls() []struct {
	Ctx    context.Context
	Ct     domain.ContentType
	Input  map[string]string
	Output domain.Output
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
