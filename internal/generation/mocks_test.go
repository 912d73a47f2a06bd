package generation

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

var _ TextGenerator = &textGeneratorMock{}

type textGeneratorMock struct {
	GenerateTextFunc func(ctx context.Context, req TextRequest) (string, error)

	calls struct {
		GenerateText []struct {
			Ctx context.Context
			Req TextRequest
		}
	}
	lockGenerateText sync.RWMutex
}

func (mock *textGeneratorMock) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	if mock.GenerateTextFunc == nil {
		panic("textGeneratorMock.GenerateTextFunc: method is nil but TextGenerator.GenerateText was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req TextRequest
	}{Ctx: ctx, Req: req}
	mock.lockGenerateText.Lock()
	mock.calls.GenerateText = append(mock.calls.GenerateText, callInfo)
	mock.lockGenerateText.Unlock()
	return mock.GenerateTextFunc(ctx, req)
}

func (mock *textGeneratorMock) GenerateTextCalls() []struct {
	Ctx context.Context
	Req TextRequest
} {
	mock.lockGenerateText.RLock()
	calls := mock.calls.GenerateText
	mock.lockGenerateText.RUnlock()
	return calls
}

var _ ImageGenerator = &imageGeneratorMock{}

type imageGeneratorMock struct {
	GenerateImageFunc func(ctx context.Context, req ImageRequest) (domain.GeneratedImage, error)

	calls struct {
		GenerateImage []struct {
			Ctx context.Context
			Req ImageRequest
		}
	}
	lockGenerateImage sync.RWMutex
}

func (mock *imageGeneratorMock) GenerateImage(ctx context.Context, req ImageRequest) (domain.GeneratedImage, error) {
	if mock.GenerateImageFunc == nil {
		panic("imageGeneratorMock.GenerateImageFunc: method is nil but ImageGenerator.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req ImageRequest
	}{Ctx: ctx, Req: req}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, req)
}

func (mock *imageGeneratorMock) GenerateImageCalls() []struct {
	Ctx context.Context
	Req ImageRequest
} {
	mock.lockGenerateImage.RLock()
	calls := mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}

var _ recorder = &recorderMock{}

type recorderMock struct {
	calls struct {
		ObserveGeneration []struct {
			ContentType string
			Status      string
			D           time.Duration
		}
	}
	lockObserveGeneration sync.RWMutex
}

func (mock *recorderMock) ObserveGeneration(contentType, status string, d time.Duration) {
	callInfo := struct {
		ContentType string
		Status      string
		D           time.Duration
	}{ContentType: contentType, Status: status, D: d}
	mock.lockObserveGeneration.Lock()
	mock.calls.ObserveGeneration = append(mock.calls.ObserveGeneration, callInfo)
	mock.lockObserveGeneration.Unlock()
}

func (mock *recorderMock) ObserveGenerationCalls() []struct {
	ContentType string
	Status      string
	D           time.Duration
} {
	mock.lockObserveGeneration.RLock()
	calls := mock.calls.ObserveGeneration
	mock.lockObserveGeneration.RUnlock()
	return calls
}
