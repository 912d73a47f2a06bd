package analytics

import (
	"context"
	"sync"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

var _ historySource = &historySourceMock{}

type historySourceMock struct {
	ListFunc func(ctx context.Context) []domain.HistoryItem

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *historySourceMock) List(ctx context.Context) []domain.HistoryItem {
	if mock.ListFunc == nil {
		panic("historySourceMock.ListFunc: method is nil but historySource.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *historySourceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ clientSource = &clientSourceMock{}

type clientSourceMock struct {
	ListFunc func(ctx context.Context) []domain.Client

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *clientSourceMock) List(ctx context.Context) []domain.Client {
	if mock.ListFunc == nil {
		panic("clientSourceMock.ListFunc: method is nil but clientSource.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *clientSourceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
