package clients

import (
	"context"
	"sync"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	LoadFunc func(ctx context.Context) ([]domain.Client, error)
	SaveFunc func(ctx context.Context, clients []domain.Client) error

	calls struct {
		Load []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx     context.Context
			Clients []domain.Client
		}
	}
	lockLoad sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *clientRepoMock) Load(ctx context.Context) ([]domain.Client, error) {
	if mock.LoadFunc == nil {
		panic("clientRepoMock.LoadFunc: method is nil but clientRepo.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx)
}

func (mock *clientRepoMock) LoadCalls() []struct {
	Ctx context.Context
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *clientRepoMock) Save(ctx context.Context, clients []domain.Client) error {
	if mock.SaveFunc == nil {
		panic("clientRepoMock.SaveFunc: method is nil but clientRepo.Save was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Clients []domain.Client
	}{Ctx: ctx, Clients: clients}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, clients)
}

func (mock *clientRepoMock) SaveCalls() []struct {
	Ctx     context.Context
	Clients []domain.Client
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ sizeGauge = &sizeGaugeMock{}

type sizeGaugeMock struct {
	SetClientsFunc func(n int)

	calls struct {
		SetClients []struct {
			N int
		}
	}
	lockSetClients sync.RWMutex
}

func (mock *sizeGaugeMock) SetClients(n int) {
	if mock.SetClientsFunc == nil {
		panic("sizeGaugeMock.SetClientsFunc: method is nil but sizeGauge.SetClients was just called")
	}
	callInfo := struct {
		N int
	}{N: n}
	mock.lockSetClients.Lock()
	mock.calls.SetClients = append(mock.calls.SetClients, callInfo)
	mock.lockSetClients.Unlock()
	mock.SetClientsFunc(n)
}

func (mock *sizeGaugeMock) SetClientsCalls() []struct {
	N int
} {
	mock.lockSetClients.RLock()
	calls := mock.calls.SetClients
	mock.lockSetClients.RUnlock()
	return calls
}
