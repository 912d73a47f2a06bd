package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/service/clients"
	"github.com/heartmarshall/marketing-studio/internal/service/studio"
)

var _ studioService = &studioServiceMock{}

type studioServiceMock struct {
	IdeasFunc         func(ctx context.Context, input studio.IdeasInput) (studio.Result, error)
	SocialPostFunc    func(ctx context.Context, input studio.SocialPostInput) (studio.Result, error)
	EmailCampaignFunc func(ctx context.Context, input studio.EmailInput) (studio.Result, error)
	AdCopyFunc        func(ctx context.Context, input studio.AdCopyInput) (studio.Result, error)
	ImageFunc         func(ctx context.Context, input studio.ImageInput) (studio.Result, error)

	calls struct {
		Ideas []struct {
			Ctx   context.Context
			Input studio.IdeasInput
		}
		SocialPost []struct {
			Ctx   context.Context
			Input studio.SocialPostInput
		}
		EmailCampaign []struct {
			Ctx   context.Context
			Input studio.EmailInput
		}
		AdCopy []struct {
			Ctx   context.Context
			Input studio.AdCopyInput
		}
		Image []struct {
			Ctx   context.Context
			Input studio.ImageInput
		}
	}
	lockIdeas         sync.RWMutex
	lockSocialPost    sync.RWMutex
	lockEmailCampaign sync.RWMutex
	lockAdCopy        sync.RWMutex
	lockImage         sync.RWMutex
}

func (mock *studioServiceMock) Ideas(ctx context.Context, input studio.IdeasInput) (studio.Result, error) {
	if mock.IdeasFunc == nil {
		panic("studioServiceMock.IdeasFunc: method is nil but studioService.Ideas was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studio.IdeasInput
	}{Ctx: ctx, Input: input}
	mock.lockIdeas.Lock()
	mock.calls.Ideas = append(mock.calls.Ideas, callInfo)
	mock.lockIdeas.Unlock()
	return mock.IdeasFunc(ctx, input)
}

func (mock *studioServiceMock) IdeasCalls() []struct {
	Ctx   context.Context
	Input studio.IdeasInput
} {
	mock.lockIdeas.RLock()
	calls := mock.calls.Ideas
	mock.lockIdeas.RUnlock()
	return calls
}

func (mock *studioServiceMock) SocialPost(ctx context.Context, input studio.SocialPostInput) (studio.Result, error) {
	if mock.SocialPostFunc == nil {
		panic("studioServiceMock.SocialPostFunc: method is nil but studioService.SocialPost was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studio.SocialPostInput
	}{Ctx: ctx, Input: input}
	mock.lockSocialPost.Lock()
	mock.calls.SocialPost = append(mock.calls.SocialPost, callInfo)
	mock.lockSocialPost.Unlock()
	return mock.SocialPostFunc(ctx, input)
}

func (mock *studioServiceMock) SocialPostCalls() []struct {
	Ctx   context.Context
	Input studio.SocialPostInput
} {
	mock.lockSocialPost.RLock()
	calls := mock.calls.SocialPost
	mock.lockSocialPost.RUnlock()
	return calls
}

func (mock *studioServiceMock) EmailCampaign(ctx context.Context, input studio.EmailInput) (studio.Result, error) {
	if mock.EmailCampaignFunc == nil {
		panic("studioServiceMock.EmailCampaignFunc: method is nil but studioService.EmailCampaign was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studio.EmailInput
	}{Ctx: ctx, Input: input}
	mock.lockEmailCampaign.Lock()
	mock.calls.EmailCampaign = append(mock.calls.EmailCampaign, callInfo)
	mock.lockEmailCampaign.Unlock()
	return mock.EmailCampaignFunc(ctx, input)
}

func (mock *studioServiceMock) EmailCampaignCalls() []struct {
	Ctx   context.Context
	Input studio.EmailInput
} {
	mock.lockEmailCampaign.RLock()
	calls := mock.calls.EmailCampaign
	mock.lockEmailCampaign.RUnlock()
	return calls
}

func (mock *studioServiceMock) AdCopy(ctx context.Context, input studio.AdCopyInput) (studio.Result, error) {
	if mock.AdCopyFunc == nil {
		panic("studioServiceMock.AdCopyFunc: method is nil but studioService.AdCopy was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studio.AdCopyInput
	}{Ctx: ctx, Input: input}
	mock.lockAdCopy.Lock()
	mock.calls.AdCopy = append(mock.calls.AdCopy, callInfo)
	mock.lockAdCopy.Unlock()
	return mock.AdCopyFunc(ctx, input)
}

func (mock *studioServiceMock) AdCopyCalls() []struct {
	Ctx   context.Context
	Input studio.AdCopyInput
} {
	mock.lockAdCopy.RLock()
	calls := mock.calls.AdCopy
	mock.lockAdCopy.RUnlock()
	return calls
}

func (mock *studioServiceMock) Image(ctx context.Context, input studio.ImageInput) (studio.Result, error) {
	if mock.ImageFunc == nil {
		panic("studioServiceMock.ImageFunc: method is nil but studioService.Image was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studio.ImageInput
	}{Ctx: ctx, Input: input}
	mock.lockImage.Lock()
	mock.calls.Image = append(mock.calls.Image, callInfo)
	mock.lockImage.Unlock()
	return mock.ImageFunc(ctx, input)
}

func (mock *studioServiceMock) ImageCalls() []struct {
	Ctx   context.Context
	Input studio.ImageInput
} {
	mock.lockImage.RLock()
	calls := mock.calls.Image
	mock.lockImage.RUnlock()
	return calls
}

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	ListFunc     func(ctx context.Context) []domain.HistoryItem
	GetFunc      func(ctx context.Context, id string) (domain.HistoryItem, error)
	ClearAllFunc func(ctx context.Context, confirmed bool) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			Id  string
		}
		ClearAll []struct {
			Ctx       context.Context
			Confirmed bool
		}
	}
	lockList     sync.RWMutex
	lockGet      sync.RWMutex
	lockClearAll sync.RWMutex
}

func (mock *historyServiceMock) List(ctx context.Context) []domain.HistoryItem {
	if mock.ListFunc == nil {
		panic("historyServiceMock.ListFunc: method is nil but historyService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *historyServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *historyServiceMock) Get(ctx context.Context, id string) (domain.HistoryItem, error) {
	if mock.GetFunc == nil {
		panic("historyServiceMock.GetFunc: method is nil but historyService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *historyServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *historyServiceMock) ClearAll(ctx context.Context, confirmed bool) error {
	if mock.ClearAllFunc == nil {
		panic("historyServiceMock.ClearAllFunc: method is nil but historyService.ClearAll was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Confirmed bool
	}{Ctx: ctx, Confirmed: confirmed}
	mock.lockClearAll.Lock()
	mock.calls.ClearAll = append(mock.calls.ClearAll, callInfo)
	mock.lockClearAll.Unlock()
	return mock.ClearAllFunc(ctx, confirmed)
}

func (mock *historyServiceMock) ClearAllCalls() []struct {
	Ctx       context.Context
	Confirmed bool
} {
	mock.lockClearAll.RLock()
	calls := mock.calls.ClearAll
	mock.lockClearAll.RUnlock()
	return calls
}

var _ clientService = &clientServiceMock{}

type clientServiceMock struct {
	ListFunc       func(ctx context.Context) []domain.Client
	GetFunc        func(ctx context.Context, id uuid.UUID) (domain.Client, error)
	AddFunc        func(ctx context.Context, input clients.ClientInput) (domain.Client, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, input clients.ClientInput) (domain.Client, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID, confirmed bool) error
	ImportCSVFunc  func(ctx context.Context, r io.Reader) (clients.ImportResult, error)
	ExportCSVFunc  func(ctx context.Context) ([]byte, error)
	ExportXLSXFunc func(ctx context.Context) ([]byte, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Add []struct {
			Ctx   context.Context
			Input clients.ClientInput
		}
		Update []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input clients.ClientInput
		}
		Delete []struct {
			Ctx       context.Context
			Id        uuid.UUID
			Confirmed bool
		}
		ImportCSV []struct {
			Ctx context.Context
			R   io.Reader
		}
		ExportCSV []struct {
			Ctx context.Context
		}
		ExportXLSX []struct {
			Ctx context.Context
		}
	}
	lockList       sync.RWMutex
	lockGet        sync.RWMutex
	lockAdd        sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockImportCSV  sync.RWMutex
	lockExportCSV  sync.RWMutex
	lockExportXLSX sync.RWMutex
}

func (mock *clientServiceMock) List(ctx context.Context) []domain.Client {
	if mock.ListFunc == nil {
		panic("clientServiceMock.ListFunc: method is nil but clientService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *clientServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *clientServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	if mock.GetFunc == nil {
		panic("clientServiceMock.GetFunc: method is nil but clientService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *clientServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *clientServiceMock) Add(ctx context.Context, input clients.ClientInput) (domain.Client, error) {
	if mock.AddFunc == nil {
		panic("clientServiceMock.AddFunc: method is nil but clientService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input clients.ClientInput
	}{Ctx: ctx, Input: input}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, input)
}

func (mock *clientServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Input clients.ClientInput
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *clientServiceMock) Update(ctx context.Context, id uuid.UUID, input clients.ClientInput) (domain.Client, error) {
	if mock.UpdateFunc == nil {
		panic("clientServiceMock.UpdateFunc: method is nil but clientService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input clients.ClientInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *clientServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input clients.ClientInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *clientServiceMock) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if mock.DeleteFunc == nil {
		panic("clientServiceMock.DeleteFunc: method is nil but clientService.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        uuid.UUID
		Confirmed bool
	}{Ctx: ctx, Id: id, Confirmed: confirmed}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, confirmed)
}

func (mock *clientServiceMock) DeleteCalls() []struct {
	Ctx       context.Context
	Id        uuid.UUID
	Confirmed bool
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *clientServiceMock) ImportCSV(ctx context.Context, r io.Reader) (clients.ImportResult, error) {
	if mock.ImportCSVFunc == nil {
		panic("clientServiceMock.ImportCSVFunc: method is nil but clientService.ImportCSV was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   io.Reader
	}{Ctx: ctx, R: r}
	mock.lockImportCSV.Lock()
	mock.calls.ImportCSV = append(mock.calls.ImportCSV, callInfo)
	mock.lockImportCSV.Unlock()
	return mock.ImportCSVFunc(ctx, r)
}

func (mock *clientServiceMock) ImportCSVCalls() []struct {
	Ctx context.Context
	R   io.Reader
} {
	mock.lockImportCSV.RLock()
	calls := mock.calls.ImportCSV
	mock.lockImportCSV.RUnlock()
	return calls
}

func (mock *clientServiceMock) ExportCSV(ctx context.Context) ([]byte, error) {
	if mock.ExportCSVFunc == nil {
		panic("clientServiceMock.ExportCSVFunc: method is nil but clientService.ExportCSV was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExportCSV.Lock()
	mock.calls.ExportCSV = append(mock.calls.ExportCSV, callInfo)
	mock.lockExportCSV.Unlock()
	return mock.ExportCSVFunc(ctx)
}

func (mock *clientServiceMock) ExportCSVCalls() []struct {
	Ctx context.Context
} {
	mock.lockExportCSV.RLock()
	calls := mock.calls.ExportCSV
	mock.lockExportCSV.RUnlock()
	return calls
}

func (mock *clientServiceMock) ExportXLSX(ctx context.Context) ([]byte, error) {
	if mock.ExportXLSXFunc == nil {
		panic("clientServiceMock.ExportXLSXFunc: method is nil but clientService.ExportXLSX was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExportXLSX.Lock()
	mock.calls.ExportXLSX = append(mock.calls.ExportXLSX, callInfo)
	mock.lockExportXLSX.Unlock()
	return mock.ExportXLSXFunc(ctx)
}

func (mock *clientServiceMock) ExportXLSXCalls() []struct {
	Ctx context.Context
} {
	mock.lockExportXLSX.RLock()
	calls := mock.calls.ExportXLSX
	mock.lockExportXLSX.RUnlock()
	return calls
}

var _ analyticsService = &analyticsServiceMock{}

type analyticsServiceMock struct {
	SnapshotFunc func(ctx context.Context) domain.AnalyticsSnapshot

	calls struct {
		Snapshot []struct {
			Ctx context.Context
		}
	}
	lockSnapshot sync.RWMutex
}

func (mock *analyticsServiceMock) Snapshot(ctx context.Context) domain.AnalyticsSnapshot {
	if mock.SnapshotFunc == nil {
		panic("analyticsServiceMock.SnapshotFunc: method is nil but analyticsService.Snapshot was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSnapshot.Lock()
	mock.calls.Snapshot = append(mock.calls.Snapshot, callInfo)
	mock.lockSnapshot.Unlock()
	return mock.SnapshotFunc(ctx)
}

func (mock *analyticsServiceMock) SnapshotCalls() []struct {
	Ctx context.Context
} {
	mock.lockSnapshot.RLock()
	calls := mock.calls.Snapshot
	mock.lockSnapshot.RUnlock()
	return calls
}
