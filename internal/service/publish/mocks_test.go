package publish

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/adapter/scheduler"
	"github.com/heartmarshall/contentdesk/internal/domain"
)

var _ publicationStore = &publicationStoreMock{}

type publicationStoreMock struct {
	GetFunc    func(id uuid.UUID) (domain.Publication, bool)
	CreateFunc func(ctx context.Context, payload domain.Publication) (domain.Publication, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Publication, error)

	calls struct {
		Get []struct {
			ID uuid.UUID
		}
		Create []struct {
			Ctx     context.Context
			Payload domain.Publication
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.Patch
		}
	}
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *publicationStoreMock) Get(id uuid.UUID) (domain.Publication, bool) {
	if mock.GetFunc == nil {
		panic("publicationStoreMock.GetFunc: method is nil but publicationStore.Get was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(id)
}

func (mock *publicationStoreMock) Create(ctx context.Context, payload domain.Publication) (domain.Publication, error) {
	if mock.CreateFunc == nil {
		panic("publicationStoreMock.CreateFunc: method is nil but publicationStore.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Payload domain.Publication
	}{Ctx: ctx, Payload: payload}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, payload)
}

func (mock *publicationStoreMock) CreateCalls() []struct {
	Ctx     context.Context
	Payload domain.Publication
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *publicationStoreMock) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Publication, error) {
	if mock.UpdateFunc == nil {
		panic("publicationStoreMock.UpdateFunc: method is nil but publicationStore.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.Patch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch)
}

func (mock *publicationStoreMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.Patch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ postScheduler = &postSchedulerMock{}

type postSchedulerMock struct {
	SchedulePostFunc func(ctx context.Context, content string, localTime, zone *string) (scheduler.PostResult, error)

	calls struct {
		SchedulePost []struct {
			Ctx       context.Context
			Content   string
			LocalTime *string
			Zone      *string
		}
	}
	lockSchedulePost sync.RWMutex
}

func (mock *postSchedulerMock) SchedulePost(ctx context.Context, content string, localTime, zone *string) (scheduler.PostResult, error) {
	if mock.SchedulePostFunc == nil {
		panic("postSchedulerMock.SchedulePostFunc: method is nil but postScheduler.SchedulePost was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Content   string
		LocalTime *string
		Zone      *string
	}{Ctx: ctx, Content: content, LocalTime: localTime, Zone: zone}
	mock.lockSchedulePost.Lock()
	mock.calls.SchedulePost = append(mock.calls.SchedulePost, callInfo)
	mock.lockSchedulePost.Unlock()
	return mock.SchedulePostFunc(ctx, content, localTime, zone)
}

func (mock *postSchedulerMock) SchedulePostCalls() []struct {
	Ctx       context.Context
	Content   string
	LocalTime *string
	Zone      *string
} {
	mock.lockSchedulePost.RLock()
	calls := mock.calls.SchedulePost
	mock.lockSchedulePost.RUnlock()
	return calls
}

var _ textGenerator = &textGeneratorMock{}

type textGeneratorMock struct {
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		GenerateText []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockGenerateText sync.RWMutex
}

func (mock *textGeneratorMock) GenerateText(ctx context.Context, prompt string) (string, error) {
	if mock.GenerateTextFunc == nil {
		panic("textGeneratorMock.GenerateTextFunc: method is nil but textGenerator.GenerateText was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerateText.Lock()
	mock.calls.GenerateText = append(mock.calls.GenerateText, callInfo)
	mock.lockGenerateText.Unlock()
	return mock.GenerateTextFunc(ctx, prompt)
}

func (mock *textGeneratorMock) GenerateTextCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerateText.RLock()
	calls := mock.calls.GenerateText
	mock.lockGenerateText.RUnlock()
	return calls
}

var _ automationNotifier = &automationNotifierMock{}

type automationNotifierMock struct {
	NotifyFunc func(ctx context.Context, event domain.Event) error

	calls struct {
		Notify []struct {
			Ctx   context.Context
			Event domain.Event
		}
	}
	lockNotify sync.RWMutex
}

func (mock *automationNotifierMock) Notify(ctx context.Context, event domain.Event) error {
	if mock.NotifyFunc == nil {
		panic("automationNotifierMock.NotifyFunc: method is nil but automationNotifier.Notify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.Event
	}{Ctx: ctx, Event: event}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, event)
}

func (mock *automationNotifierMock) NotifyCalls() []struct {
	Ctx   context.Context
	Event domain.Event
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
