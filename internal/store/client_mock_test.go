package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
)

var _ Client[domain.Idea] = &clientMock[domain.Idea]{}

type clientMock[T domain.Resource] struct {
	ListFunc   func(ctx context.Context, filter domain.ListFilter) ([]T, error)
	CreateFunc func(ctx context.Context, payload T) (T, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, patch domain.Patch) (T, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ListFilter
		}
		Create []struct {
			Ctx     context.Context
			Payload T
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.Patch
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *clientMock[T]) List(ctx context.Context, filter domain.ListFilter) ([]T, error) {
	if mock.ListFunc == nil {
		panic("clientMock.ListFunc: method is nil but Client.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ListFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *clientMock[T]) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *clientMock[T]) Create(ctx context.Context, payload T) (T, error) {
	if mock.CreateFunc == nil {
		panic("clientMock.CreateFunc: method is nil but Client.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Payload T
	}{Ctx: ctx, Payload: payload}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, payload)
}

func (mock *clientMock[T]) CreateCalls() []struct {
	Ctx     context.Context
	Payload T
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *clientMock[T]) Update(ctx context.Context, id uuid.UUID, patch domain.Patch) (T, error) {
	if mock.UpdateFunc == nil {
		panic("clientMock.UpdateFunc: method is nil but Client.Update was just called")
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

func (mock *clientMock[T]) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.Patch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *clientMock[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("clientMock.DeleteFunc: method is nil but Client.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *clientMock[T]) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
