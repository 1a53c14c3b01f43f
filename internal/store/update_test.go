package store

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/heartmarshall/contentdesk/internal/domain"
	"github.com/heartmarshall/contentdesk/internal/scope"
)

func TestUpdate_ReplacesRecordByID(t *testing.T) {
	t.Parallel()

	target := newIdea("before")
	other := newIdea("untouched")
	mock := &clientMock[domain.Idea]{
		ListFunc: func(ctx context.Context, filter domain.ListFilter) ([]domain.Idea, error) {
			return []domain.Idea{target, other}, nil
		},
		UpdateFunc: func(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Idea, error) {
			updated := target
			updated.Title = patch["title"].(string)
			return updated, nil
		},
	}
	s := NewIdeaStore(slog.Default(), mock, scope.NewSelection())
	if err := s.Load(context.Background(), domain.ListFilter{}); err != nil {
		t.Fatalf("load: %v", err)
	}

	updated, err := s.Update(context.Background(), target.ID, domain.Patch{"title": "after"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" {
		t.Errorf("returned title: got %q, want %q", updated.Title, "after")
	}

	got, ok := s.Get(target.ID)
	if !ok {
		t.Fatal("updated record missing from cache")
	}
	if got.Title != "after" {
		t.Errorf("cached title: got %q, want %q", got.Title, "after")
	}
	if untouched, _ := s.Get(other.ID); untouched.Title != "untouched" {
		t.Errorf("other record changed: got %q", untouched.Title)
	}
}

func TestUpdate_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	mock := &clientMock[domain.Idea]{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Idea, error) {
			t.Error("Update must not reach the network with invalid input")
			return domain.Idea{}, nil
		},
	}
	s := NewIdeaStore(slog.Default(), mock, scope.NewSelection())

	if _, err := s.Update(context.Background(), uuid.Nil, domain.Patch{"title": "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("nil id: got %v, want ErrValidation", err)
	}
	if _, err := s.Update(context.Background(), uuid.New(), domain.Patch{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty patch: got %v, want ErrValidation", err)
	}
	if len(mock.UpdateCalls()) != 0 {
		t.Errorf("Update calls: got %d, want 0", len(mock.UpdateCalls()))
	}
}

func TestUpdate_FailureReconciles(t *testing.T) {
	t.Parallel()

	serverTruth := []domain.Idea{newIdea("truth")}
	mock := &clientMock[domain.Idea]{
		ListFunc: func(ctx context.Context, filter domain.ListFilter) ([]domain.Idea, error) {
			return serverTruth, nil
		},
		UpdateFunc: func(ctx context.Context, id uuid.UUID, patch domain.Patch) (domain.Idea, error) {
			return domain.Idea{}, domain.NewNetworkError(409, "conflict")
		},
	}
	s := NewIdeaStore(slog.Default(), mock, scope.NewSelection())
	if err := s.Load(context.Background(), domain.ListFilter{}); err != nil {
		t.Fatalf("load: %v", err)
	}

	_, err := s.Update(context.Background(), serverTruth[0].ID, domain.Patch{"title": "nope"})
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("error: got %v, want ErrNetwork", err)
	}

	if calls := len(mock.ListCalls()); calls != 2 {
		t.Errorf("List calls: got %d, want 2", calls)
	}
	if diff := cmp.Diff(serverTruth, s.Records()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(s.Err(), domain.ErrNetwork) {
		t.Errorf("error state: got %v, want ErrNetwork", s.Err())
	}
}
