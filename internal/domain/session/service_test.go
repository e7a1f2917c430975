package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeSessionRepo struct {
	sessions map[string]*Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *Session) error {
	copied := *s
	f.sessions[s.Token] = &copied
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (*Session, error) {
	found, ok := f.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *found
	return &copied, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteByUser(_ context.Context, userID string) error {
	for token, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, token)
		}
	}
	return nil
}

func newTestService(repo *fakeSessionRepo, ttl time.Duration) (*Service, *time.Time) {
	svc := NewService(repo, ttl)
	seq := 0
	svc.idGenerator = func() string {
		seq++
		return fmt.Sprintf("token-%03d", seq)
	}
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func TestStartAndResolve(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestService(repo, time.Hour)

	started, err := svc.Start(context.Background(), "u02")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if started.Token == "" {
		t.Fatal("expected a token")
	}

	userID, err := svc.Resolve(context.Background(), started.Token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if userID != "u02" {
		t.Fatalf("expected u02, got %q", userID)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	svc, _ := newTestService(newFakeSessionRepo(), time.Hour)

	if _, err := svc.Resolve(context.Background(), "ghost"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestResolveExpiredSessionIsDeleted(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, clock := newTestService(repo, time.Hour)

	started, err := svc.Start(context.Background(), "u02")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	*clock = clock.Add(2 * time.Hour)

	if _, err := svc.Resolve(context.Background(), started.Token); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, ok := repo.sessions[started.Token]; ok {
		t.Fatal("expired session was not deleted")
	}
}

func TestEndRevokesSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestService(repo, time.Hour)

	started, err := svc.Start(context.Background(), "u02")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := svc.End(context.Background(), started.Token); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), started.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEndAllForUser(t *testing.T) {
	repo := newFakeSessionRepo()
	svc, _ := newTestService(repo, time.Hour)

	first, _ := svc.Start(context.Background(), "u02")
	second, _ := svc.Start(context.Background(), "u02")
	other, _ := svc.Start(context.Background(), "u01")

	if err := svc.EndAllForUser(context.Background(), "u02"); err != nil {
		t.Fatalf("end all failed: %v", err)
	}

	for _, token := range []string{first.Token, second.Token} {
		if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected %s revoked, got %v", token, err)
		}
	}
	if _, err := svc.Resolve(context.Background(), other.Token); err != nil {
		t.Fatalf("unrelated session was revoked: %v", err)
	}
}

func TestNewServiceFallsBackToDefaultTTL(t *testing.T) {
	svc := NewService(newFakeSessionRepo(), 0)
	if svc.ttl != DefaultTTL {
		t.Fatalf("expected default TTL %v, got %v", DefaultTTL, svc.ttl)
	}
}
