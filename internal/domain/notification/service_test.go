package notification

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"
)

type fakeNotificationRepo struct {
	notes []Notification
}

func (f *fakeNotificationRepo) List(_ context.Context) ([]Notification, error) {
	out := make([]Notification, len(f.notes))
	copy(out, f.notes)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *Notification) error {
	f.notes = append(f.notes, *n)
	return nil
}

func (f *fakeNotificationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.notes)), nil
}

func (f *fakeNotificationRepo) DeleteOldest(_ context.Context, n int) error {
	sort.Slice(f.notes, func(i, j int) bool { return f.notes[i].CreatedAt.Before(f.notes[j].CreatedAt) })
	if n > len(f.notes) {
		n = len(f.notes)
	}
	f.notes = f.notes[n:]
	return nil
}

func (f *fakeNotificationRepo) DeleteAll(_ context.Context) error {
	f.notes = nil
	return nil
}

func newTestService(repo *fakeNotificationRepo, logCap int, authorize Authorizer) *Service {
	svc := NewService(repo, logCap, authorize)
	seq := 0
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.idGenerator = func() string {
		seq++
		return fmt.Sprintf("note-%03d", seq)
	}
	svc.now = func() time.Time {
		return base.Add(time.Duration(seq) * time.Second)
	}
	return svc
}

func TestAddStoresNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := newTestService(repo, 50, nil)

	if err := svc.Add(context.Background(), "User Ana (u01) modified their availability for 2024-03-05."); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(repo.notes) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.notes))
	}
	got := repo.notes[0]
	if got.Message != "User Ana (u01) modified their availability for 2024-03-05." {
		t.Fatalf("unexpected message: %q", got.Message)
	}
	if got.Read {
		t.Fatal("new notifications start unread")
	}
}

func TestAddEvictsOldestBeyondCap(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := newTestService(repo, 3, nil)

	for i := 0; i < 5; i++ {
		if err := svc.Add(context.Background(), fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}

	if len(repo.notes) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(repo.notes))
	}
	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if listed[0].Message != "message 4" {
		t.Fatalf("expected newest first, got %q", listed[0].Message)
	}
	if listed[len(listed)-1].Message != "message 2" {
		t.Fatalf("expected oldest survivors kept, got %q", listed[len(listed)-1].Message)
	}
}

func TestNewServiceFallsBackToDefaultCap(t *testing.T) {
	svc := NewService(&fakeNotificationRepo{}, 0, nil)
	if svc.limit != DefaultCap {
		t.Fatalf("expected default cap %d, got %d", DefaultCap, svc.limit)
	}
}

func TestClearChecksAuthorization(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := newTestService(repo, 50, func(role string) bool { return role == "admin" })

	if err := svc.Add(context.Background(), "message"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Clear(context.Background(), "member"); !errors.Is(err, ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
	if len(repo.notes) != 1 {
		t.Fatal("unauthorized clear removed notifications")
	}

	if err := svc.Clear(context.Background(), "admin"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(repo.notes) != 0 {
		t.Fatalf("expected empty log, got %d", len(repo.notes))
	}
}
