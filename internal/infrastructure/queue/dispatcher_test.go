package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
)

type recordingService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (s *recordingService) Process(_ context.Context, e domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func (s *recordingService) snapshot() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditEvent(nil), s.events...)
}

func TestShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())

	first := d.shardIndex("post-1")
	for range 10 {
		if got := d.shardIndex("post-1"); got != first {
			t.Fatalf("shardIndex changed: %d then %d", first, got)
		}
	}
	for _, id := range []string{"", "a", "post-2", "6650f1c2e4b0a1b2c3d4e5f6"} {
		if idx := d.shardIndex(id); idx < 0 || idx >= 4 {
			t.Errorf("shardIndex(%q) = %d, out of range", id, idx)
		}
	}
}

func TestNewDispatcherDefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}

func TestDispatcherPreservesPerResourceOrder(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(3, svc, zerolog.Nop())

	for _, action := range []string{"update", "update", "delete"} {
		d.Enqueue(domain.AuditEvent{Resource: "post", ResourceID: "p1", Action: action})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	got := svc.snapshot()
	if len(got) != 3 {
		t.Fatalf("processed %d events, want 3", len(got))
	}
	for i, want := range []string{"update", "update", "delete"} {
		if got[i].Action != want {
			t.Errorf("event %d action = %q, want %q", i, got[i].Action, want)
		}
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(1, svc, zerolog.Nop())

	for range channelBuffer + 5 {
		d.Enqueue(domain.AuditEvent{Resource: "comment", ResourceID: "c1"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	if got := len(svc.snapshot()); got != channelBuffer {
		t.Errorf("processed %d events, want %d", got, channelBuffer)
	}
}

func TestDispatcherContinuesAfterFailure(t *testing.T) {
	svc := &recordingService{err: errors.New("mongo down")}
	d := NewDispatcher(2, svc, zerolog.Nop())

	d.Enqueue(domain.AuditEvent{ResourceID: "a"})
	d.Enqueue(domain.AuditEvent{ResourceID: "b"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	if got := len(svc.snapshot()); got != 2 {
		t.Errorf("processed %d events, want 2", got)
	}
}
