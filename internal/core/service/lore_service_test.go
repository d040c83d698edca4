package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
)

func TestLoreService_CreateAndGet(t *testing.T) {
	svc := NewLoreService(newStubLoreRepo(), zerolog.Nop())
	ctx := context.Background()

	e, err := svc.CreateEntry(ctx, "creatures", ports.LoreInput{
		Name: "Cliff Racer",
		Body: "Banished by St. Jiub.",
		Tags: []string{" Morrowind", "pest", "morrowind", ""},
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if e.Slug != "cliff-racer" || e.Kind != domain.LoreCreature {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if !reflect.DeepEqual(e.Tags, []string{"morrowind", "pest"}) {
		t.Fatalf("tags not normalized: %v", e.Tags)
	}

	got, err := svc.GetEntry(ctx, "creatures", "cliff-racer")
	if err != nil || got.ID != e.ID {
		t.Fatalf("GetEntry: %v %+v", err, got)
	}

	if _, err := svc.GetEntry(ctx, "races", "cliff-racer"); !errors.Is(err, domain.ErrLoreNotFound) {
		t.Fatalf("slug lookup must be scoped to kind, got %v", err)
	}
}

func TestLoreService_UnknownKindIsNotFound(t *testing.T) {
	svc := NewLoreService(newStubLoreRepo(), zerolog.Nop())

	if _, err := svc.CreateEntry(context.Background(), "dragons", ports.LoreInput{Name: "Alduin"}); !errors.Is(err, domain.ErrLoreNotFound) {
		t.Fatalf("expected ErrLoreNotFound, got %v", err)
	}
	if _, err := svc.ListEntries(context.Background(), ports.ListLoreInput{Kind: "dragons"}); !errors.Is(err, domain.ErrLoreNotFound) {
		t.Fatalf("expected ErrLoreNotFound, got %v", err)
	}
}

func TestLoreService_SlugUniquePerKind(t *testing.T) {
	svc := NewLoreService(newStubLoreRepo(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.CreateEntry(ctx, "regions", ports.LoreInput{Name: "Morrowind"}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if _, err := svc.CreateEntry(ctx, "books", ports.LoreInput{Name: "Morrowind"}); err != nil {
		t.Fatalf("same slug in another kind must be allowed: %v", err)
	}
	if _, err := svc.CreateEntry(ctx, "regions", ports.LoreInput{Name: "morrowind"}); !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestLoreService_UpdateDelete(t *testing.T) {
	svc := NewLoreService(newStubLoreRepo(), zerolog.Nop())
	ctx := context.Background()
	if _, err := svc.CreateEntry(ctx, "races", ports.LoreInput{Name: "Khajiit", Tags: []string{"elsweyr"}}); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	e, err := svc.UpdateEntry(ctx, "races", "khajiit", ports.UpdateLoreInput{Summary: strPtr("Has wares.")})
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if e.Summary != "Has wares." || len(e.Tags) != 1 {
		t.Fatalf("unexpected entry: %+v", e)
	}

	if err := svc.DeleteEntry(ctx, "races", "khajiit"); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := svc.DeleteEntry(ctx, "races", "khajiit"); !errors.Is(err, domain.ErrLoreNotFound) {
		t.Fatalf("expected ErrLoreNotFound, got %v", err)
	}
}
