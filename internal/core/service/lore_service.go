package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamriel-archive/lore-api/internal/core/domain"
	"github.com/tamriel-archive/lore-api/internal/core/ports"
	"github.com/tamriel-archive/lore-api/internal/pkg/metrics"
)

// LoreService manages the encyclopedia. Writes are restricted to admins and
// moderators by the router.
type LoreService struct {
	repo ports.LoreRepository
	log  zerolog.Logger
}

func NewLoreService(repo ports.LoreRepository, log zerolog.Logger) *LoreService {
	return &LoreService{repo: repo, log: log}
}

func (s *LoreService) CreateEntry(ctx context.Context, kind string, in ports.LoreInput) (*domain.LoreEntry, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.LoreEntry{
		Kind:      k,
		Name:      strings.TrimSpace(in.Name),
		Slug:      makeSlug(in.Name, string(k)),
		Summary:   in.Summary,
		Body:      in.Body,
		Tags:      normalizeTags(in.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create lore entry: %w", err)
	}

	metrics.ContentCreatedTotal.WithLabelValues(string(k)).Inc()
	s.log.Info().Str("kind", string(k)).Str("slug", entry.Slug).Msg("lore entry created")
	return entry, nil
}

func (s *LoreService) GetEntry(ctx context.Context, kind, slug string) (*domain.LoreEntry, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	return s.repo.FindBySlug(ctx, k, slug)
}

func (s *LoreService) ListEntries(ctx context.Context, in ports.ListLoreInput) (*ports.ListResult[*domain.LoreEntry], error) {
	k, err := parseKind(in.Kind)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePage(in.Page, in.Limit)
	entries, total, err := s.repo.List(ctx, ports.LoreFilter{
		Kind:   k,
		Tag:    strings.ToLower(strings.TrimSpace(in.Tag)),
		Search: strings.TrimSpace(in.Search),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list lore entries: %w", err)
	}
	return newListResult(entries, total, page, limit), nil
}

func (s *LoreService) UpdateEntry(ctx context.Context, kind, slug string, in ports.UpdateLoreInput) (*domain.LoreEntry, error) {
	entry, err := s.GetEntry(ctx, kind, slug)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		entry.Name = strings.TrimSpace(*in.Name)
		entry.Slug = makeSlug(entry.Name, string(entry.Kind))
	}
	if in.Summary != nil {
		entry.Summary = *in.Summary
	}
	if in.Body != nil {
		entry.Body = *in.Body
	}
	if in.Tags != nil {
		entry.Tags = normalizeTags(in.Tags)
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update lore entry: %w", err)
	}
	return entry, nil
}

func (s *LoreService) DeleteEntry(ctx context.Context, kind, slug string) error {
	entry, err := s.GetEntry(ctx, kind, slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("delete lore entry: %w", err)
	}
	s.log.Info().Str("kind", string(entry.Kind)).Str("slug", entry.Slug).Msg("lore entry deleted")
	return nil
}

// parseKind maps an unknown kind to a not-found error: /v1/lore/dragons is a
// page that does not exist rather than a malformed request.
func parseKind(kind string) (domain.LoreKind, error) {
	k, ok := domain.ParseLoreKind(kind)
	if !ok {
		return "", fmt.Errorf("kind %q: %w", kind, domain.ErrLoreNotFound)
	}
	return k, nil
}

// normalizeTags lowercases, trims, drops empties and de-duplicates tags,
// returning them sorted.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
