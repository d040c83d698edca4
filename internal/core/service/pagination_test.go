package service

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultPageLimit},
		{-3, -1, 1, defaultPageLimit},
		{2, 50, 2, 50},
		{1, 1000, 1, maxPageLimit},
	}
	for _, tt := range tests {
		p, l := normalizePage(tt.page, tt.limit)
		if p != tt.wantPage || l != tt.wantLimit {
			t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)", tt.page, tt.limit, p, l, tt.wantPage, tt.wantLimit)
		}
	}
}

func TestNewListResult_TotalPages(t *testing.T) {
	res := newListResult[int](nil, 41, 1, 20)
	if res.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", res.TotalPages)
	}
	if res.Items == nil {
		t.Fatal("items must never be nil")
	}
}
