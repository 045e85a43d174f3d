package domain

import "testing"

func TestCandidateFilterNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page clamps to one", -3, 20, 1, 20},
		{"zero page clamps to one", 0, 20, 1, 20},
		{"limit capped at hundred", 2, 500, 2, 100},
		{"negative limit defaults", 1, -1, 1, 10},
		{"in range untouched", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := CandidateFilter{Page: tt.page, Limit: tt.limit}
			f.Normalize()
			if f.Page != tt.wantPage || f.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					f.Page, f.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestCandidateFilterOffset(t *testing.T) {
	f := CandidateFilter{Page: 3, Limit: 10}
	if got := f.Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}

	f = CandidateFilter{Page: 1, Limit: 50}
	if got := f.Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 25, 4},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
