package view

import (
	"math"
	"testing"
)

func TestPagination_TotalPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{30, 3},
	}
	for _, tt := range tests {
		p := NewPagination(1, tt.count)
		if got := p.TotalPages(); got != tt.want {
			t.Errorf("TotalPages(count=%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestPagination_LastPageOfTwentyFive(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}
	page := Slice(items, NewPagination(3, len(items)))
	if len(page) != 5 {
		t.Fatalf("page 3 len = %d, want 5", len(page))
	}
	if page[0] != 20 || page[4] != 24 {
		t.Errorf("page 3 = %v, want 20..24", page)
	}
}

func TestPagination_OutOfRangeSelectsNothing(t *testing.T) {
	items := make([]int, 25)
	for _, cur := range []int{-1, 0, 4, 7} {
		if got := Slice(items, NewPagination(cur, 25)); len(got) != 0 {
			t.Errorf("page %d len = %d, want 0", cur, len(got))
		}
	}
}

func TestPagination_Affordances(t *testing.T) {
	tests := []struct {
		name     string
		cur      int
		count    int
		wantPrev bool
		wantNext bool
	}{
		{"first of three", 1, 25, false, true},
		{"middle", 2, 25, true, true},
		{"last", 3, 25, true, false},
		{"single page", 1, 5, false, false},
		{"empty list", 1, 0, false, false},
		{"beyond last", 7, 25, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.cur, tt.count)
			if p.HasPrev() != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev(), tt.wantPrev)
			}
			if p.HasNext() != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext(), tt.wantNext)
			}
		})
	}
}

func TestPagination_Label(t *testing.T) {
	if got := NewPagination(7, 25).Label(); got != "Page 7 of 3" {
		t.Errorf("Label = %q, want %q", got, "Page 7 of 3")
	}
}

func TestPagination_ExtremePages(t *testing.T) {
	items := make([]int, 25)
	for _, cur := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt/ItemsPerPage + 1, math.MinInt, math.MinInt + 1} {
		p := NewPagination(cur, len(items))
		lo, hi := p.Bounds()
		if lo < 0 || hi < lo || hi > len(items) {
			t.Errorf("Bounds(page %d) = [%d, %d), want a range inside [0, %d]", cur, lo, hi, len(items))
		}
		if got := Slice(items, p); len(got) != 0 {
			t.Errorf("page %d len = %d, want 0", cur, len(got))
		}
	}
}
