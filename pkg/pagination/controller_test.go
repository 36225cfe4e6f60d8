package pagination

import (
	"net/url"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		n, total, want int
	}{
		{1, 10, 1},
		{10, 10, 10},
		{11, 10, 10},
		{0, 10, 1},
		{-3, 10, 1},
		{5, 0, 1},
		{1, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.n, tt.total); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.n, tt.total, got, tt.want)
		}
	}
}

func TestGoToPage(t *testing.T) {
	c := NewController(12)
	c.SetTotalCount(50) // 5 pages

	navigated := 0
	scrolled := 0
	c.Navigate = func(int) { navigated++ }
	c.ScrollToTop = func() { scrolled++ }

	if !c.GoToPage(3) {
		t.Fatalf("expected navigation to page 3")
	}
	if c.Current() != 3 || navigated != 1 || scrolled != 1 {
		t.Errorf("expected page 3 with side effects, got page=%d nav=%d scroll=%d", c.Current(), navigated, scrolled)
	}

	// same page is a no-op, no URL write, no scroll
	if c.GoToPage(3) {
		t.Errorf("navigating to the current page should be a no-op")
	}
	if navigated != 1 || scrolled != 1 {
		t.Errorf("no-op navigation must not fire side effects")
	}

	// past the end clamps to the last page
	if !c.GoToPage(99) {
		t.Fatalf("expected navigation to the last page")
	}
	if c.Current() != 5 {
		t.Errorf("expected clamp to page 5, got %d", c.Current())
	}
}

func TestSetTotalCount(t *testing.T) {
	c := NewController(12)
	c.SetTotalCount(25)
	if c.TotalPages() != 3 {
		t.Errorf("expected 3 pages for 25 items, got %d", c.TotalPages())
	}
	c.SetTotalCount(0)
	if c.TotalPages() != 1 {
		t.Errorf("an empty result still has one page, got %d", c.TotalPages())
	}
}

func TestSetTotalCountReclamps(t *testing.T) {
	c := NewController(12)
	c.SetTotalCount(100)
	c.Seed(8)
	c.SetTotalCount(20) // shrinks to 2 pages
	if c.Current() != 2 {
		t.Errorf("current page should re-clamp into the new bounds, got %d", c.Current())
	}
}

func TestSeedSkipsSideEffects(t *testing.T) {
	c := NewController(12)
	c.Navigate = func(int) { t.Errorf("seed must not navigate") }
	c.ScrollToTop = func() { t.Errorf("seed must not scroll") }
	c.Seed(4)
	if c.Current() != 4 {
		t.Errorf("expected seeded page 4, got %d", c.Current())
	}
	c.Seed(-1)
	if c.Current() != 1 {
		t.Errorf("invalid seed should normalize to 1, got %d", c.Current())
	}
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"page=7", 7},
		{"page=abc", 1},
		{"page=0", 1},
		{"page=-2", 1},
		{"", 1},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.raw)
		if got := FromQuery(q); got != tt.want {
			t.Errorf("FromQuery(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
