package pagination

import (
	"net/url"
	"strconv"
)

// Controller tracks the current page and the page bounds derived from the
// server reported total count. Navigation side effects (URL rewrite, scroll
// to top) fire only when the clamped target actually differs from the page
// already on the URL.
type Controller struct {
	PageSize int

	// Navigate writes the page to the URL, ScrollToTop signals the render
	// side effect. Either may be nil.
	Navigate    func(page int)
	ScrollToTop func()

	current    int
	totalPages int
}

func NewController(pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Controller{PageSize: pageSize, current: 1, totalPages: 1}
}

func (c *Controller) Current() int {
	return c.current
}

func (c *Controller) TotalPages() int {
	return c.totalPages
}

// Clamp forces n into [1, max(totalPages, 1)].
func Clamp(n, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if n < 1 {
		return 1
	}
	if n > totalPages {
		return totalPages
	}
	return n
}

// SetTotalCount recomputes the page bounds after a fetch and re-clamps the
// current page into them.
func (c *Controller) SetTotalCount(count int) {
	pages := (count + c.PageSize - 1) / c.PageSize
	if pages < 1 {
		pages = 1
	}
	c.totalPages = pages
	c.current = Clamp(c.current, pages)
}

// GoToPage clamps n and navigates when the result differs from the current
// page. Returns whether a navigation happened, an unchanged page is a no-op
// with no URL update and no fetch.
func (c *Controller) GoToPage(n int) bool {
	clamped := Clamp(n, c.totalPages)
	if clamped == c.current {
		return false
	}
	c.current = clamped
	if c.Navigate != nil {
		c.Navigate(clamped)
	}
	if c.ScrollToTop != nil {
		c.ScrollToTop()
	}
	return true
}

// Seed sets the current page without firing side effects, used when the
// page arrives from the URL on mount.
func (c *Controller) Seed(page int) {
	if page < 1 {
		page = 1
	}
	c.current = page
}

// FromQuery reads the page parameter, normalizing non numeric or sub-1
// values to 1.
func FromQuery(query url.Values) int {
	n, err := strconv.Atoi(query.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
