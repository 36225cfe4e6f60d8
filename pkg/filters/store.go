package filters

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// Store holds the single source of truth for the active filters of one
// navigation. Every mutation replaces the state wholesale, and a change
// notification fires only when the replacement is structurally different
// from the previous state. That gate is what keeps the URL sync effect from
// re-triggering itself.
type Store struct {
	mu       sync.Mutex
	state    types.FilterState
	onChange func(types.FilterState)
}

func NewStore(initial types.FilterState) *Store {
	return &Store{state: initial}
}

// OnChange registers the single change listener. The listener runs on the
// mutating goroutine while no lock is held.
func (s *Store) OnChange(fn func(types.FilterState)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) State() types.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Replace swaps in next and reports whether anything actually changed.
// A structurally equal replacement is a no-op and does not notify.
func (s *Store) Replace(next types.FilterState) bool {
	s.mu.Lock()
	if s.state.Equal(next) {
		s.mu.Unlock()
		return false
	}
	s.state = next
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(next)
	}
	return true
}

func (s *Store) Toggle(field Field, value any) bool {
	return s.Replace(Toggle(s.State(), field, value))
}

func (s *Store) SetRange(min, max *float64) bool {
	next := s.State()
	next.PriceMin = min
	next.PriceMax = max
	return s.Replace(next)
}

func (s *Store) SetSort(key types.SortKey) bool {
	next := s.State()
	next.SortBy = key
	return s.Replace(next)
}

func (s *Store) SetInStock(v bool) bool {
	next := s.State()
	next.InStock = v
	return s.Replace(next)
}

// Reset returns the store to the domain default state, everything empty,
// in-stock off, name ascending sort.
func (s *Store) Reset() bool {
	return s.Replace(types.DefaultFilterState())
}

// ParsePrice coerces a raw price input to a bound. Malformed or negative
// input yields nil, the filter is omitted rather than rejected.
func ParsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
