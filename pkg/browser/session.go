// Package browser owns the filter state and page number for one navigation
// and wires the resolvers together: URL seed, sidebar classification, query
// resolution, fetch, post-filter and pagination recompute.
package browser

import (
	"context"
	"log"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/brands"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/catalog"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/filters"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/pagination"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/query"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/taxonomy"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/tracking"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/urlstate"
)

type Config struct {
	Domain    types.Domain
	AtRoot    bool
	PageSize  int
	Catalog   *catalog.Client
	Tracking  tracking.Tracking
	SessionId string

	// OnUpdate receives a snapshot after every applied fetch. ScrollToTop
	// fires when pagination navigates. Either may be nil.
	OnUpdate    func(Snapshot)
	ScrollToTop func()
}

// Snapshot is the render-ready view of a session at one point in time.
// FilteredCount can be lower than TotalCount when the post-filter pass
// dropped items from the server page, pagination still follows TotalCount.
type Snapshot struct {
	Domain        types.Domain           `json:"domain"`
	State         types.FilterState      `json:"filters"`
	Products      []types.Product        `json:"results"`
	TotalCount    int                    `json:"count"`
	FilteredCount int                    `json:"filteredCount"`
	Page          int                    `json:"page"`
	TotalPages    int                    `json:"totalPages"`
	Sidebar       []types.SidebarSection `json:"sidebar,omitempty"`
	Brands        []types.Brand          `json:"brands,omitempty"`
	Query         string                 `json:"query"`
}

// Session lives from mount until the user navigates to a different top level
// category. Overlapping listing fetches are resolved by a monotonic request
// generation: a result is applied only while its generation is still the
// latest, so the last started fetch always wins regardless of arrival order.
type Session struct {
	cfg        Config
	store      *filters.Store
	pages      *pagination.Controller
	classifier taxonomy.Classifier
	resolver   *brands.Resolver

	generation atomic.Uint64

	mu            sync.Mutex
	ctx           context.Context
	urlQuery      url.Values
	sidebar       []types.SidebarSection
	allowed       []types.Brand
	products      []types.Product
	totalCount    int
	filteredCount int
}

func NewSession(cfg Config) *Session {
	if cfg.PageSize <= 0 {
		cfg.PageSize = query.DefaultPageSize
	}
	s := &Session{
		cfg:        cfg,
		store:      filters.NewStore(types.DefaultFilterState()),
		pages:      pagination.NewController(cfg.PageSize),
		classifier: taxonomy.ForDomain(cfg.Domain),
		resolver:   &brands.Resolver{Feed: cfg.Catalog},
		urlQuery:   url.Values{},
	}
	s.pages.Navigate = s.navigate
	s.pages.ScrollToTop = cfg.ScrollToTop
	return s
}

// Start seeds the state from the URL, loads the category and brand feeds and
// fires the first fetch. The passed context bounds the whole navigation.
func (s *Session) Start(ctx context.Context, rawQuery url.Values) {
	pq := urlstate.Decode(rawQuery)

	s.mu.Lock()
	s.ctx = ctx
	s.urlQuery = rawQuery
	s.pages.Seed(pq.Page)
	s.mu.Unlock()

	s.store.Replace(urlstate.Seed(pq, types.DefaultFilterState()))
	// change notifications start only after the seed is in place
	s.store.OnChange(s.onFilterChange)

	go s.loadSidebar(ctx)
	go s.loadBrands(ctx)
	s.refresh()
}

func (s *Session) State() types.FilterState {
	return s.store.State()
}

func (s *Session) Toggle(field filters.Field, value any) {
	s.store.Toggle(field, value)
}

func (s *Session) SetPriceRange(min, max *float64) {
	s.store.SetRange(min, max)
}

func (s *Session) SetSort(key types.SortKey) {
	s.store.SetSort(key)
}

func (s *Session) SetInStock(v bool) {
	s.store.SetInStock(v)
}

func (s *Session) Reset() {
	s.store.Reset()
}

// GoToPage clamps and navigates. An unchanged page is a no-op, no URL write
// and no fetch.
func (s *Session) GoToPage(n int) {
	s.mu.Lock()
	moved := s.pages.GoToPage(n)
	s.mu.Unlock()
	if moved {
		if s.cfg.Tracking != nil {
			go s.cfg.Tracking.TrackPage(s.cfg.SessionId, s.cfg.Domain, n)
		}
		s.refresh()
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Domain:        s.cfg.Domain,
		State:         s.store.State(),
		Products:      s.products,
		TotalCount:    s.totalCount,
		FilteredCount: s.filteredCount,
		Page:          s.pages.Current(),
		TotalPages:    s.pages.TotalPages(),
		Sidebar:       s.sidebar,
		Brands:        s.allowed,
		Query:         s.urlQuery.Encode(),
	}
}

// navigate is the pagination controller's URL writer.
func (s *Session) navigate(page int) {
	next, changed := urlstate.Sync(s.urlQuery, s.store.State(), page)
	if changed {
		s.urlQuery = next
	}
}

func (s *Session) onFilterChange(state types.FilterState) {
	s.mu.Lock()
	s.pages.Seed(1)
	next, changed := urlstate.Sync(s.urlQuery, state, 1)
	if changed {
		s.urlQuery = next
	}
	ctx := s.ctx
	s.mu.Unlock()

	go s.loadBrands(ctx)
	s.refresh()
}

func (s *Session) loadSidebar(ctx context.Context) {
	categories, err := s.cfg.Catalog.ListCategories(ctx, types.CategoryQuery{
		ParentSlug:      string(s.cfg.Domain),
		IncludeChildren: true,
		PageSize:        500,
	})
	if err != nil {
		log.Printf("Failed to load categories for %s: %v", s.cfg.Domain, err)
		categories = []types.Category{}
	}
	sections := s.classifier.Classify(categories)
	s.mu.Lock()
	s.sidebar = sections
	s.mu.Unlock()
	s.notify()
}

// loadBrands reloads the allowed brand set for the current filters and
// reconciles the selection against it. Reconciliation is skipped on a failed
// load, dropping selections needs the canonical set.
func (s *Session) loadBrands(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	state := s.store.State()
	allowed, err := s.resolver.Load(ctx, s.cfg.Domain, state)
	if err != nil {
		log.Printf("Failed to load brands for %s: %v", s.cfg.Domain, err)
		return
	}
	s.mu.Lock()
	s.allowed = allowed
	s.mu.Unlock()

	prev := s.store.State()
	next := brands.Reconcile(&prev, allowed)
	if next != &prev {
		s.store.Replace(*next)
	}
	s.notify()
}

// refresh starts one listing fetch for the current state. The captured
// generation decides whether the arriving result may be applied.
func (s *Session) refresh() {
	gen := s.generation.Add(1)

	s.mu.Lock()
	ctx := s.ctx
	page := s.pages.Current()
	s.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	state := s.store.State()
	params := query.BuildParams(state, query.Context{
		Domain:   s.cfg.Domain,
		AtRoot:   s.cfg.AtRoot,
		PageSize: s.cfg.PageSize,
	}, page)

	if s.cfg.Tracking != nil {
		go func() {
			if err := s.cfg.Tracking.TrackListing(s.cfg.SessionId, s.cfg.Domain, state, page); err != nil {
				log.Printf("Failed to track listing %v", err)
			}
		}()
	}

	go func() {
		result, err := s.cfg.Catalog.ListProducts(ctx, s.cfg.Domain, params)
		if err != nil {
			log.Printf("Listing fetch failed for %s: %v", s.cfg.Domain, err)
			result = &catalog.ListingResult{Products: []types.Product{}}
		}
		if gen != s.generation.Load() {
			// a newer fetch started, discard
			return
		}
		visible := query.PostFilter(result.Products, state, s.cfg.Domain)

		s.mu.Lock()
		if gen != s.generation.Load() {
			s.mu.Unlock()
			return
		}
		s.products = visible
		s.totalCount = result.Count
		s.filteredCount = len(visible)
		before := s.pages.Current()
		s.pages.SetTotalCount(result.Count)
		reclamped := s.pages.Current() != before
		if reclamped {
			s.navigate(s.pages.Current())
		}
		s.mu.Unlock()
		s.notify()
		if reclamped {
			// the fetched page lay past the end, fetch the clamped one
			s.refresh()
		}
	}()
}

func (s *Session) notify() {
	if s.cfg.OnUpdate != nil {
		s.cfg.OnUpdate(s.Snapshot())
	}
}
