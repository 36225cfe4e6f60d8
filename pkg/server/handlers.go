package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/catalog"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/common"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/pagination"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/query"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/taxonomy"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// ListingResponse carries both the server reported count, which pagination
// follows, and the filtered count of the page actually shown after the
// client side extra-filter pass.
type ListingResponse struct {
	Results       []types.Product `json:"results"`
	Count         int             `json:"count"`
	FilteredCount int             `json:"filteredCount"`
	Page          int             `json:"page"`
	PageSize      int             `json:"pageSize"`
	TotalPages    int             `json:"totalPages"`
}

func (ws *WebServer) pageSize() int {
	if ws.PageSize > 0 {
		return ws.PageSize
	}
	return query.DefaultPageSize
}

func (ws *WebServer) Listing(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		common.RespondToOptions(w, r)
		return
	}
	sr, err := decodeListingRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	go noListings.Inc()

	state := sr.FilterState()
	ctx := sr.QueryContext(ws.pageSize())
	params := query.BuildParams(state, ctx, sr.Page)

	sessionId := common.HandleSessionCookie(ws.Tracking, w, r)
	if ws.Tracking != nil {
		go func() {
			if err := ws.Tracking.TrackListing(sessionId, ctx.Domain, state, sr.Page); err != nil {
				log.Printf("Failed to track listing %v", err)
			}
		}()
	}

	result, err := ws.Catalog.ListProducts(r.Context(), ctx.Domain, params)
	if err != nil {
		// upstream failures degrade to an empty page, never to an error
		log.Printf("Listing fetch failed for %s: %v", ctx.Domain, err)
		result = &catalog.ListingResult{Products: []types.Product{}}
	}

	totalPages := (result.Count + ctx.PageSize - 1) / ctx.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := pagination.Clamp(sr.Page, totalPages)
	if page != sr.Page && err == nil {
		// past-the-end requests refetch at the clamped page so the reported
		// page number and the results agree
		params.Set("page", strconv.Itoa(page))
		if refetched, rerr := ws.Catalog.ListProducts(r.Context(), ctx.Domain, params); rerr == nil {
			result = refetched
		} else {
			log.Printf("Listing refetch failed for %s: %v", ctx.Domain, rerr)
		}
	}
	visible := query.PostFilter(result.Products, state, ctx.Domain)

	defaultHeaders(w, r, "20")
	w.WriteHeader(http.StatusOK)
	if err := writeJson(w, ListingResponse{
		Results:       visible,
		Count:         result.Count,
		FilteredCount: len(visible),
		Page:          page,
		PageSize:      ctx.PageSize,
		TotalPages:    totalPages,
	}); err != nil {
		log.Printf("Failed to encode listing response: %v", err)
	}
}

func (ws *WebServer) Sidebar(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		common.RespondToOptions(w, r)
		return
	}
	domain := types.ParseDomain(r.URL.Query().Get("domain"))
	go noSidebars.Inc()

	categories, err := ws.Catalog.ListCategories(r.Context(), types.CategoryQuery{
		ParentSlug:      string(domain),
		IncludeChildren: true,
		PageSize:        500,
	})
	if err != nil {
		log.Printf("Failed to load categories for %s: %v", domain, err)
		categories = []types.Category{}
	}
	sections := taxonomy.ForDomain(domain).Classify(categories)

	publicHeaders(w, r, "600")
	w.WriteHeader(http.StatusOK)
	if err := writeJson(w, sections); err != nil {
		log.Printf("Failed to encode sidebar: %v", err)
	}
}

func (ws *WebServer) Brands(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		common.RespondToOptions(w, r)
		return
	}
	q := types.BrandQuery{}
	if err := requestDecoder.Decode(&q, sanitizeNumeric(r.URL.Query())); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	go noBrandLookups.Inc()

	brands, err := ws.Catalog.ListBrands(r.Context(), q)
	if err != nil {
		log.Printf("Failed to load brands: %v", err)
		brands = []types.Brand{}
	}

	publicHeaders(w, r, "600")
	w.WriteHeader(http.StatusOK)
	if err := writeJson(w, brands); err != nil {
		log.Printf("Failed to encode brands: %v", err)
	}
}

// FilterDefaults exposes the default state and sort vocabulary so clients
// do not hardcode them.
func (ws *WebServer) FilterDefaults(w http.ResponseWriter, r *http.Request) {
	publicHeaders(w, r, "3600")
	w.WriteHeader(http.StatusOK)
	err := writeJson(w, map[string]any{
		"defaults": types.DefaultFilterState(),
		"sortKeys": []types.SortKey{
			types.SortNameAsc, types.SortNameDesc,
			types.SortPriceAsc, types.SortPriceDesc,
			types.SortPopular,
		},
	})
	if err != nil {
		log.Printf("Failed to encode filter defaults: %v", err)
	}
}

func (ws *WebServer) TrackClick(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		common.RespondToOptions(w, r)
		return
	}
	sessionId := common.HandleSessionCookie(ws.Tracking, w, r)
	productId, err := strconv.Atoi(r.URL.Query().Get("id"))
	position, _ := strconv.Atoi(r.URL.Query().Get("pos"))

	if ws.Tracking != nil && err == nil {
		if err := ws.Tracking.TrackClick(sessionId, uint(productId), float32(position)/100.0); err != nil {
			log.Printf("Failed to track click %v", err)
		}
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
