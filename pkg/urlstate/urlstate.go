// Package urlstate maps the navigable URL query string to and from the
// filter state and page number. The query string is the only persistence
// layer for filters across reloads: page, brand_id and brand (slug) are read
// on mount, every other dimension is session local.
package urlstate

import (
	"net/url"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type PageQuery struct {
	Page     int    `schema:"page"`
	BrandIds []uint `schema:"brand_id"`
	Brand    string `schema:"brand"`
}

// Decode reads the persisted dimensions from a raw query. Non numeric or
// sub-1 page values normalize to 1, bad brand ids are dropped.
func Decode(query url.Values) PageQuery {
	sanitized := url.Values{}
	for key, values := range query {
		switch key {
		case "page":
			for _, v := range values {
				n, err := strconv.Atoi(v)
				if err == nil && n >= 1 {
					sanitized.Add(key, v)
				}
			}
		case "brand_id":
			for _, v := range values {
				if _, err := strconv.ParseUint(v, 10, 64); err == nil {
					sanitized.Add(key, v)
				}
			}
		default:
			sanitized[key] = values
		}
	}

	result := PageQuery{}
	if err := decoder.Decode(&result, sanitized); err != nil {
		result = PageQuery{}
	}
	if result.Page < 1 {
		result.Page = 1
	}
	return result
}

// Seed applies the URL persisted selections onto the default state for the
// domain. Brand ids seeded here are the "pinned" brands, they survive until
// the brand feed's allowed-set check runs.
func Seed(q PageQuery, defaults types.FilterState) types.FilterState {
	state := defaults
	if len(q.BrandIds) > 0 {
		state.Brands = append([]uint{}, q.BrandIds...)
	}
	if q.Brand != "" {
		state.BrandSlugs = []string{types.NormalizeSlug(q.Brand)}
	}
	return state
}

// Encode writes the persisted dimensions back into query form. Page 1 is the
// default and stays off the URL.
func Encode(state types.FilterState, page int) url.Values {
	query := url.Values{}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}
	for _, id := range state.Brands {
		query.Add("brand_id", strconv.FormatUint(uint64(id), 10))
	}
	if len(state.BrandSlugs) > 0 {
		query.Set("brand", state.BrandSlugs[0])
	}
	return query
}

// Sync merges the persisted dimensions into an existing query, leaving
// foreign parameters alone, and reports whether anything changed.
func Sync(current url.Values, state types.FilterState, page int) (url.Values, bool) {
	next := url.Values{}
	for key, values := range current {
		switch key {
		case "page", "brand_id", "brand":
		default:
			next[key] = values
		}
	}
	for key, values := range Encode(state, page) {
		next[key] = values
	}
	return next, next.Encode() != current.Encode()
}
