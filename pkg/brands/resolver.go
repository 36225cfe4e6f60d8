// Package brands loads the brand set valid for the current domain and
// filters, and reconciles the active selection against it.
package brands

import (
	"context"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// Feed is the scoped brand listing endpoint, implemented by the catalog
// client.
type Feed interface {
	ListBrands(ctx context.Context, q types.BrandQuery) ([]types.Brand, error)
}

type Resolver struct {
	Feed Feed
}

// ScopeFor builds the brand query for the active domain and filters.
func ScopeFor(domain types.Domain, state types.FilterState) types.BrandQuery {
	q := types.BrandQuery{
		ProductType: string(domain),
		CategoryIds: state.Categories,
		InStock:     state.InStock,
	}
	if len(state.CategorySlugs) > 0 {
		q.PrimaryCategorySlug = state.CategorySlugs[0]
		q.CategorySlug = state.CategorySlugs[0]
	} else if len(state.SubcategorySlugs) > 0 {
		q.CategorySlug = state.SubcategorySlugs[0]
	}
	return q
}

func (r *Resolver) Load(ctx context.Context, domain types.Domain, state types.FilterState) ([]types.Brand, error) {
	return r.Feed.ListBrands(ctx, ScopeFor(domain, state))
}

// Reconcile drops selected brand ids and slugs that are no longer present in
// the freshly loaded allowed set. When nothing is dropped the previous state
// pointer is returned unmodified, callers rely on that reference equality to
// skip a re-render and re-fetch cascade.
//
// A brand pinned via the URL is exempt only until the feed loads: Reconcile
// is the allowed-set check, so it must not run before the feed arrives.
func Reconcile(prev *types.FilterState, allowed []types.Brand) *types.FilterState {
	allowedIds := make(map[uint]struct{}, len(allowed))
	allowedSlugs := make(map[string]struct{}, len(allowed))
	for _, b := range allowed {
		allowedIds[b.Id] = struct{}{}
		allowedSlugs[types.NormalizeSlug(b.Slug)] = struct{}{}
	}

	keptIds := prev.Brands
	changed := false
	for i, id := range prev.Brands {
		if _, ok := allowedIds[id]; !ok {
			if !changed {
				keptIds = append([]uint{}, prev.Brands[:i]...)
				changed = true
			}
		} else if changed {
			keptIds = append(keptIds, id)
		}
	}

	keptSlugs := prev.BrandSlugs
	slugsChanged := false
	for i, slug := range prev.BrandSlugs {
		if _, ok := allowedSlugs[types.NormalizeSlug(slug)]; !ok {
			if !slugsChanged {
				keptSlugs = append([]string{}, prev.BrandSlugs[:i]...)
				slugsChanged = true
			}
		} else if slugsChanged {
			keptSlugs = append(keptSlugs, slug)
		}
	}

	if !changed && !slugsChanged {
		return prev
	}
	next := *prev
	next.Brands = keptIds
	next.BrandSlugs = keptSlugs
	return &next
}
