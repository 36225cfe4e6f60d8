package brands

import (
	"testing"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

func allowedSet() []types.Brand {
	return []types.Brand{
		{Id: 1, Slug: "bayer", Name: "Bayer"},
		{Id: 2, Slug: "pfizer", Name: "Pfizer"},
		{Id: 3, Slug: "teva", Name: "Teva"},
	}
}

func TestReconcileDropsVanishedBrands(t *testing.T) {
	state := types.DefaultFilterState()
	state.Brands = []uint{1, 9, 3}
	state.BrandSlugs = []string{"bayer", "gone-brand"}

	next := Reconcile(&state, allowedSet())
	if next == &state {
		t.Fatalf("expected a new state when brands are dropped")
	}
	if len(next.Brands) != 2 || next.Brands[0] != 1 || next.Brands[1] != 3 {
		t.Errorf("expected [1 3], got %v", next.Brands)
	}
	if len(next.BrandSlugs) != 1 || next.BrandSlugs[0] != "bayer" {
		t.Errorf("expected [bayer], got %v", next.BrandSlugs)
	}
	// the input is left untouched
	if len(state.Brands) != 3 {
		t.Errorf("reconcile mutated its input: %v", state.Brands)
	}
}

func TestReconcileReferenceEquality(t *testing.T) {
	state := types.DefaultFilterState()
	state.Brands = []uint{2}
	state.BrandSlugs = []string{"teva"}

	if next := Reconcile(&state, allowedSet()); next != &state {
		t.Errorf("nothing dropped should return the same pointer")
	}
}

func TestReconcileEmptySelection(t *testing.T) {
	state := types.DefaultFilterState()
	if next := Reconcile(&state, allowedSet()); next != &state {
		t.Errorf("an empty selection has nothing to reconcile")
	}
}

func TestReconcileSlugNormalization(t *testing.T) {
	state := types.DefaultFilterState()
	state.BrandSlugs = []string{"Bayer"}

	if next := Reconcile(&state, allowedSet()); next != &state {
		t.Errorf("slug comparison should be case insensitive, got %v", next.BrandSlugs)
	}
}

func TestScopeFor(t *testing.T) {
	state := types.DefaultFilterState()
	state.Categories = []uint{5}
	state.CategorySlugs = []string{"antibiotics"}
	state.InStock = true

	q := ScopeFor(types.DomainMedicines, state)
	if q.ProductType != "medicines" {
		t.Errorf("expected product type medicines, got %q", q.ProductType)
	}
	if q.PrimaryCategorySlug != "antibiotics" || q.CategorySlug != "antibiotics" {
		t.Errorf("expected the primary category slug to scope the query, got %+v", q)
	}
	if !q.InStock || len(q.CategoryIds) != 1 {
		t.Errorf("stock and category ids should carry over, got %+v", q)
	}
}

func TestScopeForSubcategoryFallback(t *testing.T) {
	state := types.DefaultFilterState()
	state.SubcategorySlugs = []string{"painkillers"}

	q := ScopeFor(types.DomainMedicines, state)
	if q.CategorySlug != "painkillers" {
		t.Errorf("subcategory slug should scope when no category is selected, got %q", q.CategorySlug)
	}
	if q.PrimaryCategorySlug != "" {
		t.Errorf("no primary slug expected, got %q", q.PrimaryCategorySlug)
	}
}
