package filters

import (
	"testing"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

func TestToggleInvolution(t *testing.T) {
	start := types.DefaultFilterState()
	idFields := []Field{FieldCategories, FieldBrands, FieldSubcategories}
	for _, f := range idFields {
		once := Toggle(start, f, uint(5))
		twice := Toggle(once, f, uint(5))
		if !twice.Equal(start) {
			t.Errorf("toggle(toggle(x)) != x for %s", f)
		}
		if once.Equal(start) {
			t.Errorf("toggle should change the state for %s", f)
		}
	}
	slugFields := []Field{
		FieldCategorySlugs, FieldBrandSlugs, FieldSubcategorySlugs,
		FieldShoeTypes, FieldClothingItems, FieldJewelryMaterials,
		FieldJewelryGenders, FieldHeadwearTypes,
	}
	for _, f := range slugFields {
		once := Toggle(start, f, "sneakers")
		twice := Toggle(once, f, "sneakers")
		if !twice.Equal(start) {
			t.Errorf("toggle(toggle(x)) != x for %s", f)
		}
	}
}

func TestToggleRemovesExisting(t *testing.T) {
	state := types.DefaultFilterState()
	state.Brands = []uint{3, 7}
	next := Toggle(state, FieldBrands, uint(3))
	if len(next.Brands) != 1 || next.Brands[0] != 7 {
		t.Errorf("expected [7], got %v", next.Brands)
	}
	// the input state is never mutated
	if len(state.Brands) != 2 {
		t.Errorf("toggle mutated its input: %v", state.Brands)
	}
}

func TestToggleSlugNormalization(t *testing.T) {
	state := Toggle(types.DefaultFilterState(), FieldCategorySlugs, "Running_Shoes")
	if len(state.CategorySlugs) != 1 || state.CategorySlugs[0] != "running-shoes" {
		t.Errorf("expected normalized slug, got %v", state.CategorySlugs)
	}
}

func TestToggleUnknownFieldIsNoop(t *testing.T) {
	start := types.DefaultFilterState()
	if !Toggle(start, Field("bogus"), "x").Equal(start) {
		t.Errorf("unknown field should leave the state untouched")
	}
	if !Toggle(start, FieldCategories, "not-a-number").Equal(start) {
		t.Errorf("mistyped value should leave the state untouched")
	}
}

func TestStoreStructuralEqualityGate(t *testing.T) {
	store := NewStore(types.DefaultFilterState())
	notified := 0
	store.OnChange(func(types.FilterState) { notified++ })

	if !store.Toggle(FieldBrands, uint(9)) {
		t.Fatalf("expected first toggle to report a change")
	}
	if notified != 1 {
		t.Fatalf("expected one notification, got %d", notified)
	}

	// replacing with a structurally equal copy must not notify
	copyState := store.State()
	copyState.Brands = append([]uint{}, copyState.Brands...)
	if store.Replace(copyState) {
		t.Errorf("deep-equal replacement should be a no-op")
	}
	if notified != 1 {
		t.Errorf("deep-equal replacement should not notify, got %d", notified)
	}
}

func TestStoreReset(t *testing.T) {
	store := NewStore(types.DefaultFilterState())
	store.Toggle(FieldCategories, uint(1))
	store.SetInStock(true)
	store.SetSort(types.SortPriceDesc)
	store.Reset()

	state := store.State()
	if !state.Equal(types.DefaultFilterState()) {
		t.Errorf("reset should restore the default state, got %+v", state)
	}
	if state.SortBy != types.SortNameAsc {
		t.Errorf("default sort should be name_asc, got %s", state.SortBy)
	}
	if store.Reset() {
		t.Errorf("resetting twice should be a no-op")
	}
}

func TestSetRange(t *testing.T) {
	store := NewStore(types.DefaultFilterState())
	min := 10.5
	max := 99.0
	store.SetRange(&min, &max)
	state := store.State()
	if state.PriceMin == nil || *state.PriceMin != 10.5 {
		t.Errorf("expected price min 10.5, got %v", state.PriceMin)
	}
	if state.PriceMax == nil || *state.PriceMax != 99.0 {
		t.Errorf("expected price max 99, got %v", state.PriceMax)
	}
	if store.SetRange(&min, &max) {
		t.Errorf("setting the same range twice should be a no-op")
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"12.50", ptr(12.5)},
		{" 99 ", ptr(99.0)},
		{"", nil},
		{"abc", nil},
		{"-5", nil},
	}
	for _, tt := range tests {
		got := ParsePrice(tt.in)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("ParsePrice(%q) = %f, want %f", tt.in, *got, *tt.want)
		}
	}
}

func ptr(v float64) *float64 {
	return &v
}
