package types

import "slices"

type SortKey string

const (
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortPopular   SortKey = "popular"
)

func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortPopular:
		return SortKey(s)
	}
	return SortNameAsc
}

// FilterState is the canonical set of active filter selections. It is
// replaced wholesale on every mutation, never patched in place.
//
// Id arrays and slug arrays for the same concept are two independent sets,
// they are not kept in lockstep. Slugs win for server side slug parameters,
// ids win for client side highlighting.
type FilterState struct {
	Categories       []uint   `json:"categories,omitempty"`
	CategorySlugs    []string `json:"category_slugs,omitempty"`
	Brands           []uint   `json:"brands,omitempty"`
	BrandSlugs       []string `json:"brand_slugs,omitempty"`
	Subcategories    []uint   `json:"subcategories,omitempty"`
	SubcategorySlugs []string `json:"subcategory_slugs,omitempty"`

	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
	InStock  bool     `json:"in_stock,omitempty"`
	SortBy   SortKey  `json:"sort_by"`

	// Domain specific extras. No backend parameter exists for these, they
	// are applied as a client side post-filter over the returned page.
	ShoeTypes        []string `json:"shoe_types,omitempty"`
	ClothingItems    []string `json:"clothing_items,omitempty"`
	JewelryMaterials []string `json:"jewelry_materials,omitempty"`
	JewelryGenders   []string `json:"jewelry_genders,omitempty"`
	HeadwearTypes    []string `json:"headwear_types,omitempty"`
}

func DefaultFilterState() FilterState {
	return FilterState{SortBy: SortNameAsc}
}

func eqFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqUints(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(a, b)
}

func eqStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(a, b)
}

// Equal reports structural equality, array contents and order compared
// element-wise and scalars by value. Downstream effects key off this to
// avoid re-triggering themselves.
func (f FilterState) Equal(other FilterState) bool {
	return eqUints(f.Categories, other.Categories) &&
		eqStrings(f.CategorySlugs, other.CategorySlugs) &&
		eqUints(f.Brands, other.Brands) &&
		eqStrings(f.BrandSlugs, other.BrandSlugs) &&
		eqUints(f.Subcategories, other.Subcategories) &&
		eqStrings(f.SubcategorySlugs, other.SubcategorySlugs) &&
		eqFloatPtr(f.PriceMin, other.PriceMin) &&
		eqFloatPtr(f.PriceMax, other.PriceMax) &&
		f.InStock == other.InStock &&
		f.SortBy == other.SortBy &&
		eqStrings(f.ShoeTypes, other.ShoeTypes) &&
		eqStrings(f.ClothingItems, other.ClothingItems) &&
		eqStrings(f.JewelryMaterials, other.JewelryMaterials) &&
		eqStrings(f.JewelryGenders, other.JewelryGenders) &&
		eqStrings(f.HeadwearTypes, other.HeadwearTypes)
}

func (f FilterState) HasCategoryFilter() bool {
	return len(f.Categories) > 0 || len(f.CategorySlugs) > 0 ||
		len(f.Subcategories) > 0 || len(f.SubcategorySlugs) > 0
}
