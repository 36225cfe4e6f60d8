package filters

import (
	"strconv"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// Field names a toggleable array dimension of the filter state.
type Field string

const (
	FieldCategories       Field = "categories"
	FieldCategorySlugs    Field = "category_slugs"
	FieldBrands           Field = "brands"
	FieldBrandSlugs       Field = "brand_slugs"
	FieldSubcategories    Field = "subcategories"
	FieldSubcategorySlugs Field = "subcategory_slugs"
	FieldShoeTypes        Field = "shoe_types"
	FieldClothingItems    Field = "clothing_items"
	FieldJewelryMaterials Field = "jewelry_materials"
	FieldJewelryGenders   Field = "jewelry_genders"
	FieldHeadwearTypes    Field = "headwear_types"
)

func toggleUint(values []uint, v uint) []uint {
	for i, existing := range values {
		if existing == v {
			out := make([]uint, 0, len(values)-1)
			out = append(out, values[:i]...)
			return append(out, values[i+1:]...)
		}
	}
	out := make([]uint, len(values), len(values)+1)
	copy(out, values)
	return append(out, v)
}

func toggleString(values []string, v string) []string {
	for i, existing := range values {
		if existing == v {
			out := make([]string, 0, len(values)-1)
			out = append(out, values[:i]...)
			return append(out, values[i+1:]...)
		}
	}
	out := make([]string, len(values), len(values)+1)
	copy(out, values)
	return append(out, v)
}

func asUint(value any) (uint, bool) {
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v >= 0 {
			return uint(v), true
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n), true
		}
	}
	return 0, false
}

func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// Toggle returns a copy of state with value added to or removed from the
// given field, symmetric difference semantics. Applying the same toggle
// twice yields the original state. Unknown fields and mistyped values leave
// the state untouched.
func Toggle(state types.FilterState, field Field, value any) types.FilterState {
	switch field {
	case FieldCategories:
		if id, ok := asUint(value); ok {
			state.Categories = toggleUint(state.Categories, id)
		}
	case FieldBrands:
		if id, ok := asUint(value); ok {
			state.Brands = toggleUint(state.Brands, id)
		}
	case FieldSubcategories:
		if id, ok := asUint(value); ok {
			state.Subcategories = toggleUint(state.Subcategories, id)
		}
	case FieldCategorySlugs:
		if s, ok := asString(value); ok {
			state.CategorySlugs = toggleString(state.CategorySlugs, types.NormalizeSlug(s))
		}
	case FieldBrandSlugs:
		if s, ok := asString(value); ok {
			state.BrandSlugs = toggleString(state.BrandSlugs, types.NormalizeSlug(s))
		}
	case FieldSubcategorySlugs:
		if s, ok := asString(value); ok {
			state.SubcategorySlugs = toggleString(state.SubcategorySlugs, types.NormalizeSlug(s))
		}
	case FieldShoeTypes:
		if s, ok := asString(value); ok {
			state.ShoeTypes = toggleString(state.ShoeTypes, s)
		}
	case FieldClothingItems:
		if s, ok := asString(value); ok {
			state.ClothingItems = toggleString(state.ClothingItems, s)
		}
	case FieldJewelryMaterials:
		if s, ok := asString(value); ok {
			state.JewelryMaterials = toggleString(state.JewelryMaterials, s)
		}
	case FieldJewelryGenders:
		if s, ok := asString(value); ok {
			state.JewelryGenders = toggleString(state.JewelryGenders, s)
		}
	case FieldHeadwearTypes:
		if s, ok := asString(value); ok {
			state.HeadwearTypes = toggleString(state.HeadwearTypes, s)
		}
	}
	return state
}
