package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

const DefaultPageSize = 12

// Context scopes one resolution to the page being browsed. AtRoot is true on
// the domain landing page, some overrides only apply there.
type Context struct {
	Domain   types.Domain
	AtRoot   bool
	PageSize int
}

// shoe gender vocabulary, a subcategory slug from this set selected at the
// domain root is really a gender filter
var shoeGenders = map[string]struct{}{
	"women":  {},
	"men":    {},
	"kids":   {},
	"unisex": {},
}

func addIds(params url.Values, key string, ids []uint) {
	for _, id := range ids {
		params.Add(key, strconv.FormatUint(uint64(id), 10))
	}
}

func setJoined(params url.Values, key string, values []string) {
	if len(values) > 0 {
		params.Set(key, strings.Join(values, ","))
	}
}

// BuildParams maps a filter state plus its domain context to the parameter
// set of a single backend listing request.
func BuildParams(state types.FilterState, ctx Context, page int) url.Values {
	params := url.Values{}

	pageSize := ctx.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	switch ctx.Domain {
	case types.DomainBooks:
		resolveBooks(params, state)
	case types.DomainShoes:
		resolveShoes(params, state, ctx.AtRoot)
	case types.DomainJewelry:
		resolveJewelry(params, state)
	default:
		resolveCategories(params, state)
	}

	addIds(params, "brand_id", state.Brands)
	setJoined(params, "brand_slug", state.BrandSlugs)

	if state.PriceMin != nil {
		params.Set("price_min", strconv.FormatFloat(*state.PriceMin, 'f', -1, 64))
	}
	if state.PriceMax != nil {
		params.Set("price_max", strconv.FormatFloat(*state.PriceMax, 'f', -1, 64))
	}
	if state.InStock {
		params.Set("in_stock", "true")
	}
	if state.SortBy != "" {
		params.Set("ordering", string(state.SortBy))
	}
	return params
}

func resolveCategories(params url.Values, state types.FilterState) {
	addIds(params, "category_id", state.Categories)
	setJoined(params, "category_slug", state.CategorySlugs)
	addIds(params, "subcategory_id", state.Subcategories)
	setJoined(params, "subcategory_slug", state.SubcategorySlugs)
}

// Book genre hierarchies are flattened server side, any category or
// subcategory selection collapses to product_type=books plus a single
// category slug.
func resolveBooks(params url.Values, state types.FilterState) {
	if !state.HasCategoryFilter() {
		return
	}
	params.Set("product_type", "books")
	if len(state.CategorySlugs) > 0 {
		params.Set("category_slug", state.CategorySlugs[0])
	} else if len(state.SubcategorySlugs) > 0 {
		params.Set("category_slug", state.SubcategorySlugs[0])
	}
}

// At the shoes domain root a subcategory slug from the gender vocabulary is
// translated into a gender parameter instead of subcategory_slug.
func resolveShoes(params url.Values, state types.FilterState, atRoot bool) {
	addIds(params, "category_id", state.Categories)
	setJoined(params, "category_slug", state.CategorySlugs)
	addIds(params, "subcategory_id", state.Subcategories)

	if !atRoot {
		setJoined(params, "subcategory_slug", state.SubcategorySlugs)
		return
	}
	genders := make([]string, 0, len(state.SubcategorySlugs))
	rest := make([]string, 0, len(state.SubcategorySlugs))
	for _, slug := range state.SubcategorySlugs {
		if _, ok := shoeGenders[types.NormalizeSlug(slug)]; ok {
			genders = append(genders, types.NormalizeSlug(slug))
		} else {
			rest = append(rest, slug)
		}
	}
	setJoined(params, "gender", genders)
	setJoined(params, "subcategory_slug", rest)
}

// Jewelry materials pass through the synonym expansion table before being
// joined into a material parameter. Subcategory slugs naming a jewelry type
// become a jewelry_type parameter instead of a raw subcategory filter.
func resolveJewelry(params url.Values, state types.FilterState) {
	addIds(params, "category_id", state.Categories)
	setJoined(params, "category_slug", state.CategorySlugs)
	addIds(params, "subcategory_id", state.Subcategories)

	jewelryTypes := make([]string, 0, len(state.SubcategorySlugs))
	rest := make([]string, 0, len(state.SubcategorySlugs))
	for _, slug := range state.SubcategorySlugs {
		if jt, ok := JewelryTypeFor(slug); ok {
			jewelryTypes = append(jewelryTypes, jt)
		} else {
			rest = append(rest, slug)
		}
	}
	setJoined(params, "jewelry_type", jewelryTypes)
	setJoined(params, "subcategory_slug", rest)

	setJoined(params, "material", ExpandMaterials(state.JewelryMaterials))
	setJoined(params, "gender", state.JewelryGenders)
}
