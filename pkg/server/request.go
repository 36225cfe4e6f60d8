package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/filters"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/query"
	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// ListingRequest is the query string surface of the listing endpoint. Price
// bounds arrive as raw strings, malformed values are coerced to "no bound"
// rather than rejected.
type ListingRequest struct {
	Domain   string `json:"domain" schema:"domain"`
	Root     bool   `json:"root" schema:"root"`
	Page     int    `json:"page" schema:"page"`
	PageSize int    `json:"pageSize" schema:"size"`

	Categories       []uint   `json:"categories" schema:"category_id"`
	CategorySlugs    []string `json:"categorySlugs" schema:"category_slug"`
	Brands           []uint   `json:"brands" schema:"brand_id"`
	BrandSlugs       []string `json:"brandSlugs" schema:"brand"`
	Subcategories    []uint   `json:"subcategories" schema:"subcategory_id"`
	SubcategorySlugs []string `json:"subcategorySlugs" schema:"subcategory"`

	PriceMin string `json:"priceMin" schema:"price_min"`
	PriceMax string `json:"priceMax" schema:"price_max"`
	InStock  bool   `json:"inStock" schema:"in_stock"`
	Sort     string `json:"sort" schema:"sort"`

	ShoeTypes        []string `json:"shoeTypes" schema:"shoe_type"`
	ClothingItems    []string `json:"clothingItems" schema:"clothing_item"`
	JewelryMaterials []string `json:"jewelryMaterials" schema:"material"`
	JewelryGenders   []string `json:"jewelryGenders" schema:"jewelry_gender"`
	HeadwearTypes    []string `json:"headwearTypes" schema:"headwear_type"`
}

var requestDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func decodeListingRequest(r *http.Request) (*ListingRequest, error) {
	result := &ListingRequest{}
	if err := requestDecoder.Decode(result, sanitizeNumeric(r.URL.Query())); err != nil {
		return nil, err
	}
	if result.Page < 1 {
		result.Page = 1
	}
	return result, nil
}

// sanitizeNumeric drops unparsable id and page values so one stale URL
// parameter does not fail the whole request.
func sanitizeNumeric(values url.Values) url.Values {
	numeric := map[string]struct{}{
		"page": {}, "size": {}, "category_id": {}, "brand_id": {}, "subcategory_id": {},
	}
	out := url.Values{}
	for key, vs := range values {
		if _, ok := numeric[key]; !ok {
			out[key] = vs
			continue
		}
		for _, v := range vs {
			if isDigits(v) {
				out.Add(key, v)
			}
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (lr *ListingRequest) FilterState() types.FilterState {
	state := types.DefaultFilterState()
	state.Categories = lr.Categories
	state.CategorySlugs = normalizeAll(lr.CategorySlugs)
	state.Brands = lr.Brands
	state.BrandSlugs = normalizeAll(lr.BrandSlugs)
	state.Subcategories = lr.Subcategories
	state.SubcategorySlugs = normalizeAll(lr.SubcategorySlugs)
	state.PriceMin = filters.ParsePrice(lr.PriceMin)
	state.PriceMax = filters.ParsePrice(lr.PriceMax)
	state.InStock = lr.InStock
	state.SortBy = types.ParseSortKey(lr.Sort)
	state.ShoeTypes = lr.ShoeTypes
	state.ClothingItems = lr.ClothingItems
	state.JewelryMaterials = lr.JewelryMaterials
	state.JewelryGenders = lr.JewelryGenders
	state.HeadwearTypes = lr.HeadwearTypes
	return state
}

func (lr *ListingRequest) QueryContext(pageSize int) query.Context {
	if lr.PageSize > 0 {
		pageSize = lr.PageSize
	}
	return query.Context{
		Domain:   types.ParseDomain(lr.Domain),
		AtRoot:   lr.Root,
		PageSize: pageSize,
	}
}

func normalizeAll(slugs []string) []string {
	if len(slugs) == 0 {
		return slugs
	}
	out := make([]string, len(slugs))
	for i, s := range slugs {
		out[i] = types.NormalizeSlug(s)
	}
	return out
}
