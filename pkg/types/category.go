package types

import "strings"

type Translation struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// Category is one entry of the flat feed returned by the categories endpoint.
// Identity is Id, Slug is a human readable alternate key. Parent may point at
// a category missing from the feed, consumers treat that as "no parent found"
// and keep the category at root level.
type Category struct {
	Id           uint          `json:"id"`
	Slug         string        `json:"slug"`
	Name         string        `json:"name"`
	Parent       *uint         `json:"parent"`
	Gender       string        `json:"gender,omitempty"`
	ProductCount int           `json:"product_count,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
}

// NormalizeSlug lower-cases and replaces underscores with hyphens so feed
// slugs and URL slugs compare equal.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.ReplaceAll(slug, "_", "-"))
}

type Brand struct {
	Id                  uint   `json:"id"`
	Slug                string `json:"slug"`
	Name                string `json:"name"`
	PrimaryCategorySlug string `json:"primary_category_slug,omitempty"`
	ProductType         string `json:"product_type,omitempty"`
}

// Product is opaque to the resolver beyond the keys needed for the
// client side post-filter pass.
type Product struct {
	Id           uint              `json:"id"`
	Slug         string            `json:"slug"`
	Name         string            `json:"name,omitempty"`
	CategorySlug string            `json:"category_slug,omitempty"`
	BrandSlug    string            `json:"brand_slug,omitempty"`
	Price        float64           `json:"price,omitempty"`
	InStock      bool              `json:"in_stock,omitempty"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

type CategoryQuery struct {
	Slug            string `schema:"slug"`
	ParentSlug      string `schema:"parent_slug"`
	TopLevel        bool   `schema:"top_level"`
	IncludeChildren bool   `schema:"include_children"`
	PageSize        int    `schema:"page_size"`
}

type BrandQuery struct {
	ProductType         string `schema:"product_type"`
	PrimaryCategorySlug string `schema:"primary_category_slug"`
	CategoryIds         []uint `schema:"category_id"`
	CategorySlug        string `schema:"category_slug"`
	InStock             bool   `schema:"in_stock"`
}
