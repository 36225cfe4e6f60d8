package query

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// matchesKeyword reports whether kw occurs in text at the start of a word.
// Plain substring search would let "ring" claim "earrings".
func matchesKeyword(text, kw string) bool {
	if kw == "" {
		return false
	}
	from := 0
	for {
		i := strings.Index(text[from:], kw)
		if i < 0 {
			return false
		}
		pos := from + i
		if pos == 0 {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		if !unicode.IsLetter(r) {
			return true
		}
		from = pos + 1
	}
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if matchesKeyword(haystack, kw) {
			return true
		}
	}
	return false
}

func productMatches(p types.Product, keywords []string) bool {
	return containsAny(types.NormalizeSlug(p.CategorySlug), keywords) ||
		containsAny(types.NormalizeSlug(p.Slug), keywords)
}

// HasExtraFilters reports whether the state carries filters that are not
// sent to the server and require the post-filter pass.
func HasExtraFilters(state types.FilterState, domain types.Domain) bool {
	switch domain {
	case types.DomainShoes:
		return len(state.ShoeTypes) > 0
	case types.DomainClothing:
		return len(state.ClothingItems) > 0
	case types.DomainHeadwear:
		return len(state.HeadwearTypes) > 0
	}
	return false
}

// PostFilter applies the domain extra filters over one returned page.
// Within a dimension the selected values are OR-ed, the dimensions AND.
// The server reported count is not adjusted here, callers surface the
// filtered length separately.
func PostFilter(products []types.Product, state types.FilterState, domain types.Domain) []types.Product {
	passes := make([][]string, 0, 2)
	switch domain {
	case types.DomainShoes:
		if len(state.ShoeTypes) > 0 {
			passes = append(passes, expandThrough(shoeTypeKeywords, state.ShoeTypes))
		}
	case types.DomainClothing:
		if len(state.ClothingItems) > 0 {
			passes = append(passes, expandThrough(clothingItemKeywords, state.ClothingItems))
		}
	case types.DomainHeadwear:
		if len(state.HeadwearTypes) > 0 {
			passes = append(passes, expandThrough(headwearTypeKeywords, state.HeadwearTypes))
		}
	}
	if len(passes) == 0 {
		return products
	}
	out := make([]types.Product, 0, len(products))
	for _, p := range products {
		keep := true
		for _, keywords := range passes {
			if !productMatches(p, keywords) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}
