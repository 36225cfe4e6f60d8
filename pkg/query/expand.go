package query

import "github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"

// Synonym expansion tables. The backend matches materials and type keywords
// as substrings, so each canonical value expands to the spellings the feed is
// known to carry.

var materialSynonyms = map[string][]string{
	"gold":     {"gold", "золото", "золот"},
	"silver":   {"silver", "серебро", "серебр"},
	"platinum": {"platinum", "платина", "платин"},
	"titanium": {"titanium", "титан"},
	"steel":    {"steel", "сталь", "стал"},
}

// ExpandMaterials expands each selected material through the synonym table.
// Unknown materials pass through as-is.
func ExpandMaterials(materials []string) []string {
	out := make([]string, 0, len(materials)*3)
	for _, m := range materials {
		key := types.NormalizeSlug(m)
		if synonyms, ok := materialSynonyms[key]; ok {
			out = append(out, synonyms...)
		} else {
			out = append(out, key)
		}
	}
	return out
}

var jewelryTypeKeywords = []struct {
	canonical string
	keywords  []string
}{
	{"ring", []string{"ring", "кольц", "перстен"}},
	{"bracelet", []string{"bracelet", "браслет"}},
	{"necklace", []string{"necklace", "chain", "колье", "ожерель", "цепоч"}},
	{"earrings", []string{"earring", "серьг"}},
	{"pendant", []string{"pendant", "кулон", "подвес"}},
}

// JewelryTypeFor maps a subcategory slug to a canonical jewelry type when
// the slug contains one of the type keywords.
func JewelryTypeFor(slug string) (string, bool) {
	normalized := types.NormalizeSlug(slug)
	for _, jt := range jewelryTypeKeywords {
		if containsAny(normalized, jt.keywords) {
			return jt.canonical, true
		}
	}
	return "", false
}

// Keyword sets for the extra filters that never reach the backend. The
// post-filter pass matches them against product and category slugs.

var shoeTypeKeywords = map[string][]string{
	"sneakers": {"sneaker", "trainer", "кроссовк", "кеды"},
	"boots":    {"boot", "ботин", "сапог"},
	"sandals":  {"sandal", "сандал", "босонож"},
	"slippers": {"slipper", "тапоч", "шлепан"},
	"heels":    {"heel", "туфл", "каблук"},
}

var clothingItemKeywords = map[string][]string{
	"tshirts": {"t-shirt", "tshirt", "футболк"},
	"hoodies": {"hoodie", "sweatshirt", "худи", "толстовк"},
	"pants":   {"pants", "trousers", "jeans", "брюк", "джинс", "штан"},
	"jackets": {"jacket", "coat", "куртк", "пальто"},
	"dresses": {"dress", "плать"},
	"shirts":  {"shirt", "рубашк"},
}

var headwearTypeKeywords = map[string][]string{
	"caps":    {"cap", "кепк", "бейсбол"},
	"hats":    {"hat", "шляп"},
	"beanies": {"beanie", "шапк"},
	"panamas": {"panama", "панам"},
}

func expandThrough(table map[string][]string, selected []string) []string {
	out := make([]string, 0, len(selected)*3)
	for _, s := range selected {
		key := types.NormalizeSlug(s)
		if keywords, ok := table[key]; ok {
			out = append(out, keywords...)
		} else {
			out = append(out, key)
		}
	}
	return out
}
