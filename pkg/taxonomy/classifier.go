package taxonomy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

// Slot is a configured position inside a sidebar group. It is rendered under
// its canonical Name whether or not a category from the feed binds to it.
type Slot struct {
	Name     string
	Keywords []string
}

// Group is one ordered sidebar section of a domain. When Gender is set,
// categories carrying the same gender attribute are claimed directly,
// otherwise the keyword synonyms are matched against slug and name.
type Group struct {
	Key      string
	Title    string
	Gender   string
	Keywords []string
	Slots    []Slot
}

// Classifier turns the flat category feed of a domain into sidebar sections.
// One implementation per domain, so the keyword table strategy can be swapped
// for attribute based lookup without touching call sites.
type Classifier interface {
	Domain() types.Domain
	Classify(categories []types.Category) []types.SidebarSection
}

type KeywordClassifier struct {
	domain types.Domain
	groups []Group
}

func NewKeywordClassifier(domain types.Domain, groups []Group) *KeywordClassifier {
	return &KeywordClassifier{domain: domain, groups: groups}
}

func (c *KeywordClassifier) Domain() types.Domain {
	return c.domain
}

// matchesKeyword reports whether kw occurs in text at the start of a word.
// Plain substring search would let the "ring" keyword claim an earrings slug.
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

func matchText(cat types.Category) string {
	return types.NormalizeSlug(cat.Slug) + " " + strings.ToLower(cat.Name)
}

func matchesGroup(cat types.Category, g Group) bool {
	if g.Gender != "" && cat.Gender != "" {
		return strings.EqualFold(cat.Gender, g.Gender)
	}
	if len(g.Keywords) == 0 {
		// catch-all group
		return true
	}
	return containsAny(matchText(cat), g.Keywords)
}

func boundItem(name string, cat types.Category) types.SidebarItem {
	id := cat.Id
	return types.SidebarItem{
		Id:     cat.Slug,
		Name:   name,
		Slug:   cat.Slug,
		DataId: &id,
		Count:  cat.ProductCount,
	}
}

func placeholderItem(groupKey string, slot Slot) types.SidebarItem {
	return types.SidebarItem{
		Id:   groupKey + "-" + types.NormalizeSlug(strings.ReplaceAll(slot.Name, " ", "-")),
		Name: slot.Name,
	}
}

// Classify partitions the feed into the configured groups. Group order is
// significant: a category matching several groups lands in the first one.
// Within a group each slot claims at most one category, unclaimed candidates
// are appended after the slots and a slot with no match emits a placeholder.
// Every candidate appears exactly once across claimed and leftover items.
func (c *KeywordClassifier) Classify(categories []types.Category) []types.SidebarSection {
	sections := make([]types.SidebarSection, 0, len(c.groups))
	taken := make(map[uint]struct{}, len(categories))

	for _, g := range c.groups {
		candidates := make([]types.Category, 0)
		for _, cat := range categories {
			if _, ok := taken[cat.Id]; ok {
				continue
			}
			if matchesGroup(cat, g) {
				candidates = append(candidates, cat)
				taken[cat.Id] = struct{}{}
			}
		}

		used := make(map[uint]struct{}, len(candidates))
		items := make([]types.SidebarItem, 0, len(g.Slots))
		for _, slot := range g.Slots {
			claimed := false
			for _, cat := range candidates {
				if _, ok := used[cat.Id]; ok {
					continue
				}
				if containsAny(matchText(cat), slot.Keywords) {
					used[cat.Id] = struct{}{}
					items = append(items, boundItem(slot.Name, cat))
					claimed = true
					break
				}
			}
			if !claimed {
				items = append(items, placeholderItem(g.Key, slot))
			}
		}

		items = attachLeftovers(items, candidates, used)

		sections = append(sections, types.SidebarSection{
			Key:   g.Key,
			Title: g.Title,
			Items: items,
		})
	}
	return sections
}

// attachLeftovers appends every unclaimed candidate to the group. A leftover
// whose parent is a bound item of the same group is nested under it, anything
// else (missing parent included) stays at root level.
func attachLeftovers(items []types.SidebarItem, candidates []types.Category, used map[uint]struct{}) []types.SidebarItem {
	byDataId := make(map[uint]int, len(items))
	for i, item := range items {
		if item.DataId != nil {
			byDataId[*item.DataId] = i
		}
	}
	for _, cat := range candidates {
		if _, ok := used[cat.Id]; ok {
			continue
		}
		leftover := boundItem(cat.Name, cat)
		if cat.Parent != nil {
			if i, ok := byDataId[*cat.Parent]; ok {
				items[i].Children = append(items[i].Children, leftover)
				continue
			}
		}
		items = append(items, leftover)
	}
	return items
}
