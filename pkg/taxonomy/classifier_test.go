package taxonomy

import (
	"testing"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

func collectDataIds(items []types.SidebarItem, into map[uint]int) {
	for _, item := range items {
		if item.DataId != nil {
			into[*item.DataId]++
		}
		collectDataIds(item.Children, into)
	}
}

func TestClassifyPenicillinSlot(t *testing.T) {
	c := ForDomain(types.DomainMedicines)
	sections := c.Classify([]types.Category{
		{Id: 1, Slug: "antibiotics-penicillin", Name: "Penicillins", ProductCount: 12},
	})

	if len(sections) != 5 {
		t.Fatalf("expected 5 medicine groups, got %d", len(sections))
	}
	group := sections[0]
	if group.Title != "Антибиотики" {
		t.Fatalf("expected Антибиотики first, got %s", group.Title)
	}
	item := group.Items[0]
	if item.Name != "Пенициллины" {
		t.Fatalf("expected Пенициллины slot first, got %s", item.Name)
	}
	if item.IsPlaceholder() {
		t.Errorf("penicillin category should bind the slot, got a placeholder")
	}
	if item.DataId == nil || *item.DataId != 1 {
		t.Errorf("expected dataId 1, got %v", item.DataId)
	}
	if item.Count != 12 {
		t.Errorf("expected count 12, got %d", item.Count)
	}
}

func TestClassifyEmptySlotsArePlaceholders(t *testing.T) {
	c := ForDomain(types.DomainMedicines)
	sections := c.Classify([]types.Category{
		{Id: 1, Slug: "antibiotics-penicillin", Name: "Penicillins"},
	})

	for _, section := range sections {
		for _, item := range section.Items {
			if item.DataId == nil && item.Slug != "" {
				t.Errorf("placeholder %q should not carry a slug", item.Name)
			}
			if item.DataId != nil && *item.DataId != 1 {
				t.Errorf("unexpected bound item %q", item.Name)
			}
		}
	}
	// the sidebar keeps its configured shape even with a near-empty feed
	if len(sections[1].Items) == 0 {
		t.Errorf("expected placeholder items in empty group")
	}
}

func TestClassifyPartition(t *testing.T) {
	feed := []types.Category{
		{Id: 1, Slug: "antibiotics-penicillin", Name: "Penicillins"},
		{Id: 2, Slug: "antibiotics-macrolide", Name: "Macrolides"},
		{Id: 3, Slug: "antibiotics-other", Name: "Other antibiotics"},
		{Id: 4, Slug: "painkiller-ibuprofen", Name: "Ibuprofen"},
		{Id: 5, Slug: "vitamin-complex", Name: "Vitamins"},
		{Id: 6, Slug: "cough-syrup", Name: "Cough syrup"},
		{Id: 7, Slug: "probiotic-capsules", Name: "Probiotics"},
	}
	sections := ForDomain(types.DomainMedicines).Classify(feed)

	seen := make(map[uint]int)
	for _, section := range sections {
		collectDataIds(section.Items, seen)
	}
	for _, cat := range feed {
		if seen[cat.Id] != 1 {
			t.Errorf("category %d (%s) appears %d times, want exactly once", cat.Id, cat.Slug, seen[cat.Id])
		}
	}
}

func TestClassifyFirstGroupWins(t *testing.T) {
	// matches both the cold-flu group (cough) and nothing else, but a slug
	// matching two groups must land in the earlier one only
	feed := []types.Category{
		{Id: 9, Slug: "antibiotic-cough-remedy", Name: "Antibiotic cough remedy"},
	}
	sections := ForDomain(types.DomainMedicines).Classify(feed)

	seen := make(map[uint]int)
	for _, section := range sections {
		before := len(seen)
		collectDataIds(section.Items, seen)
		if len(seen) > before && section.Key != "antibiotics" {
			t.Errorf("category claimed by group %s, want antibiotics", section.Key)
		}
	}
	if seen[9] != 1 {
		t.Fatalf("category should be claimed exactly once, got %d", seen[9])
	}
}

func TestClassifyGenderAttribute(t *testing.T) {
	feed := []types.Category{
		{Id: 1, Slug: "basic-tshirts", Name: "Basic tees", Gender: "female"},
		{Id: 2, Slug: "mens-jackets", Name: "Jackets"},
	}
	sections := ForDomain(types.DomainClothing).Classify(feed)

	male := sections[0]
	female := sections[1]
	if male.Key != "male" || female.Key != "female" {
		t.Fatalf("unexpected group order: %s, %s", male.Key, female.Key)
	}

	femaleIds := make(map[uint]int)
	collectDataIds(female.Items, femaleIds)
	if femaleIds[1] != 1 {
		t.Errorf("gender attribute should claim category 1 for the female group")
	}
	maleIds := make(map[uint]int)
	collectDataIds(male.Items, maleIds)
	if maleIds[2] != 1 {
		t.Errorf("keyword fallback should claim category 2 for the male group")
	}
}

func TestClassifyLeftoverNesting(t *testing.T) {
	parent := uint(1)
	missing := uint(99)
	feed := []types.Category{
		{Id: 1, Slug: "antibiotics-penicillin", Name: "Penicillins"},
		{Id: 2, Slug: "antibiotics-amoxicillin-generics", Name: "Amoxicillin", Parent: &parent},
		{Id: 3, Slug: "antibiotics-drops", Name: "Antibiotic drops", Parent: &missing},
	}
	sections := ForDomain(types.DomainMedicines).Classify(feed)
	group := sections[0]

	var bound *types.SidebarItem
	for i := range group.Items {
		if group.Items[i].DataId != nil && *group.Items[i].DataId == 1 {
			bound = &group.Items[i]
		}
	}
	if bound == nil {
		t.Fatalf("penicillin category not bound")
	}
	if len(bound.Children) != 1 || *bound.Children[0].DataId != 2 {
		t.Errorf("leftover with known parent should nest under it, got %+v", bound.Children)
	}

	rootLevel := false
	for _, item := range group.Items {
		if item.DataId != nil && *item.DataId == 3 {
			rootLevel = true
		}
	}
	if !rootLevel {
		t.Errorf("leftover with missing parent should stay at root level")
	}
}

func TestClassifyJewelryEarrings(t *testing.T) {
	sections := ForDomain(types.DomainJewelry).Classify([]types.Category{
		{Id: 1, Slug: "silver-earrings", Name: "Серьги", ProductCount: 4},
	})
	group := sections[0]
	if group.Key != "jewelry-types" {
		t.Fatalf("expected the types group first, got %s", group.Key)
	}
	for _, item := range group.Items {
		switch item.Name {
		case "Серьги":
			if item.DataId == nil || *item.DataId != 1 {
				t.Errorf("earrings category should bind the Серьги slot, got %+v", item)
			}
		case "Кольца":
			// "ring" inside "earrings" must not claim the category
			if !item.IsPlaceholder() {
				t.Errorf("the Кольца slot should stay a placeholder, bound %v", item.DataId)
			}
		}
	}
}

func TestGeneralClassifierCatchAll(t *testing.T) {
	feed := []types.Category{
		{Id: 1, Slug: "anything", Name: "Anything"},
		{Id: 2, Slug: "else", Name: "Else"},
	}
	sections := ForDomain(types.Domain("unknown-vertical")).Classify(feed)
	if len(sections) != 1 {
		t.Fatalf("expected a single catch-all section, got %d", len(sections))
	}
	if len(sections[0].Items) != 2 {
		t.Errorf("expected both categories as items, got %d", len(sections[0].Items))
	}
}
