package catalog

// Category groups related tags for display.
type Category struct {
	Name string
	Tags []string
}

// Uncategorized names the group collecting catalog tags outside the
// known vocabulary.
const Uncategorized = "Uncategorized"

// Categories returns the tag vocabulary offered for selection.
func Categories() []Category {
	return []Category{
		{Name: "Meal time", Tags: []string{"아침", "점심", "저녁", "간식", "야식"}},
		{Name: "Company", Tags: []string{"혼자", "여럿이", "회식"}},
		{Name: "Taste", Tags: []string{"매움", "안매움"}},
		{Name: "Broth", Tags: []string{"국물있음", "국물없음"}},
		{Name: "Other", Tags: []string{"다이어트", "데이트", "집", "회사", "외식", "배달", "야외"}},
	}
}

// GroupTags returns the vocabulary plus, when c uses tags the vocabulary
// does not know, a trailing Uncategorized group with those tags in
// first-seen order. Empty tags are left out.
func GroupTags(c *Catalog) []Category {
	groups := Categories()
	known := map[string]bool{}
	for _, g := range groups {
		for _, t := range g.Tags {
			known[t] = true
		}
	}
	var extra []string
	for _, t := range c.Tags() {
		if t == "" || known[t] {
			continue
		}
		extra = append(extra, t)
	}
	if len(extra) > 0 {
		groups = append(groups, Category{Name: Uncategorized, Tags: extra})
	}
	return groups
}
