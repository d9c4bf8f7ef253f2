package view

import "github.com/junkd0g/kuposhan/internal/dataset"

// FactorGroup is one category's bulleted factor list.
type FactorGroup struct {
	Category dataset.Category `json:"category"`
	Title    string           `json:"title"`
	Color    string           `json:"color"`
	Factors  []string         `json:"factors"`
}

// FactorGroups partitions the stunting factors by exact category match, in
// category display order and source order within each category.
func FactorGroups() []FactorGroup {
	factors := dataset.Factors()
	groups := make([]FactorGroup, 0, len(dataset.Categories()))
	for _, c := range dataset.Categories() {
		g := FactorGroup{
			Category: c,
			Title:    string(c) + " Factors",
			Color:    dataset.CategoryColor(c),
			Factors:  []string{},
		}
		for _, f := range factors {
			if f.Category == c {
				g.Factors = append(g.Factors, f.Factor)
			}
		}
		groups = append(groups, g)
	}
	return groups
}
