package catalog

import "strings"

// Filter is a set of optional predicates composed with AND. A nil field
// places no constraint on that attribute.
type Filter struct {
	Category *string  `json:"category,omitempty"`
	Team     *string  `json:"team,omitempty"`
	Driver   *string  `json:"driver,omitempty"`
	InStock  *bool    `json:"inStock,omitempty"`
	Featured *bool    `json:"featured,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

func (f Filter) Match(p Product) bool {
	if f.Category != nil && !strings.EqualFold(string(p.Category), *f.Category) {
		return false
	}
	if f.Team != nil && !containsFold(p.Team, *f.Team) {
		return false
	}
	if f.Driver != nil && !containsFold(p.Driver, *f.Driver) {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
