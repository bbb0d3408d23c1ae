package catalog

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Stats struct {
	TotalProducts    int              `json:"totalProducts"`
	InStockProducts  int              `json:"inStockProducts"`
	FeaturedProducts int              `json:"featuredProducts"`
	CategoryCounts   map[Category]int `json:"categoryCounts"`
	AveragePrice     float64          `json:"averagePrice"`
	PriceRange       PriceRange       `json:"priceRange"`
}

// Stats aggregates over the whole catalog. An empty catalog yields all-zero
// stats: the upstream behavior (NaN average, ±Infinity range) has no JSON
// encoding, so zeros stand in for it.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{CategoryCounts: make(map[Category]int, len(Categories))}
	for _, c := range Categories {
		st.CategoryCounts[c] = 0
	}

	st.TotalProducts = len(s.products)
	if st.TotalProducts == 0 {
		return st
	}

	sum := 0.0
	st.PriceRange.Min = s.products[0].Price
	st.PriceRange.Max = s.products[0].Price
	for _, p := range s.products {
		if p.InStock {
			st.InStockProducts++
		}
		if p.Featured {
			st.FeaturedProducts++
		}
		if _, ok := st.CategoryCounts[p.Category]; ok {
			st.CategoryCounts[p.Category]++
		}
		sum += p.Price
		if p.Price < st.PriceRange.Min {
			st.PriceRange.Min = p.Price
		}
		if p.Price > st.PriceRange.Max {
			st.PriceRange.Max = p.Price
		}
	}
	st.AveragePrice = sum / float64(st.TotalProducts)
	return st
}
