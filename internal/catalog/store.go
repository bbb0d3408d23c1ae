package catalog

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds the catalog in memory. State resets on restart; there is no
// backing database. The original ran on a single-threaded event loop, the
// Go port serves requests concurrently, so reads and writes go through an
// RWMutex.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

func NewStore(seed ...Product) *Store {
	return &Store{products: append([]Product(nil), seed...)}
}

// List returns the products matching every set predicate, preserving
// insertion order, plus the match count.
func (s *Store) List(f Filter) ([]Product, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, len(out)
}

func (s *Store) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Create validates required fields, assigns a fresh id and appends the
// product. Description defaults to empty, inStock to true, featured to false.
func (s *Store) Create(req CreateProductRequest) (Product, error) {
	if m := req.missing(); len(m) > 0 {
		return Product{}, &ValidationError{Missing: m}
	}

	p := Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Driver:      req.Driver,
		Team:        req.Team,
		Category:    req.Category,
		Price:       req.Price,
		Picture:     req.Picture,
		Description: req.Description,
		InStock:     true,
		Featured:    false,
	}
	if req.InStock != nil {
		p.InStock = *req.InStock
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}

	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	return p, nil
}

// Update merges the supplied fields over the stored record. Last writer
// wins; there is no version check.
func (s *Store) Update(id string, req UpdateProductRequest) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Driver != nil {
			p.Driver = *req.Driver
		}
		if req.Team != nil {
			p.Team = *req.Team
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Picture != nil {
			p.Picture = *req.Picture
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.InStock != nil {
			p.InStock = *req.InStock
		}
		if req.Featured != nil {
			p.Featured = *req.Featured
		}
		return *p, nil
	}
	return Product{}, ErrNotFound
}

// Delete removes the product and returns the removed record.
func (s *Store) Delete(id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}
