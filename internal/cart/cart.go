package cart

import "github.com/valeriach30/Arquitectura/internal/catalog"

// CartItem is a snapshot of a product's display fields taken when the item
// entered the cart, plus the quantity. Later catalog edits do not reach it.
type CartItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Driver      string           `json:"driver"`
	Team        string           `json:"team"`
	Category    catalog.Category `json:"category"`
	Price       float64          `json:"price"`
	Picture     string           `json:"picture"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity"`
}

// Cart holds the line items in insertion order plus derived totals. The
// totals are recomputed after every mutation, never set independently.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

func emptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

func itemFromProduct(p catalog.Product, qty int) CartItem {
	return CartItem{
		ID:          p.ID,
		Name:        p.Name,
		Driver:      p.Driver,
		Team:        p.Team,
		Category:    p.Category,
		Price:       p.Price,
		Picture:     p.Picture,
		Description: p.Description,
		Quantity:    qty,
	}
}

func (c *Cart) recomputeTotals() {
	c.TotalItems = 0
	c.TotalPrice = 0
	for _, it := range c.Items {
		c.TotalItems += it.Quantity
		c.TotalPrice += it.Price * float64(it.Quantity)
	}
}

// snapshot returns a copy whose item slice is detached from the original.
func (c Cart) snapshot() Cart {
	out := c
	out.Items = append([]CartItem{}, c.Items...)
	return out
}
