package catalog

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryCar          Category = "Car"
	CategoryMerchandise  Category = "Merchandise"
	CategoryCollectibles Category = "Collectibles"
	CategoryRacingGear   Category = "Racing Gear"
)

// Categories in the order stats reports them.
var Categories = []Category{CategoryCar, CategoryMerchandise, CategoryCollectibles, CategoryRacingGear}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Driver      string   `json:"driver"`
	Team        string   `json:"team"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Picture     string   `json:"picture"`
	Description string   `json:"description"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}

var ErrNotFound = errors.New("product not found")

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Driver      string   `json:"driver"`
	Team        string   `json:"team"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Picture     string   `json:"picture"`
	Description string   `json:"description"`
	InStock     *bool    `json:"inStock"`
	Featured    *bool    `json:"featured"`
}

// missing returns the required fields the request leaves empty.
// A zero price counts as missing: the upstream contract treats it as absent.
func (r CreateProductRequest) missing() []string {
	var m []string
	if r.Name == "" {
		m = append(m, "name")
	}
	if r.Driver == "" {
		m = append(m, "driver")
	}
	if r.Team == "" {
		m = append(m, "team")
	}
	if r.Category == "" {
		m = append(m, "category")
	}
	if r.Price == 0 {
		m = append(m, "price")
	}
	if r.Picture == "" {
		m = append(m, "picture")
	}
	return m
}

// UpdateProductRequest carries a partial product: nil fields keep their
// current value. There is no schema validation on update.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Driver      *string   `json:"driver"`
	Team        *string   `json:"team"`
	Category    *Category `json:"category"`
	Price       *float64  `json:"price"`
	Picture     *string   `json:"picture"`
	Description *string   `json:"description"`
	InStock     *bool     `json:"inStock"`
	Featured    *bool     `json:"featured"`
}

type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
