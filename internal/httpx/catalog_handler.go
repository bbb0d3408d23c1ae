package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/valeriach30/Arquitectura/internal/catalog"
)

type CatalogHandler struct {
	Store *catalog.Store
}

type productListResp struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Filters  *catalog.Filter   `json:"filters,omitempty"`
	Category string            `json:"category,omitempty"`
	Team     string            `json:"team,omitempty"`
}

type deleteResp struct {
	Message string          `json:"message"`
	Product catalog.Product `json:"product"`
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/", h.index)
	r.Get("/products", h.listProducts)
	r.Get("/products/featured", h.featuredProducts)
	r.Get("/products/category/{category}", h.productsByCategory)
	r.Get("/products/team/{team}", h.productsByTeam)
	r.Get("/products/{id}", h.getProduct)
	r.Post("/products", h.createProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)
	r.Get("/stats", h.stats)
}

func (h *CatalogHandler) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "F1 Products API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"GET /products":                     "Get all products",
			"GET /products/{id}":                "Get product by ID",
			"GET /products/category/{category}": "Get products by category",
			"GET /products/team/{team}":         "Get products by team",
			"GET /products/featured":            "Get featured products",
			"POST /products":                    "Create new product",
			"PUT /products/{id}":                "Update product",
			"DELETE /products/{id}":             "Delete product",
			"GET /stats":                        "Get product statistics",
		},
	})
}

// filterFromQuery builds the AND-composed filter from the query string.
// Absent keys place no constraint; unparseable numeric bounds are dropped.
func filterFromQuery(q url.Values) catalog.Filter {
	var f catalog.Filter
	if v := q.Get("category"); v != "" {
		f.Category = &v
	}
	if v := q.Get("team"); v != "" {
		f.Team = &v
	}
	if v := q.Get("driver"); v != "" {
		f.Driver = &v
	}
	if v := q.Get("inStock"); v != "" {
		b := v == "true"
		f.InStock = &b
	}
	if v := q.Get("featured"); v != "" {
		b := v == "true"
		f.Featured = &b
	}
	if v := q.Get("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r.URL.Query())
	products, total := h.Store.List(f)
	writeJSON(w, http.StatusOK, productListResp{Products: products, Total: total, Filters: &f})
}

func (h *CatalogHandler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	featured := true
	products, total := h.Store.List(catalog.Filter{Featured: &featured})
	writeJSON(w, http.StatusOK, productListResp{Products: products, Total: total})
}

func (h *CatalogHandler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	products, total := h.Store.List(catalog.Filter{Category: &category})
	writeJSON(w, http.StatusOK, productListResp{Products: products, Total: total, Category: category})
}

func (h *CatalogHandler) productsByTeam(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	products, total := h.Store.List(catalog.Filter{Team: &team})
	writeJSON(w, http.StatusOK, productListResp{Products: products, Total: total, Team: team})
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.Store.Create(req)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *CatalogHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.Store.Update(chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.Delete(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, deleteResp{Message: "Product deleted successfully", Product: p})
}

func (h *CatalogHandler) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Stats())
}
