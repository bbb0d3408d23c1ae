package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/valeriach30/Arquitectura/internal/cart"
)

// MirrorHandler serves the read-only cart replica.
type MirrorHandler struct {
	Mirror *cart.Mirror
}

func (h *MirrorHandler) Register(r *chi.Mux) {
	r.Get("/v1/cart", h.getCart)
}

func (h *MirrorHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Mirror.Cart())
}
