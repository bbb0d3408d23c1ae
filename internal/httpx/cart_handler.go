package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/valeriach30/Arquitectura/internal/cart"
	"github.com/valeriach30/Arquitectura/internal/catalog"
	kafkax "github.com/valeriach30/Arquitectura/internal/kafka"
	"github.com/valeriach30/Arquitectura/internal/redisx"
)

// CartHandler exposes the shared cart service over its versioned HTTP
// contract. Every successful mutation is published to cart.updated so
// sibling storefront processes can follow along.
type CartHandler struct {
	Service  *cart.Service
	Producer *kafkax.Producer // nil disables event publishing
	Name     string           // producer name stamped on envelopes
}

type AddItemReq struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

type UpdateQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/v1/cart", h.getCart)
	r.Post("/v1/cart/items", h.addItem)
	r.Put("/v1/cart/items/{id}", h.updateQuantity)
	r.Delete("/v1/cart/items/{id}", h.removeItem)
	r.Delete("/v1/cart", h.clearCart)
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.GetCart())
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Product.ID == "" {
		writeError(w, http.StatusBadRequest, "missing product id")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	c, err := h.Service.AddToCart(r.Context(), req.Product, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publish(r, cart.ActionAdd, req.Product.ID, c)
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	var req UpdateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	c := h.Service.UpdateQuantity(r.Context(), productID, req.Quantity)
	h.publish(r, cart.ActionUpdate, productID, c)
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	c := h.Service.RemoveFromCart(r.Context(), productID)
	h.publish(r, cart.ActionRemove, productID, c)
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	c := h.Service.ClearCart(r.Context())
	h.publish(r, cart.ActionClear, "", c)
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) publish(r *http.Request, action, productID string, c cart.Cart) {
	if h.Producer == nil {
		return
	}
	ev := cart.Envelope{
		EventID:       uuid.NewString(),
		EventType:     cart.EventCartUpdated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Name,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: redisx.KeyCart,
		Payload: kafkax.MustMarshal(cart.CartUpdatedPayload{
			Action:    action,
			ProductID: productID,
			Cart:      c,
		}),
	}
	h.Producer.Publish(cart.PartitionKey(redisx.KeyCart), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(cart.EventCartUpdated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
