package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

// GET v1/cart (200 OK)
// DELETE v1/cart (204 No content)
// POST v1/cart/items JSON {"product_id"} (200 OK, 400 Bad request, 404 Not found)
// PATCH v1/cart/items/{id} JSON {"quantity"} (200 OK, 400 Bad request)
// DELETE v1/cart/items/{id} (200 OK)

type CartHandler struct {
	carts port.CartManager
}

func RegisterCart(mux *http.ServeMux, carts port.CartManager) {
	h := CartHandler{carts}
	mux.HandleFunc("GET /api/v1/cart", h.GetCart)
	mux.HandleFunc("DELETE /api/v1/cart", h.ClearCart)
	mux.HandleFunc("POST /api/v1/cart/items", h.AddItem)
	mux.HandleFunc("PATCH /api/v1/cart/items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/cart/items/{id}", h.RemoveItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	cart, err := h.carts.Cart(r.Context(), VisitorID(r.Context()))
	if err != nil {
		h.writeCartError(w, err)
		log.Error("failed to load cart", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart, ""))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		log.Warn("invalid request", "err", err)
		return
	}

	cart, notice, err := h.carts.AddToCart(
		r.Context(), VisitorID(r.Context()), req.ProductID,
	)
	if err != nil {
		h.writeCartError(w, err)
		log.Warn("failed to add item", "productID", req.ProductID, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart, notice))
}

func (h CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.UpdateItem"
	log := slog.With("op", op)

	var req UpdateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		log.Warn("invalid request", "err", err)
		return
	}

	cart, err := h.carts.UpdateQuantity(
		r.Context(), VisitorID(r.Context()), r.PathValue("id"), *req.Quantity,
	)
	if err != nil {
		h.writeCartError(w, err)
		log.Error("failed to update quantity", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart, ""))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	cart, notice, err := h.carts.RemoveFromCart(
		r.Context(), VisitorID(r.Context()), r.PathValue("id"),
	)
	if err != nil {
		h.writeCartError(w, err)
		log.Error("failed to remove item", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart, notice))
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ClearCart"
	log := slog.With("op", op)

	if err := h.carts.ClearCart(r.Context(), VisitorID(r.Context())); err != nil {
		h.writeCartError(w, err)
		log.Error("failed to clear cart", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) writeCartError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeError(w, http.StatusServiceUnavailable, "cart is unavailable")
}
