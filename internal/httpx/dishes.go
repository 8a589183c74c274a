package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Store.ListDishes(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if dishes == nil {
		dishes = []pos.Dish{}
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var req pos.CreateDishRequest
	if !decodeValid(w, r, h.Validate, &req) {
		return
	}
	d, err := h.Store.CreateDish(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteDish(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
