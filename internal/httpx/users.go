package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if users == nil {
		users = []pos.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// createUser is the admin-facing twin of register: same payload, same rules.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req pos.RegisterRequest
	if !decodeValid(w, r, h.Validate, &req) {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	u, err := h.Store.CreateUser(r.Context(), req.Name, req.Email, string(hash), req.Role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req pos.UpdateUserRequest
	if !decodeValid(w, r, h.Validate, &req) {
		return
	}
	u, err := h.Store.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
