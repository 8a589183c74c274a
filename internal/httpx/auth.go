package httpx

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req pos.LoginRequest
	if !decodeValid(w, r, h.Validate, &req) {
		return
	}

	u, err := h.Store.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, pos.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, CodeUnauthorized, pos.ErrBadCredentials.Error())
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, CodeUnauthorized, pos.ErrBadCredentials.Error())
		return
	}

	token := ""
	if h.Sessions != nil {
		token, err = h.Sessions.Create(r.Context(), u)
		if err != nil {
			writeDomainError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, pos.LoginResponse{Token: token, User: u})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
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

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if h.Sessions != nil {
		if token := bearerToken(r); token != "" {
			_ = h.Sessions.Delete(r.Context(), token)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
