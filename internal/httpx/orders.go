package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	var status pos.Status
	if s := r.URL.Query().Get("status"); s != "" {
		status = pos.Status(s)
		if !status.Valid() {
			writeError(w, http.StatusBadRequest, CodeInvalidRequest, "unknown status "+s)
			return
		}
	}
	unpaid := r.URL.Query().Get("unpaid") == "true"

	orders, err := h.Store.ListOrders(r.Context(), status, unpaid)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if orders == nil {
		orders = []pos.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req pos.CreateOrderRequest
	if !decodeValid(w, r, h.Validate, &req) {
		return
	}

	// The daily number is best-effort: a counter hiccup never blocks an
	// order, it just ships without the human-facing label.
	dailyNumber := 0
	if h.Numbers != nil {
		if n, err := h.Numbers.Next(r.Context(), time.Now().UTC()); err == nil {
			dailyNumber = n
		}
	}

	o, err := h.Store.CreateOrder(r.Context(), req, dailyNumber)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if h.Statuses != nil {
		h.Statuses.Set(r.Context(), o.ID, o.Status)
	}
	h.publish(h.OrderCreated, pos.EventOrderCreated, o.ID, pos.OrderCreatedPayload{
		OrderID:     o.ID,
		DailyNumber: o.DailyNumber,
		Table:       o.Table,
		Dishes:      o.Dishes,
		Total:       o.Total(),
	})
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req pos.UpdateOrderStatusRequest
	if !decodeValid(w, r, h.Validate, &req) {
		return
	}
	id := chi.URLParam(r, "id")

	o, from, err := h.Store.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if h.Statuses != nil {
		h.Statuses.Set(r.Context(), o.ID, o.Status)
	}
	h.publish(h.StatusChanged, pos.EventOrderStatusChanged, o.ID, pos.OrderStatusChangedPayload{
		OrderID: o.ID,
		From:    from,
		To:      o.Status,
	})
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) appendOrder(w http.ResponseWriter, r *http.Request) {
	var req pos.AppendOrderRequest
	if !decodeValid(w, r, h.Validate, &req) {
		return
	}
	o, err := h.Store.AppendOrderDishes(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// orderStatus serves the waiter's 10s ready poll: cache first, DB fallback.
func (h *Handler) orderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Statuses != nil {
		if st, ok := h.Statuses.Get(r.Context(), id); ok {
			writeJSON(w, http.StatusOK, pos.OrderStatusResponse{Status: st})
			return
		}
	}
	st, err := h.Store.GetOrderStatus(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if h.Statuses != nil {
		h.Statuses.Set(r.Context(), id, st)
	}
	writeJSON(w, http.StatusOK, pos.OrderStatusResponse{Status: st})
}
