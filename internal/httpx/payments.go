package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if payments == nil {
		payments = []pos.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

// submitPayments accepts a batch, one payment per selected order. Elements
// are settled in order; the first rejection stops the batch and is returned
// as-is, so the cashier screen can tell a stale total (total_mismatch) from
// anything else and ask the operator to refresh.
func (h *Handler) submitPayments(w http.ResponseWriter, r *http.Request) {
	var batch []pos.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid json")
		return
	}
	if len(batch) == 0 {
		writeError(w, http.StatusBadRequest, CodeValidation, "empty payment batch")
		return
	}
	for _, req := range batch {
		if err := h.Validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, CodeValidation, validationMessage(err))
			return
		}
	}

	created := make([]pos.Payment, 0, len(batch))
	for _, req := range batch {
		p, err := h.Store.RecordPayment(r.Context(), req)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if h.Statuses != nil {
			h.Statuses.Set(r.Context(), p.OrderID, pos.StatusPaid)
		}
		h.publish(h.PaymentRecorded, pos.EventPaymentRecorded, p.OrderID, pos.PaymentRecordedPayload{
			PaymentID: p.ID,
			OrderID:   p.OrderID,
			Total:     p.Total,
			Method:    p.Method,
		})
		created = append(created, p)
	}
	writeJSON(w, http.StatusCreated, created)
}
