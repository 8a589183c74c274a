// Package cashier reconciles served orders into payments.
package cashier

import (
	"context"
	"errors"
	"strings"

	"github.com/laes18/go-restaurant-pos/internal/client"
	"github.com/laes18/go-restaurant-pos/internal/money"
	"github.com/laes18/go-restaurant-pos/internal/pos"
)

var (
	ErrEmptySelection       = errors.New("no orders selected")
	ErrMissingCardReference = errors.New("card payments require an authorization reference")
)

// Selection is keyed by order object identity, not by identifier: the same
// discipline as the cart's positional removal. Two fetches of the same order
// are two distinct members.
type Selection struct {
	members map[*pos.Order]struct{}
	order   []*pos.Order // insertion order, for stable display and batches
}

func NewSelection() *Selection {
	return &Selection{members: map[*pos.Order]struct{}{}}
}

func (s *Selection) Select(o *pos.Order) {
	if _, ok := s.members[o]; ok {
		return
	}
	s.members[o] = struct{}{}
	s.order = append(s.order, o)
}

func (s *Selection) Deselect(o *pos.Order) {
	if _, ok := s.members[o]; !ok {
		return
	}
	delete(s.members, o)
	for i, m := range s.order {
		if m == o {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips membership and reports the new state.
func (s *Selection) Toggle(o *pos.Order) bool {
	if _, ok := s.members[o]; ok {
		s.Deselect(o)
		return false
	}
	s.Select(o)
	return true
}

func (s *Selection) Has(o *pos.Order) bool {
	_, ok := s.members[o]
	return ok
}

func (s *Selection) Len() int { return len(s.order) }

func (s *Selection) Orders() []*pos.Order {
	out := make([]*pos.Order, len(s.order))
	copy(out, s.order)
	return out
}

// Total sums every dish across every selected order, in exact cents.
func (s *Selection) Total() money.Cents {
	var t money.Cents
	for _, o := range s.order {
		t += o.Total()
	}
	return t
}

func (s *Selection) Clear() {
	s.members = map[*pos.Order]struct{}{}
	s.order = nil
}

// ValidatePayment runs the local pre-network checks: a non-empty selection,
// and for card payments a reference that is not blank or whitespace.
func ValidatePayment(s *Selection, method pos.Method, cardReference string) error {
	if s.Len() == 0 {
		return ErrEmptySelection
	}
	if method == pos.MethodCard && strings.TrimSpace(cardReference) == "" {
		return ErrMissingCardReference
	}
	return nil
}

// Submit settles the selection as one batch, one payment per order, each
// proposing the total the screen computed. A total_mismatch from the server
// means the data is stale and the caller must prompt a refresh, not crash
// (check with client.IsTotalMismatch). The selection is cleared on success.
func Submit(ctx context.Context, api *client.Client, s *Selection, method pos.Method, cardReference string) ([]pos.Payment, error) {
	if err := ValidatePayment(s, method, cardReference); err != nil {
		return nil, err
	}

	var ref *string
	if method == pos.MethodCard {
		trimmed := strings.TrimSpace(cardReference)
		ref = &trimmed
	}

	batch := make([]pos.PaymentRequest, 0, s.Len())
	for _, o := range s.Orders() {
		batch = append(batch, pos.PaymentRequest{
			OrderID:       o.ID,
			Total:         o.Total(),
			Method:        method,
			CardReference: ref,
		})
	}

	payments, err := api.SubmitPayments(ctx, batch)
	if err != nil {
		return nil, err
	}
	s.Clear()
	return payments, nil
}
