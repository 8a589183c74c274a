package cashier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laes18/go-restaurant-pos/internal/client"
	"github.com/laes18/go-restaurant-pos/internal/money"
	"github.com/laes18/go-restaurant-pos/internal/pos"
)

func served(id string, prices ...money.Cents) *pos.Order {
	o := &pos.Order{ID: id, Status: pos.StatusServed}
	for _, p := range prices {
		o.Dishes = append(o.Dishes, pos.OrderDish{Name: "dish", Price: p, Type: pos.TypeMain})
	}
	return o
}

func TestSelectionByObjectIdentity(t *testing.T) {
	s := NewSelection()
	a := served("o1", 500)
	b := served("o1", 500) // same identifier, different object

	s.Select(a)
	s.Select(b)
	assert.Equal(t, 2, s.Len(), "identity, not identifier")

	s.Select(a) // re-selecting the same object is a no-op
	assert.Equal(t, 2, s.Len())

	s.Deselect(a)
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Has(a))
	assert.True(t, s.Has(b))
}

func TestToggle(t *testing.T) {
	s := NewSelection()
	o := served("o1", 500)
	assert.True(t, s.Toggle(o))
	assert.False(t, s.Toggle(o))
	assert.Equal(t, 0, s.Len())
}

func TestTotalAcrossOrders(t *testing.T) {
	s := NewSelection()
	s.Select(served("o1", 500, 500)) // two soups
	s.Select(served("o2", 1250))
	assert.Equal(t, money.Cents(2250), s.Total())
}

func TestValidatePayment(t *testing.T) {
	empty := NewSelection()
	assert.ErrorIs(t, ValidatePayment(empty, pos.MethodCash, ""), ErrEmptySelection)

	s := NewSelection()
	s.Select(served("o1", 500))
	assert.NoError(t, ValidatePayment(s, pos.MethodCash, ""))
	assert.ErrorIs(t, ValidatePayment(s, pos.MethodCard, ""), ErrMissingCardReference)
	assert.ErrorIs(t, ValidatePayment(s, pos.MethodCard, "   \t"), ErrMissingCardReference)
	assert.NoError(t, ValidatePayment(s, pos.MethodCard, "AUTH-1"))
}

func TestSubmitRejectsLocallyWithoutNetworkCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected network call")
	}))
	defer srv.Close()

	_, err := Submit(context.Background(), client.New(srv.URL), NewSelection(), pos.MethodCash, "")
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestSubmitBatch(t *testing.T) {
	var got []pos.PaymentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]pos.Payment{{ID: "p1"}, {ID: "p2"}})
	}))
	defer srv.Close()

	s := NewSelection()
	s.Select(served("o1", 500, 500))
	s.Select(served("o2", 1250))

	payments, err := Submit(context.Background(), client.New(srv.URL), s, pos.MethodCash, "")
	require.NoError(t, err)
	assert.Len(t, payments, 2)
	require.Len(t, got, 2)
	assert.Equal(t, money.Cents(1000), got[0].Total)
	assert.Equal(t, money.Cents(1250), got[1].Total)
	assert.Nil(t, got[0].CardReference, "cash carries no reference")
	assert.Equal(t, 0, s.Len(), "selection cleared on success")
}

// A stale total is a recoverable, distinguishable condition: the operator is
// told to refresh, and the selection survives.
func TestSubmitTotalMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"payment total does not match order total","code":"total_mismatch"}`))
	}))
	defer srv.Close()

	s := NewSelection()
	s.Select(served("o1", 500))

	_, err := Submit(context.Background(), client.New(srv.URL), s, pos.MethodCash, "")
	require.Error(t, err)
	assert.True(t, client.IsTotalMismatch(err))
	assert.Equal(t, 1, s.Len(), "selection kept so the operator can refresh and retry")
}
