package cart

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

func dish(name string, price money.Cents) pos.Dish {
	return pos.Dish{ID: name, Name: name, Price: price, Type: pos.TypeLunch}
}

func TestAddRemoveTotal(t *testing.T) {
	c := New()
	c.Add(dish("Soup", 500))
	c.Add(dish("Soup", 500)) // duplicates are separate units
	c.Add(dish("Steak", 1250))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, money.Cents(2250), c.Total())

	// removing index 1 removes exactly the middle Soup
	require.NoError(t, c.RemoveAt(1))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, money.Cents(1750), c.Total())
	items := c.Items()
	assert.Equal(t, "Soup", items[0].Name)
	assert.Equal(t, "Steak", items[1].Name)

	assert.Error(t, c.RemoveAt(2))
	assert.Error(t, c.RemoveAt(-1))
}

func TestRemoveAtWithEqualValues(t *testing.T) {
	c := New()
	c.Add(dish("Tea", 150))
	c.Add(dish("Tea", 150))
	c.Add(dish("Tea", 150))
	require.NoError(t, c.RemoveAt(0))
	require.NoError(t, c.RemoveAt(1))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, money.Cents(150), c.Total())
}

func TestValidate(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Validate("5"), ErrEmptyCart)

	c.Add(dish("Soup", 500))
	assert.ErrorIs(t, c.Validate(""), ErrEmptyTable)
	assert.ErrorIs(t, c.Validate("   "), ErrEmptyTable)
	assert.NoError(t, c.Validate("5"))
}

// Submit must reject locally: the API is never called with an empty cart or
// empty table.
func TestSubmitRejectsWithoutNetworkCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected network call")
	}))
	defer srv.Close()
	api := client.New(srv.URL)

	empty := New()
	_, err := empty.Submit(context.Background(), api, "5", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	noTable := New()
	noTable.Add(dish("Soup", 500))
	_, err = noTable.Submit(context.Background(), api, "", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyTable)
	assert.Equal(t, 1, noTable.Len(), "cart kept on failed submit")
}

func TestSubmitCreatesOrderAndClears(t *testing.T) {
	var got pos.CreateOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(pos.Order{ID: "o1", Table: got.Table, Status: pos.StatusPending})
	}))
	defer srv.Close()

	c := New()
	c.Add(dish("Soup", 500))
	c.Add(dish("Soup", 500))

	o, err := c.Submit(context.Background(), client.New(srv.URL), "5", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, "5", got.Table)
	assert.Len(t, got.Dishes, 2)
	assert.Equal(t, 0, c.Len(), "cart cleared on success")
}

func TestSubmitEditModeAppends(t *testing.T) {
	var got pos.AppendOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/orders/o7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(pos.Order{ID: "o7", Table: "3", Status: pos.StatusPending})
	}))
	defer srv.Close()

	c := NewForOrder("o7", "3")
	c.Add(dish("Cake", 400))

	// the table is frozen while editing
	_, err := c.Submit(context.Background(), client.New(srv.URL), "9", nil, nil)
	assert.ErrorIs(t, err, ErrTableFrozen)

	_, err = c.Submit(context.Background(), client.New(srv.URL), "3", nil, nil)
	require.NoError(t, err)
	assert.Len(t, got.NewDishes, 1)
	assert.Equal(t, 0, c.Len())
}
