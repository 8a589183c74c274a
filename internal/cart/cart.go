// Package cart holds the waiter's in-progress order composition. It lives
// only for the duration of the compose interaction and is discarded on
// submit or cancel; nothing here is persisted.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/laes18/go-restaurant-pos/internal/client"
	"github.com/laes18/go-restaurant-pos/internal/money"
	"github.com/laes18/go-restaurant-pos/internal/pos"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrEmptyTable  = errors.New("table is required")
	ErrOutOfRange  = errors.New("no cart item at that position")
	ErrTableFrozen = errors.New("table cannot change while editing an order")
)

type Cart struct {
	items []pos.OrderDishInput

	// edit mode: appends to an existing order instead of creating one,
	// and the table number is frozen for the flow
	editOrderID string
	editTable   string
}

func New() *Cart { return &Cart{} }

// NewForOrder opens the cart in edit mode against an existing open order.
func NewForOrder(orderID, table string) *Cart {
	return &Cart{editOrderID: orderID, editTable: table}
}

func (c *Cart) Editing() bool { return c.editOrderID != "" }

// Add appends one unit of the dish as a snapshot. No deduplication: the same
// dish added twice is two lines, each individually removable.
func (c *Cart) Add(d pos.Dish) {
	c.items = append(c.items, pos.OrderDishInput{Name: d.Name, Price: d.Price, Type: d.Type})
}

// RemoveAt removes exactly the item at position i. Removal is positional on
// purpose: with duplicate dishes, removing "by dish" would be ambiguous.
func (c *Cart) RemoveAt(i int) error {
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) Items() []pos.OrderDishInput {
	out := make([]pos.OrderDishInput, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() money.Cents {
	var t money.Cents
	for _, it := range c.items {
		t += it.Price
	}
	return t
}

func (c *Cart) Clear() { c.items = nil }

// Validate runs the local pre-network checks: a submit with an empty table
// or an empty cart never reaches the API.
func (c *Cart) Validate(table string) error {
	if c.Editing() {
		if table != "" && table != c.editTable {
			return ErrTableFrozen
		}
	} else if strings.TrimSpace(table) == "" {
		return ErrEmptyTable
	}
	if len(c.items) == 0 {
		return ErrEmptyCart
	}
	return nil
}

// Submit creates a new order, or appends to the edited one. The cart is
// cleared only on success.
func (c *Cart) Submit(ctx context.Context, api *client.Client, table string, notes, waiterName *string) (pos.Order, error) {
	if err := c.Validate(table); err != nil {
		return pos.Order{}, err
	}

	var o pos.Order
	var err error
	if c.Editing() {
		o, err = api.AppendOrder(ctx, c.editOrderID, pos.AppendOrderRequest{
			NewDishes:  c.Items(),
			Notes:      notes,
			WaiterName: waiterName,
		})
	} else {
		o, err = api.CreateOrder(ctx, pos.CreateOrderRequest{
			Table:      table,
			Dishes:     c.Items(),
			WaiterName: waiterName,
			Notes:      notes,
		})
	}
	if err != nil {
		return pos.Order{}, err
	}
	c.Clear()
	return o, nil
}
