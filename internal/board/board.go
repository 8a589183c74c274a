// Package board is the kitchen's view of the order queue.
package board

import (
	"context"
	"sort"
	"time"

	"github.com/laes18/go-restaurant-pos/internal/client"
	"github.com/laes18/go-restaurant-pos/internal/pos"
)

// Active keeps only the orders the kitchen still works on. Marking an order
// served removes it from this view; it never comes back.
func Active(orders []pos.Order) []pos.Order {
	out := make([]pos.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == pos.StatusPending || o.Status == pos.StatusInProgress {
			out = append(out, o)
		}
	}
	return out
}

// Sort arranges orders for the board: high priority first, then medium,
// then normal; oldest first within a band. This ordering is a contract the
// kitchen relies on, not cosmetics.
func Sort(orders []pos.Order, now time.Time) {
	sort.SliceStable(orders, func(i, j int) bool {
		pi := pos.PriorityFor(orders[i].CreatedAt, now).Rank()
		pj := pos.PriorityFor(orders[j].CreatedAt, now).Rank()
		if pi != pj {
			return pi > pj
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}

// Next yields the only transition the kitchen may take from a state. There
// is no way to skip in_progress or to move anything backwards.
func Next(st pos.Status) (pos.Status, bool) {
	switch st {
	case pos.StatusPending:
		return pos.StatusInProgress, true
	case pos.StatusInProgress:
		return pos.StatusServed, true
	}
	return "", false
}

type Board struct {
	API *client.Client
}

// Load fetches the active queue, sorted for display.
func (b *Board) Load(ctx context.Context) ([]pos.Order, error) {
	orders, err := b.API.ListOrders(ctx, client.OrderQuery{})
	if err != nil {
		return nil, err
	}
	active := Active(orders)
	Sort(active, time.Now())
	return active, nil
}

// Advance moves an order one step. A rejection (someone else already
// advanced it) comes back as an error the screen shows without crashing.
func (b *Board) Advance(ctx context.Context, o pos.Order) (pos.Order, error) {
	next, ok := Next(o.Status)
	if !ok {
		return o, pos.ErrBadTransition
	}
	return b.API.SetOrderStatus(ctx, o.ID, next)
}
