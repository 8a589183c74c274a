package pos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/laes18/go-restaurant-pos/internal/money"
)

// CreateOrder inserts the order plus its dish snapshot lines in one tx.
// The dish list must be non-empty; handlers validate that before calling.
func (r *Repo) CreateOrder(ctx context.Context, req CreateOrderRequest, dailyNumber int) (Order, error) {
	now := time.Now().UTC()
	o := Order{
		ID:          uuid.NewString(),
		DailyNumber: dailyNumber,
		Table:       req.Table,
		Dishes:      Snapshots(req.Dishes),
		Status:      StatusPending,
		WaiterName:  req.WaiterName,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders(id, daily_number, table_no, status, waiter_name, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		o.ID, o.DailyNumber, o.Table, o.Status, o.WaiterName, o.Notes, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	for i, d := range o.Dishes {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_dishes(order_id, position, name, price_cents, type)
			VALUES ($1,$2,$3,$4,$5)`,
			o.ID, i, d.Name, int64(d.Price), d.Type); err != nil {
			return Order{}, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return Order{}, err
	}
	return o, nil
}

// ListOrders filters by exact status when status != "" and by payment
// linkage when unpaidOnly is set. Oldest first.
func (r *Repo) ListOrders(ctx context.Context, status Status, unpaidOnly bool) ([]Order, error) {
	q := `SELECT id, daily_number, table_no, status, waiter_name, notes, payment_id, created_at, updated_at
	      FROM orders WHERE 1=1`
	args := []any{}
	if status != "" {
		args = append(args, status)
		q += ` AND status=$1`
	}
	if unpaidOnly {
		q += ` AND payment_id IS NULL`
	}
	q += ` ORDER BY created_at`

	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	ids := []string{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.DailyNumber, &o.Table, &o.Status,
			&o.WaiterName, &o.Notes, &o.PaymentID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	dishes, err := r.orderDishes(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Dishes = dishes[out[i].ID]
	}
	return out, nil
}

func (r *Repo) orderDishes(ctx context.Context, orderIDs []string) (map[string][]OrderDish, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT order_id, name, price_cents, type
		FROM order_dishes WHERE order_id = ANY($1) ORDER BY order_id, position`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]OrderDish{}
	for rows.Next() {
		var id string
		var d OrderDish
		var cents int64
		if err := rows.Scan(&id, &d.Name, &cents, &d.Type); err != nil {
			return nil, err
		}
		d.Price = money.Cents(cents)
		out[id] = append(out[id], d)
	}
	return out, rows.Err()
}

func (r *Repo) GetOrderStatus(ctx context.Context, id string) (Status, error) {
	var s Status
	err := r.DB.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, id).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return s, nil
}

// UpdateOrderStatus advances an order through the lifecycle and reports the
// state it moved from. Any move the transition map does not allow (including
// re-invoking a taken transition) fails with ErrBadTransition and leaves the
// row untouched.
func (r *Repo) UpdateOrderStatus(ctx context.Context, id string, to Status) (Order, Status, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var from Status
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, id).Scan(&from)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, "", ErrNotFound
	}
	if err != nil {
		return Order{}, "", err
	}
	if !CanTransition(from, to) {
		return Order{}, "", ErrBadTransition
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2, updated_at=now() WHERE id=$1`, id, to); err != nil {
		return Order{}, "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return Order{}, "", err
	}
	o, err := r.getOrder(ctx, id)
	return o, from, err
}

// AppendOrderDishes models "add to open tab": allowed only while the order
// is pending or served-but-unpaid, and only ever adds lines.
func (r *Repo) AppendOrderDishes(ctx context.Context, id string, req AppendOrderRequest) (Order, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var st Status
	var paymentID *string
	err = tx.QueryRow(ctx, `SELECT status, payment_id FROM orders WHERE id=$1 FOR UPDATE`, id).
		Scan(&st, &paymentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	if !st.Appendable() || paymentID != nil {
		return Order{}, ErrOrderLocked
	}

	var next int
	if err := tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(position)+1, 0) FROM order_dishes WHERE order_id=$1`, id).Scan(&next); err != nil {
		return Order{}, err
	}
	for i, d := range req.NewDishes {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_dishes(order_id, position, name, price_cents, type)
			VALUES ($1,$2,$3,$4,$5)`,
			id, next+i, d.Name, int64(d.Price), d.Type); err != nil {
			return Order{}, err
		}
	}
	if _, err := tx.Exec(ctx, `
		UPDATE orders SET
			notes = COALESCE($2, notes),
			waiter_name = COALESCE($3, waiter_name),
			updated_at = now()
		WHERE id=$1`, id, req.Notes, req.WaiterName); err != nil {
		return Order{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Order{}, err
	}
	return r.getOrder(ctx, id)
}

func (r *Repo) getOrder(ctx context.Context, id string) (Order, error) {
	var o Order
	err := r.DB.QueryRow(ctx, `
		SELECT id, daily_number, table_no, status, waiter_name, notes, payment_id, created_at, updated_at
		FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.DailyNumber, &o.Table, &o.Status,
			&o.WaiterName, &o.Notes, &o.PaymentID, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	dishes, err := r.orderDishes(ctx, []string{id})
	if err != nil {
		return Order{}, err
	}
	o.Dishes = dishes[id]
	return o, nil
}
