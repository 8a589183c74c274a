package pos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/laes18/go-restaurant-pos/internal/money"
)

// RecordPayment settles one order. The server is the authority on the total
// invariant: the proposed total must equal the current sum of the order's
// dish lines, or the call fails with ErrTotalMismatch so the client can
// refresh and retry. On success the order moves to paid in the same tx.
func (r *Repo) RecordPayment(ctx context.Context, req PaymentRequest) (Payment, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Payment{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var st Status
	var paymentID *string
	err = tx.QueryRow(ctx, `SELECT status, payment_id FROM orders WHERE id=$1 FOR UPDATE`, req.OrderID).
		Scan(&st, &paymentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payment{}, ErrNotFound
	}
	if err != nil {
		return Payment{}, err
	}
	if st != StatusServed || paymentID != nil {
		return Payment{}, ErrOrderNotPayable
	}

	var sum int64
	if err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(price_cents), 0) FROM order_dishes WHERE order_id=$1`, req.OrderID).Scan(&sum); err != nil {
		return Payment{}, err
	}
	if money.Cents(sum) != req.Total {
		return Payment{}, ErrTotalMismatch
	}

	p := Payment{
		ID:            uuid.NewString(),
		OrderID:       req.OrderID,
		Total:         req.Total,
		Method:        req.Method,
		CardReference: req.CardReference,
		PaidAt:        time.Now().UTC(),
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO payments(id, order_id, total_cents, method, card_reference, paid_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.OrderID, int64(p.Total), p.Method, p.CardReference, p.PaidAt); err != nil {
		return Payment{}, err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE orders SET status=$2, payment_id=$3, updated_at=now() WHERE id=$1`,
		req.OrderID, StatusPaid, p.ID); err != nil {
		return Payment{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Payment{}, err
	}
	return p, nil
}

func (r *Repo) ListPayments(ctx context.Context) ([]Payment, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, order_id, total_cents, method, card_reference, paid_at
		FROM payments ORDER BY paid_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		var cents int64
		if err := rows.Scan(&p.ID, &p.OrderID, &cents, &p.Method, &p.CardReference, &p.PaidAt); err != nil {
			return nil, err
		}
		p.Total = money.Cents(cents)
		out = append(out, p)
	}
	return out, rows.Err()
}
