package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            uuid PRIMARY KEY,
		name          text NOT NULL,
		email         text NOT NULL UNIQUE,
		password_hash text NOT NULL,
		role          text NOT NULL,
		created_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS dishes (
		id          uuid PRIMARY KEY,
		name        text NOT NULL,
		price_cents bigint NOT NULL CHECK (price_cents >= 0),
		type        text NOT NULL,
		image_url   text,
		created_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           uuid PRIMARY KEY,
		daily_number int NOT NULL DEFAULT 0,
		table_no     text NOT NULL,
		status       text NOT NULL,
		waiter_name  text,
		notes        text,
		payment_id   uuid,
		created_at   timestamptz NOT NULL DEFAULT now(),
		updated_at   timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_dishes (
		id          bigserial PRIMARY KEY,
		order_id    uuid NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position    int NOT NULL,
		name        text NOT NULL,
		price_cents bigint NOT NULL CHECK (price_cents >= 0),
		type        text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id             uuid PRIMARY KEY,
		order_id       uuid NOT NULL REFERENCES orders(id),
		total_cents    bigint NOT NULL CHECK (total_cents >= 0),
		method         text NOT NULL,
		card_reference text,
		paid_at        timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_events (
		id          bigserial PRIMARY KEY,
		event_id    uuid NOT NULL UNIQUE,
		event_type  text NOT NULL,
		order_id    text NOT NULL,
		payload     jsonb NOT NULL,
		occurred_at timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	`CREATE INDEX IF NOT EXISTS idx_order_dishes_order ON order_dishes(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_events_order ON order_events(order_id)`,
}

// EnsureSchema bootstraps the tables on startup. Statements are idempotent,
// so every service can run it unconditionally.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
