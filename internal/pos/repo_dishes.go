package pos

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/laes18/go-restaurant-pos/internal/money"
)

func (r *Repo) CreateDish(ctx context.Context, req CreateDishRequest) (Dish, error) {
	d := Dish{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		Type:      req.Type,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.DB.Exec(ctx, `
		INSERT INTO dishes(id, name, price_cents, type, image_url, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		d.ID, d.Name, int64(d.Price), d.Type, d.ImageURL, d.CreatedAt)
	if err != nil {
		return Dish{}, err
	}
	return d, nil
}

func (r *Repo) ListDishes(ctx context.Context) ([]Dish, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, price_cents, type, image_url, created_at
		FROM dishes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Dish
	for rows.Next() {
		var d Dish
		var cents int64
		if err := rows.Scan(&d.ID, &d.Name, &cents, &d.Type, &d.ImageURL, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Price = money.Cents(cents)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteDish(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM dishes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
