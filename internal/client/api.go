package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

func (c *Client) Login(ctx context.Context, email, password string) (pos.LoginResponse, error) {
	var out pos.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", pos.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return pos.LoginResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

func (c *Client) Register(ctx context.Context, req pos.RegisterRequest) (pos.User, error) {
	var u pos.User
	err := c.do(ctx, http.MethodPost, "/api/register", req, &u)
	return u, err
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	if err == nil {
		c.token = ""
	}
	return err
}

func (c *Client) ListDishes(ctx context.Context) ([]pos.Dish, error) {
	var out []pos.Dish
	err := c.get(ctx, "/api/dishes", &out)
	return out, err
}

func (c *Client) CreateDish(ctx context.Context, req pos.CreateDishRequest) (pos.Dish, error) {
	var d pos.Dish
	err := c.do(ctx, http.MethodPost, "/api/dishes", req, &d)
	return d, err
}

func (c *Client) DeleteDish(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/dishes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]pos.User, error) {
	var out []pos.User
	err := c.get(ctx, "/api/users", &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req pos.RegisterRequest) (pos.User, error) {
	var u pos.User
	err := c.do(ctx, http.MethodPost, "/api/users", req, &u)
	return u, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, req pos.UpdateUserRequest) (pos.User, error) {
	var u pos.User
	err := c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), req, &u)
	return u, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil)
}

// OrderQuery narrows GET /api/orders. Zero value fetches everything.
type OrderQuery struct {
	Status     pos.Status
	UnpaidOnly bool
}

func (c *Client) ListOrders(ctx context.Context, q OrderQuery) ([]pos.Order, error) {
	vals := url.Values{}
	if q.Status != "" {
		vals.Set("status", string(q.Status))
	}
	if q.UnpaidOnly {
		vals.Set("unpaid", "true")
	}
	path := "/api/orders"
	if len(vals) > 0 {
		path += "?" + vals.Encode()
	}
	var out []pos.Order
	err := c.get(ctx, path, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, req pos.CreateOrderRequest) (pos.Order, error) {
	var o pos.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", req, &o)
	return o, err
}

func (c *Client) SetOrderStatus(ctx context.Context, id string, st pos.Status) (pos.Order, error) {
	var o pos.Order
	err := c.do(ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(id), pos.UpdateOrderStatusRequest{Status: st}, &o)
	return o, err
}

func (c *Client) AppendOrder(ctx context.Context, id string, req pos.AppendOrderRequest) (pos.Order, error) {
	var o pos.Order
	err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), req, &o)
	return o, err
}

func (c *Client) OrderStatus(ctx context.Context, id string) (pos.Status, error) {
	var out pos.OrderStatusResponse
	err := c.get(ctx, "/api/orders/"+url.PathEscape(id)+"/status", &out)
	return out.Status, err
}

func (c *Client) ListPayments(ctx context.Context) ([]pos.Payment, error) {
	var out []pos.Payment
	err := c.get(ctx, "/api/payments", &out)
	return out, err
}

func (c *Client) SubmitPayments(ctx context.Context, batch []pos.PaymentRequest) ([]pos.Payment, error) {
	var out []pos.Payment
	err := c.do(ctx, http.MethodPost, "/api/payments", batch, &out)
	return out, err
}
