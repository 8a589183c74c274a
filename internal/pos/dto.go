package pos

import "github.com/laes18/go-restaurant-pos/internal/money"

// Wire DTOs shared by the HTTP handlers and the API client.

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"required,oneof=admin waiter kitchen cashier"`
}

type CreateDishRequest struct {
	Name     string      `json:"name" validate:"required"`
	Price    money.Cents `json:"price" validate:"gte=0"`
	Type     string      `json:"type" validate:"required"`
	ImageURL *string     `json:"image_url,omitempty"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"required,oneof=admin waiter kitchen cashier"`
}

type OrderDishInput struct {
	Name  string      `json:"name" validate:"required"`
	Price money.Cents `json:"price" validate:"gte=0"`
	Type  string      `json:"type" validate:"required"`
}

type CreateOrderRequest struct {
	Table      string           `json:"table" validate:"required"`
	Dishes     []OrderDishInput `json:"dishes" validate:"required,min=1,dive"`
	WaiterName *string          `json:"waiter_name,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=pending in_progress served paid"`
}

// AppendOrderRequest adds dishes to an open order; it never removes lines.
type AppendOrderRequest struct {
	NewDishes  []OrderDishInput `json:"new_dishes" validate:"required,min=1,dive"`
	Notes      *string          `json:"notes,omitempty"`
	WaiterName *string          `json:"waiter_name,omitempty"`
}

type OrderStatusResponse struct {
	Status Status `json:"status"`
}

// PaymentRequest is one element of the batch POST /api/payments body.
// Card payments require a non-blank reference; this is enforced by a
// struct-level validation registered in httpx.
type PaymentRequest struct {
	OrderID       string      `json:"order_id" validate:"required,uuid4"`
	Total         money.Cents `json:"total" validate:"gte=0"`
	Method        Method      `json:"method" validate:"required,oneof=cash card"`
	CardReference *string     `json:"card_reference,omitempty"`
}

func Snapshots(in []OrderDishInput) []OrderDish {
	out := make([]OrderDish, 0, len(in))
	for _, d := range in {
		out = append(out, OrderDish{Name: d.Name, Price: d.Price, Type: d.Type})
	}
	return out
}
