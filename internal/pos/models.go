package pos

import (
	"time"

	"github.com/laes18/go-restaurant-pos/internal/money"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleWaiter  Role = "waiter"
	RoleKitchen Role = "kitchen"
	RoleCashier Role = "cashier"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWaiter, RoleKitchen, RoleCashier:
		return true
	}
	return false
}

// Dish categories. Extensible in practice; these are the ones the menu
// screens know about.
const (
	TypeBreakfast = "breakfast"
	TypeLunch     = "lunch"
	TypeDinner    = "dinner"
	TypeDrink     = "drink"
	TypeDessert   = "dessert"
	TypeMain      = "main"
)

type Dish struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Price     money.Cents `json:"price"`
	Type      string      `json:"type"`
	ImageURL  *string     `json:"image_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderDish is a denormalized snapshot of a dish at the moment it was added
// to an order. Later edits to the dish catalogue never rewrite these lines.
type OrderDish struct {
	Name  string      `json:"name"`
	Price money.Cents `json:"price"`
	Type  string      `json:"type"`
}

type Order struct {
	ID          string      `json:"id"`
	DailyNumber int         `json:"daily_number,omitempty"`
	Table       string      `json:"table"`
	Dishes      []OrderDish `json:"dishes"`
	Status      Status      `json:"status"`
	WaiterName  *string     `json:"waiter_name,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
	PaymentID   *string     `json:"payment_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Total is the exact sum of the order's dish snapshots.
func (o *Order) Total() money.Cents {
	var t money.Cents
	for _, d := range o.Dishes {
		t += d.Price
	}
	return t
}

type Method string

const (
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

type Payment struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"order_id"`
	Total         money.Cents `json:"total"`
	Method        Method      `json:"method"`
	CardReference *string     `json:"card_reference,omitempty"`
	PaidAt        time.Time   `json:"paid_at"`
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
