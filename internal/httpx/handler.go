package httpx

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/laes18/go-restaurant-pos/internal/kafka"
	"github.com/laes18/go-restaurant-pos/internal/pos"
)

// Store is the system of record behind the handlers. *pos.Repo is the real
// implementation; tests use an in-memory one.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string, role pos.Role) (pos.User, error)
	GetUserByEmail(ctx context.Context, email string) (pos.User, error)
	ListUsers(ctx context.Context) ([]pos.User, error)
	UpdateUser(ctx context.Context, id string, req pos.UpdateUserRequest) (pos.User, error)
	DeleteUser(ctx context.Context, id string) error

	CreateDish(ctx context.Context, req pos.CreateDishRequest) (pos.Dish, error)
	ListDishes(ctx context.Context) ([]pos.Dish, error)
	DeleteDish(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, req pos.CreateOrderRequest, dailyNumber int) (pos.Order, error)
	ListOrders(ctx context.Context, status pos.Status, unpaidOnly bool) ([]pos.Order, error)
	GetOrderStatus(ctx context.Context, id string) (pos.Status, error)
	UpdateOrderStatus(ctx context.Context, id string, to pos.Status) (pos.Order, pos.Status, error)
	AppendOrderDishes(ctx context.Context, id string, req pos.AppendOrderRequest) (pos.Order, error)

	RecordPayment(ctx context.Context, req pos.PaymentRequest) (pos.Payment, error)
	ListPayments(ctx context.Context) ([]pos.Payment, error)
}

type SessionStore interface {
	Create(ctx context.Context, u pos.User) (string, error)
	Delete(ctx context.Context, token string) error
}

type OrderNumbering interface {
	Next(ctx context.Context, day time.Time) (int, error)
}

type OrderStatusCache interface {
	Set(ctx context.Context, orderID string, st pos.Status)
	Get(ctx context.Context, orderID string) (pos.Status, bool)
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type Handler struct {
	Store    Store
	Sessions SessionStore
	Numbers  OrderNumbering
	Statuses OrderStatusCache

	OrderCreated    Publisher
	StatusChanged   Publisher
	PaymentRecorded Publisher

	Validate *validatorv10.Validate
	Service  string
}

func (h *Handler) Register(r *chi.Mux) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/register", h.register)
		r.Post("/logout", h.logout)

		r.Get("/dishes", h.listDishes)
		r.Post("/dishes", h.createDish)
		r.Delete("/dishes/{id}", h.deleteDish)

		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)

		r.Get("/orders", h.listOrders)
		r.Post("/orders", h.createOrder)
		r.Patch("/orders/{id}", h.updateOrderStatus)
		r.Put("/orders/{id}", h.appendOrder)
		r.Get("/orders/{id}/status", h.orderStatus)

		r.Get("/payments", h.listPayments)
		r.Post("/payments", h.submitPayments)
	})
}

// publish wraps a payload in the event envelope and hands it to the topic's
// producer. A nil publisher (degraded startup, tests) is a no-op.
func (h *Handler) publish(p Publisher, eventType, orderID string, payload any) {
	if p == nil {
		return
	}
	ev := pos.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		CorrelationID: orderID,
		Payload:       kafkax.MustMarshal(payload),
	}
	p.Publish(pos.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
