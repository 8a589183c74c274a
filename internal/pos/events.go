package pos

import (
	"encoding/json"
	"time"

	"github.com/laes18/go-restaurant-pos/internal/money"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventPaymentRecorded    = "PaymentRecorded"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID     string      `json:"order_id"`
	DailyNumber int         `json:"daily_number,omitempty"`
	Table       string      `json:"table"`
	Dishes      []OrderDish `json:"dishes"`
	Total       money.Cents `json:"total"`
}

type OrderStatusChangedPayload struct {
	OrderID string `json:"order_id"`
	From    Status `json:"from"`
	To      Status `json:"to"`
}

type PaymentRecordedPayload struct {
	PaymentID string      `json:"payment_id"`
	OrderID   string      `json:"order_id"`
	Total     money.Cents `json:"total"`
	Method    Method      `json:"method"`
}
