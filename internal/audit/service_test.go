package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

type fakeRecorder struct {
	inserted []pos.Envelope
	err      error
}

func (f *fakeRecorder) InsertOrderEvent(_ context.Context, env pos.Envelope) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, env)
	return nil
}

func envelope(t *testing.T, eventType, orderID string, payload any) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	b, err := json.Marshal(pos.Envelope{
		EventID:       "e1",
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      "pos-api-test",
		CorrelationID: orderID,
		Payload:       raw,
	})
	require.NoError(t, err)
	return kafkago.Message{Value: b}
}

func TestHandleEventRecords(t *testing.T) {
	rec := &fakeRecorder{}
	svc := &Service{Repo: rec, Log: zap.NewNop()}

	m := envelope(t, pos.EventOrderCreated, "o1", pos.OrderCreatedPayload{
		OrderID: "o1", Table: "5", Total: 2250,
	})
	require.NoError(t, svc.HandleEvent(context.Background(), m))
	require.Len(t, rec.inserted, 1)
	assert.Equal(t, pos.EventOrderCreated, rec.inserted[0].EventType)
	assert.Equal(t, "o1", rec.inserted[0].CorrelationID)
}

// Malformed messages are committed past, never retried forever.
func TestHandleEventDropsMalformed(t *testing.T) {
	rec := &fakeRecorder{}
	svc := &Service{Repo: rec, Log: zap.NewNop()}

	err := svc.HandleEvent(context.Background(), kafkago.Message{Value: []byte("not json")})
	assert.NoError(t, err)
	assert.Empty(t, rec.inserted)
}

// A failed insert returns the error so the offset stays uncommitted.
func TestHandleEventPropagatesInsertFailure(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	svc := &Service{Repo: rec, Log: zap.NewNop()}

	m := envelope(t, pos.EventPaymentRecorded, "o1", pos.PaymentRecordedPayload{
		PaymentID: "p1", OrderID: "o1", Total: 500, Method: pos.MethodCash,
	})
	assert.Error(t, svc.HandleEvent(context.Background(), m))
}
