// Package audit appends every order event from the kafka stream to the
// order_events table, giving the admin screens a replayable trail.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/laes18/go-restaurant-pos/internal/kafka"
	"github.com/laes18/go-restaurant-pos/internal/pos"
	"github.com/laes18/go-restaurant-pos/internal/redisx"
)

type Recorder interface {
	InsertOrderEvent(ctx context.Context, env pos.Envelope) error
}

type Service struct {
	Repo  Recorder
	Redis *redis.Client
	Log   *zap.Logger
}

// HandleEvent is mounted as the consumer handler for every pos topic.
// Duplicates are dropped twice over: a redis dedup key per event id, and the
// unique index on order_events.event_id.
func (s *Service) HandleEvent(ctx context.Context, m kafkago.Message) error {
	var env pos.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		// a malformed message will never parse; log and commit past it
		s.Log.Warn("dropping malformed event", zap.Error(err))
		return nil
	}

	// redis is the fast dedup path; without it the unique index still holds
	dkey := fmt.Sprintf(redisx.KeyDedup, "auditor", env.EventID)
	if s.Redis != nil {
		if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
			return nil
		}
	}

	if err := s.Repo.InsertOrderEvent(ctx, env); err != nil {
		return err
	}
	if s.Redis != nil {
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	fields := []zap.Field{
		zap.String("event_type", env.EventType),
		zap.String("order_id", env.CorrelationID),
	}
	switch env.EventType {
	case pos.EventOrderCreated:
		if p, err := kafkax.UnwrapPayload[pos.OrderCreatedPayload](env.Payload); err == nil {
			fields = append(fields, zap.String("table", p.Table), zap.Stringer("total", p.Total))
		}
	case pos.EventPaymentRecorded:
		if p, err := kafkax.UnwrapPayload[pos.PaymentRecordedPayload](env.Payload); err == nil {
			fields = append(fields, zap.String("method", string(p.Method)), zap.Stringer("total", p.Total))
		}
	}
	s.Log.Info("event recorded", fields...)
	return nil
}
