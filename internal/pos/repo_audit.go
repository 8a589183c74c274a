package pos

import "context"

// InsertOrderEvent appends one event to the audit trail. The unique index on
// event_id makes replays harmless.
func (r *Repo) InsertOrderEvent(ctx context.Context, env Envelope) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO order_events(event_id, event_type, order_id, payload, occurred_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (event_id) DO NOTHING`,
		env.EventID, env.EventType, env.CorrelationID, []byte(env.Payload), env.OccurredAt)
	return err
}
