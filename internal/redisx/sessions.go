package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

var ErrSessionNotFound = errors.New("session not found")

// Sessions stores login tokens. There is no refresh; a token lives for
// TTLSession and logout deletes it.
type Sessions struct{ R *redis.Client }

func (s *Sessions) Create(ctx context.Context, u pos.User) (string, error) {
	token := uuid.NewString()
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf(KeySession, token)
	if err := s.R.Set(ctx, key, b, TTLSession).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Sessions) Get(ctx context.Context, token string) (pos.User, error) {
	key := fmt.Sprintf(KeySession, token)
	b, err := s.R.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return pos.User{}, ErrSessionNotFound
	}
	if err != nil {
		return pos.User{}, err
	}
	var u pos.User
	if err := json.Unmarshal(b, &u); err != nil {
		return pos.User{}, err
	}
	return u, nil
}

func (s *Sessions) Delete(ctx context.Context, token string) error {
	return s.R.Del(ctx, fmt.Sprintf(KeySession, token)).Err()
}
