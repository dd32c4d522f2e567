package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionPrefix = "session:"
	filterPrefix  = "filter:"

	maxTxRetries = 5
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, session *model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetFilterState(ctx context.Context, clientID string) (*model.FilterState, error)
	UpdateFilterState(ctx context.Context, clientID string, ttl time.Duration, mutate func(*model.FilterState) (*model.FilterState, error)) (*model.FilterState, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. A nil client turns every call into a no-op.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// SetSession stores the session JSON under its id with TTL
func (r *redis) SetSession(ctx context.Context, session *model.Session, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.setJSON(ctx, sessionPrefix+session.ID, session, ttl)
}

// GetSession retrieves a session, nil when missing or expired
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if r.client == nil {
		return nil, nil
	}
	var session model.Session
	found, err := r.getJSON(ctx, sessionPrefix+sessionID, &session)
	if err != nil || !found {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// GetFilterState retrieves the filter state of a client, nil when none was saved
func (r *redis) GetFilterState(ctx context.Context, clientID string) (*model.FilterState, error) {
	if r.client == nil {
		return nil, nil
	}
	var state model.FilterState
	found, err := r.getJSON(ctx, filterPrefix+clientID, &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

// UpdateFilterState reads the filter state of a client, applies mutate and stores the result with TTL
// inside a WATCH transaction, retrying when another request changed the key in between. A missing or
// unreadable state reaches mutate as nil. An error from mutate aborts the update and is returned as is.
func (r *redis) UpdateFilterState(ctx context.Context, clientID string, ttl time.Duration, mutate func(*model.FilterState) (*model.FilterState, error)) (*model.FilterState, error) {
	if r.client == nil {
		return mutate(nil)
	}

	key := filterPrefix + clientID
	var updated *model.FilterState
	txf := func(tx *goredis.Tx) error {
		current, err := readFilterState(ctx, tx, key)
		if err != nil {
			return err
		}
		next, err := mutate(current)
		if err != nil {
			return err
		}
		body, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, body, ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = next
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, goredis.TxFailedErr
}

func readFilterState(ctx context.Context, tx *goredis.Tx, key string) (*model.FilterState, error) {
	val, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.FilterState
	if err := json.Unmarshal(val, &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

func (r *redis) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, body, ttl).Err()
}

func (r *redis) getJSON(ctx context.Context, key string, out any) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, out); err != nil {
		return false, err
	}
	return true, nil
}
