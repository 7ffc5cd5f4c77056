// Package redisctx is the durable tier of the context store: one redis
// key per chat window, JSON value, per-key TTL refreshed on every save so
// an active conversation never expires mid-flight.
package redisctx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sandevgo/gaulbot/internal/core"
)

const keyPrefix = "gaulbot:ctx:"

const DefaultTTL = 24 * time.Hour

type Archive struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Archive {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Archive{client: client, ttl: ttl}
}

type storedWindow struct {
	ChatID  string                  `json:"chat_id"`
	Turns   []core.ConversationTurn `json:"turns"`
	SavedAt time.Time               `json:"saved_at"`
}

func (a *Archive) LoadWindow(ctx context.Context, chatID string) ([]core.ConversationTurn, error) {
	raw, err := a.client.Get(ctx, key(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load context window: %w", err)
	}

	var w storedWindow
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decode context window: %w", err)
	}
	return w.Turns, nil
}

func (a *Archive) SaveWindow(ctx context.Context, chatID string, turns []core.ConversationTurn) error {
	raw, err := json.Marshal(storedWindow{
		ChatID:  chatID,
		Turns:   turns,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode context window: %w", err)
	}

	if err := a.client.Set(ctx, key(chatID), raw, a.ttl).Err(); err != nil {
		return fmt.Errorf("save context window: %w", err)
	}
	return nil
}

func (a *Archive) DeleteWindow(ctx context.Context, chatID string) error {
	if err := a.client.Del(ctx, key(chatID)).Err(); err != nil {
		return fmt.Errorf("delete context window: %w", err)
	}
	return nil
}

// DeleteAll scans for every window key and removes them in batches.
func (a *Archive) DeleteAll(ctx context.Context) error {
	iter := a.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := a.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete context windows: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan context windows: %w", err)
	}
	if len(keys) > 0 {
		if err := a.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete context windows: %w", err)
		}
	}
	return nil
}

func key(chatID string) string {
	return keyPrefix + chatID
}
