package core

import (
	"context"
	"errors"
)

// ErrUnavailable marks a storage failure so callers can tell a deliberate
// fallback (no relevant knowledge) from a degraded one (store down).
var ErrUnavailable = errors.New("knowledge storage unavailable")

// KnowledgeRepository is the narrow query surface the engine needs from the
// document store. Items are append-only; there is no update or delete.
type KnowledgeRepository interface {
	// Insert stores a newly learned item.
	Insert(ctx context.Context, item KnowledgeItem) error

	// FindCandidates returns items whose keywords intersect the query
	// keywords, whose content contains any keyword as a substring, or whose
	// category is among the detected topics. Ordered by confidence desc,
	// learned desc, capped at limit.
	FindCandidates(ctx context.Context, features Features, text string, limit int) ([]KnowledgeItem, error)

	// CountBySource reports how many items were learned per source type.
	CountBySource(ctx context.Context) (map[SourceType]int, error)
}

// ContextArchive is the durable tier behind the context store. The backing
// store owns expiry (per-key TTL refreshed on every save).
type ContextArchive interface {
	// LoadWindow returns the stored window, or nil when absent or expired.
	LoadWindow(ctx context.Context, chatID string) ([]ConversationTurn, error)

	// SaveWindow overwrites the window and refreshes its expiry.
	SaveWindow(ctx context.Context, chatID string, turns []ConversationTurn) error

	DeleteWindow(ctx context.Context, chatID string) error
	DeleteAll(ctx context.Context) error
}
