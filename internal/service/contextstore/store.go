// Package contextstore keeps the rolling conversation window per chat:
// a hot in-memory tier backed by a durable archive. Memory is
// authoritative for reads; the archive survives restarts and owns expiry.
package contextstore

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/pkg/log"
)

const (
	DefaultCapacity = 20
	DefaultIdleTTL  = 6 * time.Hour
	DefaultSweep    = time.Hour
)

type window struct {
	turns    []core.ConversationTurn
	lastSeen time.Time
}

type Store struct {
	mu      sync.Mutex
	windows map[string]*window

	archive  core.ContextArchive
	capacity int
	idleTTL  time.Duration
	sweep    time.Duration

	done chan struct{}
}

func New(archive core.ContextArchive, capacity int, idleTTL time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Store{
		windows:  make(map[string]*window),
		archive:  archive,
		capacity: capacity,
		idleTTL:  idleTTL,
		sweep:    DefaultSweep,
		done:     make(chan struct{}),
	}
}

// Append records a turn and trims the window to capacity. The archive
// write happens in line but its failure only degrades durability: the
// memory tier is already updated and the error is logged, not returned.
func (s *Store) Append(ctx context.Context, chatID string, turn core.ConversationTurn) {
	s.mu.Lock()
	w := s.windows[chatID]
	if w == nil {
		w = &window{}
		s.windows[chatID] = w
	}
	w.turns = append(w.turns, turn)
	if len(w.turns) > s.capacity {
		w.turns = w.turns[len(w.turns)-s.capacity:]
	}
	w.lastSeen = time.Now()
	snapshot := make([]core.ConversationTurn, len(w.turns))
	copy(snapshot, w.turns)
	s.mu.Unlock()

	if err := s.archive.SaveWindow(ctx, chatID, snapshot); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("chat_id", chatID).
			Msg("context archive write failed, window kept in memory only")
	}
}

// Recent returns up to n of the latest turns, oldest first. A cold memory
// tier is refilled from the archive before answering; an archive failure
// degrades to an empty window.
func (s *Store) Recent(ctx context.Context, chatID string, n int) []core.ConversationTurn {
	s.mu.Lock()
	if w := s.windows[chatID]; w != nil {
		turns := tail(w.turns, n)
		s.mu.Unlock()
		return turns
	}
	s.mu.Unlock()

	turns, err := s.archive.LoadWindow(ctx, chatID)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("chat_id", chatID).
			Msg("context archive read failed, treating window as empty")
		return nil
	}
	if len(turns) == 0 {
		return nil
	}

	s.mu.Lock()
	if s.windows[chatID] == nil {
		s.windows[chatID] = &window{turns: turns, lastSeen: time.Now()}
	}
	s.mu.Unlock()
	return tail(turns, n)
}

// Window returns the whole stored window for a chat.
func (s *Store) Window(ctx context.Context, chatID string) []core.ConversationTurn {
	return s.Recent(ctx, chatID, s.capacity)
}

// Reset drops one chat's window from both tiers.
func (s *Store) Reset(ctx context.Context, chatID string) error {
	s.mu.Lock()
	delete(s.windows, chatID)
	s.mu.Unlock()
	return s.archive.DeleteWindow(ctx, chatID)
}

// ResetAll drops every window from both tiers.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	s.windows = make(map[string]*window)
	s.mu.Unlock()
	return s.archive.DeleteAll(ctx)
}

// SweepIdle evicts memory windows untouched for longer than the idle TTL
// and returns how many were dropped. The archive copy stays until its own
// TTL runs out, so an evicted chat can still warm back up.
func (s *Store) SweepIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted int
	for chatID, w := range s.windows {
		if now.Sub(w.lastSeen) > s.idleTTL {
			delete(s.windows, chatID)
			evicted++
		}
	}
	return evicted
}

// Start runs the periodic idle sweep until the context is canceled.
// Implements srv.Service.
func (s *Store) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()

	logger := log.FromCtx(ctx)
	logger.Info().Dur("interval", s.sweep).Msg("context sweep started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case now := <-ticker.C:
			if n := s.SweepIdle(now); n > 0 {
				logger.Debug().Int("evicted", n).Msg("idle context windows evicted")
			}
		}
	}
}

func (s *Store) Shutdown(ctx context.Context) error {
	close(s.done)
	return nil
}

func tail(turns []core.ConversationTurn, n int) []core.ConversationTurn {
	if n > 0 && len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	out := make([]core.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}
