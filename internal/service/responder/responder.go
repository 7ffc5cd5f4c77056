// Package responder orchestrates one reply: analyze the incoming text,
// classify intent, fetch and rank candidate knowledge, then hand the
// winner to the synthesizer. It always produces a usable reply string.
package responder

import (
	"context"
	"errors"
	"regexp"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/analyzer"
	"github.com/sandevgo/gaulbot/internal/engine/scorer"
	"github.com/sandevgo/gaulbot/internal/engine/synthesizer"
	"github.com/sandevgo/gaulbot/internal/service/contextstore"
	"github.com/sandevgo/gaulbot/pkg/log"
)

// DefaultCandidateLimit caps how many stored items get scored per query.
const DefaultCandidateLimit = 15

var identityPattern = regexp.MustCompile(`(?i)\b(siapa (kamu|lu|lo|elu|sih lu)|kamu (siapa|itu apa)|lu siapa|bot apa|kenalan dong|perkenalkan dirimu)\b`)

// Incoming is one message the bot decided to answer.
type Incoming struct {
	ChatID   string
	UserID   string
	Username string
	Text     string
	IsGroup  bool
}

type Responder struct {
	repo  core.KnowledgeRepository
	store *contextstore.Store
	synth *synthesizer.Synthesizer
	limit int
}

func New(repo core.KnowledgeRepository, store *contextstore.Store, synth *synthesizer.Synthesizer, limit int) *Responder {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}
	return &Responder{repo: repo, store: store, synth: synth, limit: limit}
}

// Respond builds the reply for one message. A repository outage is logged
// and degrades to the fallback pools; the caller always gets something to
// send.
func (r *Responder) Respond(ctx context.Context, in Incoming) string {
	if identityPattern.MatchString(in.Text) {
		return r.synth.Identity()
	}

	features := analyzer.Analyze(in.Text)
	rt := scorer.Classify(in.Text, features, in.IsGroup)
	recent := r.store.Recent(ctx, in.ChatID, 3)

	candidates, err := r.repo.FindCandidates(ctx, features, in.Text, r.limit)
	if err != nil {
		if errors.Is(err, core.ErrUnavailable) {
			log.FromCtx(ctx).Warn().Err(err).Str("chat_id", in.ChatID).
				Msg("knowledge store unavailable, falling back")
		} else {
			log.FromCtx(ctx).Error().Err(err).Str("chat_id", in.ChatID).
				Msg("candidate query failed")
		}
		candidates = nil
	}

	selected := scorer.Select(candidates, in.Text, features, recent, rt)

	reply := r.synth.Synthesize(selected, recent, rt, features.Style, features.IsQuestion)

	logEvent := log.FromCtx(ctx).Debug().
		Str("chat_id", in.ChatID).
		Str("response_type", string(rt)).
		Int("candidates", len(candidates))
	if selected != nil {
		logEvent = logEvent.Int64("selected_id", selected.ID).Float64("confidence", selected.Confidence)
	}
	logEvent.Msg("reply composed")

	return reply
}
