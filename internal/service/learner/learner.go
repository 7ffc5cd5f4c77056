// Package learner turns observed messages into stored knowledge. Every
// non-command message long enough to carry meaning becomes one immutable
// knowledge item plus a turn in the chat's context window.
package learner

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/analyzer"
	"github.com/sandevgo/gaulbot/internal/service/contextstore"
	"github.com/sandevgo/gaulbot/pkg/log"
)

// contextSnapshotSize is how many prior turns get frozen onto each item.
const contextSnapshotSize = 3

const minLearnableRunes = 3

// Message is one observed chat message, transport-agnostic.
type Message struct {
	ChatID    string
	UserID    string
	Username  string
	Text      string
	MessageID int
	IsGroup   bool
	Timestamp time.Time
}

type Learner struct {
	repo  core.KnowledgeRepository
	store *contextstore.Store
}

func New(repo core.KnowledgeRepository, store *contextstore.Store) *Learner {
	return &Learner{repo: repo, store: store}
}

// Learn ingests one message: analyze, snapshot context, persist, then
// append the turn to the window. Storage failures are logged and the
// turn still enters the context window, so the conversation keeps
// flowing while the knowledge base is down.
func (l *Learner) Learn(ctx context.Context, msg Message) bool {
	text := strings.TrimSpace(msg.Text)
	if utf8.RuneCountInString(text) < minLearnableRunes || strings.HasPrefix(text, "/") {
		return false
	}

	features := analyzer.Analyze(text)

	category := core.DefaultCategory
	if len(features.Topics) > 0 {
		category = features.Topics[0]
	}

	sourceType := core.SourcePrivateChat
	if msg.IsGroup {
		sourceType = core.SourceGroupChat
	}

	learned := msg.Timestamp
	if learned.IsZero() {
		learned = time.Now().UTC()
	}

	item := core.KnowledgeItem{
		Content:        text,
		Keywords:       features.Keywords,
		Category:       category,
		Sentiment:      features.Sentiment,
		IsQuestion:     features.IsQuestion,
		IsJoke:         features.IsJoke,
		Style:          features.Style,
		HasEmoji:       features.HasEmoji,
		Confidence:     Confidence(text, features),
		Source:         "user:" + msg.UserID,
		SourceType:     sourceType,
		ChatID:         msg.ChatID,
		SourceUsername: msg.Username,
		Learned:        learned,
		Context:        snapshot(l.store.Recent(ctx, msg.ChatID, contextSnapshotSize)),
	}

	if err := l.repo.Insert(ctx, item); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("chat_id", msg.ChatID).
			Msg("failed to store knowledge item")
	} else {
		log.FromCtx(ctx).Debug().
			Str("category", item.Category).
			Float64("confidence", item.Confidence).
			Int("keywords", len(item.Keywords)).
			Msg("knowledge item learned")
	}

	l.store.Append(ctx, msg.ChatID, core.ConversationTurn{
		ChatID:    msg.ChatID,
		UserID:    msg.UserID,
		Username:  msg.Username,
		Text:      text,
		MessageID: msg.MessageID,
		Timestamp: learned,
	})
	return true
}

// Confidence estimates how trustworthy a learned utterance is as future
// answer material. Short fragments score low, substantial on-topic
// statements score high, and the result stays inside [0.4, 0.95].
func Confidence(text string, features core.Features) float64 {
	c := 0.7

	length := utf8.RuneCountInString(text)
	if length < 10 {
		c -= 0.2
	}
	if len(features.Topics) > 0 {
		c += 0.1
	}
	if !features.IsQuestion {
		c += 0.05
	}
	if length > 100 {
		c += 0.05
	}

	if c < 0.4 {
		c = 0.4
	}
	if c > 0.95 {
		c = 0.95
	}
	return c
}

func snapshot(turns []core.ConversationTurn) []core.ContextLine {
	if len(turns) == 0 {
		return nil
	}
	lines := make([]core.ContextLine, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, core.ContextLine{
			Text:     t.Text,
			UserID:   t.UserID,
			Username: t.Username,
		})
	}
	return lines
}
