package core

import (
	"strings"
	"time"
)

const (
	BotName       = "GaulBot"
	BotRepository = "https://github.com/sandevgo/gaulbot"
	BotVersion    = "0.1.0"
)

// DefaultCategory keeps grouping queries total when no topic was detected.
const DefaultCategory = "general"

// SeedSource marks knowledge planted by the seeder rather than learned
// from a chat participant.
const SeedSource = "system"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type Style string

const (
	StyleFormal Style = "formal"
	StyleNormal Style = "normal"
	StyleGaul   Style = "gaul"
)

type QuestionType string

const (
	QuestionNone    QuestionType = ""
	QuestionFactual QuestionType = "factual"
	QuestionHow     QuestionType = "how"
	QuestionWhy     QuestionType = "why"
	QuestionYesNo   QuestionType = "yesno"
	QuestionGeneral QuestionType = "general"
)

type SourceType string

const (
	SourceSystem      SourceType = "system"
	SourcePrivateChat SourceType = "private_chat"
	SourceGroupChat   SourceType = "group_chat"
)

// ContextLine is one prior turn captured when a knowledge item was learned.
// At most three lines are snapshot per item.
type ContextLine struct {
	Text     string `json:"text"`
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

// KnowledgeItem is a stored utterance plus derived metadata. Items are
// append-only: created once at ingestion time and never mutated.
type KnowledgeItem struct {
	ID             int64
	Content        string
	Keywords       []string
	Category       string
	Sentiment      Sentiment
	IsQuestion     bool
	IsJoke         bool
	Style          Style
	HasEmoji       bool
	Confidence     float64
	Source         string
	SourceType     SourceType
	ChatID         string
	SourceUsername string
	Learned        time.Time
	Context        []ContextLine
}

// Seeded reports whether the item comes from the initial knowledge seed.
// Seeded content is already well formed and skips paraphrase mutation.
func (k *KnowledgeItem) Seeded() bool {
	return k.Source == SeedSource
}

// ConversationTurn is one observed message inside a chat window.
type ConversationTurn struct {
	ChatID    string    `json:"chat_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	MessageID int       `json:"message_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Features is the ephemeral output of the text analyzer. It is never
// persisted as-is; the learner copies what it needs onto KnowledgeItem.
type Features struct {
	Keywords     []string
	Topics       []string
	Sentiment    Sentiment
	IsQuestion   bool
	QuestionType QuestionType
	Style        Style
	IsJoke       bool
	HasEmoji     bool
}

// ResponseType is a coarse intent tag: a base kind plus a locus suffix
// ("_private" or "_group") used only for the source-type scoring bonus.
type ResponseType string

const (
	RespJoke            = "joke"
	RespFactualQuestion = "factual_question"
	RespHowQuestion     = "how_question"
	RespWhyQuestion     = "why_question"
	RespYesNoQuestion   = "yesno_question"
	RespGeneralQuestion = "general_question"
	RespStorytelling    = "storytelling"
	RespOpinion         = "opinion"
	RespLaughing        = "laughing"
	RespGratitude       = "gratitude"
	RespApology         = "apology"
	RespGreeting        = "greeting"
	RespConversation    = "conversation"
)

// Base strips the locus suffix.
func (rt ResponseType) Base() string {
	s := string(rt)
	s = strings.TrimSuffix(s, "_private")
	s = strings.TrimSuffix(s, "_group")
	return s
}

// ExpectsAnswer reports whether the type calls for a non-question reply.
func (rt ResponseType) ExpectsAnswer() bool {
	return strings.Contains(string(rt), "question")
}

func (rt ResponseType) Private() bool {
	return strings.HasSuffix(string(rt), "_private")
}

func (rt ResponseType) Group() bool {
	return strings.HasSuffix(string(rt), "_group")
}
