// Package synthesizer turns a selected knowledge item into a casually
// styled reply. It never emits stored content verbatim for learned items:
// questions become statements, then slang substitution, closers, emoji,
// and openers are layered on probabilistically.
package synthesizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/assets"
)

// confidenceGate is the minimum selection confidence required to use
// stored knowledge instead of a fallback reply.
const confidenceGate = 0.5

const (
	openerChance     = 0.7
	continuityChance = 0.3
	closerFactor     = 0.6
	emojiFactor      = 0.8
	fallbackEmoji    = 0.7
)

var (
	interrogativePattern = regexp.MustCompile(`(?i)\b(apa|siapa|kapan|dimana|bagaimana|mengapa|kenapa|gimana)\b`)
	trailingPunct        = regexp.MustCompile(`[.!?]+$`)
	multiSpace           = regexp.MustCompile(`\s{2,}`)
)

type Synthesizer struct {
	assets *assets.StyleAssets
	rnd    core.Rand
}

func New(a *assets.StyleAssets, rnd core.Rand) *Synthesizer {
	return &Synthesizer{assets: a, rnd: rnd}
}

// Synthesize composes the reply for a selected item. A nil selection or
// one below the confidence gate falls back to a canned pool. The caller's
// detected style drives how aggressive the casual decoration gets.
func (s *Synthesizer) Synthesize(selected *core.KnowledgeItem, recent []core.ConversationTurn, rt core.ResponseType, callerStyle core.Style, queryIsQuestion bool) string {
	if selected == nil || selected.Confidence < confidenceGate {
		return s.Fallback(callerStyle, queryIsQuestion, len(recent) > 0)
	}

	text := selected.Content

	// Seeded knowledge is already phrased as an answer; learned content
	// needs reshaping so the bot does not parrot a stored question back.
	if !selected.Seeded() {
		if selected.IsQuestion {
			text = questionToStatement(text)
		}
		// A question built entirely from interrogative words rewrites to
		// nothing; a reply is still owed.
		if text == "" {
			return s.Fallback(callerStyle, queryIsQuestion, len(recent) > 0)
		}
		if len(recent) > 0 && rt.Base() == core.RespConversation && s.roll(continuityChance) {
			text = fmt.Sprintf(s.pick(s.assets.Continuity), lowerFirst(text))
		}
	}

	return s.decorate(text, rt, gaulLevel(callerStyle))
}

// Fallback picks a canned reply: question pool for questions, the
// conversation pool mid-chat, the learning pitch otherwise. Decoration
// scales with the caller's register like the main path.
func (s *Synthesizer) Fallback(callerStyle core.Style, isQuestion, midConversation bool) string {
	var pool []string
	switch {
	case isQuestion:
		pool = s.assets.Fallbacks.Question
	case midConversation:
		pool = s.assets.Fallbacks.Conversation
	default:
		pool = s.assets.Fallbacks.Learning
	}

	text := s.pick(pool)
	if s.roll(gaulLevel(callerStyle) * fallbackEmoji) {
		emoji := s.pick(s.assets.Emojis)
		if s.rnd.Next() < 0.5 {
			return emoji + " " + text
		}
		return text + " " + emoji
	}
	return text
}

// GroupJoinGreeting returns the hello sent when the bot enters a group.
func (s *Synthesizer) GroupJoinGreeting(title string) string {
	tpl := s.pick(s.assets.GroupJoin)
	if strings.Contains(tpl, "%s") {
		return fmt.Sprintf(tpl, title)
	}
	return tpl
}

// Identity answers "who are you" style questions about the bot itself.
func (s *Synthesizer) Identity() string {
	return s.pick(s.assets.Identity)
}

// decorate layers slang, closer, emoji, and opener onto the base text.
// level controls how often each mutation fires.
func (s *Synthesizer) decorate(text string, rt core.ResponseType, level float64) string {
	for i := range s.assets.Slang {
		entry := &s.assets.Slang[i]
		if entry.Matches(text) && s.roll(level) {
			text = entry.Replace(text, s.pick(entry.Variants))
		}
	}

	if s.roll(level * closerFactor) {
		text = trailingPunct.ReplaceAllString(text, "") + " " + s.pick(s.assets.Closers) + "."
	}

	if s.roll(level * emojiFactor) {
		text = s.placeEmoji(text)
	}

	if s.roll(openerChance) {
		pool, ok := s.assets.Openers[rt.Base()]
		if !ok {
			pool = s.assets.Openers[core.RespConversation]
		}
		if opener := s.pick(pool); opener != "" {
			text = opener + " " + lowerFirst(text)
		}
	}

	return strings.TrimSpace(text)
}

func (s *Synthesizer) placeEmoji(text string) string {
	emoji := s.pick(s.assets.Emojis)
	pos := s.rnd.Next()
	switch {
	case pos < 0.3:
		return emoji + " " + text
	case pos < 0.7:
		return trailingPunct.ReplaceAllString(text, "") + " " + emoji
	default:
		words := strings.Fields(text)
		if len(words) <= 3 {
			return text + " " + emoji
		}
		mid := len(words) / 2
		return strings.Join(words[:mid], " ") + " " + emoji + " " + strings.Join(words[mid:], " ")
	}
}

// questionToStatement rewrites a learned question into something the bot
// can assert: question marks go, the leading interrogative goes, and the
// result gets a period.
func questionToStatement(text string) string {
	text = strings.ReplaceAll(text, "?", "")
	text = interrogativePattern.ReplaceAllString(text, "")
	text = multiSpace.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return text
	}
	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") {
		text += "."
	}
	return text
}

// gaulLevel maps the caller's register to decoration aggressiveness.
// Formal callers get a mostly clean reply, slangy callers get the works.
func gaulLevel(style core.Style) float64 {
	switch style {
	case core.StyleFormal:
		return 0.2
	case core.StyleGaul:
		return 0.9
	default:
		return 0.6
	}
}

func (s *Synthesizer) roll(p float64) bool {
	return s.rnd.Next() < p
}

func (s *Synthesizer) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[int(s.rnd.Next()*float64(len(pool)))]
}

func lowerFirst(text string) string {
	if text == "" {
		return text
	}
	r := []rune(text)
	r[0] = []rune(strings.ToLower(string(r[0])))[0]
	return string(r)
}
