// Package scorer classifies message intent and ranks stored knowledge
// against a query. Scoring is additive and fully deterministic; ties keep
// the incoming (confidence-first) candidate order.
package scorer

import (
	"regexp"
	"strings"
	"time"

	"github.com/sandevgo/gaulbot/internal/core"
)

const (
	contentWordBonus   = 0.05
	keywordWordBonus   = 0.10
	continuityBonus    = 0.15
	answerShapeBonus   = 0.10
	jokeBonus          = 0.20
	recencyMaxBonus    = 0.20
	recencyWindowDays  = 30.0
	questionPenalty    = 0.10
	locusBonus         = 0.05
	continuityLookback = 3
)

var (
	storytellingPattern = regexp.MustCompile(`(?i)\b(ceritakan|cerita|jelaskan|jelasin)\b`)
	opinionPattern      = regexp.MustCompile(`(?i)\b(pendapat|menurutmu|menurut kamu|menurut lo|menurut lu)\b`)
	laughingPattern     = regexp.MustCompile(`(?i)\b(ha(ha)+|wk(wk)+|xi(xi)+)\b`)
	gratitudePattern    = regexp.MustCompile(`(?i)\b(makasih|thanks|thx|tq|terima kasih)\b`)
	apologyPattern      = regexp.MustCompile(`(?i)\b(maaf|sorry|sori)\b`)
	greetingPattern     = regexp.MustCompile(`(?i)\b(halo|hai|hello|hi|hey|hola|assalamualaikum|selamat|pagi|siang|sore|malam)\b`)
)

// Classify maps a message to a response type. Priority runs joke first,
// then question families, then conversational intents, falling through to
// plain conversation. The locus suffix records where the message came from.
func Classify(text string, f core.Features, isGroup bool) core.ResponseType {
	base := core.RespConversation

	switch {
	case f.IsJoke:
		base = core.RespJoke
	case f.IsQuestion:
		switch f.QuestionType {
		case core.QuestionFactual:
			base = core.RespFactualQuestion
		case core.QuestionHow:
			base = core.RespHowQuestion
		case core.QuestionWhy:
			base = core.RespWhyQuestion
		case core.QuestionYesNo:
			base = core.RespYesNoQuestion
		default:
			base = core.RespGeneralQuestion
		}
	case storytellingPattern.MatchString(text):
		base = core.RespStorytelling
	case opinionPattern.MatchString(text):
		base = core.RespOpinion
	case laughingPattern.MatchString(text):
		base = core.RespLaughing
	case gratitudePattern.MatchString(text):
		base = core.RespGratitude
	case apologyPattern.MatchString(text):
		base = core.RespApology
	case greetingPattern.MatchString(text):
		base = core.RespGreeting
	}

	if isGroup {
		return core.ResponseType(base + "_group")
	}
	return core.ResponseType(base + "_private")
}

// Select scores every candidate and returns the best one, or nil when the
// list is empty. The first maximum wins so equal-scoring candidates keep
// repository order.
func Select(candidates []core.KnowledgeItem, query string, f core.Features, recent []core.ConversationTurn, rt core.ResponseType) *core.KnowledgeItem {
	return selectAt(time.Now(), candidates, query, f, recent, rt)
}

func selectAt(now time.Time, candidates []core.KnowledgeItem, query string, f core.Features, recent []core.ConversationTurn, rt core.ResponseType) *core.KnowledgeItem {
	if len(candidates) == 0 {
		return nil
	}

	best := 0
	bestScore := score(now, &candidates[0], query, f, recent, rt)
	for i := 1; i < len(candidates); i++ {
		if s := score(now, &candidates[i], query, f, recent, rt); s > bestScore {
			best, bestScore = i, s
		}
	}
	return &candidates[best]
}

// score starts from the item's stored confidence and layers lexical
// overlap, conversational continuity, answer-shape fit, recency, and
// source-locus bonuses on top.
func score(now time.Time, k *core.KnowledgeItem, query string, f core.Features, recent []core.ConversationTurn, rt core.ResponseType) float64 {
	s := k.Confidence
	if s == 0 {
		s = 0.5
	}

	content := strings.ToLower(k.Content)
	for _, w := range queryWords(query) {
		if strings.Contains(content, w) {
			s += contentWordBonus
		}
		for _, kw := range k.Keywords {
			if kw == w {
				s += keywordWordBonus
				break
			}
		}
	}

	// A candidate learned in a similar conversational context is likelier
	// to land well now.
	turns := recent
	if len(turns) > continuityLookback {
		turns = turns[len(turns)-continuityLookback:]
	}
	for _, turn := range turns {
		for _, line := range k.Context {
			if turn.Text != "" && strings.Contains(line.Text, turn.Text) {
				s += continuityBonus
				break
			}
		}
	}

	if rt.Base() == core.RespFactualQuestion && !k.IsQuestion {
		s += answerShapeBonus
	}
	if rt.ExpectsAnswer() && k.IsQuestion {
		s -= questionPenalty
	}
	if rt.Base() == core.RespJoke && k.IsJoke {
		s += jokeBonus
	}

	ageDays := now.Sub(k.Learned).Hours() / 24
	if bonus := recencyMaxBonus - (ageDays/recencyWindowDays)*recencyMaxBonus; bonus > 0 {
		s += bonus
	}

	if (k.SourceType == core.SourcePrivateChat && rt.Private()) ||
		(k.SourceType == core.SourceGroupChat && rt.Group()) {
		s += locusBonus
	}

	return s
}

// queryWords is a plain lowercased whitespace split. Punctuation stays
// attached and short words count: "hp" or "ml" must earn overlap bonuses.
func queryWords(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
