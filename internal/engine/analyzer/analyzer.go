// Package analyzer derives lightweight lexical features from Indonesian
// chat messages: keywords, topics, sentiment, question shape, and register.
// It is pure string processing with no storage or network access.
package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sandevgo/gaulbot/internal/core"
)

// DefaultMaxKeywords caps ranked keyword output.
const DefaultMaxKeywords = 8

// minAnalyzableRunes is the shortest input worth analyzing. Anything
// shorter gets an all-default feature set.
const minAnalyzableRunes = 3

// Analyze extracts the full feature set for one message.
func Analyze(text string) core.Features {
	f := core.Features{
		Sentiment:    core.SentimentNeutral,
		Style:        core.StyleNormal,
		QuestionType: core.QuestionNone,
	}

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minAnalyzableRunes {
		return f
	}

	f.Keywords = ExtractKeywords(trimmed, DefaultMaxKeywords)
	f.Topics = DetectTopics(trimmed)
	f.Sentiment = DetectSentiment(trimmed)
	f.IsQuestion, f.QuestionType = DetectQuestion(trimmed)
	f.Style = DetectStyle(trimmed)
	f.IsJoke = jokePattern.MatchString(trimmed)
	f.HasEmoji = HasEmoji(trimmed)
	return f
}

// ExtractKeywords tokenizes, drops stopwords and short tokens, then ranks
// by term frequency. Ties keep first-occurrence order. When filtering
// removes everything (an all-stopword message), the stopword filter is
// relaxed so short but meaningful inputs still produce keywords.
func ExtractKeywords(text string, max int) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) <= 2 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		for _, t := range tokens {
			if utf8.RuneCountInString(t) > 2 {
				filtered = append(filtered, t)
			}
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	counts := make(map[string]int, len(filtered))
	first := make(map[string]int, len(filtered))
	order := make([]string, 0, len(filtered))
	for i, t := range filtered {
		if counts[t] == 0 {
			first[t] = i
			order = append(order, t)
		}
		counts[t]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return first[order[i]] < first[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}

// DetectTopics returns every matching topic label in rule order.
func DetectTopics(text string) []string {
	var topics []string
	for _, rule := range topicRules {
		if rule.re.MatchString(text) {
			topics = append(topics, rule.name)
		}
	}
	return topics
}

// DetectSentiment counts positive and negative cue words and returns the
// majority polarity, neutral on a tie or no hits.
func DetectSentiment(text string) core.Sentiment {
	var pos, neg int
	for _, t := range tokenize(text) {
		for _, w := range positiveWords {
			if strings.Contains(t, w) {
				pos++
				break
			}
		}
		for _, w := range negativeWords {
			if strings.Contains(t, w) {
				neg++
				break
			}
		}
	}
	switch {
	case pos > neg:
		return core.SentimentPositive
	case neg > pos:
		return core.SentimentNegative
	default:
		return core.SentimentNeutral
	}
}

// DetectQuestion reports whether the text is a question and which family
// it belongs to. A bare "?" with no interrogative word is "general".
func DetectQuestion(text string) (bool, core.QuestionType) {
	hasMark := strings.Contains(text, "?")

	switch {
	case factualQuestionPattern.MatchString(text):
		return true, core.QuestionFactual
	case howQuestionPattern.MatchString(text):
		return true, core.QuestionHow
	case whyQuestionPattern.MatchString(text):
		return true, core.QuestionWhy
	case yesNoQuestionPattern.MatchString(text):
		return true, core.QuestionYesNo
	case hasMark:
		return true, core.QuestionGeneral
	default:
		return false, core.QuestionNone
	}
}

// DetectStyle classifies register. Slang markers beat formal markers when
// both appear, since slang is the stronger signal in mixed messages.
func DetectStyle(text string) core.Style {
	if gaulStylePattern.MatchString(text) {
		return core.StyleGaul
	}
	if formalStylePattern.MatchString(text) {
		return core.StyleFormal
	}
	return core.StyleNormal
}

// HasEmoji reports whether the text contains a rune in the common emoji
// blocks (symbols, pictographs, transport, dingbats).
func HasEmoji(text string) bool {
	for _, r := range text {
		if (r >= 0x1F300 && r <= 0x1F6FF) ||
			(r >= 0x1F900 && r <= 0x1F9FF) ||
			(r >= 0x2600 && r <= 0x26FF) ||
			(r >= 0x2700 && r <= 0x27BF) {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
