package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/gaulbot/internal/core"
)

// KnowledgeRepo implements core.KnowledgeRepository on sqlite. Keywords
// and context snapshots are stored as JSON arrays in text columns; the
// keyword match relies on the `"word"` quoting inside the serialized
// array.
type KnowledgeRepo struct {
	db *DB
}

func NewKnowledgeRepo(db *DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

func (r *KnowledgeRepo) Insert(ctx context.Context, item core.KnowledgeItem) error {
	keywords, err := json.Marshal(emptyAsList(item.Keywords))
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	snapshot, err := json.Marshal(item.Context)
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}
	if item.Context == nil {
		snapshot = []byte("[]")
	}

	learned := item.Learned
	if learned.IsZero() {
		learned = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO knowledge (
			content, keywords, category, sentiment, is_question, is_joke,
			style, has_emoji, confidence, source, source_type, chat_id,
			source_username, learned, context
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Content, string(keywords), item.Category, string(item.Sentiment),
		item.IsQuestion, item.IsJoke, string(item.Style), item.HasEmoji,
		item.Confidence, item.Source, string(item.SourceType), item.ChatID,
		item.SourceUsername, learned, string(snapshot),
	)
	if err != nil {
		return fmt.Errorf("%w: insert knowledge: %v", core.ErrUnavailable, err)
	}
	return nil
}

// FindCandidates matches on keyword intersection, content substring, or
// category-in-topics, ranked by confidence then recency. An empty feature
// set short-circuits to no candidates rather than matching everything.
func (r *KnowledgeRepo) FindCandidates(ctx context.Context, features core.Features, text string, limit int) ([]core.KnowledgeItem, error) {
	var conds []string
	var args []any

	for _, kw := range features.Keywords {
		conds = append(conds, "instr(keywords, ?) > 0")
		args = append(args, `"`+strings.ToLower(kw)+`"`)
		conds = append(conds, "instr(lower(content), ?) > 0")
		args = append(args, strings.ToLower(kw))
	}
	if len(features.Topics) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(features.Topics)), ",")
		conds = append(conds, "category IN ("+placeholders+")")
		for _, topic := range features.Topics {
			args = append(args, topic)
		}
	}
	if len(conds) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, content, keywords, category, sentiment, is_question,
		       is_joke, style, has_emoji, confidence, source, source_type,
		       chat_id, source_username, learned, context
		FROM knowledge
		WHERE %s
		ORDER BY confidence DESC, learned DESC
		LIMIT ?`, strings.Join(conds, " OR "))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query candidates: %v", core.ErrUnavailable, err)
	}
	defer rows.Close()

	var items []core.KnowledgeItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate candidates: %v", core.ErrUnavailable, err)
	}
	return items, nil
}

func (r *KnowledgeRepo) CountBySource(ctx context.Context) (map[core.SourceType]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT source_type, COUNT(*) FROM knowledge GROUP BY source_type")
	if err != nil {
		return nil, fmt.Errorf("%w: count knowledge: %v", core.ErrUnavailable, err)
	}
	defer rows.Close()

	counts := make(map[core.SourceType]int)
	for rows.Next() {
		var st string
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[core.SourceType(st)] = n
	}
	return counts, rows.Err()
}

func scanItem(rows *sql.Rows) (core.KnowledgeItem, error) {
	var item core.KnowledgeItem
	var keywords, snapshot, sentiment, style, sourceType string

	err := rows.Scan(
		&item.ID, &item.Content, &keywords, &item.Category, &sentiment,
		&item.IsQuestion, &item.IsJoke, &style, &item.HasEmoji,
		&item.Confidence, &item.Source, &sourceType, &item.ChatID,
		&item.SourceUsername, &item.Learned, &snapshot,
	)
	if err != nil {
		return item, err
	}

	item.Sentiment = core.Sentiment(sentiment)
	item.Style = core.Style(style)
	item.SourceType = core.SourceType(sourceType)
	if err := json.Unmarshal([]byte(keywords), &item.Keywords); err != nil {
		return item, fmt.Errorf("decode keywords: %w", err)
	}
	if err := json.Unmarshal([]byte(snapshot), &item.Context); err != nil {
		return item, fmt.Errorf("decode context: %w", err)
	}
	return item, nil
}

func emptyAsList(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
