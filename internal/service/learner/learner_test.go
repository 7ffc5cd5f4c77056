package learner

import (
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/analyzer"
	"github.com/sandevgo/gaulbot/internal/service/contextstore"
)

type memRepo struct {
	items []core.KnowledgeItem
	fail  bool
}

func (r *memRepo) Insert(_ context.Context, item core.KnowledgeItem) error {
	if r.fail {
		return core.ErrUnavailable
	}
	r.items = append(r.items, item)
	return nil
}

func (r *memRepo) FindCandidates(context.Context, core.Features, string, int) ([]core.KnowledgeItem, error) {
	return nil, nil
}

func (r *memRepo) CountBySource(context.Context) (map[core.SourceType]int, error) {
	return nil, nil
}

type nopArchive struct{}

func (nopArchive) LoadWindow(context.Context, string) ([]core.ConversationTurn, error) {
	return nil, nil
}
func (nopArchive) SaveWindow(context.Context, string, []core.ConversationTurn) error { return nil }
func (nopArchive) DeleteWindow(context.Context, string) error                        { return nil }
func (nopArchive) DeleteAll(context.Context) error                                   { return nil }

func newLearner(repo *memRepo) (*Learner, *contextstore.Store) {
	store := contextstore.New(nopArchive{}, 20, contextstore.DefaultIdleTTL)
	return New(repo, store), store
}

func TestLearnStoresItemAndTurn(t *testing.T) {
	repo := &memRepo{}
	l, store := newLearner(repo)
	ctx := context.Background()

	ok := l.Learn(ctx, Message{
		ChatID:   "chat1",
		UserID:   "42",
		Username: "budi",
		Text:     "rendang padang itu juara dunia",
		IsGroup:  true,
	})
	if !ok {
		t.Fatal("message should have been learned")
	}

	if len(repo.items) != 1 {
		t.Fatalf("items stored = %d, want 1", len(repo.items))
	}
	item := repo.items[0]
	if item.Category != "kuliner" {
		t.Errorf("category = %q, want kuliner", item.Category)
	}
	if item.Source != "user:42" || item.SourceType != core.SourceGroupChat {
		t.Errorf("source fields wrong: %q %q", item.Source, item.SourceType)
	}
	if len(item.Keywords) == 0 {
		t.Error("keywords missing")
	}

	if turns := store.Recent(ctx, "chat1", 5); len(turns) != 1 {
		t.Errorf("context window turns = %d, want 1", len(turns))
	}
}

func TestLearnSkipsShortAndCommands(t *testing.T) {
	repo := &memRepo{}
	l, _ := newLearner(repo)
	ctx := context.Background()

	for _, text := range []string{"ok", "", "/start", "/reset sekarang"} {
		if l.Learn(ctx, Message{ChatID: "c", UserID: "1", Text: text}) {
			t.Errorf("Learn(%q) should be skipped", text)
		}
	}
	if len(repo.items) != 0 {
		t.Errorf("nothing should have been stored, got %d", len(repo.items))
	}
}

func TestLearnSnapshotsLastThreeTurns(t *testing.T) {
	repo := &memRepo{}
	l, _ := newLearner(repo)
	ctx := context.Background()

	for _, text := range []string{
		"pesan pertama dari budi",
		"pesan kedua dari sari",
		"pesan ketiga dari agus",
		"pesan keempat dari rina",
	} {
		l.Learn(ctx, Message{ChatID: "chat1", UserID: "1", Text: text})
	}

	last := repo.items[len(repo.items)-1]
	if len(last.Context) != 3 {
		t.Fatalf("snapshot size = %d, want 3", len(last.Context))
	}
	if last.Context[0].Text != "pesan pertama dari budi" && last.Context[2].Text != "pesan ketiga dari agus" {
		t.Errorf("unexpected snapshot: %+v", last.Context)
	}
}

func TestLearnSurvivesRepoFailure(t *testing.T) {
	repo := &memRepo{fail: true}
	l, store := newLearner(repo)
	ctx := context.Background()

	if !l.Learn(ctx, Message{ChatID: "chat1", UserID: "1", Text: "tetap tercatat di konteks"}) {
		t.Fatal("learn should report the message as processed")
	}
	if turns := store.Recent(ctx, "chat1", 5); len(turns) != 1 {
		t.Errorf("turn should reach the context window despite repo failure, got %d", len(turns))
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"short fragment", "hmm oke", 0.55},
		{"plain statement", "cuaca cerah hari ini", 0.75},
		{"topical statement", "rendang padang paling enak", 0.85},
		{"question", "apa itu rendang padang?", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := analyzer.Analyze(tt.text)
			got := Confidence(tt.text, f)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Confidence(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestConfidenceBounds(t *testing.T) {
	short := Confidence("ya?", core.Features{IsQuestion: true})
	long := Confidence(strings.Repeat("rendang enak sekali ", 10), core.Features{Topics: []string{"kuliner"}})

	if short < 0.4 || long > 0.95 {
		t.Errorf("confidence out of bounds: short %v, long %v", short, long)
	}
	if long <= short {
		t.Errorf("substantial topical text should outscore a fragment: %v <= %v", long, short)
	}
}
