package responder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/assets"
	"github.com/sandevgo/gaulbot/internal/engine/synthesizer"
	"github.com/sandevgo/gaulbot/internal/service/contextstore"
)

type stubRepo struct {
	candidates []core.KnowledgeItem
	err        error
	lastLimit  int
}

func (r *stubRepo) Insert(context.Context, core.KnowledgeItem) error { return nil }

func (r *stubRepo) FindCandidates(_ context.Context, _ core.Features, _ string, limit int) ([]core.KnowledgeItem, error) {
	r.lastLimit = limit
	return r.candidates, r.err
}

func (r *stubRepo) CountBySource(context.Context) (map[core.SourceType]int, error) {
	return nil, nil
}

type nopArchive struct{}

func (nopArchive) LoadWindow(context.Context, string) ([]core.ConversationTurn, error) {
	return nil, nil
}
func (nopArchive) SaveWindow(context.Context, string, []core.ConversationTurn) error { return nil }
func (nopArchive) DeleteWindow(context.Context, string) error                        { return nil }
func (nopArchive) DeleteAll(context.Context) error                                   { return nil }

// quietRand disables every decoration roll so replies stay predictable.
type quietRand struct{}

func (quietRand) Next() float64 { return 0.99 }

func newResponder(repo *stubRepo) *Responder {
	store := contextstore.New(nopArchive{}, 20, contextstore.DefaultIdleTTL)
	synth := synthesizer.New(assets.Default(), quietRand{})
	return New(repo, store, synth, DefaultCandidateLimit)
}

func TestRespondUsesStoredKnowledge(t *testing.T) {
	repo := &stubRepo{candidates: []core.KnowledgeItem{{
		Content:    "langit biru karena hamburan cahaya",
		Keywords:   []string{"langit", "biru", "cahaya"},
		Confidence: 0.9,
		Learned:    time.Now(),
	}}}
	r := newResponder(repo)

	got := r.Respond(context.Background(), Incoming{ChatID: "c", Text: "kenapa langit biru?"})
	if !strings.Contains(got, "hamburan cahaya") {
		t.Errorf("expected stored knowledge in reply, got %q", got)
	}
	if repo.lastLimit != DefaultCandidateLimit {
		t.Errorf("candidate limit = %d, want %d", repo.lastLimit, DefaultCandidateLimit)
	}
}

func TestRespondFallsBackWhenStoreDown(t *testing.T) {
	repo := &stubRepo{err: core.ErrUnavailable}
	r := newResponder(repo)

	got := r.Respond(context.Background(), Incoming{ChatID: "c", Text: "kenapa langit biru?"})
	if got == "" {
		t.Fatal("reply must not be empty when the store is down")
	}
	if !contains(assets.Default().Fallbacks.Question, got) {
		t.Errorf("expected a question fallback, got %q", got)
	}
}

func TestRespondFallsBackWithoutCandidates(t *testing.T) {
	repo := &stubRepo{}
	r := newResponder(repo)

	got := r.Respond(context.Background(), Incoming{ChatID: "c", Text: "cuaca lagi aneh nih"})
	if got == "" {
		t.Fatal("reply must not be empty without candidates")
	}
	if !contains(assets.Default().Fallbacks.Learning, got) {
		t.Errorf("expected a learning fallback, got %q", got)
	}
}

func TestRespondIdentityShortCircuit(t *testing.T) {
	repo := &stubRepo{candidates: []core.KnowledgeItem{{
		Content:    "tidak relevan",
		Confidence: 0.9,
		Learned:    time.Now(),
	}}}
	r := newResponder(repo)

	got := r.Respond(context.Background(), Incoming{ChatID: "c", Text: "lu siapa sih?"})
	if !contains(assets.Default().Identity, got) {
		t.Errorf("identity question should answer from identity pool, got %q", got)
	}
	if repo.lastLimit != 0 {
		t.Error("identity replies must not hit the repository")
	}
}

func contains(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}
