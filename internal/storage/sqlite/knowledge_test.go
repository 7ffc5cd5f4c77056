package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/gaulbot/internal/core"
)

func newTestRepo(t *testing.T) *KnowledgeRepo {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewKnowledgeRepo(db)
}

func item(content string, keywords []string, category string) core.KnowledgeItem {
	return core.KnowledgeItem{
		Content:    content,
		Keywords:   keywords,
		Category:   category,
		Sentiment:  core.SentimentNeutral,
		Style:      core.StyleNormal,
		Confidence: 0.7,
		Source:     "user:1",
		SourceType: core.SourcePrivateChat,
		ChatID:     "chat1",
		Learned:    time.Now().UTC(),
	}
}

func TestInsertAndFindByKeyword(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, item("kopi tubruk itu pahit tapi enak", []string{"kopi", "tubruk", "pahit"}, "kuliner")))
	require.NoError(t, repo.Insert(ctx, item("timnas menang tadi malam", []string{"timnas", "menang"}, "olahraga")))

	got, err := repo.FindCandidates(ctx, core.Features{Keywords: []string{"kopi"}}, "kopi", 15)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "kopi tubruk itu pahit tapi enak", got[0].Content)
	require.Equal(t, []string{"kopi", "tubruk", "pahit"}, got[0].Keywords)
}

func TestFindByContentSubstring(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Keyword list misses "rendang" but the content mentions it.
	require.NoError(t, repo.Insert(ctx, item("rendang paling enak di padang", []string{"padang"}, "kuliner")))

	got, err := repo.FindCandidates(ctx, core.Features{Keywords: []string{"rendang"}}, "rendang", 15)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFindByTopicCategory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, item("mobile legends rame lagi", []string{"mobile", "legends"}, "games")))

	got, err := repo.FindCandidates(ctx,
		core.Features{Keywords: []string{"push"}, Topics: []string{"games"}},
		"push rank yuk", 15)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFindOrderAndLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	low := item("kopi sachet biasa aja", []string{"kopi"}, "kuliner")
	low.Confidence = 0.5
	high := item("kopi gayo wanginya juara", []string{"kopi"}, "kuliner")
	high.Confidence = 0.9

	require.NoError(t, repo.Insert(ctx, low))
	require.NoError(t, repo.Insert(ctx, high))

	got, err := repo.FindCandidates(ctx, core.Features{Keywords: []string{"kopi"}}, "kopi", 15)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 0.9, got[0].Confidence)

	got, err = repo.FindCandidates(ctx, core.Features{Keywords: []string{"kopi"}}, "kopi", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 0.9, got[0].Confidence)
}

func TestFindEmptyFeatures(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.FindCandidates(context.Background(), core.Features{}, "", 15)
	require.NoError(t, err)
	require.Nil(t, got, "empty features must match nothing")
}

func TestCountBySource(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := item("Indonesia punya 17 ribu pulau.", []string{"indonesia", "pulau"}, "general")
	seed.Source = core.SeedSource
	seed.SourceType = core.SourceSystem

	require.NoError(t, repo.Insert(ctx, seed))
	require.NoError(t, repo.Insert(ctx, item("halo semua di sini", []string{"halo"}, "general")))

	counts, err := repo.CountBySource(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, counts[core.SourceSystem])
	require.Equal(t, 1, counts[core.SourcePrivateChat])
}

func TestContextSnapshotRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	k := item("jawaban dengan konteks", []string{"jawaban", "konteks"}, "general")
	k.Context = []core.ContextLine{
		{Text: "pertanyaan sebelumnya", UserID: "7", Username: "budi"},
	}

	require.NoError(t, repo.Insert(ctx, k))

	got, err := repo.FindCandidates(ctx, core.Features{Keywords: []string{"konteks"}}, "konteks", 15)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Context, 1)
	require.Equal(t, "budi", got[0].Context[0].Username)
}
