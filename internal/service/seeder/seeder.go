// Package seeder plants the initial knowledge base so a fresh install
// can answer something before it has learned anything from chats.
package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/analyzer"
	"github.com/sandevgo/gaulbot/pkg/log"
)

type seedEntry struct {
	content  string
	category string
}

var seedEntries = []seedEntry{
	{"Indonesia punya lebih dari 17 ribu pulau, makanya disebut negara kepulauan terbesar di dunia.", "general"},
	{"Rendang pernah dinobatkan jadi makanan terenak di dunia versi CNN.", "kuliner"},
	{"Nasi goreng itu comfort food sejuta umat, tengah malam pun jadi.", "kuliner"},
	{"Kopi luwak termasuk kopi termahal di dunia dan asalnya dari Indonesia.", "kuliner"},
	{"Bahasa Indonesia itu salah satu bahasa paling gampang dipelajari karena gak ada tenses.", "bahasa"},
	{"Candi Borobudur itu candi Buddha terbesar di dunia, dibangun abad ke-9.", "sejarah"},
	{"Proklamasi kemerdekaan Indonesia dibacakan tanggal 17 Agustus 1945.", "sejarah"},
	{"Bulutangkis itu cabang olahraga yang paling sering nyumbang medali emas buat Indonesia.", "olahraga"},
	{"Timnas sepak bola Indonesia punya suporter paling militan se-Asia Tenggara.", "olahraga"},
	{"Mobile Legends sama PUBG itu game paling rame dimainin di Indonesia.", "games"},
	{"Main game bareng temen lebih seru daripada solo rank, lebih sedikit emosi juga.", "games"},
	{"Drama Korea populer banget di Indonesia, apalagi genre romance comedy.", "film"},
	{"Film horor Indonesia lagi naik daun, banyak yang tembus jutaan penonton.", "film"},
	{"Dangdut itu musik asli Indonesia yang campuran dari musik Melayu, India, sama Arab.", "musik"},
	{"Bali itu destinasi wisata paling terkenal dari Indonesia di mata dunia.", "travel"},
	{"Gunung Bromo jadi spot sunrise favorit para pendaki pemula.", "travel"},
	{"Startup teknologi Indonesia berkembang pesat, beberapa udah jadi unicorn.", "teknologi"},
	{"Internet di Indonesia makin kenceng tapi harga kuota masih suka bikin nangis.", "teknologi"},
	{"Minum air putih yang cukup itu cara paling murah buat jaga kesehatan.", "kesehatan"},
	{"Skincare paling penting itu sunscreen, sisanya nyusul.", "beauty"},
}

// Seed inserts the built-in knowledge set. Without force it refuses to
// run when system items already exist, so restarts do not duplicate the
// seed.
func Seed(ctx context.Context, repo core.KnowledgeRepository, force bool) (int, error) {
	counts, err := repo.CountBySource(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing seed: %w", err)
	}
	if counts[core.SourceSystem] > 0 && !force {
		log.FromCtx(ctx).Info().Int("existing", counts[core.SourceSystem]).
			Msg("seed knowledge already present, skipping")
		return 0, nil
	}

	now := time.Now().UTC()
	var inserted int
	for _, entry := range seedEntries {
		features := analyzer.Analyze(entry.content)
		item := core.KnowledgeItem{
			Content:    entry.content,
			Keywords:   features.Keywords,
			Category:   entry.category,
			Sentiment:  features.Sentiment,
			IsQuestion: features.IsQuestion,
			IsJoke:     features.IsJoke,
			Style:      features.Style,
			HasEmoji:   features.HasEmoji,
			Confidence: 0.9,
			Source:     core.SeedSource,
			SourceType: core.SourceSystem,
			Learned:    now,
		}
		if err := repo.Insert(ctx, item); err != nil {
			return inserted, fmt.Errorf("insert seed item: %w", err)
		}
		inserted++
	}

	log.FromCtx(ctx).Info().Int("inserted", inserted).Msg("knowledge base seeded")
	return inserted, nil
}
