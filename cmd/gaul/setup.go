package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sandevgo/gaulbot/internal/config"
	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/assets"
	"github.com/sandevgo/gaulbot/internal/engine/synthesizer"
	"github.com/sandevgo/gaulbot/internal/service/contextstore"
	"github.com/sandevgo/gaulbot/internal/service/learner"
	"github.com/sandevgo/gaulbot/internal/service/responder"
	"github.com/sandevgo/gaulbot/internal/storage/redisctx"
	"github.com/sandevgo/gaulbot/internal/storage/sqlite"
	"github.com/sandevgo/gaulbot/internal/transport/telegram"
	"github.com/sandevgo/gaulbot/pkg/log"
	"github.com/sandevgo/gaulbot/pkg/srv"
)

// initEnv loads <runtime>/.env if present. Variables already set in the
// environment win.
func initEnv(ctx context.Context) error {
	runtimePath, err := config.EnsureRuntimePath()
	if err != nil {
		return fmt.Errorf("prepare runtime dir: %w", err)
	}

	envFile := filepath.Join(runtimePath, ".env")
	if err := godotenv.Load(envFile); err != nil {
		log.FromCtx(ctx).Debug().Str("path", envFile).Msg("no .env file loaded")
	}
	return nil
}

// newRepository opens the knowledge database.
func newRepository(ctx context.Context, appCfg *config.AppConfig) (*sqlite.KnowledgeRepo, *sqlite.DB, error) {
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return sqlite.NewKnowledgeRepo(db), db, nil
}

// newContextStore builds the two-tier context store. Without redis the
// durable tier is skipped and windows live in memory only.
func newContextStore(ctx context.Context, appCfg *config.AppConfig) (*contextstore.Store, []srv.Service, error) {
	var archive core.ContextArchive = noopArchive{}
	var services []srv.Service

	if appCfg.EnableRedis {
		redisCfg, err := config.NewRedisConfig()
		if err != nil {
			return nil, nil, err
		}

		client := redis.NewClient(redisCfg.Options())
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		archive = redisctx.New(client, appCfg.ContextWindowTTL)
		services = append(services, srv.NewCleanup(client.Close))
		log.FromCtx(ctx).Info().Str("addr", redisCfg.Addr).Msg("context archive on redis")
	} else {
		log.FromCtx(ctx).Warn().Msg("redis disabled, context windows are memory only")
	}

	store := contextstore.New(archive, appCfg.ContextWindowSize, appCfg.ContextIdleTTL)
	services = append(services, store)
	return store, services, nil
}

// NewServices wires the whole bot and returns everything that needs a
// lifecycle, in start order.
func NewServices(ctx context.Context) ([]srv.Service, error) {
	if err := initEnv(ctx); err != nil {
		return nil, err
	}

	appCfg, err := config.NewAppConfig()
	if err != nil {
		return nil, err
	}

	repo, db, err := newRepository(ctx, appCfg)
	if err != nil {
		return nil, err
	}
	services := []srv.Service{srv.NewCleanup(db.Close)}

	store, storeServices, err := newContextStore(ctx, appCfg)
	if err != nil {
		return nil, err
	}
	services = append(services, storeServices...)

	rnd := core.NewRand()
	synth := synthesizer.New(assets.Default(), rnd)
	learn := learner.New(repo, store)
	resp := responder.New(repo, store, synth, appCfg.CandidateLimit)

	if appCfg.EnableTelegram {
		tgCfg, err := config.NewTelegramConfig()
		if err != nil {
			return nil, err
		}
		bot, err := telegram.NewBot(tgCfg, learn, resp, synth, store, repo, rnd)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	} else {
		log.FromCtx(ctx).Warn().Msg("telegram transport disabled")
	}

	return services, nil
}

// noopArchive stands in when no durable tier is configured.
type noopArchive struct{}

func (noopArchive) LoadWindow(context.Context, string) ([]core.ConversationTurn, error) {
	return nil, nil
}
func (noopArchive) SaveWindow(context.Context, string, []core.ConversationTurn) error { return nil }
func (noopArchive) DeleteWindow(context.Context, string) error                        { return nil }
func (noopArchive) DeleteAll(context.Context) error                                   { return nil }
