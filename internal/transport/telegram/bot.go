// Package telegram wires the engine to Telegram: every text message is
// learned, and the bot replies in private chats or when mentioned or
// replied to in groups. Replies are sent after a short typing pause so
// the bot does not answer faster than a human could read.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/gaulbot/internal/config"
	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/internal/engine/synthesizer"
	"github.com/sandevgo/gaulbot/internal/service/contextstore"
	"github.com/sandevgo/gaulbot/internal/service/learner"
	"github.com/sandevgo/gaulbot/internal/service/responder"
	"github.com/sandevgo/gaulbot/pkg/log"
)

const pollTimeout = 10 * time.Second

type Bot struct {
	bot   *tele.Bot
	cfg   *config.TelegramConfig
	learn *learner.Learner
	resp  *responder.Responder
	synth *synthesizer.Synthesizer
	store *contextstore.Store
	repo  core.KnowledgeRepository
	rnd   core.Rand
	send  *sender

	ctx context.Context
}

func NewBot(
	cfg *config.TelegramConfig,
	learn *learner.Learner,
	resp *responder.Responder,
	synth *synthesizer.Synthesizer,
	store *contextstore.Store,
	repo core.KnowledgeRepository,
	rnd core.Rand,
) (*Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: pollTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:   b,
		cfg:   cfg,
		learn: learn,
		resp:  resp,
		synth: synth,
		store: store,
		repo:  repo,
		rnd:   rnd,
		send:  newSender(b),
	}
	bot.register()
	return bot, nil
}

// Start begins long polling. Implements srv.Service.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx
	log.FromCtx(ctx).Info().Str("username", b.bot.Me.Username).Msg("telegram bot started")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	log.FromCtx(ctx).Info().Msg("telegram bot stopped")
	return nil
}

func (b *Bot) register() {
	b.bot.Handle(tele.OnText, b.onText)
	b.bot.Handle(tele.OnAddedToGroup, b.onAddedToGroup)
	b.bot.Handle("/start", b.onStart)
	b.bot.Handle("/help", b.onHelp)
	b.bot.Handle("/about", b.onAbout)
	b.bot.Handle("/reset", b.onReset)
}

// onText is the main loop: learn from every message, answer only when
// addressed. Group messages require a mention or a reply to the bot.
func (b *Bot) onText(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Sender == nil || msg.Sender.IsBot {
		return nil
	}

	ctx := b.ctx
	isGroup := msg.Chat.Type == tele.ChatGroup || msg.Chat.Type == tele.ChatSuperGroup
	chatID := fmt.Sprintf("%d", msg.Chat.ID)

	b.learn.Learn(ctx, learner.Message{
		ChatID:    chatID,
		UserID:    fmt.Sprintf("%d", msg.Sender.ID),
		Username:  msg.Sender.Username,
		Text:      msg.Text,
		MessageID: msg.ID,
		IsGroup:   isGroup,
		Timestamp: msg.Time(),
	})

	if isGroup && !b.addressed(msg) {
		return nil
	}

	text := b.stripMention(msg.Text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	reply := b.resp.Respond(ctx, responder.Incoming{
		ChatID:   chatID,
		UserID:   fmt.Sprintf("%d", msg.Sender.ID),
		Username: msg.Sender.Username,
		Text:     text,
		IsGroup:  isGroup,
	})

	return b.send.replyHumanly(ctx, msg, reply, b.rnd)
}

func (b *Bot) onAddedToGroup(c tele.Context) error {
	greeting := b.synth.GroupJoinGreeting(c.Chat().Title)
	return b.send.to(b.ctx, c.Chat(), greeting)
}

func (b *Bot) onStart(c tele.Context) error {
	return c.Send(b.synth.Identity())
}

func (b *Bot) onHelp(c tele.Context) error {
	help := fmt.Sprintf(
		"Cara pakai %s:\n"+
			"- Chat langsung aja di private, pasti gue bales.\n"+
			"- Di grup, mention @%s atau reply pesan gue.\n"+
			"- Gue belajar dari semua obrolan, jadi makin rame makin pinter.\n\n"+
			"Perintah:\n"+
			"/start - kenalan\n"+
			"/about - info sama statistik gue\n"+
			"/reset - hapus konteks obrolan chat ini (owner)",
		core.BotName, b.bot.Me.Username,
	)
	return c.Send(help)
}

func (b *Bot) onAbout(c tele.Context) error {
	counts, err := b.repo.CountBySource(b.ctx)
	if err != nil {
		log.FromCtx(b.ctx).Warn().Err(err).Msg("stats query failed")
		return c.Send(fmt.Sprintf("%s v%s - bot yang belajar dari obrolan.", core.BotName, core.BotVersion))
	}

	var total, learned int
	for st, n := range counts {
		total += n
		if st != core.SourceSystem {
			learned += n
		}
	}
	return c.Send(fmt.Sprintf(
		"%s v%s\nTotal pengetahuan: %d item (%d dipelajari dari obrolan).\nSumber: %s",
		core.BotName, core.BotVersion, total, learned, core.BotRepository,
	))
}

func (b *Bot) onReset(c tele.Context) error {
	if b.cfg.OwnerID != 0 && c.Sender().ID != b.cfg.OwnerID {
		return c.Send("Cuma owner yang bisa reset konteks ya.")
	}

	chatID := fmt.Sprintf("%d", c.Chat().ID)
	if err := b.store.Reset(b.ctx, chatID); err != nil {
		log.FromCtx(b.ctx).Error().Err(err).Str("chat_id", chatID).Msg("context reset failed")
		return c.Send("Gagal reset konteks, coba lagi nanti.")
	}
	return c.Send("Oke, konteks obrolan chat ini udah gue lupain.")
}

// addressed reports whether a group message is aimed at the bot.
func (b *Bot) addressed(msg *tele.Message) bool {
	if msg.ReplyTo != nil && msg.ReplyTo.Sender != nil && msg.ReplyTo.Sender.ID == b.bot.Me.ID {
		return true
	}
	return strings.Contains(strings.ToLower(msg.Text), "@"+strings.ToLower(b.bot.Me.Username))
}

func (b *Bot) stripMention(text string) string {
	mention := "@" + b.bot.Me.Username
	text = strings.ReplaceAll(text, mention, "")
	text = strings.ReplaceAll(text, strings.ToLower(mention), "")
	return strings.TrimSpace(text)
}
