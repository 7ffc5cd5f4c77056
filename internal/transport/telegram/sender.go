package telegram

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/gaulbot/internal/core"
	"github.com/sandevgo/gaulbot/pkg/log"
	"github.com/sandevgo/gaulbot/pkg/retry"
)

const (
	minReplyDelay = time.Second
	maxReplyDelay = 3 * time.Second
)

// sender pushes messages out with retries. Telegram hiccups on delivery
// are common enough that a couple of backoff attempts smooth most of
// them over.
type sender struct {
	bot     *tele.Bot
	retrier *retry.Retrier
}

func newSender(bot *tele.Bot) *sender {
	return &sender{
		bot:     bot,
		retrier: retry.NewDefaultRetrier(),
	}
}

// replyHumanly shows a typing indicator, waits one to three seconds, then
// replies to the message.
func (s *sender) replyHumanly(ctx context.Context, msg *tele.Message, text string, rnd core.Rand) error {
	if err := s.bot.Notify(msg.Chat, tele.Typing); err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("typing notification failed")
	}

	delay := minReplyDelay + time.Duration(rnd.Next()*float64(maxReplyDelay-minReplyDelay))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}

	return s.withRetry(ctx, func() error {
		_, err := s.bot.Send(msg.Chat, text, &tele.SendOptions{ReplyTo: msg})
		return err
	})
}

func (s *sender) to(ctx context.Context, chat *tele.Chat, text string) error {
	return s.withRetry(ctx, func() error {
		_, err := s.bot.Send(chat, text)
		return err
	})
}

func (s *sender) withRetry(ctx context.Context, op func() error) error {
	err := s.retrier.Do(ctx, op)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("telegram send failed after retries")
	}
	return err
}
