package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/config"
	"github.com/lawai/consult-backend/internal/entity"
)

// Notifier announces new contact requests to the on-duty lawyer channel.
type Notifier interface {
	NotifyContact(ctx context.Context, req *entity.ContactRequest)
}

// Telegram posts contact requests to a fixed chat. Delivery is best-effort:
// the submission already succeeded, a lost notification must not fail it.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewTelegram(cfg config.TelegramConfig, logger *zap.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Telegram{
		bot:    bot,
		chatID: cfg.ChatID,
		logger: logger,
	}, nil
}

func (t *Telegram) NotifyContact(ctx context.Context, req *entity.ContactRequest) {
	text := fmt.Sprintf(
		"新的律師諮詢請求\n姓名：%s\n電話：%s\nLINE：%s\n\n%s",
		req.Name, req.Phone, req.Line, req.Text,
	)

	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		ctxzap.Warn(ctx, "telegram notification failed", zap.Error(err))
		return
	}

	ctxzap.Info(ctx, "telegram notification sent")
}

// Noop is used when the Telegram channel is disabled.
type Noop struct{}

func (Noop) NotifyContact(context.Context, *entity.ContactRequest) {}
