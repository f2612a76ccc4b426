package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lysyi3m/rss-digest/app/digest"
)

// TelegramSender delivers rendered digest units as Telegram messages, one
// message per unit. Each send is guarded by the client timeout; any
// non-success means the unit was not delivered.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

func NewTelegramSender(token string, timeout time.Duration) (*TelegramSender, error) {
	client := &http.Client{Timeout: timeout}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Telegram bot authorized", "account", api.Self.UserName)

	return &TelegramSender{api: api}, nil
}

func (s *TelegramSender) Send(ctx context.Context, chatID int64, unit digest.Unit) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, unit.Header+"\n\n"+unit.Body)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send digest unit: %w", err)
	}

	return nil
}
