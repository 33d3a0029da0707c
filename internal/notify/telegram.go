package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"

	"eventhub/internal/domain"
)

// TelegramNotifier posts reminder messages to a configured chat.
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: b, chatID: chatID}, nil
}

func (n *TelegramNotifier) SendReminder(ctx context.Context, event domain.Event, attendee domain.Attendee) error {
	text := fmt.Sprintf(
		"Reminder for %s (%s): please RSVP to \"%s\" on %s at %s.",
		attendee.Name,
		attendee.Email,
		event.Title,
		event.Date.Format("Jan 2, 2006"),
		event.Time,
	)
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send telegram reminder: %w", err)
	}
	return nil
}
