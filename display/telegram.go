package display

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phrasebot/phrases"
)

// Sender is the part of *tgbotapi.BotAPI the telegram surface needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram renders into messages the bot has posted. Element ids have the
// form "<chatID>:<messageID>".
type Telegram struct {
	bot    Sender
	chatID int64
}

func NewTelegram(bot Sender, chatID int64) *Telegram {
	return &Telegram{bot: bot, chatID: chatID}
}

func MessageID(chatID int64, messageID int) string {
	return fmt.Sprintf("%d:%d", chatID, messageID)
}

func parseMessageID(id string) (chatID int64, messageID int, err error) {
	chat, message, ok := strings.Cut(id, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed message id %q", id)
	}
	if chatID, err = strconv.ParseInt(chat, 10, 64); err != nil {
		return 0, 0, err
	}
	if messageID, err = strconv.Atoi(message); err != nil {
		return 0, 0, err
	}
	return chatID, messageID, nil
}

// Element does not call the Bot API; a message that was deleted is only
// detected when it is edited. A phrase has already been drawn by then, so for
// this surface a missing target does not stop the draw.
func (t *Telegram) Element(_ context.Context, id string) (phrases.Element, error) {
	chatID, messageID, err := parseMessageID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", phrases.ErrTargetNotFound, err)
	}
	return &telegramElement{bot: t.bot, chatID: chatID, messageID: messageID}, nil
}

// Create posts a placeholder message to the configured chat. The id argument
// is ignored because Telegram assigns message ids.
func (t *Telegram) Create(_ context.Context, _ string) (string, error) {
	if t.chatID == 0 {
		return "", fmt.Errorf("telegram chat id not configured")
	}
	msg, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, "…"))
	if err != nil {
		return "", err
	}
	return MessageID(t.chatID, msg.MessageID), nil
}

type telegramElement struct {
	bot       Sender
	chatID    int64
	messageID int
}

func (e *telegramElement) SetText(_ context.Context, text string) error {
	if e == nil {
		return phrases.ErrTargetNotFound
	}
	_, err := e.bot.Send(tgbotapi.NewEditMessageText(e.chatID, e.messageID, text))
	if err == nil {
		return nil
	}
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case strings.Contains(apiErr.Message, "message is not modified"):
			return nil
		case strings.Contains(apiErr.Message, "message to edit not found"):
			return fmt.Errorf("%w: %s", phrases.ErrTargetNotFound, apiErr.Message)
		}
	}
	return err
}
