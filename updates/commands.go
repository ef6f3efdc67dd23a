package updates

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phrasebot/phrases"
)

const helpText = "/phrase - a random phrase\n/rotate - update the footer\n/help"

func handleCommandUpdate(phraseBotUpdate PhraseBotUpdate) error {
	update := phraseBotUpdate.Update
	bot := phraseBotUpdate.Bot
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Unknown command")
	switch update.Message.Command() {
	case "phrase":
		msg.Text = phraseBotUpdate.Rotation.Rotator.Pick()
	case "rotate":
		msg.Text = handleRotateCommand(phraseBotUpdate)
	case "help", "start":
		msg.Text = helpText
	}
	if _, err := bot.Send(msg); err != nil {
		return err
	}
	return nil
}

func handleRotateCommand(phraseBotUpdate PhraseBotUpdate) string {
	rotation := phraseBotUpdate.Rotation
	err := rotation.Rotator.UpdateElement(context.Background(), rotation.Surface, rotation.TargetID)
	switch {
	case err == nil:
		return "Footer updated"
	case errors.Is(err, phrases.ErrTargetNotFound):
		log.Warn("rotate command: target not found", "target", rotation.TargetID)
		return "Footer target not found"
	default:
		log.Error(err)
		return "Footer update failed"
	}
}
