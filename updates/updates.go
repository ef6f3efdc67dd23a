package updates

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phrasebot/display"
	"phrasebot/schedule"
)

// PhraseBotUpdate is an incoming update along with what is needed to answer it.
type PhraseBotUpdate struct {
	Bot        display.Sender
	Update     tgbotapi.Update
	Rotation   schedule.Rotation
	UpdateType UpdateType
}

type UpdateType interface {
	handle() error
}

type IgnoredUpdate struct {
	PhraseBotUpdate
}
type CommandUpdate struct {
	PhraseBotUpdate
}

func (phraseBotUpdate *PhraseBotUpdate) classify() error {
	switch true {
	case phraseBotUpdate.isIgnoredUpdate():
		phraseBotUpdate.UpdateType = IgnoredUpdate{*phraseBotUpdate}
	case phraseBotUpdate.isCommandUpdate():
		phraseBotUpdate.UpdateType = CommandUpdate{*phraseBotUpdate}
	default:
		err := fmt.Errorf("cannot classify update")
		sentry.CaptureException(err)
		return err
	}
	return nil
}

func (phraseBotUpdate PhraseBotUpdate) isIgnoredUpdate() bool {
	message := phraseBotUpdate.Update.Message
	return message == nil || message.Chat == nil || !message.IsCommand()
}

func (phraseBotUpdate PhraseBotUpdate) isCommandUpdate() bool {
	return phraseBotUpdate.Update.Message.IsCommand()
}

func HandleUpdates(phraseBotUpdate PhraseBotUpdate) error {
	if err := phraseBotUpdate.classify(); err != nil {
		return err
	}
	return phraseBotUpdate.UpdateType.handle()
}

func (update IgnoredUpdate) handle() error {
	return nil
}

func (update CommandUpdate) handle() error {
	return handleCommandUpdate(update.PhraseBotUpdate)
}
