package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"phrasebot/config"
	"phrasebot/db"
	"phrasebot/display"
	"phrasebot/phrases"
)

type surface interface {
	phrases.Surface
	display.Creator
}

// memorySurface is shared between the scheduler and the web page when the
// target kind is memory.
var memorySurface = display.NewMemory()

func newBot(cfg config.Config) (*tgbotapi.BotAPI, error) {
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token not configured")
	}
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("issue with token: %w", err)
	}
	log.Debugf("Authorized on account %s", bot.Self.UserName)
	return bot, nil
}

func openSurface(_ context.Context, cfg config.Config, bot *tgbotapi.BotAPI) (surface, error) {
	switch cfg.Target.Kind {
	case config.KindMemory:
		return memorySurface, nil
	case config.KindRedis:
		return display.NewRedis(cfg.Redis.Addr, cfg.Redis.Prefix), nil
	case config.KindSQLite:
		conn, err := db.GetDB(cfg.DB.Path, cfg.Location())
		if err != nil {
			return nil, err
		}
		return display.NewBoard(conn)
	case config.KindS3:
		return display.NewBucket(cfg.S3.Region, cfg.S3.Bucket, cfg.S3.Prefix)
	case config.KindTelegram:
		if bot == nil {
			var err error
			if bot, err = newBot(cfg); err != nil {
				return nil, err
			}
		}
		return display.NewTelegram(bot, cfg.Telegram.ChatID), nil
	}
	return nil, fmt.Errorf("unknown target kind %q", cfg.Target.Kind)
}
