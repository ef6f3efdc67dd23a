package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"phrasebot/config"
	"phrasebot/schedule"
	"phrasebot/updates"
	"phrasebot/web"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Rotate the target on a schedule, serve the page and answer bot commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
}

func run(ctx context.Context, cfg config.Config) error {
	rotator, err := newRotator(cfg)
	if err != nil {
		return err
	}
	var bot *tgbotapi.BotAPI
	if cfg.Telegram.Token != "" {
		if bot, err = newBot(cfg); err != nil {
			return err
		}
	}
	surface, err := openSurface(ctx, cfg, bot)
	if err != nil {
		return err
	}
	// The page footer always lives in memory; it shares the scheduled
	// target only when that target is in memory too.
	_, _ = memorySurface.Create(ctx, cfg.Target.ID)

	rotation := schedule.Rotation{Rotator: rotator, Surface: surface, TargetID: cfg.Target.ID}
	scheduler, err := schedule.Init(ctx, cfg.Location(), cfg.Schedule.Every, rotation)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return web.NewServer(rotator, memorySurface, cfg.Target.ID).Run(ctx, cfg.Web.Addr)
	})
	if bot != nil {
		group.Go(func() error {
			serveUpdates(ctx, bot, rotation)
			return nil
		})
	}
	return group.Wait()
}

func serveUpdates(ctx context.Context, bot *tgbotapi.BotAPI, rotation schedule.Rotation) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updatesChannel := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()

	phraseBotUpdate := updates.PhraseBotUpdate{Bot: bot, Rotation: rotation}
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updatesChannel:
			if !ok {
				return
			}
			phraseBotUpdate.Update = update
			if err := updates.HandleUpdates(phraseBotUpdate); err != nil {
				log.Error(err)
				sentry.CaptureException(err)
			}
		}
	}
}
