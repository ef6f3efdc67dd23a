package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"phrasebot/config"
	"phrasebot/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the page with the rotating footer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	rotator, err := newRotator(cfg)
	if err != nil {
		return err
	}
	_, _ = memorySurface.Create(ctx, cfg.Target.ID)
	return web.NewServer(rotator, memorySurface, cfg.Target.ID).Run(ctx, cfg.Web.Addr)
}
