package cmd

import (
	"github.com/spf13/cobra"
)

func newRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate [id]",
		Short: "Write one random phrase into the target element",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			id := cfg.Target.ID
			if len(args) == 1 {
				id = args[0]
			}
			rotator, err := newRotator(cfg)
			if err != nil {
				return err
			}
			surface, err := openSurface(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			return rotator.UpdateElement(cmd.Context(), surface, id)
		},
	}
}
