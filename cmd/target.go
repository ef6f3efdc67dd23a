package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTargetCmd() *cobra.Command {
	targetCmd := &cobra.Command{
		Use:   "target",
		Short: "Manage target elements",
	}
	targetCmd.AddCommand(&cobra.Command{
		Use:   "create [id]",
		Short: "Create the target element on the configured surface",
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
			surface, err := openSurface(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}
			created, err := surface.Create(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), created)
			return nil
		},
	})
	return targetCmd
}
