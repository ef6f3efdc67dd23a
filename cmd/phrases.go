package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPhrasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phrases",
		Short: "List the configured phrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			for i, phrase := range cfg.Phrases {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i, phrase)
			}
			return nil
		},
	}
}
