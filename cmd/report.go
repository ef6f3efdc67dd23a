package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phrasebot/reports"
)

func newReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Sample the rotator and chart how often each phrase is drawn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draws, _ := cmd.Flags().GetInt("draws")
			out, _ := cmd.Flags().GetString("out")
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rotator, err := newRotator(cfg)
			if err != nil {
				return err
			}
			tally, err := reports.Sample(cmd.Context(), rotator, draws)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reports.Caption(tally))
			if out == "" {
				return nil
			}
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer file.Close()
			return reports.WriteChart(tally, file)
		},
	}
	reportCmd.Flags().Int("draws", 10000, "number of draws to sample")
	reportCmd.Flags().String("out", "", "write a bar chart PNG to this file")
	return reportCmd
}
