package cmd

import (
	"github.com/spf13/cobra"

	"phrasebot/config"
	"phrasebot/phrases"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "phrasebot",
	Short:         "Rotates a random phrase into a display element.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "config file (default ./config.yaml)")
	initAllCommands()
}

func initAllCommands() {
	RootCmd.AddCommand(
		newRotateCmd(),
		newTargetCmd(),
		newPhrasesCmd(),
		newReportCmd(),
		newServeCmd(),
		newRunCmd(),
	)
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newRotator(cfg config.Config) (*phrases.Rotator, error) {
	set, err := phrases.NewSet(cfg.Phrases...)
	if err != nil {
		return nil, err
	}
	return phrases.NewRotator(set, phrases.DefaultSource), nil
}
