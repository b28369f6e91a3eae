package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}
	envData := os.Getenv("DATA_DIR")

	cmd := &cobra.Command{
		Use:   "quizmaster",
		Short: "Timed multiple-choice trivia for the terminal",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", envData, "directory holding question and score files (overrides config)")
	cmd.AddCommand(NewPlayCmd(&configPath, &dataDir))
	cmd.AddCommand(NewScoresCmd(&configPath, &dataDir))
	return cmd
}
