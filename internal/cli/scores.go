package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	filestore "quizmaster/internal/infra/file"
)

// NewScoresCmd prints the top high scores without entering the game.
func NewScoresCmd(configPath, dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the high-score table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, *dataDir)
			if err != nil {
				return err
			}
			ledger := filestore.NewScoreLedger(cfg.DataPath(cfg.Files.HighScores))
			entries, err := ledger.Top(5)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No high scores yet.")
				return nil
			}
			for i, e := range entries {
				fmt.Printf("%d. %s - %d points (%s)\n", i+1, e.Name, e.Score, e.Datetime)
			}
			return nil
		},
	}
}
