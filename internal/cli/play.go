package cli

import (
	"context"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"quizmaster/internal/config"
	filestore "quizmaster/internal/infra/file"
	redisstore "quizmaster/internal/infra/redis"
	"quizmaster/internal/quiz"
	"quizmaster/internal/transport/term"
)

// NewPlayCmd builds the CLI subcommand that runs the interactive game.
func NewPlayCmd(configPath, dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), *configPath, *dataDir)
		},
	}
}

func runGame(ctx context.Context, configPath, dataDir string) error {
	cfg, err := loadConfig(configPath, dataDir)
	if err != nil {
		return err
	}

	cacheTTL := config.TTLDuration(cfg.Quiz.CacheTTL, 10*time.Minute)
	source := filestore.NewRepository(cfg.Data.Dir, cacheTTL)
	ledger := filestore.NewScoreLedger(cfg.DataPath(cfg.Files.HighScores))
	audit := filestore.NewSessionLog(cfg.DataPath(cfg.Files.SessionLog))

	var store quiz.SnapshotStore = filestore.NewSnapshotStore(cfg.DataPath(cfg.Files.Save), cfg.Quiz.QuestionSeconds)
	if cfg.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = redisstore.NewSnapshotStore(client, config.TTLDuration(cfg.Redis.TTL, 0))
	}

	app := term.NewApp(cfg, source, store, ledger, audit)
	return app.Run(ctx)
}

// loadConfig reads the YAML config, falling back to built-in defaults when
// the file does not exist. A non-empty dataDir flag wins over the config.
func loadConfig(path, dataDir string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return config.Config{}, err
		}
		cfg = config.Default()
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	return cfg, nil
}
