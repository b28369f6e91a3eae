package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Category maps a menu entry to its question file under the data dir.
type Category struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type Config struct {
	Data struct {
		Dir        string     `yaml:"dir"`
		Categories []Category `yaml:"categories"`
	} `yaml:"data"`
	Files struct {
		HighScores string `yaml:"high_scores"`
		SessionLog string `yaml:"session_log"`
		Save       string `yaml:"save"`
	} `yaml:"files"`
	Quiz struct {
		QuestionSeconds  int    `yaml:"question_seconds"`
		ExtraTimeSeconds int    `yaml:"extra_time_seconds"`
		SessionSize      int    `yaml:"session_size"`
		CacheTTL         string `yaml:"cache_ttl"`
	} `yaml:"quiz"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
}

// Default is the configuration used when no config file exists.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Load reads YAML config from path and fills unset fields with defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Data.Dir == "" {
		c.Data.Dir = "."
	}
	if len(c.Data.Categories) == 0 {
		c.Data.Categories = []Category{
			{Name: "Science", File: "science.txt"},
			{Name: "Sports", File: "sports.txt"},
			{Name: "History", File: "history.txt"},
			{Name: "Computer", File: "computer.txt"},
			{Name: "IQ/Logic", File: "iq.txt"},
		}
	}
	if c.Files.HighScores == "" {
		c.Files.HighScores = "high_scores.txt"
	}
	if c.Files.SessionLog == "" {
		c.Files.SessionLog = "quiz_logs.txt"
	}
	if c.Files.Save == "" {
		c.Files.Save = "save_progress.txt"
	}
	if c.Quiz.QuestionSeconds <= 0 {
		c.Quiz.QuestionSeconds = 10
	}
	if c.Quiz.ExtraTimeSeconds <= 0 {
		c.Quiz.ExtraTimeSeconds = 10
	}
	if c.Quiz.SessionSize <= 0 {
		c.Quiz.SessionSize = 10
	}
}

// DataPath joins a file name onto the configured data directory.
func (c Config) DataPath(name string) string {
	return filepath.Join(c.Data.Dir, name)
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
