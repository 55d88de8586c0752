package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nathfavour/habilidades/pkg/command"
	"github.com/spf13/viper"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// EnvPrefix is prepended to every key looked up in the environment, e.g.
// HABILIDADES_PROMPT.
const EnvPrefix = "HABILIDADES"

// Settings holds everything the shell reads from config files, flags and
// the environment.
type Settings struct {
	Prompt     string          `mapstructure:"prompt"`
	Tokenizer  string          `mapstructure:"tokenizer"`
	AskMissing bool            `mapstructure:"ask_missing"`
	Catalog    string          `mapstructure:"catalog"`
	Verbose    bool            `mapstructure:"verbose"`
	Color      bool            `mapstructure:"color"`
	History    HistorySettings `mapstructure:"history"`
}

type HistorySettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prompt", "> ")
	v.SetDefault("tokenizer", command.ShellName)
	v.SetDefault("ask_missing", false)
	v.SetDefault("catalog", "")
	v.SetDefault("verbose", false)
	v.SetDefault("color", true)
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", "")
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if _, err := command.New(s.Tokenizer); err != nil {
		return Settings{}, err
	}
	if s.History.Path == "" {
		s.History.Path = HistoryPath()
	}
	return s, nil
}

// DataDir returns ~/.habilidades, creating it if needed.
func DataDir() string {
	home, _ := os.UserHomeDir()
	path := filepath.Join(home, ".habilidades")
	_ = os.MkdirAll(path, 0755)
	return path
}

// HistoryPath returns the default location of the command journal.
func HistoryPath() string {
	return filepath.Join(DataDir(), "history.db")
}
