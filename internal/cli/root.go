package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nathfavour/habilidades/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	noColor   bool
	configErr error
)

var rootCmd = &cobra.Command{
	Use:     "habilidades",
	Short:   "habilidades is an interactive shell of skills",
	Long:    `A small command shell that routes each line to a registered skill and, for composite skills, to one of its subcommands.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", config.Version, config.Commit, config.BuildDate),
	Args:    cobra.NoArgs,
	// Errors are printed once by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute runs the command tree and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.habilidades.yaml)")
	flags.String("prompt", "> ", "prompt shown before each line")
	flags.String("tokenizer", "shell", "input syntax: shell (quoted words) or comas (comma-separated)")
	flags.Bool("ask", false, "ask for missing arguments instead of failing")
	flags.String("catalog", "", "HJSON skill catalog (default is the built-in one)")
	flags.Bool("history", false, "journal executed lines")
	flags.Bool("verbose", false, "diagnostic logging to stderr")
	flags.BoolVar(&noColor, "no-color", false, "disable styled output")

	_ = viper.BindPFlag("prompt", flags.Lookup("prompt"))
	_ = viper.BindPFlag("tokenizer", flags.Lookup("tokenizer"))
	_ = viper.BindPFlag("ask_missing", flags.Lookup("ask"))
	_ = viper.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = viper.BindPFlag("history.enabled", flags.Lookup("history"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			configErr = err
			return
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".habilidades")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default file is fine; a missing or broken explicit one is not.
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("read config: %w", err)
		}
		return
	}
	if viper.GetBool("verbose") {
		log.Printf("[verbose] using config file: %s", viper.ConfigFileUsed())
	}
}

// loadSettings returns the effective settings for this invocation.
func loadSettings() (config.Settings, error) {
	if configErr != nil {
		return config.Settings{}, configErr
	}
	s, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Settings{}, err
	}
	if noColor {
		s.Color = false
	}
	return s, nil
}
