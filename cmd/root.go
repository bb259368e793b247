package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/edpick/internal/catalog"
	"github.com/abhisek/edpick/internal/logging"
	"github.com/abhisek/edpick/internal/quizfile"
)

const (
	envQuiz     = "EDPICK_QUIZ"
	envLogFile  = "EDPICK_LOG"
	envLogLevel = "EDPICK_LOG_LEVEL"
)

var rootCmd = &cobra.Command{
	Use:          "edpick",
	Short:        "Find the text editor that fits you",
	Long:         "edpick asks a few questions about how you work and recommends a text editor.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("quiz", "", "Questionnaire file, YAML or JSON (overrides "+envQuiz+" env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file (overrides "+envLogFile+" env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides "+envLogLevel+" env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagOrEnv returns the flag value if set, then the environment variable.
func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}

// resolveQuiz loads the questionnaire named by --quiz (highest priority),
// then EDPICK_QUIZ, then falls back to the built-in editor catalog.
func resolveQuiz(cmd *cobra.Command) (quizfile.Definition, error) {
	path := flagOrEnv(cmd, "quiz", envQuiz)
	if path == "" {
		return catalog.Default(), nil
	}
	def, err := quizfile.Load(path)
	if err != nil {
		return quizfile.Definition{}, fmt.Errorf("load questionnaire: %w", err)
	}
	return def, nil
}

// resolveLogger builds the logger from --log-file/--log-level and their env
// vars. Without a log file, records go to fallback at warn level, or are
// dropped when fallback is nil. The returned close func is never nil.
func resolveLogger(cmd *cobra.Command, fallback io.Writer) (*slog.Logger, func() error, error) {
	path := flagOrEnv(cmd, "log-file", envLogFile)
	levelName := flagOrEnv(cmd, "log-level", envLogLevel)
	if levelName == "" {
		levelName = "warn"
		if path != "" {
			levelName = "info"
		}
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }
	if path != "" {
		log, closer, err := logging.Open(path, level)
		if err != nil {
			return nil, nil, err
		}
		return log, closer.Close, nil
	}
	if fallback == nil {
		return logging.Discard(), noop, nil
	}
	return logging.New(fallback, level), noop, nil
}
