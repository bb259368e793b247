package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/edpick/internal/app"
)

// runApp resolves the questionnaire and logger, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	def, err := resolveQuiz(cmd)
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs only go to a file.
	log, closeLog, err := resolveLogger(cmd, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close log file: %v\n", err)
		}
	}()

	return app.Run(app.Options{
		Definition: def,
		Logger:     log,
	})
}
