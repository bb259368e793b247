package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/edpick/internal/quizfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a questionnaire file",
	Long: `Load a YAML or JSON questionnaire, check it against the schema and make
sure every candidate id referenced by an option is declared.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := validateFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d candidates, %d questions)\n",
			args[0], len(def.Candidates), len(def.Questions))
		return nil
	},
}

// validateFile loads path and starts a throwaway session so that engine
// level problems surface too.
func validateFile(path string) (quizfile.Definition, error) {
	def, err := quizfile.Load(path)
	if err != nil {
		return quizfile.Definition{}, err
	}
	if _, err := def.NewSession(); err != nil {
		return quizfile.Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
