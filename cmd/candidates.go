package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the candidates of the questionnaire",
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := resolveQuiz(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(def.Candidates) == 0 {
			fmt.Fprintln(out, "No candidates.")
			return nil
		}
		fmt.Fprintf(out, "%-14s %-26s %s\n", "ID", "NAME", "LINK")
		for _, c := range def.Candidates {
			fmt.Fprintf(out, "%-14s %-26s %s\n", c.ID, c.Name, c.Link)
		}
		return nil
	},
}
