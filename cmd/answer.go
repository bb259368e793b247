package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/edpick/internal/engine"
	"github.com/abhisek/edpick/internal/quizfile"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Compute a recommendation from preset answers",
	Long: `Apply one answer per question, in order, and print the recommendation.

Choices are 1-based option numbers, for example --choices 1,2,1,1,1,1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		choices, _ := cmd.Flags().GetIntSlice("choices")
		asJSON, _ := cmd.Flags().GetBool("json")

		def, err := resolveQuiz(cmd)
		if err != nil {
			return err
		}
		report, err := runAnswer(def, choices)
		if err != nil {
			return err
		}
		if asJSON {
			return writeAnswerJSON(cmd.OutOrStdout(), report)
		}
		writeAnswerText(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	answerCmd.Flags().IntSlice("choices", nil, "Comma-separated 1-based option numbers, one per question (required)")
	answerCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = answerCmd.MarkFlagRequired("choices")
}

type reportCandidate struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Link  string  `json:"link"`
	Score float64 `json:"score"`
}

type reportAnswer struct {
	Question string `json:"question"`
	Choice   int    `json:"choice"`
	Label    string `json:"label"`
}

type answerReport struct {
	Found   bool              `json:"found"`
	Winner  reportCandidate   `json:"winner"`
	Ranking []reportCandidate `json:"ranking"`
	Answers []reportAnswer    `json:"answers"`
}

func toReportCandidate(c engine.Candidate) reportCandidate {
	return reportCandidate{ID: c.ID, Name: c.Name, Link: c.Link, Score: c.Score}
}

// runAnswer plays a full session with the given 1-based choices.
func runAnswer(def quizfile.Definition, choices []int) (answerReport, error) {
	s, err := def.NewSession()
	if err != nil {
		return answerReport{}, fmt.Errorf("start session: %w", err)
	}
	if len(choices) != s.Len() {
		return answerReport{}, fmt.Errorf("got %d choices for %d questions", len(choices), s.Len())
	}
	for i, c := range choices {
		if err := s.SelectOption(c - 1); err != nil {
			return answerReport{}, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	res, err := engine.ComputeWinner(s)
	if err != nil {
		return answerReport{}, err
	}
	ranked, err := engine.Rank(s)
	if err != nil {
		return answerReport{}, err
	}

	report := answerReport{
		Found:   res.Found,
		Winner:  toReportCandidate(res.Candidate),
		Ranking: make([]reportCandidate, 0, len(ranked)),
	}
	for _, c := range ranked {
		report.Ranking = append(report.Ranking, toReportCandidate(c))
	}
	for _, a := range s.Answers() {
		report.Answers = append(report.Answers, reportAnswer{
			Question: a.Prompt,
			Choice:   a.Option + 1,
			Label:    a.Label,
		})
	}
	return report, nil
}

func writeAnswerJSON(w io.Writer, report answerReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func writeAnswerText(w io.Writer, report answerReport) {
	fmt.Fprintln(w, report.Winner.Name)
	if report.Found {
		fmt.Fprintln(w, report.Winner.Link)
	}
	if len(report.Ranking) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-4s %-24s %s\n", "#", "CANDIDATE", "SCORE")
		for i, c := range report.Ranking {
			fmt.Fprintf(w, "%-4d %-24s %g\n", i+1, c.Name, c.Score)
		}
	}
}
