package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/edpick/internal/engine"
	"github.com/abhisek/edpick/internal/quizfile"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer the questionnaire line by line (no TUI)",
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := resolveQuiz(cmd)
		if err != nil {
			return err
		}
		log, closeLog, err := resolveLogger(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			if err := closeLog(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: close log file: %v\n", err)
			}
		}()

		return runAsk(cmd.InOrStdin(), cmd.OutOrStdout(), def, log)
	},
}

// runAsk plays one session over in/out. Anything that is not a valid option
// number re-prompts the same question.
func runAsk(in io.Reader, out io.Writer, def quizfile.Definition, log *slog.Logger) error {
	s, err := def.NewSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	log = log.With("session", uuid.New().String())
	log.Info("session started", "questions", s.Len())

	if def.Title != "" {
		fmt.Fprintf(out, "%s\n\n", def.Title)
	}

	scanner := bufio.NewScanner(in)
	for !s.Finished() {
		p := s.CurrentPrompt()
		fmt.Fprintf(out, "── Question %d/%d ──\n", p.Number, p.Total)
		fmt.Fprintln(out, p.Text)
		for i, label := range p.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, label)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			fmt.Fprintln(out, "\n(input closed)")
			return fmt.Errorf("input closed before question %d was answered", p.Number)
		}
		text := strings.TrimSpace(scanner.Text())

		n, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintf(out, "Please enter a number from 1 to %d.\n\n", len(p.Options))
			continue
		}
		if err := s.SelectOption(n - 1); err != nil {
			if errors.Is(err, engine.ErrInvalidOption) {
				fmt.Fprintf(out, "There is no option %d. Please enter a number from 1 to %d.\n\n", n, len(p.Options))
				continue
			}
			return err
		}
		log.Debug("answered", "question", p.Number, "option", p.Options[n-1])
		fmt.Fprintln(out)
	}

	res, err := engine.ComputeWinner(s)
	if err != nil {
		return err
	}
	log.Info("session finished", "winner", res.Candidate.Name, "found", res.Found, "score", res.Candidate.Score)

	fmt.Fprintln(out, "── Recommendation ──")
	fmt.Fprintln(out, res.Candidate.Name)
	if res.Found && res.Candidate.Link != "" {
		fmt.Fprintln(out, res.Candidate.Link)
	}
	return nil
}
