package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

// Exit statuses for searches that ended without a keyword.
const (
	exitFailed    = 1
	exitUsage     = 2
	exitCancelled = 130
)

var solveJSON bool

var solveCmd = &cobra.Command{
	Use:   "solve <set1> <set2> <set3> <set4> <set5> <set6>",
	Short: "Find the keyword hidden in six letter sets",
	Long: `Tries every keyword that takes one letter from each set, in order, and
stops at the first one the dictionary knows.

Letters may be given in any case, with spaces and repeats; each set is
normalised before the search starts. Lookups are paced one second apart by
default, so a search over many combinations takes a while. Press Ctrl+C to
stop early.

Examples:
  keyword solve k e y w o r d
  keyword solve "kl" "ae" "y" "w" "o" "rd" --json`,
	Args: cobra.ExactArgs(domain.KeywordLength),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output the outcome as JSON")
	solveCmd.Flags().Duration("pacing", domain.DefaultPacing, "delay between dictionary lookups (overrides search.pacing_ms)")
	rootCmd.AddCommand(solveCmd)
}

// solveResult is the JSON form of a finished search.
type solveResult struct {
	Outcome  string   `json:"outcome"`
	Keyword  string   `json:"keyword,omitempty"`
	Message  string   `json:"message"`
	Attempts int      `json:"attempts"`
	Tried    []string `json:"tried"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	var raw [domain.KeywordLength]string
	copy(raw[:], args)

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := newStatusPrinter(cmd.OutOrStdout(), solveJSON)
	handle, err := searchService.Start(ctx, raw, printer)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	// A signal cancels the search through ctx; wait for it to report.
	outcome, err := searchService.Wait(context.WithoutCancel(ctx), handle)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if solveJSON {
		if err := outputSolveJSON(cmd, outcome, printer.Tried()); err != nil {
			return err
		}
	}

	return exitErrorFor(outcome)
}

func outputSolveJSON(cmd *cobra.Command, outcome domain.Outcome, tried []string) error {
	data, err := json.MarshalIndent(solveResult{
		Outcome:  outcome.Kind.String(),
		Keyword:  outcome.Keyword,
		Message:  outcome.Message(),
		Attempts: outcome.Attempts,
		Tried:    tried,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// exitErrorFor maps an outcome to the process exit status. Found and
// Exhausted both succeed.
func exitErrorFor(outcome domain.Outcome) error {
	switch outcome.Kind {
	case domain.OutcomeFound, domain.OutcomeExhausted:
		return nil
	case domain.OutcomeCancelled:
		return &ExitError{Code: exitCancelled, Err: outcome.Err()}
	case domain.OutcomeInvalidInput:
		return &ExitError{Code: exitUsage, Err: outcome.Err()}
	default:
		return &ExitError{Code: exitFailed, Err: outcome.Err()}
	}
}

// contextOf returns the command context, or a background context when the
// command was run without one.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// pacingFlag reports the --pacing value if it was given.
func pacingFlag(cmd *cobra.Command) (time.Duration, bool) {
	f := cmd.Flags().Lookup("pacing")
	if f == nil || !f.Changed {
		return 0, false
	}
	d, err := cmd.Flags().GetDuration("pacing")
	if err != nil {
		return 0, false
	}
	return d, true
}
