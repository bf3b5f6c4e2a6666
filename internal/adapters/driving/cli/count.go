package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

var countCmd = &cobra.Command{
	Use:   "count <set1> <set2> <set3> <set4> <set5> <set6>",
	Short: "Count the keywords a search would try",
	Long: `Normalises the six letter sets and prints how many candidate keywords a
search over them would look up. No lookups are made.

With --list the candidates themselves are printed in search order, up to
--limit of them (0 prints all).`,
	Args:        cobra.ExactArgs(domain.KeywordLength),
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runCount,
}

var (
	countList  bool
	countLimit int
)

func init() {
	countCmd.Flags().BoolVar(&countList, "list", false, "print the candidates in search order")
	countCmd.Flags().IntVar(&countLimit, "limit", 50, "maximum candidates to list (0 = all)")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	var raw [domain.KeywordLength]string
	copy(raw[:], args)
	sets := domain.NormalizeAll(raw)

	for _, p := range domain.Positions {
		set := sets.At(p)
		letters := set.String()
		if set.IsEmpty() {
			letters = "(empty)"
		}
		cmd.Printf("  %d: %s\n", p+1, letters)
	}

	if err := sets.Validate(); err != nil {
		cmd.Println(domain.Outcome{Kind: domain.OutcomeInvalidInput}.Message())
		return &ExitError{Code: exitUsage, Err: err}
	}

	total := sets.Combinations()
	switch {
	case total == domain.MaxCombinations:
		cmd.Printf("at least %d candidates\n", total)
	case total == 1:
		cmd.Println("1 candidate")
	default:
		cmd.Printf("%d candidates\n", total)
	}

	if countList {
		return listCandidates(cmd, sets)
	}
	return nil
}

func listCandidates(cmd *cobra.Command, sets domain.LetterSets) error {
	if countLimit < 0 {
		return &ExitError{Code: exitUsage, Err: fmt.Errorf("%w: --limit must not be negative", domain.ErrInvalidInput)}
	}

	candidates, err := domain.Candidates(sets)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}

	listed := 0
	for candidate := range candidates {
		if countLimit > 0 && listed == countLimit {
			cmd.Println("...")
			break
		}
		cmd.Println(candidate)
		listed++
	}
	return nil
}
