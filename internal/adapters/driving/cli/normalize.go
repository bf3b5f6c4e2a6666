package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <letters>...",
	Short: "Show letter sets the way searches see them",
	Long: `Uppercases each argument, drops whitespace and repeated letters, and sorts
what is left. Sets that end up empty are shown as (empty).`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: map[string]string{annotationNoServices: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			set := domain.Normalize(arg)
			if set.IsEmpty() {
				cmd.Println("(empty)")
				continue
			}
			cmd.Println(set.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
