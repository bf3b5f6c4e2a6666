// Package cli provides the cobra command tree of the keyword binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driving"
	"github.com/custodia-labs/keyword-solver/internal/logger"
)

// annotationNoServices marks commands that run without the service graph.
const annotationNoServices = "keyword/no-services"

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services wired into the command tree.
var (
	searchService   driving.SearchService
	settingsService driving.SettingsService
	metricsHandler  http.Handler
)

// Services holds the driving ports the commands use.
type Services struct {
	Search   driving.SearchService
	Settings driving.SettingsService
	Metrics  http.Handler
}

// Options are the command-line inputs the service graph depends on.
type Options struct {
	// ConfigDir overrides the default config directory when non-empty.
	ConfigDir string

	// Pacing overrides the configured pacing delay when non-nil.
	Pacing *time.Duration
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var bootstrap Bootstrap

var rootCmd = &cobra.Command{
	Use:   "keyword",
	Short: "Solve six-position keyword puzzles",
	Long: `keyword finds the dictionary word hidden in a six-position letter puzzle.

Each position offers a set of letters. keyword tries every combination in
order, one lookup at a time, and stops at the first real word.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.keyword)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap registers the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		searchService, settingsService, metricsHandler = nil, nil, nil
		return
	}
	searchService = s.Search
	settingsService = s.Settings
	metricsHandler = s.Metrics
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup applies global flags and builds the services the command needs.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[annotationNoServices] != "" || bootstrap == nil || searchService != nil {
		return nil
	}

	opts := Options{ConfigDir: configDir}
	if pacing, ok := pacingFlag(cmd); ok {
		if pacing < 0 {
			return fmt.Errorf("%w: --pacing must not be negative", domain.ErrInvalidInput)
		}
		opts.Pacing = &pacing
	}

	services, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

// ExitError carries the process exit status for a failure that has already
// been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err was already shown to the user.
func IsReported(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
