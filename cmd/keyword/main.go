// Command keyword finds the six-letter keyword hidden in six letter sets.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/keyword-solver/internal/adapters/driven/clock"
	"github.com/custodia-labs/keyword-solver/internal/adapters/driven/config/file"
	"github.com/custodia-labs/keyword-solver/internal/adapters/driven/dictionary"
	"github.com/custodia-labs/keyword-solver/internal/adapters/driven/metrics"
	"github.com/custodia-labs/keyword-solver/internal/adapters/driving/cli"
	"github.com/custodia-labs/keyword-solver/internal/core/services"
	"github.com/custodia-labs/keyword-solver/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(context.Background()); err != nil {
		if code, ok := cli.IsReported(err); ok {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger.Debug("config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	client, err := dictionary.NewClient(settings.Oracle, dictionary.WithVersion(version))
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}

	pacing := settings.Search.Pacing
	if opts.Pacing != nil {
		pacing = *opts.Pacing
	}
	logger.Debug("oracle: %s, pacing %s", settings.Oracle.BaseURL, pacing)

	m := metrics.New()
	solver := m.Solver(services.NewSolver(m.Oracle(client), clock.NewPacer(), pacing))

	return &cli.Services{
		Search:   services.NewSearchService(solver),
		Settings: settingsService,
		Metrics:  m.Handler(),
	}, nil
}
