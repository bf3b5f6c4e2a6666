package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "keyword", rootCmd.Use)
}

func TestRootCmd_HasGlobalFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)

	flag = rootCmd.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, flag, "config-dir flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"solve", "normalize", "count", "settings", "mcp", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestRootCmd_Help(t *testing.T) {
	cleanup := setupTestServices(nil)
	defer cleanup()

	out, err := execute("--help")

	require.NoError(t, err)
	assert.Contains(t, out, "six-position letter puzzle")
}

func TestSetup_BootstrapReceivesOptions(t *testing.T) {
	cleanup := setupTestServices(&stubOracle{words: map[string]bool{"ABCDEF": true}})
	built := searchService
	SetServices(nil)
	defer cleanup()

	var got Options
	calls := 0
	SetBootstrap(func(opts Options) (*Services, error) {
		calls++
		got = opts
		return &Services{Search: built}, nil
	})

	out, err := execute("solve", "a", "b", "c", "d", "e", "f", "--pacing", "5ms", "--config-dir", "/tmp/kw")

	require.NoError(t, err)
	assert.Contains(t, out, "*** ABCDEF ***")
	assert.Equal(t, 1, calls)
	assert.Equal(t, "/tmp/kw", got.ConfigDir)
	require.NotNil(t, got.Pacing)
	assert.Equal(t, 5*time.Millisecond, *got.Pacing)
}

func TestSetup_NegativePacing(t *testing.T) {
	cleanup := setupTestServices(nil)
	SetServices(nil)
	defer cleanup()

	SetBootstrap(func(Options) (*Services, error) {
		t.Fatal("bootstrap should not run")
		return nil, nil
	})

	_, err := execute("solve", "a", "b", "c", "d", "e", "f", "--pacing=-1s")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.NoError(t, solveCmd.Flags().Set("pacing", domain.DefaultPacing.String()))
}

func TestSetup_BootstrapError(t *testing.T) {
	cleanup := setupTestServices(nil)
	SetServices(nil)
	defer cleanup()

	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("bad config")
	})

	_, err := execute("settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad config")
}

func TestSetup_SkipsBootstrapForStandaloneCommands(t *testing.T) {
	cleanup := setupTestServices(nil)
	SetServices(nil)
	defer cleanup()

	SetBootstrap(func(Options) (*Services, error) {
		t.Fatal("bootstrap should not run")
		return nil, nil
	})

	_, err := execute("version")
	require.NoError(t, err)

	_, err = execute("normalize", "abc")
	require.NoError(t, err)

	_, err = execute("count", "a", "b", "c", "d", "e", "f")
	require.NoError(t, err)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: exitCancelled, Err: domain.ErrCancelled}

	assert.Equal(t, domain.ErrCancelled.Error(), err.Error())
	assert.ErrorIs(t, err, domain.ErrCancelled)

	code, ok := IsReported(err)
	assert.True(t, ok)
	assert.Equal(t, exitCancelled, code)

	_, ok = IsReported(errors.New("plain"))
	assert.False(t, ok)
}
