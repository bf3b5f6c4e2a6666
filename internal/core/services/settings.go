package services

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/keyword-solver/internal/core/domain"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driven"
	"github.com/custodia-labs/keyword-solver/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOracleBaseURL    = "oracle.base_url"
	keyOracleUserAgent  = "oracle.user_agent"
	keyOracleMinSpacing = "oracle.min_spacing_ms"
	keySearchPacing     = "search.pacing_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Get retrieves current application settings. Keys missing from the store
// fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &settings, nil
	}

	if v := s.configStore.GetString(keyOracleBaseURL); v != "" {
		settings.Oracle.BaseURL = v
	}
	if v := s.configStore.GetString(keyOracleUserAgent); v != "" {
		settings.Oracle.UserAgent = v
	}
	if ms, ok := s.configStore.GetInt(keyOracleMinSpacing); ok {
		settings.Oracle.MinSpacing = time.Duration(ms) * time.Millisecond
	}
	if ms, ok := s.configStore.GetInt(keySearchPacing); ok {
		settings.Search.Pacing = time.Duration(ms) * time.Millisecond
	}

	if err := s.Validate(&settings); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return &settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.Validate(settings); err != nil {
		return err
	}
	if s.configStore == nil {
		return fmt.Errorf("save settings: config store not configured")
	}

	if err := s.configStore.Set(keyOracleBaseURL, settings.Oracle.BaseURL); err != nil {
		return fmt.Errorf("save oracle base_url: %w", err)
	}
	if err := s.configStore.Set(keyOracleUserAgent, settings.Oracle.UserAgent); err != nil {
		return fmt.Errorf("save oracle user_agent: %w", err)
	}
	if err := s.configStore.Set(keyOracleMinSpacing, settings.Oracle.MinSpacing.Milliseconds()); err != nil {
		return fmt.Errorf("save oracle min_spacing_ms: %w", err)
	}
	if err := s.configStore.Set(keySearchPacing, settings.Search.Pacing.Milliseconds()); err != nil {
		return fmt.Errorf("save search pacing_ms: %w", err)
	}
	return nil
}

// Set updates a single setting by its configuration key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyOracleBaseURL:
		settings.Oracle.BaseURL = value
	case keyOracleUserAgent:
		settings.Oracle.UserAgent = value
	case keyOracleMinSpacing:
		d, err := parseMillis(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		settings.Oracle.MinSpacing = d
	case keySearchPacing:
		d, err := parseMillis(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		settings.Search.Pacing = d
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys lists the configuration keys accepted by Set.
func (s *SettingsService) Keys() []string {
	keys := []string{keyOracleBaseURL, keyOracleUserAgent, keyOracleMinSpacing, keySearchPacing}
	slices.Sort(keys)
	return keys
}

// Validate checks settings without persisting them.
func (s *SettingsService) Validate(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// parseMillis parses a non-negative millisecond count.
func parseMillis(value string) (time.Duration, error) {
	ms, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number of milliseconds", domain.ErrInvalidInput, value)
	}
	if ms < 0 {
		return 0, fmt.Errorf("%w: %d must not be negative", domain.ErrInvalidInput, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
