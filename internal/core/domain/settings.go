package domain

import "time"

// Default values of the configuration surface.
const (
	// DefaultOracleBaseURL is the dictionary lookup endpoint. The lowercased
	// candidate is appended as the final path segment.
	DefaultOracleBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

	// DefaultUserAgent is the product token sent with every dictionary
	// request. The CLI appends "/<version>" to it.
	DefaultUserAgent = "keyword-solver"

	// DefaultPacing is the delay between consecutive oracle calls of a search.
	DefaultPacing = 1000 * time.Millisecond

	// DefaultMinSpacing is the minimum interval between any two outbound
	// dictionary requests, across searches.
	DefaultMinSpacing = 1000 * time.Millisecond
)

// OracleSettings configures the dictionary client.
type OracleSettings struct {
	// BaseURL is the lookup endpoint.
	BaseURL string `validate:"required,url"`

	// UserAgent is sent with every request.
	UserAgent string `validate:"required"`

	// MinSpacing is the minimum interval between outbound requests.
	// Zero disables the guard.
	MinSpacing time.Duration `validate:"gte=0"`
}

// SearchSettings configures the search controller.
type SearchSettings struct {
	// Pacing is the delay between consecutive oracle calls.
	Pacing time.Duration `validate:"gte=0"`
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Oracle holds dictionary client settings.
	Oracle OracleSettings

	// Search holds search behaviour settings.
	Search SearchSettings
}

// DefaultAppSettings returns the fixed defaults of the solver.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Oracle: OracleSettings{
			BaseURL:    DefaultOracleBaseURL,
			UserAgent:  DefaultUserAgent,
			MinSpacing: DefaultMinSpacing,
		},
		Search: SearchSettings{
			Pacing: DefaultPacing,
		},
	}
}
