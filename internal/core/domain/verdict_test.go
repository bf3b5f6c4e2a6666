package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictKind_String(t *testing.T) {
	tests := []struct {
		kind VerdictKind
		want string
	}{
		{VerdictValid, "valid"},
		{VerdictNotFound, "not_found"},
		{VerdictRateLimited, "rate_limited"},
		{VerdictServiceError, "service_error"},
		{VerdictTransportError, "transport_error"},
		{VerdictCancelled, "cancelled"},
		{VerdictKind(42), "verdict(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestVerdictConstructors(t *testing.T) {
	assert.Equal(t, Verdict{Kind: VerdictServiceError, StatusCode: 503, Message: "Service Unavailable"},
		ServiceError(503, "Service Unavailable"))
	assert.Equal(t, Verdict{Kind: VerdictTransportError, Message: "dial tcp: refused"},
		TransportError("dial tcp: refused"))
	assert.Equal(t, VerdictCancelled, Cancelled().Kind)
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultOracleBaseURL, s.Oracle.BaseURL)
	assert.Equal(t, DefaultUserAgent, s.Oracle.UserAgent)
	assert.Equal(t, DefaultMinSpacing, s.Oracle.MinSpacing)
	assert.Equal(t, DefaultPacing, s.Search.Pacing)
}
