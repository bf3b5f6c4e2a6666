package domain

import "fmt"

// VerdictKind classifies the oracle's answer for one candidate.
type VerdictKind int

// Verdict kinds.
const (
	// VerdictValid means the candidate is a dictionary word.
	VerdictValid VerdictKind = iota

	// VerdictNotFound means the candidate is not a word. This is the only
	// verdict that lets a search continue.
	VerdictNotFound

	// VerdictRateLimited means the service answered 429.
	VerdictRateLimited

	// VerdictServiceError means the service answered with any other status.
	VerdictServiceError

	// VerdictTransportError means the request never produced a response.
	VerdictTransportError

	// VerdictCancelled means cancellation was observed before or during the call.
	VerdictCancelled
)

// String returns the string representation.
func (k VerdictKind) String() string {
	switch k {
	case VerdictValid:
		return "valid"
	case VerdictNotFound:
		return "not_found"
	case VerdictRateLimited:
		return "rate_limited"
	case VerdictServiceError:
		return "service_error"
	case VerdictTransportError:
		return "transport_error"
	case VerdictCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("verdict(%d)", int(k))
	}
}

// Verdict is the result of validating one candidate.
type Verdict struct {
	// Kind is the classification.
	Kind VerdictKind

	// StatusCode is the HTTP status for service errors.
	StatusCode int

	// Message is the status text for service errors or the failure
	// description for transport errors.
	Message string
}

// Valid returns a VerdictValid verdict.
func Valid() Verdict { return Verdict{Kind: VerdictValid} }

// NotFound returns a VerdictNotFound verdict.
func NotFound() Verdict { return Verdict{Kind: VerdictNotFound} }

// RateLimited returns a VerdictRateLimited verdict.
func RateLimited() Verdict { return Verdict{Kind: VerdictRateLimited} }

// Cancelled returns a VerdictCancelled verdict.
func Cancelled() Verdict { return Verdict{Kind: VerdictCancelled} }

// ServiceError returns a VerdictServiceError verdict for an unexpected status.
func ServiceError(code int, text string) Verdict {
	return Verdict{Kind: VerdictServiceError, StatusCode: code, Message: text}
}

// TransportError returns a VerdictTransportError verdict.
func TransportError(message string) Verdict {
	return Verdict{Kind: VerdictTransportError, Message: message}
}
