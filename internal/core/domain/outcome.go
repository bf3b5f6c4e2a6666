package domain

import "fmt"

// OutcomeKind classifies the terminal result of a search.
type OutcomeKind int

// Outcome kinds.
const (
	// OutcomeFound means a candidate was confirmed as a word.
	OutcomeFound OutcomeKind = iota

	// OutcomeExhausted means every candidate was rejected.
	OutcomeExhausted

	// OutcomeRateLimited means the service throttled the search.
	OutcomeRateLimited

	// OutcomeServiceError means the service answered with an unexpected status.
	OutcomeServiceError

	// OutcomeTransportError means the service could not be reached.
	OutcomeTransportError

	// OutcomeCancelled means the caller cancelled the search.
	OutcomeCancelled

	// OutcomeInvalidInput means a letter set was empty. No request was made.
	OutcomeInvalidInput
)

// String returns the string representation.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeRateLimited:
		return "rate_limited"
	case OutcomeServiceError:
		return "service_error"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeInvalidInput:
		return "invalid_input"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the single terminal result of a search.
type Outcome struct {
	// Kind is the classification.
	Kind OutcomeKind

	// Keyword is the word that was found. Only set for OutcomeFound.
	Keyword string

	// StatusCode is the HTTP status. Only set for OutcomeServiceError.
	StatusCode int

	// Detail is the status text or transport failure description.
	Detail string

	// Attempts is the number of oracle calls the search issued.
	Attempts int
}

// Message returns the user-facing text for the outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeFound:
		return fmt.Sprintf("*** %s ***", o.Keyword)
	case OutcomeExhausted:
		return "No valid words found."
	case OutcomeRateLimited:
		return "Too many requests. Please try again in a few minutes."
	case OutcomeServiceError:
		return fmt.Sprintf("Error %d: %s. Please try again.", o.StatusCode, o.Detail)
	case OutcomeTransportError:
		return fmt.Sprintf("Error: %s. Please try again.", o.Detail)
	case OutcomeCancelled:
		return "Search cancelled."
	case OutcomeInvalidInput:
		return "All fields must contain at least one letter."
	default:
		return o.Kind.String()
	}
}

// Err maps the outcome to a domain error. Found returns nil.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeFound:
		return nil
	case OutcomeExhausted:
		return ErrNoMatch
	case OutcomeRateLimited:
		return ErrRateLimited
	case OutcomeServiceError:
		return fmt.Errorf("%w: %d %s", ErrServiceError, o.StatusCode, o.Detail)
	case OutcomeTransportError:
		return fmt.Errorf("%w: %s", ErrTransport, o.Detail)
	case OutcomeCancelled:
		return ErrCancelled
	case OutcomeInvalidInput:
		return ErrInvalidInput
	default:
		return fmt.Errorf("unknown outcome %d", int(o.Kind))
	}
}

// OutcomeFromVerdict reduces a terminating verdict for candidate into an
// outcome. It reports false for VerdictNotFound, the only verdict that does
// not end a search.
func OutcomeFromVerdict(candidate string, v Verdict) (Outcome, bool) {
	switch v.Kind {
	case VerdictValid:
		return Outcome{Kind: OutcomeFound, Keyword: candidate}, true
	case VerdictNotFound:
		return Outcome{}, false
	case VerdictRateLimited:
		return Outcome{Kind: OutcomeRateLimited}, true
	case VerdictServiceError:
		return Outcome{Kind: OutcomeServiceError, StatusCode: v.StatusCode, Detail: v.Message}, true
	case VerdictTransportError:
		return Outcome{Kind: OutcomeTransportError, Detail: v.Message}, true
	default:
		return Outcome{Kind: OutcomeCancelled}, true
	}
}

// Progress reports a candidate that was tried and rejected.
type Progress struct {
	// Candidate is the keyword that is not a word.
	Candidate string

	// Attempt is the 1-based number of the oracle call.
	Attempt int

	// Total is the number of candidates in the search, saturated at
	// MaxCombinations.
	Total uint64
}

// Message returns the user-facing text for the progress update.
func (p Progress) Message() string {
	return fmt.Sprintf("%s not found (%d/%d)", p.Candidate, p.Attempt, p.Total)
}

// SearchHandle identifies a search started through the search service.
type SearchHandle string

// String returns the handle as a string.
func (h SearchHandle) String() string {
	return string(h)
}
