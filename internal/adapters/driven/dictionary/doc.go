// Package dictionary implements the word oracle against the public
// dictionary API at dictionaryapi.dev.
//
// # Lookups
//
// Each call to [Client.Validate] issues exactly one GET request for the
// lowercased candidate appended to the configured base URL:
//
//	https://api.dictionaryapi.dev/api/v2/entries/en/{candidate}
//
// Only the status code is used. The body is drained and discarded:
//
//   - 200: the candidate is a word
//   - 404: the candidate is not a word
//   - 429: the service is throttling the caller
//   - anything else: a service error carrying the status code and text
//
// Network failures become transport errors. Cancellation of the request
// context always wins and becomes a cancelled verdict. No lookup is retried.
//
// # Rate Limiting
//
// The client keeps its own floor on the interval between outbound requests,
// independent of any pacing done by the caller:
//
//  1. Minimum spacing: a token bucket with a burst of one spaces requests by
//     at least the configured interval, across searches.
//
//  2. Cooldown: a 429 response carrying a Retry-After header holds back the
//     next request until the given time has passed.
//
// Both waits are cancellable through the request context.
package dictionary
