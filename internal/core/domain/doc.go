// Package domain defines the core business entities for the keyword solver.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LetterSet: The normalised candidate letters for one keyword position
//   - LetterSets: The six positions of a puzzle, indexed by Position
//   - Odometer: Lazy enumeration of every candidate keyword
//   - Verdict: The classified answer of the word oracle for one candidate
//   - Outcome: The single terminal result of a search
//   - Progress: A candidate that was tried and rejected
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
