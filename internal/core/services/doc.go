// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Solver is the search controller: a small state machine that moves
// between idle, validating and paced until it reaches a terminal outcome.
// SearchService runs solvers in the background and tracks their status.
package services
