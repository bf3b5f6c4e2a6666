// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - WordOracle: Validates one candidate keyword (dictionaryapi.dev over HTTP)
//   - Pacer: Waits between consecutive oracle calls
//   - StatusSink: Receives progress and the terminal outcome of a search
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
