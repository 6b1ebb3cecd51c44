// Package shared provides common utilities and test helpers used across
// the importcli codebase. It serves as a central location for shared
// functionality that doesn't belong to any specific domain or
// architectural layer.
//
// The testutil subpackage provides a buffering slog handler so tests can
// assert on structured log output without touching the global logger.
package shared
