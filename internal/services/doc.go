// Package services defines shared utilities consumed by the build pipeline
// and the external toolchain integrations.
//
// Key responsibilities:
//   - Context helpers that stamp game names, stage names, and attempt
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across components.
//   - The Executor abstraction that makes external command invocation
//     testable without the 3DS toolchain installed.
package services
