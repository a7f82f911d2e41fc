// Package logging configures the slog loggers used across ciapress.
//
// Key responsibilities:
//   - Construct console or JSON handlers from logging options.
//   - Provide typed attribute helpers so call sites stay terse.
//   - Derive per-game and per-stage fields from context so every line
//     emitted during a build attempt carries its origin.
//
// The console handler prints one line per record with key=value pairs,
// which keeps batch output readable when dozens of games are processed.
package logging
