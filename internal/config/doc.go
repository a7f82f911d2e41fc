// Package config loads and validates the TOML configuration for ciapress.
//
// Configuration covers three concerns:
//   - Paths: the assets directory (defaults, ELF, RSF template, RTP catalog),
//     the scratch directory used for staging, and the CIA output directory.
//   - Toolchain: the external 3DS tool binaries and the EasyRPG player inputs.
//   - Logging: output format and level.
//
// Load applies defaults, expands ~ and relative paths, and validates the
// result so downstream components never re-check basic invariants.
package config
