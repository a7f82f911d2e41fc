// Package textutil provides text processing utilities for output naming.
//
// The primary use cases are:
//   - Deriving filesystem-safe slugs from game display names for .cia
//     output files and staging directories
//   - Sanitizing arbitrary strings into lowercase tokens
//
// Slugs are ASCII-normalized: names are NFKD-decomposed so accented
// characters reduce to their base letters before unsafe characters are
// stripped.
package textutil
