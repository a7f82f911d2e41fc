// Package rtp resolves which runtime package, if any, gets bundled into a
// game's staged tree.
//
// RPG Maker games reference shared runtime assets (the RTP) instead of
// shipping them. The packager keeps locally extracted RTP copies in a
// catalog directory, one subdirectory per known release. Resolution matches
// a game's requested release against the catalog and falls back to a
// compatible English release of the same engine generation when the exact
// one is absent. Self-contained games and builds with RTP bundling switched
// off bypass the catalog entirely.
package rtp
