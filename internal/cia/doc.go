// Package cia drives the external 3DS toolchain that turns a staged game
// tree into an installable CIA archive.
//
// A build is a fixed five-step sequence: banner asset, SMDH icon/metadata
// asset, romfs image, RSF spec instantiation, and final archive assembly.
// Failures identify the step by position and name so reports can point at
// the exact tool that broke.
package cia
