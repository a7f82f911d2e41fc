// Package staging owns the scratch space where games are assembled before
// packaging.
//
// Each build attempt gets a directory under the scratch root holding the
// resolved RTP overlaid with the game's own files. The root also receives
// the intermediate artifacts of the archive toolchain. Everything under the
// root except the lock file is disposable: it is cleared before a batch
// starts and again after every attempt, so leftovers never leak into the
// next build.
package staging
