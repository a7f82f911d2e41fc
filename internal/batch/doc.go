// Package batch sequences the full packaging pipeline over one game or a
// directory of games.
//
// Each candidate runs through classification, asset and metadata
// validation, default-asset detection, RTP resolution, staging and the
// archive toolchain. Failures are converted into per-game results rather
// than propagated, so one broken game never stops the rest of a batch; the
// scratch space is cleared after every attempt. Diagnostics are printed to
// the report stream with paths relative to the batch root.
package batch
