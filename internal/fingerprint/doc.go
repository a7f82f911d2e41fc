// Package fingerprint computes content fingerprints for default-asset
// detection.
//
// A fingerprint is the IEEE CRC32 of a file rendered as 8 uppercase hex
// digits. Fingerprints are compared for equality against the table of
// placeholder assets that ship with ciapress; they are not used for
// integrity checking of untrusted input.
package fingerprint
