// Package gameinfo classifies RPG Maker game directories and reads the
// packaging metadata they declare.
//
// A directory counts as a game when it holds an RPG_RT.ini project file
// (matched case-insensitively). Games destined for packaging additionally
// carry a 3DS/ directory with four fixed assets; gameinfo.cfg inside it
// names the CIA title ID, display title, author and the RTP the game was
// authored against. Validation collects every problem in a file before
// reporting, so a broken gameinfo.cfg is fixed in one round trip.
package gameinfo
