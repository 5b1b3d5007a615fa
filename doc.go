// Package rds decodes a stream of raw 16-bit RDS/RBDS blocks into a
// consolidated, validated snapshot of the currently tuned station: program
// identification, program service name, radio text, program type, date and
// time, alternative frequencies, open data announcements and TMC (Traffic
// Message Channel) messages.
//
// The decoder is a direct descendant of v4l2-rds-ctl's libv4l2rds: blocks
// arrive one at a time from a tuner/demodulator, are reassembled into groups
// by a four-state machine, and decoded by one dispatcher per group type.
// Fields that can't tolerate a single corrupted reception (PI, PTY, ECC, LC,
// PS characters, PTYN halves, the date/time MJD, TMC groups) are only
// published once the same value has been received twice in a row.
//
// Decoder is single-threaded and synchronous: Add returns once any group it
// completes has been fully decoded. There is no internal goroutine, no
// cancellation and no suspension; concurrent callers must serialize
// externally.
package rds
