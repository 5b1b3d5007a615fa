package rds

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithLogger attaches a structured logger used to trace block and group
// acceptance/rejection at debug level. A nil logger (the default) disables
// tracing entirely; logging is never required for correct decoding.
func WithLogger(logger *log.Logger) Option {
	return func(d *Decoder) { d.logger = logger }
}

// WithID tags the decoder's log lines with id instead of a freshly
// generated UUID. Useful when a process drives several tuners and wants
// stable, caller-chosen identifiers in its logs.
func WithID(id string) Option {
	return func(d *Decoder) { d.id = id }
}

func newID() string {
	return uuid.NewString()
}
