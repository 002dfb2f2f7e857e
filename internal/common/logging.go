package common

import (
	"io"
	"log"
	"os"
)

// NewLogger returns a stderr logger tagged with prefix. When verbose is false
// the logger discards everything.
func NewLogger(prefix string, verbose bool) *log.Logger {
	if !verbose {
		return Discard()
	}
	return log.New(os.Stderr, prefix+": ", log.LstdFlags|log.LUTC)
}

// Discard returns a logger that drops all output.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
