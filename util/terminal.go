package util

import (
	"io"

	"golang.org/x/term"
)

// DefaultWidth is the width assumed when the output is not a terminal
const DefaultWidth = 80

// Terminal interface for probing an output file descriptor
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// IsTerminal checks if fd is attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the dimensions of the terminal attached to fd
func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

type fileDescriptor interface {
	Fd() uintptr
}

// Probe reports whether w is an interactive terminal and the width to lay out text in.
// Writers which are not terminals get DefaultWidth.
func Probe(w io.Writer, terminal Terminal) (bool, int) {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	f, ok := w.(fileDescriptor)
	if !ok {
		return false, DefaultWidth
	}

	fd := int(f.Fd())
	if !terminal.IsTerminal(fd) {
		return false, DefaultWidth
	}

	width, _, err := terminal.GetSize(fd)
	if err != nil || width <= 0 {
		return true, DefaultWidth
	}

	return true, width
}
