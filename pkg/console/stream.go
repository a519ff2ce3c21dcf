package console

import (
	"fmt"
	"strings"
)

// Stream selects a standard output channel.
type Stream int

const (
	// Stdout is file descriptor 1.
	Stdout Stream = iota + 1
	// Stderr is file descriptor 2.
	Stderr
)

// FD returns the conventional descriptor for the stream.
func (s Stream) FD() int {
	switch s {
	case Stdout:
		return 1
	case Stderr:
		return 2
	default:
		return -1
	}
}

func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("stream(%d)", int(s))
	}
}

// Valid reports whether s is a known stream.
func (s Stream) Valid() bool {
	return s == Stdout || s == Stderr
}

// ParseStream parses "stdout" or "stderr". Empty input means stdout.
func ParseStream(value string) (Stream, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "stdout", "out", "1":
		return Stdout, nil
	case "stderr", "err", "2":
		return Stderr, nil
	default:
		return 0, fmt.Errorf("unknown stream %q (want stdout|stderr)", value)
	}
}

// Policy decides which stream failures are reported to the caller.
type Policy int

const (
	// SurfaceAll reports failures on both streams.
	SurfaceAll Policy = iota
	// IgnoreStderr drops stderr failures and only reports stdout failures.
	IgnoreStderr
)

func (p Policy) String() string {
	if p == IgnoreStderr {
		return "ignore"
	}
	return "surface"
}

// ParsePolicy parses "surface" or "ignore". Empty input means surface.
func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "surface", "surface-all", "all":
		return SurfaceAll, nil
	case "ignore", "ignore-stderr":
		return IgnoreStderr, nil
	default:
		return 0, fmt.Errorf("unknown stderr policy %q (want surface|ignore)", value)
	}
}
