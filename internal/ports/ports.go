package ports

import "github.com/mikey-austin/conwrite/pkg/console"

//go:generate mockgen -destination=mock/ports.go -package=mock_ports github.com/mikey-austin/conwrite/internal/ports Console,Prompter

// Console writes text to a standard stream.
type Console interface {
	Write(text string, stream console.Stream) error
	WriteLine(text string, stream console.Stream) error
	WriteFramed(text string, stream console.Stream) error
}

// Prompter asks the user to pick one option.
type Prompter interface {
	Select(title string, options []string, pageSize int) (string, error)
}

// Clock returns the current unix time in seconds.
type Clock interface {
	NowUnix() int64
}

// IDGen returns unique correlation IDs.
type IDGen interface {
	NewID() string
}
