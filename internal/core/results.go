package core

import "github.com/mikey-austin/conwrite/pkg/console"

// WriteMode selects how text is framed before it is written.
type WriteMode string

// Write modes.
const (
	ModeRaw    WriteMode = "raw"
	ModeLine   WriteMode = "line"
	ModeFramed WriteMode = "framed"
)

// WriteRequest describes one write.
type WriteRequest struct {
	Text   string
	Stream console.Stream
	Mode   WriteMode
}

// WriteResult reports a completed write.
type WriteResult struct {
	Stream string    `json:"stream"`
	Mode   WriteMode `json:"mode"`
	Bytes  int       `json:"bytes"`
	At     int64     `json:"at"`
}

// DemoResult reports the writes made by the demo.
type DemoResult struct {
	Writes []WriteResult `json:"writes"`
}

// MenuResult holds the outcome of the menu prompt.
type MenuResult struct {
	Choice  string `json:"choice"`
	Tone    string `json:"tone"`
	Message string `json:"message"`
}
