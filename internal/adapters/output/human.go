package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/pterm/pterm"

	"github.com/mikey-austin/conwrite/internal/core"
	"github.com/mikey-austin/conwrite/internal/ports"
	"github.com/mikey-austin/conwrite/pkg/console"
)

// HumanPrinter prints human-readable output.
type HumanPrinter struct {
	Console ports.Console
	Color   bool
	Verbose bool
}

// Print renders human output.
func (p HumanPrinter) Print(v any) error {
	switch data := v.(type) {
	case core.WriteResult:
		return p.printWrite(data)
	case core.DemoResult:
		return p.printDemo(data)
	case core.MenuResult:
		return p.printMenu(data)
	default:
		return p.Console.WriteLine("ok", console.Stdout)
	}
}

// Write summaries go to stderr so stdout holds only the payload.
func (p HumanPrinter) printWrite(result core.WriteResult) error {
	if !p.Verbose {
		return nil
	}
	line := fmt.Sprintf("wrote %d bytes to %s (%s)", result.Bytes, result.Stream, result.Mode)
	return p.Console.WriteLine(line, console.Stderr)
}

func (p HumanPrinter) printDemo(result core.DemoResult) error {
	if !p.Verbose {
		return nil
	}
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "STEP\tSTREAM\tMODE\tBYTES"); err != nil {
		return err
	}
	for idx, w := range result.Writes {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", idx+1, w.Stream, w.Mode, w.Bytes); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return p.Console.Write(buf.String(), console.Stderr)
}

func (p HumanPrinter) printMenu(result core.MenuResult) error {
	return p.Console.WriteLine(p.colorize(result.Tone, result.Message), console.Stdout)
}

func (p HumanPrinter) colorize(tone string, text string) string {
	if !p.Color {
		return text
	}
	switch tone {
	case "green":
		return pterm.Green(text)
	case "red":
		return pterm.Red(text)
	case "yellow":
		return pterm.Yellow(text)
	case "blue":
		return pterm.Blue(text)
	default:
		return text
	}
}
