package output

import (
	"encoding/json"

	"github.com/mikey-austin/conwrite/internal/ports"
	"github.com/mikey-austin/conwrite/pkg/console"
)

// JSONPrinter prints JSON to stdout.
type JSONPrinter struct {
	Console ports.Console
}

// Print renders JSON output.
func (p JSONPrinter) Print(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return p.Console.WriteLine(string(payload), console.Stdout)
}
