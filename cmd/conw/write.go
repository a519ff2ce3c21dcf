package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikey-austin/conwrite/internal/core"
	"github.com/mikey-austin/conwrite/pkg/console"
)

func writeCommand(env environment) *cobra.Command {
	var (
		streamName string
		newline    bool
		framed     bool
		fromStdin  bool
	)

	cmd := &cobra.Command{
		Use:   "write [text...]",
		Short: "Write text to a standard stream without buffering",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)

			text := strings.Join(args, " ")
			if fromStdin {
				if len(args) > 0 {
					return core.UsageError("--stdin cannot be combined with text arguments")
				}
				data, err := io.ReadAll(env.stdin)
				if err != nil {
					return core.WrapError(core.ExitRuntime, "read stdin", err)
				}
				text = string(data)
			}

			if streamName == "" {
				streamName = app.config.Stream
			}
			stream, err := console.ParseStream(streamName)
			if err != nil {
				return core.UsageError(err.Error())
			}

			result, err := app.service.Write(core.WriteRequest{
				Text:   text,
				Stream: stream,
				Mode:   core.ParseMode(newline, framed),
			})
			if err != nil {
				return err
			}
			return app.printer.Print(result)
		},
	}

	cmd.Flags().StringVarP(&streamName, "stream", "s", "", "target stream (stdout|stderr)")
	cmd.Flags().BoolVarP(&newline, "newline", "n", false, "append a newline")
	cmd.Flags().BoolVar(&framed, "framed", false, "surround text with newlines")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read text from stdin")

	return cmd
}
