package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/conwrite/internal/core"
	"github.com/mikey-austin/conwrite/internal/menu"
	"github.com/mikey-austin/conwrite/pkg/console"
)

func menuCommand(env environment) *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Pick your destiny from an interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			if !env.isTerminal(os.Stdin.Fd()) {
				return core.UsageError("menu requires an interactive terminal")
			}
			if pageSize <= 0 {
				pageSize = app.config.Menu.PageSize
			}

			pterm.SetDefaultOutput(app.console.Writer(console.Stdout))
			banner, err := menu.Banner(app.color)
			if err != nil {
				return core.WrapError(core.ExitRuntime, "render banner", err)
			}

			result, err := menu.Run(app.console, env.prompter, menu.Options{
				Title:    app.config.Menu.Title,
				PageSize: pageSize,
				Banner:   banner,
			})
			if err != nil {
				return err
			}
			app.logger.Debug("menu choice", zap.String("choice", result.Choice), zap.String("tone", result.Tone))
			return app.printer.Print(result)
		},
	}
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "options shown per page")

	return cmd
}
