package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey-austin/conwrite/internal/adapters/clock"
	"github.com/mikey-austin/conwrite/internal/adapters/config"
	"github.com/mikey-austin/conwrite/internal/adapters/idgen"
	"github.com/mikey-austin/conwrite/internal/adapters/output"
	"github.com/mikey-austin/conwrite/internal/core"
	"github.com/mikey-austin/conwrite/internal/logging"
	"github.com/mikey-austin/conwrite/internal/menu"
	"github.com/mikey-austin/conwrite/internal/ports"
	"github.com/mikey-austin/conwrite/pkg/console"
)

type app struct {
	console *console.Console
	service core.Service
	printer output.Printer
	logger  *zap.Logger
	config  config.Config
	color   bool
}

// environment holds the process resources commands touch outside the console.
type environment struct {
	consoleOpts []console.Option
	prompter    ports.Prompter
	stdin       io.Reader
	isTerminal  func(fd uintptr) bool
}

func defaultEnvironment() environment {
	return environment{
		prompter: menu.PTermPrompter{},
		stdin:    os.Stdin,
		isTerminal: func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

func main() {
	root := newRootCommand(defaultEnvironment())
	if err := root.Execute(); err != nil {
		_ = console.WriteLine("conw: "+err.Error(), console.Stderr)
		os.Exit(core.ExitCode(err))
	}
}

func newRootCommand(env environment) *cobra.Command {
	root := &cobra.Command{
		Use:           "conw",
		Short:         "Write text straight to stdout or stderr",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	base := console.New(env.consoleOpts...)
	root.SetOut(base.Writer(console.Stdout))
	root.SetErr(base.Writer(console.Stderr))

	var (
		configPath   string
		jsonOut      bool
		noColor      bool
		verbose      bool
		logLevel     string
		logFormat    string
		stderrPolicy string
	)

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output and debug logging")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console|json)")
	root.PersistentFlags().StringVar(&stderrPolicy, "stderr-policy", "", "stderr failure policy (surface|ignore)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return core.WrapError(core.ExitUsage, "load config", err)
		}
		if stderrPolicy == "" {
			stderrPolicy = cfg.StderrPolicy
		}
		policy, err := console.ParsePolicy(stderrPolicy)
		if err != nil {
			return core.UsageError(err.Error())
		}
		con := console.New(append(env.consoleOpts, console.WithPolicy(policy))...)

		color := cfg.ColorEnabled() && !noColor && env.isTerminal(os.Stdout.Fd())
		if !color {
			pterm.DisableColor()
		}

		if logLevel == "" {
			logLevel = cfg.Log.Level
		}
		if verbose && logLevel == "" {
			logLevel = "debug"
		}
		if logFormat == "" {
			logFormat = cfg.Log.Format
		}
		logger := logging.NewLogger(logging.LogConfig{
			Level:  logLevel,
			Format: logFormat,
			UTC:    cfg.Log.UTC,
			Color:  color,
		}, con.Writer(console.Stderr)).With(zap.String("run", idgen.Generator{}.NewID()))

		service := core.Service{
			Console: con,
			Clock:   clock.Clock{UTC: cfg.Log.UTC},
			Logger:  logger,
		}

		var printer output.Printer
		if jsonOut {
			printer = output.JSONPrinter{Console: con}
		} else {
			printer = output.HumanPrinter{Console: con, Color: color, Verbose: verbose}
		}

		logger.Debug("conw starting",
			zap.String("command", cmd.Name()),
			zap.String("stderr_policy", policy.String()),
			zap.Bool("color", color),
			zap.Bool("json", jsonOut),
		)

		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, &app{
			console: con,
			service: service,
			printer: printer,
			logger:  logger,
			config:  cfg,
			color:   color,
		}))
		return nil
	}

	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app := fromContext(cmd); app != nil {
			_ = app.logger.Sync()
		}
	}

	root.AddCommand(writeCommand(env))
	root.AddCommand(demoCommand())
	root.AddCommand(menuCommand(env))

	return root
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	val := cmd.Context().Value(appKey{})
	if val == nil {
		return nil
	}
	return val.(*app)
}
