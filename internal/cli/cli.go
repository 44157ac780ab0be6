// Package cli implements the styledterm command line application.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	renameio "github.com/google/renameio/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mccutchen/styledterm/internal/slogctx"
	"github.com/mccutchen/styledterm/printer"
)

var colorModes = []string{"auto", "always", "never"}

// globalOpts holds the persistent flags shared by every command, and the
// printer configuration resolved from them before a command runs.
type globalOpts struct {
	width          int
	color          string
	noAutoNewlines bool
	headerColor    string
	center         bool
	configPath     string
	outPath        string
	verbose        bool

	printerOpts []printer.Option
	sink        io.Writer
	outBuf      *bytes.Buffer
}

// NewApp creates the styledterm application, ready to be run via [RunApp].
func NewApp(stdin io.Reader, stdout io.Writer, stderr io.Writer, getenv func(string) string, versionInfo string) *cobra.Command {
	opts := &globalOpts{}
	app := &cobra.Command{
		Use:   "styledterm",
		Short: "Print colored, styled, and headered text in the terminal",
		Long: `styledterm prints colored, styled, and headered text in the terminal.

Text may carry inline styling via bracket tags:

  [red bold]Pay Attention!                    (p: a single leading tag)
  From [green]here[/] to [red]there[/] we go   (print: any number of tags)

Colors: black red green yellow blue magenta cyan white, each with a bright
variant suffixed with 2 (e.g. red2). Styles: bold lite italic underline
blink reverse.`,
		Version:      versionInfo,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd, getenv)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.finish(cmd)
		},
	}
	app.SetIn(stdin)
	app.SetOut(stdout)
	app.SetErr(stderr)
	app.SetVersionTemplate("{{.Version}}\n")

	flags := app.PersistentFlags()
	flags.IntVarP(&opts.width, "width", "w", 0, "Layout width in columns (default: terminal width, or 80)")
	flags.StringVar(&opts.color, "color", "auto", "When to use colors and styles: auto, always, never (env: COLOR)")
	flags.BoolVar(&opts.noAutoNewlines, "no-autonewlines", false, "Do not print blank lines around headers, rules, and objects")
	flags.StringVar(&opts.headerColor, "header-color", "", "Default header color, e.g. green or H=blue2,H2=magenta2")
	flags.BoolVar(&opts.center, "center", false, "Center headers by default")
	flags.StringVar(&opts.configPath, "config", "", "Path to a TOML config file (env: STYLEDTERM_CONFIG)")
	flags.StringVarP(&opts.outPath, "out", "o", "", "Atomically write output to this file instead of stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	app.AddCommand(
		newPrintCmd(opts),
		newPCmd(opts),
		newHeaderCmd(opts),
		newRuleCmd(opts),
		newJSONCmd(opts),
		newYAMLCmd(opts),
		newRenderCmd(opts),
		newDemoCmd(opts),
	)
	return app
}

// RunApp runs the application with the given command line arguments.
func RunApp(app *cobra.Command, args []string) error {
	app.SetArgs(args)
	return app.Execute()
}

// prepare validates the persistent flags, merges in the config file, and
// resolves the printer configuration.
func (o *globalOpts) prepare(cmd *cobra.Command, getenv func(string) string) error {
	flags := cmd.Flags()

	if o.configPath == "" {
		o.configPath = getenv("STYLEDTERM_CONFIG")
	}
	var cfg fileConfig
	if o.configPath != "" {
		var err error
		if cfg, err = loadConfig(o.configPath); err != nil {
			return err
		}
	}
	cfg.applyTo(o, flags)

	if !flags.Changed("color") && cfg.Color == "" {
		if env := getenv("COLOR"); env != "" {
			o.color = env
		}
	}
	if !slices.Contains(colorModes, o.color) {
		return errors.New("--color must be one of: auto, always, never")
	}
	if o.width < 0 {
		return errors.New("--width/-w must not be negative")
	}

	headerColor, err := o.resolveHeaderColor(cfg, flags)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	cmd.SetContext(slogctx.New(cmd.Context(), logger))

	o.sink = cmd.OutOrStdout()
	if o.outPath != "" {
		o.outBuf = &bytes.Buffer{}
		o.sink = o.outBuf
	}

	styles := useStyles(o.color, getenv, cmd.OutOrStdout())
	if styles && o.color == "auto" && o.outPath != "" {
		slogctx.Warn(cmd.Context(), "cli: stdout is a terminal, output file will contain escape sequences", "file", o.outPath)
	}
	o.printerOpts = []printer.Option{
		printer.WithStyles(styles),
		printer.WithAutoNewlines(!o.noAutoNewlines),
		printer.WithHeaderColor(headerColor),
		printer.WithCenteredHeaders(o.center),
		printer.WithLogger(logger),
		printer.WithWidthSource(printer.TerminalWidth{Out: cmd.OutOrStdout()}),
	}
	if flags.Changed("width") || cfg.Width != nil {
		o.printerOpts = append(o.printerOpts, printer.WithWidth(o.width))
	}
	slogctx.Debug(cmd.Context(), "cli: resolved options",
		"command", cmd.Name(),
		"color", o.color,
		"config", o.configPath,
		"out", o.outPath,
	)
	return nil
}

func (o *globalOpts) resolveHeaderColor(cfg fileConfig, flags *pflag.FlagSet) (printer.HeaderColor, error) {
	if !flags.Changed("header-color") && len(cfg.HeaderColors) > 0 {
		hc, err := printer.HeaderColorFromMap(cfg.HeaderColors)
		if err != nil {
			return nil, fmt.Errorf("invalid header_colors in config file: %w", err)
		}
		return hc, nil
	}
	hc, err := printer.ParseHeaderColor(o.headerColor)
	if err != nil {
		return nil, fmt.Errorf("invalid --header-color: %w", err)
	}
	return hc, nil
}

// finish writes buffered output to the --out file, if any.
func (o *globalOpts) finish(cmd *cobra.Command) error {
	if o.outBuf == nil {
		return nil
	}
	slogctx.Debug(cmd.Context(), "cli: writing output file", "file", o.outPath, "bytes", o.outBuf.Len())
	if err := renameio.WriteFile(o.outPath, o.outBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to atomically write output file: %w", err)
	}
	return nil
}

// newPrinter creates a printer writing to the command's output sink.
func (o *globalOpts) newPrinter() *printer.Printer {
	return o.newPrinterTo(o.sink)
}

func (o *globalOpts) newPrinterTo(out io.Writer) *printer.Printer {
	return printer.New(out, o.printerOpts...)
}

// useStyles decides whether to emit ANSI escape sequences for the given
// --color mode. In auto mode, styles are used only when out is a terminal
// and NO_COLOR is unset.
func useStyles(mode string, getenv func(string) string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if fder, ok := out.(interface{ Fd() uintptr }); ok {
		fd := fder.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return false
}
