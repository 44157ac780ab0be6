// Package printer prints styled, headered, and indented text to a terminal.
//
// A [Printer] tracks two pieces of state across calls: whether the last
// thing printed was followed by a blank line, and the current section
// depth. Headers, rules, and object dumps are spaced with blank lines
// automatically, and plain text printed inside a section is indented by
// four spaces per level.
//
// Text may carry inline styling in bracket tags, see [Printer.P] and
// [Printer.PP]. A Printer is not safe for concurrent use; printers share no
// state, so use one per goroutine.
package printer

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/mccutchen/styledterm/style"
)

// indentWidth is the number of spaces per section level.
const indentWidth = 4

// Format selects the color and styles for a single print. A zero Format
// lets [Printer.P] read styling from a leading tag.
type Format struct {
	Color  string
	Styles []string
	// Bold adds the bold style if it is not already present.
	Bold bool
}

func (f Format) empty() bool {
	return f.Color == "" && len(f.Styles) == 0
}

// Option customizes a [Printer].
type Option func(*Printer)

// WithWidth forces the layout width, skipping the terminal query.
func WithWidth(width int) Option {
	return func(p *Printer) {
		p.forcedWidth = &width
	}
}

// WithWidthSource sets where the terminal width is queried from. By default
// it is the terminal connected to the output, if any.
func WithWidthSource(src WidthSource) Option {
	return func(p *Printer) {
		p.widthSource = src
	}
}

// WithStyles enables or disables ANSI escape sequences. Enabled by default.
func WithStyles(enabled bool) Option {
	return func(p *Printer) {
		p.style = style.New(enabled)
	}
}

// WithAutoNewlines enables or disables the blank lines printed around
// headers, rules, and object dumps. Enabled by default.
func WithAutoNewlines(enabled bool) Option {
	return func(p *Printer) {
		p.autoNewlines = enabled
	}
}

// WithHeaderColor sets the default header color.
func WithHeaderColor(hc HeaderColor) Option {
	return func(p *Printer) {
		p.headerColor = hc
	}
}

// WithCenteredHeaders sets whether headers are centered by default.
func WithCenteredHeaders(centered bool) Option {
	return func(p *Printer) {
		p.centerHeaders = centered
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Printer) {
		p.logger = logger
	}
}

// Printer writes styled lines to an output sink.
type Printer struct {
	out         io.Writer
	style       *style.Style
	logger      *slog.Logger
	width       int
	forcedWidth *int
	widthSource WidthSource

	autoNewlines   bool
	lastHadNewline bool
	indentLevel    int
	suppressIndent bool

	headerColor   HeaderColor
	centerHeaders bool
}

// New creates a [Printer] writing to out. The layout width is resolved once,
// here: a forced width wins, then the width source, then [DefaultWidth].
func New(out io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:          out,
		style:        style.New(true),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		autoNewlines: true,
		widthSource:  TerminalWidth{Out: out},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.width = p.resolveWidth()
	return p
}

func (p *Printer) resolveWidth() int {
	if p.forcedWidth != nil {
		p.logger.Debug("printer: using forced width", "width", *p.forcedWidth)
		return *p.forcedWidth
	}
	width, err := p.widthSource.Width()
	if err != nil || width <= 0 {
		p.logger.Debug("printer: could not determine terminal width, using default", "width", DefaultWidth, "error", err)
		return DefaultWidth
	}
	p.logger.Debug("printer: using terminal width", "width", width)
	return width
}

// Width returns the layout width.
func (p *Printer) Width() int {
	return p.width
}

// Layout returns the layout primitives for the printer's width.
func (p *Printer) Layout() Layout {
	return p.layout()
}

func (p *Printer) layout() Layout {
	return Layout{Width: p.width}
}

// Style returns the printer's style renderer.
func (p *Printer) Style() *style.Style {
	return p.style
}

// IndentLevel returns the current section depth.
func (p *Printer) IndentLevel() int {
	return p.indentLevel
}

// SetHeaderColor changes the default header color.
func (p *Printer) SetHeaderColor(hc HeaderColor) {
	p.headerColor = hc
}

// SetCenteredHeaders changes whether headers are centered by default.
func (p *Printer) SetCenteredHeaders(centered bool) {
	p.centerHeaders = centered
}

// NL prints an empty line.
func (p *Printer) NL() error {
	return p.write("")
}

// P prints a line of text. The text may begin with a single tag naming a
// color and styles, e.g. "[red bold]Pay Attention!"; unknown names in the
// tag are ignored.
func (p *Printer) P(text string) error {
	return p.print(text, Format{}, true)
}

// PF prints a line of text with an explicit format. A zero format behaves
// like [Printer.P].
func (p *Printer) PF(text string, f Format) error {
	return p.print(text, f, true)
}

// Color prints text in the named color.
func (p *Printer) Color(name string, text string) error {
	if !style.IsColor(name) {
		return &style.InvalidStyleNameError{Kind: "color", Name: name}
	}
	return p.print(text, Format{Color: name}, false)
}

// PP prints text annotated with any number of inline tags, e.g.
// "From [green]here[/] to [red]there[/] we go". Unknown tags produce a
// [*style.UnknownFormatCodeError] and nothing is printed.
func (p *Printer) PP(annotated string) error {
	segments, err := style.Segments(annotated)
	if err != nil {
		return err
	}
	return p.PS(segments)
}

// PS prints already-parsed segments as one line.
func (p *Printer) PS(segments []style.Segment) error {
	text, err := p.style.RenderAll(segments)
	if err != nil {
		return err
	}
	return p.emit(p.indent(text))
}

// print styles and writes text. With a zero format and parseTag set, a
// leading tag in text supplies the styling.
func (p *Printer) print(text string, f Format, parseTag bool) error {
	colorName, styles := f.Color, slices.Clone(f.Styles)
	if parseTag && f.empty() {
		text, colorName, styles = style.ParseLeadingTag(text)
	}
	if f.Bold && !slices.Contains(styles, "bold") {
		styles = append(styles, "bold")
	}
	out, err := p.style.Wrap(text, colorName, styles)
	if err != nil {
		return err
	}
	return p.emit(p.indent(out))
}

func (p *Printer) indent(text string) string {
	if p.suppressIndent || p.indentLevel == 0 {
		return text
	}
	return Indent(text, indentWidth*p.indentLevel)
}

// emit writes a line of content, which is not followed by a blank line.
func (p *Printer) emit(line string) error {
	if err := p.write(line); err != nil {
		return err
	}
	p.lastHadNewline = false
	return nil
}

func (p *Printer) write(line string) error {
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return fmt.Errorf("printer: failed to write output: %w", err)
	}
	return nil
}

// block prints render's output as a block set apart by blank lines, when
// auto newlines are enabled. Headers are never indented.
func (p *Printer) block(header bool, render func() error) error {
	if p.autoNewlines && !p.lastHadNewline {
		if err := p.write(""); err != nil {
			return err
		}
	}
	if header {
		prev := p.suppressIndent
		p.suppressIndent = true
		defer func() { p.suppressIndent = prev }()
	}
	if err := render(); err != nil {
		return err
	}
	if p.autoNewlines {
		if err := p.write(""); err != nil {
			return err
		}
		p.lastHadNewline = true
	}
	return nil
}

// Line prints a full-width rule of char, "-" if empty.
func (p *Printer) Line(char string, f Format) error {
	if char == "" {
		char = "-"
	}
	return p.block(false, func() error {
		return p.print(p.layout().Rule(char), f, false)
	})
}
