package cli

import (
	"github.com/spf13/cobra"

	"github.com/mccutchen/styledterm/printer"
	"github.com/mccutchen/styledterm/style"
)

func newDemoCmd(o *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a tour of every color, style, header, and layout feature",
		Long: `Print a tour of every color, style, header, and layout feature.

The opening set of headers is printed twice with fixed settings: centered in
green, then left aligned with one color per header kind. Everything after it
follows --header-color, --center, and the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(o.newPrinter(), o.newPrinter())
		},
	}
}

// steps runs a sequence of printer calls, stopping at the first error.
type steps struct {
	err error
}

func (s *steps) do(fn func() error) {
	if s.err == nil {
		s.err = fn()
	}
}

// runDemo prints the header tour on tour, whose header settings it changes,
// and everything else on p.
func runDemo(p *printer.Printer, tour *printer.Printer) error {
	var s steps

	// headers, centered and then left aligned with per-kind colors
	tour.SetHeaderColor(printer.SingleColor("green"))
	for _, center := range []bool{true, false} {
		tour.SetCenteredHeaders(center)
		if !center {
			tour.SetHeaderColor(printer.PerKindColor{
				Kinds: map[printer.HeaderKind]string{
					printer.H2: "magenta2",
					printer.H3: "black2",
					printer.H4: "yellow2",
					printer.HF: "cyan2",
				},
				Fallback: "blue2",
			})
		}
		for _, kind := range printer.HeaderKinds() {
			s.do(func() error { return tour.Header(kind, "Example Set One", printer.HeaderOpts{}) })
		}
	}

	s.do(func() error { return p.H2("Colors") })
	for _, name := range style.Colors() {
		s.do(func() error { return p.Color(name, name) })
	}

	s.do(func() error { return p.H2("Styles") })
	for _, name := range style.Styles() {
		s.do(func() error { return p.PF(name, printer.Format{Styles: []string{name}}) })
	}

	s.do(func() error { return p.H2("Tags") })
	s.do(func() error { return p.P("[red bold]Pay Attention!") })
	s.do(func() error { return p.P("[yellow2 bold]Part1") })
	s.do(func() error { return p.PP("white [green]=>[/] [blue]blue[/] plain") })
	s.do(func() error { return p.PP("From [green]here[/] to [red]there[/] we go") })
	s.do(func() error { return p.PP("[cyan][underline]Underlined to the end") })

	s.do(func() error { return p.Chain("Heading 1").H1() })
	s.do(func() error { return p.Chain("test1").Red().Bold().Emit() })
	s.do(func() error { return p.Chain("test1").Cyan().Underline().Emit() })
	s.do(func() error { return p.Chain("test1").White().Italic().Underline().Emit() })
	s.do(func() error { return p.Chain("Heading 2").Red().H2() })
	s.do(func() error { return p.Chain("test2").Magenta().Lite().Emit() })
	s.do(func() error { return p.Chain("Heading 3").Green().H3() })
	s.do(func() error { return p.Chain("test3").Yellow().Italic().Underline().Emit() })
	s.do(func() error { return p.Chain("Heading 4").H4() })
	s.do(func() error { return p.Chain("test4").Emit() })
	s.do(func() error { return p.Chain("Heading F").HF() })
	s.do(func() error { return p.Chain("test5").Blink().Emit() })

	s.do(func() error { return p.H1("Sections") })
	s.do(func() error {
		return p.Section("With 1", func() error {
			if err := p.P("[blue2]Some stuff"); err != nil {
				return err
			}
			if err := p.Section("With 2", func() error { return p.P("[red2]Some stuff") }); err != nil {
				return err
			}
			return p.P("finish")
		})
	})
	s.do(func() error { return p.Line("-", printer.Format{}) })
	s.do(func() error { return demoNested(p, []string{"s1", "s2", "s3", "s4", "s5", "s6"}, "bottom") })
	s.do(func() error {
		return p.Section("s1b", func() error { return p.P("Back on top") })
	})

	sample := map[string]any{
		"name":   "styledterm",
		"colors": len(style.Colors()),
		"styles": style.Styles(),
	}
	s.do(func() error { return p.H2("Objects") })
	s.do(func() error { return p.PJSON(sample, 4, printer.Format{Color: "cyan"}) })
	s.do(func() error { return p.PYAML(sample, 2, printer.Format{Color: "yellow"}) })
	s.do(func() error { return p.PObj(sample, printer.Format{}) })
	s.do(func() error { return p.HF("End of demo") })
	return s.err
}

// demoNested opens one section per title, prints text at the deepest level,
// and closes them all again.
func demoNested(p *printer.Printer, titles []string, text string) error {
	if len(titles) == 0 {
		return p.P(text)
	}
	return p.Section(titles[0], func() error {
		return demoNested(p, titles[1:], text)
	})
}
