package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mccutchen/styledterm/printer"
)

func newPrintCmd(o *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "print TEXT...",
		Short: "Print lines of text annotated with inline tags",
		Long: `Print each argument as a line of text annotated with any number of inline
tags. A color tag opens a styled run, style tags add to it, and [/] closes
it. A run left open at the end of the line is closed implicitly. Unknown
tags are an error.`,
		Example: `  styledterm print "From [green]here[/] to [red]there[/] we go"
  styledterm print "[red][bold]Pay Attention!"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := o.newPrinter()
			for _, arg := range args {
				if err := p.PP(arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPCmd(o *globalOpts) *cobra.Command {
	var (
		fg     string
		styles []string
		bold   bool
	)
	cmd := &cobra.Command{
		Use:   "p TEXT...",
		Short: "Print lines of text, styled by flags or a single leading tag",
		Long: `Print each argument as a line of text. Without --fg or --style, a leading
tag like "[red bold]" selects the color and styles; unknown names in it are
ignored.`,
		Example: `  styledterm p "[yellow2 bold]Part1"
  styledterm p --fg cyan --style underline "plain argument"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := o.newPrinter()
			f := printer.Format{Color: fg, Styles: styles, Bold: bold}
			for _, arg := range args {
				if err := p.PF(arg, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fg, "fg", "", "Text color")
	cmd.Flags().StringSliceVarP(&styles, "style", "s", nil, "Text style (repeatable)")
	cmd.Flags().BoolVarP(&bold, "bold", "b", false, "Bold text")
	return cmd
}

func newHeaderCmd(o *globalOpts) *cobra.Command {
	var (
		kind   string
		fg     string
		align  string
		noBold bool
	)
	cmd := &cobra.Command{
		Use:   "header TEXT",
		Short: "Print a header",
		Example: `  styledterm header "Example Set One"
  styledterm header -k H3 --align center --fg magenta2 "Example Set One"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k := printer.HeaderKind(strings.ToUpper(kind))
			if !k.Valid() {
				return fmt.Errorf("--kind/-k must be one of %s, got %q", strings.Join(headerKindNames(), ", "), kind)
			}
			a, err := parseAlign(align)
			if err != nil {
				return err
			}
			return o.newPrinter().Header(k, args[0], printer.HeaderOpts{
				Align:  a,
				Color:  fg,
				NoBold: noBold,
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "H1", "Header kind: H1, H2, H3, H4, HF")
	cmd.Flags().StringVar(&fg, "fg", "", "Header color (default: --header-color)")
	cmd.Flags().StringVar(&align, "align", "", `Header alignment: "center" or "left" (default: --center)`)
	cmd.Flags().BoolVar(&noBold, "no-bold", false, "Do not make the header bold")
	return cmd
}

func parseAlign(s string) (printer.Align, error) {
	switch s {
	case "":
		return printer.AlignDefault, nil
	case "center":
		return printer.AlignCenter, nil
	case "left":
		return printer.AlignLeft, nil
	default:
		return 0, fmt.Errorf(`--align must be one of "center" or "left", got %q`, s)
	}
}

func newRuleCmd(o *globalOpts) *cobra.Command {
	var (
		char string
		fg   string
		bold bool
	)
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Print a full-width horizontal rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.newPrinter().Line(char, printer.Format{Color: fg, Bold: bold})
		},
	}
	cmd.Flags().StringVar(&char, "char", "-", "Character to draw the rule with")
	cmd.Flags().StringVar(&fg, "fg", "", "Rule color")
	cmd.Flags().BoolVarP(&bold, "bold", "b", false, "Bold rule")
	return cmd
}

func newJSONCmd(o *globalOpts) *cobra.Command {
	var (
		indent int
		fg     string
	)
	cmd := &cobra.Command{
		Use:   "json [FILE]",
		Short: "Pretty-print a JSON document from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var v any
			if err := json.Unmarshal(data, &v); err != nil {
				return fmt.Errorf("failed to parse JSON: %w", err)
			}
			return o.newPrinter().PJSON(v, indent, printer.Format{Color: fg})
		},
	}
	cmd.Flags().IntVar(&indent, "indent", 4, "Spaces per indentation level (negative for compact output)")
	cmd.Flags().StringVar(&fg, "fg", "", "Text color")
	return cmd
}

func newYAMLCmd(o *globalOpts) *cobra.Command {
	var (
		indent int
		fg     string
	)
	cmd := &cobra.Command{
		Use:   "yaml [FILE]",
		Short: "Pretty-print a YAML document from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var v any
			if err := yaml.Unmarshal(data, &v); err != nil {
				return fmt.Errorf("failed to parse YAML: %w", err)
			}
			return o.newPrinter().PYAML(v, indent, printer.Format{Color: fg})
		},
	}
	cmd.Flags().IntVar(&indent, "indent", 2, "Spaces per indentation level")
	cmd.Flags().StringVar(&fg, "fg", "", "Text color")
	return cmd
}

// readInput reads the file named by the first arg, or stdin if there is no
// arg or it is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func headerKindNames() []string {
	var names []string
	for _, k := range printer.HeaderKinds() {
		names = append(names, string(k))
	}
	return names
}
