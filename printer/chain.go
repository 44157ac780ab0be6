package printer

import (
	"errors"
	"fmt"

	"github.com/mccutchen/styledterm/style"
)

// ErrColorAlreadySet is reported when a [Chain] is given a second color.
var ErrColorAlreadySet = errors.New("color is already set")

// Chain builds up the styling for one line of text. Nothing is printed until
// one of its terminal methods ([Chain.Emit], [Chain.H1], ...) is called.
//
//	err := p.Chain("test1").Red().Bold().Emit()
//
// Errors from building the chain are reported by the terminal method.
type Chain struct {
	p      *Printer
	text   string
	color  string
	styles []string
	err    error
}

// Chain starts a [Chain] for text.
func (p *Printer) Chain(text string) *Chain {
	return &Chain{p: p, text: text}
}

// Color sets the chain's color. A chain holds at most one color.
func (c *Chain) Color(name string) *Chain {
	switch {
	case c.err != nil:
	case !style.IsColor(name):
		c.err = &style.InvalidStyleNameError{Kind: "color", Name: name}
	case c.color != "":
		c.err = fmt.Errorf("%w to %q, cannot set %q", ErrColorAlreadySet, c.color, name)
	default:
		c.color = name
	}
	return c
}

// Style adds a style to the chain.
func (c *Chain) Style(name string) *Chain {
	switch {
	case c.err != nil:
	case !style.IsStyle(name):
		c.err = &style.InvalidStyleNameError{Kind: "style", Name: name}
	default:
		c.styles = append(c.styles, name)
	}
	return c
}

// Black sets the color to black.
func (c *Chain) Black() *Chain { return c.Color("black") }

// Red sets the color to red.
func (c *Chain) Red() *Chain { return c.Color("red") }

// Green sets the color to green.
func (c *Chain) Green() *Chain { return c.Color("green") }

// Yellow sets the color to yellow.
func (c *Chain) Yellow() *Chain { return c.Color("yellow") }

// Blue sets the color to blue.
func (c *Chain) Blue() *Chain { return c.Color("blue") }

// Magenta sets the color to magenta.
func (c *Chain) Magenta() *Chain { return c.Color("magenta") }

// Cyan sets the color to cyan.
func (c *Chain) Cyan() *Chain { return c.Color("cyan") }

// White sets the color to white.
func (c *Chain) White() *Chain { return c.Color("white") }

// Bold adds the bold style.
func (c *Chain) Bold() *Chain { return c.Style("bold") }

// Lite adds the faint style.
func (c *Chain) Lite() *Chain { return c.Style("lite") }

// Italic adds the italic style.
func (c *Chain) Italic() *Chain { return c.Style("italic") }

// Underline adds the underline style.
func (c *Chain) Underline() *Chain { return c.Style("underline") }

// Blink adds the blink style.
func (c *Chain) Blink() *Chain { return c.Style("blink") }

// Reverse adds the reverse video style.
func (c *Chain) Reverse() *Chain { return c.Style("reverse") }

// Emit prints the chain's text as a plain line. The text is printed as-is,
// a leading tag in it is not parsed.
func (c *Chain) Emit() error {
	if c.err != nil {
		return c.err
	}
	return c.p.print(c.text, Format{Color: c.color, Styles: c.styles}, false)
}

// H1 prints the chain's text as a level 1 header in the chain's color.
func (c *Chain) H1() error { return c.header(H1) }

// H2 prints the chain's text as a level 2 header in the chain's color.
func (c *Chain) H2() error { return c.header(H2) }

// H3 prints the chain's text as a level 3 header in the chain's color.
func (c *Chain) H3() error { return c.header(H3) }

// H4 prints the chain's text as a level 4 header in the chain's color.
func (c *Chain) H4() error { return c.header(H4) }

// HF prints the chain's text as a flag header in the chain's color.
func (c *Chain) HF() error { return c.header(HF) }

// header ignores the chain's styles, headers have fixed styling.
func (c *Chain) header(kind HeaderKind) error {
	if c.err != nil {
		return c.err
	}
	return c.p.Header(kind, c.text, HeaderOpts{Color: c.color})
}
