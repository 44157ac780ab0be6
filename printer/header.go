package printer

import (
	"fmt"
	"strings"

	"github.com/mccutchen/styledterm/style"
)

// HeaderKind names a heading level.
type HeaderKind string

// Header kinds.
const (
	H1 HeaderKind = "H1"
	H2 HeaderKind = "H2"
	H3 HeaderKind = "H3"
	H4 HeaderKind = "H4"
	HF HeaderKind = "HF"
)

// genericKind is the catch-all key in a per-kind color mapping. Section
// titles are colored as this kind.
const genericKind HeaderKind = "H"

// footerColor is the HF color used when neither the caller nor the header
// color configuration picks one.
const footerColor = "black2"

// HeaderKinds returns every header kind.
func HeaderKinds() []HeaderKind {
	return []HeaderKind{H1, H2, H3, H4, HF}
}

// Valid reports whether k is a known header kind.
func (k HeaderKind) Valid() bool {
	switch k {
	case H1, H2, H3, H4, HF:
		return true
	default:
		return false
	}
}

// Align controls header placement.
type Align int

// Alignments. AlignDefault defers to the printer's centering setting.
const (
	AlignDefault Align = iota
	AlignCenter
	AlignLeft
)

// HeaderOpts customizes a single header.
type HeaderOpts struct {
	Align Align
	// Color overrides the configured header color.
	Color string
	// NoBold turns off the bold style H1-H4 use by default.
	NoBold bool
}

// HeaderColor is the default color configuration for headers: either a
// [SingleColor] used for every kind, or a [PerKindColor] mapping.
type HeaderColor interface {
	colorFor(kind HeaderKind) string
}

// SingleColor applies one color to every header kind.
type SingleColor string

func (c SingleColor) colorFor(HeaderKind) string {
	return string(c)
}

// PerKindColor maps header kinds to colors. Kinds missing from the map use
// Fallback, which may be empty.
type PerKindColor struct {
	Kinds    map[HeaderKind]string
	Fallback string
}

func (c PerKindColor) colorFor(kind HeaderKind) string {
	if name, ok := c.Kinds[kind]; ok {
		return name
	}
	return c.Fallback
}

// ResolveHeaderColor returns the color hc assigns to kind, or "" if hc is
// nil or assigns none.
func ResolveHeaderColor(hc HeaderColor, kind HeaderKind) string {
	if hc == nil {
		return ""
	}
	return hc.colorFor(kind)
}

// ParseHeaderColor parses a header color spec: either a single color name
// ("green") or a comma-separated list of KIND=color pairs
// ("H=blue2,H2=magenta2"), where the kind "H" sets the fallback. An empty
// spec yields a nil HeaderColor.
func ParseHeaderColor(spec string) (HeaderColor, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	if !strings.Contains(spec, "=") {
		if !style.IsColor(spec) {
			return nil, &style.InvalidStyleNameError{Kind: "color", Name: spec}
		}
		return SingleColor(spec), nil
	}
	pairs := make(map[string]string)
	for _, pair := range strings.Split(spec, ",") {
		kind, name, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("invalid header color pair %q, expected KIND=color", pair)
		}
		pairs[strings.TrimSpace(kind)] = strings.TrimSpace(name)
	}
	return HeaderColorFromMap(pairs)
}

// HeaderColorFromMap builds a [PerKindColor] from a map keyed by header kind
// name, where the key "H" sets the fallback.
func HeaderColorFromMap(m map[string]string) (HeaderColor, error) {
	hc := PerKindColor{Kinds: make(map[HeaderKind]string, len(m))}
	for key, name := range m {
		if !style.IsColor(name) {
			return nil, &style.InvalidStyleNameError{Kind: "color", Name: name}
		}
		kind := HeaderKind(key)
		switch {
		case kind == genericKind:
			hc.Fallback = name
		case kind.Valid():
			hc.Kinds[kind] = name
		default:
			return nil, fmt.Errorf("invalid header kind %q, expected one of H, H1, H2, H3, H4, HF", key)
		}
	}
	return hc, nil
}

// Header prints a header of the given kind.
//
// H1 and H2 print text between two full-width rules of "=" and "-". H3 and
// H4 print text on a single rule of "=" and "-". HF prints text in reverse
// video. Headers are never indented.
func (p *Printer) Header(kind HeaderKind, text string, opts HeaderOpts) error {
	var (
		l         = p.layout()
		centered  = p.centered(opts.Align)
		colorName = opts.Color
	)
	if colorName == "" {
		colorName = ResolveHeaderColor(p.headerColor, kind)
	}
	f := Format{Color: colorName, Bold: !opts.NoBold}

	var body string
	switch kind {
	case H1:
		body = l.HeadBlock(text, "=", centered)
	case H2:
		body = l.HeadBlock(text, "-", centered)
	case H3, H4:
		char := "="
		if kind == H4 {
			char = "-"
		}
		if centered {
			body = l.CenterPad(text, char)
		} else {
			body = l.LeftOffsetPad(text, 2, char)
		}
	case HF:
		if f.Color == "" {
			f.Color = footerColor
		}
		f.Styles = []string{"reverse"}
		f.Bold = false
		if centered {
			body = l.Center(text)
		} else {
			body = l.LeftOffsetPad(text, 2, " ")
		}
	default:
		panic("printer: invalid HeaderKind value: " + string(kind))
	}

	return p.block(true, func() error {
		return p.print(body, f, true)
	})
}

// H1 prints a level 1 header.
func (p *Printer) H1(text string) error { return p.Header(H1, text, HeaderOpts{}) }

// H2 prints a level 2 header.
func (p *Printer) H2(text string) error { return p.Header(H2, text, HeaderOpts{}) }

// H3 prints a level 3 header.
func (p *Printer) H3(text string) error { return p.Header(H3, text, HeaderOpts{}) }

// H4 prints a level 4 header.
func (p *Printer) H4(text string) error { return p.Header(H4, text, HeaderOpts{}) }

// HF prints a "flag" header: text on a reverse-video bar.
func (p *Printer) HF(text string) error { return p.Header(HF, text, HeaderOpts{}) }

func (p *Printer) centered(a Align) bool {
	switch a {
	case AlignDefault:
		return p.centerHeaders
	case AlignCenter:
		return true
	case AlignLeft:
		return false
	default:
		panic(fmt.Sprintf("printer: invalid Align value: %d", a))
	}
}
