// Package style translates symbolic color and style names into ANSI escape
// sequences for styled terminal output, and parses the bracket-tag markup
// used to annotate text with those names.
package style

import (
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	escape = "\x1b["
	reset  = "\x1b[0m"
)

// The eight base colors, in SGR order. Each also has a bright variant named
// with a "2" suffix (e.g. "red2").
var baseColors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var styleNames = []string{"bold", "lite", "italic", "underline", "blink", "reverse"}

var (
	colorCodes = buildColorCodes()
	styleCodes = map[string]color.Attribute{
		"bold":      color.Bold,
		"lite":      color.Faint,
		"italic":    color.Italic,
		"underline": color.Underline,
		"blink":     color.BlinkSlow,
		"reverse":   color.ReverseVideo,
	}
)

func buildColorCodes() map[string]color.Attribute {
	codes := make(map[string]color.Attribute, 2*len(baseColors))
	for i, name := range baseColors {
		codes[name] = color.FgBlack + color.Attribute(i)
		codes[name+"2"] = color.FgHiBlack + color.Attribute(i)
	}
	return codes
}

// Colors returns all 16 recognized color names, each base color followed by
// its bright variant.
func Colors() []string {
	names := make([]string, 0, 2*len(baseColors))
	for _, name := range baseColors {
		names = append(names, name, name+"2")
	}
	return names
}

// Styles returns all recognized style names.
func Styles() []string {
	return slices.Clone(styleNames)
}

// IsColor reports whether name is a recognized color name.
func IsColor(name string) bool {
	_, ok := colorCodes[name]
	return ok
}

// IsStyle reports whether name is a recognized style name.
func IsStyle(name string) bool {
	_, ok := styleCodes[name]
	return ok
}

// Style renders text with ANSI escape sequences, or leaves it untouched when
// styling is disabled.
type Style struct {
	enabled bool
}

// New creates a new [Style] with ANSI escape sequences explicitly enabled or
// disabled.
func New(enabled bool) *Style {
	return &Style{enabled: enabled}
}

// Enabled reports whether s emits escape sequences.
func (s *Style) Enabled() bool {
	return s.enabled
}

// Wrap wraps text in a single SGR sequence made of the given color (which
// may be empty) followed by the given styles, and a trailing reset.
//
// Text is returned as-is if styling is disabled or there is nothing to
// apply. Unknown names produce an [*InvalidStyleNameError].
func (s *Style) Wrap(text string, colorName string, styles []string) (string, error) {
	if !s.enabled || (colorName == "" && len(styles) == 0) {
		return text, nil
	}
	codes := make([]string, 0, len(styles)+1)
	if colorName != "" {
		attr, ok := colorCodes[colorName]
		if !ok {
			return "", &InvalidStyleNameError{Kind: "color", Name: colorName}
		}
		codes = append(codes, strconv.Itoa(int(attr)))
	}
	for _, name := range styles {
		attr, ok := styleCodes[name]
		if !ok {
			return "", &InvalidStyleNameError{Kind: "style", Name: name}
		}
		codes = append(codes, strconv.Itoa(int(attr)))
	}
	return escape + strings.Join(codes, ";") + "m" + text + reset, nil
}

// Render renders a single [Segment].
func (s *Style) Render(seg Segment) (string, error) {
	return s.Wrap(seg.Text, seg.Color, seg.Styles)
}

// Annotate parses text written in the multi-tag markup understood by
// [Segments] and renders the result.
func (s *Style) Annotate(text string) (string, error) {
	segments, err := Segments(text)
	if err != nil {
		return "", err
	}
	return s.RenderAll(segments)
}

// RenderAll renders and concatenates segments in order.
func (s *Style) RenderAll(segments []Segment) (string, error) {
	var b strings.Builder
	for _, seg := range segments {
		out, err := s.Render(seg)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}
