package style

import (
	"regexp"
	"slices"
	"strings"
)

// closeMarker is the tag content that ends a styled run.
const closeMarker = "/"

// Segment is a run of literal text and the styling to render it with. Plain
// segments have no color and no styles.
type Segment struct {
	Text   string
	Color  string
	Styles []string
}

// Styled reports whether the segment carries any styling.
func (s Segment) Styled() bool {
	return s.Color != "" || len(s.Styles) > 0
}

// ParseLeadingTag splits a single leading tag like "[red bold]" off the front
// of text, returning the remaining text plus the color and styles named in
// the tag.
//
// Tokens that are not color or style names are ignored. If several color
// names are given the last one wins. Text without a leading, closed tag is
// returned unchanged.
func ParseLeadingTag(text string) (rest string, colorName string, styles []string) {
	if !strings.HasPrefix(text, "[") {
		return text, "", nil
	}
	idx := strings.Index(text, "]")
	if idx < 0 {
		return text, "", nil
	}
	for _, token := range strings.Split(text[1:idx], " ") {
		if IsColor(token) {
			colorName = token
		}
		if IsStyle(token) {
			styles = append(styles, token)
		}
	}
	return text[idx+1:], colorName, styles
}

var tagPattern = regexp.MustCompile(`\[([^\[\]]*)\]`)

// Segments parses text annotated with inline tags, e.g.
//
//	From [green]here[/] to [red]there[/] we go
//	[red][bold]Pay Attention!
//
// A color tag opens a run; style tags add to the styles of the next run.
// Text inside an open run is buffered until the run is closed with [/] or
// the input ends, at which point it becomes one styled segment. Text outside
// a run becomes a plain segment. A later color tag inside an open run
// replaces its color.
//
// Any other bracketed content yields an [*UnknownFormatCodeError].
func Segments(text string) ([]Segment, error) {
	var (
		segments  []Segment
		pending   strings.Builder
		curColor  string
		curStyles []string
	)
	literal := func(part string) {
		if part == "" {
			return
		}
		if curColor == "" {
			segments = append(segments, Segment{Text: part})
			return
		}
		pending.WriteString(part)
	}
	flush := func() {
		if pending.Len() > 0 {
			segments = append(segments, Segment{
				Text:   pending.String(),
				Color:  curColor,
				Styles: slices.Clone(curStyles),
			})
		}
		pending.Reset()
	}

	last := 0
	for _, loc := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		literal(text[last:loc[0]])
		last = loc[1]

		code := text[loc[2]:loc[3]]
		switch {
		case code == closeMarker:
			flush()
			curColor = ""
			curStyles = nil
		case IsColor(code):
			curColor = code
		case IsStyle(code):
			curStyles = append(curStyles, code)
		default:
			return nil, &UnknownFormatCodeError{Code: code}
		}
	}
	literal(text[last:])
	flush()
	return segments, nil
}
