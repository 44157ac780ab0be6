package printer

import (
	"strings"
	"unicode/utf8"
)

// Layout lays out decorative fixed-width text. Every character counts as
// one column.
type Layout struct {
	Width int
}

// Rule returns char repeated to fill the width.
func (l Layout) Rule(char string) string {
	return strings.Repeat(char, max(l.Width, 0))
}

// Center pads text with spaces on both sides to fill the width, putting any
// odd column on the right. Text wider than the layout is left as-is.
func (l Layout) Center(text string) string {
	left, right := split(l.Width - textWidth(text))
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// CenterPad centers text between runs of char, keeping one space on each
// side of text.
func (l Layout) CenterPad(text string, char string) string {
	left, right := split(l.Width - textWidth(text) - 2)
	return strings.Repeat(char, left) + " " + text + " " + strings.Repeat(char, right)
}

// LeftOffsetPad writes offset copies of char, then text, then fills the rest
// of the width with char, keeping one space on each side of text.
func (l Layout) LeftOffsetPad(text string, offset int, char string) string {
	fill := max(l.Width-(textWidth(text)+offset+2), 0)
	return strings.Repeat(char, max(offset, 0)) + " " + text + " " + strings.Repeat(char, fill)
}

// HeadBlock sandwiches text between two rules of char. Text is either
// centered or indented by three spaces.
func (l Layout) HeadBlock(text string, char string, centered bool) string {
	hr := l.Rule(char)
	if centered {
		return hr + "\n" + l.Center(text) + "\n" + hr
	}
	return hr + "\n   " + text + "\n" + hr
}

// Indent prefixes every line of text containing non-whitespace with n
// spaces.
func Indent(text string, n int) string {
	if n <= 0 {
		return text
	}
	prefix := strings.Repeat(" ", n)
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}

// split divides n columns of padding, clamped to zero, into a left share
// rounded down and a right share rounded up.
func split(n int) (left, right int) {
	n = max(n, 0)
	return n / 2, n - n/2
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
