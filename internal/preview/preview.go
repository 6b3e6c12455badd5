// Package preview renders Tabletop Simulator description markup for a
// terminal. TTS understands [b], [i], [RRGGBB] and [-]; anything else in
// square brackets, such as "[+1]" loyalty costs, is printed as is.
package preview

import (
	"fmt"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
)

const reset = "\x1b[0m"

type style struct {
	bold   bool
	italic bool
	colors []colorful.Color
}

func (s style) plain() bool {
	return !s.bold && !s.italic && len(s.colors) == 0
}

// sgr returns the escape sequence that switches the terminal to s
func (s style) sgr() string {
	var b strings.Builder
	b.WriteString(reset)
	if s.bold {
		fmt.Fprintf(&b, "\x1b[%dm", colorize.Bold)
	}
	if s.italic {
		fmt.Fprintf(&b, "\x1b[%dm", colorize.Italic)
	}
	if n := len(s.colors); n > 0 {
		r, g, bl := s.colors[n-1].RGB255()
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", r, g, bl)
	}
	return b.String()
}

// apply updates s for a markup tag, reporting false when tag is not one
func (s *style) apply(tag string) bool {
	switch tag {
	case "b":
		s.bold = true
	case "/b":
		s.bold = false
	case "i":
		s.italic = true
	case "/i":
		s.italic = false
	case "-":
		if len(s.colors) > 0 {
			s.colors = s.colors[:len(s.colors)-1]
		}
	default:
		if len(tag) != 6 {
			return false
		}
		c, err := colorful.Hex("#" + tag)
		if err != nil {
			return false
		}
		s.colors = append(s.colors, c)
	}
	return true
}

// Render converts markup to ANSI escapes. When colour output is disabled
// (colorize.NoColor, e.g. not a terminal or NO_COLOR set) the tags are
// stripped instead.
func Render(markup string) string {
	return render(markup, !colorize.NoColor)
}

// Strip removes markup tags, leaving the visible text
func Strip(markup string) string {
	return render(markup, false)
}

func render(markup string, ansi bool) string {
	var (
		out strings.Builder
		st  style
	)

	rest := markup
	for {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			out.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], ']')
		if end < 0 {
			out.WriteString(rest)
			break
		}
		end += open

		if inner := strings.IndexByte(rest[open+1:end], '['); inner >= 0 {
			out.WriteString(rest[:open+1+inner])
			rest = rest[open+1+inner:]
			continue
		}

		out.WriteString(rest[:open])
		if st.apply(rest[open+1 : end]) {
			if ansi {
				if st.plain() {
					out.WriteString(reset)
				} else {
					out.WriteString(st.sgr())
				}
			}
		} else {
			out.WriteString(rest[open : end+1])
		}
		rest = rest[end+1:]
	}

	if ansi && !st.plain() {
		out.WriteString(reset)
	}
	return out.String()
}

// Wrap wraps text to width visible columns. Existing line breaks are kept,
// and ANSI escapes do not count toward the width.
func Wrap(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	for _, para := range strings.Split(text, "\n") {
		result = append(result, wrapLine(para, width)...)
	}
	return result
}

func wrapLine(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		result  []string
		current string
		visible int
	)
	for _, word := range words {
		w := visibleWidth(word)
		switch {
		case current == "":
			current, visible = word, w
		case visible+1+w <= width:
			current += " " + word
			visible += 1 + w
		default:
			result = append(result, current)
			current, visible = word, w
		}
	}
	return append(result, current)
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
