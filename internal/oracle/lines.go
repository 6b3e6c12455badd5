package oracle

import "strings"

// line is one entry of a block table: the text is emitted only when
// include is true.
type line struct {
	include bool
	text    string
}

func always(text string) line { return line{include: true, text: text} }

func when(cond bool, text string) line { return line{include: cond, text: text} }

// render joins the included lines with newlines
func render(lines ...line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.include {
			parts = append(parts, l.text)
		}
	}
	return strings.Join(parts, "\n")
}

// spaced joins the non-empty parts with single spaces
func spaced(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// text dereferences an optional field, absent becoming ""
func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
