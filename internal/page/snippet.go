package page

import (
	"regexp"
	"strings"
)

// LineKind tells how snippet line is highlighted.
type LineKind string

// Line kinds.
const (
	LineHeader   LineKind = "header"
	LineListItem LineKind = "list"
	LineBlank    LineKind = "blank"
	LineText     LineKind = "text"
)

var inlineCodeRe = regexp.MustCompile("`[^`]+`")

// Segment is a part of a line. Code segments keep their backticks.
type Segment struct {
	Text string
	Code bool
}

// Line is a single highlighted snippet line.
type Line struct {
	Kind     LineKind
	Text     string
	Segments []Segment
}

// Snippet is markdown text prepared for display.
type Snippet struct {
	Raw   string
	Lines []Line
}

// NewSnippet parses markdown text.
func NewSnippet(md string) Snippet {
	return Snippet{
		Raw:   md,
		Lines: ParseSnippet(md),
	}
}

// ParseSnippet lightly highlights markdown without fully parsing it.
// Only headers, list items and inline code spans are recognized.
func ParseSnippet(md string) []Line {
	rawLines := strings.Split(md, "\n")
	lines := make([]Line, 0, len(rawLines))
	for _, l := range rawLines {
		switch {
		case strings.HasPrefix(l, "# "), strings.HasPrefix(l, "## "), strings.HasPrefix(l, "### "):
			lines = append(lines, Line{Kind: LineHeader, Text: l})
		case strings.HasPrefix(l, "- "):
			lines = append(lines, Line{Kind: LineListItem, Text: l, Segments: splitInlineCode(l)})
		case strings.TrimSpace(l) == "":
			lines = append(lines, Line{Kind: LineBlank})
		default:
			lines = append(lines, Line{Kind: LineText, Text: l, Segments: splitInlineCode(l)})
		}
	}

	return lines
}

func splitInlineCode(line string) []Segment {
	var segments []Segment
	var last int
	for _, loc := range inlineCodeRe.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: line[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: line[loc[0]:loc[1]], Code: true})
		last = loc[1]
	}
	if last < len(line) {
		segments = append(segments, Segment{Text: line[last:]})
	}

	return segments
}
