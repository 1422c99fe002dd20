package render

import (
	"strings"

	"git.home.luguber.info/inful/doxybridge/internal/docnode"
)

// EmbedSource is the source name attached to embedded markup lines.
const EmbedSource = "<doxybridge>"

// ContentCreator turns verbatim text into lines of embedded markup.
type ContentCreator func(text string) []docnode.Line

// EmbedContent drops the "embed:rst" header line, removes the common
// indentation of the rest and tags every line with EmbedSource. When the
// header carries ":leading-asterisk" the comment asterisk opening each line
// is blanked out first.
func EmbedContent(text string) []docnode.Line {
	lines := strings.Split(text, "\n")
	header, body := lines[0], lines[1:]

	if strings.Contains(header, ":leading-asterisk") {
		for i, line := range body {
			if strings.HasPrefix(strings.TrimLeft(line, " \t"), "*") {
				body[i] = strings.Replace(line, "*", " ", 1)
			}
		}
	}

	body = dedent(body)
	out := make([]docnode.Line, len(body))
	for i, line := range body {
		out[i] = docnode.Line{Text: line, Source: EmbedSource}
	}
	return out
}

// dedent removes the whitespace prefix shared by all non-blank lines.
// Whitespace-only lines become empty.
func dedent(lines []string) []string {
	margin, found := "", false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			margin, found = indent, true
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out[i] = strings.TrimPrefix(line, margin)
	}
	return out
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
