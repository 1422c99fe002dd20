package render

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/doxybridge/internal/docnode"
)

// paragraphs wraps each run of inline nodes in a paragraph and keeps block
// nodes as they are, so the result is a sequence of blocks.
func paragraphs(nodes docnode.Factory, frag []gmast.Node) []gmast.Node {
	var out, run []gmast.Node
	flush := func() {
		if len(run) > 0 && (hasNonText(run) || strings.TrimSpace(docnode.PlainText(run)) != "") {
			out = append(out, nodes.Paragraph(run...))
		}
		run = nil
	}
	for _, n := range frag {
		if n.Type() == gmast.TypeInline {
			run = append(run, n)
			continue
		}
		flush()
		out = append(out, n)
	}
	flush()
	return out
}

func hasNonText(run []gmast.Node) bool {
	for _, n := range run {
		if n.Kind() != gmast.KindString && n.Kind() != gmast.KindText {
			return true
		}
	}
	return false
}

// join concatenates fragments with a text separator between them.
func join(nodes docnode.Factory, frags [][]gmast.Node, sep string) []gmast.Node {
	var out []gmast.Node
	for i, frag := range frags {
		if i > 0 {
			out = append(out, nodes.Text(sep))
		}
		out = append(out, frag...)
	}
	return out
}

// title turns a kind such as "class" into "Class".
func title(kind string) string {
	return cases.Title(language.English).String(kind)
}
