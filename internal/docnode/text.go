package docnode

import (
	"fmt"
	"io"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

// PlainText concatenates the text carried by a fragment, in document order.
func PlainText(nodes []gmast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}
	return b.String()
}

func writeText(b *strings.Builder, n gmast.Node) {
	_ = gmast.Walk(n, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *gmast.String:
			b.Write(v.Value)
		case *LiteralBlock:
			b.WriteString(strings.Join(v.Content, "\n"))
		case *RawBlock:
			for i, l := range v.Content {
				if i > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(l.Text)
			}
		case *Math:
			b.WriteString(v.Latex)
		}
		return gmast.WalkContinue, nil
	})
}

// Find returns every node of kind within the fragment, in document order.
func Find(nodes []gmast.Node, kind gmast.NodeKind) []gmast.Node {
	var out []gmast.Node
	for _, root := range nodes {
		_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
			if entering && n.Kind() == kind {
				out = append(out, n)
			}
			return gmast.WalkContinue, nil
		})
	}
	return out
}

// Outline renders a fragment as indented text with one block per line.
// Nested blocks are indented two spaces per level.
func Outline(nodes []gmast.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		outline(&b, n, 0)
	}
	return b.String()
}

func outline(b *strings.Builder, n gmast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Type() != gmast.TypeBlock || !hasBlockChild(n) {
		text := PlainText([]gmast.Node{n})
		if strings.TrimSpace(text) == "" {
			return
		}
		for _, line := range strings.Split(text, "\n") {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteByte('\n')
		}
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		outline(b, c, depth+1)
	}
}

func hasBlockChild(n gmast.Node) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == gmast.TypeBlock {
			return true
		}
	}
	return false
}

// Tree writes the node structure of a fragment to w, one node per line with
// its kind name. Text-bearing leaves are followed by their quoted text.
func Tree(w io.Writer, nodes []gmast.Node) error {
	for _, root := range nodes {
		depth := 0
		err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
			if !entering {
				depth--
				return gmast.WalkContinue, nil
			}
			line := strings.Repeat("  ", depth) + n.Kind().String()
			switch n.(type) {
			case *gmast.String, *LiteralBlock, *RawBlock, *Math:
				line += " " + fmt.Sprintf("%q", PlainText([]gmast.Node{n}))
			}
			depth++
			if _, err := fmt.Fprintln(w, line); err != nil {
				return gmast.WalkStop, err
			}
			return gmast.WalkContinue, nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
