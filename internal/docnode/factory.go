package docnode

import (
	gmast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// InlineFunc wraps inline content in a styled span.
type InlineFunc func(children ...gmast.Node) gmast.Node

// Factory constructs target tree nodes. Renderers only ever build output
// through a Factory.
type Factory interface {
	Text(s string) gmast.Node
	Inline(children ...gmast.Node) gmast.Node
	Emphasis(children ...gmast.Node) gmast.Node
	Strong(children ...gmast.Node) gmast.Node
	Literal(children ...gmast.Node) gmast.Node
	Superscript(children ...gmast.Node) gmast.Node
	Subscript(children ...gmast.Node) gmast.Node
	Math(latex string) gmast.Node
	Link(uri string, children ...gmast.Node) gmast.Node
	Image(uri, alt string) gmast.Node
	Target(id string) gmast.Node

	Paragraph(children ...gmast.Node) gmast.Node
	Heading(level int, children ...gmast.Node) gmast.Node
	Warning(children ...gmast.Node) gmast.Node
	LiteralBlock(language string, lines []string) gmast.Node
	RawBlock(format string, lines []Line) gmast.Node
	BulletList(items ...gmast.Node) gmast.Node
	OrderedList(items ...gmast.Node) gmast.Node
	ListItem(children ...gmast.Node) gmast.Node
	DefinitionList(children ...gmast.Node) gmast.Node
	Term(children ...gmast.Node) gmast.Node
	Definition(children ...gmast.Node) gmast.Node
	Container(class string, children ...gmast.Node) gmast.Node
	Signature(id string, children ...gmast.Node) gmast.Node
}

type factory struct{}

// NewFactory returns the goldmark-backed Factory.
func NewFactory() Factory {
	return factory{}
}

func appendAll(parent gmast.Node, children []gmast.Node) gmast.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(parent, c)
		}
	}
	return parent
}

func (factory) Text(s string) gmast.Node {
	return gmast.NewString([]byte(s))
}

func (factory) Inline(children ...gmast.Node) gmast.Node {
	return appendAll(&Span{}, children)
}

func (factory) Emphasis(children ...gmast.Node) gmast.Node {
	return appendAll(gmast.NewEmphasis(1), children)
}

func (factory) Strong(children ...gmast.Node) gmast.Node {
	return appendAll(gmast.NewEmphasis(2), children)
}

func (factory) Literal(children ...gmast.Node) gmast.Node {
	return appendAll(gmast.NewCodeSpan(), children)
}

func (factory) Superscript(children ...gmast.Node) gmast.Node {
	return appendAll(&Superscript{}, children)
}

func (factory) Subscript(children ...gmast.Node) gmast.Node {
	return appendAll(&Subscript{}, children)
}

func (factory) Math(latex string) gmast.Node {
	return &Math{Latex: latex}
}

func (factory) Link(uri string, children ...gmast.Node) gmast.Node {
	link := gmast.NewLink()
	link.Destination = []byte(uri)
	return appendAll(link, children)
}

func (factory) Image(uri, alt string) gmast.Node {
	link := gmast.NewLink()
	link.Destination = []byte(uri)
	img := gmast.NewImage(link)
	if alt != "" {
		img.AppendChild(img, gmast.NewString([]byte(alt)))
	}
	return img
}

func (factory) Target(id string) gmast.Node {
	return &Target{ID: id}
}

func (factory) Paragraph(children ...gmast.Node) gmast.Node {
	return appendAll(gmast.NewParagraph(), children)
}

func (factory) Heading(level int, children ...gmast.Node) gmast.Node {
	return appendAll(gmast.NewHeading(level), children)
}

func (factory) Warning(children ...gmast.Node) gmast.Node {
	return appendAll(&Warning{}, children)
}

func (factory) LiteralBlock(language string, lines []string) gmast.Node {
	return &LiteralBlock{Language: language, Content: append([]string(nil), lines...)}
}

func (factory) RawBlock(format string, lines []Line) gmast.Node {
	return &RawBlock{Format: format, Content: append([]Line(nil), lines...)}
}

func (factory) BulletList(items ...gmast.Node) gmast.Node {
	return appendAll(gmast.NewList('-'), items)
}

func (factory) OrderedList(items ...gmast.Node) gmast.Node {
	list := gmast.NewList('.')
	list.Start = 1
	return appendAll(list, items)
}

func (factory) ListItem(children ...gmast.Node) gmast.Node {
	return appendAll(gmast.NewListItem(2), children)
}

func (factory) DefinitionList(children ...gmast.Node) gmast.Node {
	return appendAll(extast.NewDefinitionList(0, nil), children)
}

func (factory) Term(children ...gmast.Node) gmast.Node {
	return appendAll(extast.NewDefinitionTerm(), children)
}

func (factory) Definition(children ...gmast.Node) gmast.Node {
	return appendAll(extast.NewDefinitionDescription(), children)
}

func (factory) Container(class string, children ...gmast.Node) gmast.Node {
	return appendAll(&Container{Class: class}, children)
}

func (factory) Signature(id string, children ...gmast.Node) gmast.Node {
	return appendAll(&Signature{ID: id}, children)
}
