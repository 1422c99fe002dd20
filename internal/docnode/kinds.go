package docnode

import (
	"strconv"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

var (
	KindSuperscript  = gmast.NewNodeKind("Superscript")
	KindSubscript    = gmast.NewNodeKind("Subscript")
	KindSpan         = gmast.NewNodeKind("Span")
	KindWarning      = gmast.NewNodeKind("Warning")
	KindLiteralBlock = gmast.NewNodeKind("LiteralBlock")
	KindRawBlock     = gmast.NewNodeKind("RawBlock")
	KindMath         = gmast.NewNodeKind("Math")
	KindTarget       = gmast.NewNodeKind("Target")
	KindContainer    = gmast.NewNodeKind("Container")
	KindSignature    = gmast.NewNodeKind("Signature")
)

// Superscript is raised inline text.
type Superscript struct{ gmast.BaseInline }

func (n *Superscript) Kind() gmast.NodeKind { return KindSuperscript }
func (n *Superscript) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, nil, nil)
}

// Subscript is lowered inline text.
type Subscript struct{ gmast.BaseInline }

func (n *Subscript) Kind() gmast.NodeKind { return KindSubscript }
func (n *Subscript) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, nil, nil)
}

// Span is an unstyled inline grouping.
type Span struct{ gmast.BaseInline }

func (n *Span) Kind() gmast.NodeKind { return KindSpan }
func (n *Span) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, nil, nil)
}

// Warning is an admonition block shown to the reader.
type Warning struct{ gmast.BaseBlock }

func (n *Warning) Kind() gmast.NodeKind { return KindWarning }
func (n *Warning) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, nil, nil)
}

// LiteralBlock is preformatted text, optionally tagged with a language.
type LiteralBlock struct {
	gmast.BaseBlock
	Language string
	Content  []string
}

func (n *LiteralBlock) Kind() gmast.NodeKind { return KindLiteralBlock }
func (n *LiteralBlock) IsRaw() bool          { return true }
func (n *LiteralBlock) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{
		"Language": n.Language,
		"Content":  strconv.Quote(strings.Join(n.Content, "\n")),
	}, nil)
}

// Line is one line of embedded markup together with the source it came from.
type Line struct {
	Text   string
	Source string
}

// RawBlock carries markup in another format to be parsed by the consumer.
type RawBlock struct {
	gmast.BaseBlock
	Format  string
	Content []Line
}

func (n *RawBlock) Kind() gmast.NodeKind { return KindRawBlock }
func (n *RawBlock) IsRaw() bool          { return true }
func (n *RawBlock) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{
		"Format": n.Format,
		"Lines":  strconv.Itoa(len(n.Content)),
	}, nil)
}

// Math is a LaTeX formula.
type Math struct {
	gmast.BaseInline
	Latex string
}

func (n *Math) Kind() gmast.NodeKind { return KindMath }
func (n *Math) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{"Latex": n.Latex}, nil)
}

// Target is an addressable anchor for cross references.
type Target struct {
	gmast.BaseInline
	ID string
}

func (n *Target) Kind() gmast.NodeKind { return KindTarget }
func (n *Target) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{"ID": n.ID}, nil)
}

// Container groups blocks under a class name ("compound", "member", "section").
type Container struct {
	gmast.BaseBlock
	Class string
}

func (n *Container) Kind() gmast.NodeKind { return KindContainer }
func (n *Container) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{"Class": n.Class}, nil)
}

// Signature is the declaration line of a documented entity.
type Signature struct {
	gmast.BaseBlock
	ID string
}

func (n *Signature) Kind() gmast.NodeKind { return KindSignature }
func (n *Signature) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{"ID": n.ID}, nil)
}
