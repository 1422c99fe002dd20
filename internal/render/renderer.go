package render

import (
	"log/slog"
	"strings"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/metrics"
	"git.home.luguber.info/inful/doxybridge/internal/target"
)

// Renderer turns one node into a fragment of the target tree.
type Renderer interface {
	Render() ([]gmast.Node, error)
}

// NullRenderer renders nothing. Filtered nodes and directory compounds get one.
type NullRenderer struct{}

func (NullRenderer) Render() ([]gmast.Node, error) { return nil, nil }

// Base is what every renderer is constructed with.
type Base struct {
	project  *config.Project
	ctx      Context
	children *Factory
	nodes    docnode.Factory
	targets  target.Resolver
	host     Host
	logger   *slog.Logger
	recorder metrics.Recorder
}

// options carries the per-dispatch extras a specialization needs.
type options struct {
	markup        docnode.InlineFunc
	content       ContentCreator
	outputDefName bool
	parser        doxygen.CompoundParser
}

type constructor func(b Base, opts options) Renderer

// render renders each non-nil child in order and concatenates the fragments.
func (b *Base) render(children ...doxygen.Node) ([]gmast.Node, error) {
	var out []gmast.Node
	for _, child := range children {
		if doxygen.Nil(child) {
			continue
		}
		r, err := b.children.CreateRenderer(b.ctx.Push(child))
		if err != nil {
			return nil, err
		}
		frag, err := r.Render()
		if err != nil {
			return nil, err
		}
		out = append(out, frag...)
	}
	return out, nil
}

// renderEach renders children one by one, keeping each fragment separate.
func (b *Base) renderEach(children ...doxygen.Node) ([][]gmast.Node, error) {
	out := make([][]gmast.Node, 0, len(children))
	for _, child := range children {
		frag, err := b.render(child)
		if err != nil {
			return nil, err
		}
		if len(frag) > 0 {
			out = append(out, frag)
		}
	}
	return out, nil
}

// signature builds the declaration line for id, anchoring it when linking is on.
func (b *Base) signature(id string, parts ...gmast.Node) gmast.Node {
	children := b.targets.CreateTarget(id)
	children = append(children, parts...)
	return b.nodes.Signature(id, children...)
}

// parseFailure turns a compound parse error into the warning fragment.
func (b *Base) parseFailure(refid string, err error) []gmast.Node {
	filename := refid
	if classified, ok := errors.AsClassified(err); ok {
		if f, ok := classified.Context().GetString("file"); ok {
			filename = f
		}
	}
	b.recorder.IncParseFailure(b.project.Name)
	return FormatParserError(b.project.Name, err, filename, b.nodes, b.host.Reporter, b.host.Location, b.project.ExplainParseErrors)
}

func nodesOf[T doxygen.Node](items []T) []doxygen.Node {
	out := make([]doxygen.Node, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// textRenderer renders plain text leaves. Whitespace-only runs between
// structural elements are dropped, but a lone space is kept because it
// separates inline elements.
type textRenderer struct {
	Base
	text doxygen.Text
}

func newTextRenderer(b Base, _ options) Renderer {
	return &textRenderer{Base: b, text: b.ctx.Node().(doxygen.Text)}
}

func (r *textRenderer) Render() ([]gmast.Node, error) {
	s := string(r.text)
	if strings.TrimSpace(s) != "" || s == " " {
		return []gmast.Node{r.nodes.Text(s)}, nil
	}
	return nil, nil
}

// mixedContainerRenderer renders the single wrapped value.
type mixedContainerRenderer struct {
	Base
	container *doxygen.MixedContainer
}

func newMixedContainerRenderer(b Base, _ options) Renderer {
	return &mixedContainerRenderer{Base: b, container: b.ctx.Node().(*doxygen.MixedContainer)}
}

func (r *mixedContainerRenderer) Render() ([]gmast.Node, error) {
	return r.render(r.container.Value)
}
