package render

import (
	"path/filepath"
	"strings"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
)

// defaultListingLanguage applies when the listing's file extension has no
// configured domain.
const defaultListingLanguage = "cpp"

// listingRenderer renders a program listing as a literal block, one line per
// code line.
type listingRenderer struct {
	Base
	listing *doxygen.Listing
}

func newListingRenderer(b Base, _ options) Renderer {
	return &listingRenderer{Base: b, listing: b.ctx.Node().(*doxygen.Listing)}
}

func (r *listingRenderer) Render() ([]gmast.Node, error) {
	lines := make([]string, 0, len(r.listing.CodeLines))
	for _, line := range r.listing.CodeLines {
		frag, err := r.render(line)
		if err != nil {
			return nil, err
		}
		lines = append(lines, docnode.PlainText(frag))
	}
	return []gmast.Node{r.nodes.LiteralBlock(r.language(), lines)}, nil
}

func (r *listingRenderer) language() string {
	ext := strings.TrimPrefix(filepath.Ext(r.listing.Filename), ".")
	if domain, ok := r.project.Domain(ext); ok {
		return domain
	}
	return defaultListingLanguage
}

type codeLineRenderer struct {
	Base
	line *doxygen.CodeLine
}

func newCodeLineRenderer(b Base, _ options) Renderer {
	return &codeLineRenderer{Base: b, line: b.ctx.Node().(*doxygen.CodeLine)}
}

func (r *codeLineRenderer) Render() ([]gmast.Node, error) {
	return r.render(nodesOf(r.line.Highlights)...)
}

type highlightRenderer struct {
	Base
	highlight *doxygen.Highlight
}

func newHighlightRenderer(b Base, _ options) Renderer {
	return &highlightRenderer{Base: b, highlight: b.ctx.Node().(*doxygen.Highlight)}
}

func (r *highlightRenderer) Render() ([]gmast.Node, error) {
	return r.render(r.highlight.Content...)
}

// verbatimRenderer renders preformatted text as a literal block, or as
// embedded markup when it opens with an "embed:rst" header.
type verbatimRenderer struct {
	Base
	verbatim *doxygen.Verbatim
	content  ContentCreator
}

func newVerbatimRenderer(b Base, opts options) Renderer {
	return &verbatimRenderer{Base: b, verbatim: b.ctx.Node().(*doxygen.Verbatim), content: opts.content}
}

func (r *verbatimRenderer) Render() ([]gmast.Node, error) {
	text := r.verbatim.Text
	if !strings.HasPrefix(text, "embed:rst") {
		return []gmast.Node{r.nodes.LiteralBlock("", strings.Split(text, "\n"))}, nil
	}
	return []gmast.Node{r.nodes.RawBlock("rst", r.content(text))}, nil
}
