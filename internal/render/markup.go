package render

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
)

// descriptionRenderer renders a description block as a sequence of blocks.
type descriptionRenderer struct {
	Base
	desc *doxygen.Description
}

func newDescriptionRenderer(b Base, _ options) Renderer {
	return &descriptionRenderer{Base: b, desc: b.ctx.Node().(*doxygen.Description)}
}

func (r *descriptionRenderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.desc.Content...)
	if err != nil {
		return nil, err
	}
	out := paragraphs(r.nodes, content)
	if len(out) > 0 && r.desc.Title != "" {
		out = append([]gmast.Node{r.nodes.Paragraph(r.nodes.Strong(r.nodes.Text(r.desc.Title)))}, out...)
	}
	return out, nil
}

// docParaRenderer renders a paragraph. Inline runs become paragraphs while
// nested blocks such as lists and listings stay siblings of them.
type docParaRenderer struct {
	Base
	para *doxygen.DocPara
}

func newDocParaRenderer(b Base, _ options) Renderer {
	return &docParaRenderer{Base: b, para: b.ctx.Node().(*doxygen.DocPara)}
}

func (r *docParaRenderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.para.Content...)
	if err != nil {
		return nil, err
	}
	return paragraphs(r.nodes, content), nil
}

// docMarkupRenderer wraps its content with the inline creator chosen for the
// markup type.
type docMarkupRenderer struct {
	Base
	markup  *doxygen.DocMarkup
	creator docnode.InlineFunc
}

func newDocMarkupRenderer(b Base, opts options) Renderer {
	return &docMarkupRenderer{Base: b, markup: b.ctx.Node().(*doxygen.DocMarkup), creator: opts.markup}
}

func (r *docMarkupRenderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.markup.Content...)
	if err != nil {
		return nil, err
	}
	return []gmast.Node{r.creator(content...)}, nil
}

type docHeadingRenderer struct {
	Base
	heading *doxygen.DocHeading
}

func newDocHeadingRenderer(b Base, _ options) Renderer {
	return &docHeadingRenderer{Base: b, heading: b.ctx.Node().(*doxygen.DocHeading)}
}

func (r *docHeadingRenderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.heading.Content...)
	if err != nil {
		return nil, err
	}
	level := min(max(r.heading.Level, 1), 6)
	return []gmast.Node{r.nodes.Heading(level, content...)}, nil
}

// docRefTextRenderer renders a cross reference, as plain content when the
// target cannot be linked.
type docRefTextRenderer struct {
	Base
	ref *doxygen.DocRefText
}

func newDocRefTextRenderer(b Base, _ options) Renderer {
	return &docRefTextRenderer{Base: b, ref: b.ctx.Node().(*doxygen.DocRefText)}
}

func (r *docRefTextRenderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.ref.Content...)
	if err != nil {
		return nil, err
	}
	uri := r.targets.URI(r.ref.RefID)
	if uri == "" {
		return content, nil
	}
	return []gmast.Node{r.nodes.Link(uri, content...)}, nil
}

var paramListTitles = map[string]string{
	"param":         "Parameters",
	"retval":        "Return values",
	"exception":     "Exceptions",
	"templateparam": "Template Parameters",
}

// docParamListRenderer renders documented parameters as a titled bullet list.
type docParamListRenderer struct {
	Base
	list *doxygen.DocParamList
}

func newDocParamListRenderer(b Base, _ options) Renderer {
	return &docParamListRenderer{Base: b, list: b.ctx.Node().(*doxygen.DocParamList)}
}

func (r *docParamListRenderer) Render() ([]gmast.Node, error) {
	items, err := r.render(nodesOf(r.list.Items)...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	label, ok := paramListTitles[r.list.Kind]
	if !ok {
		label = title(r.list.Kind)
	}
	return []gmast.Node{r.nodes.DefinitionList(
		r.nodes.Term(r.nodes.Strong(r.nodes.Text(label))),
		r.nodes.Definition(r.nodes.BulletList(items...)),
	)}, nil
}

// docParamListItemRenderer renders "names - description" as one list item.
type docParamListItemRenderer struct {
	Base
	item *doxygen.DocParamListItem
}

func newDocParamListItemRenderer(b Base, _ options) Renderer {
	return &docParamListItemRenderer{Base: b, item: b.ctx.Node().(*doxygen.DocParamListItem)}
}

func (r *docParamListItemRenderer) Render() ([]gmast.Node, error) {
	names, err := r.renderEach(nodesOf(r.item.NameLists)...)
	if err != nil {
		return nil, err
	}
	desc, err := r.render(r.item.Description)
	if err != nil {
		return nil, err
	}

	lead := r.nodes.Paragraph(join(r.nodes, names, ", ")...)
	if len(desc) > 0 && desc[0].Kind() == gmast.KindParagraph {
		lead.AppendChild(lead, r.nodes.Text(" - "))
		first := desc[0]
		for c := first.FirstChild(); c != nil; {
			next := c.NextSibling()
			lead.AppendChild(lead, c)
			c = next
		}
		desc = desc[1:]
	}
	children := append([]gmast.Node{lead}, desc...)
	return []gmast.Node{r.nodes.ListItem(children...)}, nil
}

type docParamNameListRenderer struct {
	Base
	list *doxygen.DocParamNameList
}

func newDocParamNameListRenderer(b Base, _ options) Renderer {
	return &docParamNameListRenderer{Base: b, list: b.ctx.Node().(*doxygen.DocParamNameList)}
}

func (r *docParamNameListRenderer) Render() ([]gmast.Node, error) {
	names, err := r.renderEach(nodesOf(r.list.Names)...)
	if err != nil {
		return nil, err
	}
	return join(r.nodes, names, ", "), nil
}

type docParamNameRenderer struct {
	Base
	name *doxygen.DocParamName
}

func newDocParamNameRenderer(b Base, _ options) Renderer {
	return &docParamNameRenderer{Base: b, name: b.ctx.Node().(*doxygen.DocParamName)}
}

func (r *docParamNameRenderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.name.Content...)
	if err != nil || len(content) == 0 {
		return nil, err
	}
	out := []gmast.Node{r.nodes.Strong(content...)}
	if r.name.Direction != "" {
		out = append(out, r.nodes.Text(" ["+r.name.Direction+"]"))
	}
	return out, nil
}

// docSect1Renderer renders a titled section inside a description.
type docSect1Renderer struct {
	Base
	sect *doxygen.DocSect1
}

func newDocSect1Renderer(b Base, _ options) Renderer {
	return &docSect1Renderer{Base: b, sect: b.ctx.Node().(*doxygen.DocSect1)}
}

func (r *docSect1Renderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.sect.Content...)
	if err != nil {
		return nil, err
	}
	var out []gmast.Node
	if r.sect.Title != "" {
		heading := r.targets.CreateTarget(r.sect.ID)
		heading = append(heading, r.nodes.Text(r.sect.Title))
		out = append(out, r.nodes.Heading(4, heading...))
	}
	out = append(out, paragraphs(r.nodes, content)...)
	return []gmast.Node{r.nodes.Container("section", out...)}, nil
}

var simpleSectTitles = map[string]string{
	"see":       "See also",
	"return":    "Returns",
	"author":    "Author",
	"authors":   "Authors",
	"pre":       "Precondition",
	"post":      "Postcondition",
	"remark":    "Remark",
	"attention": "Attention",
	"rcs":       "RCS",
}

// docSimpleSectRenderer renders "see", "return", "note" and similar sections
// as a labelled definition.
type docSimpleSectRenderer struct {
	Base
	sect *doxygen.DocSimpleSect
}

func newDocSimpleSectRenderer(b Base, _ options) Renderer {
	return &docSimpleSectRenderer{Base: b, sect: b.ctx.Node().(*doxygen.DocSimpleSect)}
}

func (r *docSimpleSectRenderer) Render() ([]gmast.Node, error) {
	label, ok := simpleSectTitles[r.sect.Kind]
	if !ok {
		label = title(r.sect.Kind)
	}
	return r.labelled([]gmast.Node{r.nodes.Strong(r.nodes.Text(label))})
}

func (r *docSimpleSectRenderer) labelled(label []gmast.Node) ([]gmast.Node, error) {
	paras, err := r.render(nodesOf(r.sect.Paras)...)
	if err != nil {
		return nil, err
	}
	return []gmast.Node{r.nodes.DefinitionList(
		r.nodes.Term(label...),
		r.nodes.Definition(paras...),
	)}, nil
}

// parSimpleSectRenderer renders a "par" section, whose label is its own title.
type parSimpleSectRenderer struct {
	docSimpleSectRenderer
}

func newParSimpleSectRenderer(b Base, _ options) Renderer {
	return &parSimpleSectRenderer{docSimpleSectRenderer{Base: b, sect: b.ctx.Node().(*doxygen.DocSimpleSect)}}
}

func (r *parSimpleSectRenderer) Render() ([]gmast.Node, error) {
	label, err := r.render(r.sect.Title)
	if err != nil {
		return nil, err
	}
	return r.labelled([]gmast.Node{r.nodes.Strong(label...)})
}

type docTitleRenderer struct {
	Base
	title *doxygen.DocTitle
}

func newDocTitleRenderer(b Base, _ options) Renderer {
	return &docTitleRenderer{Base: b, title: b.ctx.Node().(*doxygen.DocTitle)}
}

func (r *docTitleRenderer) Render() ([]gmast.Node, error) {
	return r.render(r.title.Content...)
}

// docFormulaRenderer renders a formula as math, without its TeX delimiters.
type docFormulaRenderer struct {
	Base
	formula *doxygen.DocFormula
}

func newDocFormulaRenderer(b Base, _ options) Renderer {
	return &docFormulaRenderer{Base: b, formula: b.ctx.Node().(*doxygen.DocFormula)}
}

func (r *docFormulaRenderer) Render() ([]gmast.Node, error) {
	latex := strings.TrimSpace(r.formula.Text)
	for _, delim := range [][2]string{{"$", "$"}, {`\[`, `\]`}, {`\(`, `\)`}} {
		if len(latex) >= len(delim[0])+len(delim[1]) && strings.HasPrefix(latex, delim[0]) && strings.HasSuffix(latex, delim[1]) {
			latex = strings.TrimSpace(latex[len(delim[0]) : len(latex)-len(delim[1])])
			break
		}
	}
	return []gmast.Node{r.nodes.Math(latex)}, nil
}

// docImageRenderer renders images meant for HTML output; the extractor emits
// one image per output format.
type docImageRenderer struct {
	Base
	image *doxygen.DocImage
}

func newDocImageRenderer(b Base, _ options) Renderer {
	return &docImageRenderer{Base: b, image: b.ctx.Node().(*doxygen.DocImage)}
}

func (r *docImageRenderer) Render() ([]gmast.Node, error) {
	if r.image.Type != "" && r.image.Type != "html" {
		return nil, nil
	}
	caption, err := r.render(r.image.Content...)
	if err != nil {
		return nil, err
	}
	return []gmast.Node{r.nodes.Image(r.image.Name, strings.TrimSpace(docnode.PlainText(caption)))}, nil
}

type docURLLinkRenderer struct {
	Base
	link *doxygen.DocURLLink
}

func newDocURLLinkRenderer(b Base, _ options) Renderer {
	return &docURLLinkRenderer{Base: b, link: b.ctx.Node().(*doxygen.DocURLLink)}
}

func (r *docURLLinkRenderer) Render() ([]gmast.Node, error) {
	content, err := r.render(r.link.Content...)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		content = []gmast.Node{r.nodes.Text(r.link.URL)}
	}
	return []gmast.Node{r.nodes.Link(r.link.URL, content...)}, nil
}

type docListRenderer struct {
	Base
	list *doxygen.DocList
}

func newDocListRenderer(b Base, _ options) Renderer {
	return &docListRenderer{Base: b, list: b.ctx.Node().(*doxygen.DocList)}
}

func (r *docListRenderer) Render() ([]gmast.Node, error) {
	items, err := r.render(nodesOf(r.list.Items)...)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	if r.list.Ordered {
		return []gmast.Node{r.nodes.OrderedList(items...)}, nil
	}
	return []gmast.Node{r.nodes.BulletList(items...)}, nil
}

type docListItemRenderer struct {
	Base
	item *doxygen.DocListItem
}

func newDocListItemRenderer(b Base, _ options) Renderer {
	return &docListItemRenderer{Base: b, item: b.ctx.Node().(*doxygen.DocListItem)}
}

func (r *docListItemRenderer) Render() ([]gmast.Node, error) {
	paras, err := r.render(nodesOf(r.item.Paras)...)
	if err != nil {
		return nil, err
	}
	return []gmast.Node{r.nodes.ListItem(paras...)}, nil
}
