package render

import (
	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
)

// indexRenderer renders every compound listed in a project index.
type indexRenderer struct {
	Base
	index *doxygen.Index
}

func newIndexRenderer(b Base, _ options) Renderer {
	return &indexRenderer{Base: b, index: b.ctx.Node().(*doxygen.Index)}
}

func (r *indexRenderer) Render() ([]gmast.Node, error) {
	return r.render(nodesOf(r.index.Compounds)...)
}

// compoundRenderer loads a compound's own tree and renders its definition.
type compoundRenderer struct {
	Base
	compound *doxygen.Compound
	parser   doxygen.CompoundParser
}

func newCompoundRenderer(b Base, opts options) Renderer {
	return &compoundRenderer{Base: b, compound: b.ctx.Node().(*doxygen.Compound), parser: opts.parser}
}

func (r *compoundRenderer) Render() ([]gmast.Node, error) {
	def, err := r.parser.ParseCompound(r.compound.RefID)
	if err != nil {
		return r.parseFailure(r.compound.RefID, err), nil
	}
	return r.render(def)
}

// fileRenderer renders file, page, example and group compounds as a
// reference entry; their bodies are documented elsewhere.
type fileRenderer struct {
	Base
	compound *doxygen.Compound
}

func newFileRenderer(b Base, _ options) Renderer {
	return &fileRenderer{Base: b, compound: b.ctx.Node().(*doxygen.Compound)}
}

func (r *fileRenderer) Render() ([]gmast.Node, error) {
	name := r.nodes.Text(r.compound.Name)
	if uri := r.targets.URI(r.compound.RefID); uri != "" {
		name = r.nodes.Link(uri, name)
	}
	return []gmast.Node{r.nodes.Paragraph(
		r.nodes.Strong(r.nodes.Text(title(r.compound.Kind))),
		r.nodes.Text(" "),
		name,
	)}, nil
}

// refRenderer renders an inner class or namespace by loading its tree.
type refRenderer struct {
	Base
	ref    *doxygen.Ref
	parser doxygen.CompoundParser
}

func newRefRenderer(b Base, opts options) Renderer {
	return &refRenderer{Base: b, ref: b.ctx.Node().(*doxygen.Ref), parser: opts.parser}
}

func (r *refRenderer) Render() ([]gmast.Node, error) {
	def, err := r.parser.ParseCompound(r.ref.RefID)
	if err != nil {
		return r.parseFailure(r.ref.RefID, err), nil
	}
	return r.render(def)
}

type doxygenDefRenderer struct {
	Base
	def *doxygen.DoxygenDef
}

func newDoxygenDefRenderer(b Base, _ options) Renderer {
	return &doxygenDefRenderer{Base: b, def: b.ctx.Node().(*doxygen.DoxygenDef)}
}

func (r *doxygenDefRenderer) Render() ([]gmast.Node, error) {
	return r.render(nodesOf(r.def.CompoundDefs)...)
}

// compoundDefRenderer renders a compound's declaration followed by its
// descriptions, includes, inner compounds, member sections and listing.
type compoundDefRenderer struct {
	Base
	def *doxygen.CompoundDef
}

func newCompoundDefRenderer(b Base, _ options) Renderer {
	return &compoundDefRenderer{Base: b, def: b.ctx.Node().(*doxygen.CompoundDef)}
}

func (r *compoundDefRenderer) Render() ([]gmast.Node, error) {
	def := r.def

	var decl []gmast.Node
	if def.TemplateParamList != nil {
		tpl, err := r.render(def.TemplateParamList)
		if err != nil {
			return nil, err
		}
		if len(tpl) > 0 {
			decl = append(decl, tpl...)
			decl = append(decl, r.nodes.Text(" "))
		}
	}
	name := def.Name
	if def.Title != "" {
		name = def.Title
	}
	decl = append(decl,
		r.nodes.Emphasis(r.nodes.Text(title(def.Kind))),
		r.nodes.Text(" "),
		r.nodes.Strong(r.nodes.Text(name)),
	)

	bases, err := r.renderEach(nodesOf(def.BaseCompoundRefs)...)
	if err != nil {
		return nil, err
	}
	if len(bases) > 0 {
		decl = append(decl, r.nodes.Text(" : "))
		decl = append(decl, join(r.nodes, bases, ", ")...)
	}

	out := []gmast.Node{r.signature(def.ID, decl...)}

	desc, err := r.render(def.BriefDescription, def.DetailedDescription)
	if err != nil {
		return nil, err
	}
	out = append(out, desc...)

	includes, err := r.renderEach(nodesOf(def.Includes)...)
	if err != nil {
		return nil, err
	}
	for _, inc := range includes {
		out = append(out, r.nodes.Paragraph(inc...))
	}

	rest := append(nodesOf(def.InnerClasses), nodesOf(def.InnerNamespaces)...)
	rest = append(rest, nodesOf(def.SectionDefs)...)
	rest = append(rest, def.ProgramListing)
	body, err := r.render(rest...)
	if err != nil {
		return nil, err
	}
	out = append(out, body...)

	return []gmast.Node{r.nodes.Container("compound", out...)}, nil
}

var sectionTitles = map[string]string{
	"user-defined":            "User Defined",
	"public-type":             "Public Types",
	"public-func":             "Public Functions",
	"public-attrib":           "Public Members",
	"public-slot":             "Public Slots",
	"signal":                  "Signals",
	"dcop-func":               "DCOP Functions",
	"property":                "Properties",
	"event":                   "Events",
	"public-static-func":      "Public Static Functions",
	"public-static-attrib":    "Public Static Attributes",
	"protected-type":          "Protected Types",
	"protected-func":          "Protected Functions",
	"protected-attrib":        "Protected Attributes",
	"protected-slot":          "Protected Slots",
	"protected-static-func":   "Protected Static Functions",
	"protected-static-attrib": "Protected Static Attributes",
	"package-type":            "Package Types",
	"package-func":            "Package Functions",
	"package-attrib":          "Package Attributes",
	"package-static-func":     "Package Static Functions",
	"package-static-attrib":   "Package Static Attributes",
	"private-type":            "Private Types",
	"private-func":            "Private Functions",
	"private-attrib":          "Private Members",
	"private-slot":            "Private Slots",
	"private-static-func":     "Private Static Functions",
	"private-static-attrib":   "Private Static Attributes",
	"friend":                  "Friends",
	"related":                 "Related",
	"define":                  "Defines",
	"prototype":               "Prototypes",
	"typedef":                 "Typedefs",
	"enum":                    "Enums",
	"func":                    "Functions",
	"var":                     "Variables",
}

// sectionDefRenderer renders a titled group of members. Sections whose
// members are all filtered out render nothing.
type sectionDefRenderer struct {
	Base
	section *doxygen.SectionDef
}

func newSectionDefRenderer(b Base, _ options) Renderer {
	return &sectionDefRenderer{Base: b, section: b.ctx.Node().(*doxygen.SectionDef)}
}

func (r *sectionDefRenderer) Render() ([]gmast.Node, error) {
	members, err := r.render(nodesOf(r.section.MemberDefs)...)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	heading := r.section.Header
	if heading == "" {
		heading = sectionTitles[r.section.Kind]
	}
	if heading == "" {
		heading = title(r.section.Kind)
	}

	out := []gmast.Node{r.nodes.Heading(3, r.nodes.Text(heading))}
	desc, err := r.render(r.section.Description)
	if err != nil {
		return nil, err
	}
	out = append(out, desc...)
	out = append(out, members...)
	return []gmast.Node{r.nodes.Container("section", out...)}, nil
}

// compoundRefRenderer renders a base or derived compound name, linked when
// the compound is documented.
type compoundRefRenderer struct {
	Base
	ref *doxygen.CompoundRef
}

func newCompoundRefRenderer(b Base, _ options) Renderer {
	return &compoundRefRenderer{Base: b, ref: b.ctx.Node().(*doxygen.CompoundRef)}
}

func (r *compoundRefRenderer) Render() ([]gmast.Node, error) {
	var out []gmast.Node
	if r.ref.Prot != "" {
		out = append(out, r.nodes.Text(r.ref.Prot+" "))
	}
	if r.ref.Virt == "virtual" {
		out = append(out, r.nodes.Text("virtual "))
	}
	name := r.nodes.Text(r.ref.Name)
	if r.ref.RefID != "" {
		if uri := r.targets.URI(r.ref.RefID); uri != "" {
			name = r.nodes.Link(uri, name)
		}
	}
	return append(out, name), nil
}

// incRenderer renders an include directive as inline code.
type incRenderer struct {
	Base
	inc *doxygen.Inc
}

func newIncRenderer(b Base, _ options) Renderer {
	return &incRenderer{Base: b, inc: b.ctx.Node().(*doxygen.Inc)}
}

func (r *incRenderer) Render() ([]gmast.Node, error) {
	name := "<" + r.inc.Name + ">"
	if r.inc.Local {
		name = `"` + r.inc.Name + `"`
	}
	code := r.nodes.Literal(r.nodes.Text("#include " + name))
	if r.inc.RefID != "" {
		if uri := r.targets.URI(r.inc.RefID); uri != "" {
			code = r.nodes.Link(uri, code)
		}
	}
	return []gmast.Node{code}, nil
}
