package render

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
)

// memberRenderer renders members without a dedicated renderer: a declaration
// of type, name and argument string followed by the descriptions.
type memberRenderer struct {
	Base
	member *doxygen.MemberDef
}

func newMemberRenderer(b Base, _ options) Renderer {
	return &memberRenderer{Base: b, member: b.ctx.Node().(*doxygen.MemberDef)}
}

func (r *memberRenderer) Render() ([]gmast.Node, error) {
	decl, err := r.typed()
	if err != nil {
		return nil, err
	}
	decl = append(decl, r.name())
	if r.member.ArgsString != "" {
		decl = append(decl, r.nodes.Text(r.member.ArgsString))
	}
	return r.renderMember(decl, nil)
}

// renderMember wraps decl and the member's descriptions in a member container.
func (r *memberRenderer) renderMember(decl, extra []gmast.Node) ([]gmast.Node, error) {
	m := r.member
	body, err := r.render(m.BriefDescription, m.DetailedDescription, m.InbodyDescription)
	if err != nil {
		return nil, err
	}
	out := []gmast.Node{r.signature(m.ID, decl...)}
	out = append(out, body...)
	out = append(out, extra...)
	return []gmast.Node{r.nodes.Container("member", out...)}, nil
}

func (r *memberRenderer) name() gmast.Node {
	return r.nodes.Strong(r.nodes.Text(r.member.Name))
}

// typed renders the member's type followed by a space, or nothing when untyped.
func (r *memberRenderer) typed() ([]gmast.Node, error) {
	typ, err := r.render(r.member.Type)
	if err != nil || len(typ) == 0 {
		return nil, err
	}
	return append(typ, r.nodes.Text(" ")), nil
}

func (r *memberRenderer) templated() ([]gmast.Node, error) {
	tpl, err := r.render(r.member.TemplateParamList)
	if err != nil || len(tpl) == 0 {
		return nil, err
	}
	return append(tpl, r.nodes.Text(" ")), nil
}

func (r *memberRenderer) params() ([]gmast.Node, error) {
	params, err := r.renderEach(nodesOf(r.member.Params)...)
	if err != nil {
		return nil, err
	}
	out := []gmast.Node{r.nodes.Text("(")}
	out = append(out, join(r.nodes, params, ", ")...)
	return append(out, r.nodes.Text(")")), nil
}

// functionRenderer renders functions and friend functions.
type functionRenderer struct {
	memberRenderer
}

func newFunctionRenderer(b Base, _ options) Renderer {
	return &functionRenderer{memberRenderer{Base: b, member: b.ctx.Node().(*doxygen.MemberDef)}}
}

func (r *functionRenderer) Render() ([]gmast.Node, error) {
	m := r.member
	decl, err := r.templated()
	if err != nil {
		return nil, err
	}
	if m.Virt == "virtual" || m.Virt == "pure-virtual" {
		decl = append(decl, r.nodes.Text("virtual "))
	}
	if m.Static {
		decl = append(decl, r.nodes.Text("static "))
	}
	typ, err := r.typed()
	if err != nil {
		return nil, err
	}
	decl = append(decl, typ...)
	decl = append(decl, r.name())

	if len(m.Params) == 0 {
		if m.ArgsString != "" {
			decl = append(decl, r.nodes.Text(m.ArgsString))
		}
		return r.renderMember(decl, nil)
	}

	params, err := r.params()
	if err != nil {
		return nil, err
	}
	decl = append(decl, params...)
	// Qualifiers such as " const" or " = 0" follow the closing parenthesis.
	if i := strings.LastIndex(m.ArgsString, ")"); i >= 0 && i+1 < len(m.ArgsString) {
		decl = append(decl, r.nodes.Text(m.ArgsString[i+1:]))
	}
	return r.renderMember(decl, nil)
}

// enumRenderer renders an enum with its enumerators as a definition list.
type enumRenderer struct {
	memberRenderer
}

func newEnumRenderer(b Base, _ options) Renderer {
	return &enumRenderer{memberRenderer{Base: b, member: b.ctx.Node().(*doxygen.MemberDef)}}
}

func (r *enumRenderer) Render() ([]gmast.Node, error) {
	decl := []gmast.Node{r.nodes.Text("enum "), r.name()}
	values, err := r.render(nodesOf(r.member.EnumValues)...)
	if err != nil {
		return nil, err
	}
	var extra []gmast.Node
	if len(values) > 0 {
		extra = append(extra, r.nodes.DefinitionList(values...))
	}
	return r.renderMember(decl, extra)
}

// typedefRenderer renders "typedef <type> <name><args>".
type typedefRenderer struct {
	memberRenderer
}

func newTypedefRenderer(b Base, _ options) Renderer {
	return &typedefRenderer{memberRenderer{Base: b, member: b.ctx.Node().(*doxygen.MemberDef)}}
}

func (r *typedefRenderer) Render() ([]gmast.Node, error) {
	decl := []gmast.Node{r.nodes.Text("typedef ")}
	typ, err := r.typed()
	if err != nil {
		return nil, err
	}
	decl = append(decl, typ...)
	decl = append(decl, r.name())
	if r.member.ArgsString != "" {
		decl = append(decl, r.nodes.Text(r.member.ArgsString))
	}
	return r.renderMember(decl, nil)
}

// variableRenderer renders a variable with its array suffix and initializer.
type variableRenderer struct {
	memberRenderer
}

func newVariableRenderer(b Base, _ options) Renderer {
	return &variableRenderer{memberRenderer{Base: b, member: b.ctx.Node().(*doxygen.MemberDef)}}
}

func (r *variableRenderer) Render() ([]gmast.Node, error) {
	var decl []gmast.Node
	if r.member.Static {
		decl = append(decl, r.nodes.Text("static "))
	}
	typ, err := r.typed()
	if err != nil {
		return nil, err
	}
	decl = append(decl, typ...)
	decl = append(decl, r.name())
	if r.member.ArgsString != "" {
		decl = append(decl, r.nodes.Text(r.member.ArgsString))
	}
	initializer, err := r.render(r.member.Initializer)
	if err != nil {
		return nil, err
	}
	if len(initializer) > 0 {
		decl = append(decl, r.nodes.Text(" "))
		decl = append(decl, initializer...)
	}
	return r.renderMember(decl, nil)
}

// defineRenderer renders a preprocessor macro.
type defineRenderer struct {
	memberRenderer
}

func newDefineRenderer(b Base, _ options) Renderer {
	return &defineRenderer{memberRenderer{Base: b, member: b.ctx.Node().(*doxygen.MemberDef)}}
}

func (r *defineRenderer) Render() ([]gmast.Node, error) {
	decl := []gmast.Node{r.nodes.Text("#define "), r.name()}
	if len(r.member.Params) > 0 {
		params, err := r.params()
		if err != nil {
			return nil, err
		}
		decl = append(decl, params...)
	}
	initializer, err := r.render(r.member.Initializer)
	if err != nil {
		return nil, err
	}
	if len(initializer) > 0 {
		decl = append(decl, r.nodes.Text(" "))
		decl = append(decl, initializer...)
	}
	return r.renderMember(decl, nil)
}

// enumValueRenderer renders one enumerator as a term and its definition.
type enumValueRenderer struct {
	Base
	value *doxygen.EnumValue
}

func newEnumValueRenderer(b Base, _ options) Renderer {
	return &enumValueRenderer{Base: b, value: b.ctx.Node().(*doxygen.EnumValue)}
}

func (r *enumValueRenderer) Render() ([]gmast.Node, error) {
	term := r.targets.CreateTarget(r.value.ID)
	term = append(term, r.nodes.Strong(r.nodes.Text(r.value.Name)))
	initializer, err := r.render(r.value.Initializer)
	if err != nil {
		return nil, err
	}
	if len(initializer) > 0 {
		term = append(term, r.nodes.Text(" "))
		term = append(term, initializer...)
	}

	desc, err := r.render(r.value.BriefDescription, r.value.DetailedDescription)
	if err != nil {
		return nil, err
	}
	return []gmast.Node{r.nodes.Term(term...), r.nodes.Definition(desc...)}, nil
}

// paramRenderer renders "<type> <name> = <default>". The definition name is
// only used for function parameters lacking a declaration name.
type paramRenderer struct {
	Base
	param         *doxygen.Param
	outputDefName bool
}

func newParamRenderer(b Base, opts options) Renderer {
	return &paramRenderer{Base: b, param: b.ctx.Node().(*doxygen.Param), outputDefName: opts.outputDefName}
}

func (r *paramRenderer) Render() ([]gmast.Node, error) {
	out, err := r.render(r.param.Type)
	if err != nil {
		return nil, err
	}

	name := r.param.DeclName
	if name == "" && r.outputDefName {
		name = r.param.DefName
	}
	if name != "" {
		if len(out) > 0 {
			out = append(out, r.nodes.Text(" "))
		}
		out = append(out, r.nodes.Emphasis(r.nodes.Text(name)))
	}
	if r.param.Array != "" {
		out = append(out, r.nodes.Text(r.param.Array))
	}

	def, err := r.render(r.param.DefVal)
	if err != nil {
		return nil, err
	}
	if len(def) > 0 {
		out = append(out, r.nodes.Text(" = "))
		out = append(out, def...)
	}
	return out, nil
}

// templateParamListRenderer renders "template <...>".
type templateParamListRenderer struct {
	Base
	list *doxygen.TemplateParamList
}

func newTemplateParamListRenderer(b Base, _ options) Renderer {
	return &templateParamListRenderer{Base: b, list: b.ctx.Node().(*doxygen.TemplateParamList)}
}

func (r *templateParamListRenderer) Render() ([]gmast.Node, error) {
	params, err := r.renderEach(nodesOf(r.list.Params)...)
	if err != nil {
		return nil, err
	}
	out := []gmast.Node{r.nodes.Text("template <")}
	out = append(out, join(r.nodes, params, ", ")...)
	return append(out, r.nodes.Text(">")), nil
}

// linkedTextRenderer renders a type or initializer expression.
type linkedTextRenderer struct {
	Base
	text *doxygen.LinkedText
}

func newLinkedTextRenderer(b Base, _ options) Renderer {
	return &linkedTextRenderer{Base: b, text: b.ctx.Node().(*doxygen.LinkedText)}
}

func (r *linkedTextRenderer) Render() ([]gmast.Node, error) {
	return r.render(r.text.Content...)
}
