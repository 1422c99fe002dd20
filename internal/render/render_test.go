package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/filter"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
)

const widgetTree = `
type: doxygendef
compounddefs:
  - id: classwidget
    kind: class
    compoundname: Widget
    basecompoundref:
      - refid: classbase
        prot: public
        name: Base
    briefdescription:
      content:
        - type: docpara
          content:
            - "A "
            - type: docmarkup
              markup: bold
              content: [small]
            - " widget."
    sectiondefs:
      - kind: public-func
        memberdefs:
          - id: classwidget_1resize
            kind: function
            prot: public
            name: resize
            argsstring: (int w, int h) const
            type:
              content: [void]
            params:
              - type: {content: [int]}
                declname: w
              - type: {content: [int]}
                declname: h
                defval: {content: ["0"]}
          - id: classwidget_1hidden
            kind: function
            prot: private
            name: hidden
            argsstring: ()
            type:
              content: [void]
      - kind: public-type
        memberdefs:
          - id: classwidget_1mode
            kind: enum
            name: Mode
            enumvalues:
              - id: classwidget_1mode_fast
                name: Fast
                initializer: {content: ["= 1"]}
              - id: classwidget_1mode_slow
                name: Slow
`

func TestTextRenderer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace run", "   ", nil},
		{"newline run", "\n\t ", nil},
		{"single space", " ", []string{" "}},
		{"word", "hello", []string{"hello"}},
		{"internal spacing", " a  b ", []string{" a  b "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			frag, err := h.rendererFor(t, doxygen.Text(tt.text)).Render()
			require.NoError(t, err)

			var got []string
			for _, n := range frag {
				require.Equal(t, gmast.KindString, n.Kind())
				got = append(got, string(n.(*gmast.String).Value))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_PreservesChildOrder(t *testing.T) {
	h := newHarness(t, nil)
	para := &doxygen.DocPara{Content: doxygen.Nodes{doxygen.Text("a"), doxygen.Text("b"), doxygen.Text("c")}}

	frag, err := Render(h.factory(nil), para)
	require.NoError(t, err)
	assert.Equal(t, "abc", docnode.PlainText(frag))
}

func TestRender_UnmatchedDiscriminantFallsBackToGeneric(t *testing.T) {
	h := newHarness(t, nil)

	explicit := h.rendererFor(t, &doxygen.MemberDef{Kind: "property"})
	unknown := h.rendererFor(t, &doxygen.MemberDef{Kind: "gadget"})
	assert.IsType(t, &memberRenderer{}, explicit)
	assert.IsType(t, &memberRenderer{}, unknown)

	assert.IsType(t, h.rendererFor(t, &doxygen.DocSimpleSect{Kind: "note"}),
		h.rendererFor(t, &doxygen.DocSimpleSect{Kind: "gadget"}))
}

func TestRender_DeniedPathIsNotDescended(t *testing.T) {
	h := newHarness(t, nil)
	var inspected []doxygen.NodeType
	deny := filter.Func(func(path []doxygen.Node) bool {
		inspected = append(inspected, path[0].NodeType())
		return path[0].NodeType() != doxygen.TypeSectionDef
	})

	def := decodeDef(t, widgetTree).CompoundDefs[0]
	frag, err := Render(h.factory(deny), def)
	require.NoError(t, err)

	assert.NotContains(t, inspected, doxygen.TypeMemberDef)
	assert.NotContains(t, docnode.PlainText(frag), "resize")
	assert.Contains(t, docnode.PlainText(frag), "Widget")
}

func TestRender_ClassCompound(t *testing.T) {
	h := newHarness(t, map[string]*doxygen.DoxygenDef{"classwidget": decodeDef(t, widgetTree)})
	index := &doxygen.Index{Compounds: []*doxygen.Compound{{RefID: "classwidget", Kind: "class", Name: "Widget"}}}
	exclude := filter.FromConfig(configWithExcludedProtections("private"))

	frag, err := Render(h.factory(exclude), index)
	require.NoError(t, err)
	require.Len(t, frag, 1)

	signatures := docnode.Find(frag, docnode.KindSignature)
	var decls []string
	for _, sig := range signatures {
		decls = append(decls, docnode.PlainText([]gmast.Node{sig}))
	}
	want := []string{
		"Class Widget : public Base",
		"void resize(int w, int h = 0) const",
		"enum Mode",
	}
	if diff := cmp.Diff(want, decls); diff != "" {
		t.Errorf("declarations mismatch (-want +got):\n%s", diff)
	}

	text := docnode.PlainText(frag)
	assert.Contains(t, text, "A small widget.")
	assert.Contains(t, text, "Public Functions")
	assert.Contains(t, text, "Fast = 1")
	assert.NotContains(t, text, "hidden")

	targets := docnode.Find(frag, docnode.KindTarget)
	var ids []string
	for _, n := range targets {
		ids = append(ids, n.(*docnode.Target).ID)
	}
	assert.ElementsMatch(t, []string{
		"classwidget", "classwidget_1resize", "classwidget_1mode",
		"classwidget_1mode_fast", "classwidget_1mode_slow",
	}, ids)

	links := docnode.Find(frag, gmast.KindLink)
	require.Len(t, links, 1)
	assert.Equal(t, "#classbase", string(links[0].(*gmast.Link).Destination))

	assert.Equal(t, 1, h.recorder.filtered["memberdef"])
	assert.Equal(t, int32(1), h.parsers.calls.Load())
}

func TestRender_ParseFailureDoesNotAbortSiblings(t *testing.T) {
	h := newHarness(t, map[string]*doxygen.DoxygenDef{"classwidget": decodeDef(t, widgetTree)})
	index := &doxygen.Index{Compounds: []*doxygen.Compound{
		{RefID: "classbroken", Kind: "class", Name: "Broken"},
		{RefID: "classwidget", Kind: "class", Name: "Widget"},
	}}

	frag, err := Render(h.factory(nil), index)
	require.NoError(t, err)

	warnings := docnode.Find(frag, docnode.KindWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, docnode.PlainText(warnings), `demo: Unable to parse file "xml/classbroken.yaml".`)

	require.Len(t, h.collector.Diagnostics(), 1)
	assert.Equal(t, errors.SeverityWarning, h.collector.Diagnostics()[0].Severity)
	assert.Equal(t, 1, h.recorder.parseFailures)

	assert.Contains(t, docnode.PlainText(frag), "Widget")
}

func TestRender_InnerClassRefUsesSharedParser(t *testing.T) {
	outer := decodeDef(t, `
type: doxygendef
compounddefs:
  - id: namespacegeo
    kind: namespace
    compoundname: geo
    innerclass:
      - refid: classwidget
        name: geo::Widget
      - refid: classmissing
        name: geo::Missing
`)
	h := newHarness(t, map[string]*doxygen.DoxygenDef{
		"namespacegeo": outer,
		"classwidget":  decodeDef(t, widgetTree),
	})
	index := &doxygen.Index{Compounds: []*doxygen.Compound{{RefID: "namespacegeo", Kind: "namespace", Name: "geo"}}}

	frag, err := Render(h.factory(nil), index)
	require.NoError(t, err)

	text := docnode.PlainText(frag)
	assert.Contains(t, text, "Namespace geo")
	assert.Contains(t, text, "Class Widget")
	assert.Len(t, docnode.Find(frag, docnode.KindWarning), 1)
	assert.Equal(t, int32(1), h.parsers.calls.Load())
}

func TestRender_NoLinkProject(t *testing.T) {
	h := newHarness(t, map[string]*doxygen.DoxygenDef{"classwidget": decodeDef(t, widgetTree)})
	f := h.creator.CreateFactory(doxygen.TypeRoot, Host{Reporter: h.collector}, nil, nil)

	frag, err := Render(f, &doxygen.Compound{RefID: "classwidget", Kind: "class"})
	require.NoError(t, err)
	assert.Empty(t, docnode.Find(frag, docnode.KindTarget))
	assert.Empty(t, docnode.Find(frag, gmast.KindLink))
	assert.Contains(t, docnode.PlainText(frag), "Class Widget : public Base")
}

func TestRender_Verbatim(t *testing.T) {
	h := newHarness(t, nil)

	frag, err := h.rendererFor(t, &doxygen.Verbatim{Text: "embed:rst\n    .. note::\n\n       hi"}).Render()
	require.NoError(t, err)
	require.Len(t, frag, 1)
	raw, ok := frag[0].(*docnode.RawBlock)
	require.True(t, ok, "got %T", frag[0])
	assert.Equal(t, "rst", raw.Format)
	assert.Equal(t, []docnode.Line{
		{Text: ".. note::", Source: EmbedSource},
		{Text: "", Source: EmbedSource},
		{Text: "   hi", Source: EmbedSource},
	}, raw.Content)

	frag, err = h.rendererFor(t, &doxygen.Verbatim{Text: "x := 1\ny := 2"}).Render()
	require.NoError(t, err)
	lit, ok := frag[0].(*docnode.LiteralBlock)
	require.True(t, ok, "got %T", frag[0])
	assert.Equal(t, []string{"x := 1", "y := 2"}, lit.Content)
}

func TestRender_DocumentationMarkup(t *testing.T) {
	h := newHarness(t, nil)
	desc := &doxygen.Description{Content: doxygen.Nodes{
		&doxygen.DocPara{Content: doxygen.Nodes{
			doxygen.Text("Scale by "),
			&doxygen.DocFormula{Text: "$x^2$"},
			doxygen.Text("."),
			&doxygen.DocSimpleSect{Kind: "return", Paras: []*doxygen.DocPara{{Content: doxygen.Nodes{doxygen.Text("the result")}}}},
			&doxygen.DocParamList{Kind: "param", Items: []*doxygen.DocParamListItem{{
				NameLists: []*doxygen.DocParamNameList{{Names: []*doxygen.DocParamName{{Direction: "in", Content: doxygen.Nodes{doxygen.Text("x")}}}}},
				Description: &doxygen.Description{Content: doxygen.Nodes{
					&doxygen.DocPara{Content: doxygen.Nodes{doxygen.Text("the input")}},
				}},
			}}},
		}},
	}}

	frag, err := h.rendererFor(t, desc).Render()
	require.NoError(t, err)
	require.Len(t, frag, 3)
	assert.Equal(t, gmast.KindParagraph, frag[0].Kind())
	assert.Equal(t, "Scale by x^2.", docnode.PlainText(frag[:1]))

	maths := docnode.Find(frag, docnode.KindMath)
	require.Len(t, maths, 1)
	assert.Equal(t, "x^2", maths[0].(*docnode.Math).Latex)

	assert.Equal(t, "Returnsthe result", docnode.PlainText(frag[1:2]))
	assert.Equal(t, "Parametersx [in] - the input", docnode.PlainText(frag[2:3]))
}

func TestRender_ParSimpleSectUsesTitle(t *testing.T) {
	h := newHarness(t, nil)
	sect := &doxygen.DocSimpleSect{
		Kind:  "par",
		Title: &doxygen.DocTitle{Content: doxygen.Nodes{doxygen.Text("Thread safety")}},
		Paras: []*doxygen.DocPara{{Content: doxygen.Nodes{doxygen.Text("None.")}}},
	}

	frag, err := h.rendererFor(t, sect).Render()
	require.NoError(t, err)
	assert.Equal(t, "Thread safetyNone.", docnode.PlainText(frag))
}

func TestRender_ListingUsesConfiguredDomain(t *testing.T) {
	h := newHarness(t, nil)
	h.project.DomainByExtension = map[string]string{"py": "python"}
	listing := &doxygen.Listing{Filename: "tool.py", CodeLines: []*doxygen.CodeLine{
		{Highlights: []*doxygen.Highlight{{Content: doxygen.Nodes{doxygen.Text("def "), doxygen.Text("run():")}}}},
		{Highlights: []*doxygen.Highlight{{Content: doxygen.Nodes{doxygen.Text("    pass")}}}},
	}}

	frag, err := h.rendererFor(t, listing).Render()
	require.NoError(t, err)
	lit, ok := frag[0].(*docnode.LiteralBlock)
	require.True(t, ok, "got %T", frag[0])
	assert.Equal(t, "python", lit.Language)
	assert.Equal(t, []string{"def run():", "    pass"}, lit.Content)

	listing.Filename = "widget.h"
	frag, err = h.rendererFor(t, listing).Render()
	require.NoError(t, err)
	assert.Equal(t, defaultListingLanguage, frag[0].(*docnode.LiteralBlock).Language)
}

func TestRender_TemplateParams(t *testing.T) {
	h := newHarness(t, nil)
	member := &doxygen.MemberDef{
		ID:   "max",
		Kind: "function",
		Name: "max",
		TemplateParamList: &doxygen.TemplateParamList{Params: []*doxygen.Param{
			{Type: &doxygen.LinkedText{Content: doxygen.Nodes{doxygen.Text("typename")}}, DefName: "T"},
		}},
		Type:       &doxygen.LinkedText{Content: doxygen.Nodes{doxygen.Text("T")}},
		ArgsString: "(T a, T b)",
		Params: []*doxygen.Param{
			{Type: &doxygen.LinkedText{Content: doxygen.Nodes{doxygen.Text("T")}}, DeclName: "a"},
			{Type: &doxygen.LinkedText{Content: doxygen.Nodes{doxygen.Text("T")}}, DefName: "b"},
		},
	}

	frag, err := h.rendererFor(t, member).Render()
	require.NoError(t, err)
	sig := docnode.Find(frag, docnode.KindSignature)
	require.Len(t, sig, 1)
	assert.Equal(t, "template <typename> T max(T a, T b)", docnode.PlainText(sig))
}

func TestRender_DefineMacro(t *testing.T) {
	h := newHarness(t, nil)
	member := &doxygen.MemberDef{
		Kind:        "define",
		Name:        "MIN",
		Params:      []*doxygen.Param{{DefName: "a"}, {DefName: "b"}},
		Initializer: &doxygen.LinkedText{Content: doxygen.Nodes{doxygen.Text("((a) < (b) ? (a) : (b))")}},
	}

	frag, err := h.rendererFor(t, member).Render()
	require.NoError(t, err)
	assert.Equal(t, "#define MIN(a, b) ((a) < (b) ? (a) : (b))", docnode.PlainText(docnode.Find(frag, docnode.KindSignature)))
}

func TestRender_FileCompoundLinksWhenResolvable(t *testing.T) {
	h := newHarness(t, nil)
	frag, err := h.rendererFor(t, &doxygen.Compound{RefID: "widget_8h", Kind: "file", Name: "widget.h"}).Render()
	require.NoError(t, err)

	links := docnode.Find(frag, gmast.KindLink)
	require.Len(t, links, 1)
	assert.Equal(t, "#widget_8h", string(links[0].(*gmast.Link).Destination))
	assert.True(t, strings.HasPrefix(docnode.PlainText(frag), "File "))
}
