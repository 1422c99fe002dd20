package render

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/filter"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/metrics"
)

func TestCreateRenderer_FilteredNodeRendersNothing(t *testing.T) {
	h := newHarness(t, nil)
	reject := filter.Func(func([]doxygen.Node) bool { return false })

	for _, node := range []doxygen.Node{
		&doxygen.Compound{RefID: "classa", Kind: "class"},
		&doxygen.MemberDef{Kind: "function", Name: "f"},
		doxygen.Text("hello"),
	} {
		r, err := h.factory(reject).CreateRenderer(NewContext(node))
		require.NoError(t, err)
		assert.IsType(t, NullRenderer{}, r)
	}
	assert.Zero(t, h.parsers.calls.Load(), "filtered compounds must not create a parser")
	assert.Equal(t, 1, h.recorder.filtered["compound"])
	assert.Empty(t, h.recorder.dispatched)
}

func TestCreateRenderer_FilterSeesWholePath(t *testing.T) {
	h := newHarness(t, nil)
	var seen []doxygen.Node
	record := filter.Func(func(path []doxygen.Node) bool {
		seen = path
		return true
	})

	member := &doxygen.MemberDef{Kind: "function", Name: "f"}
	section := &doxygen.SectionDef{Kind: "public-func"}
	def := &doxygen.CompoundDef{Kind: "class", Name: "A"}

	_, err := h.factory(record).CreateRenderer(contextOf(member, def, section))
	require.NoError(t, err)
	assert.Equal(t, []doxygen.Node{member, section, def}, seen)
}

func TestCreateRenderer_DirCompoundRendersNothing(t *testing.T) {
	h := newHarness(t, nil)
	r := h.rendererFor(t, &doxygen.Compound{RefID: "dir_src", Kind: "dir", Name: "src"})

	assert.IsType(t, NullRenderer{}, r)
	assert.Zero(t, h.parsers.calls.Load())
}

func TestCreateRenderer_FileLikeCompoundsSkipParser(t *testing.T) {
	for _, kind := range []string{"file", "page", "example", "group"} {
		t.Run(kind, func(t *testing.T) {
			h := newHarness(t, nil)
			r := h.rendererFor(t, &doxygen.Compound{RefID: kind + "_x", Kind: kind, Name: "x"})

			assert.IsType(t, &fileRenderer{}, r)
			assert.Zero(t, h.parsers.calls.Load())

			frag, err := r.Render()
			require.NoError(t, err)
			assert.Equal(t, title(kind)+" x", docnode.PlainText(frag))
		})
	}
}

func TestCreateRenderer_ClassCompoundUsesParser(t *testing.T) {
	h := newHarness(t, nil)
	r := h.rendererFor(t, &doxygen.Compound{RefID: "classa", Kind: "class", Name: "A"})

	cr, ok := r.(*compoundRenderer)
	require.True(t, ok, "got %T", r)
	assert.NotNil(t, cr.parser)
	assert.Equal(t, int32(1), h.parsers.calls.Load())
}

func TestCompoundParser_CreatedOncePerProject(t *testing.T) {
	h := newHarness(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f := h.factory(nil)
			_, err := f.CreateRenderer(NewContext(&doxygen.Compound{RefID: "classa", Kind: "class"}))
			assert.NoError(t, err)
			_, err = f.CreateRenderer(NewContext(&doxygen.Ref{RefID: "namespacen"}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), h.parsers.calls.Load())
}

func TestCreateRenderer_MemberDispatch(t *testing.T) {
	tests := []struct {
		name   string
		member *doxygen.MemberDef
		want   Renderer
		notice bool
	}{
		{"function", &doxygen.MemberDef{Kind: "function"}, &functionRenderer{}, false},
		{"slot", &doxygen.MemberDef{Kind: "slot"}, &functionRenderer{}, false},
		{"friend function", &doxygen.MemberDef{Kind: "friend", ArgsString: "(const A &a)"}, &functionRenderer{}, false},
		{"friend class", &doxygen.MemberDef{Kind: "friend"}, &memberRenderer{}, false},
		{"enum", &doxygen.MemberDef{Kind: "enum"}, &enumRenderer{}, false},
		{"typedef", &doxygen.MemberDef{Kind: "typedef"}, &typedefRenderer{}, false},
		{"variable", &doxygen.MemberDef{Kind: "variable"}, &variableRenderer{}, false},
		{"define", &doxygen.MemberDef{Kind: "define"}, &defineRenderer{}, false},
		{"signal", &doxygen.MemberDef{Kind: "signal"}, &memberRenderer{}, false},
		{"unknown kind", &doxygen.MemberDef{Kind: "gizmo"}, &memberRenderer{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			r := h.rendererFor(t, tt.member)

			assert.IsType(t, tt.want, r)
			if tt.notice {
				assert.Equal(t, 1, h.collector.Count(errors.SeverityInfo))
				assert.Equal(t, 1, h.recorder.degraded[metrics.ReasonUnknownKind])
			} else {
				assert.Empty(t, h.collector.Diagnostics())
			}
		})
	}
}

func TestCreateRenderer_ParamDefinitionName(t *testing.T) {
	param := &doxygen.Param{DefName: "T"}

	tests := []struct {
		name    string
		parents []doxygen.Node
		want    bool
	}{
		{"no parent", nil, true},
		{"function parameter", []doxygen.Node{&doxygen.MemberDef{Kind: "function"}}, true},
		{"template parameter", []doxygen.Node{&doxygen.MemberDef{Kind: "function"}, &doxygen.TemplateParamList{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			r := h.rendererFor(t, param, tt.parents...)

			pr, ok := r.(*paramRenderer)
			require.True(t, ok, "got %T", r)
			assert.Equal(t, tt.want, pr.outputDefName)

			frag, err := pr.Render()
			require.NoError(t, err)
			if tt.want {
				assert.Equal(t, "T", docnode.PlainText(frag))
			} else {
				assert.Empty(t, frag)
			}
		})
	}
}

func TestCreateRenderer_MarkupDispatch(t *testing.T) {
	tests := []struct {
		markup string
		kind   gmast.NodeKind
		notice bool
	}{
		{"emphasis", gmast.KindEmphasis, false},
		{"bold", gmast.KindEmphasis, false},
		{"computeroutput", gmast.KindCodeSpan, false},
		{"superscript", docnode.KindSuperscript, false},
		{"subscript", docnode.KindSubscript, false},
		{"center", docnode.KindSpan, true},
		{"small", docnode.KindSpan, true},
		{"underline", docnode.KindSpan, false},
	}

	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			h := newHarness(t, nil)
			r := h.rendererFor(t, &doxygen.DocMarkup{Type: tt.markup, Content: doxygen.Nodes{doxygen.Text("x")}})

			frag, err := r.Render()
			require.NoError(t, err)
			require.Len(t, frag, 1)
			assert.Equal(t, tt.kind, frag[0].Kind())
			assert.Equal(t, "x", docnode.PlainText(frag))

			if tt.notice {
				require.Len(t, h.collector.Diagnostics(), 1)
				assert.Contains(t, h.collector.Diagnostics()[0].Message, "'"+tt.markup+"'")
				assert.Equal(t, 1, h.recorder.degraded[metrics.ReasonUnsupportedMarkup])
			} else {
				assert.Empty(t, h.collector.Diagnostics())
			}
		})
	}
}

func TestCreateRenderer_EmphasisLevels(t *testing.T) {
	h := newHarness(t, nil)

	frag, err := h.rendererFor(t, &doxygen.DocMarkup{Type: "bold", Content: doxygen.Nodes{doxygen.Text("b")}}).Render()
	require.NoError(t, err)
	assert.Equal(t, 2, frag[0].(*gmast.Emphasis).Level)

	frag, err = h.rendererFor(t, &doxygen.DocMarkup{Type: "emphasis", Content: doxygen.Nodes{doxygen.Text("e")}}).Render()
	require.NoError(t, err)
	assert.Equal(t, 1, frag[0].(*gmast.Emphasis).Level)
}

func TestCreateRenderer_SimpleSectDispatch(t *testing.T) {
	h := newHarness(t, nil)

	assert.IsType(t, &parSimpleSectRenderer{}, h.rendererFor(t, &doxygen.DocSimpleSect{Kind: "par"}))
	assert.IsType(t, &docSimpleSectRenderer{}, h.rendererFor(t, &doxygen.DocSimpleSect{Kind: "note"}))
}

func TestCreateRenderer_UnknownNodeTypeIsInternalError(t *testing.T) {
	h := newHarness(t, nil)
	delete(h.creator.registry, doxygen.TypeDocPara)

	_, err := h.factory(nil).CreateRenderer(NewContext(&doxygen.DocPara{}))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrUnknownNodeType))
	assert.True(t, errors.HasCategory(err, errors.CategoryInternal))

	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	nodeType, _ := classified.Context().GetString("node_type")
	assert.Equal(t, "docpara", nodeType)
}

func TestRender_NilRootIsInternalError(t *testing.T) {
	h := newHarness(t, nil)

	for name, root := range map[string]doxygen.Node{
		"nil interface": nil,
		"typed nil":     (*doxygen.Compound)(nil),
	} {
		t.Run(name, func(t *testing.T) {
			frag, err := Render(h.factory(nil), root)
			require.Error(t, err)
			assert.Nil(t, frag)
			assert.True(t, errors.HasCategory(err, errors.CategoryInternal))
			assert.Equal(t, errors.SeverityFatal, errors.GetSeverity(err))
		})
	}
}

func TestCreateRenderer_DoesNotInvokeRenderer(t *testing.T) {
	h := newHarness(t, nil)
	r := h.rendererFor(t, &doxygen.Compound{RefID: "classmissing", Kind: "class"})

	require.IsType(t, &compoundRenderer{}, r)
	assert.Empty(t, h.collector.Diagnostics(), "parsing happens on Render, not on dispatch")
	assert.Zero(t, h.recorder.parseFailures)
}

func TestCreateChildFactory_KeepsCollaborators(t *testing.T) {
	h := newHarness(t, nil)
	parent := h.factory(filter.Open())
	member := &doxygen.MemberDef{Kind: "function"}

	child := h.creator.CreateChildFactory(h.project, member, parent)
	assert.Equal(t, doxygen.TypeMemberDef, child.NodeType())
	assert.Same(t, parent.creator, child.creator)
	assert.Equal(t, parent.host, child.host)
	assert.Equal(t, parent.targets, child.targets)
	assert.Same(t, h.project, child.project)
}

func TestRegistry_CoversEveryNodeType(t *testing.T) {
	registry := defaultRegistry()
	for _, nodeType := range []doxygen.NodeType{
		doxygen.TypeIndex, doxygen.TypeCompound, doxygen.TypeDoxygenDef, doxygen.TypeCompoundDef,
		doxygen.TypeSectionDef, doxygen.TypeMemberDef, doxygen.TypeEnumValue, doxygen.TypeLinkedText,
		doxygen.TypeDescription, doxygen.TypeParam, doxygen.TypeDocRefText, doxygen.TypeDocHeading,
		doxygen.TypeDocPara, doxygen.TypeDocMarkup, doxygen.TypeDocParamList, doxygen.TypeDocParamListItem,
		doxygen.TypeDocParamNameList, doxygen.TypeDocParamName, doxygen.TypeDocSect1, doxygen.TypeDocSimpleSect,
		doxygen.TypeDocTitle, doxygen.TypeDocFormula, doxygen.TypeDocImage, doxygen.TypeDocURLLink,
		doxygen.TypeListing, doxygen.TypeCodeLine, doxygen.TypeHighlight, doxygen.TypeTemplateParamList,
		doxygen.TypeInc, doxygen.TypeRef, doxygen.TypeCompoundRef, doxygen.TypeVerbatim,
		doxygen.TypeMixedContainer, doxygen.TypeDocList, doxygen.TypeDocListItem, doxygen.TypeText,
	} {
		assert.Contains(t, registry, nodeType)
	}
	assert.Len(t, registry, 36)
}
