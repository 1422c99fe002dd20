package render

import (
	"fmt"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/diag"
	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/filter"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/logfields"
	"git.home.luguber.info/inful/doxybridge/internal/metrics"
	"git.home.luguber.info/inful/doxybridge/internal/target"
)

// Host is the output side a factory renders into.
type Host struct {
	// Reporter receives warnings and notices. Nil logs them through the creator's logger.
	Reporter diag.Reporter
	// Location is the position diagnostics are attributed to.
	Location diag.Location
}

// Factory picks the renderer for one node. A Factory is bound to the type of
// the node it was created for; CreateRenderer is pure apart from the lazily
// created compound parser and never invokes the renderer it returns.
type Factory struct {
	nodeType doxygen.NodeType
	creator  *Creator
	project  *config.Project
	host     Host
	filter   filter.Filter
	targets  target.Resolver
}

// NodeType is the type of the node this factory was created for.
func (f *Factory) NodeType() doxygen.NodeType {
	return f.nodeType
}

// CreateRenderer returns the renderer for the node on top of ctx.
func (f *Factory) CreateRenderer(ctx Context) (Renderer, error) {
	node := ctx.Node()
	if doxygen.Nil(node) {
		return nil, errors.InternalError("cannot render a nil node").
			WithContext("depth", ctx.Depth()).
			Build()
	}
	nodeType := node.NodeType()
	recorder := f.creator.recorder

	if !f.filter.Allow(ctx.Path()) {
		recorder.IncFiltered(string(nodeType))
		return NullRenderer{}, nil
	}

	children := f.creator.CreateChildFactory(f.project, node, f)

	ctor, ok := f.creator.registry[nodeType]
	if !ok {
		return nil, errors.WrapError(ErrUnknownNodeType, errors.CategoryInternal, "no renderer registered for node type").
			Fatal().
			WithContext(logfields.KeyNodeType, string(nodeType)).
			Build()
	}
	recorder.IncDispatched(string(nodeType))

	var opts options
	switch n := node.(type) {
	case *doxygen.DocMarkup:
		opts.markup = f.markupCreator(n)
	case *doxygen.Verbatim:
		opts.content = EmbedContent
	case *doxygen.Compound:
		switch n.Kind {
		case "dir":
			return NullRenderer{}, nil
		case "file", "page", "example", "group":
			ctor = newFileRenderer
		default:
			if !doxygen.KnownCompoundKind(n.Kind) {
				f.unknownKind(nodeType, n.Kind)
			}
			opts.parser = f.creator.compoundParser(f.project)
		}
	case *doxygen.MemberDef:
		ctor = f.memberConstructor(n, ctor)
	case *doxygen.Param:
		parent := ctx.Parent()
		opts.outputDefName = parent == nil || parent.NodeType() != doxygen.TypeTemplateParamList
	case *doxygen.DocSimpleSect:
		if n.Kind == "par" {
			ctor = newParSimpleSectRenderer
		}
	case *doxygen.Ref:
		opts.parser = f.creator.compoundParser(f.project)
	}

	return ctor(Base{
		project:  f.project,
		ctx:      ctx,
		children: children,
		nodes:    f.creator.nodes,
		targets:  f.targets,
		host:     f.host,
		logger:   f.creator.logger,
		recorder: recorder,
	}, opts), nil
}

func (f *Factory) markupCreator(n *doxygen.DocMarkup) docnode.InlineFunc {
	nodes := f.creator.nodes
	switch n.Type {
	case "emphasis":
		return nodes.Emphasis
	case "computeroutput":
		return nodes.Literal
	case "bold":
		return nodes.Strong
	case "superscript":
		return nodes.Superscript
	case "subscript":
		return nodes.Subscript
	case "center", "small":
		f.report(diag.Notice(fmt.Sprintf("does not currently handle '%s' text display", n.Type)))
		f.creator.recorder.IncDegraded(string(doxygen.TypeDocMarkup), metrics.ReasonUnsupportedMarkup)
	}
	return nodes.Inline
}

func (f *Factory) memberConstructor(n *doxygen.MemberDef, fallback constructor) constructor {
	switch n.Kind {
	case "function", "slot":
		return newFunctionRenderer
	case "enum":
		return newEnumRenderer
	case "typedef":
		return newTypedefRenderer
	case "variable":
		return newVariableRenderer
	case "define":
		return newDefineRenderer
	case "friend":
		// Friend functions carry an argument list, friend class declarations don't.
		if n.ArgsString != "" {
			return newFunctionRenderer
		}
	default:
		if !doxygen.KnownMemberKind(n.Kind) {
			f.unknownKind(doxygen.TypeMemberDef, n.Kind)
		}
	}
	return fallback
}

func (f *Factory) unknownKind(nodeType doxygen.NodeType, kind string) {
	f.creator.logger.Debug("Unknown kind, using generic renderer",
		logfields.NodeType(string(nodeType)),
		logfields.Kind(kind))
	f.report(diag.Notice(fmt.Sprintf("unknown %s kind '%s', rendering generically", nodeType, kind)))
	f.creator.recorder.IncDegraded(string(nodeType), metrics.ReasonUnknownKind)
}

func (f *Factory) report(d diag.Diagnostic) {
	if f.host.Reporter != nil {
		f.host.Reporter.Report(d)
	}
}
