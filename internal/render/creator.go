package render

import (
	"log/slog"
	"sync"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/diag"
	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/filter"
	"git.home.luguber.info/inful/doxybridge/internal/logfields"
	"git.home.luguber.info/inful/doxybridge/internal/metrics"
	"git.home.luguber.info/inful/doxybridge/internal/target"
)

// ParserFactory builds the compound parser for a project.
type ParserFactory interface {
	CreateCompoundParser(project *config.Project) doxygen.CompoundParser
}

// Creator owns the renderer registry and produces factories.
//
// At most one compound parser is created per project; the first factory that
// needs one creates it and every later factory shares it.
type Creator struct {
	parsers  ParserFactory
	project  *config.Project
	nodes    docnode.Factory
	logger   *slog.Logger
	recorder metrics.Recorder
	registry map[doxygen.NodeType]constructor

	mu             sync.Mutex
	projectParsers map[string]doxygen.CompoundParser
}

// Option configures a Creator.
type Option func(*Creator)

// WithLogger sets the logger used for debug output and default diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Creator) { c.logger = logger }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder metrics.Recorder) Option {
	return func(c *Creator) { c.recorder = recorder }
}

// WithNodeFactory replaces the target node factory.
func WithNodeFactory(nodes docnode.Factory) Option {
	return func(c *Creator) { c.nodes = nodes }
}

// NewCreator creates a Creator for project.
func NewCreator(parsers ParserFactory, project *config.Project, opts ...Option) *Creator {
	if project == nil {
		project = &config.Project{}
	}
	c := &Creator{
		parsers:        parsers,
		project:        project,
		nodes:          docnode.NewFactory(),
		logger:         slog.Default(),
		recorder:       metrics.NoopRecorder{},
		registry:       defaultRegistry(),
		projectParsers: make(map[string]doxygen.CompoundParser),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Nodes is the target node factory renderers build with.
func (c *Creator) Nodes() docnode.Factory {
	return c.nodes
}

// CreateFactory creates the factory for a root node of rootType. A nil
// filter admits everything and nil targets disable linking.
func (c *Creator) CreateFactory(rootType doxygen.NodeType, host Host, f filter.Filter, targets target.Resolver) *Factory {
	if host.Reporter == nil {
		host.Reporter = diag.NewSlogReporter(c.logger)
	}
	if f == nil {
		f = filter.Open()
	}
	if targets == nil {
		targets = target.Null{}
	}
	return &Factory{
		nodeType: rootType,
		creator:  c,
		project:  c.project,
		host:     host,
		filter:   f,
		targets:  targets,
	}
}

// CreateChildFactory creates the factory for node's children, keeping every
// collaborator of parent.
func (c *Creator) CreateChildFactory(project *config.Project, node doxygen.Node, parent *Factory) *Factory {
	return &Factory{
		nodeType: node.NodeType(),
		creator:  c,
		project:  project,
		host:     parent.host,
		filter:   parent.filter,
		targets:  parent.targets,
	}
}

func (c *Creator) compoundParser(project *config.Project) doxygen.CompoundParser {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := project.Key()
	if p, ok := c.projectParsers[key]; ok {
		return p
	}
	c.logger.Debug("Creating compound parser", logfields.Project(project.Name))
	p := c.parsers.CreateCompoundParser(project)
	c.projectParsers[key] = p
	return p
}

func defaultRegistry() map[doxygen.NodeType]constructor {
	return map[doxygen.NodeType]constructor{
		doxygen.TypeIndex:             newIndexRenderer,
		doxygen.TypeCompound:          newCompoundRenderer,
		doxygen.TypeDoxygenDef:        newDoxygenDefRenderer,
		doxygen.TypeCompoundDef:       newCompoundDefRenderer,
		doxygen.TypeSectionDef:        newSectionDefRenderer,
		doxygen.TypeMemberDef:         newMemberRenderer,
		doxygen.TypeEnumValue:         newEnumValueRenderer,
		doxygen.TypeLinkedText:        newLinkedTextRenderer,
		doxygen.TypeDescription:       newDescriptionRenderer,
		doxygen.TypeParam:             newParamRenderer,
		doxygen.TypeDocRefText:        newDocRefTextRenderer,
		doxygen.TypeDocHeading:        newDocHeadingRenderer,
		doxygen.TypeDocPara:           newDocParaRenderer,
		doxygen.TypeDocMarkup:         newDocMarkupRenderer,
		doxygen.TypeDocParamList:      newDocParamListRenderer,
		doxygen.TypeDocParamListItem:  newDocParamListItemRenderer,
		doxygen.TypeDocParamNameList:  newDocParamNameListRenderer,
		doxygen.TypeDocParamName:      newDocParamNameRenderer,
		doxygen.TypeDocSect1:          newDocSect1Renderer,
		doxygen.TypeDocSimpleSect:     newDocSimpleSectRenderer,
		doxygen.TypeDocTitle:          newDocTitleRenderer,
		doxygen.TypeDocFormula:        newDocFormulaRenderer,
		doxygen.TypeDocImage:          newDocImageRenderer,
		doxygen.TypeDocURLLink:        newDocURLLinkRenderer,
		doxygen.TypeListing:           newListingRenderer,
		doxygen.TypeCodeLine:          newCodeLineRenderer,
		doxygen.TypeHighlight:         newHighlightRenderer,
		doxygen.TypeTemplateParamList: newTemplateParamListRenderer,
		doxygen.TypeInc:               newIncRenderer,
		doxygen.TypeRef:               newRefRenderer,
		doxygen.TypeCompoundRef:       newCompoundRefRenderer,
		doxygen.TypeVerbatim:          newVerbatimRenderer,
		doxygen.TypeMixedContainer:    newMixedContainerRenderer,
		doxygen.TypeDocList:           newDocListRenderer,
		doxygen.TypeDocListItem:       newDocListItemRenderer,
		doxygen.TypeText:              newTextRenderer,
	}
}

// Render renders root with factory and returns the resulting fragment.
func Render(factory *Factory, root doxygen.Node) ([]gmast.Node, error) {
	r, err := factory.CreateRenderer(NewContext(root))
	if err != nil {
		return nil, err
	}
	return r.Render()
}
