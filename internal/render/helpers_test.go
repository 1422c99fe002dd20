package render

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/diag"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/filter"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/metrics"
	"git.home.luguber.info/inful/doxybridge/internal/target"
)

// stubParser serves compound trees from memory.
type stubParser struct {
	defs map[string]*doxygen.DoxygenDef
}

func (p *stubParser) ParseCompound(refid string) (*doxygen.DoxygenDef, error) {
	if def, ok := p.defs[refid]; ok {
		return def, nil
	}
	return nil, errors.ParseError("unable to parse compound tree").
		WithContext("refid", refid).
		WithContext("file", "xml/"+refid+".yaml").
		Build()
}

// countingParsers counts how often a compound parser is created.
type countingParsers struct {
	parser doxygen.CompoundParser
	calls  atomic.Int32
}

func (c *countingParsers) CreateCompoundParser(*config.Project) doxygen.CompoundParser {
	c.calls.Add(1)
	return c.parser
}

// countingRecorder records metric increments.
type countingRecorder struct {
	mu            sync.Mutex
	dispatched    map[string]int
	filtered      map[string]int
	degraded      map[metrics.DegradeReason]int
	parseFailures int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		dispatched: map[string]int{},
		filtered:   map[string]int{},
		degraded:   map[metrics.DegradeReason]int{},
	}
}

func (r *countingRecorder) IncDispatched(nodeType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatched[nodeType]++
}

func (r *countingRecorder) IncFiltered(nodeType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filtered[nodeType]++
}

func (r *countingRecorder) IncDegraded(_ string, reason metrics.DegradeReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.degraded[reason]++
}

func (r *countingRecorder) IncParseFailure(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parseFailures++
}

// harness wires a Creator with in-memory collaborators.
type harness struct {
	project   *config.Project
	parsers   *countingParsers
	recorder  *countingRecorder
	collector *diag.Collector
	creator   *Creator
}

func newHarness(t *testing.T, defs map[string]*doxygen.DoxygenDef) *harness {
	t.Helper()
	h := &harness{
		project:   &config.Project{Name: "demo", Path: "xml", Index: config.DefaultIndexFile},
		parsers:   &countingParsers{parser: &stubParser{defs: defs}},
		recorder:  newCountingRecorder(),
		collector: &diag.Collector{},
	}
	h.creator = NewCreator(h.parsers, h.project, WithRecorder(h.recorder))
	return h
}

func (h *harness) factory(f filter.Filter) *Factory {
	return h.creator.CreateFactory(doxygen.TypeRoot, Host{Reporter: h.collector}, f, target.NewResolver(h.creator.Nodes()))
}

// rendererFor dispatches node as a child of parents (outermost first).
func (h *harness) rendererFor(t *testing.T, node doxygen.Node, parents ...doxygen.Node) Renderer {
	t.Helper()
	ctx := contextOf(node, parents...)
	r, err := h.factory(nil).CreateRenderer(ctx)
	require.NoError(t, err)
	return r
}

func contextOf(node doxygen.Node, parents ...doxygen.Node) Context {
	if len(parents) == 0 {
		return NewContext(node)
	}
	ctx := NewContext(parents[0])
	for _, p := range parents[1:] {
		ctx = ctx.Push(p)
	}
	return ctx.Push(node)
}

func decodeDef(t *testing.T, tree string) *doxygen.DoxygenDef {
	t.Helper()
	n, err := doxygen.Decode(strings.NewReader(tree))
	require.NoError(t, err)
	def, ok := n.(*doxygen.DoxygenDef)
	require.True(t, ok, "expected *DoxygenDef, got %T", n)
	return def
}

func configWithExcludedProtections(prot ...string) config.FilterConfig {
	return config.FilterConfig{ExcludeProtections: prot}
}
