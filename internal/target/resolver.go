// Package target creates the anchors cross references point at.
package target

import (
	"sync"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/util/sets"
)

// Resolver turns a refid into the anchor nodes that make it addressable.
type Resolver interface {
	CreateTarget(refid string) []gmast.Node
	// URI returns the link destination for refid.
	URI(refid string) string
}

// DocumentResolver emits one anchor per refid for a single output document.
type DocumentResolver struct {
	nodes docnode.Factory

	mu  sync.Mutex
	ids sets.Set[string]
}

// NewResolver creates a resolver for one output document.
func NewResolver(nodes docnode.Factory) *DocumentResolver {
	return &DocumentResolver{nodes: nodes, ids: sets.New[string]()}
}

// CreateTarget returns an anchor for refid the first time it is requested
// and nothing afterwards, so each id exists once in the document.
func (r *DocumentResolver) CreateTarget(refid string) []gmast.Node {
	if refid == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ids.Add(refid) {
		return nil
	}
	return []gmast.Node{r.nodes.Target(refid)}
}

// Has reports whether an anchor for refid was emitted.
func (r *DocumentResolver) Has(refid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids.Has(refid)
}

func (r *DocumentResolver) URI(refid string) string {
	return "#" + refid
}

// Null never creates anchors; used for projects rendered without links.
type Null struct{}

func (Null) CreateTarget(string) []gmast.Node { return nil }
func (Null) URI(string) string                { return "" }

// ForProject returns Null for no-link projects and a DocumentResolver otherwise.
func ForProject(project *config.Project, nodes docnode.Factory) Resolver {
	if project != nil && project.NoLink {
		return Null{}
	}
	return NewResolver(nodes)
}
