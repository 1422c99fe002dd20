package doxygen

import (
	"path/filepath"
	"sync"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
)

// CompoundParser loads the tree backing a compound.
type CompoundParser interface {
	ParseCompound(refid string) (*DoxygenDef, error)
}

// FileParser reads compound trees from "<dir>/<refid>.yaml" and caches them by refid.
type FileParser struct {
	dir string

	mu    sync.Mutex
	cache map[string]*DoxygenDef
}

// NewFileParser creates a parser rooted at dir.
func NewFileParser(dir string) *FileParser {
	return &FileParser{dir: dir, cache: make(map[string]*DoxygenDef)}
}

// Filename returns the tree file backing refid.
func (p *FileParser) Filename(refid string) string {
	return filepath.Join(p.dir, refid+".yaml")
}

// ParseCompound loads and caches the compound tree for refid.
func (p *FileParser) ParseCompound(refid string) (*DoxygenDef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if def, ok := p.cache[refid]; ok {
		return def, nil
	}

	filename := p.Filename(refid)
	where := errors.ErrorContext{"refid": refid, "file": filename}
	n, err := LoadFile(filename)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryParse, "unable to parse compound tree").
			Warning().
			WithContextMap(where).
			Build()
	}
	def, ok := n.(*DoxygenDef)
	if !ok {
		return nil, errors.ParseError("compound tree has unexpected root").
			WithContextMap(where).
			WithContext("node_type", string(n.NodeType())).
			Build()
	}
	p.cache[refid] = def
	return def, nil
}

// ParserFactory builds a FileParser for a project's tree directory.
type ParserFactory struct{}

// CreateCompoundParser returns a parser reading from project.Path.
func (ParserFactory) CreateCompoundParser(project *config.Project) CompoundParser {
	return NewFileParser(project.Path)
}

// LoadIndex loads the index tree configured for project.
func LoadIndex(project *config.Project) (*Index, error) {
	filename := filepath.Join(project.Path, project.Index)
	n, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	index, ok := n.(*Index)
	if !ok {
		return nil, errors.ParseError("index tree has unexpected root").
			WithContext("file", filename).
			WithContext("node_type", string(n.NodeType())).
			Build()
	}
	return index, nil
}
