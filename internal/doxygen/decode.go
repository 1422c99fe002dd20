package doxygen

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
)

// Decode reads one YAML-serialised tree. Mappings carry their node type in a
// "type" key; bare scalars inside content lists are Text leaves.
func Decode(r io.Reader) (Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.ParseError("empty tree document").Build()
		}
		return nil, errors.WrapError(err, errors.CategoryParse, "invalid tree document").Warning().Build()
	}
	if len(doc.Content) == 0 {
		return nil, errors.ParseError("empty tree document").Build()
	}
	return decodeNode(doc.Content[0])
}

// LoadFile decodes the tree stored at path.
func LoadFile(path string) (Node, error) {
	// #nosec G304 -- tree paths come from project configuration.
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to open tree file").
			WithContext("file", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	n, err := Decode(f)
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return nil, classified.WithContext("file", path)
		}
		return nil, err
	}
	return n, nil
}

// UnmarshalYAML decodes a content list, keeping source order.
func (ns *Nodes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*ns = Nodes{Text(value.Value)}
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return errors.ParseError("content must be a list").WithContext("line", value.Line).Build()
	}
	out := make(Nodes, 0, len(value.Content))
	for _, item := range value.Content {
		n, err := decodeNode(item)
		if err != nil {
			return err
		}
		out = append(out, n)
	}
	*ns = out
	return nil
}

// UnmarshalYAML decodes the wrapped value from the "value" key.
func (m *MixedContainer) UnmarshalYAML(value *yaml.Node) error {
	inner := mappingValue(value, "value")
	if inner == nil {
		return nil
	}
	n, err := decodeNode(inner)
	if err != nil {
		return err
	}
	m.Value = n
	return nil
}

func decodeNode(value *yaml.Node) (Node, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		return Text(value.Value), nil
	case yaml.MappingNode:
	default:
		return nil, errors.ParseError("node must be a mapping or a string").WithContext("line", value.Line).Build()
	}

	typ := mappingValue(value, "type")
	if typ == nil {
		return nil, errors.ParseError("node has no type").WithContext("line", value.Line).Build()
	}
	if NodeType(typ.Value) == TypeText {
		text := mappingValue(value, "text")
		if text == nil {
			return Text(""), nil
		}
		return Text(text.Value), nil
	}

	n := newNode(NodeType(typ.Value))
	if n == nil {
		return nil, errors.ParseError("unknown node type").
			WithContext("node_type", typ.Value).
			WithContext("line", typ.Line).
			Build()
	}
	if err := value.Decode(n); err != nil {
		if errors.IsClassified(err) {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryParse, "invalid node").
			Warning().
			WithContext("node_type", typ.Value).
			WithContext("line", value.Line).
			Build()
	}
	return n, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func newNode(t NodeType) Node {
	switch t {
	case TypeIndex:
		return &Index{}
	case TypeCompound:
		return &Compound{}
	case TypeDoxygenDef:
		return &DoxygenDef{}
	case TypeCompoundDef:
		return &CompoundDef{}
	case TypeSectionDef:
		return &SectionDef{}
	case TypeMemberDef:
		return &MemberDef{}
	case TypeEnumValue:
		return &EnumValue{}
	case TypeLinkedText:
		return &LinkedText{}
	case TypeDescription:
		return &Description{}
	case TypeParam:
		return &Param{}
	case TypeDocRefText:
		return &DocRefText{}
	case TypeDocHeading:
		return &DocHeading{}
	case TypeDocPara:
		return &DocPara{}
	case TypeDocMarkup:
		return &DocMarkup{}
	case TypeDocParamList:
		return &DocParamList{}
	case TypeDocParamListItem:
		return &DocParamListItem{}
	case TypeDocParamNameList:
		return &DocParamNameList{}
	case TypeDocParamName:
		return &DocParamName{}
	case TypeDocSect1:
		return &DocSect1{}
	case TypeDocSimpleSect:
		return &DocSimpleSect{}
	case TypeDocTitle:
		return &DocTitle{}
	case TypeDocFormula:
		return &DocFormula{}
	case TypeDocImage:
		return &DocImage{}
	case TypeDocURLLink:
		return &DocURLLink{}
	case TypeListing:
		return &Listing{}
	case TypeCodeLine:
		return &CodeLine{}
	case TypeHighlight:
		return &Highlight{}
	case TypeTemplateParamList:
		return &TemplateParamList{}
	case TypeInc:
		return &Inc{}
	case TypeRef:
		return &Ref{}
	case TypeCompoundRef:
		return &CompoundRef{}
	case TypeVerbatim:
		return &Verbatim{}
	case TypeMixedContainer:
		return &MixedContainer{}
	case TypeDocList:
		return &DocList{}
	case TypeDocListItem:
		return &DocListItem{}
	default:
		return nil
	}
}
