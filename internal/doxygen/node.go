package doxygen

import "reflect"

// NodeType is the structural category of a Node and drives top-level dispatch.
type NodeType string

const (
	TypeRoot              NodeType = "root"
	TypeIndex             NodeType = "doxygen"
	TypeCompound          NodeType = "compound"
	TypeDoxygenDef        NodeType = "doxygendef"
	TypeCompoundDef       NodeType = "compounddef"
	TypeSectionDef        NodeType = "sectiondef"
	TypeMemberDef         NodeType = "memberdef"
	TypeEnumValue         NodeType = "enumvalue"
	TypeLinkedText        NodeType = "linkedtext"
	TypeDescription       NodeType = "description"
	TypeParam             NodeType = "param"
	TypeDocRefText        NodeType = "docreftext"
	TypeDocHeading        NodeType = "docheading"
	TypeDocPara           NodeType = "docpara"
	TypeDocMarkup         NodeType = "docmarkup"
	TypeDocParamList      NodeType = "docparamlist"
	TypeDocParamListItem  NodeType = "docparamlistitem"
	TypeDocParamNameList  NodeType = "docparamnamelist"
	TypeDocParamName      NodeType = "docparamname"
	TypeDocSect1          NodeType = "docsect1"
	TypeDocSimpleSect     NodeType = "docsimplesect"
	TypeDocTitle          NodeType = "doctitle"
	TypeDocFormula        NodeType = "docformula"
	TypeDocImage          NodeType = "docimage"
	TypeDocURLLink        NodeType = "docurllink"
	TypeListing           NodeType = "listing"
	TypeCodeLine          NodeType = "codeline"
	TypeHighlight         NodeType = "highlight"
	TypeTemplateParamList NodeType = "templateparamlist"
	TypeInc               NodeType = "inc"
	TypeRef               NodeType = "ref"
	TypeCompoundRef       NodeType = "compoundref"
	TypeVerbatim          NodeType = "verbatim"
	TypeMixedContainer    NodeType = "mixedcontainer"
	TypeDocList           NodeType = "doclist"
	TypeDocListItem       NodeType = "doclistitem"

	// TypeText is the reserved type of plain text leaves.
	TypeText NodeType = "unicode-text"
)

// Node is any element of a documentation tree.
type Node interface {
	NodeType() NodeType
	isNode()
}

// Nodes is an ordered run of mixed content.
type Nodes []Node

// Nil reports whether n is nil or a typed nil pointer.
func Nil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

type sealed struct{}

func (sealed) isNode() {}

// Text is a plain text leaf.
type Text string

func (Text) NodeType() NodeType { return TypeText }
func (Text) isNode()            {}

// Index is the root of a project's index tree.
type Index struct {
	sealed `yaml:"-"`

	Compounds []*Compound `yaml:"compounds"`
}

// Compound is an index entry pointing at a compound's own tree file.
type Compound struct {
	sealed `yaml:"-"`

	RefID string `yaml:"refid"`
	Kind  string `yaml:"kind"`
	Name  string `yaml:"name"`
}

// DoxygenDef is the root of a compound tree file.
type DoxygenDef struct {
	sealed `yaml:"-"`

	CompoundDefs []*CompoundDef `yaml:"compounddefs"`
}

// CompoundDef is the full definition of a class, namespace, file, group, etc.
type CompoundDef struct {
	sealed `yaml:"-"`

	ID                  string             `yaml:"id"`
	Kind                string             `yaml:"kind"`
	Prot                string             `yaml:"prot,omitempty"`
	Name                string             `yaml:"compoundname"`
	Title               string             `yaml:"title,omitempty"`
	TemplateParamList   *TemplateParamList `yaml:"templateparamlist,omitempty"`
	BaseCompoundRefs    []*CompoundRef     `yaml:"basecompoundref,omitempty"`
	Includes            []*Inc             `yaml:"includes,omitempty"`
	InnerClasses        []*Ref             `yaml:"innerclass,omitempty"`
	InnerNamespaces     []*Ref             `yaml:"innernamespace,omitempty"`
	BriefDescription    *Description       `yaml:"briefdescription,omitempty"`
	DetailedDescription *Description       `yaml:"detaileddescription,omitempty"`
	SectionDefs         []*SectionDef      `yaml:"sectiondefs,omitempty"`
	ProgramListing      *Listing           `yaml:"programlisting,omitempty"`
}

// SectionDef groups members of one kind ("public-func", "define", ...).
type SectionDef struct {
	sealed `yaml:"-"`

	Kind        string       `yaml:"kind"`
	Header      string       `yaml:"header,omitempty"`
	Description *Description `yaml:"description,omitempty"`
	MemberDefs  []*MemberDef `yaml:"memberdefs,omitempty"`
}

// MemberDef is a documented member. Kind selects the member renderer and
// ArgsString distinguishes friend functions from friend class declarations.
type MemberDef struct {
	sealed `yaml:"-"`

	ID                  string             `yaml:"id"`
	Kind                string             `yaml:"kind"`
	Prot                string             `yaml:"prot,omitempty"`
	Static              bool               `yaml:"static,omitempty"`
	Const               bool               `yaml:"const,omitempty"`
	Virt                string             `yaml:"virt,omitempty"`
	Name                string             `yaml:"name"`
	Definition          string             `yaml:"definition,omitempty"`
	ArgsString          string             `yaml:"argsstring,omitempty"`
	Type                *LinkedText        `yaml:"type,omitempty"`
	Initializer         *LinkedText        `yaml:"initializer,omitempty"`
	TemplateParamList   *TemplateParamList `yaml:"templateparamlist,omitempty"`
	Params              []*Param           `yaml:"params,omitempty"`
	EnumValues          []*EnumValue       `yaml:"enumvalues,omitempty"`
	BriefDescription    *Description       `yaml:"briefdescription,omitempty"`
	DetailedDescription *Description       `yaml:"detaileddescription,omitempty"`
	InbodyDescription   *Description       `yaml:"inbodydescription,omitempty"`
}

// EnumValue is one enumerator of an enum member.
type EnumValue struct {
	sealed `yaml:"-"`

	ID                  string       `yaml:"id"`
	Prot                string       `yaml:"prot,omitempty"`
	Name                string       `yaml:"name"`
	Initializer         *LinkedText  `yaml:"initializer,omitempty"`
	BriefDescription    *Description `yaml:"briefdescription,omitempty"`
	DetailedDescription *Description `yaml:"detaileddescription,omitempty"`
}

// LinkedText is a type or initializer expression with embedded references.
type LinkedText struct {
	sealed `yaml:"-"`

	Content Nodes `yaml:"content"`
}

// Description is a brief, detailed or in-body description block.
type Description struct {
	sealed `yaml:"-"`

	Title   string `yaml:"title,omitempty"`
	Content Nodes  `yaml:"content"`
}

// Param is a function or template parameter.
type Param struct {
	sealed `yaml:"-"`

	Type             *LinkedText  `yaml:"type,omitempty"`
	DeclName         string       `yaml:"declname,omitempty"`
	DefName          string       `yaml:"defname,omitempty"`
	Array            string       `yaml:"array,omitempty"`
	DefVal           *LinkedText  `yaml:"defval,omitempty"`
	BriefDescription *Description `yaml:"briefdescription,omitempty"`
}

// DocRefText is a cross reference inside documentation or linked text.
type DocRefText struct {
	sealed `yaml:"-"`

	RefID   string `yaml:"refid"`
	KindRef string `yaml:"kindref,omitempty"`
	Content Nodes  `yaml:"content"`
}

// DocHeading is a heading inside a description.
type DocHeading struct {
	sealed `yaml:"-"`

	Level   int   `yaml:"level"`
	Content Nodes `yaml:"content"`
}

// DocPara is a paragraph of mixed inline and block content.
type DocPara struct {
	sealed `yaml:"-"`

	Content Nodes `yaml:"content"`
}

// DocMarkup is a styled inline run; Type is the markup name ("emphasis", "bold", ...).
type DocMarkup struct {
	sealed `yaml:"-"`

	Type    string `yaml:"markup"`
	Content Nodes  `yaml:"content"`
}

// DocParamList documents parameters, return values or exceptions.
type DocParamList struct {
	sealed `yaml:"-"`

	Kind  string              `yaml:"kind"`
	Items []*DocParamListItem `yaml:"items"`
}

// DocParamListItem pairs parameter names with their description.
type DocParamListItem struct {
	sealed `yaml:"-"`

	NameLists   []*DocParamNameList `yaml:"namelists"`
	Description *Description        `yaml:"description,omitempty"`
}

// DocParamNameList lists the names a DocParamListItem documents.
type DocParamNameList struct {
	sealed `yaml:"-"`

	Names []*DocParamName `yaml:"names"`
}

// DocParamName is one documented parameter name.
type DocParamName struct {
	sealed `yaml:"-"`

	Direction string `yaml:"direction,omitempty"`
	Content   Nodes  `yaml:"content"`
}

// DocSect1 is a titled section inside a description.
type DocSect1 struct {
	sealed `yaml:"-"`

	ID      string `yaml:"id,omitempty"`
	Title   string `yaml:"title,omitempty"`
	Content Nodes  `yaml:"content"`
}

// DocSimpleSect is a "see", "return", "note", "par", ... section.
type DocSimpleSect struct {
	sealed `yaml:"-"`

	Kind  string     `yaml:"kind"`
	Title *DocTitle  `yaml:"title,omitempty"`
	Paras []*DocPara `yaml:"paras"`
}

// DocTitle is the title of a "par" simple section.
type DocTitle struct {
	sealed `yaml:"-"`

	Content Nodes `yaml:"content"`
}

// DocFormula is a LaTeX formula.
type DocFormula struct {
	sealed `yaml:"-"`

	ID   string `yaml:"id,omitempty"`
	Text string `yaml:"text"`
}

// DocImage is an embedded image; Content is the caption.
type DocImage struct {
	sealed `yaml:"-"`

	Type    string `yaml:"format,omitempty"`
	Name    string `yaml:"name"`
	Width   string `yaml:"width,omitempty"`
	Height  string `yaml:"height,omitempty"`
	Content Nodes  `yaml:"content,omitempty"`
}

// DocURLLink is an external hyperlink.
type DocURLLink struct {
	sealed `yaml:"-"`

	URL     string `yaml:"url"`
	Content Nodes  `yaml:"content"`
}

// Listing is a block of source code.
type Listing struct {
	sealed `yaml:"-"`

	Filename  string      `yaml:"filename,omitempty"`
	CodeLines []*CodeLine `yaml:"codelines"`
}

// CodeLine is one line of a Listing.
type CodeLine struct {
	sealed `yaml:"-"`

	LineNo     int          `yaml:"lineno,omitempty"`
	Highlights []*Highlight `yaml:"highlights"`
}

// Highlight is a syntax-highlighted run within a CodeLine.
type Highlight struct {
	sealed `yaml:"-"`

	Class   string `yaml:"class,omitempty"`
	Content Nodes  `yaml:"content"`
}

// TemplateParamList holds the template parameters of a compound or member.
type TemplateParamList struct {
	sealed `yaml:"-"`

	Params []*Param `yaml:"params"`
}

// Inc is an include directive of a compound.
type Inc struct {
	sealed `yaml:"-"`

	RefID string `yaml:"refid,omitempty"`
	Local bool   `yaml:"local,omitempty"`
	Name  string `yaml:"name"`
}

// Ref points at an inner compound (class, namespace) defined in its own tree file.
type Ref struct {
	sealed `yaml:"-"`

	RefID string `yaml:"refid"`
	Prot  string `yaml:"prot,omitempty"`
	Name  string `yaml:"name"`
}

// CompoundRef names a base or derived compound.
type CompoundRef struct {
	sealed `yaml:"-"`

	RefID string `yaml:"refid,omitempty"`
	Prot  string `yaml:"prot,omitempty"`
	Virt  string `yaml:"virt,omitempty"`
	Name  string `yaml:"name"`
}

// Verbatim is preformatted documentation text.
type Verbatim struct {
	sealed `yaml:"-"`

	Text string `yaml:"text"`
}

// MixedContainer wraps a single value of mixed content.
type MixedContainer struct {
	sealed `yaml:"-"`

	Value Node `yaml:"-"`
}

// DocList is a bulleted or numbered list.
type DocList struct {
	sealed `yaml:"-"`

	Ordered bool           `yaml:"ordered,omitempty"`
	Items   []*DocListItem `yaml:"items"`
}

// DocListItem is one item of a DocList.
type DocListItem struct {
	sealed `yaml:"-"`

	Paras []*DocPara `yaml:"paras"`
}

func (*Index) NodeType() NodeType             { return TypeIndex }
func (*Compound) NodeType() NodeType          { return TypeCompound }
func (*DoxygenDef) NodeType() NodeType        { return TypeDoxygenDef }
func (*CompoundDef) NodeType() NodeType       { return TypeCompoundDef }
func (*SectionDef) NodeType() NodeType        { return TypeSectionDef }
func (*MemberDef) NodeType() NodeType         { return TypeMemberDef }
func (*EnumValue) NodeType() NodeType         { return TypeEnumValue }
func (*LinkedText) NodeType() NodeType        { return TypeLinkedText }
func (*Description) NodeType() NodeType       { return TypeDescription }
func (*Param) NodeType() NodeType             { return TypeParam }
func (*DocRefText) NodeType() NodeType        { return TypeDocRefText }
func (*DocHeading) NodeType() NodeType        { return TypeDocHeading }
func (*DocPara) NodeType() NodeType           { return TypeDocPara }
func (*DocMarkup) NodeType() NodeType         { return TypeDocMarkup }
func (*DocParamList) NodeType() NodeType      { return TypeDocParamList }
func (*DocParamListItem) NodeType() NodeType  { return TypeDocParamListItem }
func (*DocParamNameList) NodeType() NodeType  { return TypeDocParamNameList }
func (*DocParamName) NodeType() NodeType      { return TypeDocParamName }
func (*DocSect1) NodeType() NodeType          { return TypeDocSect1 }
func (*DocSimpleSect) NodeType() NodeType     { return TypeDocSimpleSect }
func (*DocTitle) NodeType() NodeType          { return TypeDocTitle }
func (*DocFormula) NodeType() NodeType        { return TypeDocFormula }
func (*DocImage) NodeType() NodeType          { return TypeDocImage }
func (*DocURLLink) NodeType() NodeType        { return TypeDocURLLink }
func (*Listing) NodeType() NodeType           { return TypeListing }
func (*CodeLine) NodeType() NodeType          { return TypeCodeLine }
func (*Highlight) NodeType() NodeType         { return TypeHighlight }
func (*TemplateParamList) NodeType() NodeType { return TypeTemplateParamList }
func (*Inc) NodeType() NodeType               { return TypeInc }
func (*Ref) NodeType() NodeType               { return TypeRef }
func (*CompoundRef) NodeType() NodeType       { return TypeCompoundRef }
func (*Verbatim) NodeType() NodeType          { return TypeVerbatim }
func (*MixedContainer) NodeType() NodeType    { return TypeMixedContainer }
func (*DocList) NodeType() NodeType           { return TypeDocList }
func (*DocListItem) NodeType() NodeType       { return TypeDocListItem }
