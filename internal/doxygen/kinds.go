package doxygen

import "slices"

// MemberKinds is every memberdef kind the extractor emits.
var MemberKinds = []string{
	"define", "property", "event", "variable", "typedef", "enum", "function",
	"signal", "prototype", "friend", "dcop", "slot", "interface", "service",
}

// CompoundKinds is every compound kind the extractor emits.
var CompoundKinds = []string{
	"class", "struct", "union", "interface", "protocol", "category", "exception",
	"service", "singleton", "module", "type", "file", "namespace", "group",
	"page", "example", "dir", "concept",
}

// KnownMemberKind reports whether kind is a memberdef kind the extractor can emit.
func KnownMemberKind(kind string) bool {
	return slices.Contains(MemberKinds, kind)
}

// KnownCompoundKind reports whether kind is a compound kind the extractor can emit.
func KnownCompoundKind(kind string) bool {
	return slices.Contains(CompoundKinds, kind)
}
