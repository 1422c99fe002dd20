// Package filter decides which nodes of a documentation tree are rendered.
//
// A Filter sees the whole ancestor path of a node, innermost first, so rules
// can exclude a node because of where it sits (a private member nested three
// levels down) and not only because of what it is. Filters must be pure: the
// render engine calls Allow exactly once per node, before dispatch.
package filter

import (
	"slices"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/util/sets"
)

// Filter decides whether the node at path[0] is rendered.
type Filter interface {
	Allow(path []doxygen.Node) bool
}

// Func adapts a function to Filter.
type Func func(path []doxygen.Node) bool

func (f Func) Allow(path []doxygen.Node) bool { return f(path) }

// Open allows every node.
func Open() Filter {
	return Func(func([]doxygen.Node) bool { return true })
}

// Not inverts f.
func Not(f Filter) Filter {
	return Func(func(path []doxygen.Node) bool { return !f.Allow(path) })
}

// All allows a node only when every filter allows it.
func All(filters ...Filter) Filter {
	return Func(func(path []doxygen.Node) bool {
		for _, f := range filters {
			if !f.Allow(path) {
				return false
			}
		}
		return true
	})
}

// AnyAncestor matches when pred holds for the node or any of its ancestors.
func AnyAncestor(pred func(doxygen.Node) bool) Filter {
	return Func(func(path []doxygen.Node) bool {
		return slices.ContainsFunc(path, pred)
	})
}

// FromConfig builds the exclusion filter described by cfg. Every rule
// applies to the whole path: excluding a compound kind also hides everything
// below such a compound.
func FromConfig(cfg config.FilterConfig) Filter {
	var excluded []Filter

	if len(cfg.ExcludeNodeTypes) > 0 {
		types := sets.New(cfg.ExcludeNodeTypes...)
		excluded = append(excluded, AnyAncestor(func(n doxygen.Node) bool {
			return types.Has(string(n.NodeType()))
		}))
	}
	if len(cfg.ExcludeCompoundKinds) > 0 {
		kinds := sets.New(cfg.ExcludeCompoundKinds...)
		excluded = append(excluded, AnyAncestor(func(n doxygen.Node) bool {
			switch v := n.(type) {
			case *doxygen.Compound:
				return kinds.Has(v.Kind)
			case *doxygen.CompoundDef:
				return kinds.Has(v.Kind)
			}
			return false
		}))
	}
	if len(cfg.ExcludeMemberKinds) > 0 {
		kinds := sets.New(cfg.ExcludeMemberKinds...)
		excluded = append(excluded, AnyAncestor(func(n doxygen.Node) bool {
			m, ok := n.(*doxygen.MemberDef)
			return ok && kinds.Has(m.Kind)
		}))
	}
	if len(cfg.ExcludeProtections) > 0 {
		prots := sets.New(cfg.ExcludeProtections...)
		excluded = append(excluded, AnyAncestor(func(n doxygen.Node) bool {
			return prots.Has(protectionOf(n))
		}))
	}
	if len(cfg.ExcludeNames) > 0 {
		names := sets.New(cfg.ExcludeNames...)
		excluded = append(excluded, AnyAncestor(func(n doxygen.Node) bool {
			name := nameOf(n)
			return name != "" && names.Has(name)
		}))
	}

	if len(excluded) == 0 {
		return Open()
	}
	rules := make([]Filter, 0, len(excluded))
	for _, f := range excluded {
		rules = append(rules, Not(f))
	}
	return All(rules...)
}

func protectionOf(n doxygen.Node) string {
	switch v := n.(type) {
	case *doxygen.MemberDef:
		return v.Prot
	case *doxygen.EnumValue:
		return v.Prot
	case *doxygen.CompoundDef:
		return v.Prot
	case *doxygen.Ref:
		return v.Prot
	case *doxygen.CompoundRef:
		return v.Prot
	}
	return ""
}

func nameOf(n doxygen.Node) string {
	switch v := n.(type) {
	case *doxygen.Compound:
		return v.Name
	case *doxygen.CompoundDef:
		return v.Name
	case *doxygen.MemberDef:
		return v.Name
	case *doxygen.EnumValue:
		return v.Name
	}
	return ""
}
