package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
)

func TestCombinators(t *testing.T) {
	path := []doxygen.Node{doxygen.Text("x")}
	deny := Not(Open())

	assert.True(t, Open().Allow(path))
	assert.False(t, deny.Allow(path))
	assert.True(t, All().Allow(path))
	assert.False(t, All(Open(), deny).Allow(path))
	assert.True(t, All(Open(), Open()).Allow(path))
}

func TestFromConfig(t *testing.T) {
	private := &doxygen.MemberDef{Kind: "variable", Prot: "private", Name: "secret"}
	public := &doxygen.MemberDef{Kind: "function", Prot: "public", Name: "run"}
	define := &doxygen.MemberDef{Kind: "define", Prot: "public", Name: "MAX"}
	class := &doxygen.CompoundDef{Kind: "class", Name: "Widget"}
	detail := &doxygen.CompoundDef{Kind: "namespace", Name: "detail"}
	para := &doxygen.DocPara{}

	cfg := config.FilterConfig{
		ExcludeProtections: []string{"private"},
		ExcludeMemberKinds: []string{"define"},
		ExcludeNames:       []string{"detail"},
		ExcludeNodeTypes:   []string{"listing"},
	}
	f := FromConfig(cfg)

	tests := []struct {
		name  string
		path  []doxygen.Node
		allow bool
	}{
		{"public member", []doxygen.Node{public, class}, true},
		{"private member", []doxygen.Node{private, class}, false},
		{"para inside private member", []doxygen.Node{para, private, class}, false},
		{"define", []doxygen.Node{define, class}, false},
		{"member of excluded namespace", []doxygen.Node{public, detail}, false},
		{"listing", []doxygen.Node{&doxygen.Listing{}, class}, false},
		{"text under public member", []doxygen.Node{doxygen.Text("a"), para, public, class}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allow, f.Allow(tt.path))
		})
	}
}

func TestFromConfig_CompoundKinds(t *testing.T) {
	f := FromConfig(config.FilterConfig{ExcludeCompoundKinds: []string{"file"}})

	assert.False(t, f.Allow([]doxygen.Node{&doxygen.Compound{Kind: "file"}}))
	assert.False(t, f.Allow([]doxygen.Node{&doxygen.MemberDef{}, &doxygen.CompoundDef{Kind: "file"}}))
	assert.True(t, f.Allow([]doxygen.Node{&doxygen.Compound{Kind: "class"}}))
}

func TestFromConfig_EmptyIsOpen(t *testing.T) {
	f := FromConfig(config.FilterConfig{})
	assert.True(t, f.Allow([]doxygen.Node{&doxygen.MemberDef{Prot: "private"}}))
}
