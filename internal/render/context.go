package render

import "git.home.luguber.info/inful/doxybridge/internal/doxygen"

// Context is the ancestor path of the node being rendered, innermost first.
// It is never empty and never modified; Push returns a new Context.
type Context struct {
	stack []doxygen.Node
}

// NewContext starts a path at root.
func NewContext(root doxygen.Node) Context {
	return Context{stack: []doxygen.Node{root}}
}

// Push returns the context for child, one level below c.
func (c Context) Push(child doxygen.Node) Context {
	stack := make([]doxygen.Node, 0, len(c.stack)+1)
	stack = append(stack, child)
	stack = append(stack, c.stack...)
	return Context{stack: stack}
}

// Node is the node being rendered.
func (c Context) Node() doxygen.Node {
	return c.stack[0]
}

// Parent is the immediate ancestor, or nil at the root.
func (c Context) Parent() doxygen.Node {
	if len(c.stack) < 2 {
		return nil
	}
	return c.stack[1]
}

// Path is the full ancestor path, innermost first. Callers must not modify it.
func (c Context) Path() []doxygen.Node {
	return c.stack
}

// Depth is the number of nodes on the path.
func (c Context) Depth() int {
	return len(c.stack)
}
