// Package docnode builds fragments of the target document tree.
//
// The tree is a goldmark AST. Core goldmark kinds are used where they exist
// (String, Emphasis, CodeSpan, Paragraph, Heading, List, Link, Image) and the
// goldmark extension AST supplies definition lists. The kinds goldmark has no
// equivalent for (superscript, subscript, generic spans, admonitions, raw and
// literal blocks, math, anchors, signatures) are declared here.
package docnode
