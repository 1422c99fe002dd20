// Package render transforms a documentation tree into target document nodes.
//
// A Creator owns the renderer registry and hands out Factories. A Factory
// looks at the node on top of a Context, consults the Filter, picks the
// Renderer specialization for the node's type (refined by kind, markup type,
// argument string or parent where needed) and returns it uninvoked. Renderers
// recurse by asking their child Factory for renderers of their children, so
// the output mirrors the filtered tree in source order.
//
//	creator := render.NewCreator(doxygen.ParserFactory{}, project)
//	factory := creator.CreateFactory(doxygen.TypeRoot, render.Host{Reporter: reporter}, filter.Open(), targets)
//	nodes, err := render.Render(factory, index)
package render
