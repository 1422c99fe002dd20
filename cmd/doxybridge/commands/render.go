package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	prom "github.com/prometheus/client_golang/prometheus"
	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/config"
	"git.home.luguber.info/inful/doxybridge/internal/diag"
	"git.home.luguber.info/inful/doxybridge/internal/docnode"
	"git.home.luguber.info/inful/doxybridge/internal/doxygen"
	"git.home.luguber.info/inful/doxybridge/internal/filter"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/logfields"
	"git.home.luguber.info/inful/doxybridge/internal/metrics"
	"git.home.luguber.info/inful/doxybridge/internal/render"
	"git.home.luguber.info/inful/doxybridge/internal/target"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Project     string `short:"p" help:"Project to render (defaults to default_project)"`
	Format      string `short:"f" default:"text" enum:"text,tree" help:"Output format: text outline or node tree"`
	MetricsFile string `name:"metrics-file" help:"Write render metrics in Prometheus text format to this file"`
	Tree        string `arg:"" optional:"" help:"Tree file to render instead of the project index"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Logging, root.Verbose, os.Stderr, g.RunID)
	g.Logger = logger

	project, err := cfg.Project(r.Project)
	if err != nil {
		return err
	}
	logger = logger.With(logfields.Project(project.Name))

	tree, file, err := r.load(project)
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var reg *prom.Registry
	if cfg.Metrics.Enabled || r.MetricsFile != "" {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	creator := render.NewCreator(doxygen.ParserFactory{}, project,
		render.WithLogger(logger),
		render.WithRecorder(recorder))
	factory := creator.CreateFactory(doxygen.TypeRoot,
		render.Host{Reporter: diag.NewSlogReporter(logger), Location: diag.Location{File: file}},
		filter.FromConfig(cfg.Filter),
		target.ForProject(project, creator.Nodes()))

	logger.Info("Rendering tree", logfields.File(file), logfields.NodeType(string(tree.NodeType())))
	frag, err := render.Render(factory, tree)
	if err != nil {
		return err
	}
	logger.Info("Render complete", logfields.Count(len(frag)))

	if err := r.write(g, frag); err != nil {
		return err
	}
	if reg != nil {
		return r.reportMetrics(g, reg)
	}
	return nil
}

// load reads the tree file named on the command line, or the project index.
func (r *RenderCmd) load(project *config.Project) (doxygen.Node, string, error) {
	if r.Tree != "" {
		n, err := doxygen.LoadFile(r.Tree)
		return n, r.Tree, err
	}
	index, err := doxygen.LoadIndex(project)
	if err != nil {
		return nil, "", err
	}
	return index, filepath.Join(project.Path, project.Index), nil
}

func (r *RenderCmd) write(g *Global, frag []gmast.Node) error {
	var err error
	if r.Format == "tree" {
		err = docnode.Tree(g.Stdout, frag)
	} else {
		_, err = fmt.Fprint(g.Stdout, docnode.Outline(frag))
	}
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write output").Build()
	}
	return nil
}

func (r *RenderCmd) reportMetrics(g *Global, reg *prom.Registry) error {
	totals, err := metrics.Totals(reg)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to gather metrics").Build()
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g.Logger.Info("Render metric", "metric", name, "value", totals[name])
	}

	if r.MetricsFile == "" {
		return nil
	}
	if err := prom.WriteToTextfile(r.MetricsFile, reg); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics file").
			WithContext("path", r.MetricsFile).
			Build()
	}
	return nil
}
