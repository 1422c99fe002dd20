package render

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/doxybridge/internal/diag"
	"git.home.luguber.info/inful/doxybridge/internal/docnode"
)

// ErrUnknownNodeType is wrapped by the error returned when a node's type has
// no registered renderer. It indicates a programming error, not bad input.
var ErrUnknownNodeType = stderrors.New("unknown node type")

const encodingExplanation = "Parsing errors are often due to unicode errors associated with the encoding " +
	"of the original source files. The extractor propagates invalid characters from the input source " +
	"files to its output."

// FormatParserError builds the warning fragment for a compound that could not
// be parsed and reports the same text once as a warning at loc. A nil
// reporter falls back to the default slog logger.
func FormatParserError(name string, err error, filename string, nodes docnode.Factory, reporter diag.Reporter, loc diag.Location, includeExplanation bool) []gmast.Node {
	warning := fmt.Sprintf("%s: Unable to parse file %q. ", name, filename)
	explanation := fmt.Sprintf("Reported error: %s. ", err)

	paras := []gmast.Node{
		nodes.Paragraph(nodes.Text(warning)),
		nodes.Paragraph(nodes.Text(explanation)),
	}
	message := warning + explanation
	if includeExplanation {
		paras = append(paras, nodes.Paragraph(nodes.Text(encodingExplanation)))
		message += encodingExplanation
	}

	if reporter == nil {
		reporter = diag.NewSlogReporter(slog.Default())
	}
	reporter.Report(diag.Warning(message, loc))
	return []gmast.Node{nodes.Warning(paras...)}
}
