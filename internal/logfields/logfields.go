package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID    = "run_id"
	KeyProject  = "project"
	KeyNodeType = "node_type"
	KeyKind     = "kind"
	KeyRefID    = "refid"
	KeyFile     = "file"
	KeyLine     = "line"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func Project(name string) slog.Attr { return slog.String(KeyProject, name) }
func NodeType(t string) slog.Attr   { return slog.String(KeyNodeType, t) }
func Kind(k string) slog.Attr       { return slog.String(KeyKind, k) }
func RefID(id string) slog.Attr     { return slog.String(KeyRefID, id) }
func File(path string) slog.Attr    { return slog.String(KeyFile, path) }
func Line(n int) slog.Attr          { return slog.Int(KeyLine, n) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
