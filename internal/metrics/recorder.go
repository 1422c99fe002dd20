package metrics

// DegradeReason enumerates why a dispatch fell back to a generic renderer.
type DegradeReason string

const (
	ReasonUnsupportedMarkup DegradeReason = "unsupported_markup"
	ReasonUnknownKind       DegradeReason = "unknown_kind"
)

// Recorder defines observability hooks for the render engine.
type Recorder interface {
	IncDispatched(nodeType string)
	IncFiltered(nodeType string)
	IncDegraded(nodeType string, reason DegradeReason)
	IncParseFailure(name string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncDispatched(string)              {}
func (NoopRecorder) IncFiltered(string)                {}
func (NoopRecorder) IncDegraded(string, DegradeReason) {}
func (NoopRecorder) IncParseFailure(string)            {}
