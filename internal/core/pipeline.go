package core

// Pipeline turns a raw completion into display text.  It holds no state
// between calls.
type Pipeline struct {
	MaxChars int
}

// NewPipeline returns a pipeline with the given answer budget.
func NewPipeline(maxChars int) Pipeline {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return Pipeline{MaxChars: maxChars}
}

// Process sanitizes, truncates and then enforces the disclaimer, in that
// order.  The disclaimer step runs last so truncation can never cut it.
func (p Pipeline) Process(raw, disclaimer string) string {
	bounded := Truncate(Sanitize(raw), p.MaxChars)
	return EnsureDisclaimer(bounded, disclaimer)
}

// ProcessResponse runs the default pipeline.
func ProcessResponse(raw, disclaimer string) string {
	return NewPipeline(DefaultMaxChars).Process(raw, disclaimer)
}
