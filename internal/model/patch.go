package model

// Span is a contiguous range [Start, Start+Length) within a text buffer.
type Span struct {
	Start  int `json:"start" yaml:"start"`
	Length int `json:"length" yaml:"length"`
}

// End returns the exclusive end offset of the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// PatchPlan is derived from a single FailedTest and discarded after one attempt.
type PatchPlan struct {
	// Line is the zero-based failing line, -1 when unresolved.
	Line     int     `json:"line" yaml:"line"`
	Expected *string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   *string `json:"actual,omitempty" yaml:"actual,omitempty"`
	Span     *Span   `json:"span,omitempty" yaml:"span,omitempty"`
}

// NewPatchPlan returns a plan with no resolved line.
func NewPatchPlan() PatchPlan {
	return PatchPlan{Line: -1}
}

// Actionable reports whether the plan may be applied.
func (p PatchPlan) Actionable() bool {
	return p.Line >= 0 && p.Expected != nil && p.Actual != nil && p.Span != nil
}
