package domain

// RefactorTarget is a single code-health issue inside a refactorable function.
type RefactorTarget struct {
	Category string `json:"category" yaml:"category"`
	Line     int    `json:"line" yaml:"line"`
}

// RefactorCandidate is a function the analysis engine considers refactorable.
// Body holds the exact source text of the function at the time it was found.
type RefactorCandidate struct {
	Name     string           `json:"name" yaml:"name"`
	Body     string           `json:"body" yaml:"body"`
	Range    Range            `json:"range" yaml:"range"`
	FileType string           `json:"fileType" yaml:"fileType"`
	Targets  []RefactorTarget `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// WithRange returns a copy of the candidate located at r.
// Targets are copied; the receiver is left untouched.
func (c RefactorCandidate) WithRange(r Range) RefactorCandidate {
	moved := c
	moved.Range = r
	if c.Targets != nil {
		moved.Targets = append([]RefactorTarget(nil), c.Targets...)
	}
	return moved
}
