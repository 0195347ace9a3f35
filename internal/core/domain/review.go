package domain

// ReviewKind discriminates the two review slots kept per file.
type ReviewKind uint8

const (
	// ReviewWorking is the review of the current editor content.
	ReviewWorking ReviewKind = iota
	// ReviewBaseline is the review of the baseline (committed) content.
	ReviewBaseline
)

// String returns the string representation of the ReviewKind.
func (k ReviewKind) String() string {
	if k == ReviewBaseline {
		return "baseline"
	}
	return "working"
}

// Issue is a single code-health finding reported by a review.
type Issue struct {
	Category string `json:"category" yaml:"category"`
	Message  string `json:"message" yaml:"message"`
	Function string `json:"function,omitempty" yaml:"function,omitempty"`
	Range    Range  `json:"range" yaml:"range"`
}

// ReviewResult is the engine's review of a full file.
type ReviewResult struct {
	// Score is nil when the engine could not score the file.
	Score  *float64 `json:"score,omitempty" yaml:"score,omitempty"`
	Issues []Issue  `json:"issues" yaml:"issues"`
}

// DeltaFinding is a change in code health for one function between two reviews.
type DeltaFinding struct {
	Function    string `json:"function" yaml:"function"`
	Category    string `json:"category" yaml:"category"`
	ChangeType  string `json:"changeType" yaml:"changeType"`
	Description string `json:"description" yaml:"description"`
	Range       *Range `json:"range,omitempty" yaml:"range,omitempty"`
}

// DeltaResult is the engine's comparison of a baseline review with a working review.
type DeltaResult struct {
	OldScore    *float64       `json:"oldScore,omitempty" yaml:"oldScore,omitempty"`
	NewScore    *float64       `json:"newScore,omitempty" yaml:"newScore,omitempty"`
	ScoreChange float64        `json:"scoreChange" yaml:"scoreChange"`
	Findings    []DeltaFinding `json:"findings" yaml:"findings"`
}

// RefactorResult is the engine's proposed rewrite of a refactor candidate.
type RefactorResult struct {
	Code       string   `json:"code" yaml:"code"`
	Confidence int      `json:"confidence" yaml:"confidence"`
	Reasons    []string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}
