package domain

// JobType identifies the kind of long-running work a Job represents.
type JobType uint8

const (
	// JobDeltaAnalysis is a delta analysis between the baseline and the working copy of a file.
	JobDeltaAnalysis JobType = iota
	// JobAutoRefactor is an AI-assisted refactoring of a single function.
	JobAutoRefactor
)

// String returns the string representation of the JobType.
func (t JobType) String() string {
	switch t {
	case JobDeltaAnalysis:
		return "delta-analysis"
	case JobAutoRefactor:
		return "auto-refactor"
	default:
		return "unknown"
	}
}

// JobState is the lifecycle state of a Job.
type JobState uint8

const (
	// JobRunning indicates the job is in flight.
	JobRunning JobState = iota
)

// String returns the string representation of the JobState.
func (s JobState) String() string {
	if s == JobRunning {
		return "running"
	}
	return "unknown"
}

// Job is an in-flight unit of engine work. Jobs compare by value.
type Job struct {
	Type  JobType
	State JobState
	Path  string
}

// NewJob creates a running job of the given type for path.
func NewJob(t JobType, path string) Job {
	return Job{Type: t, State: JobRunning, Path: path}
}
