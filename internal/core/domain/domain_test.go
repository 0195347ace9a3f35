package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vigil/internal/core/domain"
)

func TestNewRange(t *testing.T) {
	tests := []struct {
		name    string
		r       [4]int
		wantErr bool
	}{
		{"single line", [4]int{3, 1, 3, 10}, false},
		{"multi line", [4]int{3, 5, 8, 1}, false},
		{"empty single line", [4]int{1, 4, 1, 4}, false},
		{"zero start line", [4]int{0, 1, 1, 1}, true},
		{"start after end", [4]int{5, 1, 4, 1}, true},
		{"zero column", [4]int{1, 0, 2, 1}, true},
		{"inverted columns", [4]int{2, 9, 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := domain.NewRange(tt.r[0], tt.r[1], tt.r[2], tt.r[3])
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrInvalidRange.Error())
				assert.Equal(t, domain.Range{}, r)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.Valid())
			assert.Equal(t, tt.r[0], r.StartLine)
			assert.Equal(t, tt.r[3], r.EndColumn)
		})
	}
}

func TestRange_String(t *testing.T) {
	r := domain.Range{StartLine: 2, StartColumn: 3, EndLine: 4, EndColumn: 5}
	assert.Equal(t, "2:3-4:5", r.String())
	assert.False(t, r.SingleLine())
}

func TestRefactorCandidate_WithRange(t *testing.T) {
	original := domain.RefactorCandidate{
		Name:    "Calculate",
		Body:    "int Calculate() { return 1; }",
		Range:   domain.Range{StartLine: 10, StartColumn: 1, EndLine: 10, EndColumn: 30},
		Targets: []domain.RefactorTarget{{Category: "Complex Method", Line: 10}},
	}
	moved := original.WithRange(domain.Range{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 30})

	assert.Equal(t, 10, original.Range.StartLine)
	assert.Equal(t, 2, moved.Range.StartLine)
	assert.Equal(t, original.Body, moved.Body)

	moved.Targets[0].Line = 2
	assert.Equal(t, 10, original.Targets[0].Line)
}

func TestJob_ValueEquality(t *testing.T) {
	a := domain.NewJob(domain.JobDeltaAnalysis, "/src/A.cs")
	b := domain.NewJob(domain.JobDeltaAnalysis, "/src/A.cs")
	c := domain.NewJob(domain.JobAutoRefactor, "/src/A.cs")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, domain.JobRunning, a.State)
	assert.Equal(t, "delta-analysis", a.Type.String())
	assert.Equal(t, "auto-refactor", c.Type.String())
	assert.Equal(t, "running", a.State.String())
}

func TestAvailabilityState_String(t *testing.T) {
	tests := []struct {
		state    domain.AvailabilityState
		expected string
	}{
		{domain.StateLoading, "loading"},
		{domain.StateEnabled, "enabled"},
		{domain.StateOffline, "offline"},
		{domain.StateError, "error"},
		{domain.StateDisabled, "disabled"},
		{domain.AvailabilityState(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestTransition_Signals(t *testing.T) {
	tests := []struct {
		name            string
		previous        domain.AvailabilityState
		current         domain.AvailabilityState
		backOnline      bool
		wentOffline     bool
		newError        bool
		firstActivation bool
	}{
		{"loading to enabled", domain.StateLoading, domain.StateEnabled, false, false, false, true},
		{"offline to enabled", domain.StateOffline, domain.StateEnabled, true, false, false, false},
		{"enabled to offline", domain.StateEnabled, domain.StateOffline, false, true, false, false},
		{"offline to offline", domain.StateOffline, domain.StateOffline, false, false, false, false},
		{"loading to error", domain.StateLoading, domain.StateError, false, false, true, false},
		{"error to error", domain.StateError, domain.StateError, false, false, false, false},
		{"enabled to loading", domain.StateEnabled, domain.StateLoading, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := domain.Transition{Previous: tt.previous, Current: tt.current}
			assert.Equal(t, tt.backOnline, tr.BackOnline())
			assert.Equal(t, tt.wentOffline, tr.WentOffline())
			assert.Equal(t, tt.newError, tr.NewError())
			assert.Equal(t, tt.firstActivation, tr.FirstActivation())
		})
	}
}

func TestPreflightResponse_SupportsFileType(t *testing.T) {
	resp := &domain.PreflightResponse{FileTypes: []string{".CS", "js", " ts "}}

	assert.True(t, resp.SupportsFileType("cs"))
	assert.True(t, resp.SupportsFileType(".cs"))
	assert.True(t, resp.SupportsFileType("JS"))
	assert.True(t, resp.SupportsFileType(".ts"))
	assert.False(t, resp.SupportsFileType("go"))
	assert.False(t, resp.SupportsFileType(""))

	var missing *domain.PreflightResponse
	assert.False(t, missing.SupportsFileType("cs"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, domain.LogLevelDebug, domain.ParseLogLevel("DEBUG"))
	assert.Equal(t, domain.LogLevelWarn, domain.ParseLogLevel("warning"))
	assert.Equal(t, domain.LogLevelError, domain.ParseLogLevel("error"))
	assert.Equal(t, domain.LogLevelInfo, domain.ParseLogLevel("verbose"))
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
}

func TestContentDigest_Short(t *testing.T) {
	d := domain.ContentDigest("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	assert.Equal(t, "e3b0c44298fc", d.Short())
	assert.Equal(t, "abc", domain.ContentDigest("abc").Short())
}
