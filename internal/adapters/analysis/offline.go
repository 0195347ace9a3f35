// Package analysis provides analysis engine adapters.
package analysis

import (
	"context"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
)

var _ ports.Engine = (*OfflineEngine)(nil)

// OfflineEngine is the engine used when no analysis backend is connected.
// Preflight reports the feature as unavailable and every analysis fails with
// domain.ErrEngineUnavailable.
type OfflineEngine struct{}

// NewOfflineEngine creates an OfflineEngine.
func NewOfflineEngine() *OfflineEngine {
	return &OfflineEngine{}
}

// Review implements ports.Engine.
func (e *OfflineEngine) Review(ctx context.Context, _, _ string) (*domain.ReviewResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, domain.ErrEngineUnavailable
}

// Delta implements ports.Engine.
func (e *OfflineEngine) Delta(ctx context.Context, _, _ *domain.ReviewResult) (*domain.DeltaResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, domain.ErrEngineUnavailable
}

// Preflight implements ports.Engine. It always returns a nil response.
func (e *OfflineEngine) Preflight(ctx context.Context, _ bool) (*domain.PreflightResponse, error) {
	return nil, ctx.Err()
}

// RefactorCandidates implements ports.Engine.
func (e *OfflineEngine) RefactorCandidates(
	ctx context.Context,
	_, _ string,
	_ []domain.Issue,
	_ *domain.PreflightResponse,
) ([]domain.RefactorCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, domain.ErrEngineUnavailable
}

// Refactor implements ports.Engine.
func (e *OfflineEngine) Refactor(
	ctx context.Context,
	_ domain.RefactorCandidate,
	_ *domain.PreflightResponse,
) (*domain.RefactorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, domain.ErrEngineUnavailable
}
