package ports

import (
	"context"

	"go.trai.ch/vigil/internal/core/domain"
)

// Engine is the external code-health analysis engine.
// It is treated as a black box: the same logical input is assumed to yield the same output,
// which is what makes its results cacheable by content digest.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type Engine interface {
	// Review analyzes the full content of a file.
	Review(ctx context.Context, path, content string) (*domain.ReviewResult, error)

	// Delta compares a baseline review with a working review.
	// A nil result with a nil error means the engine found no delta.
	Delta(ctx context.Context, baseline, current *domain.ReviewResult) (*domain.DeltaResult, error)

	// Preflight reports which languages and features the engine supports.
	// A nil response with a nil error means the feature is unavailable.
	Preflight(ctx context.Context, force bool) (*domain.PreflightResponse, error)

	// RefactorCandidates lists the functions in a file that can be refactored.
	RefactorCandidates(
		ctx context.Context,
		path, content string,
		issues []domain.Issue,
		preflight *domain.PreflightResponse,
	) ([]domain.RefactorCandidate, error)

	// Refactor produces a refactored version of a single candidate.
	Refactor(
		ctx context.Context,
		candidate domain.RefactorCandidate,
		preflight *domain.PreflightResponse,
	) (*domain.RefactorResult, error)
}
