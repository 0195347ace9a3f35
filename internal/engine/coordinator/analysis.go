package coordinator

import (
	"context"
	"path/filepath"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/vigil/internal/engine/cache"
	"go.trai.ch/vigil/internal/engine/stale"
	"go.trai.ch/zerr"
)

// Review returns the review of one slot of path, calling the engine only on a cache miss.
func (c *Coordinator) Review(
	ctx context.Context,
	path, content string,
	kind domain.ReviewKind,
) (*domain.ReviewResult, error) {
	if res := c.reviews.Get(cache.ReviewQuery{Path: path, Content: content, Kind: kind}); res != nil {
		return res, nil
	}

	ctx, span := c.tracer.Start(ctx, "engine.review",
		ports.WithAttribute("path", path),
		ports.WithAttribute("kind", kind),
	)
	defer span.End()

	res, err := c.engine.Review(ctx, path, content)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReviewFailed.Error()), "path", path)
	}
	if res == nil {
		res = &domain.ReviewResult{}
	}

	c.reviews.Put(cache.ReviewEntry{Path: path, Content: content, Kind: kind, Result: res})
	span.SetAttribute("issues", len(res.Issues))
	return res, nil
}

// Delta returns the delta analysis between baseline and current, calling the engine on a miss.
// While the engine runs, a delta-analysis job for path is tracked. A nil result means no delta.
func (c *Coordinator) Delta(ctx context.Context, path, baseline, current string) (*domain.DeltaResult, error) {
	if res, ok := c.deltas.Get(cache.DeltaQuery{Path: path, Baseline: baseline, Current: current}); ok {
		return res, nil
	}

	ctx, span := c.tracer.Start(ctx, "engine.delta", ports.WithAttribute("path", path))
	defer span.End()

	var res *domain.DeltaResult
	err := c.jobs.Track(domain.NewJob(domain.JobDeltaAnalysis, path), func() error {
		old, err := c.Review(ctx, path, baseline, domain.ReviewBaseline)
		if err != nil {
			return err
		}
		cur, err := c.Review(ctx, path, current, domain.ReviewWorking)
		if err != nil {
			return err
		}
		res, err = c.engine.Delta(ctx, old, cur)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDeltaFailed.Error()), "path", path)
	}

	c.deltas.Put(cache.DeltaEntry{Path: path, Baseline: baseline, Current: current, Result: res})
	return res, nil
}

// Candidates returns the refactorable functions of path. It returns an empty list when
// auto-refactoring is not activated or the language is not supported.
func (c *Coordinator) Candidates(ctx context.Context, path, content string) ([]domain.RefactorCandidate, error) {
	if !c.preflight.Config().Activated || !c.preflight.IsSupportedLanguage(filepath.Ext(path)) {
		return []domain.RefactorCandidate{}, nil
	}

	q := cache.CandidateQuery{Path: path, Content: content}
	if found, ok := c.candidates.Lookup(q); ok {
		return found, nil
	}

	review, err := c.Review(ctx, path, content, domain.ReviewWorking)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "engine.candidates", ports.WithAttribute("path", path))
	defer span.End()

	found, err := c.engine.RefactorCandidates(ctx, path, content, review.Issues, c.preflight.Cached())
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCandidatesFailed.Error()), "path", path)
	}

	c.candidates.Put(cache.CandidateEntry{Path: path, Content: content, Candidates: found})
	span.SetAttribute("candidates", len(found))
	return c.candidates.Get(q), nil
}

// Refactor asks the engine to rewrite candidate. The candidate is first revalidated against
// content; a stale candidate fails with domain.ErrCandidateStale.
func (c *Coordinator) Refactor(
	ctx context.Context,
	path, content string,
	candidate domain.RefactorCandidate,
) (*domain.RefactorResult, error) {
	if !c.preflight.Config().Activated {
		return nil, zerr.With(domain.ErrRefactorUnavailable, "status", c.availability.State().String())
	}

	fresh, ok := stale.Revalidate(content, candidate)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrCandidateStale, "path", path), "function", candidate.Name)
	}

	ctx, span := c.tracer.Start(ctx, "engine.refactor",
		ports.WithAttribute("path", path),
		ports.WithAttribute("function", fresh.Name),
	)
	defer span.End()

	var res *domain.RefactorResult
	err := c.jobs.Track(domain.NewJob(domain.JobAutoRefactor, path), func() error {
		var err error
		res, err = c.engine.Refactor(ctx, fresh, c.preflight.Cached())
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRefactorFailed.Error()), "path", path)
	}
	return res, nil
}
