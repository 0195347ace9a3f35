package fs

import (
	"os"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ReadCandidates decodes refactor candidates from a YAML file.
// The file holds either a single candidate mapping or a sequence of them.
func ReadCandidates(path string) ([]domain.RefactorCandidate, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReadDocumentFailed.Error()), "path", path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCandidateParseFailed.Error()), "path", path)
	}
	if len(root.Content) == 0 {
		return nil, zerr.With(domain.ErrCandidateParseFailed, "path", path)
	}

	doc := root.Content[0]
	var candidates []domain.RefactorCandidate
	switch doc.Kind {
	case yaml.SequenceNode:
		err = doc.Decode(&candidates)
	case yaml.MappingNode:
		var c domain.RefactorCandidate
		err = doc.Decode(&c)
		candidates = []domain.RefactorCandidate{c}
	default:
		return nil, zerr.With(domain.ErrCandidateParseFailed, "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCandidateParseFailed.Error()), "path", path)
	}
	return candidates, nil
}
