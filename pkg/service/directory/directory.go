// Package directory lets employees look up customers by login name.
package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/individual"
	"github.com/amirasaad/banking/pkg/repository"
)

// MaxResults bounds a single search.
const MaxResults = 50

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Search matches query as a case-insensitive substring of the login name,
// listing an exact match first. No match is an empty result, not an error.
func (s *Service) Search(ctx context.Context, query string) ([]*individual.Individual, error) {
	repo, err := s.uow.IndividualRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get individual repository: %w", err)
	}
	found, err := repo.Search(ctx, query, MaxResults)
	if err != nil {
		s.logger.Error("Search failed", "query", query, "error", err)
		return nil, err
	}
	s.logger.Info("Search completed", "query", query, "results", len(found))
	return found, nil
}
