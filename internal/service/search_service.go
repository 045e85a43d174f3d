package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

// SearchService is the employer-facing candidate search. Role gating happens
// before any query runs.
type SearchService struct {
	candidateRepo domain.CandidateRepository
}

func NewSearchService(candidateRepo domain.CandidateRepository) *SearchService {
	return &SearchService{candidateRepo: candidateRepo}
}

// Search runs the filter pipeline and returns one page with a total count.
func (s *SearchService) Search(ctx context.Context, caller *domain.User, filter domain.CandidateFilter) (*domain.CandidatePage, error) {
	if !caller.IsEmployer() {
		return nil, domain.ErrForbidden
	}

	filter.Normalize()

	candidates, total, err := s.candidateRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.CandidatePage{
		Candidates: candidates,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: domain.TotalPages(total, filter.Limit),
	}, nil
}

// Get fetches a single candidate with profile. Seekers without a profile are
// not visible to employers, here or in search.
func (s *SearchService) Get(ctx context.Context, caller *domain.User, id uuid.UUID) (*domain.Candidate, error) {
	if !caller.IsEmployer() {
		return nil, domain.ErrForbidden
	}

	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	return candidate, nil
}
