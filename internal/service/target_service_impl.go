package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/repository"
)

type targetService struct {
	targets    repository.YearlyTargetRepo
	configured domain.TargetTable
}

// NewTargetService serves stored targets layered over the configured ones.
func NewTargetService(targets repository.YearlyTargetRepo, configured domain.TargetTable) TargetService {
	return &targetService{targets: targets, configured: configured}
}

func (s *targetService) Set(ctx context.Context, year int, target time.Duration) error {
	if year < 1 {
		return fmt.Errorf("invalid year %d", year)
	}
	if target < 0 {
		return fmt.Errorf("target for %d must not be negative", year)
	}
	return s.targets.Upsert(ctx, domain.YearlyTarget{Year: year, Target: target})
}

func (s *targetService) List(ctx context.Context) ([]domain.YearlyTarget, error) {
	stored, err := s.targets.List(ctx)
	if err != nil {
		return nil, err
	}
	return mergeTargets(s.configured, stored).Targets(), nil
}

// Remove deletes a stored target. Targets coming from the settings file
// cannot be removed here.
func (s *targetService) Remove(ctx context.Context, year int) error {
	return s.targets.Delete(ctx, year)
}
