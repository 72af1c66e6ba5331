package service

import (
	"context"

	"tweetfeed/internal/repository"
)

type StatsService interface {
	CountRows(ctx context.Context) (map[string]int, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) CountRows(ctx context.Context) (map[string]int, error) {
	return s.statsRepo.CountRows(ctx)
}
