package services

import (
	"context"
	"time"

	"tripvisito/internal/models/response_models"
	"tripvisito/internal/repositories"
	"tripvisito/pkg/utils"
)

type StatsServiceInterface interface {
	Dashboard(ctx context.Context) (*response_models.DashboardStats, error)
	UserGrowth(ctx context.Context) ([]response_models.GrowthPoint, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo}
}

// Dashboard aggregates totals, a current-vs-previous month comparison, and a
// 7-day per-day trend for users and trips.
func (s *StatsService) Dashboard(ctx context.Context) (*response_models.DashboardStats, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Unix()
	lastMonthStart := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location()).Unix()
	trendStart := now.AddDate(0, 0, -7).Unix()

	users, err := s.statBlock(ctx, s.statsRepo.CountUsers, s.statsRepo.UserTrend, monthStart, lastMonthStart, trendStart)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	trips, err := s.statBlock(ctx, s.statsRepo.CountTrips, s.statsRepo.TripTrend, monthStart, lastMonthStart, trendStart)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardStats{Users: *users, Trips: *trips}, nil
}

func (s *StatsService) statBlock(
	ctx context.Context,
	count func(ctx context.Context, since, until int64) (int64, error),
	trend func(ctx context.Context, since int64) ([]int64, error),
	monthStart, lastMonthStart, trendStart int64,
) (*response_models.StatBlock, error) {
	total, err := count(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	currentMonth, err := count(ctx, monthStart, 0)
	if err != nil {
		return nil, err
	}
	lastMonth, err := count(ctx, lastMonthStart, monthStart)
	if err != nil {
		return nil, err
	}
	trendPoints, err := trend(ctx, trendStart)
	if err != nil {
		return nil, err
	}

	return &response_models.StatBlock{
		Total:        total,
		CurrentMonth: currentMonth,
		LastMonth:    lastMonth,
		Trend:        trendPoints,
	}, nil
}

func (s *StatsService) UserGrowth(ctx context.Context) ([]response_models.GrowthPoint, error) {
	points, err := s.statsRepo.UserGrowth(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return points, nil
}
