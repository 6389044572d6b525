package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/response_models"
)

type StatsRepository interface {
	CountUsers(ctx context.Context, since, until int64) (int64, error)
	CountTrips(ctx context.Context, since, until int64) (int64, error)
	UserTrend(ctx context.Context, since int64) ([]int64, error)
	TripTrend(ctx context.Context, since int64) ([]int64, error)
	UserGrowth(ctx context.Context) ([]response_models.GrowthPoint, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) countSince(ctx context.Context, model interface{}, since, until int64) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(model)
	if since > 0 {
		q = q.Where("created_at >= ?", since)
	}
	if until > 0 {
		q = q.Where("created_at < ?", until)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *statsRepository) CountUsers(ctx context.Context, since, until int64) (int64, error) {
	return r.countSince(ctx, &db_models.User{}, since, until)
}

func (r *statsRepository) CountTrips(ctx context.Context, since, until int64) (int64, error) {
	return r.countSince(ctx, &db_models.Trip{}, since, until)
}

func (r *statsRepository) trendSince(ctx context.Context, table string, since int64) ([]int64, error) {
	var counts []int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM `+table+`
		WHERE created_at >= ? AND deleted_at IS NULL
		GROUP BY to_char(to_timestamp(created_at), 'YYYY-MM-DD')
		ORDER BY to_char(to_timestamp(created_at), 'YYYY-MM-DD')`,
		since).Scan(&counts).Error
	return counts, err
}

func (r *statsRepository) UserTrend(ctx context.Context, since int64) ([]int64, error) {
	return r.trendSince(ctx, "users", since)
}

func (r *statsRepository) TripTrend(ctx context.Context, since int64) ([]int64, error) {
	return r.trendSince(ctx, "trips", since)
}

func (r *statsRepository) UserGrowth(ctx context.Context) ([]response_models.GrowthPoint, error) {
	var points []response_models.GrowthPoint
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(to_timestamp(created_at), 'YYYY-MM-DD') AS date, count(*) AS count
		FROM users
		WHERE deleted_at IS NULL
		GROUP BY to_char(to_timestamp(created_at), 'YYYY-MM-DD')
		ORDER BY date`).Scan(&points).Error
	return points, err
}
