package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripvisito/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	FindBySessionID(ctx context.Context, sessionID string) (*db_models.Payment, error)
	Update(ctx context.Context, payment *db_models.Payment) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Payment, error)
	HasConfirmed(ctx context.Context, userID, tripID string) (bool, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindBySessionID(ctx context.Context, sessionID string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "stripe_session_id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) HasConfirmed(ctx context.Context, userID, tripID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("user_id = ? AND trip_id = ? AND status = ?", userID, tripID, db_models.PaymentStatusConfirmed).
		Count(&count).Error
	return count > 0, err
}
