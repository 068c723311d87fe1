package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

type PaymentRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPaymentRepository(db *gorm.DB, log *zap.Logger) ports.PaymentRepository {
	return &PaymentRepository{
		db:  db,
		log: log,
	}
}

func (r *PaymentRepository) Save(ctx context.Context, payment *domain.PaymentRecord) error {
	// Payment records are immutable after creation.
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	var payment domain.PaymentRecord
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.PaymentRecord, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("paid_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var payments []domain.PaymentRecord
	err := query.Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) FindBySubscriptionID(ctx context.Context, subscriptionID string) ([]domain.PaymentRecord, error) {
	var payments []domain.PaymentRecord
	err := r.db.WithContext(ctx).Where("subscription_id = ?", subscriptionID).Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) ([]domain.PaymentRecord, error) {
	var payments []domain.PaymentRecord
	err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Find(&payments).Error
	return payments, err
}
