package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

type SwapTransactionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSwapTransactionRepository(db *gorm.DB, log *zap.Logger) ports.SwapTransactionRepository {
	return &SwapTransactionRepository{
		db:  db,
		log: log,
	}
}

func (r *SwapTransactionRepository) Save(ctx context.Context, swap *domain.SwapTransaction) error {
	// Create, not Save: swap transactions are immutable once written.
	return r.db.WithContext(ctx).Create(swap).Error
}

func (r *SwapTransactionRepository) FindByID(ctx context.Context, id string) (*domain.SwapTransaction, error) {
	var swap domain.SwapTransaction
	err := r.db.WithContext(ctx).First(&swap, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &swap, nil
}

func (r *SwapTransactionRepository) FindByBookingID(ctx context.Context, bookingID string) (*domain.SwapTransaction, error) {
	var swap domain.SwapTransaction
	err := r.db.WithContext(ctx).First(&swap, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &swap, nil
}

func (r *SwapTransactionRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.SwapTransaction, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("swap_completed_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var swaps []domain.SwapTransaction
	err := query.Find(&swaps).Error
	return swaps, err
}
