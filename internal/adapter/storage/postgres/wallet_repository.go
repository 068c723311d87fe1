package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

type WalletRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewWalletRepository(db *gorm.DB, log *zap.Logger) ports.WalletRepository {
	return &WalletRepository{
		db:  db,
		log: log,
	}
}

func (r *WalletRepository) Save(ctx context.Context, wallet *domain.Wallet) error {
	return r.db.WithContext(ctx).Save(wallet).Error
}

func (r *WalletRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := r.db.WithContext(ctx).First(&wallet, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&wallet, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

// DebitBalance is the conditional update guarding the non-negative balance
// invariant. Under concurrent debits the database serializes the row
// updates, so only debits the balance can cover report success.
func (r *WalletRepository) DebitBalance(ctx context.Context, userID string, amount int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&domain.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *WalletRepository) CreditBalance(ctx context.Context, userID string, amount int64) error {
	result := r.db.WithContext(ctx).Model(&domain.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WalletRepository) SaveEntry(ctx context.Context, entry *domain.WalletTransaction) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *WalletRepository) GetEntries(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error) {
	var entries []domain.WalletTransaction
	query := r.db.WithContext(ctx).Where("wallet_id = ?", walletID).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&entries).Error
	return entries, err
}
