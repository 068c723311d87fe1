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

type PackageRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPackageRepository(db *gorm.DB, log *zap.Logger) ports.PackageRepository {
	return &PackageRepository{
		db:  db,
		log: log,
	}
}

func (r *PackageRepository) Save(ctx context.Context, pkg *domain.ServicePackage) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *PackageRepository) FindByID(ctx context.Context, id string) (*domain.ServicePackage, error) {
	var pkg domain.ServicePackage
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) FindAll(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error) {
	var pkgs []domain.ServicePackage
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("price asc").Find(&pkgs).Error
	return pkgs, err
}

type SubscriptionRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSubscriptionRepository(db *gorm.DB, log *zap.Logger) ports.SubscriptionRepository {
	return &SubscriptionRepository{
		db:  db,
		log: log,
	}
}

func (r *SubscriptionRepository) Save(ctx context.Context, sub *domain.UserSubscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*domain.UserSubscription, error) {
	var sub domain.UserSubscription
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) FindByUserID(ctx context.Context, userID string) ([]domain.UserSubscription, error) {
	var subs []domain.UserSubscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) FindActiveByUserAndPackage(ctx context.Context, userID, packageID string, now time.Time) (*domain.UserSubscription, error) {
	var sub domain.UserSubscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND package_id = ?", userID, packageID).
		Where("status = ?", domain.SubscriptionStatusActive).
		Where("end_date >= ?", now).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// FindConsumable returns the soonest-expiring active subscription still
// holding swap entitlements, locked for the enclosing transaction so two
// concurrent completions cannot consume the same remaining swap.
func (r *SubscriptionRepository) FindConsumable(ctx context.Context, userID string, now time.Time) (*domain.UserSubscription, error) {
	var sub domain.UserSubscription
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Where("status = ?", domain.SubscriptionStatusActive).
		Where("end_date > ?", now).
		Where("remaining_swaps IS NULL OR remaining_swaps > 0").
		Order("end_date asc").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
