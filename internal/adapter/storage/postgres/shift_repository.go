package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

type ShiftRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewShiftRepository(db *gorm.DB, log *zap.Logger) ports.ShiftRepository {
	return &ShiftRepository{
		db:  db,
		log: log,
	}
}

func (r *ShiftRepository) Save(ctx context.Context, shift *domain.StaffShift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *ShiftRepository) FindByID(ctx context.Context, id string) (*domain.StaffShift, error) {
	var shift domain.StaffShift
	err := r.db.WithContext(ctx).First(&shift, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shift, nil
}

// FindOverlapping applies the interval predicate
// shift_start < end AND shift_end > start over the staff member's
// non-cancelled shifts. Callers run this inside a unit of work holding the
// staff row lock; otherwise two concurrent creates could both pass.
func (r *ShiftRepository) FindOverlapping(ctx context.Context, staffID string, start, end time.Time, excludeID string) ([]domain.StaffShift, error) {
	var shifts []domain.StaffShift
	query := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("status <> ?", domain.ShiftStatusCancelled).
		Where("shift_start < ? AND shift_end > ?", end, start)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) List(ctx context.Context, filter ports.ShiftFilter) ([]domain.StaffShift, error) {
	query := r.db.WithContext(ctx).Model(&domain.StaffShift{})

	if filter.StaffID != "" {
		query = query.Where("staff_id = ?", filter.StaffID)
	}
	if filter.StationID != "" {
		query = query.Where("station_id = ?", filter.StationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		query = query.Where("shift_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("shift_date <= ?", filter.DateTo)
	}
	if !filter.IncludePast && filter.DateFrom == "" && filter.DateTo == "" {
		query = query.Where("shift_end >= ?", time.Now())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var shifts []domain.StaffShift
	err := query.Order("shift_start asc").Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.StaffShift{}, "id = ?", id).Error
}
