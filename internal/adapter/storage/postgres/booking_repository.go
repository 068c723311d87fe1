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

type BookingRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBookingRepository(db *gorm.DB, log *zap.Logger) ports.BookingRepository {
	return &BookingRepository{
		db:  db,
		log: log,
	}
}

func (r *BookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate locks the booking row so concurrent check-in, complete
// and cancel calls serialize on the state machine.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Booking, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var bookings []domain.Booking
	err := query.Order("scheduled_at desc").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) FindByStationID(ctx context.Context, stationID string, date time.Time) ([]domain.Booking, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("station_id = ?", stationID).
		Where("scheduled_at >= ? AND scheduled_at < ?", startOfDay, endOfDay).
		Order("scheduled_at asc").
		Find(&bookings).Error
	return bookings, err
}
