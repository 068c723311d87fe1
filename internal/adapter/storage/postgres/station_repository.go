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

type StationRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStationRepository(db *gorm.DB, log *zap.Logger) ports.StationRepository {
	return &StationRepository{
		db:  db,
		log: log,
	}
}

func (r *StationRepository) Save(ctx context.Context, station *domain.SwapStation) error {
	return r.db.WithContext(ctx).Save(station).Error
}

func (r *StationRepository) FindByID(ctx context.Context, id string) (*domain.SwapStation, error) {
	var station domain.SwapStation
	err := r.db.WithContext(ctx).First(&station, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &station, nil
}

func (r *StationRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.SwapStation, error) {
	var stations []domain.SwapStation
	query := r.db.WithContext(ctx)
	if len(filter) > 0 {
		query = query.Where(filter)
	}
	err := query.Order("name asc").Find(&stations).Error
	return stations, err
}

func (r *StationRepository) UpdateStatus(ctx context.Context, id string, status domain.StationStatus) error {
	return r.db.WithContext(ctx).Model(&domain.SwapStation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

type BatteryRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBatteryRepository(db *gorm.DB, log *zap.Logger) ports.BatteryRepository {
	return &BatteryRepository{
		db:  db,
		log: log,
	}
}

func (r *BatteryRepository) Save(ctx context.Context, battery *domain.Battery) error {
	return r.db.WithContext(ctx).Save(battery).Error
}

func (r *BatteryRepository) FindByID(ctx context.Context, id string) (*domain.Battery, error) {
	var battery domain.Battery
	err := r.db.WithContext(ctx).First(&battery, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &battery, nil
}

func (r *BatteryRepository) FindByStationID(ctx context.Context, stationID string) ([]domain.Battery, error) {
	var batteries []domain.Battery
	err := r.db.WithContext(ctx).Where("station_id = ?", stationID).Order("serial_number asc").Find(&batteries).Error
	return batteries, err
}

func (r *BatteryRepository) UpdateStatus(ctx context.Context, id string, status domain.BatteryStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Battery{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}
