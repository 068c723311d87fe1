package station

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

const stationCacheTTL = 2 * time.Minute

// Service implements ports.StationService, the read surface over stations
// and their battery inventory.
type Service struct {
	uow   ports.UnitOfWork
	cache ports.Cache
	log   *zap.Logger
}

// NewService creates a new station service
func NewService(uow ports.UnitOfWork, cache ports.Cache, log *zap.Logger) *Service {
	return &Service{
		uow:   uow,
		cache: cache,
		log:   log,
	}
}

func (s *Service) GetStation(ctx context.Context, id string) (*domain.SwapStation, error) {
	cacheKey := "station:" + id
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var station domain.SwapStation
			if err := json.Unmarshal([]byte(cached), &station); err == nil {
				return &station, nil
			}
		}
	}

	var station *domain.SwapStation
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		station, err = repos.Stations().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if station == nil {
		return nil, domain.NewNotFoundError("station %s not found", id)
	}

	if s.cache != nil {
		if data, err := json.Marshal(station); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(data), stationCacheTTL); err != nil {
				s.log.Warn("Failed to cache station", zap.Error(err))
			}
		}
	}
	return station, nil
}

func (s *Service) ListStations(ctx context.Context, filter map[string]interface{}) ([]domain.SwapStation, error) {
	var stations []domain.SwapStation
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		stations, err = repos.Stations().FindAll(ctx, filter)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return stations, nil
}

// ListBatteries returns the battery inventory of one station. Not cached:
// battery statuses change with every swap.
func (s *Service) ListBatteries(ctx context.Context, stationID string) ([]domain.Battery, error) {
	var batteries []domain.Battery
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		station, err := repos.Stations().FindByID(ctx, stationID)
		if err != nil {
			return err
		}
		if station == nil {
			return domain.NewNotFoundError("station %s not found", stationID)
		}
		batteries, err = repos.Batteries().FindByStationID(ctx, stationID)
		return err
	})
	if err != nil {
		if domain.KindOf(err) != domain.ErrorKindInternal {
			return nil, err
		}
		return nil, domain.NewInternalError(err)
	}
	return batteries, nil
}
