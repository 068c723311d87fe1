package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/adapter/queue"
	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/observability/telemetry"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

// Service implements ports.BookingService. Every state transition locks the
// booking row first, so concurrent check-ins, cancellations and completions
// of the same booking serialize and at most one wins.
type Service struct {
	uow    ports.UnitOfWork
	wallet ports.WalletService
	mq     queue.MessageQueue
	log    *zap.Logger
}

// NewService creates a new booking service
func NewService(uow ports.UnitOfWork, wallet ports.WalletService, mq queue.MessageQueue, log *zap.Logger) *Service {
	return &Service{
		uow:    uow,
		wallet: wallet,
		mq:     mq,
		log:    log,
	}
}

// Create books a swap appointment for the actor's vehicle.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *ports.CreateBookingRequest) (*domain.Booking, error) {
	if !actor.IsDriver() {
		return nil, domain.NewAuthError("only drivers may create bookings")
	}
	if req.VehicleID == "" || req.StationID == "" {
		return nil, domain.NewValidationError("vehicle_id and station_id are required")
	}
	if req.ScheduledAt.Before(time.Now()) {
		return nil, domain.NewValidationError("scheduled_at must not be in the past")
	}

	var booking *domain.Booking
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		vehicle, err := repos.Vehicles().FindByID(ctx, req.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil || vehicle.UserID != actor.ID {
			return domain.NewNotFoundError("vehicle %s not found", req.VehicleID)
		}

		station, err := repos.Stations().FindByID(ctx, req.StationID)
		if err != nil {
			return err
		}
		if station == nil {
			return domain.NewNotFoundError("station %s not found", req.StationID)
		}
		if station.Status != domain.StationStatusActive {
			return domain.NewConflictError("station %s is not accepting bookings", station.ID)
		}

		now := time.Now()
		booking = &domain.Booking{
			ID:          uuid.New().String(),
			UserID:      actor.ID,
			VehicleID:   req.VehicleID,
			StationID:   req.StationID,
			ScheduledAt: req.ScheduledAt,
			Status:      domain.BookingStatusPending,
			Notes:       req.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return repos.Bookings().Save(ctx, booking)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	telemetry.BookingsCreatedTotal.Inc()
	queue.PublishJSON(s.mq, s.log, "booking.created", map[string]interface{}{
		"booking_id": booking.ID,
		"user_id":    booking.UserID,
		"station_id": booking.StationID,
	})
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", booking.UserID),
		zap.String("station_id", booking.StationID),
		zap.Time("scheduled_at", booking.ScheduledAt),
	)
	return booking, nil
}

// Cancel cancels a booking that has not been checked in yet.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID string, reason string) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		booking, err = repos.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return domain.NewNotFoundError("booking %s not found", bookingID)
		}
		if actor.IsDriver() && booking.UserID != actor.ID {
			return domain.NewAuthError("booking %s belongs to another driver", bookingID)
		}
		if !booking.CanBeCancelled() {
			return domain.NewConflictError("booking cannot be cancelled in status %s", booking.Status)
		}

		booking.Status = domain.BookingStatusCancelled
		booking.CancellationReason = reason
		booking.UpdatedAt = time.Now()
		return repos.Bookings().Save(ctx, booking)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	queue.PublishJSON(s.mq, s.log, "booking.cancelled", map[string]interface{}{
		"booking_id": booking.ID,
		"user_id":    booking.UserID,
	})
	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID),
		zap.String("reason", reason),
	)
	return booking, nil
}

// CheckIn confirms the driver arrived. Staff only; it stamps the check-in
// time that later anchors the swap duration.
func (s *Service) CheckIn(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	if !actor.IsStaff() && !actor.IsAdmin() {
		return nil, domain.NewAuthError("only staff may check drivers in")
	}

	var booking *domain.Booking
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		booking, err = repos.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return domain.NewNotFoundError("booking %s not found", bookingID)
		}
		if !booking.CanCheckIn() {
			return domain.NewConflictError("booking cannot be checked in from status %s", booking.Status)
		}

		now := time.Now()
		booking.CheckedInAt = &now
		booking.CheckedInByStaffID = actor.ID
		booking.Status = domain.BookingStatusConfirmed
		booking.UpdatedAt = now
		return repos.Bookings().Save(ctx, booking)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	s.log.Info("Driver checked in",
		zap.String("booking_id", booking.ID),
		zap.String("staff_id", actor.ID),
	)
	return booking, nil
}

// Complete executes the battery swap for a confirmed booking. Within one
// unit of work it charges the driver (consuming a subscription entitlement
// when one exists, falling back to the wallet otherwise), writes the swap
// transaction, updates both battery statuses and closes the booking.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, req *ports.CompleteSwapRequest) (*domain.SwapTransaction, error) {
	if !actor.IsStaff() && !actor.IsAdmin() {
		return nil, domain.NewAuthError("only staff may complete swaps")
	}
	if req.OldBatteryID == "" || req.NewBatteryID == "" {
		return nil, domain.NewValidationError("old_battery_id and new_battery_id are required")
	}
	if req.OldBatteryID == req.NewBatteryID {
		return nil, domain.NewValidationError("old and new battery must differ")
	}
	if req.Amount < 0 {
		return nil, domain.NewValidationError("amount must not be negative")
	}

	var swap *domain.SwapTransaction
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		booking, err := repos.Bookings().FindByIDForUpdate(ctx, req.BookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return domain.NewNotFoundError("booking %s not found", req.BookingID)
		}
		if !booking.CanComplete() {
			return domain.NewConflictError("booking cannot be completed from status %s", booking.Status)
		}

		newBattery, err := repos.Batteries().FindByID(ctx, req.NewBatteryID)
		if err != nil {
			return err
		}
		if newBattery == nil || newBattery.StationID != booking.StationID {
			return domain.NewNotFoundError("battery %s not found at station %s", req.NewBatteryID, booking.StationID)
		}
		if newBattery.Status != domain.BatteryStatusAvailable {
			return domain.NewConflictError("battery %s is not available", newBattery.ID)
		}

		oldBattery, err := repos.Batteries().FindByID(ctx, req.OldBatteryID)
		if err != nil {
			return err
		}
		if oldBattery == nil {
			return domain.NewNotFoundError("battery %s not found", req.OldBatteryID)
		}

		now := time.Now()
		startedAt := now
		if booking.CheckedInAt != nil {
			startedAt = *booking.CheckedInAt
		}

		charged, method, err := s.charge(ctx, repos, booking, req, now)
		if err != nil {
			return err
		}

		swap = &domain.SwapTransaction{
			ID:                  uuid.New().String(),
			BookingID:           booking.ID,
			UserID:              booking.UserID,
			StationID:           booking.StationID,
			StaffID:             actor.ID,
			OldBatteryID:        oldBattery.ID,
			NewBatteryID:        newBattery.ID,
			SwapStartedAt:       startedAt,
			SwapCompletedAt:     now,
			SwapDurationMinutes: domain.SwapDurationMinutes(startedAt, now),
			Amount:              charged,
			Currency:            "BRL",
			CreatedAt:           now,
		}
		if err := repos.Swaps().Save(ctx, swap); err != nil {
			return err
		}

		payment := &domain.PaymentRecord{
			ID:            uuid.New().String(),
			UserID:        booking.UserID,
			TransactionID: &swap.ID,
			Method:        method,
			Status:        domain.PaymentStatusCompleted,
			Amount:        charged,
			Currency:      swap.Currency,
			Description:   "Battery swap at station " + booking.StationID,
			PaidAt:        now,
			CreatedAt:     now,
		}
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}

		if err := repos.Batteries().UpdateStatus(ctx, newBattery.ID, domain.BatteryStatusInUse); err != nil {
			return err
		}
		if err := repos.Batteries().UpdateStatus(ctx, oldBattery.ID, domain.BatteryStatusCharging); err != nil {
			return err
		}

		booking.Status = domain.BookingStatusCompleted
		booking.UpdatedAt = now
		return repos.Bookings().Save(ctx, booking)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	telemetry.SwapsCompletedTotal.Inc()
	telemetry.SwapDurationMinutes.Observe(float64(swap.SwapDurationMinutes))
	queue.PublishJSON(s.mq, s.log, "swap.completed", map[string]interface{}{
		"transaction_id": swap.ID,
		"booking_id":     swap.BookingID,
		"user_id":        swap.UserID,
		"station_id":     swap.StationID,
		"amount":         swap.Amount,
	})
	s.log.Info("Swap completed",
		zap.String("transaction_id", swap.ID),
		zap.String("booking_id", swap.BookingID),
		zap.Int("duration_minutes", swap.SwapDurationMinutes),
		zap.Int64("amount", swap.Amount),
	)
	return swap, nil
}

// charge settles the swap price. An active subscription with swaps left
// covers the swap for free; the entitlement row is locked so two swaps
// cannot consume the same remaining unit.
func (s *Service) charge(ctx context.Context, repos ports.RepositoryProvider, booking *domain.Booking, req *ports.CompleteSwapRequest, now time.Time) (int64, domain.PaymentMethod, error) {
	sub, err := repos.Subscriptions().FindConsumable(ctx, booking.UserID, now)
	if err != nil {
		return 0, "", err
	}
	if sub != nil {
		if sub.RemainingSwaps != nil {
			remaining := *sub.RemainingSwaps - 1
			sub.RemainingSwaps = &remaining
		}
		sub.UpdatedAt = now
		if err := repos.Subscriptions().Save(ctx, sub); err != nil {
			return 0, "", err
		}
		return 0, domain.PaymentMethodSubscription, nil
	}

	switch req.Method {
	case domain.PaymentMethodCash:
		return req.Amount, domain.PaymentMethodCash, nil
	case domain.PaymentMethodWallet, "":
		if req.Amount > 0 {
			if err := s.wallet.Debit(ctx, repos, booking.UserID, req.Amount, "Battery swap", booking.ID); err != nil {
				return 0, "", err
			}
		}
		return req.Amount, domain.PaymentMethodWallet, nil
	default:
		return 0, "", domain.NewValidationError("unsupported payment method: %s", req.Method)
	}
}

// Get returns a booking. Drivers only see their own.
func (s *Service) Get(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		booking, err = repos.Bookings().FindByID(ctx, bookingID)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if booking == nil {
		return nil, domain.NewNotFoundError("booking %s not found", bookingID)
	}
	if actor.IsDriver() && booking.UserID != actor.ID {
		return nil, domain.NewNotFoundError("booking %s not found", bookingID)
	}
	return booking, nil
}

// List returns the actor's bookings, newest first.
func (s *Service) List(ctx context.Context, actor domain.Actor, status string, limit, offset int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		bookings, err = repos.Bookings().FindByUserID(ctx, actor.ID, status, limit, offset)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return bookings, nil
}

func asDomainError(err error) error {
	if domain.KindOf(err) != domain.ErrorKindInternal {
		return err
	}
	return domain.NewInternalError(err)
}
