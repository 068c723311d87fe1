package shift

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/observability/telemetry"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

// Service implements ports.ShiftService. The overlap check and the write it
// guards always run in one unit of work, with the staff user row locked, so
// concurrent scheduling for the same staff member serializes.
type Service struct {
	uow ports.UnitOfWork
	log *zap.Logger
}

// NewService creates a new shift scheduling service
func NewService(uow ports.UnitOfWork, log *zap.Logger) *Service {
	return &Service{
		uow: uow,
		log: log,
	}
}

// Create schedules a new shift for a staff member.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *ports.CreateShiftRequest) (*domain.StaffShift, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthError("only admins may create shifts")
	}
	if err := validateInterval(req.ShiftStart, req.ShiftEnd); err != nil {
		return nil, err
	}
	if req.StaffID == "" {
		return nil, domain.NewValidationError("staff_id is required")
	}

	var shift *domain.StaffShift
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		// The row lock serializes concurrent creates for this staff member;
		// the overlap check below is only sound while it is held.
		staff, err := repos.Users().FindByIDForUpdate(ctx, req.StaffID)
		if err != nil {
			return err
		}
		if staff == nil || !staff.IsActiveStaff() {
			return domain.NewNotFoundError("staff %s not found or not active staff", req.StaffID)
		}

		stationID := req.StationID
		if stationID == "" {
			stationID = staff.DefaultStationID
		}
		if stationID == "" {
			return domain.NewValidationError("station_id is required for staff without a home station")
		}

		if err := s.checkOverlap(ctx, repos, req.StaffID, req.ShiftStart, req.ShiftEnd, ""); err != nil {
			return err
		}

		now := time.Now()
		shift = &domain.StaffShift{
			ID:         uuid.New().String(),
			StaffID:    req.StaffID,
			StationID:  stationID,
			ShiftDate:  domain.DeriveShiftDate(req.ShiftStart),
			ShiftStart: req.ShiftStart,
			ShiftEnd:   req.ShiftEnd,
			Status:     domain.ShiftStatusScheduled,
			Notes:      req.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return repos.Shifts().Save(ctx, shift)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	s.log.Info("Shift created",
		zap.String("shift_id", shift.ID),
		zap.String("staff_id", shift.StaffID),
		zap.String("station_id", shift.StationID),
		zap.Time("shift_start", shift.ShiftStart),
	)
	return shift, nil
}

// Update applies a partial update. When either bound moves, the other is
// re-derived from the stored record and the overlap check reruns excluding
// the record itself.
func (s *Service) Update(ctx context.Context, actor domain.Actor, shiftID string, req *ports.UpdateShiftRequest) (*domain.StaffShift, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthError("only admins may update shifts")
	}

	var shift *domain.StaffShift
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		shift, err = repos.Shifts().FindByID(ctx, shiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.NewNotFoundError("shift %s not found", shiftID)
		}

		if _, err := repos.Users().FindByIDForUpdate(ctx, shift.StaffID); err != nil {
			return err
		}

		newStart := shift.ShiftStart
		newEnd := shift.ShiftEnd
		boundsChanged := false
		if req.ShiftStart != nil {
			newStart = *req.ShiftStart
			boundsChanged = true
		}
		if req.ShiftEnd != nil {
			newEnd = *req.ShiftEnd
			boundsChanged = true
		}
		newStatus := shift.Status
		if req.Status != nil {
			if !req.Status.Valid() {
				return domain.NewValidationError("invalid shift status: %s", *req.Status)
			}
			newStatus = *req.Status
		}

		if boundsChanged {
			if err := validateInterval(newStart, newEnd); err != nil {
				return err
			}
		}
		// A cancelled shift stops counting for overlap, so reviving one must
		// re-run the check even when the bounds stay put.
		uncancelled := shift.Status == domain.ShiftStatusCancelled && newStatus != domain.ShiftStatusCancelled
		if boundsChanged || uncancelled {
			if err := s.checkOverlap(ctx, repos, shift.StaffID, newStart, newEnd, shift.ID); err != nil {
				return err
			}
		}
		if boundsChanged {
			shift.ShiftStart = newStart
			shift.ShiftEnd = newEnd
			shift.ShiftDate = domain.DeriveShiftDate(newStart)
		}

		if req.StationID != nil {
			shift.StationID = *req.StationID
		}
		shift.Status = newStatus
		if req.Notes != nil {
			shift.Notes = *req.Notes
		}
		shift.UpdatedAt = time.Now()

		return repos.Shifts().Save(ctx, shift)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	s.log.Info("Shift updated", zap.String("shift_id", shift.ID))
	return shift, nil
}

// UpdateStatus advances a shift's status. Staff may only close out their own
// shift as completed, absent or cancelled; admins may set anything.
func (s *Service) UpdateStatus(ctx context.Context, actor domain.Actor, shiftID string, status domain.ShiftStatus) (*domain.StaffShift, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("invalid shift status: %s", status)
	}
	if !actor.IsAdmin() && !actor.IsStaff() {
		return nil, domain.NewAuthError("insufficient role")
	}

	var shift *domain.StaffShift
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		shift, err = repos.Shifts().FindByID(ctx, shiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.NewNotFoundError("shift %s not found", shiftID)
		}

		if !actor.IsAdmin() {
			if shift.StaffID != actor.ID {
				return domain.NewAuthError("cannot update another staff member's shift")
			}
			if !status.SelfServiceAllowed() {
				return domain.NewAuthError("staff may only set completed, absent or cancelled")
			}
			if shift.Status != domain.ShiftStatusScheduled {
				return domain.NewConflictError("shift already %s", shift.Status)
			}
		}

		// Reviving a cancelled shift puts its interval back in play, so it
		// needs the same serialized overlap check a create gets.
		if shift.Status == domain.ShiftStatusCancelled && status != domain.ShiftStatusCancelled {
			if _, err := repos.Users().FindByIDForUpdate(ctx, shift.StaffID); err != nil {
				return err
			}
			if err := s.checkOverlap(ctx, repos, shift.StaffID, shift.ShiftStart, shift.ShiftEnd, shift.ID); err != nil {
				return err
			}
		}

		shift.Status = status
		shift.UpdatedAt = time.Now()
		return repos.Shifts().Save(ctx, shift)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	s.log.Info("Shift status updated",
		zap.String("shift_id", shift.ID),
		zap.String("status", string(status)),
	)
	return shift, nil
}

// Delete hard-deletes a shift. Admin only.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, shiftID string) error {
	if !actor.IsAdmin() {
		return domain.NewAuthError("only admins may delete shifts")
	}

	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		shift, err := repos.Shifts().FindByID(ctx, shiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.NewNotFoundError("shift %s not found", shiftID)
		}
		return repos.Shifts().Delete(ctx, shiftID)
	})
	if err != nil {
		return asDomainError(err)
	}

	s.log.Info("Shift deleted", zap.String("shift_id", shiftID))
	return nil
}

// List returns shifts matching the filter. Staff actors only see their own.
func (s *Service) List(ctx context.Context, actor domain.Actor, filter ports.ShiftFilter) ([]domain.StaffShift, error) {
	switch {
	case actor.IsAdmin():
		// Unrestricted
	case actor.IsStaff():
		filter.StaffID = actor.ID
	default:
		return nil, domain.NewAuthError("insufficient role")
	}

	var shifts []domain.StaffShift
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		shifts, err = repos.Shifts().List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return shifts, nil
}

func (s *Service) checkOverlap(ctx context.Context, repos ports.RepositoryProvider, staffID string, start, end time.Time, excludeID string) error {
	overlapping, err := repos.Shifts().FindOverlapping(ctx, staffID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		telemetry.ShiftConflictsTotal.Inc()
		s.log.Warn("Overlapping shift rejected",
			zap.String("staff_id", staffID),
			zap.Time("shift_start", start),
			zap.Time("shift_end", end),
			zap.String("conflicts_with", overlapping[0].ID),
		)
		return domain.NewConflictError("overlapping shift")
	}
	return nil
}

func validateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return domain.NewValidationError("shift_start and shift_end are required")
	}
	if !end.After(start) {
		return domain.NewValidationError("shift_end must be after shift_start")
	}
	return nil
}

// asDomainError passes typed errors through and wraps storage failures.
func asDomainError(err error) error {
	if domain.KindOf(err) != domain.ErrorKindInternal {
		return err
	}
	return domain.NewInternalError(err)
}
