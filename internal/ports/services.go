package ports

import (
	"context"
	"time"

	"github.com/seu-repo/sigec-swap/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // token, refresh, err
	Register(ctx context.Context, user *domain.User) error
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

// Cache is the key/value cache used for catalog reads and token bookkeeping.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}

// CreateShiftRequest carries the admin input for a new staff shift.
type CreateShiftRequest struct {
	StaffID    string
	StationID  string // Optional, defaults to the staff member's home station
	ShiftStart time.Time
	ShiftEnd   time.Time
	Notes      string
}

// UpdateShiftRequest carries a partial shift update. Nil fields are left
// unchanged; if only one bound moves, the other is taken from the record.
type UpdateShiftRequest struct {
	StationID  *string
	ShiftStart *time.Time
	ShiftEnd   *time.Time
	Status     *domain.ShiftStatus
	Notes      *string
}

// ShiftService schedules staff shifts and guards the no-overlap invariant.
type ShiftService interface {
	Create(ctx context.Context, actor domain.Actor, req *CreateShiftRequest) (*domain.StaffShift, error)
	Update(ctx context.Context, actor domain.Actor, shiftID string, req *UpdateShiftRequest) (*domain.StaffShift, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, shiftID string, status domain.ShiftStatus) (*domain.StaffShift, error)
	Delete(ctx context.Context, actor domain.Actor, shiftID string) error
	List(ctx context.Context, actor domain.Actor, filter ShiftFilter) ([]domain.StaffShift, error)
}

// WalletService handles user wallet operations.
type WalletService interface {
	// GetWallet retrieves or creates a user's wallet
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)

	// TopUp credits the wallet and records a completed payment
	TopUp(ctx context.Context, userID string, amount int64, method domain.PaymentMethod) (*domain.Wallet, error)

	// GetTransactions retrieves wallet ledger history
	GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.WalletTransaction, error)

	// Debit removes funds inside the given transaction scope and appends a
	// ledger entry. Fails with InsufficientFundsError when the balance
	// cannot cover the amount.
	Debit(ctx context.Context, repos RepositoryProvider, userID string, amount int64, description, referenceID string) error

	// Credit adds funds inside the given transaction scope and appends a
	// ledger entry.
	Credit(ctx context.Context, repos RepositoryProvider, userID string, amount int64, description, referenceID string) error
}

// SubscriptionService sells and manages prepaid swap entitlements.
type SubscriptionService interface {
	Subscribe(ctx context.Context, actor domain.Actor, packageID string, autoRenew bool) (*domain.UserSubscription, error)
	Cancel(ctx context.Context, actor domain.Actor, subscriptionID string) (*domain.UserSubscription, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.UserSubscription, error)
	ListPackages(ctx context.Context) ([]domain.ServicePackage, error)
}

// CreateBookingRequest carries the driver input for a new booking.
type CreateBookingRequest struct {
	VehicleID   string
	StationID   string
	ScheduledAt time.Time
	Notes       string
}

// CompleteSwapRequest carries the staff input for executing a swap.
type CompleteSwapRequest struct {
	BookingID    string
	OldBatteryID string
	NewBatteryID string
	Amount       int64
	Method       domain.PaymentMethod // Ignored when a subscription covers the swap
}

// BookingService advances bookings through their state machine and records
// the swap transaction on completion.
type BookingService interface {
	Create(ctx context.Context, actor domain.Actor, req *CreateBookingRequest) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, bookingID string, reason string) (*domain.Booking, error)
	CheckIn(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)
	Complete(ctx context.Context, actor domain.Actor, req *CompleteSwapRequest) (*domain.SwapTransaction, error)
	Get(ctx context.Context, actor domain.Actor, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, actor domain.Actor, status string, limit, offset int) ([]domain.Booking, error)
}

// StationService exposes the station and battery inventory read surface.
type StationService interface {
	GetStation(ctx context.Context, id string) (*domain.SwapStation, error)
	ListStations(ctx context.Context, filter map[string]interface{}) ([]domain.SwapStation, error)
	ListBatteries(ctx context.Context, stationID string) ([]domain.Battery, error)
}
