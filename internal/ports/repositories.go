package ports

import (
	"context"
	"time"

	"github.com/seu-repo/sigec-swap/internal/domain"
)

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDForUpdate locks the user row for the remainder of the
	// enclosing transaction. Used to serialize shift scheduling per staff.
	FindByIDForUpdate(ctx context.Context, id string) (*domain.User, error)
}

type VehicleRepository interface {
	Save(ctx context.Context, vehicle *domain.Vehicle) error
	FindByID(ctx context.Context, id string) (*domain.Vehicle, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Vehicle, error)
}

type StationRepository interface {
	Save(ctx context.Context, station *domain.SwapStation) error
	FindByID(ctx context.Context, id string) (*domain.SwapStation, error)
	FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.SwapStation, error)
	UpdateStatus(ctx context.Context, id string, status domain.StationStatus) error
}

type BatteryRepository interface {
	Save(ctx context.Context, battery *domain.Battery) error
	FindByID(ctx context.Context, id string) (*domain.Battery, error)
	FindByStationID(ctx context.Context, stationID string) ([]domain.Battery, error)
	UpdateStatus(ctx context.Context, id string, status domain.BatteryStatus) error
}

// ShiftFilter narrows a shift listing. Zero values mean "any".
type ShiftFilter struct {
	StaffID     string
	StationID   string
	Status      domain.ShiftStatus
	DateFrom    string // YYYY-MM-DD, inclusive
	DateTo      string // YYYY-MM-DD, inclusive
	IncludePast bool
	Limit       int
	Offset      int
}

type ShiftRepository interface {
	Save(ctx context.Context, shift *domain.StaffShift) error
	FindByID(ctx context.Context, id string) (*domain.StaffShift, error)
	// FindOverlapping returns the staff member's non-cancelled shifts whose
	// [start, end) interval intersects the candidate one. excludeID skips
	// the record being updated.
	FindOverlapping(ctx context.Context, staffID string, start, end time.Time, excludeID string) ([]domain.StaffShift, error)
	List(ctx context.Context, filter ShiftFilter) ([]domain.StaffShift, error)
	Delete(ctx context.Context, id string) error
}

type WalletRepository interface {
	Save(ctx context.Context, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	// GetByUserIDForUpdate locks the wallet row for the remainder of the
	// enclosing transaction, so the balance read here is the balance the
	// ledger entry is computed from.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.Wallet, error)
	// DebitBalance atomically runs
	//   UPDATE wallets SET balance = balance - amount
	//   WHERE user_id = ? AND balance >= amount
	// and reports whether a row was updated. The negative-balance invariant
	// is enforced here, at the storage layer, not by check-then-write.
	DebitBalance(ctx context.Context, userID string, amount int64) (bool, error)
	CreditBalance(ctx context.Context, userID string, amount int64) error
	SaveEntry(ctx context.Context, entry *domain.WalletTransaction) error
	GetEntries(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error)
}

type PackageRepository interface {
	Save(ctx context.Context, pkg *domain.ServicePackage) error
	FindByID(ctx context.Context, id string) (*domain.ServicePackage, error)
	FindAll(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error)
}

type SubscriptionRepository interface {
	Save(ctx context.Context, sub *domain.UserSubscription) error
	FindByID(ctx context.Context, id string) (*domain.UserSubscription, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.UserSubscription, error)
	// FindActiveByUserAndPackage returns an active subscription for the pair
	// whose end date is not before now, or nil.
	FindActiveByUserAndPackage(ctx context.Context, userID, packageID string, now time.Time) (*domain.UserSubscription, error)
	// FindConsumable returns the soonest-expiring active subscription that
	// still has swaps remaining, locked for update, or nil.
	FindConsumable(ctx context.Context, userID string, now time.Time) (*domain.UserSubscription, error)
}

type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindByIDForUpdate locks the booking row for the remainder of the
	// enclosing transaction so state transitions serialize.
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error)
	FindByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Booking, error)
	FindByStationID(ctx context.Context, stationID string, date time.Time) ([]domain.Booking, error)
}

type SwapTransactionRepository interface {
	Save(ctx context.Context, swap *domain.SwapTransaction) error
	FindByID(ctx context.Context, id string) (*domain.SwapTransaction, error)
	FindByBookingID(ctx context.Context, bookingID string) (*domain.SwapTransaction, error)
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.SwapTransaction, error)
}

type PaymentRepository interface {
	Save(ctx context.Context, payment *domain.PaymentRecord) error
	FindByID(ctx context.Context, id string) (*domain.PaymentRecord, error)
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.PaymentRecord, error)
	FindBySubscriptionID(ctx context.Context, subscriptionID string) ([]domain.PaymentRecord, error)
	FindByTransactionID(ctx context.Context, transactionID string) ([]domain.PaymentRecord, error)
}
