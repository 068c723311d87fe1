package ports

import (
	"context"
)

// RepositoryProvider hands out repositories bound to one storage
// transaction. Everything read or written through them commits or rolls
// back together.
type RepositoryProvider interface {
	Users() UserRepository
	Vehicles() VehicleRepository
	Stations() StationRepository
	Batteries() BatteryRepository
	Shifts() ShiftRepository
	Wallets() WalletRepository
	Packages() PackageRepository
	Subscriptions() SubscriptionRepository
	Bookings() BookingRepository
	Swaps() SwapTransactionRepository
	Payments() PaymentRepository
}

// UnitOfWork is the atomicity contract of the core operations. Execute runs
// fn inside a single storage transaction; any error returned by fn rolls
// every write back and is returned unchanged to the caller.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos RepositoryProvider) error) error
}
