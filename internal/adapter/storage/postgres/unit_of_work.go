package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/sigec-swap/internal/ports"
)

// UnitOfWork implements ports.UnitOfWork on top of a gorm transaction.
// Repositories handed out by the provider share the transaction handle, so
// every read and write inside Execute commits or rolls back as one.
type UnitOfWork struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUnitOfWork(db *gorm.DB, log *zap.Logger) ports.UnitOfWork {
	return &UnitOfWork{
		db:  db,
		log: log,
	}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(repos ports.RepositoryProvider) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newTxProvider(tx, u.log))
	})
}

// txProvider builds repositories bound to one open transaction. Instances
// are cheap; repositories are created on demand.
type txProvider struct {
	tx  *gorm.DB
	log *zap.Logger
}

func newTxProvider(tx *gorm.DB, log *zap.Logger) ports.RepositoryProvider {
	return &txProvider{tx: tx, log: log}
}

func (p *txProvider) Users() ports.UserRepository {
	return NewUserRepository(p.tx, p.log)
}

func (p *txProvider) Vehicles() ports.VehicleRepository {
	return NewVehicleRepository(p.tx, p.log)
}

func (p *txProvider) Stations() ports.StationRepository {
	return NewStationRepository(p.tx, p.log)
}

func (p *txProvider) Batteries() ports.BatteryRepository {
	return NewBatteryRepository(p.tx, p.log)
}

func (p *txProvider) Shifts() ports.ShiftRepository {
	return NewShiftRepository(p.tx, p.log)
}

func (p *txProvider) Wallets() ports.WalletRepository {
	return NewWalletRepository(p.tx, p.log)
}

func (p *txProvider) Packages() ports.PackageRepository {
	return NewPackageRepository(p.tx, p.log)
}

func (p *txProvider) Subscriptions() ports.SubscriptionRepository {
	return NewSubscriptionRepository(p.tx, p.log)
}

func (p *txProvider) Bookings() ports.BookingRepository {
	return NewBookingRepository(p.tx, p.log)
}

func (p *txProvider) Swaps() ports.SwapTransactionRepository {
	return NewSwapTransactionRepository(p.tx, p.log)
}

func (p *txProvider) Payments() ports.PaymentRepository {
	return NewPaymentRepository(p.tx, p.log)
}
