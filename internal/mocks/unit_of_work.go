package mocks

import (
	"context"

	"github.com/seu-repo/sigec-swap/internal/ports"
)

// MockRepositoryProvider bundles the repository mocks behind the provider
// interface. Zero-value fields are lazily replaced with empty mocks.
type MockRepositoryProvider struct {
	UserRepo         *MockUserRepository
	VehicleRepo      *MockVehicleRepository
	StationRepo      *MockStationRepository
	BatteryRepo      *MockBatteryRepository
	ShiftRepo        *MockShiftRepository
	WalletRepo       *MockWalletRepository
	PackageRepo      *MockPackageRepository
	SubscriptionRepo *MockSubscriptionRepository
	BookingRepo      *MockBookingRepository
	SwapRepo         *MockSwapTransactionRepository
	PaymentRepo      *MockPaymentRepository
}

func NewMockRepositoryProvider() *MockRepositoryProvider {
	return &MockRepositoryProvider{
		UserRepo:         &MockUserRepository{},
		VehicleRepo:      &MockVehicleRepository{},
		StationRepo:      &MockStationRepository{},
		BatteryRepo:      &MockBatteryRepository{},
		ShiftRepo:        &MockShiftRepository{},
		WalletRepo:       &MockWalletRepository{},
		PackageRepo:      &MockPackageRepository{},
		SubscriptionRepo: &MockSubscriptionRepository{},
		BookingRepo:      &MockBookingRepository{},
		SwapRepo:         &MockSwapTransactionRepository{},
		PaymentRepo:      &MockPaymentRepository{},
	}
}

func (p *MockRepositoryProvider) Users() ports.UserRepository               { return p.UserRepo }
func (p *MockRepositoryProvider) Vehicles() ports.VehicleRepository         { return p.VehicleRepo }
func (p *MockRepositoryProvider) Stations() ports.StationRepository         { return p.StationRepo }
func (p *MockRepositoryProvider) Batteries() ports.BatteryRepository        { return p.BatteryRepo }
func (p *MockRepositoryProvider) Shifts() ports.ShiftRepository             { return p.ShiftRepo }
func (p *MockRepositoryProvider) Wallets() ports.WalletRepository           { return p.WalletRepo }
func (p *MockRepositoryProvider) Packages() ports.PackageRepository         { return p.PackageRepo }
func (p *MockRepositoryProvider) Subscriptions() ports.SubscriptionRepository {
	return p.SubscriptionRepo
}
func (p *MockRepositoryProvider) Bookings() ports.BookingRepository { return p.BookingRepo }
func (p *MockRepositoryProvider) Swaps() ports.SwapTransactionRepository {
	return p.SwapRepo
}
func (p *MockRepositoryProvider) Payments() ports.PaymentRepository { return p.PaymentRepo }

// MockUnitOfWork runs the closure against the configured provider without a
// real transaction. ExecuteFunc can override the behavior entirely, e.g. to
// simulate rollbacks.
type MockUnitOfWork struct {
	Provider    *MockRepositoryProvider
	ExecuteFunc func(ctx context.Context, fn func(repos ports.RepositoryProvider) error) error
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Provider: NewMockRepositoryProvider(),
	}
}

func (u *MockUnitOfWork) Execute(ctx context.Context, fn func(repos ports.RepositoryProvider) error) error {
	if u.ExecuteFunc != nil {
		return u.ExecuteFunc(ctx, fn)
	}
	return fn(u.Provider)
}
