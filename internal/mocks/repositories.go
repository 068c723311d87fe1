package mocks

import (
	"context"
	"time"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc              func(ctx context.Context, user *domain.User) error
	FindByIDFunc          func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByIDForUpdateFunc func(ctx context.Context, id string) (*domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockVehicleRepository is a mock implementation of VehicleRepository
type MockVehicleRepository struct {
	SaveFunc         func(ctx context.Context, vehicle *domain.Vehicle) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Vehicle, error)
	FindByUserIDFunc func(ctx context.Context, userID string) ([]domain.Vehicle, error)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, vehicle)
	}
	return nil
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVehicleRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Vehicle, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []domain.Vehicle{}, nil
}

// MockStationRepository is a mock implementation of StationRepository
type MockStationRepository struct {
	SaveFunc         func(ctx context.Context, station *domain.SwapStation) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.SwapStation, error)
	FindAllFunc      func(ctx context.Context, filter map[string]interface{}) ([]domain.SwapStation, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.StationStatus) error
}

func (m *MockStationRepository) Save(ctx context.Context, station *domain.SwapStation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, station)
	}
	return nil
}

func (m *MockStationRepository) FindByID(ctx context.Context, id string) (*domain.SwapStation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStationRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.SwapStation, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return []domain.SwapStation{}, nil
}

func (m *MockStationRepository) UpdateStatus(ctx context.Context, id string, status domain.StationStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

// MockBatteryRepository is a mock implementation of BatteryRepository
type MockBatteryRepository struct {
	SaveFunc            func(ctx context.Context, battery *domain.Battery) error
	FindByIDFunc        func(ctx context.Context, id string) (*domain.Battery, error)
	FindByStationIDFunc func(ctx context.Context, stationID string) ([]domain.Battery, error)
	UpdateStatusFunc    func(ctx context.Context, id string, status domain.BatteryStatus) error
}

func (m *MockBatteryRepository) Save(ctx context.Context, battery *domain.Battery) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, battery)
	}
	return nil
}

func (m *MockBatteryRepository) FindByID(ctx context.Context, id string) (*domain.Battery, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBatteryRepository) FindByStationID(ctx context.Context, stationID string) ([]domain.Battery, error) {
	if m.FindByStationIDFunc != nil {
		return m.FindByStationIDFunc(ctx, stationID)
	}
	return []domain.Battery{}, nil
}

func (m *MockBatteryRepository) UpdateStatus(ctx context.Context, id string, status domain.BatteryStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

// MockShiftRepository is a mock implementation of ShiftRepository
type MockShiftRepository struct {
	SaveFunc            func(ctx context.Context, shift *domain.StaffShift) error
	FindByIDFunc        func(ctx context.Context, id string) (*domain.StaffShift, error)
	FindOverlappingFunc func(ctx context.Context, staffID string, start, end time.Time, excludeID string) ([]domain.StaffShift, error)
	ListFunc            func(ctx context.Context, filter ports.ShiftFilter) ([]domain.StaffShift, error)
	DeleteFunc          func(ctx context.Context, id string) error
}

func (m *MockShiftRepository) Save(ctx context.Context, shift *domain.StaffShift) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, shift)
	}
	return nil
}

func (m *MockShiftRepository) FindByID(ctx context.Context, id string) (*domain.StaffShift, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShiftRepository) FindOverlapping(ctx context.Context, staffID string, start, end time.Time, excludeID string) ([]domain.StaffShift, error) {
	if m.FindOverlappingFunc != nil {
		return m.FindOverlappingFunc(ctx, staffID, start, end, excludeID)
	}
	return []domain.StaffShift{}, nil
}

func (m *MockShiftRepository) List(ctx context.Context, filter ports.ShiftFilter) ([]domain.StaffShift, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []domain.StaffShift{}, nil
}

func (m *MockShiftRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockWalletRepository is a mock implementation of WalletRepository
type MockWalletRepository struct {
	SaveFunc                 func(ctx context.Context, wallet *domain.Wallet) error
	GetByUserIDFunc          func(ctx context.Context, userID string) (*domain.Wallet, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, userID string) (*domain.Wallet, error)
	DebitBalanceFunc         func(ctx context.Context, userID string, amount int64) (bool, error)
	CreditBalanceFunc        func(ctx context.Context, userID string, amount int64) error
	SaveEntryFunc            func(ctx context.Context, entry *domain.WalletTransaction) error
	GetEntriesFunc           func(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error)
}

func (m *MockWalletRepository) Save(ctx context.Context, wallet *domain.Wallet) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, wallet)
	}
	return nil
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockWalletRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetByUserIDForUpdateFunc != nil {
		return m.GetByUserIDForUpdateFunc(ctx, userID)
	}
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockWalletRepository) DebitBalance(ctx context.Context, userID string, amount int64) (bool, error) {
	if m.DebitBalanceFunc != nil {
		return m.DebitBalanceFunc(ctx, userID, amount)
	}
	return true, nil
}

func (m *MockWalletRepository) CreditBalance(ctx context.Context, userID string, amount int64) error {
	if m.CreditBalanceFunc != nil {
		return m.CreditBalanceFunc(ctx, userID, amount)
	}
	return nil
}

func (m *MockWalletRepository) SaveEntry(ctx context.Context, entry *domain.WalletTransaction) error {
	if m.SaveEntryFunc != nil {
		return m.SaveEntryFunc(ctx, entry)
	}
	return nil
}

func (m *MockWalletRepository) GetEntries(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error) {
	if m.GetEntriesFunc != nil {
		return m.GetEntriesFunc(ctx, walletID, limit, offset)
	}
	return []domain.WalletTransaction{}, nil
}

// MockPackageRepository is a mock implementation of PackageRepository
type MockPackageRepository struct {
	SaveFunc     func(ctx context.Context, pkg *domain.ServicePackage) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.ServicePackage, error)
	FindAllFunc  func(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error)
}

func (m *MockPackageRepository) Save(ctx context.Context, pkg *domain.ServicePackage) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, pkg)
	}
	return nil
}

func (m *MockPackageRepository) FindByID(ctx context.Context, id string) (*domain.ServicePackage, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPackageRepository) FindAll(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, activeOnly)
	}
	return []domain.ServicePackage{}, nil
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository
type MockSubscriptionRepository struct {
	SaveFunc                       func(ctx context.Context, sub *domain.UserSubscription) error
	FindByIDFunc                   func(ctx context.Context, id string) (*domain.UserSubscription, error)
	FindByUserIDFunc               func(ctx context.Context, userID string) ([]domain.UserSubscription, error)
	FindActiveByUserAndPackageFunc func(ctx context.Context, userID, packageID string, now time.Time) (*domain.UserSubscription, error)
	FindConsumableFunc             func(ctx context.Context, userID string, now time.Time) (*domain.UserSubscription, error)
}

func (m *MockSubscriptionRepository) Save(ctx context.Context, sub *domain.UserSubscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return nil
}

func (m *MockSubscriptionRepository) FindByID(ctx context.Context, id string) (*domain.UserSubscription, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSubscriptionRepository) FindByUserID(ctx context.Context, userID string) ([]domain.UserSubscription, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []domain.UserSubscription{}, nil
}

func (m *MockSubscriptionRepository) FindActiveByUserAndPackage(ctx context.Context, userID, packageID string, now time.Time) (*domain.UserSubscription, error) {
	if m.FindActiveByUserAndPackageFunc != nil {
		return m.FindActiveByUserAndPackageFunc(ctx, userID, packageID, now)
	}
	return nil, nil
}

func (m *MockSubscriptionRepository) FindConsumable(ctx context.Context, userID string, now time.Time) (*domain.UserSubscription, error) {
	if m.FindConsumableFunc != nil {
		return m.FindConsumableFunc(ctx, userID, now)
	}
	return nil, nil
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	SaveFunc              func(ctx context.Context, booking *domain.Booking) error
	FindByIDFunc          func(ctx context.Context, id string) (*domain.Booking, error)
	FindByIDForUpdateFunc func(ctx context.Context, id string) (*domain.Booking, error)
	FindByUserIDFunc      func(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Booking, error)
	FindByStationIDFunc   func(ctx context.Context, stationID string, date time.Time) ([]domain.Booking, error)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Booking, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, status, limit, offset)
	}
	return []domain.Booking{}, nil
}

func (m *MockBookingRepository) FindByStationID(ctx context.Context, stationID string, date time.Time) ([]domain.Booking, error) {
	if m.FindByStationIDFunc != nil {
		return m.FindByStationIDFunc(ctx, stationID, date)
	}
	return []domain.Booking{}, nil
}

// MockSwapTransactionRepository is a mock implementation of SwapTransactionRepository
type MockSwapTransactionRepository struct {
	SaveFunc            func(ctx context.Context, swap *domain.SwapTransaction) error
	FindByIDFunc        func(ctx context.Context, id string) (*domain.SwapTransaction, error)
	FindByBookingIDFunc func(ctx context.Context, bookingID string) (*domain.SwapTransaction, error)
	FindByUserIDFunc    func(ctx context.Context, userID string, limit, offset int) ([]domain.SwapTransaction, error)
}

func (m *MockSwapTransactionRepository) Save(ctx context.Context, swap *domain.SwapTransaction) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, swap)
	}
	return nil
}

func (m *MockSwapTransactionRepository) FindByID(ctx context.Context, id string) (*domain.SwapTransaction, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSwapTransactionRepository) FindByBookingID(ctx context.Context, bookingID string) (*domain.SwapTransaction, error) {
	if m.FindByBookingIDFunc != nil {
		return m.FindByBookingIDFunc(ctx, bookingID)
	}
	return nil, nil
}

func (m *MockSwapTransactionRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.SwapTransaction, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, limit, offset)
	}
	return []domain.SwapTransaction{}, nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	SaveFunc                 func(ctx context.Context, payment *domain.PaymentRecord) error
	FindByIDFunc             func(ctx context.Context, id string) (*domain.PaymentRecord, error)
	FindByUserIDFunc         func(ctx context.Context, userID string, limit, offset int) ([]domain.PaymentRecord, error)
	FindBySubscriptionIDFunc func(ctx context.Context, subscriptionID string) ([]domain.PaymentRecord, error)
	FindByTransactionIDFunc  func(ctx context.Context, transactionID string) ([]domain.PaymentRecord, error)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *domain.PaymentRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id string) (*domain.PaymentRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.PaymentRecord, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, limit, offset)
	}
	return []domain.PaymentRecord{}, nil
}

func (m *MockPaymentRepository) FindBySubscriptionID(ctx context.Context, subscriptionID string) ([]domain.PaymentRecord, error) {
	if m.FindBySubscriptionIDFunc != nil {
		return m.FindBySubscriptionIDFunc(ctx, subscriptionID)
	}
	return []domain.PaymentRecord{}, nil
}

func (m *MockPaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) ([]domain.PaymentRecord, error) {
	if m.FindByTransactionIDFunc != nil {
		return m.FindByTransactionIDFunc(ctx, transactionID)
	}
	return []domain.PaymentRecord{}, nil
}
