package wallet

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestDebit_InsufficientFunds(t *testing.T) {
	// Arrange
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork()

	uow.Provider.WalletRepo.GetByUserIDFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		return &domain.Wallet{ID: "wallet-1", UserID: userID, Balance: 500}, nil
	}
	uow.Provider.WalletRepo.DebitBalanceFunc = func(ctx context.Context, userID string, amount int64) (bool, error) {
		// Conditional update touches no row when the balance is short
		return false, nil
	}

	entrySaved := false
	uow.Provider.WalletRepo.SaveEntryFunc = func(ctx context.Context, entry *domain.WalletTransaction) error {
		entrySaved = true
		return nil
	}

	service := NewService(uow, newTestLogger())

	// Act
	err := service.Debit(ctx, uow.Provider, "user-1", 1000, "Subscription purchase", "sub-1")

	// Assert
	if !domain.IsInsufficientFunds(err) {
		t.Fatalf("expected insufficient funds error, got %v", err)
	}
	if entrySaved {
		t.Error("expected no ledger entry on failed debit")
	}
}

func TestDebit_Success(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork()

	uow.Provider.WalletRepo.GetByUserIDFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		return &domain.Wallet{ID: "wallet-1", UserID: userID, Balance: 5000}, nil
	}
	uow.Provider.WalletRepo.DebitBalanceFunc = func(ctx context.Context, userID string, amount int64) (bool, error) {
		return true, nil
	}

	var entry *domain.WalletTransaction
	uow.Provider.WalletRepo.SaveEntryFunc = func(ctx context.Context, e *domain.WalletTransaction) error {
		entry = e
		return nil
	}

	service := NewService(uow, newTestLogger())

	err := service.Debit(ctx, uow.Provider, "user-1", 2000, "Subscription purchase", "sub-1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if entry == nil {
		t.Fatal("expected ledger entry")
	}
	if entry.Type != domain.WalletEntryDebit {
		t.Errorf("expected debit entry, got '%s'", entry.Type)
	}
	if entry.Amount != 2000 {
		t.Errorf("expected amount 2000, got %d", entry.Amount)
	}
	if entry.Balance != 3000 {
		t.Errorf("expected balance after 3000, got %d", entry.Balance)
	}
	if entry.ReferenceID != "sub-1" {
		t.Errorf("expected reference 'sub-1', got '%s'", entry.ReferenceID)
	}
}

func TestDebit_LedgerBalanceFromLockedRead(t *testing.T) {
	// The ledger entry's balance-after must come from the FOR UPDATE read,
	// not from an unlocked snapshot a concurrent debit may have outdated.
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork()

	uow.Provider.WalletRepo.GetByUserIDFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		return &domain.Wallet{ID: "wallet-1", UserID: userID, Balance: 9000}, nil
	}
	lockedReads := 0
	uow.Provider.WalletRepo.GetByUserIDForUpdateFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		lockedReads++
		return &domain.Wallet{ID: "wallet-1", UserID: userID, Balance: 5000}, nil
	}
	uow.Provider.WalletRepo.DebitBalanceFunc = func(ctx context.Context, userID string, amount int64) (bool, error) {
		return true, nil
	}

	var entry *domain.WalletTransaction
	uow.Provider.WalletRepo.SaveEntryFunc = func(ctx context.Context, e *domain.WalletTransaction) error {
		entry = e
		return nil
	}

	service := NewService(uow, newTestLogger())

	err := service.Debit(ctx, uow.Provider, "user-1", 2000, "Swap charge", "booking-1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lockedReads != 1 {
		t.Fatalf("expected 1 locked wallet read, got %d", lockedReads)
	}
	if entry == nil {
		t.Fatal("expected ledger entry")
	}
	if entry.Balance != 3000 {
		t.Errorf("expected balance after 3000 from locked read, got %d", entry.Balance)
	}
}

func TestCredit_LedgerBalanceFromLockedRead(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork()

	uow.Provider.WalletRepo.GetByUserIDFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		return &domain.Wallet{ID: "wallet-1", UserID: userID, Balance: 100}, nil
	}
	lockedReads := 0
	uow.Provider.WalletRepo.GetByUserIDForUpdateFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		lockedReads++
		return &domain.Wallet{ID: "wallet-1", UserID: userID, Balance: 1000}, nil
	}

	var entry *domain.WalletTransaction
	uow.Provider.WalletRepo.SaveEntryFunc = func(ctx context.Context, e *domain.WalletTransaction) error {
		entry = e
		return nil
	}

	service := NewService(uow, newTestLogger())

	err := service.Credit(ctx, uow.Provider, "user-1", 500, "Funds added to wallet", "")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lockedReads != 1 {
		t.Fatalf("expected 1 locked wallet read, got %d", lockedReads)
	}
	if entry == nil {
		t.Fatal("expected ledger entry")
	}
	if entry.Balance != 1500 {
		t.Errorf("expected balance after 1500 from locked read, got %d", entry.Balance)
	}
}

func TestDebit_RejectsNonPositiveAmount(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()
	service := NewService(uow, newTestLogger())

	for _, amount := range []int64{0, -100} {
		err := service.Debit(context.Background(), uow.Provider, "user-1", amount, "x", "")
		if !domain.IsKind(err, domain.ErrorKindValidation) {
			t.Errorf("amount %d: expected validation error, got %v", amount, err)
		}
	}
}

func TestDebit_MissingWallet(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()
	service := NewService(uow, newTestLogger())

	err := service.Debit(context.Background(), uow.Provider, "ghost", 100, "x", "")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestTopUp_CreatesWalletAndLedgerEntry(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork()

	// The mock mirrors the storage layer: reads return a snapshot with the
	// credited balance, without mutating the struct handed to Save.
	var created *domain.Wallet
	credited := int64(0)
	uow.Provider.WalletRepo.GetByUserIDFunc = func(ctx context.Context, userID string) (*domain.Wallet, error) {
		if created == nil {
			return nil, nil
		}
		snapshot := *created
		snapshot.Balance = credited
		return &snapshot, nil
	}
	uow.Provider.WalletRepo.SaveFunc = func(ctx context.Context, w *domain.Wallet) error {
		created = w
		return nil
	}
	uow.Provider.WalletRepo.CreditBalanceFunc = func(ctx context.Context, userID string, amount int64) error {
		credited += amount
		return nil
	}

	var entry *domain.WalletTransaction
	uow.Provider.WalletRepo.SaveEntryFunc = func(ctx context.Context, e *domain.WalletTransaction) error {
		entry = e
		return nil
	}

	service := NewService(uow, newTestLogger())

	wallet, err := service.TopUp(ctx, "user-1", 10000, domain.PaymentMethodCash)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if wallet == nil {
		t.Fatal("expected wallet, got nil")
	}
	if credited != 10000 {
		t.Errorf("expected 10000 credited, got %d", credited)
	}
	if wallet.Balance != 10000 {
		t.Errorf("expected balance 10000, got %d", wallet.Balance)
	}
	if entry == nil || entry.Type != domain.WalletEntryCredit {
		t.Error("expected credit ledger entry")
	}
	if created.Currency != "BRL" {
		t.Errorf("expected currency BRL, got '%s'", created.Currency)
	}
}

func TestTopUp_RejectsNonPositiveAmount(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()
	service := NewService(uow, newTestLogger())

	_, err := service.TopUp(context.Background(), "user-1", 0, domain.PaymentMethodCash)
	if !domain.IsKind(err, domain.ErrorKindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
