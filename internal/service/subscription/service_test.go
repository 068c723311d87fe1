package subscription

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/mocks"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

var driver = domain.Actor{ID: "driver-1", Role: domain.UserRoleDriver}

func driverUser(id string) *domain.User {
	return &domain.User{ID: id, Role: domain.UserRoleDriver, Status: "Active"}
}

func monthlyPackage() *domain.ServicePackage {
	limit := 30
	return &domain.ServicePackage{
		ID:           "pkg-monthly",
		Name:         "Mensal 30",
		Price:        14900,
		Currency:     "BRL",
		DurationDays: 30,
		SwapLimit:    &limit,
		IsActive:     true,
	}
}

func TestSubscribe_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork()
	mq := mocks.NewMockMessageQueue()

	uow.Provider.PackageRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.ServicePackage, error) {
		return monthlyPackage(), nil
	}
	uow.Provider.UserRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
		return driverUser(id), nil
	}

	var savedSub *domain.UserSubscription
	uow.Provider.SubscriptionRepo.SaveFunc = func(ctx context.Context, sub *domain.UserSubscription) error {
		savedSub = sub
		return nil
	}

	var savedPayment *domain.PaymentRecord
	uow.Provider.PaymentRepo.SaveFunc = func(ctx context.Context, p *domain.PaymentRecord) error {
		savedPayment = p
		return nil
	}

	var debitedAmount int64
	walletService := &mocks.MockWalletService{
		DebitFunc: func(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error {
			debitedAmount = amount
			return nil
		},
	}

	service := NewService(uow, walletService, mocks.NewMockCache(), mq, newTestLogger())

	// Act
	sub, err := service.Subscribe(ctx, driver, "pkg-monthly", true)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sub == nil || savedSub == nil {
		t.Fatal("expected subscription to be saved")
	}
	if debitedAmount != 14900 {
		t.Errorf("expected debit of 14900, got %d", debitedAmount)
	}
	if sub.Status != domain.SubscriptionStatusActive {
		t.Errorf("expected status 'active', got '%s'", sub.Status)
	}
	if sub.RemainingSwaps == nil || *sub.RemainingSwaps != 30 {
		t.Error("expected remaining swaps initialized from package limit")
	}
	if got := sub.EndDate.Sub(sub.StartDate); got != 30*24*time.Hour {
		t.Errorf("expected 30 day duration, got %v", got)
	}
	if savedPayment == nil {
		t.Fatal("expected payment record")
	}
	if savedPayment.SubscriptionID == nil || *savedPayment.SubscriptionID != sub.ID {
		t.Error("expected payment linked to subscription")
	}
	if savedPayment.Amount != 14900 {
		t.Errorf("expected payment amount 14900, got %d", savedPayment.Amount)
	}
	if savedPayment.Method != domain.PaymentMethodWallet {
		t.Errorf("expected wallet method, got '%s'", savedPayment.Method)
	}
	if len(mq.GetPublishedMessages("subscription.purchased")) != 1 {
		t.Error("expected purchase event published")
	}
}

func TestSubscribe_InsufficientFundsAbortsEverything(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork()

	uow.Provider.PackageRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.ServicePackage, error) {
		return monthlyPackage(), nil
	}
	uow.Provider.UserRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
		return driverUser(id), nil
	}

	subSaved := false
	uow.Provider.SubscriptionRepo.SaveFunc = func(ctx context.Context, sub *domain.UserSubscription) error {
		subSaved = true
		return nil
	}
	paymentSaved := false
	uow.Provider.PaymentRepo.SaveFunc = func(ctx context.Context, p *domain.PaymentRecord) error {
		paymentSaved = true
		return nil
	}

	walletService := &mocks.MockWalletService{
		DebitFunc: func(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error {
			return domain.NewInsufficientFundsError("insufficient balance")
		},
	}

	mq := mocks.NewMockMessageQueue()
	service := NewService(uow, walletService, mocks.NewMockCache(), mq, newTestLogger())

	_, err := service.Subscribe(ctx, driver, "pkg-monthly", false)

	if !domain.IsInsufficientFunds(err) {
		t.Fatalf("expected insufficient funds error, got %v", err)
	}
	if subSaved {
		t.Error("expected no subscription written")
	}
	if paymentSaved {
		t.Error("expected no payment written")
	}
	if len(mq.GetPublishedMessages("subscription.purchased")) != 0 {
		t.Error("expected no event published")
	}
}

func TestSubscribe_DuplicateActiveRejected(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()

	uow.Provider.PackageRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.ServicePackage, error) {
		return monthlyPackage(), nil
	}
	uow.Provider.UserRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
		return driverUser(id), nil
	}
	uow.Provider.SubscriptionRepo.FindActiveByUserAndPackageFunc = func(ctx context.Context, userID, packageID string, now time.Time) (*domain.UserSubscription, error) {
		return &domain.UserSubscription{ID: "existing", Status: domain.SubscriptionStatusActive}, nil
	}

	debited := false
	walletService := &mocks.MockWalletService{
		DebitFunc: func(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error {
			debited = true
			return nil
		},
	}

	service := NewService(uow, walletService, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Subscribe(context.Background(), driver, "pkg-monthly", false)

	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if debited {
		t.Error("expected no debit for duplicate subscription")
	}
}

func TestSubscribe_LocksUserBeforeDuplicateCheck(t *testing.T) {
	// The duplicate-active check is only race-free while the user row lock
	// is held, so the lock must come first within the transaction.
	uow := mocks.NewMockUnitOfWork()

	uow.Provider.PackageRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.ServicePackage, error) {
		return monthlyPackage(), nil
	}

	locked := false
	uow.Provider.UserRepo.FindByIDForUpdateFunc = func(ctx context.Context, id string) (*domain.User, error) {
		locked = true
		return driverUser(id), nil
	}
	uow.Provider.SubscriptionRepo.FindActiveByUserAndPackageFunc = func(ctx context.Context, userID, packageID string, now time.Time) (*domain.UserSubscription, error) {
		if !locked {
			t.Error("expected user row locked before duplicate check")
		}
		return nil, nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Subscribe(context.Background(), driver, "pkg-monthly", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !locked {
		t.Fatal("expected user row lock to be taken")
	}
}

func TestSubscribe_UnknownUserRejected(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()
	uow.Provider.PackageRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.ServicePackage, error) {
		return monthlyPackage(), nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Subscribe(context.Background(), driver, "pkg-monthly", false)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSubscribe_InactivePackageRejected(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()
	uow.Provider.PackageRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.ServicePackage, error) {
		pkg := monthlyPackage()
		pkg.IsActive = false
		return pkg, nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Subscribe(context.Background(), driver, "pkg-monthly", false)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSubscribe_RequiresDriver(t *testing.T) {
	service := NewService(mocks.NewMockUnitOfWork(), &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	staffActor := domain.Actor{ID: "staff-1", Role: domain.UserRoleStaff}
	_, err := service.Subscribe(context.Background(), staffActor, "pkg-monthly", false)
	if !domain.IsKind(err, domain.ErrorKindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestCancel_ActiveBecomesCancelled(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()

	stored := &domain.UserSubscription{
		ID:      "sub-1",
		UserID:  driver.ID,
		Status:  domain.SubscriptionStatusActive,
		EndDate: time.Now().Add(10 * 24 * time.Hour),
	}
	uow.Provider.SubscriptionRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.UserSubscription, error) {
		return stored, nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	sub, err := service.Cancel(context.Background(), driver, "sub-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sub.Status != domain.SubscriptionStatusCancelled {
		t.Errorf("expected status 'cancelled', got '%s'", sub.Status)
	}
}

func TestCancel_PastEndDateBecomesExpired(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()

	stored := &domain.UserSubscription{
		ID:      "sub-1",
		UserID:  driver.ID,
		Status:  domain.SubscriptionStatusActive,
		EndDate: time.Now().Add(-time.Hour),
	}
	uow.Provider.SubscriptionRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.UserSubscription, error) {
		return stored, nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	sub, err := service.Cancel(context.Background(), driver, "sub-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sub.Status != domain.SubscriptionStatusExpired {
		t.Errorf("expected status 'expired', got '%s'", sub.Status)
	}
}

func TestCancel_OtherUsersSubscriptionHidden(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()
	uow.Provider.SubscriptionRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.UserSubscription, error) {
		return &domain.UserSubscription{ID: id, UserID: "someone-else", Status: domain.SubscriptionStatusActive}, nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	_, err := service.Cancel(context.Background(), driver, "sub-1")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestList_LazilyExpiresOverdueSubscriptions(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()

	overdue := domain.UserSubscription{
		ID:      "sub-old",
		UserID:  driver.ID,
		Status:  domain.SubscriptionStatusActive,
		EndDate: time.Now().Add(-48 * time.Hour),
	}
	current := domain.UserSubscription{
		ID:      "sub-new",
		UserID:  driver.ID,
		Status:  domain.SubscriptionStatusActive,
		EndDate: time.Now().Add(48 * time.Hour),
	}

	uow.Provider.SubscriptionRepo.FindByUserIDFunc = func(ctx context.Context, userID string) ([]domain.UserSubscription, error) {
		return []domain.UserSubscription{overdue, current}, nil
	}

	saved := map[string]domain.SubscriptionStatus{}
	uow.Provider.SubscriptionRepo.SaveFunc = func(ctx context.Context, sub *domain.UserSubscription) error {
		saved[sub.ID] = sub.Status
		return nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	subs, err := service.List(context.Background(), driver)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", len(subs))
	}
	if subs[0].Status != domain.SubscriptionStatusExpired {
		t.Errorf("expected overdue subscription expired, got '%s'", subs[0].Status)
	}
	if subs[1].Status != domain.SubscriptionStatusActive {
		t.Errorf("expected current subscription untouched, got '%s'", subs[1].Status)
	}
	if saved["sub-old"] != domain.SubscriptionStatusExpired {
		t.Error("expected expiry persisted")
	}
	if _, ok := saved["sub-new"]; ok {
		t.Error("expected current subscription not rewritten")
	}
}

func TestListPackages_CachesCatalog(t *testing.T) {
	uow := mocks.NewMockUnitOfWork()

	calls := 0
	uow.Provider.PackageRepo.FindAllFunc = func(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error) {
		calls++
		return []domain.ServicePackage{*monthlyPackage()}, nil
	}

	service := NewService(uow, &mocks.MockWalletService{}, mocks.NewMockCache(), mocks.NewMockMessageQueue(), newTestLogger())

	for i := 0; i < 3; i++ {
		pkgs, err := service.ListPackages(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(pkgs) != 1 {
			t.Fatalf("expected 1 package, got %d", len(pkgs))
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 repository hit, got %d", calls)
	}
}
