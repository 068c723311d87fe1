package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/observability/telemetry"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

const defaultCurrency = "BRL"

// Service implements ports.WalletService. Debit and Credit are primitives
// meant to run inside an enclosing unit of work; TopUp opens its own.
type Service struct {
	uow ports.UnitOfWork
	log *zap.Logger
}

// NewService creates a new wallet service
func NewService(uow ports.UnitOfWork, log *zap.Logger) *Service {
	return &Service{
		uow: uow,
		log: log,
	}
}

// GetWallet retrieves or creates a user's wallet
func (s *Service) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		wallet, err = s.getOrCreate(ctx, repos, userID, false)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return wallet, nil
}

// getOrCreate fetches the wallet, creating it on first use. With lock set
// the row is read FOR UPDATE so the balance stays stable for the remainder
// of the enclosing transaction.
func (s *Service) getOrCreate(ctx context.Context, repos ports.RepositoryProvider, userID string, lock bool) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	var err error
	if lock {
		wallet, err = repos.Wallets().GetByUserIDForUpdate(ctx, userID)
	} else {
		wallet, err = repos.Wallets().GetByUserID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet = &domain.Wallet{
		ID:        uuid.New().String(),
		UserID:    userID,
		Balance:   0,
		Currency:  defaultCurrency,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repos.Wallets().Save(ctx, wallet); err != nil {
		return nil, err
	}

	s.log.Info("Created new wallet",
		zap.String("user_id", userID),
		zap.String("wallet_id", wallet.ID),
	)
	return wallet, nil
}

// TopUp credits the wallet and appends the ledger entry atomically.
func (s *Service) TopUp(ctx context.Context, userID string, amount int64, method domain.PaymentMethod) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("top-up amount must be positive")
	}

	var wallet *domain.Wallet
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		if err := s.Credit(ctx, repos, userID, amount, "Funds added to wallet", ""); err != nil {
			return err
		}
		var err error
		wallet, err = repos.Wallets().GetByUserID(ctx, userID)
		return err
	})
	if err != nil {
		if domain.KindOf(err) != domain.ErrorKindInternal {
			return nil, err
		}
		return nil, domain.NewInternalError(err)
	}

	s.log.Info("Wallet topped up",
		zap.String("user_id", userID),
		zap.Int64("amount", amount),
		zap.String("method", string(method)),
	)
	return wallet, nil
}

// Debit removes funds via a conditional update so the balance can never go
// negative, then appends the ledger entry. Both writes belong to the
// caller's transaction and roll back with it.
func (s *Service) Debit(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error {
	if amount <= 0 {
		return domain.NewValidationError("debit amount must be positive")
	}

	// Locked read: the balance recorded on the ledger entry below must be
	// the balance the conditional update actually produced, not a snapshot
	// a concurrent debit may have invalidated.
	wallet, err := repos.Wallets().GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return domain.NewNotFoundError("wallet not found for user %s", userID)
	}

	debited, err := repos.Wallets().DebitBalance(ctx, userID, amount)
	if err != nil {
		return err
	}
	if !debited {
		return domain.NewInsufficientFundsError("insufficient balance: have %d, need %d", wallet.Balance, amount)
	}

	entry := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		WalletID:    wallet.ID,
		UserID:      userID,
		Type:        domain.WalletEntryDebit,
		Amount:      amount,
		Balance:     wallet.Balance - amount,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}
	if err := repos.Wallets().SaveEntry(ctx, entry); err != nil {
		return err
	}

	telemetry.WalletDebitsTotal.Inc()
	s.log.Info("Funds deducted from wallet",
		zap.String("user_id", userID),
		zap.Int64("amount", amount),
		zap.Int64("new_balance", entry.Balance),
	)
	return nil
}

// Credit adds funds and appends the ledger entry inside the caller's
// transaction. The wallet is created lazily on first credit.
func (s *Service) Credit(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error {
	if amount <= 0 {
		return domain.NewValidationError("credit amount must be positive")
	}

	wallet, err := s.getOrCreate(ctx, repos, userID, true)
	if err != nil {
		return err
	}

	if err := repos.Wallets().CreditBalance(ctx, userID, amount); err != nil {
		return err
	}

	entry := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		WalletID:    wallet.ID,
		UserID:      userID,
		Type:        domain.WalletEntryCredit,
		Amount:      amount,
		Balance:     wallet.Balance + amount,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}
	return repos.Wallets().SaveEntry(ctx, entry)
}

// GetTransactions retrieves wallet ledger history
func (s *Service) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.WalletTransaction, error) {
	var entries []domain.WalletTransaction
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		wallet, err := s.getOrCreate(ctx, repos, userID, false)
		if err != nil {
			return err
		}
		entries, err = repos.Wallets().GetEntries(ctx, wallet.ID, limit, offset)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return entries, nil
}
