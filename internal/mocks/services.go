package mocks

import (
	"context"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

// MockWalletService is a mock implementation of WalletService interface
type MockWalletService struct {
	GetWalletFunc       func(ctx context.Context, userID string) (*domain.Wallet, error)
	TopUpFunc           func(ctx context.Context, userID string, amount int64, method domain.PaymentMethod) (*domain.Wallet, error)
	GetTransactionsFunc func(ctx context.Context, userID string, limit, offset int) ([]domain.WalletTransaction, error)
	DebitFunc           func(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error
	CreditFunc          func(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error
}

func (m *MockWalletService) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	if m.GetWalletFunc != nil {
		return m.GetWalletFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockWalletService) TopUp(ctx context.Context, userID string, amount int64, method domain.PaymentMethod) (*domain.Wallet, error) {
	if m.TopUpFunc != nil {
		return m.TopUpFunc(ctx, userID, amount, method)
	}
	return nil, nil
}

func (m *MockWalletService) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.WalletTransaction, error) {
	if m.GetTransactionsFunc != nil {
		return m.GetTransactionsFunc(ctx, userID, limit, offset)
	}
	return []domain.WalletTransaction{}, nil
}

func (m *MockWalletService) Debit(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error {
	if m.DebitFunc != nil {
		return m.DebitFunc(ctx, repos, userID, amount, description, referenceID)
	}
	return nil
}

func (m *MockWalletService) Credit(ctx context.Context, repos ports.RepositoryProvider, userID string, amount int64, description, referenceID string) error {
	if m.CreditFunc != nil {
		return m.CreditFunc(ctx, repos, userID, amount, description, referenceID)
	}
	return nil
}

// MockAuthService is a mock implementation of AuthService interface
type MockAuthService struct {
	LoginFunc         func(ctx context.Context, email, password string) (string, string, error)
	RegisterFunc      func(ctx context.Context, user *domain.User) error
	RefreshTokenFunc  func(ctx context.Context, token string) (string, error)
	ValidateTokenFunc func(ctx context.Context, token string) (*domain.User, error)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", "", nil
}

func (m *MockAuthService) Register(ctx context.Context, user *domain.User) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, user)
	}
	return nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, token string) (string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, token)
	}
	return "", nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return nil, nil
}
