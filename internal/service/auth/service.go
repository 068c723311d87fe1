package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
	userCacheTTL    = 5 * time.Minute
)

type Service struct {
	uow       ports.UnitOfWork
	cache     ports.Cache
	jwtSecret []byte
	log       *zap.Logger
}

func NewService(uow ports.UnitOfWork, cache ports.Cache, jwtSecret string, log *zap.Logger) ports.AuthService {
	return &Service{
		uow:       uow,
		cache:     cache,
		jwtSecret: []byte(jwtSecret),
		log:       log,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, string, error) {
	var user *domain.User
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		user, err = repos.Users().FindByEmail(ctx, email)
		return err
	})
	if err != nil || user == nil {
		return "", "", domain.NewAuthError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", domain.NewAuthError("invalid credentials")
	}

	return s.generateTokens(user)
}

// Register creates the user and their wallet in one transaction so every
// account starts with a zero-balance wallet.
func (s *Service) Register(ctx context.Context, user *domain.User) error {
	if user.Email == "" || user.Password == "" {
		return domain.NewValidationError("email and password are required")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewInternalError(err)
	}
	user.Password = string(hashedPwd)
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = domain.UserRoleDriver
	}
	user.Status = "Active"
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	err = s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		existing, err := repos.Users().FindByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewConflictError("email already registered")
		}
		if err := repos.Users().Save(ctx, user); err != nil {
			return err
		}

		wallet := &domain.Wallet{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Balance:   0,
			Currency:  "BRL",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		return repos.Wallets().Save(ctx, wallet)
	})
	if err != nil {
		if domain.KindOf(err) != domain.ErrorKindInternal {
			return err
		}
		return domain.NewInternalError(err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parseClaims(refreshToken)
	if err != nil {
		return "", err
	}
	if claims["type"] != "refresh" {
		return "", domain.NewAuthError("not a refresh token")
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return "", domain.NewAuthError("invalid token claims")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil || user == nil {
		return "", domain.NewAuthError("user not found")
	}

	return s.generateAccessToken(user)
}

func (s *Service) ValidateToken(ctx context.Context, tokenStr string) (*domain.User, error) {
	claims, err := s.parseClaims(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims["type"] != "access" {
		return nil, domain.NewAuthError("not an access token")
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, domain.NewAuthError("invalid token claims")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewAuthError("user not found")
	}
	return user, nil
}

func (s *Service) parseClaims(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.NewAuthError("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.NewAuthError("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.NewAuthError("invalid token claims")
	}
	return claims, nil
}

// findUser resolves the user, consulting the cache before the database.
func (s *Service) findUser(ctx context.Context, userID string) (*domain.User, error) {
	cacheKey := "user:" + userID
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var user domain.User
			if err := json.Unmarshal([]byte(cached), &user); err == nil {
				return &user, nil
			}
		}
	}

	var user *domain.User
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		user, err = repos.Users().FindByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	if user != nil && s.cache != nil {
		if data, err := json.Marshal(user); err == nil {
			_ = s.cache.Set(ctx, cacheKey, string(data), userCacheTTL)
		}
	}
	return user, nil
}

func (s *Service) generateTokens(user *domain.User) (string, string, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"exp":  time.Now().Add(refreshTokenTTL).Unix(),
		"type": "refresh",
	})
	refreshTokenStr, err := refreshToken.SignedString(s.jwtSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshTokenStr, nil
}

func (s *Service) generateAccessToken(user *domain.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
		"type": "access",
	})
	return token.SignedString(s.jwtSecret)
}
