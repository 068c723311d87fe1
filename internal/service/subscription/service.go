package subscription

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/adapter/queue"
	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/observability/telemetry"
	"github.com/seu-repo/sigec-swap/internal/ports"
)

const packageCacheKey = "packages:active"
const packageCacheTTL = 5 * time.Minute

// Service implements ports.SubscriptionService. Subscribe is the atomic
// multi-entity purchase: wallet debit, subscription insert and payment
// insert commit or roll back together.
type Service struct {
	uow    ports.UnitOfWork
	wallet ports.WalletService
	cache  ports.Cache
	mq     queue.MessageQueue
	log    *zap.Logger
}

// NewService creates a new subscription service
func NewService(
	uow ports.UnitOfWork,
	wallet ports.WalletService,
	cache ports.Cache,
	mq queue.MessageQueue,
	log *zap.Logger,
) *Service {
	return &Service{
		uow:    uow,
		wallet: wallet,
		cache:  cache,
		mq:     mq,
		log:    log,
	}
}

// Subscribe purchases a package with wallet funds.
func (s *Service) Subscribe(ctx context.Context, actor domain.Actor, packageID string, autoRenew bool) (*domain.UserSubscription, error) {
	if !actor.IsDriver() {
		return nil, domain.NewAuthError("only drivers may subscribe to packages")
	}

	var sub *domain.UserSubscription
	var pkg *domain.ServicePackage
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		pkg, err = repos.Packages().FindByID(ctx, packageID)
		if err != nil {
			return err
		}
		if pkg == nil || !pkg.IsActive {
			return domain.NewNotFoundError("package %s not found or inactive", packageID)
		}

		// The row lock serializes concurrent purchases by this user; the
		// duplicate check below is only sound while it is held, since a
		// second transaction would otherwise pass it before either insert.
		user, err := repos.Users().FindByIDForUpdate(ctx, actor.ID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NewNotFoundError("user %s not found", actor.ID)
		}

		now := time.Now()
		existing, err := repos.Subscriptions().FindActiveByUserAndPackage(ctx, actor.ID, packageID, now)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewConflictError("active subscription for this package already exists")
		}

		sub = &domain.UserSubscription{
			ID:             uuid.New().String(),
			UserID:         actor.ID,
			PackageID:      pkg.ID,
			StartDate:      now,
			EndDate:        now.AddDate(0, 0, pkg.DurationDays),
			RemainingSwaps: copySwapLimit(pkg.SwapLimit),
			AutoRenew:      autoRenew,
			Status:         domain.SubscriptionStatusActive,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		// The conditional wallet debit keeps the balance invariant even
		// under concurrent purchases; any later failure in this closure
		// rolls the debit back with everything else.
		if err := s.wallet.Debit(ctx, repos, actor.ID, pkg.Price, "Subscription purchase: "+pkg.Name, sub.ID); err != nil {
			return err
		}

		if err := repos.Subscriptions().Save(ctx, sub); err != nil {
			return err
		}

		payment := &domain.PaymentRecord{
			ID:             uuid.New().String(),
			UserID:         actor.ID,
			SubscriptionID: &sub.ID,
			Method:         domain.PaymentMethodWallet,
			Status:         domain.PaymentStatusCompleted,
			Amount:         pkg.Price,
			Currency:       pkg.Currency,
			Description:    "Subscription purchase: " + pkg.Name,
			PaidAt:         now,
			CreatedAt:      now,
		}
		return repos.Payments().Save(ctx, payment)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	telemetry.SubscriptionsTotal.Inc()
	queue.PublishJSON(s.mq, s.log, "subscription.purchased", map[string]interface{}{
		"subscription_id": sub.ID,
		"user_id":         sub.UserID,
		"package_id":      sub.PackageID,
		"amount":          pkg.Price,
	})
	s.log.Info("Subscription purchased",
		zap.String("subscription_id", sub.ID),
		zap.String("user_id", sub.UserID),
		zap.String("package_id", sub.PackageID),
		zap.Int64("price", pkg.Price),
	)
	return sub, nil
}

// Cancel ends a subscription. No refund: cancellation is forward-looking
// only. A subscription past its end date is marked expired instead.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, subscriptionID string) (*domain.UserSubscription, error) {
	var sub *domain.UserSubscription
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		sub, err = repos.Subscriptions().FindByID(ctx, subscriptionID)
		if err != nil {
			return err
		}
		if sub == nil || sub.UserID != actor.ID {
			return domain.NewNotFoundError("subscription %s not found", subscriptionID)
		}
		if sub.Status != domain.SubscriptionStatusActive {
			return domain.NewConflictError("subscription already %s", sub.Status)
		}

		now := time.Now()
		if !sub.EndDate.After(now) {
			sub.Status = domain.SubscriptionStatusExpired
		} else {
			sub.Status = domain.SubscriptionStatusCancelled
		}
		sub.UpdatedAt = now
		return repos.Subscriptions().Save(ctx, sub)
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	s.log.Info("Subscription cancelled",
		zap.String("subscription_id", sub.ID),
		zap.String("status", string(sub.Status)),
	)
	return sub, nil
}

// List returns the actor's subscriptions, lazily expiring any active ones
// whose end date has passed.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.UserSubscription, error) {
	var subs []domain.UserSubscription
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		subs, err = repos.Subscriptions().FindByUserID(ctx, actor.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		for i := range subs {
			if subs[i].Status == domain.SubscriptionStatusActive && !subs[i].EndDate.After(now) {
				subs[i].Status = domain.SubscriptionStatusExpired
				subs[i].UpdatedAt = now
				if err := repos.Subscriptions().Save(ctx, &subs[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return subs, nil
}

// ListPackages returns active packages, served from cache when possible.
func (s *Service) ListPackages(ctx context.Context) ([]domain.ServicePackage, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, packageCacheKey); err == nil && cached != "" {
			var pkgs []domain.ServicePackage
			if err := json.Unmarshal([]byte(cached), &pkgs); err == nil {
				return pkgs, nil
			}
		}
	}

	var pkgs []domain.ServicePackage
	err := s.uow.Execute(ctx, func(repos ports.RepositoryProvider) error {
		var err error
		pkgs, err = repos.Packages().FindAll(ctx, true)
		return err
	})
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(pkgs); err == nil {
			if err := s.cache.Set(ctx, packageCacheKey, string(data), packageCacheTTL); err != nil {
				s.log.Warn("Failed to cache package catalog", zap.Error(err))
			}
		}
	}
	return pkgs, nil
}

func copySwapLimit(limit *int) *int {
	if limit == nil {
		return nil
	}
	v := *limit
	return &v
}

func asDomainError(err error) error {
	if domain.KindOf(err) != domain.ErrorKindInternal {
		return err
	}
	return domain.NewInternalError(err)
}
