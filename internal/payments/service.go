package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/metrics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/repository"
)

// TokenRedeemer spends club tokens on the hosted backend
type TokenRedeemer interface {
	ProcessTokenRedemption(ctx context.Context, req domain.TokenRedemption) (*domain.TokenRedemptionResult, error)
}

// Customer identifies who is paying
type Customer struct {
	UserID string
	Email  string
}

// ClubSubscriptionRequest starts a monthly subscription for a club
type ClubSubscriptionRequest struct {
	ClubID     string
	Tier       string
	SuccessURL string
	CancelURL  string
}

// TokenPackRequest starts a one-off token pack purchase
type TokenPackRequest struct {
	PackID     string
	SuccessURL string
	CancelURL  string
}

// HybridPaymentRequest pays for a club service with tokens and cash
type HybridPaymentRequest struct {
	ClubID          string
	ServiceType     string
	ServiceName     string
	TotalPriceCents int64
	TokensToUse     int
	SuccessURL      string
	CancelURL       string
}

// Service creates checkouts and splits hybrid payments
type Service interface {
	CreateClubSubscription(ctx context.Context, customer Customer, req ClubSubscriptionRequest) (*domain.CheckoutSession, error)
	PurchaseTokenPack(ctx context.Context, customer Customer, req TokenPackRequest) (*domain.CheckoutSession, error)
	ProcessHybridPayment(ctx context.Context, customer Customer, req HybridPaymentRequest) (*domain.HybridPaymentResult, error)
	ListCheckouts(ctx context.Context, userID string, limit int) ([]domain.CheckoutRecord, error)
	Catalog() *Catalog
}

type service struct {
	provider        CheckoutProvider
	redeemer        TokenRedeemer
	checkouts       repository.Checkout
	catalog         *Catalog
	tokenValueCents int64
}

// NewService creates a payments service. A non-positive token value uses
// DefaultTokenValueCents.
func NewService(provider CheckoutProvider, redeemer TokenRedeemer, checkouts repository.Checkout, catalog *Catalog, tokenValueCents int64) Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if tokenValueCents <= 0 {
		tokenValueCents = DefaultTokenValueCents
	}
	return &service{
		provider:        provider,
		redeemer:        redeemer,
		checkouts:       checkouts,
		catalog:         catalog,
		tokenValueCents: tokenValueCents,
	}
}

func (s *service) Catalog() *Catalog {
	return s.catalog
}

func (s *service) CreateClubSubscription(ctx context.Context, customer Customer, req ClubSubscriptionRequest) (*domain.CheckoutSession, error) {
	tier, err := s.catalog.Tier(req.Tier)
	if err != nil {
		return nil, err
	}
	if !tier.MonthlyPrice.IsPositive() {
		return nil, fmt.Errorf("%w: %s tier is free", domain.ErrNothingToCharge, tier.ID)
	}

	amount := ToCents(tier.MonthlyPrice)
	return s.checkout(ctx, domain.CheckoutRecord{
		Kind:        domain.CheckoutClubSubscription,
		UserID:      customer.UserID,
		ClubID:      req.ClubID,
		AmountCents: amount,
	}, CheckoutParams{
		Mode:          ModeSubscription,
		ProductName:   tier.Name + " Club Subscription",
		AmountCents:   amount,
		CustomerEmail: customer.Email,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata: map[string]string{
			MetaKind:   string(domain.CheckoutClubSubscription),
			MetaUserID: customer.UserID,
			MetaClubID: req.ClubID,
			MetaTier:   tier.ID,
		},
	})
}

func (s *service) PurchaseTokenPack(ctx context.Context, customer Customer, req TokenPackRequest) (*domain.CheckoutSession, error) {
	pack, err := s.catalog.Pack(req.PackID)
	if err != nil {
		return nil, err
	}

	amount := ToCents(pack.Price)
	return s.checkout(ctx, domain.CheckoutRecord{
		Kind:        domain.CheckoutTokenPack,
		UserID:      customer.UserID,
		AmountCents: amount,
		Tokens:      pack.Tokens,
	}, CheckoutParams{
		Mode:          ModePayment,
		ProductName:   pack.Name,
		Description:   strconv.Itoa(pack.Tokens) + " tokens",
		AmountCents:   amount,
		CustomerEmail: customer.Email,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata: map[string]string{
			MetaKind:   string(domain.CheckoutTokenPack),
			MetaUserID: customer.UserID,
			MetaPackID: pack.ID,
			MetaTokens: strconv.Itoa(pack.Tokens),
		},
	})
}

// ProcessHybridPayment charges the cash remainder through a checkout and
// redeems the tokens. When the redemption fails the checkout is expired so
// the customer cannot pay for a service they did not get.
func (s *service) ProcessHybridPayment(ctx context.Context, customer Customer, req HybridPaymentRequest) (*domain.HybridPaymentResult, error) {
	log := logger.FromContext(ctx)

	split, err := SplitPrice(req.TotalPriceCents, req.TokensToUse, s.tokenValueCents)
	if err != nil {
		return nil, err
	}
	if split.TokensUsed == 0 && !split.Cash.IsPositive() {
		return nil, domain.ErrNothingToCharge
	}

	result := &domain.HybridPaymentResult{
		TokensUsed: split.TokensUsed,
		TokenValue: split.TokenValue.StringFixed(2),
		CashAmount: split.Cash.StringFixed(2),
	}

	if split.Cash.IsPositive() {
		amount := ToCents(split.Cash)
		session, err := s.checkout(ctx, domain.CheckoutRecord{
			Kind:        domain.CheckoutHybridPayment,
			UserID:      customer.UserID,
			ClubID:      req.ClubID,
			AmountCents: amount,
			Tokens:      split.TokensUsed,
		}, CheckoutParams{
			Mode:          ModePayment,
			ProductName:   req.ServiceName,
			Description:   fmt.Sprintf("%s (%d tokens applied)", req.ServiceName, split.TokensUsed),
			AmountCents:   amount,
			CustomerEmail: customer.Email,
			SuccessURL:    req.SuccessURL,
			CancelURL:     req.CancelURL,
			Metadata: map[string]string{
				MetaKind:        string(domain.CheckoutHybridPayment),
				MetaUserID:      customer.UserID,
				MetaClubID:      req.ClubID,
				MetaServiceType: req.ServiceType,
				MetaTokensUsed:  strconv.Itoa(split.TokensUsed),
			},
		})
		if err != nil {
			return nil, err
		}
		result.Checkout = session
	}

	if split.TokensUsed > 0 {
		redemption, err := s.redeemer.ProcessTokenRedemption(ctx, domain.TokenRedemption{
			ClubID:      req.ClubID,
			PlayerID:    customer.UserID,
			ServiceType: req.ServiceType,
			TokensUsed:  split.TokensUsed,
			CashAmount:  result.CashAmount,
			Description: req.ServiceName,
		})
		if err != nil {
			if result.Checkout != nil {
				s.expire(ctx, result.Checkout.SessionID)
			}
			return nil, err
		}
		result.Redemption = redemption
	}

	log.Info(LogMsgHybridProcessed, "club_id", req.ClubID, "tokens_used", result.TokensUsed, "cash", result.CashAmount)
	return result, nil
}

func (s *service) ListCheckouts(ctx context.Context, userID string, limit int) ([]domain.CheckoutRecord, error) {
	return s.checkouts.ListCheckoutsByUser(ctx, userID, limit)
}

// checkout opens a provider session and records it locally. A failed local
// write is logged; the provider session stays valid.
func (s *service) checkout(ctx context.Context, record domain.CheckoutRecord, params CheckoutParams) (*domain.CheckoutSession, error) {
	log := logger.FromContext(ctx)

	session, err := s.provider.CreateCheckout(ctx, params)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgProviderFailed, domain.ErrPaymentProviderFailed, err)
	}

	record.ProviderSessionID = session.SessionID
	record.Status = domain.CheckoutStatusOpen
	if err := s.checkouts.CreateCheckout(ctx, &record); err != nil {
		log.Error(LogMsgCheckoutRecordErr, "session_id", session.SessionID, "error", err)
	}

	metrics.CheckoutsCreated.WithLabelValues(string(record.Kind)).Inc()
	log.Info(LogMsgCheckoutCreated, "kind", record.Kind, "session_id", session.SessionID, "amount_cents", record.AmountCents)
	return session, nil
}

func (s *service) expire(ctx context.Context, sessionID string) {
	log := logger.FromContext(ctx)

	if err := s.provider.ExpireCheckout(ctx, sessionID); err != nil {
		log.Error(LogMsgExpireFailed, "session_id", sessionID, "error", err)
		return
	}
	if err := s.checkouts.UpdateCheckoutStatus(ctx, sessionID, domain.CheckoutStatusExpired); err != nil {
		log.Error(LogMsgCheckoutRecordErr, "session_id", sessionID, "error", err)
	}
	log.Warn(LogMsgCheckoutExpired, "session_id", sessionID)
}
