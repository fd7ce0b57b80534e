package domain

import "time"

// CheckoutKind identifies which payment flow created a checkout session
type CheckoutKind string

const (
	CheckoutClubSubscription CheckoutKind = "club_subscription"
	CheckoutTokenPack        CheckoutKind = "token_pack"
	CheckoutHybridPayment    CheckoutKind = "hybrid_payment"
)

// Checkout statuses
const (
	CheckoutStatusOpen    = "open"
	CheckoutStatusExpired = "expired"
)

// CheckoutRecord is the local record of a provider checkout session
type CheckoutRecord struct {
	ID                string       `json:"id"`
	ProviderSessionID string       `json:"provider_session_id"`
	Kind              CheckoutKind `json:"kind"`
	UserID            string       `json:"user_id"`
	ClubID            string       `json:"club_id,omitempty"`
	AmountCents       int64        `json:"amount_cents"`
	Tokens            int          `json:"tokens"`
	Status            string       `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
}

// CheckoutSession is what a client needs to redirect to the hosted checkout
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// HybridPaymentResult reports how a service price was split between tokens and cash
type HybridPaymentResult struct {
	TokensUsed int                    `json:"tokens_used"`
	TokenValue string                 `json:"token_value"`
	CashAmount string                 `json:"cash_amount"`
	Redemption *TokenRedemptionResult `json:"redemption,omitempty"`
	Checkout   *CheckoutSession       `json:"checkout,omitempty"`
}
