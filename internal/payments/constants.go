package payments

// Club subscription tiers
const (
	TierCommunity = "community"
	TierCore      = "core"
	TierPlus      = "plus"
	TierPro       = "pro"
)

// Token packs
const (
	PackStarter = "starter"
	PackPlayer  = "player"
	PackPro     = "pro"
)

// Checkout modes understood by providers
const (
	ModePayment      = "payment"
	ModeSubscription = "subscription"
)

// Currency used for every checkout
const Currency = "usd"

// DefaultTokenValueCents is the cash value of one token
const DefaultTokenValueCents = 10

// Metadata keys attached to provider sessions
const (
	MetaUserID      = "user_id"
	MetaClubID      = "club_id"
	MetaTier        = "tier"
	MetaPackID      = "pack_id"
	MetaTokens      = "tokens"
	MetaServiceType = "service_type"
	MetaTokensUsed  = "tokens_used"
	MetaKind        = "kind"
)

// Error message templates
const (
	ErrMsgUnknownTier       = "%w: %s"
	ErrMsgUnknownPack       = "%w: %s"
	ErrMsgTokensExceedPrice = "%w: %d tokens are worth %s, price is %s"
	ErrMsgProviderFailed    = "%w: %v"
	ErrMsgNegativeAmount    = "%w: amounts must not be negative"
)

// Log messages
const (
	LogMsgCheckoutCreated   = "Checkout session created"
	LogMsgCheckoutRecordErr = "Failed to record checkout"
	LogMsgCheckoutExpired   = "Checkout session expired after failed redemption"
	LogMsgExpireFailed      = "Failed to expire checkout session"
	LogMsgHybridProcessed   = "Hybrid payment processed"
)
