package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// ClubTokens is the slice of the gateway that manages club token pools
type ClubTokens interface {
	ProcessTokenRedemption(ctx context.Context, req domain.TokenRedemption) (*domain.TokenRedemptionResult, error)
	InitializeMonthlyTokenPool(ctx context.Context, req domain.TokenPoolInit) (*domain.TokenPoolResult, error)
}

// TokenPoolRequest is the body of POST /clubs/{clubID}/token-pool
type TokenPoolRequest struct {
	MonthYear       string `json:"month_year" validate:"required,datetime=2006-01"`
	AllocatedTokens int    `json:"allocated_tokens" validate:"required,min=1,max=10000000"`
}

// TokenRedemptionRequest is the body of POST /clubs/{clubID}/token-redemptions.
// PlayerID defaults to the caller.
type TokenRedemptionRequest struct {
	PlayerID    string `json:"player_id,omitempty" validate:"omitempty,uuid"`
	ServiceType string `json:"service_type" validate:"required,max=50"`
	TokensUsed  int    `json:"tokens_used" validate:"required,min=1"`
	CashAmount  string `json:"cash_amount,omitempty" validate:"max=20"`
	Description string `json:"description" validate:"max=200"`
}

// ClubHandler serves club token pools
type ClubHandler struct {
	tokens ClubTokens
}

func NewClubHandler(tokens ClubTokens) *ClubHandler {
	return &ClubHandler{tokens: tokens}
}

// HandleInitializeTokenPool allocates a club's tokens for a month
// @Summary Initialize monthly token pool
// @Tags clubs
// @Accept json
// @Produce json
// @Param clubID path string true "Club ID"
// @Param request body TokenPoolRequest true "Allocation"
// @Success 201 {object} domain.TokenPoolResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/clubs/{clubID}/token-pool [post]
func (h *ClubHandler) HandleInitializeTokenPool(w http.ResponseWriter, r *http.Request) {
	clubID, ok := requireUUIDParam(w, chi.URLParam(r, "clubID"), ErrMsgInvalidClubID)
	if !ok {
		return
	}

	var req TokenPoolRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Initialize token pool"); err != nil {
		return
	}

	result, err := h.tokens.InitializeMonthlyTokenPool(r.Context(), domain.TokenPoolInit{
		ClubID:          clubID,
		MonthYear:       req.MonthYear,
		AllocatedTokens: req.AllocatedTokens,
	})
	if err != nil {
		respondServiceError(w, r, "Initialize token pool", err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// HandleRedeemTokens spends club tokens on a service
// @Summary Redeem club tokens
// @Tags clubs
// @Accept json
// @Produce json
// @Param clubID path string true "Club ID"
// @Param request body TokenRedemptionRequest true "Redemption"
// @Success 201 {object} domain.TokenRedemptionResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/clubs/{clubID}/token-redemptions [post]
func (h *ClubHandler) HandleRedeemTokens(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	clubID, ok := requireUUIDParam(w, chi.URLParam(r, "clubID"), ErrMsgInvalidClubID)
	if !ok {
		return
	}

	var req TokenRedemptionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Redeem tokens"); err != nil {
		return
	}

	cash := decimal.Zero
	if req.CashAmount != "" {
		parsed, err := decimal.NewFromString(req.CashAmount)
		if err != nil || parsed.IsNegative() {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCashAmount)
			return
		}
		cash = parsed
	}

	playerID := req.PlayerID
	if playerID == "" {
		playerID = userID
	}

	result, err := h.tokens.ProcessTokenRedemption(r.Context(), domain.TokenRedemption{
		ClubID:      clubID,
		PlayerID:    playerID,
		ServiceType: req.ServiceType,
		TokensUsed:  req.TokensUsed,
		CashAmount:  cash.StringFixed(2),
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(w, r, "Redeem tokens", err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}
