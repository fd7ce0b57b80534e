package handler

import (
	"net/http"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/features"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/metrics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/player"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
)

// CalculateRewardsRequest is the body of POST /rewards/calculate
type CalculateRewardsRequest struct {
	SessionType     string `json:"session_type" validate:"required,session_type"`
	PlayerLevel     int    `json:"player_level" validate:"min=0,max=100"`
	OpponentLevel   int    `json:"opponent_level" validate:"min=0,max=100"`
	StakesAmount    int    `json:"stakes_amount" validate:"min=0,max=1000000"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=600"`
	IsWinner        bool   `json:"is_winner"`
}

// PreviewRequest is the body of POST /rewards/preview and /rewards/risk.
// CurrentHP falls back to the caller's stored HP when omitted.
type PreviewRequest struct {
	SessionType     string `json:"session_type" validate:"required,session_type"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=600"`
	CurrentHP       *int   `json:"current_hp,omitempty" validate:"omitempty,min=0,max=100"`
}

// RiskResponse is the advisor's verdict for a requested duration
type RiskResponse struct {
	SessionType     domain.SessionType `json:"session_type"`
	DurationMinutes int                `json:"duration_minutes"`
	CurrentHP       int                `json:"current_hp"`
	TooRisky        bool               `json:"too_risky"`
	Alternatives    []int              `json:"alternatives"`
}

// BracketsResponse lists the economics table for one session type
type BracketsResponse struct {
	SessionType domain.SessionType       `json:"session_type"`
	Brackets    []domain.DurationBracket `json:"brackets"`
}

// RewardsHandler serves the reward calculator
type RewardsHandler struct {
	calc    rewards.Calculator
	players player.Service
	flags   *features.Evaluator
}

// NewRewardsHandler creates a RewardsHandler. players may be nil, in which
// case previews require current_hp.
func NewRewardsHandler(calc rewards.Calculator, players player.Service, flags *features.Evaluator) *RewardsHandler {
	return &RewardsHandler{calc: calc, players: players, flags: flags}
}

// HandleCalculate computes both outcomes of a session
// @Summary Calculate session rewards
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body CalculateRewardsRequest true "Session context"
// @Success 200 {object} domain.RewardBreakdown
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/rewards/calculate [post]
func (h *RewardsHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRewardsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Calculate rewards"); err != nil {
		return
	}

	st, _ := domain.ParseSessionType(req.SessionType)
	breakdown := h.calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     st,
		PlayerLevel:     req.PlayerLevel,
		OpponentLevel:   req.OpponentLevel,
		StakesAmount:    req.StakesAmount,
		DurationMinutes: req.DurationMinutes,
		IsWinner:        req.IsWinner,
	})
	metrics.RewardCalculations.WithLabelValues(string(st)).Inc()

	respondJSON(w, http.StatusOK, breakdown)
}

// HandlePreview describes a session before it starts
// @Summary Preview a session
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Session to preview"
// @Success 200 {object} domain.SessionPreview
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/rewards/preview [post]
func (h *RewardsHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview session"); err != nil {
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	hp, ok := h.currentHP(w, r, userID, req.CurrentHP)
	if !ok {
		return
	}

	st, _ := domain.ParseSessionType(req.SessionType)
	preview := h.calc.FormatSessionPreview(st, req.DurationMinutes, hp)
	if !h.flags.IsEnabled(domain.FeatureSmartWarnings, userID) {
		preview.SmartWarnings = []string{}
	}

	respondJSON(w, http.StatusOK, preview)
}

// HandleRisk reports whether a session is affordable and which durations are
// @Summary Assess session risk
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Session to assess"
// @Success 200 {object} RiskResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/rewards/risk [post]
func (h *RewardsHandler) HandleRisk(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Assess risk"); err != nil {
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	hp, ok := h.currentHP(w, r, userID, req.CurrentHP)
	if !ok {
		return
	}

	st, _ := domain.ParseSessionType(req.SessionType)
	respondJSON(w, http.StatusOK, RiskResponse{
		SessionType:     st,
		DurationMinutes: req.DurationMinutes,
		CurrentHP:       hp,
		TooRisky:        h.calc.IsSessionTooRisky(hp, st, req.DurationMinutes),
		Alternatives:    h.calc.SuggestAlternativeDurations(hp, st, req.DurationMinutes),
	})
}

// HandleBrackets lists the base reward table
// @Summary Base reward table
// @Tags rewards
// @Produce json
// @Param session_type query string false "Limit to one session type"
// @Success 200 {array} BracketsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rewards/brackets [get]
func (h *RewardsHandler) HandleBrackets(w http.ResponseWriter, r *http.Request) {
	types := domain.AllSessionTypes
	if raw := GetOptionalQueryParam(r, "session_type", ""); raw != "" {
		st, ok := domain.ParseSessionType(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSessionType)
			return
		}
		types = []domain.SessionType{st}
	}

	out := make([]BracketsResponse, 0, len(types))
	for _, st := range types {
		out = append(out, BracketsResponse{SessionType: st, Brackets: h.calc.Brackets(st)})
	}
	respondJSON(w, http.StatusOK, out)
}

// currentHP returns the supplied HP or looks up the player's stored HP
func (h *RewardsHandler) currentHP(w http.ResponseWriter, r *http.Request, userID string, supplied *int) (int, bool) {
	if supplied != nil {
		return *supplied, true
	}
	if h.players == nil {
		respondError(w, http.StatusBadRequest, ErrMsgStatusUnavailable)
		return 0, false
	}

	status, err := h.players.GetStatus(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Load player status", err)
		return 0, false
	}
	return status.CurrentHP, true
}
