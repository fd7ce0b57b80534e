package handler

import (
	"net/http"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/completion"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/player"
)

// RestoreHPRequest is the body of POST /players/me/hp/restore
type RestoreHPRequest struct {
	Amount       int    `json:"amount" validate:"required,min=1,max=100"`
	ActivityType string `json:"activity_type" validate:"max=50"`
	Description  string `json:"description" validate:"max=200"`
}

// AwardXPRequest is the body of POST /players/me/xp and /coaches/me/cxp
type AwardXPRequest struct {
	Amount       int    `json:"amount" validate:"required,min=1,max=10000"`
	ActivityType string `json:"activity_type" validate:"max=50"`
	Description  string `json:"description" validate:"max=200"`
}

// PlayerHandler serves the caller's HP and XP
type PlayerHandler struct {
	players    player.Service
	completion completion.Service
}

func NewPlayerHandler(players player.Service, svc completion.Service) *PlayerHandler {
	return &PlayerHandler{players: players, completion: svc}
}

// HandleGetStatus returns the caller's HP and XP snapshot
// @Summary Player status
// @Tags players
// @Produce json
// @Success 200 {object} domain.PlayerStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/me/status [get]
func (h *PlayerHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	status, err := h.players.GetStatus(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get player status", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleRestoreHP restores the caller's HP
// @Summary Restore HP
// @Tags players
// @Accept json
// @Produce json
// @Param request body RestoreHPRequest true "Restoration"
// @Success 200 {object} domain.HPRestoreResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players/me/hp/restore [post]
func (h *PlayerHandler) HandleRestoreHP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req RestoreHPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Restore HP"); err != nil {
		return
	}

	result, err := h.completion.RestoreHP(r.Context(), domain.HPRestoreRequest{
		UserID:       userID,
		Amount:       req.Amount,
		ActivityType: req.ActivityType,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(w, r, "Restore HP", err)
		return
	}

	h.players.Invalidate(userID)
	respondJSON(w, http.StatusOK, result)
}

// HandleAwardXP grants XP to the caller
// @Summary Award XP
// @Tags players
// @Accept json
// @Produce json
// @Param request body AwardXPRequest true "Award"
// @Success 200 {object} completion.XPOutcome
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players/me/xp [post]
func (h *PlayerHandler) HandleAwardXP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req AwardXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Award XP"); err != nil {
		return
	}

	outcome, err := h.completion.AwardXP(r.Context(), domain.XPAward{
		UserID:       userID,
		Amount:       req.Amount,
		ActivityType: req.ActivityType,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(w, r, "Award XP", err)
		return
	}

	h.players.Invalidate(userID)
	respondJSON(w, http.StatusOK, outcome)
}

// HandleAwardCoachXP grants coaching XP to the caller
// @Summary Award coach XP
// @Tags coaches
// @Accept json
// @Produce json
// @Param request body AwardXPRequest true "Award"
// @Success 200 {object} domain.CXPResult
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/coaches/me/cxp [post]
func (h *PlayerHandler) HandleAwardCoachXP(w http.ResponseWriter, r *http.Request) {
	coachID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req AwardXPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Award coach XP"); err != nil {
		return
	}

	result, err := h.completion.AwardCoachXP(r.Context(), domain.CXPAward{
		CoachID:      coachID,
		Amount:       req.Amount,
		ActivityType: req.ActivityType,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(w, r, "Award coach XP", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
