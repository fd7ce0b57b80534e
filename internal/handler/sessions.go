package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/completion"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/player"
)

// CompleteSessionRequest is the body of POST /sessions/{sessionID}/complete
type CompleteSessionRequest struct {
	WinnerID        string `json:"winner_id,omitempty" validate:"omitempty,uuid,excluded_with=WinningTeam"`
	WinningTeam     string `json:"winning_team,omitempty" validate:"omitempty,max=50"`
	SessionType     string `json:"session_type" validate:"required,session_type"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=600"`
	Score           string `json:"score,omitempty" validate:"max=50"`
	Notes           string `json:"notes,omitempty" validate:"max=1000"`
	PlayerLevel     int    `json:"player_level" validate:"min=0,max=100"`
	OpponentLevel   int    `json:"opponent_level" validate:"min=0,max=100"`
	StakesAmount    int    `json:"stakes_amount" validate:"min=0,max=1000000"`
}

// RolledBackResponse carries the backend result alongside the rollback message
type RolledBackResponse struct {
	Error  string                  `json:"error"`
	Result domain.CompletionResult `json:"result"`
}

// SessionHandler serves session completion
type SessionHandler struct {
	svc     completion.Service
	players player.Service
}

func NewSessionHandler(svc completion.Service, players player.Service) *SessionHandler {
	return &SessionHandler{svc: svc, players: players}
}

// HandleComplete settles a session on the backend
// @Summary Complete a session
// @Description Settles stakes, HP and XP for a finished session. A backend rollback returns 409.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body CompleteSessionRequest true "Outcome"
// @Success 200 {object} domain.CompletionOutcome
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} RolledBackResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/complete [post]
func (h *SessionHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CompleteSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete session"); err != nil {
		return
	}

	st, _ := domain.ParseSessionType(req.SessionType)
	outcome, err := h.svc.CompleteSession(r.Context(), userID, domain.CompletionRequest{
		SessionID:   chi.URLParam(r, "sessionID"),
		WinnerID:    req.WinnerID,
		WinningTeam: req.WinningTeam,
		Data: domain.CompletionData{
			SessionType:     st,
			DurationMinutes: req.DurationMinutes,
			Score:           req.Score,
			Notes:           req.Notes,
			PlayerLevel:     req.PlayerLevel,
			OpponentLevel:   req.OpponentLevel,
			StakesAmount:    req.StakesAmount,
		},
	})
	if outcome != nil {
		// Settled or rolled back, the cached HP and XP no longer hold
		h.players.Invalidate(userID)
		if req.WinnerID != "" && req.WinnerID != userID {
			h.players.Invalidate(req.WinnerID)
		}
	}

	if err != nil {
		if errors.Is(err, domain.ErrSessionRolledBack) && outcome != nil {
			respondJSON(w, http.StatusConflict, RolledBackResponse{Error: ErrMsgRolledBackError, Result: outcome.Result})
			return
		}
		respondServiceError(w, r, "Complete session", err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

// HandleListCompletions returns the recorded completion attempts for a session
// @Summary Session completion history
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} domain.CompletionAudit
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/completions [get]
func (h *SessionHandler) HandleListCompletions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ListCompletions(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, r, "List completions", err)
		return
	}
	if rows == nil {
		rows = []domain.CompletionAudit{}
	}
	respondJSON(w, http.StatusOK, rows)
}
