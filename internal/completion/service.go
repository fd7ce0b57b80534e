package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/gateway"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/metrics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/repository"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
)

// XPOutcome is an XP award with the level progress it leaves the player at
type XPOutcome struct {
	domain.XPResult
	Progress rewards.LevelProgress `json:"level_progress"`
}

// Service settles sessions and applies awards through the hosted backend
type Service interface {
	CompleteSession(ctx context.Context, requestedBy string, req domain.CompletionRequest) (*domain.CompletionOutcome, error)
	RestoreHP(ctx context.Context, req domain.HPRestoreRequest) (*domain.HPRestoreResult, error)
	AwardXP(ctx context.Context, award domain.XPAward) (*XPOutcome, error)
	AwardCoachXP(ctx context.Context, award domain.CXPAward) (*domain.CXPResult, error)
	ListCompletions(ctx context.Context, sessionID string) ([]domain.CompletionAudit, error)
}

type service struct {
	calc  rewards.Calculator
	gw    gateway.Gateway
	audit repository.CompletionAudit
}

// NewService creates a completion service
func NewService(calc rewards.Calculator, gw gateway.Gateway, audit repository.CompletionAudit) Service {
	return &service{calc: calc, gw: gw, audit: audit}
}

// CompleteSession validates the request, previews the expected rewards for
// the requesting player and settles the session remotely. A backend rollback
// returns the outcome together with domain.ErrSessionRolledBack.
func (s *service) CompleteSession(ctx context.Context, requestedBy string, req domain.CompletionRequest) (*domain.CompletionOutcome, error) {
	log := logger.FromContext(ctx)

	if err := validateCompletion(req); err != nil {
		return nil, err
	}

	expected := s.calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     req.Data.SessionType,
		PlayerLevel:     req.Data.PlayerLevel,
		OpponentLevel:   req.Data.OpponentLevel,
		StakesAmount:    req.Data.StakesAmount,
		DurationMinutes: req.Data.DurationMinutes,
		IsWinner:        req.WinnerID != "" && req.WinnerID == requestedBy,
	})

	log.Info(LogMsgCompletingSession, "session_id", req.SessionID, "session_type", req.Data.SessionType)
	result, err := s.gw.CompleteSession(ctx, req)
	s.recordAudit(ctx, requestedBy, req.SessionID, result, err)

	if err != nil {
		if result == nil {
			return nil, err
		}
		if errors.Is(err, domain.ErrSessionRolledBack) {
			metrics.SessionsRolledBack.Inc()
		}
		return &domain.CompletionOutcome{Expected: expected, Result: *result}, err
	}

	metrics.SessionsCompleted.WithLabelValues(string(req.Data.SessionType)).Inc()
	log.Info(LogMsgSessionCompleted, "session_id", req.SessionID, "net_payout", result.NetPayout)

	return &domain.CompletionOutcome{Expected: expected, Result: *result}, nil
}

func validateCompletion(req domain.CompletionRequest) error {
	if _, err := uuid.Parse(req.SessionID); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSessionID, req.SessionID)
	}
	if req.WinnerID != "" && req.WinningTeam != "" {
		return domain.ErrConflictingOutcome
	}
	if req.WinnerID != "" {
		if _, err := uuid.Parse(req.WinnerID); err != nil {
			return fmt.Errorf(ErrMsgWinnerNotUUID, domain.ErrInvalidInput)
		}
	}
	if req.Data.DurationMinutes <= 0 {
		return domain.ErrInvalidDuration
	}
	if !req.Data.SessionType.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSessionType, req.Data.SessionType)
	}
	return nil
}

// recordAudit persists the attempt. Failures are logged only; the remote
// state change has already happened.
func (s *service) recordAudit(ctx context.Context, requestedBy, sessionID string, result *domain.CompletionResult, callErr error) {
	entry := &domain.CompletionAudit{
		SessionID:   sessionID,
		RequestID:   logger.GetRequestID(ctx),
		RequestedBy: requestedBy,
	}
	if result != nil {
		entry.Success = result.Success
		entry.Rollback = result.Rollback
		entry.TotalStakes = result.TotalStakes
		entry.PlatformFee = result.PlatformFee
		entry.NetPayout = result.NetPayout
		entry.Error = result.Error
	}
	if callErr != nil && entry.Error == "" {
		entry.Error = callErr.Error()
	}

	if err := s.audit.RecordCompletion(ctx, entry); err != nil {
		logger.FromContext(ctx).Error(LogMsgAuditFailed, "session_id", sessionID, "error", err)
	}
}

func (s *service) RestoreHP(ctx context.Context, req domain.HPRestoreRequest) (*domain.HPRestoreResult, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf(ErrMsgMissingUser, domain.ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf(ErrMsgAmountNotPositive, domain.ErrInvalidInput)
	}
	if req.ActivityType == "" {
		req.ActivityType = DefaultHPActivity
	}

	result, err := s.gw.RestoreHP(ctx, req)
	if err != nil {
		return nil, err
	}

	metrics.HPRestored.Add(float64(result.Restored))
	logger.FromContext(ctx).Info(LogMsgHPRestored, "user_id", req.UserID, "restored", result.Restored, "new_hp", result.NewHP)
	return result, nil
}

// AwardXP grants XP and reports progress towards the next level, derived
// from the backend's running total
func (s *service) AwardXP(ctx context.Context, award domain.XPAward) (*XPOutcome, error) {
	if award.UserID == "" {
		return nil, fmt.Errorf(ErrMsgMissingUser, domain.ErrInvalidInput)
	}
	if award.Amount <= 0 {
		return nil, fmt.Errorf(ErrMsgAmountNotPositive, domain.ErrInvalidInput)
	}
	if award.ActivityType == "" {
		award.ActivityType = DefaultXPActivity
	}

	result, err := s.gw.AddXP(ctx, award)
	if err != nil {
		return nil, err
	}

	metrics.XPAwarded.Add(float64(result.XPEarned))
	logger.FromContext(ctx).Info(LogMsgXPAwarded, "user_id", award.UserID, "xp", result.XPEarned, "level_up", result.LevelUp)

	return &XPOutcome{XPResult: *result, Progress: rewards.ProgressForXP(result.TotalXP)}, nil
}

func (s *service) AwardCoachXP(ctx context.Context, award domain.CXPAward) (*domain.CXPResult, error) {
	if award.CoachID == "" {
		return nil, fmt.Errorf(ErrMsgMissingUser, domain.ErrInvalidInput)
	}
	if award.Amount <= 0 {
		return nil, fmt.Errorf(ErrMsgAmountNotPositive, domain.ErrInvalidInput)
	}
	if award.ActivityType == "" {
		award.ActivityType = DefaultCXPActivity
	}

	result, err := s.gw.AddCXP(ctx, award)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCXPAwarded, "coach_id", award.CoachID, "cxp", result.CXPEarned)
	return result, nil
}

func (s *service) ListCompletions(ctx context.Context, sessionID string) ([]domain.CompletionAudit, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSessionID, sessionID)
	}
	return s.audit.ListCompletions(ctx, sessionID)
}
