package completion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/economics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
)

const (
	testSessionID = "7f6c1c3e-2a55-4d0e-9d3b-8f3a2f1b6c10"
	testWinnerID  = "2b7e1f02-0a3c-4b1c-9e55-1d2f3a4b5c6d"
)

func newTestService() (Service, *MockGateway, *MockAudit) {
	gw := new(MockGateway)
	audit := new(MockAudit)
	calc := rewards.NewCalculator(economics.DefaultTable(), rewards.DefaultConfig())
	return NewService(calc, gw, audit), gw, audit
}

func matchRequest() domain.CompletionRequest {
	return domain.CompletionRequest{
		SessionID: testSessionID,
		WinnerID:  testWinnerID,
		Data: domain.CompletionData{
			SessionType:     domain.SessionTypeMatch,
			DurationMinutes: 60,
			PlayerLevel:     5,
			OpponentLevel:   5,
			StakesAmount:    100,
		},
	}
}

func TestCompleteSession_Success(t *testing.T) {
	svc, gw, audit := newTestService()
	ctx := logger.WithRequestID(context.Background(), "req-1")
	req := matchRequest()

	winner := testWinnerID
	gw.On("CompleteSession", mock.Anything, req).
		Return(&domain.CompletionResult{Success: true, TotalStakes: 100, PlatformFee: 10, NetPayout: 90, WinnerID: &winner}, nil)
	audit.On("RecordCompletion", mock.Anything, mock.MatchedBy(func(a *domain.CompletionAudit) bool {
		return a.SessionID == testSessionID && a.RequestID == "req-1" && a.RequestedBy == testWinnerID &&
			a.Success && a.NetPayout == 90 && a.Error == ""
	})).Return(nil)

	outcome, err := svc.CompleteSession(ctx, testWinnerID, req)
	require.NoError(t, err)

	assert.Equal(t, 90, outcome.Result.NetPayout)
	assert.Equal(t, 70, outcome.Expected.WinXP)
	assert.Equal(t, 10, outcome.Expected.Rake)
	assert.Equal(t, domain.Reward{XP: 70, HP: -18, Tokens: 102}, outcome.Expected.Projected)

	gw.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestCompleteSession_LoserProjection(t *testing.T) {
	svc, gw, audit := newTestService()
	req := matchRequest()

	gw.On("CompleteSession", mock.Anything, req).
		Return(&domain.CompletionResult{Success: true, TotalStakes: 100, PlatformFee: 10, NetPayout: 90}, nil)
	audit.On("RecordCompletion", mock.Anything, mock.Anything).Return(nil)

	outcome, err := svc.CompleteSession(context.Background(), "someone-else", req)
	require.NoError(t, err)
	assert.Equal(t, outcome.Expected.Lose(), outcome.Expected.Projected)
}

func TestCompleteSession_Rollback(t *testing.T) {
	svc, gw, audit := newTestService()
	req := matchRequest()

	result := &domain.CompletionResult{Success: false, Error: "insufficient tokens", Rollback: true}
	gw.On("CompleteSession", mock.Anything, req).
		Return(result, fmt.Errorf("%w: insufficient tokens", domain.ErrSessionRolledBack))
	audit.On("RecordCompletion", mock.Anything, mock.MatchedBy(func(a *domain.CompletionAudit) bool {
		return !a.Success && a.Rollback && a.Error == "insufficient tokens"
	})).Return(nil)

	outcome, err := svc.CompleteSession(context.Background(), testWinnerID, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionRolledBack)
	require.NotNil(t, outcome)
	assert.True(t, outcome.Result.Rollback)
	audit.AssertExpectations(t)
}

func TestCompleteSession_TransportFailureIsAudited(t *testing.T) {
	svc, gw, audit := newTestService()
	req := matchRequest()

	gw.On("CompleteSession", mock.Anything, req).
		Return(nil, fmt.Errorf("%w: connection refused", domain.ErrRemoteUnavailable))
	audit.On("RecordCompletion", mock.Anything, mock.MatchedBy(func(a *domain.CompletionAudit) bool {
		return !a.Success && a.Error != ""
	})).Return(nil)

	outcome, err := svc.CompleteSession(context.Background(), testWinnerID, req)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	audit.AssertExpectations(t)
}

func TestCompleteSession_AuditFailureIsNotReturned(t *testing.T) {
	svc, gw, audit := newTestService()
	req := matchRequest()

	gw.On("CompleteSession", mock.Anything, req).
		Return(&domain.CompletionResult{Success: true, TotalStakes: 100, PlatformFee: 10, NetPayout: 90}, nil)
	audit.On("RecordCompletion", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	outcome, err := svc.CompleteSession(context.Background(), testWinnerID, req)
	require.NoError(t, err)
	assert.True(t, outcome.Result.Success)
}

func TestCompleteSession_PreflightValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domain.CompletionRequest)
		wantErr error
	}{
		{"bad session id", func(r *domain.CompletionRequest) { r.SessionID = "not-a-uuid" }, domain.ErrInvalidSessionID},
		{"winner and team", func(r *domain.CompletionRequest) { r.WinningTeam = "team_a" }, domain.ErrConflictingOutcome},
		{"winner not uuid", func(r *domain.CompletionRequest) { r.WinnerID = "bob" }, domain.ErrInvalidInput},
		{"zero duration", func(r *domain.CompletionRequest) { r.Data.DurationMinutes = 0 }, domain.ErrInvalidDuration},
		{"unknown type", func(r *domain.CompletionRequest) { r.Data.SessionType = "yoga" }, domain.ErrInvalidSessionType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw, audit := newTestService()
			req := matchRequest()
			tt.mutate(&req)

			_, err := svc.CompleteSession(context.Background(), testWinnerID, req)
			assert.ErrorIs(t, err, tt.wantErr)
			gw.AssertNotCalled(t, "CompleteSession", mock.Anything, mock.Anything)
			audit.AssertNotCalled(t, "RecordCompletion", mock.Anything, mock.Anything)
		})
	}
}

func TestCompleteSession_TeamOutcome(t *testing.T) {
	svc, gw, audit := newTestService()
	req := matchRequest()
	req.WinnerID = ""
	req.WinningTeam = "team_a"

	gw.On("CompleteSession", mock.Anything, req).
		Return(&domain.CompletionResult{Success: true, TotalStakes: 100, PlatformFee: 10, NetPayout: 90}, nil)
	audit.On("RecordCompletion", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.CompleteSession(context.Background(), testWinnerID, req)
	require.NoError(t, err)
}

func TestRestoreHP(t *testing.T) {
	svc, gw, _ := newTestService()

	gw.On("RestoreHP", mock.Anything, domain.HPRestoreRequest{UserID: "u1", Amount: 20, ActivityType: DefaultHPActivity}).
		Return(&domain.HPRestoreResult{Success: true, PreviousHP: 50, NewHP: 70, MaxHP: 100, Restored: 20}, nil)

	result, err := svc.RestoreHP(context.Background(), domain.HPRestoreRequest{UserID: "u1", Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, 70, result.NewHP)

	_, err = svc.RestoreHP(context.Background(), domain.HPRestoreRequest{UserID: "u1", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.RestoreHP(context.Background(), domain.HPRestoreRequest{Amount: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	gw.AssertNumberOfCalls(t, "RestoreHP", 1)
}

func TestAwardXP_AddsLevelProgress(t *testing.T) {
	svc, gw, _ := newTestService()

	award := domain.XPAward{UserID: "u1", Amount: 50, ActivityType: "match", Description: "won"}
	gw.On("AddXP", mock.Anything, award).
		Return(&domain.XPResult{Success: true, XPEarned: 50, TotalXP: 450, CurrentLevel: 3}, nil)

	outcome, err := svc.AwardXP(context.Background(), award)
	require.NoError(t, err)
	assert.Equal(t, 450, outcome.TotalXP)
	assert.Equal(t, rewards.LevelProgress{Level: 3, XPIntoLevel: 68, XPToNextLevel: 451}, outcome.Progress)
}

func TestAwardXP_GatewayError(t *testing.T) {
	svc, gw, _ := newTestService()

	gw.On("AddXP", mock.Anything, mock.Anything).Return(nil, domain.ErrRemoteRejected)

	_, err := svc.AwardXP(context.Background(), domain.XPAward{UserID: "u1", Amount: 5})
	assert.ErrorIs(t, err, domain.ErrRemoteRejected)
}

func TestAwardCoachXP(t *testing.T) {
	svc, gw, _ := newTestService()

	gw.On("AddCXP", mock.Anything, domain.CXPAward{CoachID: "c1", Amount: 15, ActivityType: DefaultCXPActivity}).
		Return(&domain.CXPResult{Success: true, CXPEarned: 15, TotalCXP: 115, CurrentLevel: 2}, nil)

	result, err := svc.AwardCoachXP(context.Background(), domain.CXPAward{CoachID: "c1", Amount: 15})
	require.NoError(t, err)
	assert.Equal(t, 115, result.TotalCXP)

	_, err = svc.AwardCoachXP(context.Background(), domain.CXPAward{CoachID: "c1", Amount: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListCompletions(t *testing.T) {
	svc, _, audit := newTestService()

	audit.On("ListCompletions", mock.Anything, testSessionID).
		Return([]domain.CompletionAudit{{SessionID: testSessionID, Success: true}}, nil)

	rows, err := svc.ListCompletions(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = svc.ListCompletions(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidSessionID)
}
