package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

const testClubID = "5c3e0b9a-1f7d-4f0a-8a43-6c2d9e7b1a20"

func clubRouter(h *ClubHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/clubs/{clubID}/token-pool", h.HandleInitializeTokenPool)
	r.Post("/clubs/{clubID}/token-redemptions", h.HandleRedeemTokens)
	return r
}

func TestHandleInitializeTokenPool(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		clubID         string
		body           any
		setupMock      func(*MockClubTokens)
		expectedStatus int
	}{
		{
			name:   "Success",
			clubID: testClubID,
			body:   TokenPoolRequest{MonthYear: "2026-10", AllocatedTokens: 5000},
			setupMock: func(m *MockClubTokens) {
				m.On("InitializeMonthlyTokenPool", mock.Anything, domain.TokenPoolInit{ClubID: testClubID, MonthYear: "2026-10", AllocatedTokens: 5000}).
					Return(&domain.TokenPoolResult{Success: true, ClubID: testClubID, MonthYear: "2026-10", AllocatedTokens: 5000}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Bad month",
			clubID:         testClubID,
			body:           TokenPoolRequest{MonthYear: "October", AllocatedTokens: 5000},
			setupMock:      func(m *MockClubTokens) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad club id",
			clubID:         "club-1",
			body:           TokenPoolRequest{MonthYear: "2026-10", AllocatedTokens: 5000},
			setupMock:      func(m *MockClubTokens) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Pool already exists",
			clubID: testClubID,
			body:   TokenPoolRequest{MonthYear: "2026-10", AllocatedTokens: 5000},
			setupMock: func(m *MockClubTokens) {
				m.On("InitializeMonthlyTokenPool", mock.Anything, mock.Anything).
					Return(&domain.TokenPoolResult{Success: false, Error: "pool exists"}, domain.ErrRemoteRejected)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := new(MockClubTokens)
			tt.setupMock(tokens)

			rec := httptest.NewRecorder()
			clubRouter(NewClubHandler(tokens)).ServeHTTP(rec, withUser(postJSON(t, "/clubs/"+tt.clubID+"/token-pool", tt.body), testUserID))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tokens.AssertExpectations(t)
		})
	}
}

func TestHandleRedeemTokens(t *testing.T) {
	t.Run("Defaults player to caller and normalizes cash", func(t *testing.T) {
		tokens := new(MockClubTokens)
		tokens.On("ProcessTokenRedemption", mock.Anything, domain.TokenRedemption{
			ClubID:      testClubID,
			PlayerID:    testUserID,
			ServiceType: "lesson",
			TokensUsed:  50,
			CashAmount:  "12.50",
		}).Return(&domain.TokenRedemptionResult{Success: true, TokensUsed: 50, RemainingBalance: 150}, nil)

		rec := httptest.NewRecorder()
		body := TokenRedemptionRequest{ServiceType: "lesson", TokensUsed: 50, CashAmount: "12.5"}
		clubRouter(NewClubHandler(tokens)).ServeHTTP(rec, withUser(postJSON(t, "/clubs/"+testClubID+"/token-redemptions", body), testUserID))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"remaining_balance":150`)
		tokens.AssertExpectations(t)
	})

	t.Run("Negative cash", func(t *testing.T) {
		tokens := new(MockClubTokens)

		rec := httptest.NewRecorder()
		body := TokenRedemptionRequest{ServiceType: "lesson", TokensUsed: 50, CashAmount: "-1"}
		clubRouter(NewClubHandler(tokens)).ServeHTTP(rec, withUser(postJSON(t, "/clubs/"+testClubID+"/token-redemptions", body), testUserID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidCashAmount)
	})
}
