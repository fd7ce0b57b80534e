package handler

import (
	"net/http"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/auth"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/payments"
)

// ClubSubscriptionRequest is the body of POST /payments/create-club-subscription
type ClubSubscriptionRequest struct {
	ClubID     string `json:"club_id" validate:"required,uuid"`
	Tier       string `json:"tier" validate:"required,max=20"`
	SuccessURL string `json:"success_url" validate:"required,url"`
	CancelURL  string `json:"cancel_url" validate:"required,url"`
}

// TokenPackPurchaseRequest is the body of POST /payments/token-pack-purchase
type TokenPackPurchaseRequest struct {
	PackID     string `json:"pack_id" validate:"required,max=20"`
	SuccessURL string `json:"success_url" validate:"required,url"`
	CancelURL  string `json:"cancel_url" validate:"required,url"`
}

// HybridPaymentRequest is the body of POST /payments/process-hybrid-payment
type HybridPaymentRequest struct {
	ClubID          string `json:"club_id" validate:"required,uuid"`
	ServiceType     string `json:"service_type" validate:"required,max=50"`
	ServiceName     string `json:"service_name" validate:"required,max=100"`
	TotalPriceCents int64  `json:"total_price_cents" validate:"min=0,max=100000000"`
	TokensToUse     int    `json:"tokens_to_use" validate:"min=0"`
	SuccessURL      string `json:"success_url" validate:"required,url"`
	CancelURL       string `json:"cancel_url" validate:"required,url"`
}

// CatalogResponse lists what can be bought
type CatalogResponse struct {
	Tiers []payments.Tier      `json:"tiers"`
	Packs []payments.TokenPack `json:"packs"`
}

// PaymentHandler serves checkout creation
type PaymentHandler struct {
	svc payments.Service
}

func NewPaymentHandler(svc payments.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func customerFrom(r *http.Request, userID string) payments.Customer {
	c := payments.Customer{UserID: userID}
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		c.Email = claims.Email
	}
	return c
}

// HandleCatalog lists subscription tiers and token packs
// @Summary Payment catalog
// @Tags payments
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/payments/catalog [get]
func (h *PaymentHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog := h.svc.Catalog()
	respondJSON(w, http.StatusOK, CatalogResponse{Tiers: catalog.Tiers(), Packs: catalog.Packs()})
}

// HandleCreateClubSubscription opens a subscription checkout for a club
// @Summary Create club subscription checkout
// @Tags payments
// @Accept json
// @Produce json
// @Param request body ClubSubscriptionRequest true "Subscription"
// @Success 201 {object} domain.CheckoutSession
// @Failure 400 {object} ValidationErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/payments/create-club-subscription [post]
func (h *PaymentHandler) HandleCreateClubSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ClubSubscriptionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create club subscription"); err != nil {
		return
	}

	session, err := h.svc.CreateClubSubscription(r.Context(), customerFrom(r, userID), payments.ClubSubscriptionRequest{
		ClubID:     req.ClubID,
		Tier:       req.Tier,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		respondServiceError(w, r, "Create club subscription", err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// HandleTokenPackPurchase opens a one-off checkout for a token pack
// @Summary Create token pack checkout
// @Tags payments
// @Accept json
// @Produce json
// @Param request body TokenPackPurchaseRequest true "Pack"
// @Success 201 {object} domain.CheckoutSession
// @Failure 400 {object} ValidationErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/payments/token-pack-purchase [post]
func (h *PaymentHandler) HandleTokenPackPurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req TokenPackPurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Token pack purchase"); err != nil {
		return
	}

	session, err := h.svc.PurchaseTokenPack(r.Context(), customerFrom(r, userID), payments.TokenPackRequest{
		PackID:     req.PackID,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		respondServiceError(w, r, "Token pack purchase", err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// HandleHybridPayment pays for a club service with tokens and cash
// @Summary Process hybrid payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body HybridPaymentRequest true "Payment"
// @Success 201 {object} domain.HybridPaymentResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/payments/process-hybrid-payment [post]
func (h *PaymentHandler) HandleHybridPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req HybridPaymentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hybrid payment"); err != nil {
		return
	}

	result, err := h.svc.ProcessHybridPayment(r.Context(), customerFrom(r, userID), payments.HybridPaymentRequest{
		ClubID:          req.ClubID,
		ServiceType:     req.ServiceType,
		ServiceName:     req.ServiceName,
		TotalPriceCents: req.TotalPriceCents,
		TokensToUse:     req.TokensToUse,
		SuccessURL:      req.SuccessURL,
		CancelURL:       req.CancelURL,
	})
	if err != nil {
		respondServiceError(w, r, "Hybrid payment", err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// HandleListCheckouts lists the caller's recent checkouts
// @Summary List checkouts
// @Tags payments
// @Produce json
// @Param limit query int false "Maximum rows (default 20, max 100)"
// @Success 200 {array} domain.CheckoutRecord
// @Router /api/v1/payments/checkouts [get]
func (h *PaymentHandler) HandleListCheckouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(r, w)
	if !ok {
		return
	}

	records, err := h.svc.ListCheckouts(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "List checkouts", err)
		return
	}
	if records == nil {
		records = []domain.CheckoutRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
