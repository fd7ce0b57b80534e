package handler

import (
	"net/http"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/features"
)

// FeaturesResponse is the caller's evaluated flag set
type FeaturesResponse struct {
	Flags map[string]bool `json:"flags"`
}

// HandleGetFeatures evaluates every flag for the caller
// @Summary Evaluated feature flags
// @Tags features
// @Produce json
// @Success 200 {object} FeaturesResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/features [get]
func HandleGetFeatures(eval *features.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, FeaturesResponse{Flags: eval.Evaluate(userID)})
	}
}
