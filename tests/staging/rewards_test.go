//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type bracketsResponse struct {
	SessionType string            `json:"session_type"`
	Brackets    []json.RawMessage `json:"brackets"`
}

func TestRewardBrackets(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/rewards/brackets", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var tables []bracketsResponse
	if err := json.Unmarshal(body, &tables); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(tables) != 4 {
		t.Errorf("Expected 4 session types, got %d", len(tables))
	}
	for _, table := range tables {
		if len(table.Brackets) == 0 {
			t.Errorf("Expected brackets for %s", table.SessionType)
		}
	}
}

func TestCalculateRewards(t *testing.T) {
	resp, body := makeRequest(t, "POST", "/api/v1/rewards/calculate", map[string]any{
		"session_type":     "match",
		"player_level":     5,
		"opponent_level":   5,
		"stakes_amount":    100,
		"duration_minutes": 60,
		"is_winner":        true,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var breakdown struct {
		Rake      int `json:"rake"`
		NetPayout int `json:"net_payout"`
	}
	if err := json.Unmarshal(body, &breakdown); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if breakdown.Rake != 10 || breakdown.NetPayout != 90 {
		t.Errorf("Expected rake 10 and payout 90, got %d and %d", breakdown.Rake, breakdown.NetPayout)
	}
}

func TestRisk(t *testing.T) {
	resp, body := makeRequest(t, "POST", "/api/v1/rewards/risk", map[string]any{
		"session_type":     "training",
		"duration_minutes": 90,
		"current_hp":       15,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var risk struct {
		TooRisky     bool  `json:"too_risky"`
		Alternatives []int `json:"alternatives"`
	}
	if err := json.Unmarshal(body, &risk); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !risk.TooRisky {
		t.Error("Expected 90 minutes of training on 15 HP to be too risky")
	}
	if len(risk.Alternatives) == 0 {
		t.Error("Expected shorter alternatives")
	}
}

func TestFeatures(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/features", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var features struct {
		Flags map[string]bool `json:"flags"`
	}
	if err := json.Unmarshal(body, &features); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if _, ok := features.Flags["smart_warnings"]; !ok {
		t.Error("Expected smart_warnings in the flag set")
	}
}
