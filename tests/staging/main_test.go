//go:build staging

package staging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/auth"
)

const stagingSubject = "00000000-0000-4000-8000-000000000001"

var (
	stagingURL string
	client     *http.Client
)

func TestMain(m *testing.M) {
	// Get API URL from environment or default to localhost
	stagingURL = os.Getenv("API_URL")
	if stagingURL == "" {
		stagingURL = "http://localhost:8080"
	}

	// Configure HTTP client with timeout
	client = &http.Client{
		Timeout: 10 * time.Second,
	}

	// Run tests
	os.Exit(m.Run())
}

// Helper function to make requests
func makeRequest(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := fmt.Sprintf("%s%s", stagingURL, path)
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Authorization", "Bearer "+bearerToken(t))

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request to %s: %v", url, err)
	}
	// Don't close body here, let caller do it or read it all

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, respBody
}

// bearerToken prefers STAGING_TOKEN and otherwise signs one with JWT_SECRET
func bearerToken(t *testing.T) string {
	if token := os.Getenv("STAGING_TOKEN"); token != "" {
		return token
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		t.Skip("STAGING_TOKEN or JWT_SECRET required")
	}

	token, err := auth.Sign(secret, os.Getenv("JWT_ISSUER"), stagingSubject, 10*time.Minute)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}
