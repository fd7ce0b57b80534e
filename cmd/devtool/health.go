package main

import (
	"fmt"
	"net/http"
	"time"
)

var healthPaths = []string{"/healthz", "/readyz"}

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running service"
}

func (c *HealthCheckCommand) Run(args []string) error {
	env := envProduction
	if len(args) > 0 {
		env = args[0]
	}

	baseURL, err := baseURLFor(env)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", env))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range healthPaths {
		start := time.Now()
		if err := checkEndpoint(client, baseURL+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}

		if duration := time.Since(start); duration > time.Second {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func baseURLFor(env string) (string, error) {
	switch env {
	case envStaging:
		return getEnv("STAGING_URL", "http://localhost:8081"), nil
	case envProduction:
		return getEnv("PRODUCTION_URL", "http://localhost:8080"), nil
	default:
		return "", fmt.Errorf("unknown environment %q (want %s or %s)", env, envStaging, envProduction)
	}
}

func checkEndpoint(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
