//go:build e2e

package test

import (
	"fmt"
	"net/http"
	"testing"
)

const maxPerMinute = 3 // small quota so we hit 429 quickly

func TestRateLimitE2E(t *testing.T) {
	extraEnv := map[string]string{
		"RATE_LIMIT_PER_MIN": fmt.Sprint(maxPerMinute),
	}

	env := SetupTestEnvironmentWithEnv(t, extraEnv)

	t.Run("rate_limit_list", func(t *testing.T) {
		for i := range maxPerMinute {
			ExecuteHTTPJSONStep(t, HTTPJSONStep{
				Name:           fmt.Sprintf("list %d", i),
				Method:         "GET",
				URL:            getAllNotesEndpoint,
				ExpectedStatus: http.StatusOK,
			}, env.BaseURL)
		}

		ExecuteHTTPJSONStep(t, HTTPJSONStep{
			Name:           "over quota",
			Method:         "GET",
			URL:            getAllNotesEndpoint,
			ExpectedStatus: http.StatusTooManyRequests,
			Validator:      ErrorMessageValidator("Too Many Requests"),
		}, env.BaseURL)
	})

	t.Run("healthz_not_limited", func(t *testing.T) {
		for range maxPerMinute + 2 {
			resp, err := env.Client.Get(env.BaseURL + "/healthz")
			if err != nil {
				t.Fatal(err)
			}
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("healthz returned %d", resp.StatusCode)
			}
		}
	})
}
