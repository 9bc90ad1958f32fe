//go:build e2e

package test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPJSONStep represents a single HTTP JSON request step in a test
type HTTPJSONStep struct {
	Name           string
	Method         string
	URL            string
	Body           any
	ExpectedStatus int
	Validator      func(*testing.T, map[string]any) // Optional response validator
}

// ExecuteHTTPJSONStep executes a single HTTP JSON step and handles all the common boilerplate
func ExecuteHTTPJSONStep(t *testing.T, step HTTPJSONStep, baseURL string) map[string]any {
	t.Helper()
	t.Logf("step: %s", step.Name)

	resp, err := httpJSON(step.Method, baseURL+step.URL, step.Body, nil)
	require.NoError(t, err)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Errorf(msgFailedToCloseResponseBody, err)
		}
	}()

	assert.Equal(t, step.ExpectedStatus, resp.StatusCode)

	var respData map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respData))

	if step.Validator != nil {
		step.Validator(t, respData)
	}

	return respData
}

// ExecuteHTTPJSONSteps executes a sequence of HTTP JSON steps
func ExecuteHTTPJSONSteps(t *testing.T, steps []HTTPJSONStep, baseURL string) []map[string]any {
	t.Helper()
	var results []map[string]any

	for _, step := range steps {
		results = append(results, ExecuteHTTPJSONStep(t, step, baseURL))
	}

	return results
}

// ResponseValidator checks the "response" envelope holds exactly expected
func ResponseValidator(expected string) func(*testing.T, map[string]any) {
	return func(t *testing.T, respData map[string]any) {
		t.Helper()
		assert.Equal(t, map[string]any{"response": expected}, respData)
	}
}

// MessageValidator checks the "message" envelope used by the color endpoint
func MessageValidator(expectedMessage string) func(*testing.T, map[string]any) {
	return func(t *testing.T, respData map[string]any) {
		t.Helper()
		message, exists := respData["message"]
		require.True(t, exists, "Expected message field to exist in response")
		assert.Equal(t, expectedMessage, message)
	}
}

// ErrorMessageValidator validates that an error response contains expected message content
func ErrorMessageValidator(expectedSubstring string) func(*testing.T, map[string]any) {
	return func(t *testing.T, respData map[string]any) {
		t.Helper()
		errorMsg, exists := respData["error"]
		require.True(t, exists, "Expected error field to exist in response")
		assert.Contains(t, errorMsg.(string), expectedSubstring)
	}
}

// listNotes fetches /getAllNotes and returns the notes array
func listNotes(t *testing.T, baseURL string) []map[string]any {
	t.Helper()

	body := ExecuteHTTPJSONStep(t, HTTPJSONStep{
		Name:           "list notes",
		Method:         "GET",
		URL:            getAllNotesEndpoint,
		ExpectedStatus: 200,
	}, baseURL)

	raw, ok := body["response"].([]any)
	require.True(t, ok, "response should be an array, got %T", body["response"])

	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.(map[string]any))
	}
	return out
}

// createNote posts a note and returns it as listed, found by title and content
func createNote(t *testing.T, baseURL, title, content string) map[string]any {
	t.Helper()

	ExecuteHTTPJSONStep(t, HTTPJSONStep{
		Name:           "create " + title,
		Method:         "POST",
		URL:            postNoteEndpoint,
		Body:           map[string]string{"title": title, "content": content},
		ExpectedStatus: 200,
		Validator:      ResponseValidator("Note added succesfully."),
	}, baseURL)

	var found map[string]any
	for _, n := range listNotes(t, baseURL) {
		if n["title"] == title && n["content"] == content {
			require.Nil(t, found, "note %q listed more than once", title)
			found = n
		}
	}
	require.NotNil(t, found, "note %q not listed after create", title)
	return found
}
