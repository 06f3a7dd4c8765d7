package deepseek

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecom-insights/listing-attributes/internal/llm"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry:   llm.Policy{MaxAttempts: 3, Delay: time.Millisecond},
	}
}

func testRequest() llm.ExtractRequest {
	return llm.ExtractRequest{
		RowID: 2,
		Fields: []llm.Field{
			{Name: "Title", Value: "Ionic hair dryer, black, 1200W"},
		},
	}
}

func completionResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestExtractAttributesParsesValidResponse(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "deepseek-chat", body["model"])

		doc := `{"color": "black", "power": "1200W", "negative_ions": "yes"}`
		fmt.Fprint(w, completionResponse(doc))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	set, raw, err := c.ExtractAttributes(context.Background(), testRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	require.NotNil(t, set.Color)
	assert.Equal(t, "black", *set.Color)
	require.NotNil(t, set.Power)
	assert.Equal(t, "1200W", *set.Power)
	require.NotNil(t, set.NegativeIons)
	assert.Equal(t, "yes", *set.NegativeIons)
	assert.Nil(t, set.MotorClass)

	assert.Equal(t, "Bearer test-key", gotAuth.Load())
}

func TestExtractAttributesStripsProseWrapper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc := "Here you go:\n```json\n{\"color\": \"blue\"}\n```"
		fmt.Fprint(w, completionResponse(doc))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	set, _, err := c.ExtractAttributes(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, set.Color)
	assert.Equal(t, "blue", *set.Color)
}

func TestExtractAttributesDegradesAfterExhaustion(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, completionResponse("no json here at all"))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	set, _, err := c.ExtractAttributes(context.Background(), testRequest())
	require.NoError(t, err, "exhaustion is degraded, not failed")
	assert.True(t, set.IsEmpty())
	assert.Equal(t, int32(3), calls.Load())
}

func TestExtractAttributesRecoversAfterServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, completionResponse(`{"storage_case": "yes"}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil)
	set, _, err := c.ExtractAttributes(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, set.StorageCase)
	assert.Equal(t, "yes", *set.StorageCase)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtractAttributesPropagatesCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(testConfig(srv.URL), nil)
	_, _, err := c.ExtractAttributes(ctx, testRequest())
	assert.ErrorIs(t, err, context.Canceled)
}
