package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChatConfig(baseURL string) ChatConfig {
	return ChatConfig{
		BaseURL:     baseURL,
		APIKey:      "sk-or-test",
		Model:       "nvidia/nemotron-nano-12b-v2-vl:free",
		MaxTokens:   2048,
		Temperature: 0.3,
		SiteURL:     "http://localhost:8000",
		SiteName:    "Nexus Enterprise Bot",
	}
}

func TestCompleteSuccess(t *testing.T) {
	t.Parallel()

	var gotReq struct {
		Model       string        `json:"model"`
		MaxTokens   int           `json:"max_tokens"`
		Temperature float64       `json:"temperature"`
		Messages    []ChatMessage `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk-or-test", r.Header.Get("Authorization"))
		assert.Equal(t, "http://localhost:8000", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Nexus Enterprise Bot", r.Header.Get("X-Title"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Clause 4.2 caps liability.  "}}]}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	// Trailing slash on the base URL must not produce a double slash.
	reply, err := client.Complete(context.Background(), testChatConfig(srv.URL+"/"), []ChatMessage{
		{Role: "system", Content: "You are Nexus."},
		{Role: "user", Content: "Summarize the liability clause."},
	})
	require.NoError(t, err)
	assert.Equal(t, "Clause 4.2 caps liability.", reply)

	assert.Equal(t, "nvidia/nemotron-nano-12b-v2-vl:free", gotReq.Model)
	assert.Equal(t, 2048, gotReq.MaxTokens)
	assert.InDelta(t, 0.3, gotReq.Temperature, 1e-9)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestCompleteStatusSentinels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrAuthFailed},
		{name: "payment required", status: http.StatusPaymentRequired, want: ErrInsufficientCredits},
		{name: "rate limited", status: http.StatusTooManyRequests, want: ErrRateLimited},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"error":{"message":"upstream detail"}}`))
			}))
			defer srv.Close()

			client := NewClient(time.Second)
			_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCompleteAPIErrorCarriesStatusAndMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})

	var apiErr *OpenRouterError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "model overloaded", apiErr.Message)
}

func TestCompleteAPIErrorWithoutBodyUsesStatusText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})

	var apiErr *OpenRouterError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "Service Unavailable", apiErr.Message)
}

func TestCompleteErrorBodyWithOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[],"error":{"message":"provider returned error"}}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})

	var apiErr *OpenRouterError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, "provider returned error", apiErr.Message)
}

func TestCompleteEmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestCompleteBlankReply(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   \n  "}}]}`))
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestCompleteTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"too late"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(30 * time.Millisecond)
	_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCompleteMalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [`))
	}))
	defer srv.Close()

	client := NewClient(time.Second)
	_, err := client.Complete(context.Background(), testChatConfig(srv.URL), []ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode llm response failed")
}
