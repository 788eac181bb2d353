//go:build unit

package creditcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carflow/internal/domain/inquiry"
	"carflow/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Check(t *testing.T) {
	t.Run("disabled integration reports skipped", func(t *testing.T) {
		c := NewClient(config.CreditCheckConfig{Enabled: false})

		outcome, raw, err := c.Check(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, inquiry.CreditCheckSkipped, outcome)
		assert.Nil(t, raw)
	})

	t.Run("approved response reports done with raw body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"approved":true,"score":712}`))
		}))
		defer srv.Close()

		c := NewClient(config.CreditCheckConfig{Enabled: true, BaseURL: srv.URL, Timeout: time.Second})

		outcome, raw, err := c.Check(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, inquiry.CreditCheckDone, outcome)
		assert.JSONEq(t, `{"approved":true,"score":712}`, string(raw))
	})

	t.Run("declined response reports failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"approved":false}`))
		}))
		defer srv.Close()

		c := NewClient(config.CreditCheckConfig{Enabled: true, BaseURL: srv.URL, Timeout: time.Second})

		outcome, _, err := c.Check(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, inquiry.CreditCheckFailed, outcome)
	})

	t.Run("service error reports failed without transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"upstream"}`))
		}))
		defer srv.Close()

		c := NewClient(config.CreditCheckConfig{Enabled: true, BaseURL: srv.URL, Timeout: time.Second})

		outcome, raw, err := c.Check(context.Background(), "1234567890")
		require.NoError(t, err)
		assert.Equal(t, inquiry.CreditCheckFailed, outcome)
		assert.NotEmpty(t, raw)
	})

	t.Run("unreachable service returns transport error", func(t *testing.T) {
		c := NewClient(config.CreditCheckConfig{Enabled: true, BaseURL: "http://127.0.0.1:0", Timeout: time.Second})

		outcome, _, err := c.Check(context.Background(), "1234567890")
		assert.Error(t, err)
		assert.Equal(t, inquiry.CreditCheckFailed, outcome)
	})
}
