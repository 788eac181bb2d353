//go:build unit

package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carflow/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_Send(t *testing.T) {
	t.Run("posts pattern payload with auth header", func(t *testing.T) {
		var got sendRequest
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		g := NewGateway(config.SMSConfig{
			BaseURL: srv.URL,
			APIKey:  "test-key",
			Sender:  "5000",
			Timeout: time.Second,
		})

		err := g.Send(context.Background(), "inquiry_registered", "09120000000", []string{"Alice", "Sedan X"})
		require.NoError(t, err)

		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "inquiry_registered", got.Pattern)
		assert.Equal(t, "09120000000", got.Recipient)
		assert.Equal(t, "5000", got.Sender)
		assert.Equal(t, []string{"Alice", "Sedan X"}, got.Params)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		g := NewGateway(config.SMSConfig{BaseURL: srv.URL, APIKey: "k", Timeout: time.Second})

		err := g.Send(context.Background(), "p", "r", nil)
		assert.Error(t, err)
	})
}

func TestNewSender(t *testing.T) {
	t.Run("no api key falls back to log sender", func(t *testing.T) {
		s := NewSender(config.SMSConfig{})
		_, ok := s.(*LogSender)
		assert.True(t, ok)
	})

	t.Run("api key selects gateway", func(t *testing.T) {
		s := NewSender(config.SMSConfig{APIKey: "k"})
		_, ok := s.(*Gateway)
		assert.True(t, ok)
	})
}
