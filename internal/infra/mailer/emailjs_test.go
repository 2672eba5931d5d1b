//go:build unit

package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"azulhomes/internal/infra/mailer"
	"azulhomes/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJSSend(t *testing.T) {
	params := map[string]any{
		"subject":  "Booking Request - Ocean View Villa",
		"reply_to": "jane@x.com",
	}

	t.Run("posts the service envelope", func(t *testing.T) {
		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		cfg := config.NewTestConfig().Mail
		cfg.Endpoint = server.URL
		m := mailer.NewEmailJS(cfg)

		require.NoError(t, m.Send(context.Background(), cfg.TemplateID, params))

		assert.Equal(t, cfg.ServiceID, got["service_id"])
		assert.Equal(t, cfg.TemplateID, got["template_id"])
		assert.Equal(t, cfg.PublicKey, got["user_id"])
		sent, ok := got["template_params"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Booking Request - Ocean View Villa", sent["subject"])
		assert.Equal(t, "jane@x.com", sent["reply_to"])
	})

	t.Run("missing credentials are rejected before the wire", func(t *testing.T) {
		cfg := config.NewTestConfig().Mail
		cfg.PublicKey = ""
		m := mailer.NewEmailJS(cfg)

		err := m.Send(context.Background(), cfg.TemplateID, params)
		require.ErrorIs(t, err, mailer.ErrMissingCredentials)
		assert.Contains(t, err.Error(), "credentials")
	})

	t.Run("non-2xx responses surface the status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("invalid public key"))
		}))
		defer server.Close()

		cfg := config.NewTestConfig().Mail
		cfg.Endpoint = server.URL
		m := mailer.NewEmailJS(cfg)

		err := m.Send(context.Background(), cfg.TemplateID, params)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "invalid public key")
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		cfg := config.NewTestConfig().Mail
		cfg.Endpoint = server.URL
		m := mailer.NewEmailJS(cfg)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, m.Send(ctx, cfg.TemplateID, params))
	})
}
