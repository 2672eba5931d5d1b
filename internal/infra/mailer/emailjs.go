package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"azulhomes/internal/pkg/config"
	"azulhomes/internal/pkg/errs"
)

var ErrMissingCredentials = errs.New("email service credentials are not configured")

// EmailJS posts template parameters to the hosted EmailJS send endpoint.
type EmailJS struct {
	cfg    config.MailConfig
	client *http.Client
}

func NewEmailJS(cfg config.MailConfig) *EmailJS {
	return &EmailJS{
		cfg: cfg,
		// Timeouts are enforced per request through the context.
		client: &http.Client{},
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

func (m *EmailJS) Send(ctx context.Context, templateID string, params map[string]any) error {
	if m.cfg.ServiceID == "" || m.cfg.PublicKey == "" || templateID == "" {
		return ErrMissingCredentials
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      m.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         m.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode email payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to reach email service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("email service responded %d: %s", resp.StatusCode, string(detail)))
	}
	return nil
}
