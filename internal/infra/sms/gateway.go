package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"carflow/internal/notify"
	"carflow/internal/pkg/config"
	"carflow/internal/pkg/errs"
)

var errGatewayStatus = errs.New("sms gateway returned non-success status")

// Gateway delivers pattern-based SMS through the provider's HTTP API. The
// provider substitutes params into the named pattern server-side.
type Gateway struct {
	cfg        config.SMSConfig
	httpClient *http.Client
}

func NewGateway(cfg config.SMSConfig) notify.Sender {
	return &Gateway{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type sendRequest struct {
	Pattern   string   `json:"pattern"`
	Recipient string   `json:"recipient"`
	Sender    string   `json:"sender,omitempty"`
	Params    []string `json:"params"`
}

func (g *Gateway) Send(ctx context.Context, pattern, recipient string, params []string) error {
	body, err := json.Marshal(sendRequest{
		Pattern:   pattern,
		Recipient: recipient,
		Sender:    g.cfg.Sender,
		Params:    params,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode sms request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/messages/pattern", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "sms request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return errs.Mark(errs.Newf("sms gateway returned status %d", resp.StatusCode), errGatewayStatus)
	}
	return nil
}
