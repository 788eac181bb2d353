package creditcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"carflow/internal/domain/inquiry"
	"carflow/internal/pkg/config"
	"carflow/internal/pkg/errs"
	"carflow/internal/usecase/commands"
)

// Client calls the external credit scoring service. When the integration is
// disabled it reports SKIPPED without touching the network, which the domain
// treats the same as a successful check.
type Client struct {
	cfg        config.CreditCheckConfig
	httpClient *http.Client
}

func NewClient(cfg config.CreditCheckConfig) commands.CreditChecker {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type checkRequest struct {
	NationalID string `json:"national_id"`
}

type checkResponse struct {
	Approved bool `json:"approved"`
}

func (c *Client) Check(ctx context.Context, nationalID string) (inquiry.CreditCheckOutcome, []byte, error) {
	if !c.cfg.Enabled {
		return inquiry.CreditCheckSkipped, nil, nil
	}

	body, err := json.Marshal(checkRequest{NationalID: nationalID})
	if err != nil {
		return inquiry.CreditCheckFailed, nil, errs.Wrap(err, "failed to encode credit check request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/credit-checks", bytes.NewReader(body))
	if err != nil {
		return inquiry.CreditCheckFailed, nil, errs.Wrap(err, "failed to build credit check request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return inquiry.CreditCheckFailed, nil, errs.Wrap(err, "credit check request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return inquiry.CreditCheckFailed, nil, errs.Wrap(err, "failed to read credit check response")
	}

	if resp.StatusCode != http.StatusOK {
		// The raw body is preserved for the audit trail even on failure.
		return inquiry.CreditCheckFailed, raw, nil
	}

	var parsed checkResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return inquiry.CreditCheckFailed, raw, nil
	}
	if !parsed.Approved {
		return inquiry.CreditCheckFailed, raw, nil
	}
	return inquiry.CreditCheckDone, raw, nil
}
