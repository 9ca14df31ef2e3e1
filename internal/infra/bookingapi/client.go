package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"dozzze-checkout/internal/infra"
	"dozzze-checkout/internal/pkg/config"
)

// Client talks to the upstream booking API. It never retries: submission is
// one attempt per user action, and the other endpoints surface failures to
// the caller for user-visible notification instead.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) SearchAvailability(ctx context.Context, req AvailabilityRequest) ([]AvailabilityDay, error) {
	var out []AvailabilityDay
	if err := c.do(ctx, http.MethodPost, "/properties/availability", "", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ValidateVoucher(ctx context.Context, code string) (*VoucherValidation, error) {
	var out VoucherValidation
	path := "/vouchers/validate/" + url.PathEscape(code)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitReservation(ctx context.Context, authToken string, req SubmissionRequest) (*SubmissionResponse, error) {
	var out SubmissionResponse
	if err := c.do(ctx, http.MethodPost, "/reservations/", authToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyReservations(ctx context.Context, authToken string) ([]ConfirmedReservation, error) {
	var out []ConfirmedReservation
	if err := c.do(ctx, http.MethodGet, "/reservations/my", authToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path, authToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return infra.WrapRepoErr("failed to encode upstream request", err, infra.KindUpstreamFailure)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return infra.WrapRepoErr("failed to build upstream request", err, infra.KindUpstreamFailure)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapRepoErr("upstream request failed", err, infra.KindUpstreamFailure)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapRepoErr("upstream resource not found", nil, infra.KindNotFound)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return infra.WrapRepoErr("upstream rejected request: "+resp.Status, nil, infra.KindUpstreamRejected)
	case resp.StatusCode >= 500:
		return infra.WrapRepoErr("upstream server error: "+resp.Status, nil, infra.KindUpstreamFailure)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapRepoErr("failed to decode upstream response", err, infra.KindUpstreamFailure)
	}
	return nil
}
