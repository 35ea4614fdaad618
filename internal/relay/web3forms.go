package relay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dolinaroz/landing/internal/lead"
)

const DefaultEndpoint = "https://api.web3forms.com/submit"

// Web3Forms posts leads as multipart/form-data to a web3forms compatible endpoint.
type Web3Forms struct {
	endpoint string
	client   *resty.Client
}

// Web3FormsOption configures a Web3Forms relay.
type Web3FormsOption func(*Web3Forms)

// WithTimeout bounds a single delivery, connection and response included.
func WithTimeout(d time.Duration) Web3FormsOption {
	return func(w *Web3Forms) {
		if d > 0 {
			w.client.SetTimeout(d)
		}
	}
}

// WithHTTPClient sends requests through hc, e.g. an httptest server client.
func WithHTTPClient(hc *http.Client) Web3FormsOption {
	return func(w *Web3Forms) {
		w.client = resty.NewWithClient(hc)
	}
}

// NewWeb3Forms creates a relay for endpoint. An empty endpoint selects DefaultEndpoint.
func NewWeb3Forms(endpoint string, opts ...Web3FormsOption) *Web3Forms {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	w := &Web3Forms{
		endpoint: endpoint,
		client:   resty.New().SetTimeout(10 * time.Second),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.client.SetHeader("Accept", "application/json")
	return w
}

// Deliver sends the lead once. Any 2xx status is success; the body is not inspected.
func (w *Web3Forms) Deliver(ctx context.Context, fields lead.Fields) error {
	form := map[string]string{
		"access_key": fields.AccessKey,
		"name":       fields.Name,
		"phone":      fields.Phone,
	}
	if fields.Email != "" {
		form["email"] = fields.Email
	}
	if fields.Message != "" {
		form["message"] = fields.Message
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetMultipartFormData(form).
		Post(w.endpoint)
	if err != nil {
		return &lead.SubmissionError{Err: fmt.Errorf("failed to send request to relay: %w", err)}
	}

	if !resp.IsSuccess() {
		return &lead.SubmissionError{
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("relay returned an error: status %d", resp.StatusCode()),
		}
	}

	slog.Info("Lead delivered to relay", "endpoint", w.endpoint, "status", resp.StatusCode())
	return nil
}
