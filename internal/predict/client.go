package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churnlens/churnform/internal/logging"
	"github.com/churnlens/churnform/internal/profile"
	"github.com/churnlens/churnform/internal/version"
)

const (
	// PredictPath is appended to the endpoint for predictions
	PredictPath = "/predict_with_explain"

	// HealthPath is appended to the endpoint for health checks
	HealthPath = "/health"

	// RequestIDHeader carries a per-request id for log correlation
	RequestIDHeader = "X-Request-ID"
)

// Client sends customer profiles to a prediction service
type Client struct {
	// HTTPClient is the underlying HTTP client. Its Timeout is zero
	// (no timeout) unless configured.
	HTTPClient *http.Client

	// NewRequestID generates the X-Request-ID value
	NewRequestID func() string
}

// NewClient creates a prediction client. A zero timeout means requests wait
// for the service indefinitely.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTPClient:   &http.Client{Timeout: timeout},
		NewRequestID: uuid.NewString,
	}
}

// URL joins the endpoint address and a path, dropping trailing slashes from
// the endpoint.
func URL(endpoint, path string) string {
	return strings.TrimRight(endpoint, "/") + path
}

// Predict submits p to endpoint and returns the outcome. It never returns
// nil: every failure, including HTTP error statuses and bodies that are not
// predictions, becomes a *Failure carrying the error description.
func (c *Client) Predict(ctx context.Context, endpoint string, p profile.Profile) Result {
	success, err := c.predict(ctx, endpoint, p)
	if err != nil {
		return &Failure{Message: err.Error(), Err: err}
	}
	return success
}

func (c *Client) predict(ctx context.Context, endpoint string, p profile.Profile) (*Success, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, newRequestError("failed to encode profile", err)
	}

	target := URL(endpoint, PredictPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, newRequestError("failed to create POST request", err)
	}

	requestID := c.requestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("User-Agent", version.UserAgent())

	logging.LogPredictRequest(requestID, target, len(body))
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		reqErr := classifyTransportError("POST request failed", err)
		logging.Warn("Prediction request failed",
			zap.String("request_id", requestID),
			zap.String("kind", reqErr.Kind.String()),
			zap.Error(err),
		)
		return nil, reqErr
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError("failed to read response body", err)
	}

	logging.LogPredictResponse(requestID, resp.StatusCode, len(respBody), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, statusMessage(resp.StatusCode, respBody))
	}

	success, err := DecodeResponse(respBody)
	if err != nil {
		logging.Warn("Prediction response rejected",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return success, nil
}

// Health checks that the service at endpoint answers {"status": "ok"}
func (c *Client) Health(ctx context.Context, endpoint string) error {
	target := URL(endpoint, HealthPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return newRequestError("failed to create GET request", err)
	}
	req.Header.Set(RequestIDHeader, c.requestID())
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError("GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, statusMessage(resp.StatusCode, body))
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return newDecodeError("health response is not JSON", err)
	}
	if status.Status != "ok" {
		return newDecodeError(fmt.Sprintf("service reported status %q", status.Status), nil)
	}
	return nil
}

func (c *Client) requestID() string {
	if c.NewRequestID == nil {
		return uuid.NewString()
	}
	return c.NewRequestID()
}

func statusMessage(status int, body []byte) string {
	msg := fmt.Sprintf("service returned %d %s", status, http.StatusText(status))
	if detail := decodeErrorDetail(body); detail != "" {
		msg += ": " + detail
	}
	return msg
}
