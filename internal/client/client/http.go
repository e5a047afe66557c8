package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

// HTTPClient is a Client backed by net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the server at baseURL. Every request
// is bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Token string `json:"token"`
}

// Register creates an account and returns the session token.
func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	body, err := json.Marshal(registerRequest{Name: name, Email: email, Password: string(password)})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, http.MethodPost, common.UsersRoute, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var r registerResponse
		if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
			return "", fmt.Errorf("error decoding response: %w", err)
		}
		return r.Token, nil
	case resp.StatusCode == http.StatusBadRequest:
		apiErr := &APIError{}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			return "", fmt.Errorf("error decoding response: %w", err)
		}
		return "", apiErr
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", common.ErrorInternal
	default:
		return "", unexpectedStatus(resp)
	}
}

// Ping checks the server health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/healthz", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func unexpectedStatus(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected response: %s; body: %s", resp.Status, strings.TrimSpace(string(b)))
}
