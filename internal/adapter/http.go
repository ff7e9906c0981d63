package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mikas-m/wortschatz/internal/utils"
	"github.com/mikas-m/wortschatz/models"
)

// HTTPClientConfig holds the knobs for the HTTP server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// ListVerbs implements [ServerAdapter].
func (h *httpServerAdapter) ListVerbs(ctx context.Context) ([]models.IrregularVerb, error) {
	resp, err := h.authedRequest(ctx).Get("/api/verbs")
	if err != nil {
		return nil, fmt.Errorf("list verbs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var verbs []models.IrregularVerb
	if err = json.Unmarshal(resp.Body(), &verbs); err != nil {
		return nil, fmt.Errorf("decode list verbs response: %w", err)
	}

	return verbs, nil
}

// ImportVerbs implements [ServerAdapter].
func (h *httpServerAdapter) ImportVerbs(ctx context.Context, verbs []models.IrregularVerb) (int, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(verbs).
		Post("/api/verbs/import")
	if err != nil {
		return 0, fmt.Errorf("import verbs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var result models.VerbImportResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return 0, fmt.Errorf("decode import verbs response: %w", err)
	}

	return result.Imported, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
