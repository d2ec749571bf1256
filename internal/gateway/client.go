package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fincaudita/agroconsole/internal/config"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/utils"
	"github.com/fincaudita/agroconsole/models"
)

// Client owns the shared resty client and the bearer token of the active
// session. All [Resource] gateways are created from one Client.
type Client struct {
	http   *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewClient constructs the shared HTTP client for apiCfg.Address with the
// configured request timeout. Returns an error if the address is empty or
// cannot be parsed as a URL.
func NewClient(apiCfg config.ClientAPI, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(apiCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	timeout := apiCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: cli, logger: log}, nil
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

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login POSTs the credentials to POST /login. On success the bearer token is
// extracted from the Authorization response header, stored via SetToken, and
// a session carrying the user id from the token subject is returned.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse user id: %w", err)
	}

	// The body carries the profile fields; older servers send an empty body.
	var profile struct {
		ProfileImagePath string `json:"profileImageUrl"`
	}
	if body := resp.Body(); len(body) > 0 {
		_ = json.Unmarshal(body, &profile)
	}

	c.SetToken(token)
	return models.Session{
		UserID:           userID,
		Username:         creds.Username,
		Token:            token,
		ProfileImagePath: profile.ProfileImagePath,
		At:               time.Now().UTC(),
	}, nil
}

// UpdateUser PUTs a password/profile update to PUT /api/user/{id}. Requires
// an active session token.
func (c *Client) UpdateUser(ctx context.Context, update models.PasswordUpdate) error {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/user/" + strconv.FormatInt(update.UserID, 10))
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch {
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrServerError, code)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
