package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/config"
	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/pkg/utils"

	"golang.org/x/sync/singleflight"
)

const sessionCookie = "carrier_session"

var (
	// ErrUnavailable marks transient carrier failures (5xx, timeouts); callers
	// may retry later, the client already retried with backoff.
	ErrUnavailable = errors.New("carrier unavailable")
	// ErrRejected marks non-transient carrier refusals; retrying cannot help.
	ErrRejected = errors.New("carrier rejected request")

	errSessionExpired = errors.New("carrier session expired")
)

type session struct {
	token    string
	issuedAt time.Time
}

// Client talks to the carrier API through a shared authenticated session.
// The session token is rebuilt on demand: lazily on first use, after the
// configured TTL, and transparently after a 401, in which case the original
// call is replayed exactly once. Concurrent rebuilds collapse into a single
// login via singleflight.
type Client struct {
	logger *slog.Logger
	http   *http.Client
	cfg    config.Carrier

	mu      sync.Mutex
	session *session
	sf      singleflight.Group
}

func New(logger *slog.Logger, cfg config.Carrier) *Client {
	return &Client{
		logger: logger.With(slog.String("component", "carrier")),
		http:   &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

// ShipmentRequest carries the fields the carrier needs to create a parcel.
type ShipmentRequest struct {
	Reference     string `json:"reference"`
	Recipient     string `json:"recipient"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Sector        string `json:"sector"`
	DeclaredValue string `json:"declared_value"`
	Fragile       bool   `json:"fragile"`
	AllowOpening  bool   `json:"allow_opening"`
	PickupID      string `json:"pickup_id"`
}

type shipmentResponse struct {
	ShipmentID int64 `json:"shipment_id"`
}

// CreateShipment submits a shipment and returns the carrier tracking id.
func (c *Client) CreateShipment(ctx context.Context, req ShipmentRequest) (int64, error) {
	if req.PickupID == "" {
		req.PickupID = c.cfg.PickupID
	}

	var resp shipmentResponse
	if err := c.call(ctx, http.MethodPost, "/api/shipments", req, &resp); err != nil {
		return 0, fmt.Errorf("failed to create shipment: %w", err)
	}
	return resp.ShipmentID, nil
}

type cityDTO struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Sectors []string `json:"sectors"`
}

// ListCities fetches the full serviceable geography.
func (c *Client) ListCities(ctx context.Context) ([]entities.CityReference, error) {
	var dtos []cityDTO
	if err := c.call(ctx, http.MethodGet, "/api/cities", nil, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	cities := make([]entities.CityReference, 0, len(dtos))
	for _, d := range dtos {
		cities = append(cities, entities.CityReference{ID: d.ID, Name: d.Name, Sectors: d.Sectors})
	}
	return cities, nil
}

// call performs an authenticated request. A session-expired response triggers
// one re-login and one replay; anything beyond that surfaces to the caller.
func (c *Client) call(ctx context.Context, method, path string, payload, out any) error {
	err := c.attempt(ctx, method, path, payload, out)
	if errors.Is(err, errSessionExpired) {
		c.logger.Debug("session expired, re-authenticating", slog.String("path", path))
		err = c.attempt(ctx, method, path, payload, out)
	}
	if errors.Is(err, errSessionExpired) {
		return fmt.Errorf("%w: session rejected after re-login", ErrRejected)
	}
	return err
}

// attempt runs the request with bounded backoff on transient failures only.
func (c *Client) attempt(ctx context.Context, method, path string, payload, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	cfg := utils.RetryConfig{
		MaxAttempts:  c.cfg.MaxRetries,
		InitialDelay: c.cfg.RetryBaseDelay,
	}
	err = utils.Retry(cfg, func() error {
		return c.doJSON(ctx, method, path, token, payload, out)
	}, errSessionExpired, ErrRejected)

	if errors.Is(err, errSessionExpired) {
		c.invalidate(token)
	}
	return err
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("unavailable").Inc()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		requestsTotal.WithLabelValues("expired").Inc()
		return errSessionExpired
	case resp.StatusCode >= 500:
		requestsTotal.WithLabelValues("unavailable").Inc()
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		requestsTotal.WithLabelValues("rejected").Inc()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, bytes.TrimSpace(msg))
	}

	requestsTotal.WithLabelValues("ok").Inc()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// token returns the current session token, logging in when there is none or
// the TTL has elapsed.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	if s := c.session; s != nil && time.Since(s.issuedAt) < c.cfg.SessionTTL {
		token := s.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	v, err, _ := c.sf.Do("login", func() (any, error) {
		token, err := c.login(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.session = &session{token: token, issuedAt: time.Now()}
		c.mu.Unlock()
		loginsTotal.Inc()
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// invalidate drops the session, but only if it still is the one that failed;
// a token refreshed by another goroutine in the meantime is left alone.
func (c *Client) invalidate(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && c.session.token == token {
		c.session = nil
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *Client) login(ctx context.Context) (string, error) {
	data, err := json.Marshal(loginRequest{Username: c.cfg.Username, Password: c.cfg.Password})
	if err != nil {
		return "", fmt.Errorf("failed to encode credentials: %w", err)
	}

	var token string
	cfg := utils.RetryConfig{
		MaxAttempts:  c.cfg.MaxRetries,
		InitialDelay: c.cfg.RetryBaseDelay,
	}
	err = utils.Retry(cfg, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/auth/login", bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to build login request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("%w: login status %d", ErrUnavailable, resp.StatusCode)
		case resp.StatusCode >= 400:
			return fmt.Errorf("%w: invalid carrier credentials (status %d)", ErrRejected, resp.StatusCode)
		}

		for _, ck := range resp.Cookies() {
			if ck.Name == sessionCookie {
				token = ck.Value
				return nil
			}
		}

		var body loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Token == "" {
			return fmt.Errorf("%w: login response carried no session token", ErrRejected)
		}
		token = body.Token
		return nil
	}, ErrRejected)
	if err != nil {
		return "", fmt.Errorf("failed to authenticate with carrier: %w", err)
	}

	return token, nil
}
