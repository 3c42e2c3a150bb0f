package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/netx"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

var signInPaths = map[models.AccountCategory]string{
	models.CategoryCustomer: "/api/auth/signIn/customer",
	models.CategoryWorker:   "/api/auth/signIn/employee",
}

type HTTPClient struct {
	base *url.URL
	http *http.Client
	log  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTransport replaces the round tripper, e.g. with an instrumented one.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		if rt != nil {
			c.http.Transport = rt
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// NewHTTPClient returns a client for the backend at serverURL.
func NewHTTPClient(serverURL string, opts ...Option) (*HTTPClient, error) {
	base, err := netx.ParseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	jar, err := netx.NewCookieJar()
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &HTTPClient{
		base: base,
		http: &http.Client{Jar: jar, Timeout: defaultTimeout, Transport: http.DefaultTransport},
		log:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, netx.JoinPath(c.base, path), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) Identify(ctx context.Context, email string) (string, error) {
	var resp struct {
		LoginType string `json:"loginType"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/identify", map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	return resp.LoginType, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, category models.AccountCategory, creds models.Credentials) (*models.SignInResponse, error) {
	path, ok := signInPaths[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	var resp models.SignInResponse
	if err := c.do(ctx, http.MethodPost, path, creds, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("sign-in response has no user")
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.SignInResponse, error) {
	var resp models.SignInResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register/new/customer", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Status(ctx context.Context) (*models.AuthStatus, error) {
	var st models.AuthStatus
	if err := c.do(ctx, http.MethodGet, "/api/auth/status", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Ping succeeds when the status endpoint answers with any 2xx.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/status", nil, nil)
}

func (c *HTTPClient) CrustTypes(ctx context.Context) ([]models.CrustType, error) {
	var out []models.CrustType
	if err := c.do(ctx, http.MethodGet, "/api/crust-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Pizzas(ctx context.Context) ([]models.Pizza, error) {
	var out []models.Pizza
	if err := c.do(ctx, http.MethodGet, "/api/pizzas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Cart(ctx context.Context) (*models.Cart, error) {
	var out models.Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CheckoutSummary(ctx context.Context) (*models.CheckoutSummary, error) {
	var out models.CheckoutSummary
	if err := c.do(ctx, http.MethodGet, "/api/checkout/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	var out models.Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Reports(ctx context.Context) ([]models.Report, error) {
	var out []models.Report
	if err := c.do(ctx, http.MethodGet, "/api/reports", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) RestaurantInfo(ctx context.Context) (*models.RestaurantInfo, error) {
	var out models.RestaurantInfo
	if err := c.do(ctx, http.MethodGet, "/api/restaurant-info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RestaurantHours(ctx context.Context) ([]models.RestaurantHours, error) {
	var out []models.RestaurantHours
	if err := c.do(ctx, http.MethodGet, "/api/restaurant-hours", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/user", upd, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) Promotions(ctx context.Context) ([]models.Promotion, error) {
	var out []models.Promotion
	if err := c.do(ctx, http.MethodGet, "/api/promotions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePromotion(ctx context.Context, p models.PromotionPayload) (*models.APIResult, error) {
	return c.promotionResult(ctx, http.MethodPost, "/api/promotions", p)
}

func (c *HTTPClient) UpdatePromotion(ctx context.Context, id int64, p models.PromotionPayload) (*models.APIResult, error) {
	return c.promotionResult(ctx, http.MethodPut, "/api/promotions/"+strconv.FormatInt(id, 10), p)
}

func (c *HTTPClient) DeletePromotion(ctx context.Context, id int64) (*models.APIResult, error) {
	return c.promotionResult(ctx, http.MethodDelete, "/api/promotions/"+strconv.FormatInt(id, 10), nil)
}

func (c *HTTPClient) promotionResult(ctx context.Context, method, path string, in any) (*models.APIResult, error) {
	var out models.APIResult
	if err := c.do(ctx, method, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
