package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

// recorder is a tiny backend that remembers every request it saw.
type recorder struct {
	mu       sync.Mutex
	requests []recorded
	handler  http.HandlerFunc
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	b, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	r.requests = append(r.requests, recorded{
		Method:    req.Method,
		Path:      req.URL.Path,
		Body:      string(b),
		RequestID: req.Header.Get(common.RequestIDHeaderName),
	})
	r.mu.Unlock()
	r.handler(w, req)
}

func (r *recorder) calls() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.requests...)
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*HTTPClient, *recorder) {
	t.Helper()
	rec := &recorder{handler: h}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, WithTimeout(2*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, rec
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com")
	require.Error(t, err)
	_, err = NewHTTPClient("http://")
	require.Error(t, err)
}

func TestIdentify(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"loginType": "CUSTOMER"})
	})

	got, err := c.Identify(context.Background(), "jane@customer.example")
	require.NoError(t, err)
	assert.Equal(t, "CUSTOMER", got)

	calls := rec.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/api/auth/identify", calls[0].Path)
	assert.JSONEq(t, `{"email":"jane@customer.example"}`, calls[0].Body)
	assert.NotEmpty(t, calls[0].RequestID)
}

func TestSignIn_RoutesByCategory(t *testing.T) {
	tests := []struct {
		category models.AccountCategory
		path     string
	}{
		{models.CategoryCustomer, "/api/auth/signIn/customer"},
		{models.CategoryWorker, "/api/auth/signIn/employee"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{
					"message": "Login successful",
					"user":    map[string]any{"id": 7, "email": "jane@customer.example", "firstName": "Jane", "lastName": "Doe"},
				})
			})

			resp, err := c.SignIn(context.Background(), tt.category, models.Credentials{Email: "jane@customer.example", Password: "pw"})
			require.NoError(t, err)
			assert.Equal(t, int64(7), resp.User.ID)

			calls := rec.calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.path, calls[0].Path)
			assert.JSONEq(t, `{"username":"jane@customer.example","password":"pw"}`, calls[0].Body)
		})
	}
}

func TestSignIn_UnknownCategoryIssuesNoRequest(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.SignIn(context.Background(), "UNKNOWN", models.Credentials{})
	require.ErrorIs(t, err, ErrUnknownCategory)
	assert.Empty(t, rec.calls())
}

func TestSignIn_MissingUser(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
	})
	_, err := c.SignIn(context.Background(), models.CategoryCustomer, models.Credentials{})
	require.Error(t, err)
}

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		sentinel error
	}{
		{"message field", 401, `{"message":"Invalid credentials"}`, "Invalid credentials", ErrUnauthorized},
		{"error field", 400, `{"error":"A valid email address is required."}`, "A valid email address is required.", nil},
		{"message wins", 409, `{"message":"m","error":"e"}`, "m", ErrConflict},
		{"plain text", 404, "User not found", "User not found", ErrNotFound},
		{"html", 500, "<html>boom</html>", "", nil},
		{"empty", 403, "", "", ErrUnauthorized},
		{"json without fields", 500, `{"status":500}`, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Status(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, WithTimeout(time.Second))
	require.NoError(t, err)
	err = c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSessionCookieIsReplayed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/signIn/customer":
			http.SetCookie(w, &http.Cookie{Name: common.SessionCookieName, Value: "abc", Path: "/"})
			writeJSON(w, http.StatusOK, map[string]any{"message": "ok", "user": map[string]any{"id": 1}})
		case "/api/user":
			ck, err := r.Cookie(common.SessionCookieName)
			if err != nil || ck.Value != "abc" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"id": 1, "email": "a@b.c"})
		}
	})

	ctx := context.Background()
	_, err := c.Profile(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.SignIn(ctx, models.CategoryCustomer, models.Credentials{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)

	p, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", p.Email)
}

func TestCatalogDecoding(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/cart":
			writeJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{{"name": "Margherita", "quantity": 2, "price": 12.99}},
				"total": 25.98,
			})
		case "/api/restaurant-hours":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "restaurantId": 1, "displayText": "Mon", "sortOrder": 1}})
		case "/api/reports":
			_, _ = io.WriteString(w, `[{"name":"Total Orders","value":1248}]`)
		}
	})
	ctx := context.Background()

	cart, err := c.Cart(ctx)
	require.NoError(t, err)
	want := &models.Cart{Items: []models.CartItem{{Name: "Margherita", Quantity: 2, Price: 12.99}}, Total: 25.98}
	if diff := cmp.Diff(want, cart); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}

	hours, err := c.RestaurantHours(ctx)
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, "Mon", hours[0].DisplayText)

	reports, err := c.Reports(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ReportValue("1248"), reports[0].Value)
}

func TestPromotionMutations(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "ok"})
	})
	ctx := context.Background()
	p := models.PromotionPayload{Code: "SAVE5", DiscountValue: 5, ExpDt: "2026-12-31", MinOrderAmt: 20}

	_, err := c.CreatePromotion(ctx, p)
	require.NoError(t, err)
	_, err = c.UpdatePromotion(ctx, 3, p)
	require.NoError(t, err)
	res, err := c.DeletePromotion(ctx, 3)
	require.NoError(t, err)
	assert.True(t, res.Success)

	calls := rec.calls()
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"POST /api/promotions", "PUT /api/promotions/3", "DELETE /api/promotions/3"},
		[]string{calls[0].Method + " " + calls[0].Path, calls[1].Method + " " + calls[1].Path, calls[2].Method + " " + calls[2].Path})
	assert.Contains(t, calls[0].Body, `"discount_value":5`)
	assert.Empty(t, calls[2].Body)
}

func TestContextCancellation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Ping(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "server responded 401: nope", (&APIError{StatusCode: 401, Message: "nope"}).Error())
	assert.Equal(t, "server responded 500 Internal Server Error", (&APIError{StatusCode: 500}).Error())
}
