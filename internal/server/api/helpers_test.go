package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/server/catalog"
	"github.com/dmitrijs2005/pizzastore/internal/server/identity"
	"github.com/dmitrijs2005/pizzastore/internal/server/promotions"
	"github.com/dmitrijs2005/pizzastore/internal/server/sessions"
	"github.com/dmitrijs2005/pizzastore/internal/server/users"
)

type testEnv struct {
	e        *echo.Echo
	sessions *sessions.Store
	catalog  *catalog.Catalog
	promos   *promotions.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	us := users.NewService(users.NewMemoryRepository(), users.WithHashCost(bcrypt.MinCost))
	_, err := us.AddCustomer(ctx, users.Customer{
		ID:        7,
		Email:     "jane@customer.example",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0107",
		Address:   users.Address{Address1: "456 Oak Avenue", City: "Springfield", State: "IL", Zip: "62702"},
	}, "pizza123")
	require.NoError(t, err)
	_, err = us.AddEmployee(ctx, users.Employee{
		ID:        1,
		Email:     "manager@pizzastore.com",
		FirstName: "Mia",
		LastName:  "Rossi",
		Role:      "Manager",
	}, "admin123")
	require.NoError(t, err)

	env := &testEnv{
		sessions: sessions.NewStore(0),
		catalog:  catalog.NewDemo(),
		promos:   promotions.NewService(promotions.NewMemoryRepository()),
	}
	env.e = NewRouter(Deps{
		Resolver:   identity.NewResolver("pizzastore.com"),
		Users:      us,
		Sessions:   env.sessions,
		Promotions: env.promos,
		Catalog:    env.catalog,
	})
	return env
}

// do sends body (nil, a string or any value to be JSON encoded) with the
// given cookies.
func (env *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var payload string
	switch b := body.(type) {
	case nil:
	case string:
		payload = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		payload = string(raw)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) signIn(t *testing.T, path, email, password string) *http.Cookie {
	t.Helper()
	rec := env.do(t, http.MethodPost, path, map[string]string{"username": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", common.SessionCookieName)
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
