package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/client/session"
	"github.com/dmitrijs2005/pizzastore/internal/server"
	"github.com/dmitrijs2005/pizzastore/internal/server/config"
	"github.com/dmitrijs2005/pizzastore/internal/server/users"
)

// backend runs the development backend behind an httptest server and counts
// the requests it receives. override, when set, answers instead of the
// backend for the paths it handles.
type backend struct {
	srv      *httptest.Server
	requests atomic.Int64
}

func newBackend(t *testing.T, override map[string]http.HandlerFunc) *backend {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	app, err := server.NewApp(cfg, nil, users.WithHashCost(bcrypt.MinCost))
	require.NoError(t, err)

	b := &backend{}
	h := app.Handler()
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		if fn, ok := override[r.URL.Path]; ok {
			fn(w, r)
			return
		}
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) client(t *testing.T) *client.HTTPClient {
	t.Helper()
	c, err := client.NewHTTPClient(b.srv.URL, client.WithTimeout(5*time.Second))
	require.NoError(t, err)
	return c
}

func TestE2E_CustomerLogin(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, nil)
	c := b.client(t)

	store := session.NewStore()
	var writes []*models.CurrentUser
	cancel := store.Observe(func(u *models.CurrentUser) { writes = append(writes, u) })
	defer cancel()

	auth := NewAuthService(c, store, nil)

	category, err := auth.Identify(ctx, "jane@customer.example")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryCustomer, category)

	res, err := auth.Login(ctx, models.Credentials{Email: "jane@customer.example", Password: "pizza123"})
	require.NoError(t, err)
	assert.Equal(t, models.ViewMenu, res.Landing)
	assert.Equal(t, models.CategoryCustomer, res.Category)

	cur := store.Current()
	require.NotNil(t, cur)
	assert.Equal(t, int64(7), cur.ID)
	assert.Equal(t, "jane@customer.example", cur.Email)
	assert.Equal(t, "Jane Doe", cur.DisplayName())

	// replayed nil, then exactly one write for the sign-in
	require.Len(t, writes, 2)
	assert.Nil(t, writes[0])
	assert.Equal(t, int64(7), writes[1].ID)

	st, err := auth.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.LoggedIn)
	assert.Equal(t, "Customer", st.Role)

	prof, err := NewProfileService(c).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", prof.Address.City)

	require.NoError(t, auth.Logout(ctx))
	assert.Nil(t, store.Current())

	st, err = auth.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.LoggedIn)
}

func TestE2E_WorkerLandsOnAdmin(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, nil)
	c := b.client(t)
	store := session.NewStore()

	res, err := NewAuthService(c, store, nil).Login(ctx, models.Credentials{Email: "manager@pizzastore.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryWorker, res.Category)
	assert.Equal(t, models.ViewAdmin, res.Landing)
	assert.Equal(t, "Manager", store.Current().Role)

	promos := NewPromotionService(c, nil)
	msg, err := promos.Save(ctx, models.PromotionInput{
		Code:             "E2E20",
		DiscountValue:    "20",
		PromotionDesc:    "Twenty off",
		PromotionSummary: "Big deal",
		ExpDt:            "2026-11-30",
		MinOrderAmt:      "40",
	})
	require.NoError(t, err)
	assert.Equal(t, "Promotion added successfully.", msg)

	list, err := promos.List(ctx)
	require.NoError(t, err)
	var added models.Promotion
	for _, p := range list {
		if p.Code == "E2E20" {
			added = p
		}
	}
	require.NotZero(t, added.PromotionID)
	assert.Equal(t, models.Date("2026-11-30"), added.ExpDt)

	in := models.InputFrom(added)
	in.DiscountValue = "25"
	msg, err = promos.Save(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Promotion updated successfully.", msg)

	msg, err = promos.Delete(ctx, added.PromotionID)
	require.NoError(t, err)
	assert.Equal(t, "Promotion deleted successfully.", msg)

	_, err = promos.Delete(ctx, added.PromotionID)
	require.Error(t, err)
	assert.Equal(t, "Delete failed. Promotion not found.", DisplayMessage(err, ""))

	stats, err := NewStoreService(c, nil).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 127, stats.OrdersToday)
}

func TestE2E_MalformedEmailSendsNothing(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, nil)
	store := session.NewStore()
	auth := NewAuthService(b.client(t), store, nil)

	_, err := auth.Identify(ctx, "jane.customer.example")
	require.Error(t, err)
	_, err = auth.Login(ctx, models.Credentials{Email: "jane.customer.example", Password: "pizza123"})
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email address.", DisplayMessage(err, LoginFailedMessage))

	assert.Equal(t, int64(0), b.requests.Load())
	assert.Nil(t, store.Current())
}

func TestE2E_WrongPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("backend message", func(t *testing.T) {
		b := newBackend(t, map[string]http.HandlerFunc{
			"/api/auth/signIn/customer": func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
			},
		})
		store := session.NewStore()

		_, err := NewAuthService(b.client(t), store, nil).Login(ctx, models.Credentials{Email: "jane@customer.example", Password: "wrong"})
		require.Error(t, err)
		assert.ErrorIs(t, err, client.ErrUnauthorized)
		assert.Equal(t, "Invalid credentials", DisplayMessage(err, LoginFailedMessage))
		assert.Nil(t, store.Current())
		assert.Equal(t, int64(2), b.requests.Load())
	})

	t.Run("development backend", func(t *testing.T) {
		b := newBackend(t, nil)
		store := session.NewStore()

		_, err := NewAuthService(b.client(t), store, nil).Login(ctx, models.Credentials{Email: "jane@customer.example", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, "Invalid username or password.", DisplayMessage(err, LoginFailedMessage))
		assert.Nil(t, store.Current())
	})
}

func TestE2E_RegisterThenProfile(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, nil)
	c := b.client(t)
	store := session.NewStore()
	auth := NewAuthService(c, store, nil)

	reg := models.Registration{
		FirstName:       "Sam",
		LastName:        "Lee",
		Email:           "sam@customer.example",
		Password:        "abc",
		ConfirmPassword: "abc",
		City:            "Springfield",
	}
	res, err := auth.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, models.ViewMenu, res.Landing)
	assert.Equal(t, "sam@customer.example", store.Current().Email)

	profiles := NewProfileService(c)
	upd := models.ProfileUpdate{FirstName: "Samuel", LastName: "Lee", City: "Shelbyville"}
	msg, err := profiles.Update(ctx, upd)
	require.NoError(t, err)
	assert.Equal(t, "Profile updated successfully", msg)

	prof, err := profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Samuel", prof.FirstName)
	assert.Equal(t, "Shelbyville", prof.Address.City)

	_, err = auth.Register(ctx, reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrConflict)
	assert.Equal(t, "An account with that email already exists.", DisplayMessage(err, RegisterFailedMessage))
}

func TestE2E_CustomerCannotEditPromotions(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, nil)
	c := b.client(t)

	_, err := NewAuthService(c, session.NewStore(), nil).Login(ctx, models.Credentials{Email: "jane@customer.example", Password: "pizza123"})
	require.NoError(t, err)

	_, err = NewPromotionService(c, nil).Delete(ctx, 1)
	require.Error(t, err)
	assert.Equal(t, "Staff access required.", DisplayMessage(err, ""))
}

func TestE2E_StoreScreens(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, nil)
	s := NewStoreService(b.client(t), nil)

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40.97, cart.Total)

	sum, err := s.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 44.25, sum.Total)

	reports, err := s.Reports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 5)
	assert.Equal(t, models.ReportValue("Margherita"), reports[3].Value)
	assert.Equal(t, models.ReportValue("30.79"), reports[2].Value)

	details, err := s.RestaurantDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Store", details.Name)
	assert.Len(t, details.Hours, 3)

	assert.Equal(t, "Pizza Store", s.Title(ctx))
}
