package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/client/models"
)

// fakeClient implements client.Client and records every call it receives.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	IdentifyRet string
	IdentifyErr error
	// IdentifyBlock, when set, is waited on inside Identify.
	IdentifyBlock chan struct{}

	SignInRet *models.SignInResponse
	SignInErr error

	RegisterRet *models.SignInResponse
	RegisterErr error

	StatusRet *models.AuthStatus
	StatusErr error
	LogoutErr error
	PingErr   error
	CloseErr  error

	Crusts      []models.CrustType
	PizzasRet   []models.Pizza
	CartRet     *models.Cart
	CheckoutRet *models.CheckoutSummary
	OrdersRet   []models.Order
	StatsRet    *models.Stats
	ReportsRet  []models.Report
	StoreErr    error

	InfoRet  *models.RestaurantInfo
	InfoErr  error
	HoursRet []models.RestaurantHours
	HoursErr error

	ProfileRet   *models.Profile
	ProfileErr   error
	UpdateMsg    string
	UpdateErr    error
	LastUpdate   models.ProfileUpdate
	LastSignIn   models.Credentials
	LastCategory models.AccountCategory

	PromotionsRet []models.Promotion
	PromotionsErr error
	MutationRet   *models.APIResult
	MutationErr   error
	LastPayload   models.PromotionPayload
	LastPromoID   int64
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Identify(ctx context.Context, email string) (string, error) {
	f.record("identify")
	if f.IdentifyBlock != nil {
		<-f.IdentifyBlock
	}
	return f.IdentifyRet, f.IdentifyErr
}

func (f *fakeClient) SignIn(ctx context.Context, category models.AccountCategory, creds models.Credentials) (*models.SignInResponse, error) {
	f.record("signin:" + string(category))
	f.LastSignIn = creds
	f.LastCategory = category
	return f.SignInRet, f.SignInErr
}

func (f *fakeClient) Register(ctx context.Context, reg models.Registration) (*models.SignInResponse, error) {
	f.record("register")
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Status(ctx context.Context) (*models.AuthStatus, error) {
	f.record("status")
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("logout")
	return f.LogoutErr
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.record("ping")
	return f.PingErr
}

func (f *fakeClient) Close() error {
	f.record("close")
	return f.CloseErr
}

func (f *fakeClient) CrustTypes(ctx context.Context) ([]models.CrustType, error) {
	f.record("crusts")
	return f.Crusts, f.StoreErr
}

func (f *fakeClient) Pizzas(ctx context.Context) ([]models.Pizza, error) {
	f.record("pizzas")
	return f.PizzasRet, f.StoreErr
}

func (f *fakeClient) Cart(ctx context.Context) (*models.Cart, error) {
	f.record("cart")
	return f.CartRet, f.StoreErr
}

func (f *fakeClient) CheckoutSummary(ctx context.Context) (*models.CheckoutSummary, error) {
	f.record("checkout")
	return f.CheckoutRet, f.StoreErr
}

func (f *fakeClient) Orders(ctx context.Context) ([]models.Order, error) {
	f.record("orders")
	return f.OrdersRet, f.StoreErr
}

func (f *fakeClient) Stats(ctx context.Context) (*models.Stats, error) {
	f.record("stats")
	return f.StatsRet, f.StoreErr
}

func (f *fakeClient) Reports(ctx context.Context) ([]models.Report, error) {
	f.record("reports")
	return f.ReportsRet, f.StoreErr
}

func (f *fakeClient) RestaurantInfo(ctx context.Context) (*models.RestaurantInfo, error) {
	f.record("info")
	return f.InfoRet, f.InfoErr
}

func (f *fakeClient) RestaurantHours(ctx context.Context) ([]models.RestaurantHours, error) {
	f.record("hours")
	return f.HoursRet, f.HoursErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.Profile, error) {
	f.record("profile")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (string, error) {
	f.record("updateprofile")
	f.LastUpdate = upd
	return f.UpdateMsg, f.UpdateErr
}

func (f *fakeClient) Promotions(ctx context.Context) ([]models.Promotion, error) {
	f.record("promotions")
	return f.PromotionsRet, f.PromotionsErr
}

func (f *fakeClient) CreatePromotion(ctx context.Context, p models.PromotionPayload) (*models.APIResult, error) {
	f.record("createpromo")
	f.LastPayload = p
	return f.MutationRet, f.MutationErr
}

func (f *fakeClient) UpdatePromotion(ctx context.Context, id int64, p models.PromotionPayload) (*models.APIResult, error) {
	f.record("updatepromo")
	f.LastPayload = p
	f.LastPromoID = id
	return f.MutationRet, f.MutationErr
}

func (f *fakeClient) DeletePromotion(ctx context.Context, id int64) (*models.APIResult, error) {
	f.record("deletepromo")
	f.LastPromoID = id
	return f.MutationRet, f.MutationErr
}
