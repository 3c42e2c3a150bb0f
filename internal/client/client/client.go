package client

import (
	"context"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
)

// AuthClient covers identification, sign-in and the account session.
type AuthClient interface {
	// Identify returns the backend's raw login type for email.
	Identify(ctx context.Context, email string) (string, error)
	SignIn(ctx context.Context, category models.AccountCategory, creds models.Credentials) (*models.SignInResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.SignInResponse, error)
	Status(ctx context.Context) (*models.AuthStatus, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// StoreClient covers the read-only catalog and dashboard endpoints.
type StoreClient interface {
	CrustTypes(ctx context.Context) ([]models.CrustType, error)
	Pizzas(ctx context.Context) ([]models.Pizza, error)
	Cart(ctx context.Context) (*models.Cart, error)
	CheckoutSummary(ctx context.Context) (*models.CheckoutSummary, error)
	Orders(ctx context.Context) ([]models.Order, error)
	Stats(ctx context.Context) (*models.Stats, error)
	Reports(ctx context.Context) ([]models.Report, error)
	RestaurantInfo(ctx context.Context) (*models.RestaurantInfo, error)
	RestaurantHours(ctx context.Context) ([]models.RestaurantHours, error)
}

type ProfileClient interface {
	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (string, error)
}

type PromotionClient interface {
	Promotions(ctx context.Context) ([]models.Promotion, error)
	CreatePromotion(ctx context.Context, p models.PromotionPayload) (*models.APIResult, error)
	UpdatePromotion(ctx context.Context, id int64, p models.PromotionPayload) (*models.APIResult, error)
	DeletePromotion(ctx context.Context, id int64) (*models.APIResult, error)
}

type Client interface {
	AuthClient
	StoreClient
	ProfileClient
	PromotionClient
}
