// Package services contains application services for the pizza store
// client: identify-then-sign-in, account lifecycle, the catalog, the profile
// and promotions administration.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/client/session"
	"github.com/dmitrijs2005/pizzastore/internal/logging"
	"github.com/dmitrijs2005/pizzastore/internal/validation"
	"golang.org/x/sync/semaphore"
)

const (
	LoginFailedMessage        = "Login failed"
	ManagerLoginFailedMessage = "Manager login failed"
	RegisterFailedMessage     = "Registration failed."
	LogoutFailedMessage       = "Logout failed."
)

var loginMessages = validation.Messages{
	"required":       "Please enter both email and password.",
	"username.email": "Please enter a valid email address.",
}

var identifyMessages = validation.Messages{
	"email.required": "Please enter your email address.",
	"email.email":    "Please enter a valid email address.",
}

var registerMessages = validation.Messages{
	"required":                "Please fill in all required fields.",
	"email.email":             "Please enter a valid email address.",
	"password.min":            "Password must be at least 3 characters.",
	"confirmPassword.eqfield": "Passwords do not match.",
}

var signInFallback = map[models.AccountCategory]string{
	models.CategoryCustomer: LoginFailedMessage,
	models.CategoryWorker:   ManagerLoginFailedMessage,
}

// LoginResult is what a successful sign-in or registration leads to.
type LoginResult struct {
	User     models.CurrentUser
	Category models.AccountCategory
	Landing  models.View
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Identify: validate an email and ask the backend which account type owns it.
//   - SignIn: authenticate against the endpoint of the given category.
//   - Login: Identify then SignIn; the session is written once, on success only.
//   - Register: create a customer account and sign it in.
//   - Status/Ping: query the backend session and liveness.
//   - Logout: end the backend session and clear the local one.
//
// All methods honor context cancellation.
type AuthService interface {
	Identify(ctx context.Context, email string) (models.AccountCategory, error)
	SignIn(ctx context.Context, creds models.Credentials, category models.AccountCategory) (*LoginResult, error)
	Login(ctx context.Context, creds models.Credentials) (*LoginResult, error)
	Register(ctx context.Context, reg models.Registration) (*LoginResult, error)
	Status(ctx context.Context) (*models.AuthStatus, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  client.AuthClient
	session *session.Store
	log     logging.Logger
	// one submission at a time; a second one fails fast
	submit *semaphore.Weighted
}

// NewAuthService binds the service to an API client and the session store it writes.
func NewAuthService(c client.AuthClient, s *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNop()
	}
	return &authService{client: c, session: s, log: log, submit: semaphore.NewWeighted(1)}
}

// Identify never calls the backend for an address that fails validation.
func (a *authService) Identify(ctx context.Context, email string) (models.AccountCategory, error) {
	email = strings.TrimSpace(email)
	if err := validation.Var("email", email, "required,email", identifyMessages); err != nil {
		return "", err
	}
	return a.identify(ctx, email)
}

func (a *authService) identify(ctx context.Context, email string) (models.AccountCategory, error) {
	raw, err := a.client.Identify(ctx, email)
	if err != nil {
		a.log.Warn(ctx, "identify failed", "error", err)
		return "", &IdentificationError{Err: err}
	}
	category, err := models.ParseAccountCategory(raw)
	if err != nil {
		a.log.Warn(ctx, "identify returned unusable login type", "login_type", raw)
		return "", &IdentificationError{Err: err}
	}
	return category, nil
}

func (a *authService) SignIn(ctx context.Context, creds models.Credentials, category models.AccountCategory) (*LoginResult, error) {
	if _, ok := signInFallback[category]; !ok {
		return nil, fmt.Errorf("%w: %q", client.ErrUnknownCategory, category)
	}
	if !a.submit.TryAcquire(1) {
		return nil, ErrSubmissionInProgress
	}
	defer a.submit.Release(1)

	return a.signIn(ctx, creds, category)
}

func (a *authService) signIn(ctx context.Context, creds models.Credentials, category models.AccountCategory) (*LoginResult, error) {
	fallback, ok := signInFallback[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", client.ErrUnknownCategory, category)
	}

	resp, err := a.client.SignIn(ctx, category, creds)
	if err != nil {
		a.log.Info(ctx, "sign-in rejected", "category", category, "error", err)
		return nil, withFallback(err, fallback)
	}
	if resp.User == nil {
		return nil, &UserError{Message: fallback}
	}

	a.session.Set(resp.User)
	a.log.Info(ctx, "sign-in accepted", "user_id", resp.User.ID, "category", category)

	return &LoginResult{User: *resp.User, Category: category, Landing: models.LandingView(category)}, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*LoginResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validation.Struct(creds, loginMessages); err != nil {
		return nil, err
	}
	if !a.submit.TryAcquire(1) {
		return nil, ErrSubmissionInProgress
	}
	defer a.submit.Release(1)

	category, err := a.identify(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	return a.signIn(ctx, creds, category)
}

func (a *authService) Register(ctx context.Context, reg models.Registration) (*LoginResult, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	if err := validation.Struct(reg, registerMessages); err != nil {
		return nil, err
	}
	if !a.submit.TryAcquire(1) {
		return nil, ErrSubmissionInProgress
	}
	defer a.submit.Release(1)

	resp, err := a.client.Register(ctx, reg)
	if err != nil {
		return nil, withFallback(err, RegisterFailedMessage)
	}
	if resp.User == nil {
		return nil, &UserError{Message: RegisterFailedMessage}
	}

	a.session.Set(resp.User)
	a.log.Info(ctx, "account registered", "user_id", resp.User.ID)

	return &LoginResult{User: *resp.User, Category: models.CategoryCustomer, Landing: models.ViewMenu}, nil
}

func (a *authService) Status(ctx context.Context) (*models.AuthStatus, error) {
	return a.client.Status(ctx)
}

// Logout clears the local session even when the backend call fails.
func (a *authService) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	a.session.Clear()
	if err != nil {
		a.log.Warn(ctx, "logout call failed", "error", err)
		return withFallback(err, LogoutFailedMessage)
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
