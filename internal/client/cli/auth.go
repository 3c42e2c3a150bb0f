package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/client/services"
	"github.com/dmitrijs2005/pizzastore/internal/common"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// failed attaches a command-specific fallback to err for display.
func failed(err error, fallback string) error {
	if err == nil {
		return nil
	}
	return &services.UserError{Message: services.DisplayMessage(err, fallback), Err: err}
}

// Login prompts for credentials, identifies the account type and signs in
// against the matching endpoint. On success the landing view is shown:
// the menu for customers, the dashboard for staff.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.setCategory(res.Category)
	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.DisplayName())
	return a.showLanding(ctx, res.Landing)
}

func (a *App) showLanding(ctx context.Context, v models.View) error {
	switch v {
	case models.ViewAdmin:
		if err := a.Stats(ctx); err != nil {
			return err
		}
		return a.Reports(ctx)
	case models.ViewMenu:
		return a.Menu(ctx)
	default:
		return nil
	}
}

// Register prompts for a new customer account and signs it in.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &reg.FirstName},
		{"Last name", &reg.LastName},
		{"Email", &reg.Email},
		{"Phone", &reg.Phone},
		{"Address line 1", &reg.Address1},
		{"Address line 2", &reg.Address2},
		{"City", &reg.City},
		{"State", &reg.State},
		{"Zip", &reg.Zip},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, "Choose a password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	reg.Password, reg.ConfirmPassword = string(password), string(confirm)

	res, err := a.authService.Register(ctx, reg)
	if err != nil {
		return err
	}

	a.setCategory(res.Category)
	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", res.User.DisplayName())
	return a.showLanding(ctx, res.Landing)
}

// Logout ends the session. The local session is gone even if the backend
// could not be told.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return err
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	renderUser(a.out, u)
	return nil
}

// Status shows what the backend thinks of the current session.
func (a *App) Status(ctx context.Context) error {
	st, err := a.authService.Status(ctx)
	if err != nil {
		return failed(err, "Could not reach the server.")
	}
	fmt.Fprintln(a.out, st.Message)
	if st.LoggedIn && st.Email != "" {
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", st.Email, st.Role)
	}
	return nil
}
