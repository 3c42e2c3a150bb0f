// Package models defines the data exchanged with the pizza store backend.
package models

import (
	"fmt"
	"strings"
)

// AccountCategory decides which sign-in endpoint handles an account.
type AccountCategory string

const (
	CategoryWorker   AccountCategory = "WORKER"
	CategoryCustomer AccountCategory = "CUSTOMER"
)

// ParseAccountCategory accepts exactly WORKER or CUSTOMER.
func ParseAccountCategory(s string) (AccountCategory, error) {
	switch c := AccountCategory(strings.TrimSpace(s)); c {
	case CategoryWorker, CategoryCustomer:
		return c, nil
	default:
		return "", fmt.Errorf("unknown account category %q", s)
	}
}

// Credentials are held only for the duration of one submission.
type Credentials struct {
	Email    string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CurrentUser is the signed-in account as reported by the backend.
type CurrentUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

// DisplayName is "First Last", falling back to the email.
func (u CurrentUser) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

type SignInResponse struct {
	Message string       `json:"message"`
	User    *CurrentUser `json:"user"`
}

type AuthStatus struct {
	LoggedIn bool   `json:"loggedIn"`
	Message  string `json:"message"`
	UserID   *int64 `json:"userId,omitempty"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Registration is the new-account form. ConfirmPassword is checked locally
// and never sent.
type Registration struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Phone           string `json:"phone"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=3"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
}

type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// OneLine joins the non-empty address parts as "street, unit, city, state zip".
func (a Address) OneLine() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Address1, a.Address2, a.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if tail := strings.TrimSpace(a.State + " " + a.Zip); tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

type Profile struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Address   Address `json:"address"`
}

type ProfileUpdate struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// UpdateFrom pre-fills an edit form from the stored profile.
func UpdateFrom(p Profile) ProfileUpdate {
	return ProfileUpdate{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Address1:  p.Address.Address1,
		Address2:  p.Address.Address2,
		City:      p.Address.City,
		State:     p.Address.State,
		Zip:       p.Address.Zip,
	}
}

// View names a screen of the client.
type View string

const (
	ViewLogin View = "login"
	ViewMenu  View = "menu"
	ViewAdmin View = "admin"
)

// LandingView is where a freshly signed-in account is taken.
func LandingView(c AccountCategory) View {
	if c == CategoryWorker {
		return ViewAdmin
	}
	return ViewMenu
}
