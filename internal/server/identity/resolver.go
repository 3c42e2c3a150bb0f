// Package identity decides which sign-in flow an email address belongs to.
// It only inspects the address; authentication lives in package users.
package identity

import "strings"

// LoginType is the sign-in flow an email address is routed to.
type LoginType string

const (
	Worker   LoginType = "WORKER"
	Customer LoginType = "CUSTOMER"
	Unknown  LoginType = "UNKNOWN"
)

type Resolver struct {
	companyDomain string
}

// NewResolver returns a Resolver that treats addresses at companyDomain as
// staff. The comparison is case-insensitive.
func NewResolver(companyDomain string) *Resolver {
	return &Resolver{companyDomain: strings.ToLower(strings.TrimSpace(companyDomain))}
}

// Resolve returns Unknown for an address without '@'. Otherwise everything
// after the first '@' is compared with the company domain.
func (r *Resolver) Resolve(email string) LoginType {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return Unknown
	}
	if strings.ToLower(domain) == r.companyDomain {
		return Worker
	}
	return Customer
}
