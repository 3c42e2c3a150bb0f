package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/pizzastore/internal/client/client"
	"github.com/dmitrijs2005/pizzastore/internal/client/models"
	"github.com/dmitrijs2005/pizzastore/internal/validation"
)

const (
	ProfileLoadFailedMessage   = "Failed to load profile."
	ProfileUpdateFailedMessage = "Failed to update profile."
)

var profileMessages = validation.Messages{
	"firstName.required": "First name is required.",
	"lastName.required":  "Last name is required.",
}

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	// Update returns the backend's confirmation message.
	Update(ctx context.Context, upd models.ProfileUpdate) (string, error)
}

type profileService struct {
	client client.ProfileClient
}

func NewProfileService(c client.ProfileClient) ProfileService {
	return &profileService{client: c}
}

func (p *profileService) Get(ctx context.Context) (*models.Profile, error) {
	prof, err := p.client.Profile(ctx)
	if err != nil {
		return nil, withFallback(err, ProfileLoadFailedMessage)
	}
	return prof, nil
}

func (p *profileService) Update(ctx context.Context, upd models.ProfileUpdate) (string, error) {
	upd.FirstName = strings.TrimSpace(upd.FirstName)
	upd.LastName = strings.TrimSpace(upd.LastName)
	if err := validation.Struct(upd, profileMessages); err != nil {
		return "", err
	}
	msg, err := p.client.UpdateProfile(ctx, upd)
	if err != nil {
		return "", withFallback(err, ProfileUpdateFailedMessage)
	}
	return msg, nil
}
