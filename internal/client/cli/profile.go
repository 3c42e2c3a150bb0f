package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pizzastore/internal/client/models"
)

func (a *App) Profile(ctx context.Context) error {
	p, err := a.profileService.Get(ctx)
	if err != nil {
		return err
	}
	renderProfile(a.out, p)
	return nil
}

// EditProfile walks through every editable field, keeping the current value
// on an empty answer.
func (a *App) EditProfile(ctx context.Context) error {
	p, err := a.profileService.Get(ctx)
	if err != nil {
		return err
	}

	upd := models.UpdateFrom(*p)
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &upd.FirstName},
		{"Last name", &upd.LastName},
		{"Phone", &upd.Phone},
		{"Address line 1", &upd.Address1},
		{"Address line 2", &upd.Address2},
		{"City", &upd.City},
		{"State", &upd.State},
		{"Zip", &upd.Zip},
	}
	for _, f := range fields {
		v, err := getTextWithDefault(a.reader, f.prompt, *f.dst, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	msg, err := a.profileService.Update(ctx, upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
