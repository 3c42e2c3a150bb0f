package promotions

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pizzastore/internal/common"
	"github.com/dmitrijs2005/pizzastore/internal/validation"
)

func validForm() Form {
	return Form{
		Code:             " PIZZA10 ",
		DiscountValue:    "10",
		PromotionDesc:    "Ten off",
		PromotionSummary: "10% off large pizzas",
		MinOrderAmt:      "25.50",
		ExpDt:            "2026-12-31",
	}
}

func TestParse_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		want   string
	}{
		{"blank code", func(f *Form) { f.Code = "   " }, "All fields are required."},
		{"missing date beats bad discount", func(f *Form) { f.ExpDt = ""; f.DiscountValue = "ten" }, "All fields are required."},
		{"discount", func(f *Form) { f.DiscountValue = "ten" }, "Discount must be numeric."},
		{"discount before min amount", func(f *Form) { f.DiscountValue = "x"; f.MinOrderAmt = "y" }, "Discount must be numeric."},
		{"min amount", func(f *Form) { f.MinOrderAmt = "$25" }, "Minimum order amount must be numeric."},
		{"min amount before date", func(f *Form) { f.MinOrderAmt = "y"; f.ExpDt = "31/12/2026" }, "Minimum order amount must be numeric."},
		{"date format", func(f *Form) { f.ExpDt = "12/31/2026" }, "Expiration date must be in YYYY-MM-DD format."},
		{"impossible date", func(f *Form) { f.ExpDt = "2026-02-30" }, "Expiration date must be in YYYY-MM-DD format."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			_, err := Parse(f)
			var ve *validation.Error
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tt.want, ve.Message)
		})
	}
}

func TestParse_OK(t *testing.T) {
	p, err := Parse(validForm())
	require.NoError(t, err)

	want := Promotion{
		Code:             "PIZZA10",
		DiscountValue:    10,
		PromotionDesc:    "Ten off",
		PromotionSummary: "10% off large pizzas",
		ExpDt:            "2026-12-31",
		MinOrderAmt:      25.5,
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestService_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepository())

	created, err := s.Create(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	f := validForm()
	f.DiscountValue = "15"
	updated, err := s.Update(ctx, created.ID, f)
	require.NoError(t, err)
	assert.Equal(t, 15.0, updated.DiscountValue)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, updated, list[0])

	_, err = s.Update(ctx, 42, f)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.ErrorIs(t, s.Delete(ctx, created.ID), common.ErrorNotFound)

	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_InvalidFormIsNotStored(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	s := NewService(repo)

	f := validForm()
	f.Code = ""
	_, err := s.Create(ctx, f)
	require.Error(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryRepository_ListOrdered(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.Create(ctx, Promotion{ID: 5, Code: "B"})
	require.NoError(t, err)
	_, err = r.Create(ctx, Promotion{ID: 2, Code: "A"})
	require.NoError(t, err)
	next, err := r.Create(ctx, Promotion{Code: "C"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), next.ID)

	_, err = r.Create(ctx, Promotion{ID: 5})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	list, err := r.List(ctx)
	require.NoError(t, err)
	ids := []int64{}
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{2, 5, 6}, ids)
}
