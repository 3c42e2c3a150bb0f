package promotions

import "context"

// Repository returns common.ErrorNotFound from Update and Delete when the
// id is unknown.
type Repository interface {
	List(ctx context.Context) ([]Promotion, error)
	Create(ctx context.Context, p Promotion) (Promotion, error)
	Update(ctx context.Context, p Promotion) error
	Delete(ctx context.Context, id int64) error
}
