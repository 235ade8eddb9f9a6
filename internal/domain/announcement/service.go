package announcement

import (
	"context"
)

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (View, error)
	Get(ctx context.Context, id int64) (View, error)
	List(ctx context.Context) ([]View, error)
	Update(ctx context.Context, id int64, req UpsertRequest) (View, error)
	Delete(ctx context.Context, id int64) error
}
