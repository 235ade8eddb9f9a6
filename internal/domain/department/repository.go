package department

import (
	"context"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
