package employee

import (
	"context"
)

// Repository is the directory lookup surface. Creation exists only for
// the signup flow; employee administration is not an API concern here.
type Repository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
