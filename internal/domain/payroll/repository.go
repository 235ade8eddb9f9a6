package payroll

import (
	"context"
)

// Repository - interface for the payroll table
type Repository interface {
	Create(ctx context.Context, record Payroll) (Payroll, error)
	GetByID(ctx context.Context, id int64) (Payroll, error)
	List(ctx context.Context) ([]Payroll, error)
	Update(ctx context.Context, record Payroll) error
	Delete(ctx context.Context, id int64) error
}
