package leave

import (
	"context"
)

// Repository - interface for the leave_requests table
type Repository interface {
	// Create inserts a request; the server assigns the creation timestamp
	Create(ctx context.Context, request Request) (Request, error)

	// ListAll returns every request, newest first
	ListAll(ctx context.Context) ([]Request, error)

	// ListByEmployee returns one employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeID int64) ([]Request, error)

	// UpdateStatus sets the status of an existing request
	UpdateStatus(ctx context.Context, id int64, status Status) error

	// ApprovedByEmployee returns the Approved requests the balance is
	// computed from
	ApprovedByEmployee(ctx context.Context, employeeID int64) ([]Request, error)
}
