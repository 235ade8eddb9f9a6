package leave

import (
	"context"
)

// Service defines business logic for the leave request ledger
type Service interface {
	// FileRequest creates a request in Pending state
	FileRequest(ctx context.Context, body FileRequestBody) (RequestView, error)

	// ListAll returns every request, newest first
	ListAll(ctx context.Context) ([]RequestView, error)

	// ListByEmployee returns one employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeID int64) ([]RequestView, error)

	// SetStatus transitions a request to Pending, Approved or Declined
	SetStatus(ctx context.Context, id int64, body SetStatusBody) (SetStatusResponse, error)

	// Balance derives the entitlement figures from the ledger at read time
	Balance(ctx context.Context, employeeID int64) (Balance, error)
}
