package attendance

import (
	"context"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id int64) (Record, error)

	// Replace overwrites all mutable fields of a record by id
	Replace(ctx context.Context, record Record) error

	// Delete removes a record by id
	Delete(ctx context.Context, id int64) error

	// MonthlySummary counts Present/Late/Absent for an employee in a month,
	// matching status case-insensitively
	MonthlySummary(ctx context.Context, employeeID int64, month, year int) (MonthlySummary, error)

	// MonthlyEntries lists an employee's records for a month, date ascending
	MonthlyEntries(ctx context.Context, employeeID int64, month, year int) ([]Record, error)

	// CountByStatus aggregates Present/Absent/Late across the filtered set
	CountByStatus(ctx context.Context, filter Filter) (StatusCounts, error)

	// ListEnriched lists filtered records joined with employee and department
	// names, most-recent-first, bounded by limit
	ListEnriched(ctx context.Context, filter Filter, limit int) ([]EnrichedRecord, error)

	// ListByFilters is the non-joined self-service listing, most-recent-first
	ListByFilters(ctx context.Context, filter SelfFilter) ([]Record, error)
}
