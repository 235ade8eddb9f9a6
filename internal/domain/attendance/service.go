package attendance

import (
	"context"
)

// Service defines business logic for attendance operations
type Service interface {
	// Record stores a daily log and echoes it with the submitting employee's
	// recomputed current-month summary
	Record(ctx context.Context, req RecordRequest) (RecordResponse, error)

	// MonthlySummary returns Present/Late/Absent counts for an employee;
	// month and year default to the current date when zero
	MonthlySummary(ctx context.Context, employeeID int64, month, year int) (MonthlySummary, error)

	// MonthlyEntries returns an employee's records for a month, date ascending
	MonthlyEntries(ctx context.Context, employeeID int64, month, year int) ([]RecordView, error)

	// AdminStats aggregates organization-wide counts plus the attendance rate
	AdminStats(ctx context.Context, filter Filter) (AdminStats, error)

	// AdminRecords lists enriched records, clamped to at most MaxRecordLimit rows
	AdminRecords(ctx context.Context, filter Filter, limit int) ([]EnrichedRecordView, error)

	// ListByFilters is the employee self-service listing
	ListByFilters(ctx context.Context, filter SelfFilter) ([]RecordView, error)

	// Get retrieves a single record by id
	Get(ctx context.Context, id int64) (RecordView, error)

	// Replace overwrites a record by id
	Replace(ctx context.Context, id int64, req RecordRequest) error

	// Delete removes a record by id
	Delete(ctx context.Context, id int64) error
}
