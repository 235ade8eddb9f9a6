package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/attendance"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/department"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = "id, employee_id, date, time_in, time_out, status, total_hours, remarks, created_at"

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut,
		&rec.Status, &rec.TotalHours, &rec.Remarks, &rec.CreatedAt,
	)
	return rec, err
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, time_in, time_out, status, total_hours, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.TimeIn,
		record.TimeOut,
		record.Status,
		record.TotalHours,
		record.Remarks,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := "SELECT " + attendanceColumns + " FROM attendance WHERE id = $1"

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// Replace implements attendance.Repository.
func (a *attendanceRepository) Replace(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET employee_id = $1, date = $2, time_in = $3, time_out = $4,
		    status = $5, total_hours = $6, remarks = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		record.EmployeeID,
		record.Date,
		record.TimeIn,
		record.TimeOut,
		record.Status,
		record.TotalHours,
		record.Remarks,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to replace attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, "DELETE FROM attendance WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// MonthlySummary implements attendance.Repository.
func (a *attendanceRepository) MonthlySummary(ctx context.Context, employeeID int64, month, year int) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE LOWER(status) = 'present'),
			COUNT(*) FILTER (WHERE LOWER(status) = 'late'),
			COUNT(*) FILTER (WHERE LOWER(status) = 'absent')
		FROM attendance
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
	`

	var summary attendance.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&summary.TotalPresent, &summary.TotalLates, &summary.TotalAbsences,
	)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to compute monthly summary: %w", err)
	}

	return summary, nil
}

// MonthlyEntries implements attendance.Repository.
func (a *attendanceRepository) MonthlyEntries(ctx context.Context, employeeID int64, month, year int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly entries: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// CountByStatus implements attendance.Repository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, filter attendance.Filter) (attendance.StatusCounts, error) {
	q := GetQuerier(ctx, a.db)

	b := adminFilterPredicates(filter)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE LOWER(a.status) = 'present'),
			COUNT(*) FILTER (WHERE LOWER(a.status) = 'absent'),
			COUNT(*) FILTER (WHERE LOWER(a.status) = 'late')
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
	` + b.where()

	var counts attendance.StatusCounts
	err := q.QueryRow(ctx, query, b.args...).Scan(&counts.Present, &counts.Absent, &counts.Late)
	if err != nil {
		return attendance.StatusCounts{}, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return counts, nil
}

// ListEnriched implements attendance.Repository.
func (a *attendanceRepository) ListEnriched(ctx context.Context, filter attendance.Filter, limit int) ([]attendance.EnrichedRecord, error) {
	q := GetQuerier(ctx, a.db)

	b := adminFilterPredicates(filter)
	where := b.where()
	limitIdx := b.nextArg(limit)

	query := fmt.Sprintf(`
		SELECT
			a.id, a.employee_id, a.date, a.time_in, a.time_out,
			a.status, a.total_hours, a.remarks, a.created_at,
			TRIM(CONCAT(COALESCE(e.first_name, ''), ' ', COALESCE(e.last_name, ''))) AS employee_name,
			COALESCE(d.name, '%s') AS department_name
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		%s
		ORDER BY a.date DESC, a.time_in DESC, a.id DESC
		LIMIT $%d
	`, department.UnassignedLabel, where, limitIdx)

	rows, err := q.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enriched attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.EnrichedRecord
	for rows.Next() {
		var rec attendance.EnrichedRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut,
			&rec.Status, &rec.TotalHours, &rec.Remarks, &rec.CreatedAt,
			&rec.EmployeeName, &rec.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enriched attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enriched attendance records: %w", err)
	}

	return records, nil
}

// ListByFilters implements attendance.Repository.
func (a *attendanceRepository) ListByFilters(ctx context.Context, filter attendance.SelfFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	b := selfFilterPredicates(filter)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
	` + b.where() + `
		ORDER BY date DESC, time_in DESC, id DESC
	`

	rows, err := q.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
