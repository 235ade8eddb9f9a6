package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/leave"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = "id, employee_id, leave_type, start_date, end_date, reason, status, created_at"

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.CreatedAt,
	)
	return req, err
}

// Create implements leave.Repository.
func (l *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// ListAll implements leave.Repository.
func (l *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// ListByEmployee implements leave.Repository.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by employee: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

// UpdateStatus implements leave.Repository.
func (l *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status leave.Status) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, "UPDATE leave_requests SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// ApprovedByEmployee implements leave.Repository.
func (l *leaveRequestRepository) ApprovedByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND LOWER(status) = 'approved'
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}
