package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/payroll"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollColumns = "id, employee_id, month, year, basic_salary, deductions, bonus, net_salary, created_at"

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var rec payroll.Payroll
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.BasicSalary, &rec.Deductions, &rec.Bonus, &rec.NetSalary, &rec.CreatedAt,
	)
	return rec, err
}

// Create implements payroll.Repository.
func (p *payrollRepository) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll (employee_id, month, year, basic_salary, deductions, bonus, net_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Month,
		record.Year,
		record.BasicSalary,
		record.Deductions,
		record.Bonus,
		record.NetSalary,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// GetByID implements payroll.Repository.
func (p *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	query := "SELECT " + payrollColumns + " FROM payroll WHERE id = $1"

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record by ID: %w", err)
	}

	return rec, nil
}

// List implements payroll.Repository.
func (p *payrollRepository) List(ctx context.Context) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	query := "SELECT " + payrollColumns + " FROM payroll ORDER BY year DESC, month DESC, id DESC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, nil
}

// Update implements payroll.Repository.
func (p *payrollRepository) Update(ctx context.Context, record payroll.Payroll) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll
		SET employee_id = $1, month = $2, year = $3,
		    basic_salary = $4, deductions = $5, bonus = $6, net_salary = $7
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		record.EmployeeID,
		record.Month,
		record.Year,
		record.BasicSalary,
		record.Deductions,
		record.Bonus,
		record.NetSalary,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

// Delete implements payroll.Repository.
func (p *payrollRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, "DELETE FROM payroll WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
