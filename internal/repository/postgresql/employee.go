package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/employee"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = "id, first_name, last_name, email, department_id, position, date_hired, salary, status, created_at"

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.DepartmentID,
		&emp.Position, &emp.DateHired, &emp.Salary, &emp.Status, &emp.CreatedAt,
	)
	return emp, err
}

// Create implements employee.Repository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (first_name, last_name, email, department_id, position, date_hired, salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.DepartmentID,
		emp.Position,
		emp.DateHired,
		emp.Salary,
		emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.Repository.
func (e *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := "SELECT " + employeeColumns + " FROM employees WHERE id = $1"

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// List implements employee.Repository.
func (e *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := "SELECT " + employeeColumns + " FROM employees ORDER BY last_name ASC, first_name ASC, id ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
