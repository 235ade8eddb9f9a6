package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/department"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepository{db: db}
}

// GetByID implements department.Repository.
func (d *departmentRepository) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	var dep department.Department
	err := q.QueryRow(ctx, "SELECT id, name, description FROM departments WHERE id = $1", id).
		Scan(&dep.ID, &dep.Name, &dep.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by ID: %w", err)
	}

	return dep, nil
}

// List implements department.Repository.
func (d *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.Query(ctx, "SELECT id, name, description FROM departments ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dep department.Department
		if err := rows.Scan(&dep.ID, &dep.Name, &dep.Description); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}
