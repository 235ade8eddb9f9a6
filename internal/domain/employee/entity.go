package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	DepartmentID *int64
	Position     string
	DateHired    time.Time
	Salary       decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

// View is the directory JSON shape; credentials never appear here.
type View struct {
	ID           int64           `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	DepartmentID *int64          `json:"department_id"`
	Position     string          `json:"position"`
	DateHired    string          `json:"date_hired"`
	Salary       decimal.Decimal `json:"salary"`
	Status       string          `json:"status"`
}

func NewView(e Employee) View {
	return View{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		Position:     e.Position,
		DateHired:    e.DateHired.Format("2006-01-02"),
		Salary:       e.Salary,
		Status:       e.Status,
	}
}

func NewViews(employees []Employee) []View {
	views := make([]View, 0, len(employees))
	for _, e := range employees {
		views = append(views, NewView(e))
	}
	return views
}
