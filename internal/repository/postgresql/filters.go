package postgresql

import (
	"fmt"
	"strings"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/attendance"
)

// predicateBuilder assembles AND-ed, parameterized WHERE predicates.
// Each present, non-empty filter contributes exactly one predicate;
// absent filters contribute nothing.
type predicateBuilder struct {
	predicates []string
	args       []interface{}
}

// add appends one predicate. expr must contain a single %d verb for the
// positional parameter index.
func (b *predicateBuilder) add(expr string, arg interface{}) {
	b.args = append(b.args, arg)
	b.predicates = append(b.predicates, fmt.Sprintf(expr, len(b.args)))
}

// where renders the WHERE clause, or an empty string when nothing was added.
func (b *predicateBuilder) where() string {
	if len(b.predicates) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.predicates, " AND ")
}

// nextArg registers a non-predicate argument (LIMIT and the like) and
// returns its positional index.
func (b *predicateBuilder) nextArg(arg interface{}) int {
	b.args = append(b.args, arg)
	return len(b.args)
}

// adminFilterPredicates maps the admin filter set onto predicates over the
// attendance/employee/department join. Status and department match
// case-insensitively; date bounds are inclusive.
func adminFilterPredicates(f attendance.Filter) *predicateBuilder {
	b := &predicateBuilder{}

	if f.EmployeeID != nil {
		b.add("a.employee_id = $%d", *f.EmployeeID)
	}
	if f.Status != nil && *f.Status != "" {
		b.add("LOWER(a.status) = LOWER($%d)", *f.Status)
	}
	if f.Department != nil && *f.Department != "" {
		b.add("LOWER(d.name) = LOWER($%d)", *f.Department)
	}
	if f.StartDate != nil && *f.StartDate != "" {
		b.add("a.date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil && *f.EndDate != "" {
		b.add("a.date <= $%d", *f.EndDate)
	}

	return b
}

// selfFilterPredicates is the non-joined self-service variant.
func selfFilterPredicates(f attendance.SelfFilter) *predicateBuilder {
	b := &predicateBuilder{}

	if f.EmployeeID != nil {
		b.add("employee_id = $%d", *f.EmployeeID)
	}
	if f.StartDate != nil && *f.StartDate != "" {
		b.add("date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil && *f.EndDate != "" {
		b.add("date <= $%d", *f.EndDate)
	}

	return b
}
