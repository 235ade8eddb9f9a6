package account

import (
	"time"
)

// User is a login identity linked to an employee row. Passwords are
// stored as bcrypt hashes; the hash never leaves this package's consumers.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	EmployeeID   int64
	CreatedAt    time.Time
}
