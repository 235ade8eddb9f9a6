package account

import (
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	AccountType  string `json:"account_type"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

var accountTypes = []string{"admin", "employee"}

func (r SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if validator.IsEmpty(r.AccountType) {
		errs = append(errs, validator.ValidationError{Field: "account_type", Message: "is required"})
	} else if !validator.IsInSlice(r.AccountType, accountTypes) {
		errs = append(errs, validator.ValidationError{Field: "account_type", Message: "must be admin or employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SignupResponse mirrors the original signup contract.
type SignupResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EmployeeID int64  `json:"employee_id"`
	Role       string `json:"role"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	EmployeeID int64  `json:"employee_id"`
	Role       string `json:"role"`
}
