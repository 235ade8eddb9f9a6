package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/account"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/employee"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
	"github.com/worknest-hq/worknest-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AccountServiceImpl struct {
	db           *database.DB
	userRepo     account.UserRepository
	employeeRepo employee.Repository
}

func NewAccountService(db *database.DB, userRepo account.UserRepository, employeeRepo employee.Repository) account.Service {
	return &AccountServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
	}
}

// Signup implements account.Service. The employee row and the user row
// are written inside one transaction so a failure on the second insert
// never leaves an orphaned employee.
func (s *AccountServiceImpl) Signup(ctx context.Context, req account.SignupRequest) (account.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return account.SignupResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.SignupResponse{}, err
	}

	var createdEmployee employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdEmployee, err = s.employeeRepo.Create(txCtx, employee.Employee{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			DepartmentID: req.DepartmentID,
			Position:     "New Employee",
			DateHired:    time.Now(),
			Salary:       decimal.Zero,
			Status:       "Active",
		})
		if err != nil {
			return err
		}

		_, err = s.userRepo.Create(txCtx, account.User{
			Username:     req.Email,
			PasswordHash: string(hashed),
			Role:         req.AccountType,
			EmployeeID:   createdEmployee.ID,
		})
		return err
	})
	if err != nil {
		return account.SignupResponse{}, err
	}

	return account.SignupResponse{
		Success:    true,
		Message:    "Account created successfully!",
		EmployeeID: createdEmployee.ID,
		Role:       req.AccountType,
	}, nil
}

// Login implements account.Service.
func (s *AccountServiceImpl) Login(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return account.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			return account.LoginResponse{}, account.ErrInvalidCredentials
		}
		return account.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return account.LoginResponse{}, account.ErrInvalidCredentials
	}

	return account.LoginResponse{
		EmployeeID: user.EmployeeID,
		Role:       user.Role,
	}, nil
}
