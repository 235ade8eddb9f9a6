package payroll

import (
	"context"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/payroll"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db          *database.DB
	payrollRepo payroll.Repository
}

func NewPayrollService(db *database.DB, payrollRepo payroll.Repository) payroll.Service {
	return &PayrollServiceImpl{
		db:          db,
		payrollRepo: payrollRepo,
	}
}

// Create implements payroll.Service.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.UpsertRequest) (payroll.View, error) {
	if err := req.Validate(); err != nil {
		return payroll.View{}, err
	}

	created, err := s.payrollRepo.Create(ctx, payrollFromRequest(req))
	if err != nil {
		return payroll.View{}, err
	}

	return payroll.NewView(created), nil
}

// Get implements payroll.Service.
func (s *PayrollServiceImpl) Get(ctx context.Context, id int64) (payroll.View, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.View{}, err
	}
	return payroll.NewView(record), nil
}

// List implements payroll.Service.
func (s *PayrollServiceImpl) List(ctx context.Context) ([]payroll.View, error) {
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return payroll.NewViews(records), nil
}

// Update implements payroll.Service.
func (s *PayrollServiceImpl) Update(ctx context.Context, id int64, req payroll.UpsertRequest) (payroll.View, error) {
	if err := req.Validate(); err != nil {
		return payroll.View{}, err
	}

	record := payrollFromRequest(req)
	record.ID = id
	if err := s.payrollRepo.Update(ctx, record); err != nil {
		return payroll.View{}, err
	}

	return payroll.NewView(record), nil
}

// Delete implements payroll.Service.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.payrollRepo.Delete(ctx, id)
}

func payrollFromRequest(req payroll.UpsertRequest) payroll.Payroll {
	record := payroll.Payroll{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Deductions:  req.Deductions,
		Bonus:       req.Bonus,
	}

	if req.NetSalary != nil {
		record.NetSalary = *req.NetSalary
	} else {
		record.NetSalary = record.ComputeNet()
	}

	return record
}
