package leave

import (
	"context"
	"fmt"

	"github.com/worknest-hq/worknest-backend-go/internal/domain/leave"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	db               *database.DB
	leaveRequestRepo leave.Repository
	entitlementDays  int
}

func NewLeaveService(db *database.DB, leaveRequestRepo leave.Repository, entitlementDays int) leave.Service {
	return &LeaveServiceImpl{
		db:               db,
		leaveRequestRepo: leaveRequestRepo,
		entitlementDays:  entitlementDays,
	}
}

// FileRequest implements leave.Service.
func (s *LeaveServiceImpl) FileRequest(ctx context.Context, body leave.FileRequestBody) (leave.RequestView, error) {
	if err := body.Validate(); err != nil {
		return leave.RequestView{}, err
	}

	start, ok := validator.IsValidDate(body.StartDate)
	if !ok {
		return leave.RequestView{}, fmt.Errorf("invalid start_date %q after validation", body.StartDate)
	}
	end, ok := validator.IsValidDate(body.EndDate)
	if !ok {
		return leave.RequestView{}, fmt.Errorf("invalid end_date %q after validation", body.EndDate)
	}

	request := leave.Request{
		EmployeeID: body.EmployeeID,
		LeaveType:  body.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     body.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.leaveRequestRepo.Create(ctx, request)
	if err != nil {
		return leave.RequestView{}, err
	}

	return leave.NewRequestView(created), nil
}

// ListAll implements leave.Service.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.RequestView, error) {
	requests, err := s.leaveRequestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return leave.NewRequestViews(requests), nil
}

// ListByEmployee implements leave.Service.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.RequestView, error) {
	requests, err := s.leaveRequestRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return leave.NewRequestViews(requests), nil
}

// SetStatus implements leave.Service. Any status in the closed set is
// accepted at any time; the ledger does not enforce a transition graph.
func (s *LeaveServiceImpl) SetStatus(ctx context.Context, id int64, body leave.SetStatusBody) (leave.SetStatusResponse, error) {
	status, ok := leave.ParseStatus(body.Status)
	if !ok {
		return leave.SetStatusResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "must be one of Pending, Approved, Declined"},
		}
	}

	if err := s.leaveRequestRepo.UpdateStatus(ctx, id, status); err != nil {
		return leave.SetStatusResponse{}, err
	}

	return leave.SetStatusResponse{
		Message: "Leave request updated",
		Status:  status,
	}, nil
}

// Balance implements leave.Service.
func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeID int64) (leave.Balance, error) {
	approved, err := s.leaveRequestRepo.ApprovedByEmployee(ctx, employeeID)
	if err != nil {
		return leave.Balance{}, err
	}

	return leave.ComputeBalance(s.entitlementDays, approved), nil
}
