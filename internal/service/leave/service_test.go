package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/leave"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/validator"
)

// fakeLeaveRepo is an in-memory leave.Repository for service tests.
type fakeLeaveRepo struct {
	requests map[int64]leave.Request
	nextID   int64
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[int64]leave.Request), nextID: 1}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	request.ID = f.nextID
	request.CreatedAt = time.Now()
	f.nextID++
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) ListAll(ctx context.Context) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id int64, status leave.Status) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

func (f *fakeLeaveRepo) ApprovedByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == leave.StatusApproved {
			out = append(out, req)
		}
	}
	return out, nil
}

func newTestLeaveService(repo *fakeLeaveRepo, entitlementDays int) leave.Service {
	return NewLeaveService(nil, repo, entitlementDays)
}

func validBody() leave.FileRequestBody {
	return leave.FileRequestBody{
		EmployeeID: 7,
		LeaveType:  "Vacation Leave",
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-03",
	}
}

func TestLeaveService_FileRequest_StartsPending(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, 2)

	view, err := svc.FileRequest(ctx, validBody())
	require.NoError(t, err)

	assert.Equal(t, int64(1), view.ID)
	assert.Equal(t, leave.StatusPending, view.Status)
	assert.Equal(t, leave.CategoryVacation, view.Category)
	assert.Equal(t, 3, view.Days)
}

func TestLeaveService_FileRequest_RejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, 2)

	body := validBody()
	body.StartDate = "2024-03-05"
	body.EndDate = "2024-03-01"
	_, err := svc.FileRequest(ctx, body)

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Empty(t, repo.requests)
}

func TestLeaveService_SetStatus_Success(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, 2)

	created, err := svc.FileRequest(ctx, validBody())
	require.NoError(t, err)

	resp, err := svc.SetStatus(ctx, created.ID, leave.SetStatusBody{Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, "Leave request updated", resp.Message)
	assert.Equal(t, leave.StatusApproved, resp.Status)
	assert.Equal(t, leave.StatusApproved, repo.requests[created.ID].Status)
}

func TestLeaveService_SetStatus_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, 2)

	created, err := svc.FileRequest(ctx, validBody())
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, created.ID, leave.SetStatusBody{Status: "Cancelled"})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, leave.StatusPending, repo.requests[created.ID].Status)
}

func TestLeaveService_SetStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), 2)

	_, err := svc.SetStatus(ctx, 99, leave.SetStatusBody{Status: "Approved"})
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestLeaveService_Balance_DerivedFromApprovedRequests(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestLeaveService(repo, 2)

	file := func(leaveType, start, end string) leave.RequestView {
		body := validBody()
		body.LeaveType = leaveType
		body.StartDate = start
		body.EndDate = end
		view, err := svc.FileRequest(ctx, body)
		require.NoError(t, err)
		return view
	}

	vacation := file("Vacation Leave", "2024-03-01", "2024-03-01")
	file("Sick Leave", "2024-03-04", "2024-03-06") // stays Pending
	emergency := file("Emergency Leave", "2024-04-01", "2024-04-05")

	_, err := svc.SetStatus(ctx, vacation.ID, leave.SetStatusBody{Status: "Approved"})
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, emergency.ID, leave.SetStatusBody{Status: "Approved"})
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, 7)
	require.NoError(t, err)

	// Only the approved vacation day draws from the pool; emergency leave
	// is unlimited and the pending sick leave does not count.
	assert.Equal(t, leave.Balance{Total: 2, Used: 1, Remaining: 1}, balance)
}

func TestLeaveService_Balance_EmptyLedger(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeLeaveRepo(), 2)

	balance, err := svc.Balance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, leave.Balance{Total: 2, Used: 0, Remaining: 2}, balance)
}
