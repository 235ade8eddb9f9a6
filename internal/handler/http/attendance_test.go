package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknest-hq/worknest-backend-go/internal/domain/attendance"
)

// fakeAttendanceService returns canned values and records the arguments it
// was called with.
type fakeAttendanceService struct {
	recordResponse attendance.RecordResponse
	summary        attendance.MonthlySummary
	stats          attendance.AdminStats
	enriched       []attendance.EnrichedRecordView
	views          []attendance.RecordView
	err            error

	lastEmployeeID int64
	lastMonth      int
	lastYear       int
	lastLimit      int
	lastFilter     attendance.Filter
	lastSelfFilter attendance.SelfFilter
	lastID         int64
}

func (f *fakeAttendanceService) Record(ctx context.Context, req attendance.RecordRequest) (attendance.RecordResponse, error) {
	if f.err != nil {
		return attendance.RecordResponse{}, f.err
	}
	return f.recordResponse, nil
}

func (f *fakeAttendanceService) MonthlySummary(ctx context.Context, employeeID int64, month, year int) (attendance.MonthlySummary, error) {
	f.lastEmployeeID = employeeID
	f.lastMonth = month
	f.lastYear = year
	return f.summary, f.err
}

func (f *fakeAttendanceService) MonthlyEntries(ctx context.Context, employeeID int64, month, year int) ([]attendance.RecordView, error) {
	f.lastEmployeeID = employeeID
	f.lastMonth = month
	f.lastYear = year
	return f.views, f.err
}

func (f *fakeAttendanceService) AdminStats(ctx context.Context, filter attendance.Filter) (attendance.AdminStats, error) {
	f.lastFilter = filter
	return f.stats, f.err
}

func (f *fakeAttendanceService) AdminRecords(ctx context.Context, filter attendance.Filter, limit int) ([]attendance.EnrichedRecordView, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	return f.enriched, f.err
}

func (f *fakeAttendanceService) ListByFilters(ctx context.Context, filter attendance.SelfFilter) ([]attendance.RecordView, error) {
	f.lastSelfFilter = filter
	return f.views, f.err
}

func (f *fakeAttendanceService) Get(ctx context.Context, id int64) (attendance.RecordView, error) {
	f.lastID = id
	if f.err != nil {
		return attendance.RecordView{}, f.err
	}
	if len(f.views) > 0 {
		return f.views[0], nil
	}
	return attendance.RecordView{}, nil
}

func (f *fakeAttendanceService) Replace(ctx context.Context, id int64, req attendance.RecordRequest) error {
	f.lastID = id
	return f.err
}

func (f *fakeAttendanceService) Delete(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAttendanceHandler_Record_Success(t *testing.T) {
	hours := 8.0
	svc := &fakeAttendanceService{
		recordResponse: attendance.RecordResponse{
			Record: attendance.RecordView{
				ID:         1,
				EmployeeID: 7,
				Date:       "2024-03-11",
				Status:     attendance.StatusPresent,
				TotalHours: &hours,
			},
			Summary: attendance.MonthlySummary{TotalPresent: 5, TotalLates: 1},
		},
	}
	handler := NewAttendanceHandler(svc)

	body, _ := json.Marshal(attendance.RecordRequest{
		EmployeeID: 7,
		Date:       "2024-03-11",
		TimeIn:     "09:00",
		TimeOut:    "17:00",
		Status:     "Present",
	})
	req := httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Record(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	record := resp["record"].(map[string]interface{})
	assert.Equal(t, float64(7), record["employee_id"])
	summary := resp["summary"].(map[string]interface{})
	assert.Equal(t, float64(5), summary["total_present"])
}

func TestAttendanceHandler_Record_StringTotalHours(t *testing.T) {
	svc := &fakeAttendanceService{
		recordResponse: attendance.RecordResponse{
			Record: attendance.RecordView{ID: 1, EmployeeID: 7},
		},
	}
	handler := NewAttendanceHandler(svc)

	// The employee browser client sends total_hours as a formatted string.
	body := `{
		"employee_id": 7,
		"date": "2024-03-11",
		"time_in": "09:00",
		"time_out": "17:00",
		"total_hours": "8.00",
		"remarks": "On time",
		"status": "Present"
	}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()

	handler.Record(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAttendanceHandler_Record_MalformedBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	handler.Record(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Invalid request body", resp["error"])
}

func TestAttendanceHandler_Summary_PassesQueryParams(t *testing.T) {
	svc := &fakeAttendanceService{summary: attendance.MonthlySummary{TotalPresent: 3}}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/attendance/summary?employee_id=7&month=3&year=2024", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.lastEmployeeID)
	assert.Equal(t, 3, svc.lastMonth)
	assert.Equal(t, 2024, svc.lastYear)

	var resp attendance.MonthlySummary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 3, resp.TotalPresent)
}

func TestAttendanceHandler_Summary_BadEmployeeID(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/summary?employee_id=abc", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_AdminRecords_BuildsFilter(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	url := "/attendance/admin?employee_id=7&status=Late&department=Engineering&start_date=2024-03-01&end_date=2024-03-31&limit=20"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	handler.AdminRecords(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter.EmployeeID)
	assert.Equal(t, int64(7), *svc.lastFilter.EmployeeID)
	require.NotNil(t, svc.lastFilter.Status)
	assert.Equal(t, "Late", *svc.lastFilter.Status)
	require.NotNil(t, svc.lastFilter.Department)
	assert.Equal(t, "Engineering", *svc.lastFilter.Department)
	assert.Equal(t, 20, svc.lastLimit)
}

func TestAttendanceHandler_AdminRecords_NonPositiveLimitAccepted(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	// Non-positive limits clamp downstream instead of erroring.
	for _, limit := range []string{"0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/attendance/admin?limit="+limit, nil)
		w := httptest.NewRecorder()

		handler.AdminRecords(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "limit=%s", limit)
	}
}

func TestAttendanceHandler_AdminRecords_BadDate(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/admin?start_date=03-01-2024", nil)
	w := httptest.NewRecorder()

	handler.AdminRecords(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_Get_NotFound(t *testing.T) {
	svc := &fakeAttendanceService{err: attendance.ErrRecordNotFound}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/attendance/99", nil)
	req = withURLParam(req, "id", "99")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Attendance record not found", resp["error"])
}

func TestAttendanceHandler_Get_BadID(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/attendance/abc", nil)
	req = withURLParam(req, "id", "abc")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_Delete_Success(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodDelete, "/attendance/3", nil)
	req = withURLParam(req, "id", "3")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), svc.lastID)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Attendance deleted", resp["message"])
}
