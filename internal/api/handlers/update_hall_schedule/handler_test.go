package update_hall_schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallhub/SHB-ScheduleService/internal/api/middleware"
	"github.com/hallhub/SHB-ScheduleService/internal/service/schedule"
	"github.com/hallhub/SHB-ScheduleService/internal/service/schedule/models"
)

type stubService struct {
	replaceErr error

	gotHallID int64
	gotReq    *models.ReplaceScheduleRequest
}

func (s *stubService) Replace(ctx context.Context, hallID int64, req *models.ReplaceScheduleRequest) ([]models.DayResponse, error) {
	s.gotHallID = hallID
	s.gotReq = req

	if s.replaceErr != nil {
		return nil, s.replaceErr
	}

	out := make([]models.DayResponse, len(req.Days))
	for i, d := range req.Days {
		out[i] = models.DayResponse{
			ID:        int64(i + 1),
			DayOfWeek: d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsActive:  d.IsActive,
		}
	}
	return out, nil
}

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

func fullWeekBody(t *testing.T) []byte {
	t.Helper()

	days := make([]models.DayRecord, 7)
	for i := range days {
		days[i] = models.DayRecord{
			DayOfWeek: i + 1,
			StartTime: "07:00",
			EndTime:   "23:30",
			IsActive:  true,
		}
	}

	body, err := json.Marshal(days)
	require.NoError(t, err)
	return body
}

func doRequest(handler *Handler, hallID string, userID int64, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/hall/"+hallID, bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"hallId": hallID})
	if userID != 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{}
	handler := NewHandler(svc, stubLogger{})

	rec := doRequest(handler, "42", 10, fullWeekBody(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.gotHallID)
	assert.Equal(t, int64(10), svc.gotReq.UserID)

	var result []models.DayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 7)
	assert.Equal(t, int64(1), result[0].ID)
}

func TestHandle_InvalidHallID(t *testing.T) {
	handler := NewHandler(&stubService{}, stubLogger{})

	rec := doRequest(handler, "abc", 10, fullWeekBody(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MissingUser(t *testing.T) {
	svc := &stubService{}
	handler := NewHandler(svc, stubLogger{})

	rec := doRequest(handler, "42", 0, fullWeekBody(t))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.gotReq, "service must not be called without a user")
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubService{}, stubLogger{})

	rec := doRequest(handler, "42", 10, []byte(`{"not":"an array"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "hall not found",
			serviceErr: schedule.ErrHallNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "access denied",
			serviceErr: schedule.ErrAccessDenied,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "invalid input",
			serviceErr: fmt.Errorf("%w: Monday: start time must be before end time", schedule.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internal error",
			serviceErr: schedule.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&stubService{replaceErr: tt.serviceErr}, stubLogger{})

			rec := doRequest(handler, "42", 10, fullWeekBody(t))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_ViolationMessageReachesClient(t *testing.T) {
	serviceErr := fmt.Errorf("%w: Friday: start time must be before end time", schedule.ErrInvalidInput)
	handler := NewHandler(&stubService{replaceErr: serviceErr}, stubLogger{})

	rec := doRequest(handler, "42", 10, fullWeekBody(t))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Friday: start time must be before end time", errResp.Message)
}
