package get_daily_trend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dailyTrend "github.com/m04kA/CRB-AnalyticsService/internal/usecase/daily_trend"
)

// stubUseCase возвращает заранее заданный ответ или ошибку
type stubUseCase struct {
	resp *dailyTrend.Response
	err  error

	gotReq *dailyTrend.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *dailyTrend.Request) (*dailyTrend.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

// nopLogger глушит логи в тестах
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func trendResponse() *dailyTrend.Response {
	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local)
	return &dailyTrend.Response{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 7),
		Hours: []dailyTrend.HourPoint{
			{Hour: 0, Label: "12 AM", Utilization: 0, Bookings: 0},
			{Hour: 9, Label: "9 AM", Utilization: 42, Bookings: 3},
		},
	}
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: trendResponse()}
	h := NewHandler(uc, nopLogger{})

	r := httptest.NewRequest("GET",
		"/api/v1/analytics/daily-trend?from=2025-03-03&to=2025-03-09&resourceType=study-room", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body DailyTrendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-03", body.From)
	assert.Equal(t, "2025-03-09", body.To)
	require.Len(t, body.Hours, 2)
	assert.Equal(t, 42, body.Hours[1].Utilization)

	// Параметры запроса дошли до use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "study-room", uc.gotReq.Options.ResourceType)
	assert.Equal(t, 7*24.0, uc.gotReq.RangeEnd.Sub(uc.gotReq.RangeStart).Hours())
}

func TestHandle_MissingRange(t *testing.T) {
	h := NewHandler(&stubUseCase{resp: trendResponse()}, nopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/analytics/daily-trend", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_UseCaseValidationError(t *testing.T) {
	uc := &stubUseCase{err: dailyTrend.ErrInvalidRange}
	h := NewHandler(uc, nopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/analytics/daily-trend?from=2025-03-09&to=2025-03-03", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: errors.New("dataset unavailable")}
	h := NewHandler(uc, nopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/analytics/daily-trend?from=2025-03-03&to=2025-03-09", nil)
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
