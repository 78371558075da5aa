package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"quicksched/internal/middleware"
	"quicksched/internal/schedule"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	quickAddOut schedule.QuickAddOutput
	quickAddErr error
	listOut     schedule.ListSchedulesOutput
	listIn      schedule.ListSchedulesInput
	detailOut   schedule.DetailScheduleOutput
	detailErr   error
	deleteErr   error
	deletedID   string
}

func (m *mockUseCase) QuickAdd(ctx context.Context, input schedule.QuickAddInput) (schedule.QuickAddOutput, error) {
	return m.quickAddOut, m.quickAddErr
}

func (m *mockUseCase) List(ctx context.Context, input schedule.ListSchedulesInput) (schedule.ListSchedulesOutput, error) {
	m.listIn = input
	return m.listOut, nil
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (schedule.DetailScheduleOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

func newTestRouter(t *testing.T, uc schedule.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loc, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	engine := gin.New()
	mw := middleware.New(mockLogger{}, middleware.Config{RequestsPerMinute: 1000})
	RegisterRoutes(engine.Group("/api/v1"), New(mockLogger{}, uc, loc, 60), mw)
	return engine
}

func testSchedule() schedule.Schedule {
	loc, _ := time.LoadLocation("Europe/Zurich")
	start := time.Date(2026, 1, 24, 9, 15, 0, 0, loc)
	return schedule.Schedule{
		ID:              "sched-1",
		Title:           "arzt",
		SourceText:      "arzt 24.01 09:15 30min",
		StartAt:         start,
		EndAt:           start.Add(30 * time.Minute),
		DurationMinutes: 30,
		CreatedAt:       start,
	}
}

func TestQuickAddHandler(t *testing.T) {
	uc := &mockUseCase{quickAddOut: schedule.QuickAddOutput{Schedule: testSchedule()}}
	router := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/quick",
		strings.NewReader(`{"text":"arzt 24.01 09:15 30min"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var body struct {
		ErrorCode int `json:"error_code"`
		Data      struct {
			Schedule struct {
				ID      string `json:"id"`
				Title   string `json:"title"`
				StartAt string `json:"start_at"`
			} `json:"schedule"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", body.ErrorCode)
	}
	if body.Data.Schedule.ID != "sched-1" {
		t.Errorf("id = %q, want sched-1", body.Data.Schedule.ID)
	}
	if body.Data.Schedule.StartAt != "2026-01-24T09:15:00" {
		t.Errorf("start_at = %q, want 2026-01-24T09:15:00", body.Data.Schedule.StartAt)
	}
}

func TestQuickAddHandlerEmptyText(t *testing.T) {
	uc := &mockUseCase{quickAddErr: schedule.ErrEmptyInput}
	router := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/quick",
		strings.NewReader(`{"text":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListHandler(t *testing.T) {
	uc := &mockUseCase{listOut: schedule.ListSchedulesOutput{
		Schedules: []schedule.Schedule{testSchedule()},
		Total:     1,
		Limit:     20,
		Offset:    0,
	}}
	router := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules?from=2026-01-24&to=2026-01-25T00:00:00", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if uc.listIn.From.IsZero() || uc.listIn.To.IsZero() {
		t.Errorf("window not forwarded: %+v", uc.listIn)
	}
	if got := uc.listIn.From.Format("2006-01-02T15:04:05"); got != "2026-01-24T00:00:00" {
		t.Errorf("from = %q, want 2026-01-24T00:00:00", got)
	}
	if uc.listIn.Limit != 20 {
		t.Errorf("limit = %d, want default 20", uc.listIn.Limit)
	}
}

func TestListHandlerBadWindow(t *testing.T) {
	router := newTestRouter(t, &mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules?from=24.01.2026", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDetailHandlerNotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: schedule.ErrScheduleNotFound}
	router := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteHandler(t *testing.T) {
	uc := &mockUseCase{}
	router := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/sched-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if uc.deletedID != "sched-1" {
		t.Errorf("deleted id = %q, want sched-1", uc.deletedID)
	}
}
