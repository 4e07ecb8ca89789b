package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/repository"
	"github.com/alexanderramin/babylog/internal/service"
	"github.com/alexanderramin/babylog/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.January, 7, 20, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database := testutil.NewTestDB(t)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)

	srv := New(
		service.NewProfileService(profileRepo, repository.NewSQLiteProfileTx(testutil.NewTestUoW(database))),
		service.NewRecordService(recordRepo, profileRepo),
		service.NewStatsService(recordRepo),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	srv.now = func() time.Time { return fixedNow }
	return srv
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodOptions, "/records", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestGetProfile(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"baby_01","name":"Tít","dob":"2023-09-15","height":65,"weight":7.2,"gender":"male"}`, w.Body.String())
}

func TestUpdateProfile(t *testing.T) {
	h := newTestServer(t).Router()

	body := `{"id":"baby_01","name":"Bống","dob":"2024-02-01","height":"58.5","weight":4.3,"gender":"female"}`
	w := do(t, h, http.MethodPut, "/profile", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	assert.Equal(t, "Bống", got["name"])
	assert.Equal(t, "2024-02-01", got["dob"])
	assert.Equal(t, 58.5, got["height"])
	assert.Equal(t, "female", got["gender"])
}

func TestUpdateProfile_Errors(t *testing.T) {
	h := newTestServer(t).Router()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"id":`, http.StatusBadRequest},
		{"bad dob", `{"id":"baby_01","name":"A","dob":"yesterday","height":50,"weight":3,"gender":"male"}`, http.StatusBadRequest},
		{"bad gender", `{"id":"baby_01","name":"A","dob":"2024-01-01","height":50,"weight":3,"gender":"other"}`, http.StatusBadRequest},
		{"missing weight", `{"id":"baby_01","name":"A","dob":"2024-01-01","height":50,"gender":"male"}`, http.StatusBadRequest},
		{"unknown id", `{"id":"baby_99","name":"A","dob":"2024-01-01","height":50,"weight":3,"gender":"male"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPut, "/profile", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestAddAndListRecords(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodPost, "/records",
		`{"type":"pumping","side":"both","volume_total":120,"created_at":"2024-01-05T08:30:00+07:00","note":"Good session"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	pump := decode[map[string]any](t, w)
	assert.NotEmpty(t, pump["id"])
	assert.Equal(t, "baby_01", pump["baby_id"])
	assert.Equal(t, "2024-01-05T08:30:00+07:00", pump["created_at"])
	assert.Equal(t, 120.0, pump["volume_total"])
	assert.NotContains(t, pump, "amount_ml")

	w = do(t, h, http.MethodPost, "/records", `{"type":"feeding","feed_type":"formula","amount_ml":150}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	feed := decode[map[string]any](t, w)
	assert.Equal(t, fixedNow.Format(time.RFC3339), feed["created_at"], "created_at defaults to now")

	w = do(t, h, http.MethodGet, "/records", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, feed["id"], list[0]["id"])
	assert.Equal(t, pump["id"], list[1]["id"])

	w = do(t, h, http.MethodGet, "/records?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)
	assert.Equal(t, "2", w.Header().Get("X-Total-Count"), "total ignores the limit")
}

func TestGetRecord(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodPost, "/records", `{"type":"sleep","start_time":"2024-01-05T13:00:00Z","duration_minutes":45}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[map[string]any](t, w)["id"].(string)

	w = do(t, h, http.MethodGet, "/records/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	rec := decode[map[string]any](t, w)
	assert.Equal(t, id, rec["id"])
	assert.Equal(t, "sleep", rec["type"])
	assert.Equal(t, 45.0, rec["duration_minutes"])

	w = do(t, h, http.MethodGet, "/records/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddRecord_TimeZoneMovesUTCIntoLocalDay(t *testing.T) {
	h := newTestServer(t).Router()

	// 2024-01-05 23:30 in Ho Chi Minh City, sent as UTC the way a browser's toISOString does.
	w := do(t, h, http.MethodPost, "/records",
		`{"type":"pumping","side":"both","volume_total":100,"created_at":"2024-01-05T16:30:00Z","tz":"Asia/Ho_Chi_Minh"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2024-01-05T23:30:00+07:00", decode[map[string]any](t, w)["created_at"])

	// tz may also come from the query string.
	w = do(t, h, http.MethodPost, "/records?tz=Asia/Ho_Chi_Minh",
		`{"type":"pumping","side":"both","volume_total":50,"created_at":"2024-01-05T18:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2024-01-06T01:00:00+07:00", decode[map[string]any](t, w)["created_at"])

	w = do(t, h, http.MethodGet, "/stats/daily?date=2024-01-05", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100.0, decode[map[string]any](t, w)["total_pumping_ml"])

	w = do(t, h, http.MethodGet, "/stats/daily?date=2024-01-06", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50.0, decode[map[string]any](t, w)["total_pumping_ml"])

	w = do(t, h, http.MethodPost, "/records", `{"type":"feeding","feed_type":"formula","amount_ml":60,"tz":"Mars/Olympus"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddRecord_SleepDerivesDuration(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodPost, "/records",
		`{"type":"sleep","start_time":"2024-01-05T13:00:00Z","end_time":"2024-01-05T14:30:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rec := decode[map[string]any](t, w)
	assert.Equal(t, 90.0, rec["duration_minutes"])
	assert.Equal(t, "2024-01-05T14:30:00Z", rec["created_at"], "sleep is logged at its end")
}

func TestAddRecord_Errors(t *testing.T) {
	h := newTestServer(t).Router()

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", `{"type":"bath"}`},
		{"negative volume", `{"type":"pumping","side":"left","volume_total":-5}`},
		{"bad side", `{"type":"pumping","side":"up","volume_total":5}`},
		{"missing amount", `{"type":"feeding","feed_type":"breast"}`},
		{"cross variant", `{"type":"feeding","feed_type":"breast","amount_ml":60,"volume_total":10}`},
		{"sleep without duration or end", `{"type":"sleep","start_time":"2024-01-05T13:00:00Z"}`},
		{"not json", `hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/records", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w := do(t, h, http.MethodGet, "/records", "")
	assert.Empty(t, decode[[]map[string]any](t, w))
}

func TestListRecords_BadLimit(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodGet, "/records?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRecord(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodPost, "/records", `{"type":"feeding","feed_type":"breast","amount_ml":60}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[map[string]any](t, w)["id"].(string)

	w = do(t, h, http.MethodDelete, "/records/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodDelete, "/records/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code, "deleting an absent id is not an error")

	w = do(t, h, http.MethodGet, "/records", "")
	assert.Empty(t, decode[[]map[string]any](t, w))
}

func TestDailyStats(t *testing.T) {
	h := newTestServer(t).Router()

	for _, v := range []int{120, 180} {
		body := `{"type":"pumping","side":"both","volume_total":` + jsonInt(v) + `,"created_at":"2024-01-05T09:00:00Z"}`
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/records", body).Code)
	}
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/records",
		`{"type":"sleep","start_time":"2024-01-05T13:00:00Z","duration_minutes":90,"created_at":"2024-01-05T13:00:00Z"}`).Code)

	w := do(t, h, http.MethodGet, "/stats/daily?date=2024-01-05", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2024-01-05","total_pumping_ml":300,"total_feeding_ml":0,
		"total_sleep_hours":1.5,"avg_pump_ml":150,"pump_count":2}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/stats/daily?date=5-1-2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/stats/daily", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-01-07", decode[map[string]any](t, w)["date"])
}

func TestWeeklyStats(t *testing.T) {
	h := newTestServer(t).Router()

	w := do(t, h, http.MethodGet, "/stats/weekly?anchor=2024-01-07", "")
	require.Equal(t, http.StatusOK, w.Code)
	points := decode[[]weeklyPointJSON](t, w)
	require.Len(t, points, 7)
	assert.Equal(t, "2024-01-01", points[0].FullDate)
	assert.Equal(t, "Mon", points[0].Name)
	assert.Equal(t, "2024-01-07", points[6].FullDate)

	w = do(t, h, http.MethodGet, "/stats/weekly", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-01-07", decode[[]weeklyPointJSON](t, w)[6].FullDate)

	w = do(t, h, http.MethodGet, "/stats/weekly?anchor=soon", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type brokenRecords struct{}

func (brokenRecords) ListRecords(context.Context, int) ([]*domain.ActivityRecord, error) {
	return nil, errors.New("database is locked")
}

func (brokenRecords) AddRecord(context.Context, *domain.ActivityRecord) (*domain.ActivityRecord, error) {
	return nil, errors.New("database is locked")
}

func (brokenRecords) DeleteRecord(context.Context, string) error {
	return errors.New("database is locked")
}

func (brokenRecords) GetRecord(context.Context, string) (*domain.ActivityRecord, error) {
	return nil, errors.New("database is locked")
}

func (brokenRecords) CountRecords(context.Context) (int, error) {
	return 0, errors.New("database is locked")
}

func TestStorageFaultIs500(t *testing.T) {
	var logs bytes.Buffer
	srv := New(nil, brokenRecords{}, nil, slog.New(slog.NewTextHandler(&logs, nil)))
	h := srv.Router()

	w := do(t, h, http.MethodGet, "/records", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	assert.Contains(t, logs.String(), "database is locked")

	w = do(t, h, http.MethodDelete, "/records/x", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(t, h, http.MethodGet, "/records/x", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func jsonInt(v int) string {
	b, _ := json.Marshal(v)
	return string(b)
}
