package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/config"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/domain"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/logger"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/repository"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/schedule"
	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "planner.db")), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ProcessDefinition{}, &domain.Job{}, &domain.ScheduleStep{}))

	defs := []domain.ProcessDefinition{
		{Name: "SM102-CX FOUR COLOUR", RatePerHour: 8000},
		{Name: "POLAR MACHINE FOR SHEETS", RatePerHour: 50000},
	}
	planner := service.NewPlannerService(
		repository.NewJobRepository(db),
		repository.NewStepRepository(db),
		schedule.DefaultCalendar(),
		defs,
		logger.GetDefault(),
		&service.PlannerConfig{SetupHours: 2, RevenueTarget: 150000, Currency: "GH₵"},
	)

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.CORS.AllowAllOrigins = true
	return SetupRouter(planner, cfg, logger.GetDefault())
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlanJobEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/jobs", gin.H{
		"name":           "Nutrifoods",
		"sales_rep":      "Mabel Ampofo",
		"finished_qty":   100000,
		"ups_per_sheet":  12,
		"overs_pct":      2,
		"processes":      []string{"SM102-CX FOUR COLOUR", "POLAR MACHINE FOR SHEETS"},
		"contract_value": 5000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var job domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, 8500, job.Impressions)
	assert.Len(t, job.Steps, 2)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// The job shows up in the listing.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	list := httptest.NewRecorder()
	router.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), job.ID)
}

func TestPlanJobEndpointRejectsUnknownProcess(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/jobs", gin.H{
		"name":          "Bad Routing",
		"finished_qty":  1000,
		"ups_per_sheet": 4,
		"processes":     []string{"NO SUCH MACHINE"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NO SUCH MACHINE")
}

func TestPlanJobEndpointRejectsMissingFields(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/jobs", gin.H{"finished_qty": 1000})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetJobEndpointNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMachinesAndStatsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/machines", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SM102-CX FOUR COLOUR")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "revenue_target")
}
