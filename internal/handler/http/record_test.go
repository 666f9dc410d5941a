package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/domain/record"
	"github.com/becom/pointage-backend-go/internal/pkg/archive"
	"github.com/becom/pointage-backend-go/internal/pkg/jwt"
	"github.com/becom/pointage-backend-go/internal/pkg/report"
	"github.com/becom/pointage-backend-go/internal/pkg/storage"
	"github.com/becom/pointage-backend-go/internal/repository/memory"
	employeeService "github.com/becom/pointage-backend-go/internal/service/employee"
	exportService "github.com/becom/pointage-backend-go/internal/service/export"
	recordService "github.com/becom/pointage-backend-go/internal/service/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

type testApp struct {
	router       http.Handler
	jwtService   jwt.Service
	store        *memory.Store
	recordRepo   record.RecordRepository
	employeeRepo employee.EmployeeRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store := memory.NewStore()
	recordRepo := memory.NewRecordRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)

	fileStorage, err := storage.NewLocalStorage(t.TempDir(), "/api/v1/exports/files")
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(testSecret, "1h")
	recordSvc := recordService.NewRecordService(recordRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(nil, employeeRepo)
	exportSvc := exportService.NewExportService(recordRepo, employeeRepo, report.NewPDFRenderer(), archive.NewZipBundler(), fileStorage)

	router := NewRouter(
		jwtSvc,
		NewRecordHandler(recordSvc),
		NewEmployeeHandler(employeeSvc),
		NewExportHandler(exportSvc, fileStorage),
	)

	return &testApp{
		router:       router,
		jwtService:   jwtSvc,
		store:        store,
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
	}
}

func (a *testApp) seedEmployee(t *testing.T, id string, role employee.Role) string {
	t.Helper()
	_, err := a.employeeRepo.Create(context.Background(), employee.Employee{
		ID:        id,
		FirstName: "Jean",
		LastName:  "Dupont",
		Role:      role,
	})
	require.NoError(t, err)

	token, _, err := a.jwtService.GenerateToken(id, role)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func TestRecordEndpoints_RequireToken(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/records", "", map[string]string{"day": "2025-03-10", "type": "day"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/v1/records/my", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecordEndpoints_AdminOnly(t *testing.T) {
	app := newTestApp(t)
	token := app.seedEmployee(t, "dupont.jean", employee.RoleEmployee)

	rec := app.do(t, http.MethodGet, "/api/v1/records/pending", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/v1/exports", token, map[string]int{"year": 2025, "month": 3})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateRecord(t *testing.T) {
	app := newTestApp(t)
	token := app.seedEmployee(t, "dupont.jean", employee.RoleEmployee)

	rec := app.do(t, http.MethodPost, "/api/v1/records", token, map[string]string{"day": "2025-03-10", "type": "day"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created record.RecordResponse
	decodeData(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "dupont.jean", created.EmployeeID)
	assert.Equal(t, "2025-03-10", created.Day)
	assert.Equal(t, "pending", created.Status)

	// Same day again conflicts
	rec = app.do(t, http.MethodPost, "/api/v1/records", token, map[string]string{"day": "2025-03-10", "type": "night"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Bad payload is a validation error
	rec = app.do(t, http.MethodPost, "/api/v1/records", token, map[string]string{"day": "2025-03-10", "type": "overtime"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetMyRecords(t *testing.T) {
	app := newTestApp(t)
	token := app.seedEmployee(t, "dupont.jean", employee.RoleEmployee)

	for _, d := range []string{"2025-03-02", "2025-03-10"} {
		rec := app.do(t, http.MethodPost, "/api/v1/records", token, map[string]string{"day": d, "type": "day"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := app.do(t, http.MethodGet, "/api/v1/records/my?from=2025-03-01&to=2025-03-31", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list record.ListRecordsResponse
	decodeData(t, rec, &list)
	require.Len(t, list.Records, 2)
	assert.Equal(t, "2025-03-02", list.Records[0].Day)
	assert.Equal(t, "2025-03-10", list.Records[1].Day)
}

func TestDecisionFlow(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.seedEmployee(t, "dupont.jean", employee.RoleEmployee)
	adminToken := app.seedEmployee(t, "admin.admin", employee.RoleAdmin)

	rec := app.do(t, http.MethodPost, "/api/v1/records", employeeToken, map[string]string{"day": "2025-03-10", "type": "day"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created record.RecordResponse
	decodeData(t, rec, &created)

	rec = app.do(t, http.MethodGet, "/api/v1/records/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending record.ListRecordsResponse
	decodeData(t, rec, &pending)
	require.Len(t, pending.Records, 1)

	rec = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/records/%s/approve", created.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var approved record.RecordResponse
	decodeData(t, rec, &approved)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, "admin.admin", *approved.DecidedBy)

	// Decisions are terminal
	rec = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/records/%s/reject", created.ID), adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The pending queue drains
	rec = app.do(t, http.MethodGet, "/api/v1/records/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var drained record.ListRecordsResponse
	decodeData(t, rec, &drained)
	assert.Empty(t, drained.Records)
}

func TestDeleteRecord(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.seedEmployee(t, "dupont.jean", employee.RoleEmployee)
	adminToken := app.seedEmployee(t, "admin.admin", employee.RoleAdmin)

	rec := app.do(t, http.MethodPost, "/api/v1/records", employeeToken, map[string]string{"day": "2025-03-10", "type": "day"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created record.RecordResponse
	decodeData(t, rec, &created)

	rec = app.do(t, http.MethodDelete, "/api/v1/records/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/v1/records/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateExport(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.seedEmployee(t, "dupont.jean", employee.RoleEmployee)
	adminToken := app.seedEmployee(t, "admin.admin", employee.RoleAdmin)

	rec := app.do(t, http.MethodPost, "/api/v1/records", employeeToken, map[string]string{"day": "2025-03-10", "type": "day"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created record.RecordResponse
	decodeData(t, rec, &created)

	// Nothing approved yet, the export has nothing to publish
	rec = app.do(t, http.MethodPost, "/api/v1/exports", adminToken, map[string]int{"year": 2025, "month": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/records/%s/approve", created.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/v1/exports", adminToken, map[string]int{"year": 2025, "month": 3})
	require.Equal(t, http.StatusCreated, rec.Code)

	var result struct {
		ArchivePath string   `json:"archive_path"`
		ArchiveURL  string   `json:"archive_url"`
		Employees   []string `json:"employees"`
	}
	decodeData(t, rec, &result)
	assert.Equal(t, "2025-03/recap-2025-03.zip", result.ArchivePath)
	assert.Equal(t, []string{"dupont.jean"}, result.Employees)
}

func TestDownloadExport(t *testing.T) {
	app := newTestApp(t)
	employeeToken := app.seedEmployee(t, "dupont.jean", employee.RoleEmployee)
	adminToken := app.seedEmployee(t, "admin.admin", employee.RoleAdmin)

	rec := app.do(t, http.MethodPost, "/api/v1/records", employeeToken, map[string]string{"day": "2025-03-10", "type": "day"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created record.RecordResponse
	decodeData(t, rec, &created)

	rec = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/records/%s/approve", created.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/v1/exports", adminToken, map[string]int{"year": 2025, "month": 3})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/v1/exports/files/2025-03/recap-2025-03.zip", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "recap-2025-03.zip")
	// Zip local file header magic
	body := rec.Body.Bytes()
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte{'P', 'K', 0x03, 0x04}, body[:4])

	rec = app.do(t, http.MethodGet, "/api/v1/exports/files/2025-04/recap-2025-04.zip", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEmployee(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.seedEmployee(t, "admin.admin", employee.RoleAdmin)

	rec := app.do(t, http.MethodPost, "/api/v1/employees", adminToken, map[string]string{
		"first_name": "Claire",
		"last_name":  "Martin",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created employee.EmployeeResponse
	decodeData(t, rec, &created)
	assert.Equal(t, "martin.claire", created.ID)
	assert.Equal(t, "employee", created.Role)

	// Homonyms collide on the generated login
	rec = app.do(t, http.MethodPost, "/api/v1/employees", adminToken, map[string]string{
		"first_name": "Claire",
		"last_name":  "Martin",
		"password":   "another-pass",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}
