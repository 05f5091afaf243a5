package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrportal/payroll-backend-go/internal/fixtures"
	"github.com/hrportal/payroll-backend-go/internal/pkg/clock"
	"github.com/hrportal/payroll-backend-go/internal/pkg/sessionstore"
	"github.com/hrportal/payroll-backend-go/internal/repository/memory"
	attendanceService "github.com/hrportal/payroll-backend-go/internal/service/attendance"
	authService "github.com/hrportal/payroll-backend-go/internal/service/auth"
	complianceService "github.com/hrportal/payroll-backend-go/internal/service/compliance"
	employeeService "github.com/hrportal/payroll-backend-go/internal/service/employee"
	faqService "github.com/hrportal/payroll-backend-go/internal/service/faq"
	leaveService "github.com/hrportal/payroll-backend-go/internal/service/leave"
	payrollService "github.com/hrportal/payroll-backend-go/internal/service/payroll"
	settlementService "github.com/hrportal/payroll-backend-go/internal/service/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full API against the fixture dataset with a fixed
// clock, mirroring the production wiring in cmd/api.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	now := clock.Fixed(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	employeeRepo := memory.NewEmployeeRepository(fixtures.GetEmployees())
	salaryRepo := memory.NewSalaryRepository(fixtures.GetSalaryStructures())
	leaveRepo := memory.NewLeaveRepository(fixtures.GetLeaveBalances(), fixtures.GetLeaveRequests())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.GetAttendanceRecords(), fixtures.GetAttendanceSummaries())
	settlementRepo := memory.NewSettlementRepository(fixtures.GetSettlements())
	complianceRepo := memory.NewComplianceRepository(fixtures.GetComplianceRules(), fixtures.GetTaxSlabs())
	faqRepo := memory.NewFAQRepository(fixtures.GetFAQs())
	credentialRepo := memory.NewCredentialRepository(fixtures.GetDemoCredentials())
	userRepo := memory.NewUserRepository(fixtures.GetUsers())

	authSvc := authService.NewAuthService(credentialRepo, userRepo, sessionstore.NewMemoryStore(), authService.DefaultSessionTTL, now)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, salaryRepo, complianceRepo, "India", "2025-26", now)
	settlementSvc := settlementService.NewSettlementService(settlementRepo, employeeRepo, salaryRepo, leaveRepo, now)

	return NewRouter(
		"test",
		"http://localhost:3000",
		authSvc,
		NewAuthHandler(authSvc),
		NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		NewPayrollHandler(payrollSvc),
		NewLeaveHandler(leaveService.NewLeaveService(leaveRepo, attendanceRepo)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo)),
		NewSettlementHandler(settlementSvc),
		NewFAQHandler(faqService.NewFAQService(faqRepo)),
		NewComplianceHandler(complianceService.NewComplianceService(complianceRepo, "India", "2025-26")),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func loginAs(t *testing.T, router http.Handler, email, password string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("login and me", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		user := data["user"].(map[string]interface{})
		assert.Equal(t, "EMPLOYEE", user["id"])
		assert.Equal(t, "employee", user["role"])
	})

	t.Run("login rejects bad credentials", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "employee@company.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login validates the payload", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email": "not-an-email",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("me without a session", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("logout ends the session", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh returns a session payload", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
	})
}

func TestEmployeeEndpoints(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("get employee", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "John", data["first_name"])
		assert.Equal(t, "Engineering", data["department"])
	})

	t.Run("unknown employee is 404", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("listing is admin only", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin can list", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "admin@company.com", "admin123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 6)
	})
}

func TestUserDirectoryEndpoint(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/users", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin can list the directory", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "admin@company.com", "admin123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 3)
	})
}

func TestPayslipEndpoint(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "employee@company.com", "password123")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001/salary?month=2025-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "155000", data["gross_salary"])
	assert.Equal(t, "142800", data["net_salary"])
	assert.Equal(t, "235500", data["annual_income_tax"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001/salary?month=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveAndAttendanceEndpoints(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "employee@company.com", "password123")

	t.Run("leave balances", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001/leave-balances", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 3)
	})

	t.Run("attendance records for a month", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001/attendance?month=2025-01", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 10)
	})

	t.Run("attendance summary", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001/attendance/summary?month=2025-01", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, 22.0, data["total_working_days"])
	})

	t.Run("missing summary is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/EMP001/attendance/summary?month=2024-12", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFAQAndComplianceEndpoints(t *testing.T) {
	router := newTestRouter(t)
	loginAs(t, router, "employee@company.com", "password123")

	t.Run("faqs filtered by category", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/faqs/?category=Salary", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 3)
	})

	t.Run("faq categories", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/faqs/categories", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 4)
	})

	t.Run("compliance rules", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/compliance/rules?type=deduction", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 3)
	})

	t.Run("tax slab", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/compliance/tax-slab", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "India", data["jurisdiction"])
	})
}

func TestSettlementEndpoints(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "employee@company.com", "password123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/settlements/", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("full lifecycle over the API", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "admin@company.com", "admin123")

		rec := doJSON(t, router, http.MethodPost, "/api/v1/settlements/calculate", map[string]interface{}{
			"employee_id": "EMP006",
			"exit_date":   "2025-12-31",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "SETL001", data["id"])
		assert.Equal(t, "calculated", data["status"])
		assert.Equal(t, "ADMIN", data["calculated_by"])

		rec = doJSON(t, router, http.MethodPost, "/api/v1/settlements/SETL001/approve", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/settlements/SETL001/pay", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// Paid is terminal.
		rec = doJSON(t, router, http.MethodPost, "/api/v1/settlements/SETL001/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("calculate validates the payload", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "admin@company.com", "admin123")

		rec := doJSON(t, router, http.MethodPost, "/api/v1/settlements/calculate", map[string]interface{}{
			"exit_date": "not-a-date",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("status filter", func(t *testing.T) {
		router := newTestRouter(t)
		loginAs(t, router, "admin@company.com", "admin123")

		rec := doJSON(t, router, http.MethodGet, "/api/v1/settlements/?status=pending", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].([]interface{})
		assert.Len(t, data, 1)
	})
}
