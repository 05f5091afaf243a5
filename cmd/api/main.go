package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/hrportal/payroll-backend-go/internal/config"
	"github.com/hrportal/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/hrportal/payroll-backend-go/internal/handler/http"
	"github.com/hrportal/payroll-backend-go/internal/pkg/clock"
	"github.com/hrportal/payroll-backend-go/internal/pkg/sessionstore"
	"github.com/hrportal/payroll-backend-go/internal/repository/memory"
	attendanceService "github.com/hrportal/payroll-backend-go/internal/service/attendance"
	serviceAuth "github.com/hrportal/payroll-backend-go/internal/service/auth"
	complianceService "github.com/hrportal/payroll-backend-go/internal/service/compliance"
	employeeService "github.com/hrportal/payroll-backend-go/internal/service/employee"
	faqService "github.com/hrportal/payroll-backend-go/internal/service/faq"
	leaveService "github.com/hrportal/payroll-backend-go/internal/service/leave"
	payrollService "github.com/hrportal/payroll-backend-go/internal/service/payroll"
	settlementService "github.com/hrportal/payroll-backend-go/internal/service/settlement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	now := clock.System()

	employeeRepo := memory.NewEmployeeRepository(fixtures.GetEmployees())
	salaryRepo := memory.NewSalaryRepository(fixtures.GetSalaryStructures())
	leaveRepo := memory.NewLeaveRepository(fixtures.GetLeaveBalances(), fixtures.GetLeaveRequests())
	attendanceRepo := memory.NewAttendanceRepository(fixtures.GetAttendanceRecords(), fixtures.GetAttendanceSummaries())
	settlementRepo := memory.NewSettlementRepository(fixtures.GetSettlements())
	complianceRepo := memory.NewComplianceRepository(fixtures.GetComplianceRules(), fixtures.GetTaxSlabs())
	faqRepo := memory.NewFAQRepository(fixtures.GetFAQs())
	credentialRepo := memory.NewCredentialRepository(fixtures.GetDemoCredentials())
	userRepo := memory.NewUserRepository(fixtures.GetUsers())

	var sessionStore sessionstore.Store
	switch cfg.Session.Store {
	case "memory":
		sessionStore = sessionstore.NewMemoryStore()
	case "file":
		sessionStore, err = sessionstore.NewFileStore(cfg.Session.FilePath)
		if err != nil {
			log.Fatal("Failed to initialize file session store:", err)
		}
	default:
		log.Fatal("Unsupported session store: ", cfg.Session.Store)
	}

	authSvc := serviceAuth.NewAuthService(credentialRepo, userRepo, sessionStore, cfg.Session.TTL, now)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, salaryRepo, complianceRepo, cfg.Tax.Jurisdiction, cfg.Tax.FinancialYear, now)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	settlementSvc := settlementService.NewSettlementService(settlementRepo, employeeRepo, salaryRepo, leaveRepo, now)
	faqSvc := faqService.NewFAQService(faqRepo)
	complianceSvc := complianceService.NewComplianceService(complianceRepo, cfg.Tax.Jurisdiction, cfg.Tax.FinancialYear)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		authSvc,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewSettlementHandler(settlementSvc),
		appHTTP.NewFAQHandler(faqSvc),
		appHTTP.NewComplianceHandler(complianceSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
