package main

import (
	"fmt"
	"net/http"

	"github.com/worknest-hq/worknest-backend-go/internal/config"
	appHTTP "github.com/worknest-hq/worknest-backend-go/internal/handler/http"
	"github.com/worknest-hq/worknest-backend-go/internal/pkg/database"
	"github.com/worknest-hq/worknest-backend-go/internal/repository/postgresql"
	accountService "github.com/worknest-hq/worknest-backend-go/internal/service/account"
	announcementService "github.com/worknest-hq/worknest-backend-go/internal/service/announcement"
	attendanceService "github.com/worknest-hq/worknest-backend-go/internal/service/attendance"
	leaveService "github.com/worknest-hq/worknest-backend-go/internal/service/leave"
	payrollService "github.com/worknest-hq/worknest-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	accountSvc := accountService.NewAccountService(db, userRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, cfg.Leave.EntitlementDays)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)

	accountHandler := appHTTP.NewAccountHandler(accountSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	directoryHandler := appHTTP.NewDirectoryHandler(employeeRepo, departmentRepo)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		accountHandler,
		attendanceHandler,
		leaveHandler,
		directoryHandler,
		payrollHandler,
		announcementHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
