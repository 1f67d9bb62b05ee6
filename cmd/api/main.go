package main

import (
	"fmt"
	"net/http"

	"github.com/attenda/timeclock-backend-go/internal/config"
	appHTTP "github.com/attenda/timeclock-backend-go/internal/handler/http"
	"github.com/attenda/timeclock-backend-go/internal/pkg/cron"
	"github.com/attenda/timeclock-backend-go/internal/pkg/database"
	"github.com/attenda/timeclock-backend-go/internal/pkg/jwt"
	"github.com/attenda/timeclock-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/attenda/timeclock-backend-go/internal/service/auth"
	payrollService "github.com/attenda/timeclock-backend-go/internal/service/payroll"
	punchService "github.com/attenda/timeclock-backend-go/internal/service/punch"
	reportService "github.com/attenda/timeclock-backend-go/internal/service/report"
	userService "github.com/attenda/timeclock-backend-go/internal/service/user"
	workhoursService "github.com/attenda/timeclock-backend-go/internal/service/workhours"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calculator := workhoursService.NewCalculator()
	authSvc := serviceAuth.NewAuthService(db, userRepo, jwtService, jwtRepo)
	punchSvc := punchService.NewPunchService(punchRepo)
	reportSvc := reportService.NewReportService(punchRepo, calculator)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, reportSvc)
	userSvc := userService.NewUserService(userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		punchHandler,
		reportHandler,
		payrollHandler,
		userHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewTimeclockJobs(punchRepo, calculator).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
