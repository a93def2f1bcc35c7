package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nomina-ops/nomina-backend-go/internal/config"
	"github.com/nomina-ops/nomina-backend-go/internal/domain/company"
	appHTTP "github.com/nomina-ops/nomina-backend-go/internal/handler/http"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/database"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/jwt"
	"github.com/nomina-ops/nomina-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/nomina-ops/nomina-backend-go/internal/service/auth"
	serviceCompany "github.com/nomina-ops/nomina-backend-go/internal/service/company"
	"github.com/nomina-ops/nomina-backend-go/internal/service/deduction"
	payrollService "github.com/nomina-ops/nomina-backend-go/internal/service/payroll"
	"github.com/nomina-ops/nomina-backend-go/internal/service/period"
	shiftService "github.com/nomina-ops/nomina-backend-go/internal/service/shift"
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
	companyRepo := postgresql.NewCompanyRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	periodCalc := period.NewCalculator()
	rateResolver := payrollService.NewRateResolver(company.Rates{
		FullTimeRate:   cfg.Payroll.DefaultFullTimeRate,
		PartTimeRate:   cfg.Payroll.DefaultPartTimeRate,
		BaseHourlyRate: cfg.Payroll.DefaultBaseHourlyRate,
	})
	ledger := deduction.NewLedger(deduction.NewRealClock(), cfg.Payroll.DeductionSettleWindow)

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService)
	companySvc := serviceCompany.NewCompanyService(companyRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo)
	payrollSvc := payrollService.NewPayrollService(shiftRepo, companyRepo, ledger, periodCalc, rateResolver)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	deductionHandler := appHTTP.NewDeductionHandler(ledger)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		shiftHandler,
		payrollHandler,
		deductionHandler,
		companyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	// Close the ledger before exit so no settle timers fire mid-shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ledger.Close()
	if err := server.Close(); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
