package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pontohub/ponto-backend-go/internal/config"
	appHTTP "github.com/pontohub/ponto-backend-go/internal/handler/http"
	"github.com/pontohub/ponto-backend-go/internal/pkg/clock"
	"github.com/pontohub/ponto-backend-go/internal/pkg/cron"
	"github.com/pontohub/ponto-backend-go/internal/pkg/database"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohub/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontohub/ponto-backend-go/internal/service/auth"
	hourbankService "github.com/pontohub/ponto-backend-go/internal/service/hourbank"
	justificationService "github.com/pontohub/ponto-backend-go/internal/service/justification"
	masterService "github.com/pontohub/ponto-backend-go/internal/service/master"
	reportService "github.com/pontohub/ponto-backend-go/internal/service/report"
	timesheetService "github.com/pontohub/ponto-backend-go/internal/service/timesheet"
	userService "github.com/pontohub/ponto-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	passwordResetRepo := postgresql.NewPasswordResetRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	hourBankRepo := postgresql.NewHourBankRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	functionRepo := postgresql.NewFunctionRepository(db)
	employmentTypeRepo := postgresql.NewEmploymentTypeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.System()

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, passwordResetRepo, jwtService, clk)
	userSvc := userService.NewUserService(userRepo, departmentRepo, functionRepo, employmentTypeRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timeRecordRepo, userRepo, clk)
	hourBankSvc := hourbankService.NewHourBankService(hourBankRepo, timeRecordRepo, userRepo, clk)
	reportSvc := reportService.NewReportService(timeRecordRepo, userRepo, justificationRepo)
	justificationSvc := justificationService.NewJustificationService(justificationRepo, userRepo, clk)
	departmentSvc := masterService.NewDepartmentService(departmentRepo)
	functionSvc := masterService.NewFunctionService(functionRepo)
	employmentTypeSvc := masterService.NewEmploymentTypeService(employmentTypeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	hourBankHandler := appHTTP.NewHourBankHandler(hourBankSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	justificationHandler := appHTTP.NewJustificationHandler(justificationSvc)
	masterHandler := appHTTP.NewMasterHandler(departmentSvc, functionSvc, employmentTypeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.CORSOrigin,
		authHandler,
		userHandler,
		timesheetHandler,
		hourBankHandler,
		reportHandler,
		justificationHandler,
		masterHandler,
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("hour-bank-refresh", 24*time.Hour, func(ctx context.Context) error {
		return hourBankSvc.RecalculateAll(ctx, hourbankService.CurrentMonth(clk.Now()))
	})
	scheduler.AddJob("session-cleanup", 24*time.Hour, func(ctx context.Context) error {
		deleted, err := refreshTokenRepo.DeleteExpired(ctx, clk.Now())
		if err != nil {
			return err
		}
		if deleted > 0 {
			slog.Info("Expired sessions removed", "count", deleted)
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
