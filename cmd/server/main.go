package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"payrollms/internal/config"
	"payrollms/internal/repository/mongodb"
	"payrollms/internal/scheduler"
	"payrollms/internal/server/handlers"
	"payrollms/internal/server/router"
	attendancesvc "payrollms/internal/service/attendance"
	payrollsvc "payrollms/internal/service/payroll"
	"payrollms/pkg/clients/notify"
	"payrollms/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoClient, err := mongodb.Connect(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb connection", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	employeeRepo := mongodb.NewEmployeeRepository(mongoClient)
	attendanceRepo := mongodb.NewAttendanceRepository(mongoClient)
	holidayRepo := mongodb.NewHolidayRepository(mongoClient)
	payrollRepo := mongodb.NewPayrollRepository(mongoClient)

	attendanceSvc := attendancesvc.NewService(attendanceRepo, baseLogger.Named("svc.attendance"))

	// The webhook notifier is optional; without a URL payrolls are only persisted.
	var notifier payrollsvc.Notifier
	if cfg.Payroll.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Payroll.WebhookURL)
		baseLogger.Info("payroll webhook notifier enabled")
	}

	payrollSvc := payrollsvc.NewService(payrollRepo, employeeRepo, holidayRepo, attendanceSvc, notifier, baseLogger.Named("svc.payroll"))

	payrollHandler := handlers.NewPayrollHandler(payrollSvc, baseLogger.Named("handlers.payroll"))
	attendanceHandler := handlers.NewAttendanceHandler(attendanceSvc, baseLogger.Named("handlers.attendance"))
	masterHandler := handlers.NewMasterHandler(employeeRepo, holidayRepo, baseLogger.Named("handlers.master"))
	engine := router.New(payrollHandler, attendanceHandler, masterHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Payroll, payrollSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
