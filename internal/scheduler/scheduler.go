package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"payrollms/internal/config"
	"payrollms/internal/service/payroll"
)

// Scheduler runs the monthly batch payroll generation. On each tick it
// generates the previous month's payroll for every active employee;
// employees already processed for that month are skipped.
type Scheduler struct {
	cron       *cron.Cron
	payrollSvc *payroll.Service
	cfg        config.PayrollConfig
	logger     *zap.Logger
	now        func() time.Time
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.PayrollConfig, payrollSvc *payroll.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(loc)),
		payrollSvc: payrollSvc,
		cfg:        cfg,
		logger:     logger,
		now:        func() time.Time { return time.Now().In(loc) },
	}
}

// Start registers the batch run and starts the cron loop. An empty
// schedule disables batching entirely.
func (s *Scheduler) Start() {
	if s.cfg.CronSchedule == "" {
		s.logger.Info("payroll batch schedule empty, scheduler disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runMonthlyPayroll); err != nil {
		s.logger.Error("failed to schedule monthly payroll run", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runMonthlyPayroll() {
	// The run fires early in a month and settles the month before it.
	prev := s.now().AddDate(0, -1, 0)
	month, year := int(prev.Month()), prev.Year()

	s.logger.Info("starting monthly payroll run", zap.Int("month", month), zap.Int("year", year))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	generated, skipped, failed, err := s.payrollSvc.GenerateForPeriod(ctx, month, year)
	if err != nil {
		s.logger.Error("monthly payroll run failed", zap.Error(err))
		return
	}

	s.logger.Info("monthly payroll run finished",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("generated", generated),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed))
}
