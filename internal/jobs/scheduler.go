package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-SchedulingService/internal/usecase/send_reminders"
)

// DefaultReminderSchedule расписание прохода напоминаний по умолчанию
const DefaultReminderSchedule = "@every 5m"

// ErrInvalidSchedule некорректное cron выражение
var ErrInvalidSchedule = errors.New("jobs: invalid schedule")

// Scheduler фоновые задачи сервиса поверх robfig/cron
type Scheduler struct {
	cron   *cron.Cron
	logger Logger
}

// NewScheduler создает планировщик. Задачи не перекрываются: следующий запуск
// пропускается, пока предыдущий не завершился
func NewScheduler(logger Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// AddReminders регистрирует проход напоминаний
// timeout ограничивает один проход
func (s *Scheduler) AddReminders(spec string, uc ReminderUseCase, lead, timeout time.Duration) error {
	if spec == "" {
		spec = DefaultReminderSchedule
	}

	job := &reminderJob{uc: uc, lead: lead, timeout: timeout, logger: s.logger}
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, spec, err)
	}

	s.logger.Info("Scheduler: reminders registered, schedule=%s, lead=%s", spec, lead)
	return nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач, не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type reminderJob struct {
	uc      ReminderUseCase
	lead    time.Duration
	timeout time.Duration
	logger  Logger
}

// Run один проход, ошибки только логируются
func (j *reminderJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	if _, err := j.uc.Execute(ctx, &send_reminders.Request{Lead: j.lead}); err != nil {
		j.logger.Error("Scheduler: reminders run failed: %v", err)
	}
}

// cronLogger адаптер cron.Logger к printf логгеру сервиса
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	// Служебные сообщения cron о каждом запуске не нужны в логе
	if msg == "skip" {
		l.logger.Warn("Scheduler: previous run still in progress, skipping")
	}
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("Scheduler: %s: %v %s", msg, err, formatKeysAndValues(keysAndValues))
}

func formatKeysAndValues(keysAndValues []interface{}) string {
	parts := make([]string, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	return strings.Join(parts, " ")
}
