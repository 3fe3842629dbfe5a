package notifier

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const (
	defaultWorkers   = 2
	defaultQueueSize = 100
	defaultTimeout   = 30 * time.Second

	inviteFilename = "invite.ics"
)

// Config параметры очереди
type Config struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration // на одно уведомление целиком
}

// Notifier асинхронная отправка уведомлений о бронированиях
//
// Notify* не блокируются: уведомление кладется в ограниченную очередь,
// при переполнении отбрасывается с предупреждением. Ошибки доставки
// только логируются и считаются в метриках.
type Notifier struct {
	cfg       Config
	mailer    Mailer
	publisher Publisher
	invites   InviteBuilder
	templates *Templates
	metrics   Metrics
	logger    Logger
	now       func() time.Time

	queue   chan job
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

// New создает нотификатор. publisher может быть nil, если шина выключена
func New(
	cfg Config,
	mailer Mailer,
	publisher Publisher,
	invites InviteBuilder,
	templates *Templates,
	metrics Metrics,
	logger Logger,
) *Notifier {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Notifier{
		cfg:       cfg,
		mailer:    mailer,
		publisher: publisher,
		invites:   invites,
		templates: templates,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		queue:     make(chan job, cfg.QueueSize),
	}
}

// Start запускает воркеры
func (n *Notifier) Start() {
	for i := 0; i < n.cfg.Workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	n.logger.Info("Notifier: started %d workers, queue size %d", n.cfg.Workers, n.cfg.QueueSize)
}

// Stop закрывает очередь и ждет, пока воркеры разберут оставшиеся уведомления
func (n *Notifier) Stop(ctx context.Context) error {
	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return nil
	}
	n.stopped = true
	close(n.queue)
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.logger.Info("Notifier: stopped")
		return nil
	case <-ctx.Done():
		n.logger.Warn("Notifier: stop timed out, %d notifications left in queue", len(n.queue))
		return ctx.Err()
	}
}

// NotifyConfirmed уведомление о новом бронировании
func (n *Notifier) NotifyConfirmed(details *domain.BookingDetails) {
	n.enqueue(job{kind: KindConfirmed, details: details})
}

// NotifyCancelled уведомление об отмене
func (n *Notifier) NotifyCancelled(details *domain.BookingDetails) {
	n.enqueue(job{kind: KindCancelled, details: details})
}

// NotifyRescheduled уведомление о переносе, previous - прежний интервал
func (n *Notifier) NotifyRescheduled(details *domain.BookingDetails, previous domain.Interval) {
	n.enqueue(job{kind: KindRescheduled, details: details, previous: &previous})
}

// NotifyReminder напоминание о предстоящей встрече
func (n *Notifier) NotifyReminder(details *domain.BookingDetails) {
	n.enqueue(job{kind: KindReminder, details: details})
}

func (n *Notifier) enqueue(j job) {
	if j.details == nil {
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.stopped {
		n.logger.Warn("Notifier: %s notice for booking uid=%s dropped, notifier stopped", j.kind, j.details.UID)
		n.metrics.IncNotification(string(j.kind), "dropped")
		return
	}

	select {
	case n.queue <- j:
	default:
		n.logger.Warn("Notifier: queue full, %s notice for booking uid=%s dropped", j.kind, j.details.UID)
		n.metrics.IncNotification(string(j.kind), "dropped")
	}
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for j := range n.queue {
		n.process(j)
	}
}

// process доставляет одно уведомление: письма букеру и хосту, затем событие в шину
func (n *Notifier) process(j job) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Notifier: panic while processing %s notice for uid=%s: %v", j.kind, j.details.UID, r)
			n.metrics.IncNotification(string(j.kind), "failed")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), n.cfg.Timeout)
	defer cancel()

	var attachments []Attachment
	if j.kind != KindReminder && n.invites != nil {
		attachments = []Attachment{{
			Filename:    inviteFilename,
			ContentType: calendar.ContentType,
			Content:     []byte(n.invites.Invite(j.details)),
		}}
	}

	toHost := []bool{false}
	if j.details.HostEmail != "" {
		toHost = append(toHost, true)
	}

	for _, host := range toHost {
		if err := n.send(ctx, j, host, attachments); err != nil {
			n.logger.Error("Notifier: failed to send %s notice for uid=%s: %v", j.kind, j.details.UID, err)
			n.metrics.IncNotification(string(j.kind), "failed")
			continue
		}
		n.metrics.IncNotification(string(j.kind), "sent")
	}

	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, j.kind.Subject(), newBookingEvent(j, n.now())); err != nil {
		n.logger.Error("Notifier: failed to publish %s event for uid=%s: %v", j.kind, j.details.UID, err)
		n.metrics.IncNotification(string(j.kind), "publish_failed")
	}
}

func (n *Notifier) send(ctx context.Context, j job, toHost bool, attachments []Attachment) error {
	msg, err := n.templates.render(j, toHost)
	if err != nil {
		return err
	}
	if msg.ToEmail == "" {
		return errors.New("notifier: empty recipient email")
	}
	msg.Attachments = attachments

	return n.mailer.Send(ctx, msg)
}
