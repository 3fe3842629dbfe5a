package notifier

import "context"

// LogMailer пишет письма в лог вместо отправки, используется без настроенного провайдера
type LogMailer struct {
	logger Logger
}

// NewLogMailer создает LogMailer
func NewLogMailer(logger Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send логирует письмо
func (m *LogMailer) Send(_ context.Context, msg *Message) error {
	m.logger.Info("Mail: to=%s subject=%q attachments=%d", msg.ToEmail, msg.Subject, len(msg.Attachments))
	return nil
}
