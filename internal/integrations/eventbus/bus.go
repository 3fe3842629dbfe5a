package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// conn часть *nats.Conn, которой пользуется шина
type conn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// NATSBus публикация событий бронирований в NATS
type NATSBus struct {
	conn   conn
	prefix string
	log    Logger
}

// Connect подключается к NATS. Переподключение бесконечное, события во время разрыва буферизуются клиентом
func Connect(url, clientName, subjectPrefix string, log Logger) (*NATSBus, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("EventBus: disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("EventBus: reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	log.Info("EventBus: connected to %s", nc.ConnectedUrl())
	return newBus(nc, subjectPrefix, log), nil
}

func newBus(c conn, prefix string, log Logger) *NATSBus {
	return &NATSBus{conn: c, prefix: strings.Trim(prefix, "."), log: log}
}

// Publish сериализует data в JSON и публикует в prefix.subject
func (b *NATSBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, subject, err)
	}

	full := b.subject(subject)
	if err := b.conn.Publish(full, payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, full, err)
	}
	if err := b.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("%w: flush %s: %v", ErrPublish, full, err)
	}

	return nil
}

func (b *NATSBus) subject(subject string) string {
	if b.prefix == "" {
		return subject
	}
	return b.prefix + "." + subject
}

// Close дожидается отправки буфера и закрывает соединение
func (b *NATSBus) Close() error {
	return b.conn.Drain()
}
