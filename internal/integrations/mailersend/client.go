package mailersend

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	ms "github.com/mailersend/mailersend-go"

	"github.com/m04kA/SMC-SchedulingService/internal/notifier"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client отправка писем через MailerSend API
type Client struct {
	client *ms.Mailersend
	from   ms.From
	log    Logger
}

// NewClient создает новый экземпляр клиента MailerSend
func NewClient(apiKey, fromName, fromEmail string, log Logger) *Client {
	return &Client{
		client: ms.NewMailersend(apiKey),
		from: ms.From{
			Name:  fromName,
			Email: fromEmail,
		},
		log: log,
	}
}

// Send отправляет письмо одному получателю
func (c *Client) Send(ctx context.Context, msg *notifier.Message) error {
	message := c.buildMessage(msg)

	resp, err := c.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: failed to send: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status=%d body=%s", ErrInvalidResponse, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	// MailerSend возвращает идентификатор в X-Message-Id
	c.log.Info("MailerSend: sent to=%s message_id=%s", msg.ToEmail, resp.Header.Get("X-Message-Id"))
	return nil
}

func (c *Client) buildMessage(msg *notifier.Message) *ms.Message {
	message := c.client.Email.NewMessage()
	message.SetFrom(c.from)
	message.SetRecipients([]ms.Recipient{{Name: msg.ToName, Email: msg.ToEmail}})
	message.SetSubject(msg.Subject)
	if strings.TrimSpace(msg.Text) != "" {
		message.SetText(msg.Text)
	}
	if strings.TrimSpace(msg.HTML) != "" {
		message.SetHTML(msg.HTML)
	}

	for _, a := range msg.Attachments {
		message.AddAttachment(ms.Attachment{
			Filename:    a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			Disposition: "attachment",
		})
	}

	return message
}
