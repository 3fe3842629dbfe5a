package smtp

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/notifier"
)

// Client отправка писем через SMTP сервер (Mailpit локально, relay в проде)
type Client struct {
	addr string
	host string
	from mail.Address
	auth smtp.Auth

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewClient создает SMTP клиента. Пустой username означает отправку без AUTH
func NewClient(host string, port int, username, password, fromName, fromEmail string) *Client {
	host = strings.TrimSpace(host)

	c := &Client{
		addr:     fmt.Sprintf("%s:%d", host, port),
		host:     host,
		from:     mail.Address{Name: fromName, Address: strings.TrimSpace(fromEmail)},
		sendMail: smtp.SendMail,
	}
	if username != "" {
		c.auth = smtp.PlainAuth("", username, password, host)
	}
	return c
}

// Send отправляет письмо одному получателю
// net/smtp не принимает контекст, отмена проверяется до начала отправки
func (c *Client) Send(ctx context.Context, msg *notifier.Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	to := strings.TrimSpace(msg.ToEmail)
	if to == "" {
		return fmt.Errorf("%w: empty recipient email", ErrInvalidMessage)
	}

	body, err := c.build(msg)
	if err != nil {
		return err
	}

	if err := c.sendMail(c.addr, c.auth, c.from.Address, []string{to}, body); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}

// build собирает MIME письмо: multipart/mixed с multipart/alternative (text + html) и вложениями
func (c *Client) build(msg *notifier.Message) ([]byte, error) {
	var buf bytes.Buffer

	to := mail.Address{Name: msg.ToName, Address: strings.TrimSpace(msg.ToEmail)}
	mixed := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", c.from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", to.String())
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", mixed.Boundary())

	// Тело письма
	var alt bytes.Buffer
	altWriter := multipart.NewWriter(&alt)
	if err := writePart(altWriter, "text/plain; charset=utf-8", msg.Text); err != nil {
		return nil, err
	}
	if strings.TrimSpace(msg.HTML) != "" {
		if err := writePart(altWriter, "text/html; charset=utf-8", msg.HTML); err != nil {
			return nil, err
		}
	}
	if err := altWriter.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	bodyPart, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"multipart/alternative; boundary=" + altWriter.Boundary()},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if _, err := bodyPart.Write(alt.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	// Вложения
	for _, a := range msg.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		part, err := mixed.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {contentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename})},
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
		if _, err := part.Write(wrapBase64(a.Content)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
	}

	if err := mixed.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	return buf.Bytes(), nil
}

func writePart(w *multipart.Writer, contentType, content string) error {
	part, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {contentType}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return nil
}

// wrapBase64 base64 с переносом строк по 76 символов (RFC 2045)
func wrapBase64(content []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(content)

	var buf bytes.Buffer
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	return buf.Bytes()
}
