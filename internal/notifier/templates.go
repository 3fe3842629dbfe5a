package notifier

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

// ErrTemplate ошибка разбора или рендеринга шаблона
var ErrTemplate = errors.New("notifier: template error")

const displayTimeFormat = "Mon, 02 Jan 2006 15:04 MST"

type templateSource struct {
	Subject           string `yaml:"subject"`
	HostSubjectPrefix string `yaml:"host_subject_prefix"`
	Text              string `yaml:"text"`
	HTML              string `yaml:"html"`
}

type template struct {
	subject           *texttemplate.Template
	hostSubjectPrefix string
	text              *texttemplate.Template
	html              *htmltemplate.Template
}

// Templates шаблоны писем по типу уведомления
type Templates struct {
	byKind map[Kind]*template
}

// LoadTemplates разбирает YAML с шаблонами; пустой src означает встроенные шаблоны
func LoadTemplates(src []byte) (*Templates, error) {
	if len(src) == 0 {
		src = defaultTemplates
	}

	var sources map[Kind]templateSource
	if err := yaml.Unmarshal(src, &sources); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrTemplate, err)
	}

	t := &Templates{byKind: make(map[Kind]*template, len(sources))}
	for _, kind := range []Kind{KindConfirmed, KindCancelled, KindRescheduled, KindReminder} {
		source, ok := sources[kind]
		if !ok {
			return nil, fmt.Errorf("%w: missing template %q", ErrTemplate, kind)
		}

		compiled, err := compile(kind, source)
		if err != nil {
			return nil, err
		}
		t.byKind[kind] = compiled
	}

	return t, nil
}

func compile(kind Kind, source templateSource) (*template, error) {
	name := string(kind)

	subject, err := texttemplate.New(name + ".subject").Parse(source.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %s subject: %v", ErrTemplate, name, err)
	}
	text, err := texttemplate.New(name + ".text").Parse(source.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s text: %v", ErrTemplate, name, err)
	}
	html, err := htmltemplate.New(name + ".html").Parse(source.HTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %s html: %v", ErrTemplate, name, err)
	}

	return &template{
		subject:           subject,
		hostSubjectPrefix: source.HostSubjectPrefix,
		text:              text,
		html:              html,
	}, nil
}

// templateData данные для рендеринга, время в зоне хоста
type templateData struct {
	UID             string
	EventTitle      string
	BookerName      string
	HostName        string
	RecipientName   string
	CounterpartName string
	Start           string
	End             string
	PreviousStart   string
	PreviousEnd     string
	Notes           string
}

func newTemplateData(j job, toHost bool) templateData {
	d := j.details

	loc, err := time.LoadLocation(d.HostTimezone)
	if err != nil || d.HostTimezone == "" {
		loc = time.UTC
	}

	data := templateData{
		UID:        d.UID,
		EventTitle: d.EventTitle,
		BookerName: d.BookerName,
		HostName:   d.HostName,
		Start:      d.StartTime.In(loc).Format(displayTimeFormat),
		End:        d.EndTime.In(loc).Format(displayTimeFormat),
		Notes:      d.Notes,
	}

	if toHost {
		data.RecipientName, data.CounterpartName = d.HostName, d.BookerName
	} else {
		data.RecipientName, data.CounterpartName = d.BookerName, d.HostName
	}

	if j.previous != nil {
		data.PreviousStart = j.previous.Start.In(loc).Format(displayTimeFormat)
		data.PreviousEnd = j.previous.End.In(loc).Format(displayTimeFormat)
	}

	return data
}

// render собирает письмо одному получателю
func (t *Templates) render(j job, toHost bool) (*Message, error) {
	tpl, ok := t.byKind[j.kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrTemplate, j.kind)
	}

	data := newTemplateData(j, toHost)

	var subject, text, html bytes.Buffer
	if err := tpl.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("%w: %s subject: %v", ErrTemplate, j.kind, err)
	}
	if err := tpl.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("%w: %s text: %v", ErrTemplate, j.kind, err)
	}
	if err := tpl.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("%w: %s html: %v", ErrTemplate, j.kind, err)
	}

	msg := &Message{
		Subject: subject.String(),
		Text:    text.String(),
		HTML:    html.String(),
	}
	if toHost {
		msg.ToEmail, msg.ToName = j.details.HostEmail, j.details.HostName
		msg.Subject = tpl.hostSubjectPrefix + msg.Subject
	} else {
		msg.ToEmail, msg.ToName = j.details.BookerEmail, j.details.BookerName
	}

	return msg, nil
}
