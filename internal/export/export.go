// Package export renders a tracker session as a printable sheet.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/session"
)

// Format is an export output format.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPDF, FormatMarkdown, FormatHTML:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported export format %q (supported: pdf, md, html)", s)
}

// Document is everything an exported sheet shows.
type Document struct {
	Title    string
	Start    calendar.Date
	End      calendar.Date
	WeekMode calendar.WeekMode
	Months   []session.MonthView
	Summary  session.Summary
}

// FromSession captures the session's current state.
func FromSession(title string, s *session.Session) Document {
	e := s.Engine()
	return Document{
		Title:    title,
		Start:    e.Start(),
		End:      e.End(),
		WeekMode: e.WeekMode(),
		Months:   s.Snapshot(),
		Summary:  s.Summary(),
	}
}

// Range returns "Mar 11, 2025 - Jun 26, 2025".
func (d Document) Range() string {
	const layout = "Jan 2, 2006"
	return d.Start.Time().Format(layout) + " - " + d.End.Time().Format(layout)
}

// Render produces the document in the given format.
func Render(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatPDF:
		return PDF(doc)
	case FormatMarkdown:
		return []byte(Markdown(doc)), nil
	case FormatHTML:
		return HTML(doc)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// FileName returns a default output name such as
// "tracker-calendar-2025-03-11-2025-06-26.pdf".
func FileName(doc Document, format Format) string {
	slug := strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(doc.Title), "-"), "-")
	if slug == "" {
		slug = "tracker"
	}
	return fmt.Sprintf("%s-%s-%s.%s", slug, doc.Start, doc.End, format)
}
