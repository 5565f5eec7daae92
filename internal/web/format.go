package web

import (
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"workhours/internal/hours"
)

var (
	weekdays = [...]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"}
	months   = [...]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"}
	longMon  = [...]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"}
)

// Casers are stateful, so each call gets its own.
func title(s string) string { return cases.Title(language.Dutch).String(s) }

func sprintf(format string, v float64) string {
	return message.NewPrinter(language.Dutch).Sprintf(format, v)
}

// formatHours renders 8.6 as "8,6" and 7.72 as "7,72".
func formatHours(v float64) string {
	s := sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ",")
}

// formatTotal renders totals with one decimal, like the overview cards.
func formatTotal(v float64) string {
	return sprintf("%.1f", v)
}

// formatSigned prefixes positive overtime with a plus.
func formatSigned(v float64) string {
	if v > 0 {
		return "+" + formatTotal(v)
	}
	return formatTotal(v)
}

// formatDay renders "2024-03-04" as "Maandag 4 mrt".
func formatDay(dateString string) string {
	d, err := hours.ParseDate(dateString)
	if err != nil {
		return dateString
	}
	return fmt.Sprintf("%s %d %s", title(weekdays[d.Weekday()]), d.Day(), months[d.Month()-1])
}

func periodTitle(kind hours.PeriodKind, from string) string {
	d, err := hours.ParseDate(from)
	if err != nil {
		return from
	}
	if kind == hours.Month {
		return fmt.Sprintf("%s %d", title(longMon[d.Month()-1]), d.Year())
	}
	_, w := d.ISOWeek()
	return fmt.Sprintf("Week %d", w)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"hours":   formatHours,
		"total":   formatTotal,
		"signed":  formatSigned,
		"day":     formatDay,
		"deref":   deref,
		"overPos": func(v float64) bool { return v > 0 },
	}
}
