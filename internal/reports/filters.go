// Package reports holds the admin screens' client-side filters. They work on
// collections already fetched into memory and never trigger network calls.
package reports

import (
	"strings"
	"time"

	"github.com/laes18/go-restaurant-pos/internal/money"
	"github.com/laes18/go-restaurant-pos/internal/pos"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// OrderFilter narrows an order list. Zero fields are ignored. From/To are
// date-only boundaries; To includes the entire day it names.
type OrderFilter struct {
	Status string
	Table  string
	From   time.Time
	To     time.Time
}

func FilterOrders(orders []pos.Order, f OrderFilter) []pos.Order {
	var from, toExcl time.Time
	if !f.From.IsZero() {
		from = startOfDay(f.From)
	}
	if !f.To.IsZero() {
		toExcl = startOfDay(f.To).AddDate(0, 0, 1)
	}

	out := make([]pos.Order, 0, len(orders))
	for _, o := range orders {
		if f.Status != "" && f.Status != StatusAll && string(o.Status) != f.Status {
			continue
		}
		if f.Table != "" && !strings.Contains(o.Table, f.Table) {
			continue
		}
		if !from.IsZero() && o.CreatedAt.Before(from) {
			continue
		}
		if !toExcl.IsZero() && !o.CreatedAt.Before(toExcl) {
			continue
		}
		out = append(out, o)
	}
	return out
}

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// FilterPayments keeps the payments inside the period containing now:
// day = same calendar day, week = the Sunday-to-Saturday window, month =
// same calendar month and year.
func FilterPayments(payments []pos.Payment, p Period, now time.Time) []pos.Payment {
	out := make([]pos.Payment, 0, len(payments))
	for _, pay := range payments {
		if inPeriod(pay.PaidAt, p, now) {
			out = append(out, pay)
		}
	}
	return out
}

// Total is the sum of the filtered set ("total to date" on the screen).
func Total(payments []pos.Payment) money.Cents {
	var t money.Cents
	for _, p := range payments {
		t += p.Total
	}
	return t
}

func inPeriod(at time.Time, p Period, now time.Time) bool {
	switch p {
	case PeriodDay:
		y1, m1, d1 := at.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodWeek:
		start, end := weekWindow(now)
		return !at.Before(start) && at.Before(end)
	case PeriodMonth:
		y1, m1, _ := at.Date()
		y2, m2, _ := now.Date()
		return y1 == y2 && m1 == m2
	}
	return false
}

// weekWindow returns [Sunday 00:00, next Sunday 00:00) containing now.
func weekWindow(now time.Time) (time.Time, time.Time) {
	start := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
