package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"eventpulse/internal/domain"
)

// MergeSources concatenates external and local canonical events, external
// first. Cross-source de-duplication is intentionally not attempted.
func MergeSources(external, local []domain.Event) []domain.Event {
	out := make([]domain.Event, 0, len(external)+len(local))
	out = append(out, external...)
	out = append(out, local...)
	return out
}

// RelatedEvents returns up to limit events from pool that share at least one
// tag with target, excluding target itself. Pool order is preserved and no
// weighting by overlap count is applied.
func RelatedEvents(target domain.Event, pool []domain.Event, limit int) []domain.Event {
	var out []domain.Event
	for _, e := range pool {
		if e.ID == target.ID {
			continue
		}
		if !sharesTag(target.Tags, e.Tags) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

func sharesTag(a, b []string) bool {
	for _, t := range b {
		for _, u := range a {
			if t == u {
				return true
			}
		}
	}
	return false
}

// SortEventsByDate returns a new slice sorted ascending by start time.
// Events with unparsable start times sort last; ties keep their input order.
func SortEventsByDate(events []domain.Event) []domain.Event {
	out := append([]domain.Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := domain.ParseEventTime(out[i].StartAt)
		tj, okj := domain.ParseEventTime(out[j].StartAt)
		if !oki {
			return false
		}
		if !okj {
			return true
		}
		return ti.Before(tj)
	})
	return out
}

// FilterEventsByDateRange keeps events whose start time falls within
// [start, end] inclusive. Unparsable start times never match.
func FilterEventsByDateRange(events []domain.Event, start, end time.Time) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		t, ok := domain.ParseEventTime(e.StartAt)
		if !ok {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingEvents returns events starting within the next days days from now.
func UpcomingEvents(events []domain.Event, days int, now time.Time) []domain.Event {
	return FilterEventsByDateRange(events, now, now.AddDate(0, 0, days))
}

// DateFormatOptions controls FormatEventDate rendering. The zero value
// renders a date-only full-month string in UTC; callers wanting the standard
// display rendering with time and year should start from DefaultDateFormat.
type DateFormatOptions struct {
	IncludeTime bool
	IncludeYear bool
	ShortMonth  bool
	Timezone    string
}

// DefaultDateFormat is the standard display rendering: full month name,
// year, and time, in UTC.
func DefaultDateFormat() DateFormatOptions {
	return DateFormatOptions{IncludeTime: true, IncludeYear: true, Timezone: "UTC"}
}

// FormatEventDate renders a timestamp for display ("July 15, 2025 at
// 6:00 PM"). Unparsable input yields the literal "Invalid Date"; that exact
// string is a display contract with existing clients, not an error path.
func FormatEventDate(value string, opts DateFormatOptions) string {
	t, ok := domain.ParseEventTime(value)
	if !ok {
		return "Invalid Date"
	}

	if opts.Timezone != "" {
		if loc, err := time.LoadLocation(opts.Timezone); err == nil {
			t = t.In(loc)
		}
	}

	month := "January"
	if opts.ShortMonth {
		month = "Jan"
	}
	datePart := t.Format(month + " 2")
	if opts.IncludeYear {
		datePart = t.Format(month + " 2, 2006")
	}
	if !opts.IncludeTime {
		return datePart
	}
	return datePart + t.Format(" at 3:04 PM")
}

// FormatEventPrice renders a price for display: "Free", "Price TBD", or
// "<CURRENCY> <amount>" with the amount in major units to two decimals.
func FormatEventPrice(price *domain.Price) string {
	if price == nil || price.IsFree {
		return "Free"
	}
	if price.Cents == nil || price.Currency == "" {
		return "Price TBD"
	}
	return fmt.Sprintf("%s %.2f", strings.ToUpper(price.Currency), float64(*price.Cents)/100)
}

// StatusOf derives the lifecycle state of an event at the given instant.
// The sold-out flag wins over all date logic; an event with an unparsable
// start time reads as upcoming unless its end time has already passed.
// Status is recomputed on every read and never stored on the record.
func StatusOf(e domain.Event, now time.Time) domain.EventStatus {
	if e.IsSoldOut {
		return domain.EventStatusSoldOut
	}

	start, startOK := domain.ParseEventTime(e.StartAt)
	end, endOK := domain.ParseEventTime(e.EndAt)

	if endOK && now.After(end) {
		return domain.EventStatusEnded
	}
	if startOK && !now.Before(start) && (!endOK || !now.After(end)) {
		return domain.EventStatusLive
	}
	return domain.EventStatusUpcoming
}

// IsEventPast reports whether the event start time is before now.
// Unparsable dates are never considered past.
func IsEventPast(value string, now time.Time) bool {
	t, ok := domain.ParseEventTime(value)
	return ok && t.Before(now)
}

// IsEventToday reports whether the event starts on the same calendar day
// as now, in now's location.
func IsEventToday(value string, now time.Time) bool {
	t, ok := domain.ParseEventTime(value)
	if !ok {
		return false
	}
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsEventSoon reports whether the event starts within the next seven days.
func IsEventSoon(value string, now time.Time) bool {
	t, ok := domain.ParseEventTime(value)
	if !ok {
		return false
	}
	diff := t.Sub(now)
	return diff >= 0 && diff <= 7*24*time.Hour
}

// RelativeTime renders the distance between now and the event start
// ("in 3 days", "2 hours ago", "now"). Unparsable input yields "Unknown".
func RelativeTime(value string, now time.Time) string {
	t, ok := domain.ParseEventTime(value)
	if !ok {
		return "Unknown"
	}
	diff := t.Sub(now)
	days := int(diff / (24 * time.Hour))
	hours := int(diff / time.Hour)
	minutes := int(diff / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("in %d %s", days, plural("day", days))
	case days < 0:
		return fmt.Sprintf("%d %s ago", -days, plural("day", -days))
	case hours > 0:
		return fmt.Sprintf("in %d %s", hours, plural("hour", hours))
	case hours < 0:
		return fmt.Sprintf("%d %s ago", -hours, plural("hour", -hours))
	case minutes > 0:
		return fmt.Sprintf("in %d %s", minutes, plural("minute", minutes))
	case minutes < 0:
		return fmt.Sprintf("%d %s ago", -minutes, plural("minute", -minutes))
	default:
		return "now"
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
