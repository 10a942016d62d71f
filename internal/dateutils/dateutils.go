// Package dateutils normalizes the heterogeneous date representations found in
// spreadsheet exports into a canonical UTC calendar date.
//
// A single sheet routinely mixes DD/MM/YYYY strings, ISO strings and raw
// spreadsheet serial numbers across rows and revisions, so values are carried
// as a RawDate tagged union and resolved here wherever they are compared or
// displayed. Time-of-day is always discarded to keep comparisons stable across
// viewer timezones.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutDisplay = "Jan 2, 2006"
	DateLayoutFull    = "2006-01-02 15:04:05"
)

// FallbackFormats is the generic format list tried after the day-first and
// serial checks. Slash-separated day/month dates never reach this list.
var FallbackFormats = []string{
	DateLayoutISO,
	time.RFC3339,
	DateLayoutFull,
	"2006/01/02",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// serialEpoch is the spreadsheet serial-date epoch. It is 1899-12-30 rather
// than 1899-12-31 because the original spreadsheet engine counts the
// nonexistent 1900-02-29.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	dayFirstRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	numericRe  = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// RawDateKind discriminates the source representation of a RawDate.
type RawDateKind int

const (
	// RawDateEmpty marks an absent value.
	RawDateEmpty RawDateKind = iota
	// RawDateText marks an uninterpreted date string.
	RawDateText
	// RawDateSerial marks a spreadsheet serial day count.
	RawDateSerial
	// RawDateTime marks a value that was already a native timestamp.
	RawDateTime
)

// RawDate is a date value exactly as it appeared in the source, classified
// once at construction. It is resolved to a canonical UTC date by Normalize;
// entities store the RawDate so the original representation survives export.
type RawDate struct {
	kind   RawDateKind
	text   string
	serial float64
	t      time.Time
}

// RawDateFromString classifies a raw sheet cell. Empty strings become
// RawDateEmpty, pure-numeric strings above 10000 become serial day counts,
// everything else stays text for later parsing.
func RawDateFromString(s string) RawDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return RawDate{kind: RawDateEmpty}
	}
	if numericRe.MatchString(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil && n > 10000 {
			return RawDate{kind: RawDateSerial, text: s, serial: n}
		}
	}
	return RawDate{kind: RawDateText, text: s}
}

// RawDateFromTime wraps a native timestamp, used for injected records whose
// start date is generated rather than read from the sheet.
func RawDateFromTime(t time.Time) RawDate {
	if t.IsZero() {
		return RawDate{kind: RawDateEmpty}
	}
	return RawDate{kind: RawDateTime, t: t}
}

// Kind returns the source classification of the value.
func (d RawDate) Kind() RawDateKind { return d.kind }

// IsEmpty reports whether the source held no value at all.
func (d RawDate) IsEmpty() bool { return d.kind == RawDateEmpty }

// String returns the value as it appeared in the source. Native timestamps
// render as ISO dates; empty values render as "".
func (d RawDate) String() string {
	if d.kind == RawDateTime {
		return d.t.UTC().Format(DateLayoutISO)
	}
	return d.text
}

// Normalize resolves a RawDate to a UTC calendar date (midnight UTC).
// Resolution order: native timestamp, day-first D/M/YYYY, spreadsheet serial,
// then the generic format list. The day-first check runs before any generic
// parsing because two-digit day/month pairs are ambiguous to generic parsers.
// Returns false for empty or unparseable values.
func Normalize(d RawDate) (time.Time, bool) {
	switch d.kind {
	case RawDateEmpty:
		return time.Time{}, false

	case RawDateTime:
		u := d.t.UTC()
		return atUTCMidnight(u), true

	case RawDateSerial:
		return serialEpoch.AddDate(0, 0, int(d.serial)), true

	case RawDateText:
		if m := dayFirstRe.FindStringSubmatch(d.text); m != nil {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
		for _, format := range FallbackFormats {
			if t, err := time.Parse(format, d.text); err == nil {
				// Rebuild at UTC midnight so whatever zone the layout
				// implied cannot skew downstream comparisons.
				return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
			}
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}

// FormatDisplay renders a RawDate as a short human date ("Jan 2, 2006")
// pinned to UTC, or "N/A" when the value cannot be resolved.
func FormatDisplay(d RawDate) string {
	t, ok := Normalize(d)
	if !ok {
		return "N/A"
	}
	return t.Format(DateLayoutDisplay)
}

// ToISODate renders a RawDate as YYYY-MM-DD, or "" when it cannot be resolved.
func ToISODate(d RawDate) string {
	t, ok := Normalize(d)
	if !ok {
		return ""
	}
	return t.Format(DateLayoutISO)
}

// StartOfDay truncates a timestamp to midnight UTC of the same calendar day.
func StartOfDay(t time.Time) time.Time {
	return atUTCMidnight(t.UTC())
}

// CompareDates compares two timestamps by UTC calendar day, ignoring
// time-of-day. Returns -1, 0 or 1.
func CompareDates(a, b time.Time) int {
	a = atUTCMidnight(a.UTC())
	b = atUTCMidnight(b.UTC())
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func atUTCMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
