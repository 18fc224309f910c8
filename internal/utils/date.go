package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed
var ErrInvalidDate = errors.New("invalid date")

// DateStyle selects how a single date component is rendered
type DateStyle string

const (
	DateStyleDefault  DateStyle = ""
	DateStyleLong     DateStyle = "long"
	DateStyleShort    DateStyle = "short"
	DateStyleNumeric  DateStyle = "numeric"
	DateStyleTwoDigit DateStyle = "2-digit"
	DateStyleOmit     DateStyle = "omit"
)

// DateFormatOptions overrides the default components used by FormatDate.
// Zero fields keep the default, set fields take precedence.
type DateFormatOptions struct {
	Weekday  DateStyle
	Month    DateStyle
	Day      DateStyle
	Year     DateStyle
	Location *time.Location
}

var (
	longDateDefaults  = DateFormatOptions{Weekday: DateStyleOmit, Month: DateStyleLong, Day: DateStyleNumeric, Year: DateStyleNumeric}
	shortDateDefaults = DateFormatOptions{Weekday: DateStyleOmit, Month: DateStyleShort, Day: DateStyleNumeric, Year: DateStyleNumeric}
)

// accepted layouts for string dates, tried in order
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate parses a date string. Date-only and zone-less values are read as UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// FormatDate renders a long-form US date such as "January 15, 2024".
// Options override individual components.
func FormatDate(t time.Time, opts ...DateFormatOptions) string {
	o := longDateDefaults
	for _, opt := range opts {
		o = o.merge(opt)
	}
	return o.render(t)
}

// FormatDateShort renders an abbreviated US date such as "Jan 15, 2024"
func FormatDateShort(t time.Time) string {
	return shortDateDefaults.render(t)
}

// FormatDateString parses value and formats it with FormatDate
func FormatDateString(value string, opts ...DateFormatOptions) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return FormatDate(t, opts...), nil
}

// FormatDateShortString parses value and formats it with FormatDateShort
func FormatDateShortString(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return FormatDateShort(t), nil
}

// FormatRelativeTime describes how long ago t was, relative to the current time
func FormatRelativeTime(t time.Time) string {
	return FormatRelativeTimeFrom(t, time.Now())
}

// FormatRelativeTimeFrom describes how long before now the instant t was.
// Buckets use floored whole seconds; anything a week or older falls back to
// FormatDateShort.
func FormatRelativeTimeFrom(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)

	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%dd ago", seconds/86400)
	default:
		return FormatDateShort(t)
	}
}

func (o DateFormatOptions) merge(override DateFormatOptions) DateFormatOptions {
	if override.Weekday != DateStyleDefault {
		o.Weekday = override.Weekday
	}
	if override.Month != DateStyleDefault {
		o.Month = override.Month
	}
	if override.Day != DateStyleDefault {
		o.Day = override.Day
	}
	if override.Year != DateStyleDefault {
		o.Year = override.Year
	}
	if override.Location != nil {
		o.Location = override.Location
	}
	return o
}

func (o DateFormatOptions) render(t time.Time) string {
	if o.Location != nil {
		t = t.In(o.Location)
	}

	weekday := ""
	switch o.Weekday {
	case DateStyleLong:
		weekday = t.Weekday().String()
	case DateStyleShort:
		weekday = t.Weekday().String()[:3]
	}

	day := numericComponent(t.Day(), o.Day)
	year := ""
	switch o.Year {
	case DateStyleNumeric, DateStyleLong, DateStyleShort:
		year = strconv.Itoa(t.Year())
	case DateStyleTwoDigit:
		year = fmt.Sprintf("%02d", t.Year()%100)
	}

	var body string
	switch o.Month {
	case DateStyleLong, DateStyleShort:
		month := t.Month().String()
		if o.Month == DateStyleShort {
			month = month[:3]
		}
		body = month
		if day != "" {
			body += " " + day
		}
		if year != "" {
			if day != "" {
				body += ","
			}
			body += " " + year
		}
	default:
		parts := make([]string, 0, 3)
		if month := numericComponent(int(t.Month()), o.Month); month != "" {
			parts = append(parts, month)
		}
		if day != "" {
			parts = append(parts, day)
		}
		if year != "" {
			parts = append(parts, year)
		}
		body = strings.Join(parts, "/")
	}

	switch {
	case weekday == "":
		return body
	case body == "":
		return weekday
	default:
		return weekday + ", " + body
	}
}

func numericComponent(v int, style DateStyle) string {
	switch style {
	case DateStyleNumeric, DateStyleLong, DateStyleShort:
		return strconv.Itoa(v)
	case DateStyleTwoDigit:
		return fmt.Sprintf("%02d", v)
	default:
		return ""
	}
}
