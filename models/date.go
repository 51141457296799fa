package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the canonical form of a task date, used on disk and in all
// user-facing output.
const DateLayout = "02-01-2006"

// Date is a calendar date with day precision. It carries no time-of-day and
// no zone; comparisons are purely calendrical.
type Date struct {
	t time.Time
}

// NewDate builds a Date, rejecting impossible day/month combinations such as
// 31-04 or 29-02 outside a leap year.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid calendar date %02d-%02d-%04d", day, month, year)
	}
	return Date{t: t}, nil
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// String renders the canonical DD-MM-YYYY form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a %q string: %w", DateLayout, err)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("date %q is not in DD-MM-YYYY form: %w", s, err)
	}
	// time.Parse tolerates missing leading zeros; stored dates must be in
	// the exact canonical form.
	if t.Format(DateLayout) != s {
		return fmt.Errorf("date %q is not in canonical DD-MM-YYYY form", s)
	}
	d.t = t
	return nil
}
