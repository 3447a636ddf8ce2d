// Package month handles "YYYY-MM" month keys: the unit expenses are bucketed
// by and budgets are keyed on.
package month

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

const (
	Layout     = "2006-01"
	DateLayout = "2006-01-02"
)

var ErrInvalidKey = errors.New("month must be formatted as YYYY-MM")

type Key struct {
	Year  int
	Month time.Month
}

// Parse accepts exactly the YYYY-MM form.
func Parse(s string) (Key, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Key{}, errors.Wrapf(ErrInvalidKey, "parse %q", s)
	}
	return Of(t), nil
}

func Of(t time.Time) Key {
	return Key{Year: t.Year(), Month: t.Month()}
}

func (k Key) String() string {
	return k.Start().Format(Layout)
}

// Start is midnight UTC of the first day of the month.
func (k Key) Start() time.Time {
	return now.With(time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)).BeginningOfMonth()
}

// End is the last nanosecond of the month.
func (k Key) End() time.Time {
	return now.With(k.Start()).EndOfMonth()
}

// FirstDay and LastDay are the month bounds formatted as dates.
func (k Key) FirstDay() string {
	return k.Start().Format(DateLayout)
}

func (k Key) LastDay() string {
	return k.End().Format(DateLayout)
}

// Days is the number of calendar days in the month.
func (k Key) Days() int {
	return k.End().Day()
}

func (k Key) Next() Key {
	return Of(k.Start().AddDate(0, 1, 0))
}

func (k Key) Before(other Key) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

func (k Key) After(other Key) bool {
	return other.Before(k)
}

// Contains reports whether the date falls inside the month.
func (k Key) Contains(date time.Time) bool {
	return Of(date) == k
}

// DaysLeft counts the days of the month still ahead of today, today excluded.
// Past months have none left, future months have all of them.
func (k Key) DaysLeft(today time.Time) int {
	current := Of(today)
	switch {
	case k.Before(current):
		return 0
	case k.After(current):
		return k.Days()
	default:
		return k.Days() - today.Day()
	}
}
