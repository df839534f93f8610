// Package format parses and prints the dates exchanged with the note service.
package format

import (
	"fmt"
	"time"
)

// Accepted layouts for dates typed by the user.
const (
	DateLayout        = "2006-01-02"
	DateAndTimeLayout = "2006-01-02 15:04"
)

// ErrDateFormat is returned for a date in neither accepted layout.
type ErrDateFormat struct {
	Option string
	Value  string
}

func (e *ErrDateFormat) Error() string {
	return fmt.Sprintf("Incorrect date format (%s) in %s attribute. 'Format: '%s' or '%s'",
		e.Value, e.Option, ExampleDate.Format(DateLayout), ExampleDate.Format(DateAndTimeLayout))
}

// ExampleDate is shown in date format errors.
var ExampleDate = time.Date(2015, 12, 31, 14, 30, 0, 0, time.UTC)

// ParseLocalDate reads a local date, or date and time, and returns epoch
// milliseconds. One second is added so the value lands inside the minute.
func ParseLocalDate(value string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{DateLayout, DateAndTimeLayout} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.Add(time.Second).UnixMilli(), nil
		}
	}
	return 0, &ErrDateFormat{Value: value}
}

// ParseOptionDate is ParseLocalDate for the value of a command option; a
// format error names the option.
func ParseOptionDate(option, value string, loc *time.Location) (int64, error) {
	ms, err := ParseLocalDate(value, loc)
	if err != nil {
		return 0, &ErrDateFormat{Option: option, Value: value}
	}
	return ms, nil
}

// Millis converts epoch milliseconds to a local time.
func Millis(ms int64) time.Time {
	return time.UnixMilli(ms).Local()
}

// PrintDate renders epoch milliseconds as a local date, "None" for zero.
func PrintDate(ms int64) string {
	if ms == 0 {
		return "None"
	}
	return Millis(ms).Format(DateLayout)
}

// PrintDateTime is PrintDate with the time of day.
func PrintDateTime(ms int64) string {
	if ms == 0 {
		return "None"
	}
	return Millis(ms).Format(DateAndTimeLayout)
}
