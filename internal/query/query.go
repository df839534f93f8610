// Package query builds note service search grammar from find options.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/gnote-tools/cli/internal/format"
)

// Criteria are the search options of find, dedup and note lookup.
type Criteria struct {
	Search          string
	Tags            []string
	Notebook        string
	Date            string // yyyy-mm-dd[/yyyy-mm-dd]
	ExactEntry      bool
	ContentSearch   bool
	IgnoreCompleted bool
	RemindersOnly   bool
}

// DateRangeDelimiter separates the bounds of a --date range.
const DateRangeDelimiter = "/"

const stripChars = " \t\n\r\"'"

const serviceTimeLayout = "20060102T150400Z"

// DateError reports a --date value that is not a date or a date range.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("Incorrect date format (%s) in --date attribute. Format: %s", e.Value, format.ExampleDate.Format(format.DateLayout))
}

// Build returns the search grammar for c. Dates are read in loc and sent
// to the service in UTC.
func Build(c Criteria, loc *time.Location) (string, error) {
	var b strings.Builder

	if c.Notebook != "" {
		b.WriteString(expression("notebook", c.Notebook))
	}
	for _, tag := range c.Tags {
		b.WriteString(expression("tag", tag))
	}

	if c.Date != "" {
		bounds := strings.Split(c.Date, DateRangeDelimiter)
		if len(bounds) > 2 {
			return "", &DateError{Value: c.Date}
		}
		from, err := format.ParseLocalDate(strings.Trim(bounds[0], stripChars), loc)
		if err != nil {
			return "", &DateError{Value: c.Date}
		}
		fmt.Fprintf(&b, "created:%s ", utc(from))

		if len(bounds) == 2 {
			to, err := format.ParseLocalDate(strings.Trim(bounds[1], stripChars), loc)
			if err != nil {
				return "", &DateError{Value: c.Date}
			}
			fmt.Fprintf(&b, "-created:%s ", utc(to+24*60*60*1000))
		}
	}

	if search := strings.Trim(c.Search, stripChars); search != "" {
		if c.ExactEntry {
			search = `"` + search + `"`
		}
		if !c.ContentSearch {
			b.WriteString("intitle:")
		}
		b.WriteString(search)
	}

	if c.RemindersOnly {
		b.WriteString(" reminderOrder:* ")
	}
	if c.IgnoreCompleted {
		b.WriteString(" -reminderDoneTime:* ")
	}
	return b.String(), nil
}

// expression renders label:value. A leading dash negates the label and
// values with spaces are quoted.
func expression(label, value string) string {
	neg := ""
	if strings.HasPrefix(value, "-") {
		neg = "-"
		value = value[1:]
	}
	value = strings.Trim(value, stripChars)
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}
	return neg + label + ":" + value + " "
}

func utc(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(serviceTimeLayout)
}
