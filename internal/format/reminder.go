package format

import (
	"errors"
	"time"

	"github.com/gnote-tools/cli/internal/domain"
)

// Reminder markers accepted by --reminder.
const (
	ReminderNone   = "NONE"
	ReminderDone   = "DONE"
	ReminderDelete = "DELETE"
)

var reminderShortcuts = map[string]time.Duration{
	"TOMORROW": 24 * time.Hour,
	"WEEK":     7 * 24 * time.Hour,
}

// ErrReminderInPast is returned when a reminder time is not in the future.
var ErrReminderInPast = errors.New("reminder must be in the future")

// Reminder is a parsed --reminder value: a marker or a time.
type Reminder struct {
	Marker string
	Time   int64 // epoch ms, set when Marker is empty
}

// IsZero reports whether no reminder was requested.
func (r Reminder) IsZero() bool {
	return r.Marker == "" && r.Time == 0
}

// ParseReminder reads a --reminder value relative to now.
func ParseReminder(value string, now time.Time) (Reminder, error) {
	switch value {
	case "":
		return Reminder{}, nil
	case ReminderNone, ReminderDone, ReminderDelete:
		return Reminder{Marker: value}, nil
	}
	if d, ok := reminderShortcuts[value]; ok {
		return Reminder{Time: now.Add(d).UnixMilli()}, nil
	}

	ms, err := ParseOptionDate("--reminder", value, now.Location())
	if err != nil {
		return Reminder{}, err
	}
	return Reminder{Time: ms}, nil
}

// ApplyReminder updates the reminder attributes of a note. New notes only
// gain reminders; DELETE on a new note is a no-op.
func ApplyReminder(attrs *domain.NoteAttributes, r Reminder, now time.Time, isUpdate bool) error {
	if r.IsZero() {
		return nil
	}
	nowMs := now.UnixMilli()

	if !isUpdate {
		switch r.Marker {
		case ReminderDelete:
		case ReminderNone:
			attrs.ReminderOrder = nowMs
		case ReminderDone:
			attrs.ReminderOrder = nowMs
			attrs.ReminderDoneTime = nowMs
		default:
			if r.Time <= nowMs {
				return ErrReminderInPast
			}
			attrs.ReminderOrder = nowMs
			attrs.ReminderTime = r.Time
		}
		return nil
	}

	switch r.Marker {
	case ReminderNone:
		attrs.ReminderDoneTime = 0
		attrs.ReminderTime = 0
		if attrs.ReminderOrder == 0 {
			attrs.ReminderOrder = nowMs
		}
	case ReminderDone:
		attrs.ReminderDoneTime = nowMs
		if attrs.ReminderOrder == 0 {
			attrs.ReminderOrder = nowMs
			attrs.ReminderTime = 0
		}
	case ReminderDelete:
		attrs.ReminderOrder = 0
		attrs.ReminderTime = 0
		attrs.ReminderDoneTime = 0
	default:
		if r.Time <= nowMs {
			return ErrReminderInPast
		}
		attrs.ReminderTime = r.Time
		attrs.ReminderDoneTime = 0
		if attrs.ReminderOrder == 0 {
			attrs.ReminderOrder = nowMs
		}
	}
	return nil
}
