package cli

import "github.com/gnote-tools/cli/internal/dispatchers"

const (
	dateHelp     = "Set local creation time in 'yyyy-mm-dd' or 'yyyy-mm-dd HH:MM' format."
	reminderHelp = "Set local reminder date and time in 'yyyy-mm-dd' or 'yyyy-mm-dd HH:MM' format. " +
		"Alternatively use TOMORROW and WEEK for 24 hours and a week ahead respectively, " +
		"NONE for a reminder without a time. Use DONE to mark a reminder as completed."
	noteRefHelp = "The name or GUID or ID from the previous search of a note to %s."
)

// GetValue is the empty value of the settings arguments: it asks for the
// current value instead of setting one.
const GetValue = "#GET#"

// WriteContent is the default content of a new note: it opens the editor.
const WriteContent = "WRITE"

// boolFlag is a switch that defaults to false.
func boolFlag(name, alias, help string) dispatchers.FlagSpec {
	return dispatchers.FlagSpec{
		Name:    name,
		Alias:   alias,
		Help:    help,
		Value:   true,
		Default: dispatchers.Some(false),
	}
}

func required(name, alias, help string) dispatchers.ArgumentSpec {
	return dispatchers.ArgumentSpec{Name: name, Alias: alias, Help: help, Required: true}
}

func optional(name, alias, help string) dispatchers.ArgumentSpec {
	return dispatchers.ArgumentSpec{Name: name, Alias: alias, Help: help}
}

func repeated(name, alias, help string) dispatchers.ArgumentSpec {
	return dispatchers.ArgumentSpec{Name: name, Alias: alias, Help: help, Repetitive: true}
}

func getter(name, help string) dispatchers.ArgumentSpec {
	return dispatchers.ArgumentSpec{Name: name, Help: help, EmptyValue: dispatchers.Some(GetValue)}
}

var (
	rawFlags = []dispatchers.FlagSpec{
		boolFlag("--raw", "-w", "Edit note with raw ENML"),
		boolFlag("--rawmd", "-rm", "Edit note with raw markdown"),
	}

	findFlags = []dispatchers.FlagSpec{
		boolFlag("--content-search", "-cs", "Search by content, not by title."),
		boolFlag("--exact-entry", "-ee", "Search for exact entry of the request."),
		boolFlag("--guid", "-id", "Replace ID with GUID of each note in results."),
		boolFlag("--ignore-completed", "-C", "Include only unfinished reminders"),
		boolFlag("--reminders-only", "-R", "Include only notes with a reminder."),
		boolFlag("--deleted-only", "-D", "Include only notes that have been deleted."),
		boolFlag("--with-notebook", "-wn", "Add notebook of each note in results."),
		boolFlag("--with-tags", "-wt", "Add tag list of each note in results."),
		boolFlag("--with-url", "-wu", "Add direct url of each note in results to the web version."),
	}
)
