package commands

import (
	"github.com/gnote-tools/cli/internal/cli"
	"github.com/gnote-tools/cli/internal/dispatchers"
	"github.com/gnote-tools/cli/internal/usage"
)

// Decode builds the request of a parsed invocation. It is the only reader of
// dispatchers.Options.
func Decode(result dispatchers.Result) (Request, error) {
	o := result.Options
	str := func(key string) string {
		s, _ := o.String(key)
		return s
	}

	switch result.Command {
	case "user":
		return UserRequest{Full: o.Bool("full")}, nil
	case "login":
		return LoginRequest{}, nil
	case "logout":
		return LogoutRequest{Force: o.Bool("force")}, nil
	case "settings":
		return SettingsRequest{
			Editor:  settingArg(o, "editor"),
			NoteExt: settingArg(o, "note_ext"),
			Extras:  settingArg(o, "extras"),
		}, nil

	case "create":
		return CreateRequest{NoteFields: noteFields(o)}, nil
	case "create-linked":
		return CreateLinkedRequest{Title: str("title"), Notebook: str("notebook")}, nil
	case "edit":
		return EditRequest{Note: str("note"), NoteFields: noteFields(o)}, nil
	case "edit-linked":
		return EditLinkedRequest{Notebook: str("notebook"), Note: str("note")}, nil
	case "show":
		return ShowRequest{Note: str("note"), Raw: o.Bool("raw")}, nil
	case "remove":
		return RemoveRequest{Note: str("note"), Force: o.Bool("force")}, nil
	case "find":
		count, _ := o.Int("count")
		return FindRequest{
			Search:          str("search"),
			Tags:            o.Strings("tag"),
			Notebook:        str("notebook"),
			Date:            str("date"),
			Count:           count,
			ContentSearch:   o.Bool("content_search"),
			ExactEntry:      o.Bool("exact_entry"),
			GUID:            o.Bool("guid"),
			IgnoreCompleted: o.Bool("ignore_completed"),
			RemindersOnly:   o.Bool("reminders_only"),
			DeletedOnly:     o.Bool("deleted_only"),
			WithNotebook:    o.Bool("with_notebook"),
			WithTags:        o.Bool("with_tags"),
			WithURL:         o.Bool("with_url"),
		}, nil
	case "dedup":
		return DedupRequest{Notebook: str("notebook")}, nil
	case "sync":
		return SyncRequest{
			Path:     str("path"),
			Mask:     str("mask"),
			Format:   str("format"),
			Notebook: str("notebook"),
			LogPath:  str("logpath"),
			TwoWay:   o.Bool("two_way"),
		}, nil

	case "notebook-list":
		return NotebookListRequest{GUID: o.Bool("guid")}, nil
	case "notebook-create":
		return NotebookCreateRequest{Title: str("title"), Stack: str("stack")}, nil
	case "notebook-edit":
		return NotebookEditRequest{Notebook: str("notebook"), Title: str("title")}, nil
	case "notebook-remove":
		return NotebookRemoveRequest{Notebook: str("notebook"), Force: o.Bool("force")}, nil

	case "tag-list":
		return TagListRequest{GUID: o.Bool("guid")}, nil
	case "tag-create":
		return TagCreateRequest{Title: str("title")}, nil
	case "tag-edit":
		return TagEditRequest{Name: str("tagname"), Title: str("title")}, nil
	case "tag-remove":
		return TagRemoveRequest{Name: str("tagname"), Force: o.Bool("force")}, nil

	case "completion":
		return CompletionRequest{Shell: str("shell"), Script: o.Bool("script")}, nil
	case "version":
		return VersionRequest{}, nil
	case "config-list":
		return ConfigListRequest{}, nil
	case "config-get":
		return ConfigGetRequest{Key: str("key")}, nil
	case "config-set":
		return ConfigSetRequest{Key: str("key"), Value: str("value")}, nil
	case "config-unset":
		return ConfigUnsetRequest{Key: str("key")}, nil
	}

	return nil, usage.Misconfigured("no request type for command %q", result.Command)
}

func settingArg(o dispatchers.Options, key string) SettingArg {
	if !o.Has(key) {
		return SettingArg{}
	}
	value, _ := o.String(key)
	if value == cli.GetValue {
		return SettingArg{Given: true, Query: true}
	}
	return SettingArg{Given: true, Value: value}
}

func noteFields(o dispatchers.Options) NoteFields {
	str := func(key string) string {
		s, _ := o.String(key)
		return s
	}
	return NoteFields{
		Title:       str("title"),
		Content:     str("content"),
		Tags:        o.Strings("tag"),
		Created:     str("created"),
		Resources:   o.Strings("resource"),
		Notebook:    str("notebook"),
		Reminder:    str("reminder"),
		URL:         str("url"),
		Raw:         o.Bool("raw"),
		RawMarkdown: o.Bool("rawmd"),
	}
}
