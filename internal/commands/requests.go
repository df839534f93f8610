// Package commands turns parsed invocations into typed requests.
package commands

// Request is a decoded command. The set of implementations is closed.
type Request interface {
	request()
}

// SettingArg is one argument of the settings command.
type SettingArg struct {
	Given bool
	Query bool // given without a value: print the current one
	Value string
}

// NoteFields are the note options shared by create and edit. Empty strings
// and nil slices mean "not given".
type NoteFields struct {
	Title       string
	Content     string
	Tags        []string
	Created     string
	Resources   []string
	Notebook    string
	Reminder    string
	URL         string
	Raw         bool
	RawMarkdown bool
}

type (
	UserRequest struct{ Full bool }

	LoginRequest struct{}

	LogoutRequest struct{ Force bool }

	SettingsRequest struct {
		Editor  SettingArg
		NoteExt SettingArg
		Extras  SettingArg
	}

	CreateRequest struct{ NoteFields }

	CreateLinkedRequest struct {
		Title    string
		Notebook string
	}

	EditRequest struct {
		Note string
		NoteFields
	}

	EditLinkedRequest struct {
		Notebook string
		Note     string
	}

	ShowRequest struct {
		Note string
		Raw  bool
	}

	RemoveRequest struct {
		Note  string
		Force bool
	}

	FindRequest struct {
		Search          string
		Tags            []string
		Notebook        string
		Date            string
		Count           int
		ContentSearch   bool
		ExactEntry      bool
		GUID            bool
		IgnoreCompleted bool
		RemindersOnly   bool
		DeletedOnly     bool
		WithNotebook    bool
		WithTags        bool
		WithURL         bool
	}

	DedupRequest struct{ Notebook string }

	SyncRequest struct {
		Path     string
		Mask     string
		Format   string
		Notebook string
		LogPath  string
		TwoWay   bool
	}

	NotebookListRequest struct{ GUID bool }

	NotebookCreateRequest struct {
		Title string
		Stack string
	}

	NotebookEditRequest struct {
		Notebook string
		Title    string
	}

	NotebookRemoveRequest struct {
		Notebook string
		Force    bool
	}

	TagListRequest struct{ GUID bool }

	TagCreateRequest struct{ Title string }

	TagEditRequest struct {
		Name  string
		Title string
	}

	TagRemoveRequest struct {
		Name  string
		Force bool
	}

	CompletionRequest struct {
		Shell  string
		Script bool
	}

	VersionRequest struct{}

	ConfigListRequest struct{}

	ConfigGetRequest struct{ Key string }

	ConfigSetRequest struct {
		Key   string
		Value string
	}

	ConfigUnsetRequest struct{ Key string }
)

func (UserRequest) request()           {}
func (LoginRequest) request()          {}
func (LogoutRequest) request()         {}
func (SettingsRequest) request()       {}
func (CreateRequest) request()         {}
func (CreateLinkedRequest) request()   {}
func (EditRequest) request()           {}
func (EditLinkedRequest) request()     {}
func (ShowRequest) request()           {}
func (RemoveRequest) request()         {}
func (FindRequest) request()           {}
func (DedupRequest) request()          {}
func (SyncRequest) request()           {}
func (NotebookListRequest) request()   {}
func (NotebookCreateRequest) request() {}
func (NotebookEditRequest) request()   {}
func (NotebookRemoveRequest) request() {}
func (TagListRequest) request()        {}
func (TagCreateRequest) request()      {}
func (TagEditRequest) request()        {}
func (TagRemoveRequest) request()      {}
func (CompletionRequest) request()     {}
func (VersionRequest) request()        {}
func (ConfigListRequest) request()     {}
func (ConfigGetRequest) request()      {}
func (ConfigSetRequest) request()      {}
func (ConfigUnsetRequest) request()    {}

// HasEdits reports whether any field other than the flags was given.
func (f NoteFields) HasEdits() bool {
	return f.Title != "" || f.Content != "" || f.Tags != nil || f.Created != "" ||
		f.Resources != nil || f.Notebook != "" || f.Reminder != "" || f.URL != ""
}
