package domain

import (
	"context"
	"io"
)

// NoteService is the remote note store. Every call is one round trip, or a
// few for paged searches.
type NoteService interface {
	// GetUser returns the account behind the session token.
	GetUser(ctx context.Context) (*User, error)

	// GetNote fetches a note, optionally with its ENML content and resource data.
	GetNote(ctx context.Context, guid string, withContent, withResources bool) (*Note, error)

	// GetNoteContent returns the ENML body of a note.
	GetNoteContent(ctx context.Context, guid string) (string, error)

	// FindNotesMetadata returns one page of notes matching filter.
	FindNotesMetadata(ctx context.Context, filter NoteFilter, offset, max int) (*NotesMetadataList, error)

	// FindNotes pages through FindNotesMetadata until count notes were
	// collected or the result set is exhausted.
	FindNotes(ctx context.Context, filter NoteFilter, count int) (*NotesMetadataList, error)

	CreateNote(ctx context.Context, note *Note) (*Note, error)
	UpdateNote(ctx context.Context, note *Note) (*Note, error)
	DeleteNote(ctx context.Context, guid string) error

	ListNotebooks(ctx context.Context) ([]Notebook, error)
	ListLinkedNotebooks(ctx context.Context) ([]LinkedNotebook, error)
	GetNotebook(ctx context.Context, guid string) (*Notebook, error)
	CreateNotebook(ctx context.Context, notebook Notebook) (*Notebook, error)
	UpdateNotebook(ctx context.Context, notebook Notebook) error
	ExpungeNotebook(ctx context.Context, guid string) error

	ListTags(ctx context.Context) ([]Tag, error)
	GetTag(ctx context.Context, guid string) (*Tag, error)
	CreateTag(ctx context.Context, tag Tag) (*Tag, error)
	UpdateTag(ctx context.Context, tag Tag) error
	ExpungeTag(ctx context.Context, guid string) error

	// AuthenticateToSharedNotebook exchanges a share key for a token valid
	// on the note store that holds the shared notebook.
	AuthenticateToSharedNotebook(ctx context.Context, shareKey string) (*AuthenticationResult, error)

	// GetSharedNotebookByAuth describes the share the session token grants.
	GetSharedNotebookByAuth(ctx context.Context) (*SharedNotebook, error)

	// Shared returns a service bound to another note store and token.
	Shared(noteStoreURL, token string) NoteService
}

// Cache is the local store for the session and recently seen objects.
type Cache interface {
	// CreateUser replaces the session with a new token and user info.
	CreateUser(token string, user *User) error

	// RemoveUser drops the session and every user property.
	RemoveUser() error

	UserToken() (string, error)
	UserInfo() (*User, error)

	// UserProps returns every user property as raw JSON.
	UserProps() (map[string][]byte, error)

	// UserProp decodes a user property into dst. It reports false when the
	// property is not set.
	UserProp(key string, dst any) (bool, error)
	SetUserProp(key string, value any) error
	DelUserProp(key string) (bool, error)

	Settings() (map[string]string, error)
	SetSettings(settings map[string]string) error
	Setting(key string) (string, bool, error)
	SetSetting(key, value string) error

	SetNotebooks(notebooks []Notebook) error
	Notebooks() ([]Notebook, error)
	SetTags(tags []Tag) error
	Tags() ([]Tag, error)

	SetNote(note Note) error
	Note(guid string) (*Note, error)

	SetSearch(result SearchResult) error
	Search() (*SearchResult, error)

	Close() error
}

// SecretStore keeps the session token.
type SecretStore interface {
	Token() (string, error)
	SetToken(token string) error
	DeleteToken() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Progress is the "working..." indicator shown during remote calls.
type Progress interface {
	// SetMessage shows the indicator with a new message.
	SetMessage(message string)

	// Stop hides the indicator. It is shown again by the next SetMessage.
	Stop()
}

// Terminal is the interactive side of the user interface.
type Terminal interface {
	// Confirm asks a yes/no question.
	Confirm(message string) (bool, error)

	// ReadLine prompts for a line of text.
	ReadLine(prompt string) (string, error)

	// ReadPassword prompts for a line without echo.
	ReadPassword(prompt string) (string, error)

	// Select lets the user pick one of labels. It returns the index of the
	// choice, or -1 when the user cancelled.
	Select(title string, labels []string) (int, error)
}
