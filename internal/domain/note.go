package domain

// Timestamps exchanged with the note service are milliseconds since the
// Unix epoch, UTC. Zero means unset.

// NoteAttributes are the optional note fields gnote reads and writes.
type NoteAttributes struct {
	SourceURL        string `json:"sourceURL,omitempty"`
	Author           string `json:"author,omitempty"`
	ReminderOrder    int64  `json:"reminderOrder,omitempty"`
	ReminderTime     int64  `json:"reminderTime,omitempty"`
	ReminderDoneTime int64  `json:"reminderDoneTime,omitempty"`
}

// HasReminder reports whether the note is on the reminder list.
func (a NoteAttributes) HasReminder() bool {
	return a.ReminderOrder != 0
}

// Data is a resource body with its MD5 hash in hex.
type Data struct {
	Body     []byte `json:"body,omitempty"`
	BodyHash string `json:"bodyHash"`
	Size     int    `json:"size"`
}

// Resource is a file attached to a note.
type Resource struct {
	GUID     string `json:"guid,omitempty"`
	Mime     string `json:"mime"`
	Data     Data   `json:"data"`
	FileName string `json:"fileName,omitempty"`
}

// Note is a note as returned by the service. Search results carry metadata
// only; Content is filled by a separate fetch.
type Note struct {
	GUID          string         `json:"guid,omitempty"`
	Title         string         `json:"title"`
	Content       string         `json:"content,omitempty"`
	ContentLength int            `json:"contentLength,omitempty"`
	Created       int64          `json:"created,omitempty"`
	Updated       int64          `json:"updated,omitempty"`
	Deleted       int64          `json:"deleted,omitempty"`
	NotebookGUID  string         `json:"notebookGuid,omitempty"`
	TagGUIDs      []string       `json:"tagGuids,omitempty"`
	TagNames      []string       `json:"tagNames,omitempty"`
	Resources     []Resource     `json:"resources,omitempty"`
	Attributes    NoteAttributes `json:"attributes"`

	// Largest resource, reported by metadata searches.
	LargestResourceMime string `json:"largestResourceMime,omitempty"`
	LargestResourceSize int    `json:"largestResourceSize,omitempty"`

	// NotebookName is resolved client side for display.
	NotebookName string `json:"notebookName,omitempty"`
}

// Notebook is a notebook owned by the user.
type Notebook struct {
	GUID            string `json:"guid,omitempty"`
	Name            string `json:"name"`
	Stack           string `json:"stack,omitempty"`
	DefaultNotebook bool   `json:"defaultNotebook,omitempty"`
	Created         int64  `json:"serviceCreated,omitempty"`
	Updated         int64  `json:"serviceUpdated,omitempty"`
}

// LinkedNotebook is a notebook shared with the user by someone else.
type LinkedNotebook struct {
	GUID            string `json:"guid,omitempty"`
	ShareName       string `json:"shareName"`
	Username        string `json:"username,omitempty"`
	ShardID         string `json:"shardId,omitempty"`
	ShareKey        string `json:"shareKey,omitempty"`
	URI             string `json:"uri,omitempty"`
	NoteStoreURL    string `json:"noteStoreUrl,omitempty"`
	WebAPIURLPrefix string `json:"webApiUrlPrefix,omitempty"`
}

// SharedNotebook describes the share a shared-notebook token grants.
type SharedNotebook struct {
	ID           int64  `json:"id,omitempty"`
	NotebookGUID string `json:"notebookGuid"`
	Email        string `json:"email,omitempty"`
}

// Tag is a note label.
type Tag struct {
	GUID       string `json:"guid,omitempty"`
	Name       string `json:"name"`
	ParentGUID string `json:"parentGuid,omitempty"`
}

// Accounting holds the user's quota.
type Accounting struct {
	UploadLimit    int64 `json:"uploadLimit"`
	UploadLimitEnd int64 `json:"uploadLimitEnd,omitempty"`
}

// User is the account behind the session token.
type User struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Timezone   string     `json:"timezone,omitempty"`
	ShardID    string     `json:"shardId,omitempty"`
	Created    int64      `json:"created,omitempty"`
	Accounting Accounting `json:"accounting"`
}

// NoteSortOrder orders search results.
type NoteSortOrder int

const (
	SortCreated NoteSortOrder = iota + 1
	SortUpdated
	SortRelevance
	SortUpdateSequenceNumber
	SortTitle
)

// ParseNoteSortOrder maps the config names (CREATED, UPDATED, RELEVANCE,
// UPDATE_SEQUENCE_NUMBER, TITLE) to a sort order.
func ParseNoteSortOrder(s string) (NoteSortOrder, bool) {
	switch s {
	case "CREATED":
		return SortCreated, true
	case "UPDATED":
		return SortUpdated, true
	case "RELEVANCE":
		return SortRelevance, true
	case "UPDATE_SEQUENCE_NUMBER":
		return SortUpdateSequenceNumber, true
	case "TITLE":
		return SortTitle, true
	default:
		return 0, false
	}
}

// NoteFilter selects notes in a search.
type NoteFilter struct {
	Order        NoteSortOrder `json:"order,omitempty"`
	Ascending    bool          `json:"ascending,omitempty"`
	Words        string        `json:"words,omitempty"`
	NotebookGUID string        `json:"notebookGuid,omitempty"`
	Inactive     bool          `json:"inactive,omitempty"`
}

// NotesMetadataList is one page of a metadata search.
type NotesMetadataList struct {
	StartIndex int    `json:"startIndex"`
	TotalNotes int    `json:"totalNotes"`
	Notes      []Note `json:"notes"`
}

// SearchResult is a completed search, as printed and cached.
type SearchResult struct {
	Request    string `json:"request"`
	TotalNotes int    `json:"totalNotes"`
	Notes      []Note `json:"notes"`
}

// AuthenticationResult carries a token for a shared note store.
type AuthenticationResult struct {
	AuthenticationToken string `json:"authenticationToken"`
	Expiration          int64  `json:"expiration,omitempty"`
}
