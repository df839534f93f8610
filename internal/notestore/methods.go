package notestore

import (
	"context"

	"github.com/gnote-tools/cli/internal/domain"
)

// resultSpec lists the metadata fields requested by searches.
type resultSpec struct {
	IncludeTitle               bool `json:"includeTitle"`
	IncludeContentLength       bool `json:"includeContentLength"`
	IncludeCreated             bool `json:"includeCreated"`
	IncludeUpdated             bool `json:"includeUpdated"`
	IncludeNotebookGUID        bool `json:"includeNotebookGuid"`
	IncludeAttributes          bool `json:"includeAttributes"`
	IncludeTagGUIDs            bool `json:"includeTagGuids"`
	IncludeLargestResourceMime bool `json:"includeLargestResourceMime"`
	IncludeLargestResourceSize bool `json:"includeLargestResourceSize"`
}

var metadataSpec = resultSpec{
	IncludeTitle:               true,
	IncludeContentLength:       true,
	IncludeCreated:             true,
	IncludeUpdated:             true,
	IncludeNotebookGUID:        true,
	IncludeAttributes:          true,
	IncludeTagGUIDs:            true,
	IncludeLargestResourceMime: true,
	IncludeLargestResourceSize: true,
}

type guidParams struct {
	GUID string `json:"guid"`
}

func (c *Client) GetUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.call(ctx, "getUser", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetNote(ctx context.Context, guid string, withContent, withResources bool) (*domain.Note, error) {
	params := struct {
		GUID              string `json:"guid"`
		WithContent       bool   `json:"withContent"`
		WithResourcesData bool   `json:"withResourcesData"`
	}{guid, withContent, withResources}

	var note domain.Note
	if err := c.call(ctx, "getNote", params, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) GetNoteContent(ctx context.Context, guid string) (string, error) {
	var content string
	if err := c.call(ctx, "getNoteContent", guidParams{guid}, &content); err != nil {
		return "", err
	}
	return content, nil
}

func (c *Client) FindNotesMetadata(ctx context.Context, filter domain.NoteFilter, offset, maxNotes int) (*domain.NotesMetadataList, error) {
	params := struct {
		Filter     domain.NoteFilter `json:"filter"`
		Offset     int               `json:"offset"`
		MaxNotes   int               `json:"maxNotes"`
		ResultSpec resultSpec        `json:"resultSpec"`
	}{filter, offset, maxNotes, metadataSpec}

	var list domain.NotesMetadataList
	if err := c.call(ctx, "findNotesMetadata", params, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FindNotes collects up to count notes, fetching further pages while the
// service reports more matches than were returned.
func (c *Client) FindNotes(ctx context.Context, filter domain.NoteFilter, count int) (*domain.NotesMetadataList, error) {
	result, err := c.FindNotesMetadata(ctx, filter, 0, count)
	if err != nil {
		return nil, err
	}

	remaining := max(count-len(result.Notes), 0)
	for result.TotalNotes > len(result.Notes) && remaining > 0 {
		page, err := c.FindNotesMetadata(ctx, filter, len(result.Notes), remaining)
		if err != nil {
			return nil, err
		}
		if len(page.Notes) == 0 {
			break
		}
		result.Notes = append(result.Notes, page.Notes...)
		remaining = max(remaining-len(page.Notes), 0)
	}
	return result, nil
}

func (c *Client) CreateNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	var created domain.Note
	if err := c.call(ctx, "createNote", struct {
		Note *domain.Note `json:"note"`
	}{note}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateNote(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	var updated domain.Note
	if err := c.call(ctx, "updateNote", struct {
		Note *domain.Note `json:"note"`
	}{note}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteNote(ctx context.Context, guid string) error {
	return c.call(ctx, "deleteNote", guidParams{guid}, nil)
}

func (c *Client) ListNotebooks(ctx context.Context) ([]domain.Notebook, error) {
	var notebooks []domain.Notebook
	if err := c.call(ctx, "listNotebooks", nil, &notebooks); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (c *Client) ListLinkedNotebooks(ctx context.Context) ([]domain.LinkedNotebook, error) {
	var notebooks []domain.LinkedNotebook
	if err := c.call(ctx, "listLinkedNotebooks", nil, &notebooks); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (c *Client) GetNotebook(ctx context.Context, guid string) (*domain.Notebook, error) {
	var notebook domain.Notebook
	if err := c.call(ctx, "getNotebook", guidParams{guid}, &notebook); err != nil {
		return nil, err
	}
	return &notebook, nil
}

func (c *Client) CreateNotebook(ctx context.Context, notebook domain.Notebook) (*domain.Notebook, error) {
	var created domain.Notebook
	if err := c.call(ctx, "createNotebook", struct {
		Notebook domain.Notebook `json:"notebook"`
	}{notebook}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateNotebook(ctx context.Context, notebook domain.Notebook) error {
	return c.call(ctx, "updateNotebook", struct {
		Notebook domain.Notebook `json:"notebook"`
	}{notebook}, nil)
}

func (c *Client) ExpungeNotebook(ctx context.Context, guid string) error {
	return c.call(ctx, "expungeNotebook", guidParams{guid}, nil)
}

func (c *Client) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := c.call(ctx, "listTags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) GetTag(ctx context.Context, guid string) (*domain.Tag, error) {
	var tag domain.Tag
	if err := c.call(ctx, "getTag", guidParams{guid}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (c *Client) CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	var created domain.Tag
	if err := c.call(ctx, "createTag", struct {
		Tag domain.Tag `json:"tag"`
	}{tag}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTag(ctx context.Context, tag domain.Tag) error {
	return c.call(ctx, "updateTag", struct {
		Tag domain.Tag `json:"tag"`
	}{tag}, nil)
}

func (c *Client) ExpungeTag(ctx context.Context, guid string) error {
	return c.call(ctx, "expungeTag", guidParams{guid}, nil)
}

func (c *Client) AuthenticateToSharedNotebook(ctx context.Context, shareKey string) (*domain.AuthenticationResult, error) {
	var auth domain.AuthenticationResult
	if err := c.call(ctx, "authenticateToSharedNotebook", struct {
		ShareKey string `json:"shareKey"`
	}{shareKey}, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *Client) GetSharedNotebookByAuth(ctx context.Context) (*domain.SharedNotebook, error) {
	var shared domain.SharedNotebook
	if err := c.call(ctx, "getSharedNotebookByAuth", nil, &shared); err != nil {
		return nil, err
	}
	return &shared, nil
}
