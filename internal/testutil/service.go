package testutil

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/notestore"
)

// FakeService is an in-memory domain.NoteService. Notes keep insertion
// order. Set Err to make every call fail.
type FakeService struct {
	mu sync.Mutex

	User      domain.User
	Notes     []domain.Note
	Notebooks []domain.Notebook
	Linked    []domain.LinkedNotebook
	Tags      []domain.Tag

	// Search filters notes for FindNotesMetadata; nil matches every note
	// in the filter's notebook.
	Search func(filter domain.NoteFilter, notes []domain.Note) []domain.Note

	// SharedStores are the services returned by Shared, by note store URL.
	SharedStores map[string]*FakeService
	// ShareTokens maps share keys to the tokens AuthenticateToSharedNotebook returns.
	ShareTokens    map[string]string
	SharedNotebook domain.SharedNotebook

	Err error

	// Calls records method names in call order.
	Calls   []string
	Filters []domain.NoteFilter
	Token   string

	nextID int
}

// NewFakeService returns an empty service for user.
func NewFakeService(user domain.User) *FakeService {
	return &FakeService{User: user}
}

func (f *FakeService) record(method string) error {
	f.Calls = append(f.Calls, method)
	return f.Err
}

func (f *FakeService) guid(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

// Called reports how many times method was called.
func (f *FakeService) Called(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.Calls {
		if c == method {
			n++
		}
	}
	return n
}

// Note returns the stored note with guid.
func (f *FakeService) Note(guid string) (domain.Note, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.noteIndex(guid)
	if i < 0 {
		return domain.Note{}, false
	}
	return f.Notes[i], true
}

func (f *FakeService) noteIndex(guid string) int {
	return slices.IndexFunc(f.Notes, func(n domain.Note) bool { return n.GUID == guid })
}

func notFound(identifier, key string) error {
	return &notestore.NotFoundError{Identifier: identifier, Key: key}
}

func (f *FakeService) GetUser(context.Context) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetUser"); err != nil {
		return nil, err
	}
	u := f.User
	return &u, nil
}

func (f *FakeService) GetNote(_ context.Context, guid string, withContent, _ bool) (*domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetNote"); err != nil {
		return nil, err
	}

	i := f.noteIndex(guid)
	if i < 0 {
		return nil, notFound("Note.guid", guid)
	}
	n := f.Notes[i]
	if !withContent {
		n.Content = ""
	}
	return &n, nil
}

func (f *FakeService) GetNoteContent(_ context.Context, guid string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetNoteContent"); err != nil {
		return "", err
	}

	i := f.noteIndex(guid)
	if i < 0 {
		return "", notFound("Note.guid", guid)
	}
	return f.Notes[i].Content, nil
}

func (f *FakeService) FindNotesMetadata(_ context.Context, filter domain.NoteFilter, offset, maxNotes int) (*domain.NotesMetadataList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("FindNotesMetadata"); err != nil {
		return nil, err
	}
	f.Filters = append(f.Filters, filter)

	var matched []domain.Note
	if f.Search != nil {
		matched = f.Search(filter, slices.Clone(f.Notes))
	} else {
		for _, n := range f.Notes {
			if filter.NotebookGUID == "" || n.NotebookGUID == filter.NotebookGUID {
				matched = append(matched, n)
			}
		}
	}

	list := &domain.NotesMetadataList{StartIndex: offset, TotalNotes: len(matched)}
	for i := offset; i < len(matched) && len(list.Notes) < maxNotes; i++ {
		n := matched[i]
		n.Content = ""
		list.Notes = append(list.Notes, n)
	}
	return list, nil
}

func (f *FakeService) FindNotes(ctx context.Context, filter domain.NoteFilter, count int) (*domain.NotesMetadataList, error) {
	return f.FindNotesMetadata(ctx, filter, 0, count)
}

func (f *FakeService) CreateNote(_ context.Context, note *domain.Note) (*domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateNote"); err != nil {
		return nil, err
	}

	n := *note
	n.GUID = f.guid("note")
	f.Notes = append(f.Notes, n)
	return &n, nil
}

func (f *FakeService) UpdateNote(_ context.Context, note *domain.Note) (*domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateNote"); err != nil {
		return nil, err
	}

	i := f.noteIndex(note.GUID)
	if i < 0 {
		return nil, notFound("Note.guid", note.GUID)
	}
	f.Notes[i] = *note
	n := *note
	return &n, nil
}

func (f *FakeService) DeleteNote(_ context.Context, guid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteNote"); err != nil {
		return err
	}

	i := f.noteIndex(guid)
	if i < 0 {
		return notFound("Note.guid", guid)
	}
	f.Notes = slices.Delete(f.Notes, i, i+1)
	return nil
}

func (f *FakeService) ListNotebooks(context.Context) ([]domain.Notebook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListNotebooks"); err != nil {
		return nil, err
	}
	return slices.Clone(f.Notebooks), nil
}

func (f *FakeService) ListLinkedNotebooks(context.Context) ([]domain.LinkedNotebook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListLinkedNotebooks"); err != nil {
		return nil, err
	}
	return slices.Clone(f.Linked), nil
}

func (f *FakeService) GetNotebook(_ context.Context, guid string) (*domain.Notebook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetNotebook"); err != nil {
		return nil, err
	}
	for _, nb := range f.Notebooks {
		if nb.GUID == guid {
			return &nb, nil
		}
	}
	return nil, notFound("Notebook.guid", guid)
}

func (f *FakeService) CreateNotebook(_ context.Context, notebook domain.Notebook) (*domain.Notebook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateNotebook"); err != nil {
		return nil, err
	}
	notebook.GUID = f.guid("notebook")
	f.Notebooks = append(f.Notebooks, notebook)
	return &notebook, nil
}

func (f *FakeService) UpdateNotebook(_ context.Context, notebook domain.Notebook) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateNotebook"); err != nil {
		return err
	}
	for i := range f.Notebooks {
		if f.Notebooks[i].GUID == notebook.GUID {
			f.Notebooks[i] = notebook
			return nil
		}
	}
	return notFound("Notebook.guid", notebook.GUID)
}

func (f *FakeService) ExpungeNotebook(_ context.Context, guid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ExpungeNotebook"); err != nil {
		return err
	}
	i := slices.IndexFunc(f.Notebooks, func(nb domain.Notebook) bool { return nb.GUID == guid })
	if i < 0 {
		return notFound("Notebook.guid", guid)
	}
	f.Notebooks = slices.Delete(f.Notebooks, i, i+1)
	return nil
}

func (f *FakeService) ListTags(context.Context) ([]domain.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListTags"); err != nil {
		return nil, err
	}
	return slices.Clone(f.Tags), nil
}

func (f *FakeService) GetTag(_ context.Context, guid string) (*domain.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetTag"); err != nil {
		return nil, err
	}
	for _, t := range f.Tags {
		if t.GUID == guid {
			return &t, nil
		}
	}
	return nil, notFound("Tag.guid", guid)
}

func (f *FakeService) CreateTag(_ context.Context, tag domain.Tag) (*domain.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateTag"); err != nil {
		return nil, err
	}
	tag.GUID = f.guid("tag")
	f.Tags = append(f.Tags, tag)
	return &tag, nil
}

func (f *FakeService) UpdateTag(_ context.Context, tag domain.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateTag"); err != nil {
		return err
	}
	for i := range f.Tags {
		if f.Tags[i].GUID == tag.GUID {
			f.Tags[i] = tag
			return nil
		}
	}
	return notFound("Tag.guid", tag.GUID)
}

func (f *FakeService) ExpungeTag(_ context.Context, guid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ExpungeTag"); err != nil {
		return err
	}
	i := slices.IndexFunc(f.Tags, func(t domain.Tag) bool { return t.GUID == guid })
	if i < 0 {
		return notFound("Tag.guid", guid)
	}
	f.Tags = slices.Delete(f.Tags, i, i+1)
	return nil
}

func (f *FakeService) AuthenticateToSharedNotebook(_ context.Context, shareKey string) (*domain.AuthenticationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AuthenticateToSharedNotebook"); err != nil {
		return nil, err
	}
	token, ok := f.ShareTokens[shareKey]
	if !ok {
		return nil, notFound("SharedNotebook.shareKey", shareKey)
	}
	return &domain.AuthenticationResult{AuthenticationToken: token}, nil
}

func (f *FakeService) GetSharedNotebookByAuth(context.Context) (*domain.SharedNotebook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetSharedNotebookByAuth"); err != nil {
		return nil, err
	}
	nb := f.SharedNotebook
	return &nb, nil
}

// Shared returns the registered store for noteStoreURL, remembering token.
// An unknown URL yields a service whose calls fail.
func (f *FakeService) Shared(noteStoreURL, token string) domain.NoteService {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "Shared")

	shared, ok := f.SharedStores[noteStoreURL]
	if !ok {
		return &FakeService{Err: fmt.Errorf("no note store at %s", noteStoreURL)}
	}
	shared.mu.Lock()
	shared.Token = token
	shared.mu.Unlock()
	return shared
}

// TitleSearch is a Search func that matches notes whose title contains the
// intitle: term of the filter, case-insensitively.
func TitleSearch(filter domain.NoteFilter, notes []domain.Note) []domain.Note {
	term := filter.Words
	if i := strings.Index(term, "intitle:"); i >= 0 {
		term = term[i+len("intitle:"):]
	}
	term = strings.ToLower(strings.Trim(strings.TrimSpace(term), `"`))

	var matched []domain.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), term) {
			matched = append(matched, n)
		}
	}
	return matched
}

var _ domain.NoteService = (*FakeService)(nil)
