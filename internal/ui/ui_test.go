package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/domain"
)

func ms(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local).UnixMilli()
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPager("less"))

	_, _ = w.Printf("%d notes\n", 3)
	_, _ = w.Println("done")
	w.Pager("paged\n")

	require.Equal(t, "3 notes\ndone\npaged\n", buf.String())
}

func TestSeparator(t *testing.T) {
	tests := []struct {
		symbol, title, want string
	}{
		{"#", "URL", strings.Repeat("#", 19) + " URL " + strings.Repeat("#", 19)},
		{"=", "META", strings.Repeat("=", 19) + " META " + strings.Repeat("=", 18)},
		{"|", "REMINDERS", strings.Repeat("|", 16) + " REMINDERS " + strings.Repeat("|", 16)},
		{"-", "CONTENT", strings.Repeat("-", 17) + " CONTENT " + strings.Repeat("-", 17)},
		{"-", "", strings.Repeat("-", 40) + "\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Separator(&buf, tt.symbol, tt.title)
		require.Equal(t, tt.want+"\n", buf.String(), tt.title)
	}
}

func TestPrintList(t *testing.T) {
	notes := []domain.Note{
		{GUID: "g-1", Title: "First", Created: ms(2024, 1, 2), Updated: ms(2024, 1, 3), NotebookName: "Work", TagNames: []string{"a", "b"}},
		{GUID: "g-2", Title: "Second", Created: ms(2024, 2, 2), Updated: ms(2024, 2, 3), NotebookName: "Home"},
	}
	items := NoteItems(notes, func(guid string) string { return WebClientURL("www.evernote.com", guid) })

	var buf bytes.Buffer
	SearchResult(&buf, "intitle:F", items, ListOptions{})
	require.Equal(t, "Search request: intitle:F\n"+
		"Found 2 items\n"+
		"  1 : 2024-01-02 2024-01-03 First\n"+
		"  2 : 2024-02-02 2024-02-03 Second\n", buf.String())

	line := ItemLine(1, items[0], ListOptions{ShowGUID: true, ShowNotebook: true, ShowTags: true, ShowURL: true})
	require.Equal(t, "g-1 : 2024-01-02 2024-01-03 Work              First #a #b >>> https://www.evernote.com/Home.action?#n=g-1", line)

	buf.Reset()
	PrintList(&buf, "", TagItems([]domain.Tag{{GUID: "t", Name: "home"}}), ListOptions{})
	require.Equal(t, "Found 1 item\n  1 : home\n", buf.String())

	buf.Reset()
	PrintList(&buf, "", NotebookItems([]domain.Notebook{{GUID: "n", Name: "Work"}}, []domain.LinkedNotebook{{GUID: "l", ShareName: "Team"}}), ListOptions{ShowGUID: true})
	require.Equal(t, "Found 2 items\nn : Work\nl : Team\n", buf.String())
}

func TestShowNote(t *testing.T) {
	var buf bytes.Buffer
	ShowNote(&buf, NoteView{
		Note: domain.Note{
			GUID:         "abc",
			Title:        "Plan",
			Created:      ms(2024, 1, 2),
			Updated:      ms(2024, 1, 3),
			NotebookName: "Work",
			TagNames:     []string{"x", "y"},
			Attributes:   domain.NoteAttributes{SourceURL: "https://example.com", ReminderOrder: 42},
		},
		Host:    "www.evernote.com",
		UserID:  7,
		ShardID: "s1",
		Content: "body\n",
	})

	want := strings.Join([]string{
		"################### URL ###################",
		"NoteLink: https://www.evernote.com/shard/s1/nl/7/abc",
		"WebClientURL: https://www.evernote.com/Home.action?#n=abc",
		"################## TITLE ##################",
		"Plan",
		"=================== META ==================",
		"Notebook: Work",
		"Created: 2024-01-02",
		"Updated: 2024-01-03",
		"sourceURL: https://example.com",
		"|||||||||||||||| REMINDERS ||||||||||||||||",
		"Order: 42",
		"Time: None",
		"Done: None",
		"----------------- CONTENT -----------------",
		"Tags: x, y",
		"body",
		"",
	}, "\n")
	require.Equal(t, want+"\n", buf.String())
}

func TestShowUser(t *testing.T) {
	u := domain.User{Username: "jo", Name: "Jo", Email: "jo@example.com", Timezone: "UTC", Accounting: domain.Accounting{UploadLimit: 62914560}}

	var buf bytes.Buffer
	ShowUser(&buf, u, false)
	require.Equal(t, "################ USER INFO ################\n"+
		"Username         : jo\n"+
		"Name             : Jo\n"+
		"Email            : jo@example.com\n", buf.String())

	buf.Reset()
	ShowUser(&buf, u, true)
	require.Contains(t, buf.String(), "Upload limit     : 60.00 MB\n")
	require.Contains(t, buf.String(), "Upload limit end : None\n")
	require.Contains(t, buf.String(), "Timezone         : UTC\n")
}

func TestPrintAbout(t *testing.T) {
	var buf bytes.Buffer
	PrintAbout(&buf, "1.2.3")
	require.True(t, strings.HasPrefix(buf.String(), "Version: 1.2.3\n"))
}

type countingProgress struct{ stops int }

func (p *countingProgress) SetMessage(string) {}
func (p *countingProgress) Stop()             { p.stops++ }

func TestPrompter_Confirm(t *testing.T) {
	var out, errOut bytes.Buffer
	progress := &countingProgress{}
	p := NewPrompter(strings.NewReader("maybe\nY\n"), &out, &errOut, WithProgress(progress))

	ok, err := p.Confirm("Delete?")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Delete?\nYes/No: Yes/No: ", out.String())
	require.Equal(t, "Incorrect answer \"maybe\", please try again:\n\n", errOut.String())
	require.NotZero(t, progress.stops)

	p = NewPrompter(strings.NewReader("no\n"), io.Discard, io.Discard)
	ok, err = p.Confirm("Delete?")
	require.NoError(t, err)
	require.False(t, ok)

	p = NewPrompter(strings.NewReader(""), io.Discard, io.Discard)
	_, err = p.Confirm("Delete?")
	require.ErrorIs(t, err, io.EOF)
}

func TestPrompter_ReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("S=s1:U=1\r\nlast"), &out, io.Discard)

	line, err := p.ReadLine("Token: ")
	require.NoError(t, err)
	require.Equal(t, "S=s1:U=1", line)

	line, err = p.ReadPassword("Again: ")
	require.NoError(t, err)
	require.Equal(t, "last", line)
	require.Equal(t, "Token: Again: ", out.String())
}

func TestPrompter_Select(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrompter(strings.NewReader("7\n2\n"), &out, &errOut)

	i, err := p.Select("Found 2 items", []string{"first", "second"})
	require.NoError(t, err)
	require.Equal(t, 1, i)
	require.Equal(t, "Found 2 items\n  1 : first\n  2 : second\n  0 : -Cancel-\n: : ", out.String())
	require.Contains(t, errOut.String(), `Incorrect number "7"`)

	for _, answer := range []string{"0\n", "q\n"} {
		p = NewPrompter(strings.NewReader(answer), io.Discard, io.Discard)
		i, err = p.Select("", []string{"first"})
		require.NoError(t, err)
		require.Equal(t, -1, i)
	}

	p = NewPrompter(strings.NewReader(""), io.Discard, io.Discard, WithPicker(func(string, []string) (int, error) {
		return 0, nil
	}))
	i, err = p.Select("", []string{"first"})
	require.NoError(t, err)
	require.Equal(t, 0, i)
}

func TestPicker(t *testing.T) {
	press := func(m tea.Model, msgs ...tea.KeyMsg) picker {
		for _, msg := range msgs {
			m, _ = m.Update(msg)
		}
		return m.(picker)
	}
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m := press(newPicker("Pick", []string{"a", "b", "c"}), down, down, enter)
	require.Equal(t, 2, m.chosen)
	require.True(t, m.done)
	require.Empty(t, m.View())

	m = press(newPicker("Pick", []string{"a", "b", "c"}), up, enter)
	require.Equal(t, 2, m.chosen)

	m = press(newPicker("Pick", []string{"a", "b"}), down, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.Equal(t, -1, m.chosen)

	m = press(newPicker("Pick", []string{"a", "b"}), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, m.cursor)
	require.Contains(t, m.View(), "→ ")
}

func TestProgress_Disabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressFor(&buf, false)
	p.SetMessage("Loading note...")
	p.Stop()

	require.Equal(t, "Loading note...", p.Message())
	require.Empty(t, buf.String())
}

func TestProgressModel(t *testing.T) {
	var m tea.Model = progressModel{message: "a"}
	m, _ = m.Update(messageMsg("Saving note..."))
	require.Contains(t, m.View(), " : Saving note...")

	m, cmd := m.Update(stopMsg{})
	require.NotNil(t, cmd)
	require.Empty(t, m.View())
}
