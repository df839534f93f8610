package markup

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gnote-tools/cli/internal/domain"
)

const (
	headerMarkdown = "# Header 1\n\n## Header 2\n\nLine 1\n\n_Line 2_\n\n**Line 3**\n"

	headerHTML = "<h1>Header 1</h1>\n<h2>Header 2</h2>\n<p>Line 1</p>\n<p><em>Line 2</em></p>\n<p><strong>Line 3</strong></p>\n"

	todoHTML = `<div><en-todo></en-todo>item 1</div><div><en-todo checked="true"></en-todo>item 2</div><div><en-todo></en-todo>item 3</div>` + "\n"
)

func diff(t *testing.T, want, got string) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestWrap(t *testing.T) {
	diff(t, `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE en-note SYSTEM "http://xml.evernote.com/pub/enml2.dtd">
<en-note>test</en-note>`, Wrap("test"))
}

func TestTextToENML_Markdown(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
		want string
	}{
		{name: "headers and emphasis", text: headerMarkdown, want: headerHTML},
		{name: "html is escaped", text: "<what ever>", want: "<p>&lt;what ever&gt;</p>\n"},
		{name: "raw markdown keeps html", text: "<b>bold</b>", opts: Options{RawMarkdown: true}, want: "<p><b>bold</b></p>\n"},
		{name: "brackets are not a checklist", text: " Item head[0]; ", want: "<p>Item head[0];</p>\n"},
		{name: "single newline is a hard break", text: "a\nb", want: "<p>a<br />\nb</p>\n"},
		{name: "loose checklist", text: "\n* [ ]item 1\n\n* [x]item 2\n\n* [ ]item 3\n\n", want: todoHTML},
		{name: "tight checklist", text: "* [ ] item 1\n* [x] item 2\n* [ ] item 3\n", want: todoHTML},
		{name: "mixed list stays a list", text: "* [ ] a\n* b\n", want: "<ul>\n<li>[ ] a</li>\n<li>b</li>\n</ul>\n"},
		{
			name: "media survives escaping",
			text: "see\n\n<en-media type=\"image/png\" hash=\"abc\" />\n",
			want: "<p>see</p>\n<en-media type=\"image/png\" hash=\"abc\" />\n",
		},
		{
			name: "tables extra",
			text: "| a | b |\n| - | - |\n| 1 | 2 |\n",
			opts: Options{Extras: []string{"tables"}},
			want: "<table>\n<thead>\n<tr>\n<th>a</th>\n<th>b</th>\n</tr>\n</thead>\n<tbody>\n<tr>\n<td>1</td>\n<td>2</td>\n</tr>\n</tbody>\n</table>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TextToENML(tt.text, Markdown, tt.opts)
			require.NoError(t, err)
			diff(t, Wrap(tt.want), got)
		})
	}
}

func TestTextToENML_OtherFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		text   string
		want   string
	}{
		{name: "pre", format: Pre, text: "a < b\n  indented", want: "<pre>a &lt; b\n  indented</pre>"},
		{name: "plain", format: Plain, text: "one\n\n[x] done & dusted", want: `<div>one</div><div><br/></div><div><en-todo checked="true"></en-todo> done &amp; dusted</div>`},
		{name: "plain quotes", format: Plain, text: `say "hi"`, want: "<div>say &quot;hi&quot;</div>"},
		{
			name:   "html strips forbidden attributes",
			format: HTML,
			text:   `<p id="x" class="y" onclick="evil()" style="color:red">hi <a href="https://example.com" tabindex="1">link</a></p>`,
			want:   `<p style="color:red">hi <a href="https://example.com">link</a></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TextToENML(tt.text, tt.format, Options{})
			require.NoError(t, err)
			diff(t, Wrap(tt.want), got)
		})
	}
}

func TestENMLToText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "headers and emphasis", body: headerHTML, want: headerMarkdown},
		{name: "todo", body: todoHTML, want: "* [ ]item 1\n* [x]item 2\n* [ ]item 3\n"},
		{name: "self-closing todo", body: `<div><en-todo checked="true"/>milk</div>`, want: "* [x]milk\n"},
		{name: "div lines", body: "<div>one</div><div><br/></div><div>two</div>", want: "one\n\ntwo\n"},
		{name: "entities are unescaped", body: "<p>&lt;what ever&gt; &amp; more</p>", want: "<what ever> & more\n"},
		{name: "no-break spaces", body: "<div>a&nbsp;b&nbsp;&nbsp;</div>", want: "a b\n"},
		{name: "link", body: `<p>go <a href="https://example.com">there</a></p>`, want: "go [there](https://example.com)\n"},
		{name: "bare link", body: `<p><a href="https://example.com">https://example.com</a></p>`, want: "<https://example.com>\n"},
		{name: "lists", body: "<ul><li>a</li><li>b<ul><li>c</li></ul></li></ul><ol><li>x</li><li>y</li></ol>", want: "* a\n* b\n  * c\n\n1. x\n2. y\n"},
		{name: "loose list", body: "<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n", want: "* a\n* b\n"},
		{
			name: "media kept as markup",
			body: `<div>pic:<en-media hash="abc" type="image/png"/></div>`,
			want: `pic:<en-media hash="abc" type="image/png" />` + "\n",
		},
		{name: "pre block", body: "<p>code:</p><pre>x := 1\n</pre>", want: "code:\n\n```\nx := 1\n```\n"},
		{name: "blockquote", body: "<blockquote><p>quoted</p></blockquote>", want: "> quoted\n"},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ENMLToText(Wrap(tt.body), Markdown)
			require.NoError(t, err)
			diff(t, tt.want, got)
		})
	}
}

func TestENMLToText_Pre(t *testing.T) {
	got, err := ENMLToText(Wrap("<pre>first &lt;1&gt;\n  kept</pre><pre>second</pre>"), Pre)
	require.NoError(t, err)
	diff(t, "first <1>\n  kept", got)

	got, err = ENMLToText(Wrap("<p>no pre here</p>"), Pre)
	require.NoError(t, err)
	diff(t, "no pre here\n", got)
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		headerMarkdown,
		"* [ ]item 1\n* [x]item 2\n* [ ]item 3\n",
		"<what ever>\n",
		"a\nb\n",
	} {
		enml, err := TextToENML(text, Markdown, Options{})
		require.NoError(t, err)
		back, err := ENMLToText(enml, Markdown)
		require.NoError(t, err)
		diff(t, text, back)
	}
}

func TestFormatForExtension(t *testing.T) {
	tests := map[string]Format{
		".md":       Markdown,
		".markdown": Markdown,
		".MD":       Markdown,
		".html":     HTML,
		".org":      HTML,
		".txt":      Plain,
		"":          Plain,
	}
	for ext, want := range tests {
		require.Equal(t, want, FormatForExtension(ext), ext)
	}
	require.Equal(t, Markdown, FormatForFile("/tmp/note-123.markdown"))
}

func TestMedia(t *testing.T) {
	resources := []domain.Resource{
		{Mime: "image/png", Data: domain.Data{BodyHash: "aaa"}},
		{Mime: "application/pdf", Data: domain.Data{BodyHash: "bbb"}},
	}

	diff(t, `<en-media type="image/png" hash="aaa" /><en-media type="application/pdf" hash="bbb" />`, MediaNodes(resources))
	diff(t, Wrap(`<p>x</p><en-media type="image/png" hash="aaa" />`), AppendMedia(Wrap("<p>x</p>"), resources[:1]))
	diff(t, Wrap("x"), AppendMedia(Wrap("x"), nil))

	images, err := ImageRefs(Wrap("<p>x</p>" + MediaNodes(resources)))
	require.NoError(t, err)
	require.Equal(t, []Image{{Hash: "aaa", Extension: "png"}}, images)
}

func TestUnknownExtras(t *testing.T) {
	require.Empty(t, UnknownExtras([]string{"tables", "footnotes"}))
	require.Equal(t, []string{"wiki"}, UnknownExtras([]string{"tables", "wiki"}))
}

func TestNewResource(t *testing.T) {
	r := NewResource("/tmp/photos/cat.PNG", []byte("meow"))

	require.Equal(t, "image/png", r.Mime)
	require.Equal(t, "cat.PNG", r.FileName)
	require.Equal(t, 4, r.Data.Size)
	require.Equal(t, "4a4be40c96ac6314e91d93f38043a634", r.Data.BodyHash)

	require.Equal(t, "application/octet-stream", NewResource("blob.unknownext", nil).Mime)
}

func TestEmbedImages(t *testing.T) {
	load := func(src string) (domain.Resource, error) {
		return domain.Resource{Mime: "image/png", Data: domain.Data{BodyHash: "h-" + src}}, nil
	}

	out, resources, err := EmbedImages(`<p>hi <img src="a.png" alt="cat"></p><p><img alt="none"></p>`, load)
	require.NoError(t, err)
	diff(t, `<p>hi <en-media type="image/png" hash="h-a.png"></en-media></p><p><img alt="none"/></p>`, out)
	require.Len(t, resources, 1)

	out, resources, err = EmbedImages("<p>plain</p>", load)
	require.NoError(t, err)
	require.Equal(t, "<p>plain</p>", out)
	require.Empty(t, resources)

	_, _, err = EmbedImages(`<img src="gone.png">`, func(string) (domain.Resource, error) {
		return domain.Resource{}, errors.New("missing")
	})
	require.EqualError(t, err, "missing")
}
