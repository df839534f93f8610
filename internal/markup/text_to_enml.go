package markup

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// Options tune TextToENML.
type Options struct {
	// RawMarkdown keeps HTML written in markdown instead of escaping it.
	RawMarkdown bool

	// Extras enables markdown extensions by name: tables, footnotes,
	// strike, linkify, definition-list, smarty-pants.
	Extras []string
}

var markdownExtras = map[string]goldmark.Extender{
	"tables":          extension.Table,
	"footnotes":       extension.Footnote,
	"strike":          extension.Strikethrough,
	"linkify":         extension.Linkify,
	"definition-list": extension.DefinitionList,
	"smarty-pants":    extension.Typographer,
}

// UnknownExtras returns the names that are not supported markdown extras.
func UnknownExtras(names []string) (unknown []string) {
	for _, name := range names {
		if _, ok := markdownExtras[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// TextToENML converts edited note text to an ENML document.
func TextToENML(text string, format Format, opts Options) (string, error) {
	var body string
	var err error

	switch format {
	case Pre:
		body = "<pre>" + html.EscapeString(text) + "</pre>"
	case Markdown:
		body, err = markdownToXHTML(text, opts)
	case HTML:
		body, err = sanitizeHTML(text)
	default:
		body = plainToXHTML(text)
	}
	if err != nil {
		return "", fmt.Errorf("convert %s to ENML: %w", format, err)
	}

	return Wrap(body), nil
}

var mediaTag = regexp.MustCompile(`<en-media\s[^>]*>(</en-media>)?`)

// escapeMarkdown escapes &, < and > outside en-media tags, which carry
// attachments through an edit.
func escapeMarkdown(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range mediaTag.FindAllStringIndex(text, -1) {
		b.WriteString(escapeXML(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(escapeXML(text[last:]))
	return b.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

func markdownToXHTML(text string, opts Options) (string, error) {
	if !opts.RawMarkdown {
		text = escapeMarkdown(text)
	}

	var exts []goldmark.Extender
	for _, name := range opts.Extras {
		if ext, ok := markdownExtras[name]; ok {
			exts = append(exts, ext)
		}
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			gmhtml.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}

	out := buf.String()
	if !strings.Contains(out, "<ul>") {
		return out, nil
	}
	return checklists(out)
}

var todoMarker = regexp.MustCompile(`^\[([ xX])\]`)

// checklists turns lists whose items all start with [ ] or [x] into en-todo
// lines. Other lists are left alone.
func checklists(body string) (string, error) {
	nodes, err := parse(body)
	if err != nil {
		return "", err
	}

	changed := false
	var lists []*html.Node
	walk(nodes, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "ul" {
			lists = append(lists, n)
		}
	})

	for _, ul := range lists {
		var tasks []*html.Node
		isTodo := true

		for li := ul.FirstChild; li != nil; li = li.NextSibling {
			if li.Type != html.ElementNode || li.Data != "li" {
				continue
			}
			text := strings.TrimSpace(textContent(li))
			m := todoMarker.FindStringSubmatch(text)
			if m == nil {
				isTodo = false
				break
			}

			todo := &html.Node{Type: html.ElementNode, Data: "en-todo"}
			if m[1] != " " {
				todo.Attr = []html.Attribute{{Key: "checked", Val: "true"}}
			}
			div := &html.Node{Type: html.ElementNode, Data: "div"}
			div.AppendChild(todo)
			div.AppendChild(&html.Node{Type: html.TextNode, Data: strings.TrimSpace(text[3:])})
			tasks = append(tasks, div)
		}

		if !isTodo || len(tasks) == 0 {
			continue
		}

		changed = true
		for _, task := range tasks {
			insertBefore(ul, task)
		}
		removeNode(ul)
		nodes = replaceTop(nodes, ul, tasks)
	}

	if !changed {
		return body, nil
	}
	return render(nodes)
}

func insertBefore(ref, n *html.Node) {
	if ref.Parent != nil {
		ref.Parent.InsertBefore(n, ref)
	}
}

func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// replaceTop swaps a top-level fragment node for its replacements.
func replaceTop(nodes []*html.Node, old *html.Node, repl []*html.Node) []*html.Node {
	for i, n := range nodes {
		if n == old {
			out := append([]*html.Node{}, nodes[:i]...)
			out = append(out, repl...)
			return append(out, nodes[i+1:]...)
		}
	}
	return nodes
}

// Attributes dropped from user HTML: ENML rejects them.
var forbiddenAttrs = map[string]bool{
	"id":        true,
	"class":     true,
	"accesskey": true,
	"data":      true,
	"dynsrc":    true,
	"tabindex":  true,
}

func sanitizeHTML(text string) (string, error) {
	nodes, err := parse(text)
	if err != nil {
		return "", err
	}

	walk(nodes, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if forbiddenAttrs[a.Key] || strings.HasPrefix(a.Key, "on") {
				continue
			}
			kept = append(kept, a)
		}
		n.Attr = kept
	})

	return render(nodes)
}

var plainEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func plainToXHTML(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line == "" {
			b.WriteString("<div><br/></div>")
			continue
		}
		line = plainEscaper.Replace(line)
		line = strings.ReplaceAll(line, "[x]", `<en-todo checked="true"></en-todo>`)
		line = strings.ReplaceAll(line, "[ ]", "<en-todo></en-todo>")
		b.WriteString("<div>" + line + "</div>")
	}
	return b.String()
}
