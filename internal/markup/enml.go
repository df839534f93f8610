// Package markup converts between the editable note text and ENML, the
// XHTML dialect the note service stores.
package markup

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gnote-tools/cli/internal/domain"
)

// Format selects how note text maps to ENML.
type Format int

const (
	Plain Format = iota
	Markdown
	Pre
	HTML
)

func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case Pre:
		return "pre"
	case HTML:
		return "html"
	default:
		return "plain"
	}
}

// Note file extensions by format.
var (
	MarkdownExtensions = []string{".md", ".markdown"}
	HTMLExtensions     = []string{".html", ".org"}
)

// FormatForExtension picks the format of an edited file from its extension.
// Unknown extensions are plain text.
func FormatForExtension(ext string) Format {
	ext = strings.ToLower(ext)
	for _, e := range MarkdownExtensions {
		if e == ext {
			return Markdown
		}
	}
	for _, e := range HTMLExtensions {
		if e == ext {
			return HTML
		}
	}
	return Plain
}

// FormatForFile is FormatForExtension on the extension of path.
func FormatForFile(path string) Format {
	return FormatForExtension(filepath.Ext(path))
}

const (
	enmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<!DOCTYPE en-note SYSTEM "http://xml.evernote.com/pub/enml2.dtd">` + "\n"

	noteClose = "</en-note>"
)

// Wrap puts an XHTML body into the ENML envelope.
func Wrap(body string) string {
	return enmlHeader + "<en-note>" + body + noteClose
}

// Empty is the ENML of a note without content.
func Empty() string {
	return Wrap("")
}

// MediaNodes returns the en-media references for resources.
func MediaNodes(resources []domain.Resource) string {
	var b strings.Builder
	for _, r := range resources {
		fmt.Fprintf(&b, `<en-media type="%s" hash="%s" />`, html.EscapeString(r.Mime), html.EscapeString(r.Data.BodyHash))
	}
	return b.String()
}

// AppendMedia inserts en-media references for resources before the closing
// en-note tag.
func AppendMedia(enml string, resources []domain.Resource) string {
	if len(resources) == 0 {
		return enml
	}
	media := MediaNodes(resources)
	if i := strings.LastIndex(enml, noteClose); i >= 0 {
		return enml[:i] + media + enml[i:]
	}
	return enml + media
}

// Image is an image resource referenced by a note.
type Image struct {
	Hash      string
	Extension string
}

// ImageRefs lists the image media of a note in document order.
func ImageRefs(enml string) ([]Image, error) {
	nodes, err := parse(enml)
	if err != nil {
		return nil, err
	}

	var images []Image
	walk(nodes, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "en-media" {
			return
		}
		kind, ext, ok := strings.Cut(attr(n, "type"), "/")
		hash := attr(n, "hash")
		if ok && kind == "image" && hash != "" {
			images = append(images, Image{Hash: hash, Extension: ext})
		}
	})
	return images, nil
}

var selfClosing = regexp.MustCompile(`<(en-media|en-todo|en-crypt)(\s[^>]*?)?\s*/>`)

// parse reads an ENML document or an XHTML fragment. The HTML parser does
// not honour self-closing tags on non-void elements, so ENML's are expanded
// first.
func parse(src string) ([]*html.Node, error) {
	src = selfClosing.ReplaceAllString(src, "<$1$2></$1>")
	if i := strings.Index(src, "<en-note"); i >= 0 {
		src = src[i:]
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("parse note: %w", err)
	}
	return nodes, nil
}

func render(nodes []*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("render note: %w", err)
		}
	}
	return b.String(), nil
}

func walk(nodes []*html.Node, fn func(*html.Node)) {
	for _, n := range nodes {
		fn(n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk([]*html.Node{c}, fn)
		}
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
