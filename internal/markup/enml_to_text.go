package markup

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ENMLToText converts ENML to the text shown in the editor. Pre returns the
// first <pre> block verbatim, or the markdown rendition when the note has
// none. Every other format yields markdown.
func ENMLToText(enml string, format Format) (string, error) {
	nodes, err := parse(enml)
	if err != nil {
		return "", err
	}

	if format == Pre {
		var pre *html.Node
		walk(nodes, func(n *html.Node) {
			if pre == nil && n.Type == html.ElementNode && n.Data == "pre" {
				pre = n
			}
		})
		if pre != nil {
			return textContent(pre), nil
		}
	}

	c := &converter{}
	for _, n := range nodes {
		c.node(n)
	}
	return c.String(), nil
}

// converter writes markdown for a node tree. Blocks are separated by a blank
// line; <div> lines by a single newline.
type converter struct {
	b      strings.Builder
	depth  int // list nesting
	inPre  bool
	inItem bool
}

var (
	spaceRun     = regexp.MustCompile(`[ \t\r\n]+`)
	trailingWS   = regexp.MustCompile(`[ \t]+\n`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
)

func (c *converter) String() string {
	out := strings.ReplaceAll(c.b.String(), "\u00a0", " ")
	out = trailingWS.ReplaceAllString(out+"\n", "\n")
	out = blankLineRun.ReplaceAllString(out, "\n\n")
	out = strings.Trim(out, "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func (c *converter) atLineStart() bool {
	s := c.b.String()
	return s == "" || strings.HasSuffix(s, "\n")
}

func (c *converter) newline() {
	if !c.atLineStart() {
		c.b.WriteString("\n")
	}
}

func (c *converter) blankLine() {
	s := c.b.String()
	switch {
	case s == "", strings.HasSuffix(s, "\n\n"):
	case strings.HasSuffix(s, "\n"):
		c.b.WriteString("\n")
	default:
		c.b.WriteString("\n\n")
	}
}

// block opens or closes a block element; list items only need a newline.
func (c *converter) block() {
	if c.inItem {
		c.newline()
		return
	}
	c.blankLine()
}

func (c *converter) text(s string) {
	if c.inPre {
		c.b.WriteString(s)
		return
	}
	s = spaceRun.ReplaceAllString(s, " ")
	if c.atLineStart() {
		s = strings.TrimLeft(s, " ")
	}
	c.b.WriteString(s)
}

func (c *converter) children(n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.node(ch)
	}
}

// inline renders the children of n into a string without touching c.
func (c *converter) inline(n *html.Node) string {
	sub := &converter{depth: c.depth, inItem: true}
	sub.children(n)
	return strings.TrimSpace(sub.b.String())
}

func (c *converter) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.text(n.Data)
		return
	case html.ElementNode:
	default:
		c.children(n)
		return
	}

	switch n.Data {
	case "head", "script", "style", "title":
	case "h1", "h2", "h3", "h4", "h5", "h6":
		c.blankLine()
		c.b.WriteString(strings.Repeat("#", int(n.Data[1]-'0')) + " ")
		c.b.WriteString(c.inline(n))
		c.blankLine()
	case "p":
		c.block()
		c.children(n)
		c.block()
	case "div":
		c.newline()
		c.children(n)
		c.newline()
	case "br":
		c.b.WriteString("\n")
	case "hr":
		c.blankLine()
		c.b.WriteString("---")
		c.blankLine()
	case "em", "i":
		c.wrapInline(n, "_")
	case "strong", "b":
		c.wrapInline(n, "**")
	case "s", "strike", "del":
		c.wrapInline(n, "~~")
	case "code":
		if c.inPre {
			c.children(n)
			return
		}
		c.wrapInline(n, "`")
	case "a":
		text := c.inline(n)
		href := attr(n, "href")
		switch {
		case href == "":
			c.text(text)
		case text == "" || text == href:
			c.b.WriteString("<" + href + ">")
		default:
			c.b.WriteString("[" + text + "](" + href + ")")
		}
	case "img":
		c.b.WriteString("![" + attr(n, "alt") + "](" + attr(n, "src") + ")")
	case "pre":
		c.blankLine()
		c.b.WriteString("```\n")
		c.inPre = true
		c.children(n)
		c.inPre = false
		c.newline()
		c.b.WriteString("```")
		c.blankLine()
	case "blockquote":
		c.blankLine()
		sub := &converter{}
		sub.children(n)
		for _, line := range strings.Split(strings.TrimSpace(sub.String()), "\n") {
			c.b.WriteString(strings.TrimRight("> "+line, " ") + "\n")
		}
		c.blankLine()
	case "ul", "ol":
		c.list(n)
	case "table":
		c.blankLine()
		c.table(n)
		c.blankLine()
	case "en-todo":
		c.newline()
		if attr(n, "checked") == "true" {
			c.b.WriteString("* [x]")
		} else {
			c.b.WriteString("* [ ]")
		}
		c.children(n)
	case "en-media", "en-crypt":
		c.b.WriteString(rawTag(n))
		c.children(n)
	default:
		c.children(n)
	}
}

func (c *converter) wrapInline(n *html.Node, mark string) {
	text := c.inline(n)
	if text == "" {
		return
	}
	c.b.WriteString(mark + text + mark)
}

func (c *converter) list(n *html.Node) {
	if c.depth == 0 {
		c.blankLine()
	} else {
		c.newline()
	}

	indent := strings.Repeat("  ", c.depth)
	num := 0
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		num++
		c.newline()
		if n.Data == "ol" {
			fmt.Fprintf(&c.b, "%s%d. ", indent, num)
		} else {
			c.b.WriteString(indent + "* ")
		}

		sub := &converter{depth: c.depth + 1, inItem: true}
		sub.children(li)
		c.b.WriteString(strings.TrimSpace(sub.b.String()))
	}

	if c.depth == 0 {
		c.blankLine()
	} else {
		c.newline()
	}
}

func (c *converter) table(n *html.Node) {
	walk([]*html.Node{n}, func(row *html.Node) {
		if row.Type != html.ElementNode || row.Data != "tr" {
			return
		}
		var cells []string
		for cell := row.FirstChild; cell != nil; cell = cell.NextSibling {
			if cell.Type == html.ElementNode && (cell.Data == "td" || cell.Data == "th") {
				cells = append(cells, c.inline(cell))
			}
		}
		c.newline()
		c.b.WriteString("| " + strings.Join(cells, " | ") + " |")
	})
}

// rawTag renders the start tag of n as self-closing markup.
func rawTag(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<" + n.Data)
	for _, a := range n.Attr {
		fmt.Fprintf(&b, ` %s="%s"`, a.Key, html.EscapeString(a.Val))
	}
	b.WriteString(" />")
	return b.String()
}
