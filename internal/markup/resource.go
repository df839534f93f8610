package markup

import (
	"crypto/md5"
	"encoding/hex"
	"mime"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/gnote-tools/cli/internal/domain"
)

// NewResource builds an attachment from the contents of the file at path.
// The MIME type comes from the extension.
func NewResource(path string, data []byte) domain.Resource {
	sum := md5.Sum(data)
	return domain.Resource{
		Mime: mimeType(path),
		Data: domain.Data{
			Body:     data,
			BodyHash: hex.EncodeToString(sum[:]),
			Size:     len(data),
		},
		FileName: filepath.Base(path),
	}
}

func mimeType(path string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if t == "" {
		return "application/octet-stream"
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return t
}

// EmbedImages replaces the <img src> elements of an HTML text with en-media
// references and returns the resources they point to. load reads the image
// named by a src attribute. Images without src are left alone.
func EmbedImages(text string, load func(src string) (domain.Resource, error)) (string, []domain.Resource, error) {
	nodes, err := parse(text)
	if err != nil {
		return "", nil, err
	}

	var images []*html.Node
	walk(nodes, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" && attr(n, "src") != "" {
			images = append(images, n)
		}
	})
	if len(images) == 0 {
		return text, nil, nil
	}

	resources := make([]domain.Resource, 0, len(images))
	for _, n := range images {
		r, err := load(attr(n, "src"))
		if err != nil {
			return "", nil, err
		}
		resources = append(resources, r)

		n.Data = "en-media"
		n.DataAtom = 0
		n.Attr = []html.Attribute{{Key: "type", Val: r.Mime}, {Key: "hash", Val: r.Data.BodyHash}}
	}

	out, err := render(nodes)
	if err != nil {
		return "", nil, err
	}
	return out, resources, nil
}
