package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// EPUBSource extracts EPUB spine content as paragraphs and flows them
// onto synthetic pages.
type EPUBSource struct{}

func init() {
	Register(&EPUBSource{})
}

func (s *EPUBSource) Name() string         { return "EPUB" }
func (s *EPUBSource) Extensions() []string { return []string{".epub"} }

func (s *EPUBSource) Extract(filename string) ([]Page, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, fmt.Errorf("no rootfiles found in epub")
	}

	book := rc.Rootfiles[0]
	var paragraphs []string

	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		r, err := ref.Item.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			continue
		}
		paragraphs = append(paragraphs, htmlParagraphs(string(data))...)
	}

	return Flow(paragraphs), nil
}

var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "li": true,
	"blockquote": true, "div": true, "td": true,
}

// htmlParagraphs walks an HTML document, splitting text at block
// element boundaries.
func htmlParagraphs(s string) []string {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil
	}

	var paras []string
	var cur strings.Builder
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			paras = append(paras, t)
		}
		cur.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			}
			if blockTags[n.Data] {
				flush()
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if cur.Len() > 0 {
					cur.WriteString(" ")
				}
				cur.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			flush()
		}
	}
	walk(root)
	flush()
	return paras
}
