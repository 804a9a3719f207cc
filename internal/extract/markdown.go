package extract

import (
	"bytes"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource extracts Markdown block content as paragraphs using
// goldmark and flows them onto synthetic pages.
type MarkdownSource struct{}

func init() {
	Register(&MarkdownSource{})
}

func (s *MarkdownSource) Name() string         { return "Markdown" }
func (s *MarkdownSource) Extensions() []string { return []string{".md", ".markdown"} }

func (s *MarkdownSource) Extract(filename string) ([]Page, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	var paragraphs []string
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if t := blockText(n, src); t != "" {
			paragraphs = append(paragraphs, t)
		}
	}

	return Flow(paragraphs), nil
}

// blockText gets the text content of a goldmark block node, flattening
// inline children.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
			buf.WriteByte(' ')
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteString(blockText(c, src))
			buf.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}
