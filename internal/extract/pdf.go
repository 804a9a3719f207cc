package extract

import (
	"fmt"
	"math"
	"sort"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/pagemark/pagemark/internal/doc"
)

// PDFSource extracts positioned text runs from PDF pages using the
// content-stream fragments ledongthuc/pdf exposes.
type PDFSource struct{}

func init() {
	Register(&PDFSource{})
}

func (s *PDFSource) Name() string         { return "PDF" }
func (s *PDFSource) Extensions() []string { return []string{".pdf"} }

func (s *PDFSource) Extract(filename string) ([]Page, error) {
	f, reader, err := pdflib.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{})
			continue
		}
		pages = append(pages, Page{Runs: pageRuns(page)})
	}
	return pages, nil
}

// pageRuns groups a page's text fragments into one run per baseline
// line, converting PDF bottom-up y coordinates to top-down baselines.
func pageRuns(page pdflib.Page) []doc.RawRun {
	content := page.Content()
	frags := make([]pdflib.Text, len(content.Text))
	copy(frags, content.Text)
	if len(frags) == 0 {
		return nil
	}

	height := mediaBoxHeight(page)

	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Y != frags[j].Y {
			return frags[i].Y > frags[j].Y // top of page first
		}
		return frags[i].X < frags[j].X
	})

	var runs []doc.RawRun
	var text string
	var startX, endX, lineY, lineSize float64

	flush := func() {
		if text == "" {
			return
		}
		runs = append(runs, doc.RawRun{
			Text:     text,
			X:        startX,
			Baseline: height - lineY,
			Height:   lineSize,
			Width:    endX - startX,
		})
		text = ""
	}

	for _, fr := range frags {
		size := fr.FontSize
		if size <= 0 {
			size = 10
		}
		sameLine := text != "" && math.Abs(fr.Y-lineY) <= 0.3*lineSize
		if !sameLine {
			flush()
			startX, endX, lineY, lineSize = fr.X, fr.X, fr.Y, size
		} else {
			if size > lineSize {
				lineSize = size
			}
			// A visible horizontal gap between fragments is a word break.
			if fr.X-endX > 0.25*lineSize {
				text += " "
			}
		}
		text += fr.S
		if fr.X+fr.W > endX {
			endX = fr.X + fr.W
		}
	}
	flush()
	return runs
}

func mediaBoxHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return pageHeight
	}
	return box.Index(3).Float64() - box.Index(1).Float64()
}
