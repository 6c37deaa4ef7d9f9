package pdfmd

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfDocument is the production Document backend. Text comes from the
// ledongthuc reader, image presence from the pdfcpu cross-reference; either
// library may fail to parse an unusual file, so the backend works with
// whichever of the two opened successfully.
type pdfDocument struct {
	path      string
	reader    *pdf.Reader
	ctx       *model.Context
	pageCount int
}

// OpenDocument opens a PDF file as a Document. Non-PDF input yields an
// *UnsupportedFormatError, unreadable or unparseable input an *OpenError.
func OpenDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	mtype := mimetype.Detect(data)
	if ext != ".pdf" && !mtype.Is("application/pdf") {
		return nil, &UnsupportedFormatError{Extension: ext, MIMEType: mtype.String()}
	}

	reader, readerErr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	ctx, ctxErr := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if readerErr != nil && ctxErr != nil {
		return nil, &OpenError{Path: path, Err: readerErr}
	}
	if readerErr != nil {
		reader = nil
	}
	if ctxErr != nil {
		ctx = nil
	}

	pageCount := 0
	if reader != nil {
		pageCount = reader.NumPage()
	} else if ctx != nil {
		pageCount = ctx.PageCount
	}

	return &pdfDocument{
		path:      path,
		reader:    reader,
		ctx:       ctx,
		pageCount: pageCount,
	}, nil
}

func (d *pdfDocument) Path() string   { return d.path }
func (d *pdfDocument) PageCount() int { return d.pageCount }
func (d *pdfDocument) Close() error   { return nil }

func (d *pdfDocument) Page(n int) (Page, error) {
	if n < 1 || n > d.pageCount {
		return nil, fmt.Errorf("page %d out of range [1,%d]", n, d.pageCount)
	}
	return &pdfPage{doc: d, num: n}, nil
}

// posWord is a positioned chunk of text on a page, used for line and column
// reconstruction.
type posWord struct {
	x, w, size float64
	s          string
}

// textLine is one reconstructed line, split into column segments at wide
// horizontal gaps. A single-column line has exactly one segment.
type textLine struct {
	segments []string
}

func (l textLine) text() string {
	return strings.Join(l.segments, " ")
}

// pdfPage lazily reconstructs lines from positioned text the first time Text
// or Tables is called.
type pdfPage struct {
	doc    *pdfDocument
	num    int
	loaded bool
	lines  []textLine
}

func (p *pdfPage) Number() int { return p.num }

func (p *pdfPage) Text() string {
	p.load()
	if len(p.lines) == 0 {
		return ""
	}
	out := make([]string, len(p.lines))
	for i, ln := range p.lines {
		out[i] = ln.text()
	}
	return strings.Join(out, "\n")
}

// Tables detects columnar regions: two or more consecutive lines that split
// into the same number (>= 2) of segments. This catches grid-like layouts
// without ruling lines; anything subtler stays plain text.
func (p *pdfPage) Tables() []Table {
	p.load()

	var tables []Table
	var run [][]string
	flush := func() {
		if len(run) >= 2 {
			tables = append(tables, Table{Rows: run})
		}
		run = nil
	}

	prevCols := 0
	for _, ln := range p.lines {
		n := len(ln.segments)
		if n >= 2 && (prevCols == 0 || n == prevCols) {
			run = append(run, ln.segments)
			prevCols = n
			continue
		}
		flush()
		prevCols = 0
		if n >= 2 {
			run = append(run, ln.segments)
			prevCols = n
		}
	}
	flush()

	return tables
}

func (p *pdfPage) Images() []ImageRef {
	if p.doc.ctx == nil || p.doc.ctx.Optimize == nil {
		return nil
	}
	nrs := pdfcpu.ImageObjNrs(p.doc.ctx, p.num)
	if len(nrs) == 0 {
		return nil
	}
	refs := make([]ImageRef, 0, len(nrs))
	for _, nr := range nrs {
		refs = append(refs, ImageRef{Object: nr})
	}
	return refs
}

func (p *pdfPage) load() {
	if p.loaded {
		return
	}
	p.loaded = true
	if p.doc.reader == nil {
		return
	}

	pg := p.doc.reader.Page(p.num)
	if pg.V.IsNull() {
		return
	}

	var wordLines [][]posWord
	rows, err := pg.GetTextByRow()
	if err == nil {
		for _, row := range rows {
			var words []posWord
			for _, t := range row.Content {
				if strings.TrimSpace(t.S) == "" {
					continue
				}
				words = append(words, posWord{x: t.X, w: t.W, size: t.FontSize, s: t.S})
			}
			if len(words) > 0 {
				wordLines = append(wordLines, words)
			}
		}
	}
	if len(wordLines) == 0 {
		// Some writers produce content GetTextByRow cannot group; fall back
		// to grouping raw positioned text by Y proximity.
		wordLines = groupByPosition(pg.Content().Text)
	}

	for _, words := range wordLines {
		ln := buildLine(words)
		if len(ln.segments) > 0 {
			p.lines = append(p.lines, ln)
		}
	}
}

// buildLine joins x-sorted words into column segments. Small gaps become word
// spaces, wide gaps start a new column segment.
func buildLine(words []posWord) textLine {
	sort.Slice(words, func(i, j int) bool { return words[i].x < words[j].x })

	var segs []string
	var cur strings.Builder
	var prevEnd float64

	for i, w := range words {
		if i > 0 && cur.Len() > 0 {
			gap := w.x - prevEnd
			switch {
			case gap > columnGapFor(w.size):
				if s := strings.TrimSpace(cur.String()); s != "" {
					segs = append(segs, s)
				}
				cur.Reset()
			case gap > wordGapFor(w.size):
				cur.WriteString(" ")
			}
		}
		cur.WriteString(w.s)

		end := w.x + w.w
		if w.w <= 0 {
			// Width missing: estimate from glyph count and font size.
			end = w.x + float64(len([]rune(w.s)))*w.size*0.55
		}
		prevEnd = end
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		segs = append(segs, s)
	}

	return textLine{segments: segs}
}

// wordGapFor is the threshold separating glyph runs within one word from a
// word boundary, relative to font size.
func wordGapFor(size float64) float64 {
	g := size * 0.2
	if g < 1.0 {
		g = 1.0
	}
	return g
}

// columnGapFor is the threshold treating a horizontal gap as a column break.
func columnGapFor(size float64) float64 {
	g := size * 3
	if g < 18.0 {
		g = 18.0
	}
	return g
}

// groupByPosition clusters raw positioned text into lines by Y proximity and
// orders them top to bottom.
func groupByPosition(texts []pdf.Text) [][]posWord {
	type rawLine struct {
		y     float64
		words []posWord
	}
	var lines []rawLine

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		tol := 3.0
		if t.FontSize > 0 {
			tol = t.FontSize * 0.3
		}
		word := posWord{x: t.X, w: t.W, size: t.FontSize, s: t.S}

		placed := false
		for i := range lines {
			if math.Abs(lines[i].y-t.Y) < tol {
				lines[i].words = append(lines[i].words, word)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, rawLine{y: t.Y, words: []posWord{word}})
		}
	}

	// PDF coordinates grow upward, so higher Y renders first.
	sort.Slice(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	out := make([][]posWord, len(lines))
	for i, ln := range lines {
		out[i] = ln.words
	}
	return out
}
