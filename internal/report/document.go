package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Page geometry in line units. Every variable-height block is measured and
// checked against the remaining space before it is written, so a block is
// never split across a page boundary.
const (
	ContentWidth = 72
	PageLines    = 48
)

type Page struct {
	Lines []string
}

type Document struct {
	Pages []Page
}

// Text serializes the document, separating pages with a form feed.
func (d *Document) Text() string {
	parts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		parts[i] = strings.Join(p.Lines, "\n")
	}
	return strings.Join(parts, "\n\f\n") + "\n"
}

type builder struct {
	doc    Document
	cursor int
}

func newBuilder() *builder {
	b := &builder{}
	b.doc.Pages = append(b.doc.Pages, Page{})
	return b
}

// ensureSpace starts a new page when fewer than n lines remain. A block
// taller than a whole page still gets a page to itself.
func (b *builder) ensureSpace(n int) {
	if b.cursor > 0 && b.cursor+n > PageLines {
		b.doc.Pages = append(b.doc.Pages, Page{})
		b.cursor = 0
	}
}

// block writes lines as one unit, followed by a blank spacer line when the
// page has room for it.
func (b *builder) block(lines ...string) {
	b.ensureSpace(len(lines))
	page := &b.doc.Pages[len(b.doc.Pages)-1]
	page.Lines = append(page.Lines, lines...)
	b.cursor += len(lines)
	if b.cursor < PageLines {
		page.Lines = append(page.Lines, "")
		b.cursor++
	}
}

// wrap breaks text into lines no wider than width display columns. Words
// wider than the limit get a line of their own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	lineWidth := runewidth.StringWidth(line)

	for _, w := range words[1:] {
		ww := runewidth.StringWidth(w)
		if lineWidth+1+ww > width {
			lines = append(lines, line)
			line = w
			lineWidth = ww
			continue
		}
		line += " " + w
		lineWidth += 1 + ww
	}

	return append(lines, line)
}
