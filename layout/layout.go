package layout

import (
	"unicode"

	"github.com/go-text/typesetting/segmenter"
	"github.com/golang/geo/r2"

	"github.com/gogpu/sdftext/font"
)

// Placement is one glyph of a run and its pen position.
//
// Pen is in pixels at the font's point size relative to the run origin,
// before the draw scale is applied. Y grows downward by whole lines.
type Placement struct {
	Glyph font.GlyphID
	Rune  rune
	Pen   r2.Point
}

// Line describes one laid out line.
type Line struct {
	// Start and End index the line's placements in Run.Placements.
	Start, End int

	// Text is the line without its terminator.
	Text string

	// Width is the summed advance of the line's glyphs.
	Width float64

	// Y is the pen y of the line.
	Y float64
}

// Run is the result of Layout: placements in reading order, grouped into
// lines from top to bottom.
type Run struct {
	Placements []Placement
	Lines      []Line

	// LineHeight is the distance between consecutive lines in pixels at
	// the font's point size.
	LineHeight float64
}

// Len returns the number of placements.
func (r Run) Len() int { return len(r.Placements) }

// Glyphs returns the placed glyphs in order.
func (r Run) Glyphs() []font.GlyphID {
	out := make([]font.GlyphID, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = p.Glyph
	}
	return out
}

// LineHeight returns the line advance of f in pixels at its point size:
// (size/32) * (ascent + descent + leading).
func LineHeight(f *font.Font, leading float64) float64 {
	return f.SizeScale() * (f.Ascent() + f.Descent() + leading)
}

// Layout breaks text into lines no wider than opts.MaxWidth and places
// every glyph that has an advance in m. Glyphs missing from m are skipped.
//
// Break opportunities follow UAX #14. A word wider than MaxWidth on its
// own is broken between characters. With an unbounded width only
// mandatory breaks (newlines) start a new line.
func Layout(text string, f *font.Font, m *Metrics, opts Options) (Run, error) {
	if err := opts.Validate(); err != nil {
		return Run{}, err
	}
	if text == "" {
		return Run{}, nil
	}

	sizeScale := f.SizeScale()
	advance := func(r rune) (r2.Point, bool) {
		a, ok := m.Advance(f.Glyph(r))
		if !ok {
			return r2.Point{}, false
		}
		return r2.Point{X: a.X * sizeScale, Y: a.Y * sizeScale}, true
	}
	width := func(line []rune) float64 {
		var w float64
		for _, r := range line {
			if a, ok := advance(r); ok {
				w += a.X
			}
		}
		return w
	}

	fits := func([]rune) bool { return true }
	if opts.Bounded() {
		limit := opts.MaxWidth / opts.Scale
		fits = func(line []rune) bool {
			return width(trimTrailingSpace(line)) <= limit
		}
	}

	run := Run{LineHeight: LineHeight(f, opts.Leading)}
	for i, line := range breakLines([]rune(text), fits) {
		y := float64(i) * run.LineHeight
		x := 0.0
		if opts.Bounded() && opts.Align != AlignLeft {
			slack := opts.MaxWidth/opts.Scale - width(trimTrailingSpace(line))
			if opts.Align == AlignCenter {
				slack /= 2
			}
			x = slack
		}

		pen := r2.Point{X: x, Y: y}
		start := len(run.Placements)
		for _, r := range line {
			a, ok := advance(r)
			if !ok {
				continue
			}
			run.Placements = append(run.Placements, Placement{
				Glyph: f.Glyph(r),
				Rune:  r,
				Pen:   pen,
			})
			pen = pen.Add(a)
		}
		run.Lines = append(run.Lines, Line{
			Start: start,
			End:   len(run.Placements),
			Text:  string(line),
			Width: pen.X - x,
			Y:     y,
		})
	}
	return run, nil
}

// Measure returns the size of run: the widest line by the total height
// of its lines. An empty run measures zero.
func Measure(run Run) r2.Point {
	var size r2.Point
	for _, l := range run.Lines {
		size.X = max(size.X, l.Width)
	}
	size.Y = float64(len(run.Lines)) * run.LineHeight
	return size
}

// breakLines splits text at UAX #14 opportunities, greedily packing
// segments while fits accepts the candidate line. Line terminators are
// removed from the returned lines.
func breakLines(text []rune, fits func([]rune) bool) [][]rune {
	var seg segmenter.Segmenter
	seg.Init(text)
	it := seg.LineIterator()

	var lines [][]rune
	start, end := 0, 0
	for it.Next() {
		l := it.Line()
		next := l.Offset + len(l.Text)

		if end > start && !fits(text[start:next]) {
			lines = append(lines, trimTerminator(text[start:end]))
			start = end
		}
		for end == start && !fits(text[start:next]) {
			n := longestFit(text[start:next], fits)
			if start+n >= next {
				break
			}
			lines = append(lines, text[start:start+n])
			start += n
			end = start
		}
		end = next

		if l.IsMandatoryBreak {
			lines = append(lines, trimTerminator(text[start:end]))
			start = end
		}
	}
	if end > start {
		lines = append(lines, trimTerminator(text[start:end]))
	}
	return lines
}

// longestFit returns the length of the longest prefix of s accepted by
// fits, at least 1 so that breaking always makes progress. Whitespace
// never starts the next piece.
func longestFit(s []rune, fits func([]rune) bool) int {
	n := 1
	for n < len(s) && (unicode.IsSpace(s[n]) || fits(s[:n+1])) {
		n++
	}
	return n
}

func isTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func trimTerminator(line []rune) []rune {
	n := len(line)
	if n > 0 && isTerminator(line[n-1]) {
		n--
		if line[n] == '\n' && n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}

func trimTrailingSpace(line []rune) []rune {
	n := len(line)
	for n > 0 && unicode.IsSpace(line[n-1]) {
		n--
	}
	return line[:n]
}
