// Package render draws board diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"koth-engine/kothmg"
)

// Options controls the diagram.
type Options struct {
	SquareSize int    // pixels per square, 48 when zero
	Flip       bool   // draw from black's side
	Highlight  uint64 // extra squares to mark, e.g. a move's origin and target
}

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
	hillFill  = "fill:#e8c24a;fill-opacity:0.55"
	markFill  = "fill:#6fa8dc;fill-opacity:0.5"
)

// glyphs indexed by piece type, white then black.
var glyphs = [2][7]string{
	{"", "♙", "♘", "♗", "♖", "♕", "♔"},
	{"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes an SVG diagram of b to w and returns the first write error. Every
// square is looked up through Board.Occupant; the four hill squares are tinted.
func SVG(w io.Writer, b kothmg.Board, opts Options) error {
	ew := &errWriter{w: w}
	size := opts.SquareSize
	if size <= 0 {
		size = 48
	}
	margin := size / 2
	width := margin + 8*size

	canvas := svg.New(ew)
	canvas.Start(width, width)
	canvas.Rect(0, 0, width, width, "fill:white")

	textStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;font-family:sans-serif", size*3/4)
	labelStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;font-family:sans-serif", size/3)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := kothmg.SquareOf(file, rank)
			col, row := file, 7-rank
			if opts.Flip {
				col, row = 7-file, rank
			}
			x, y := margin+col*size, row*size

			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, size, size, fill)
			if kothmg.OnHill(sq) {
				canvas.Rect(x, y, size, size, hillFill)
			}
			if opts.Highlight&sq.Bit() != 0 {
				canvas.Rect(x, y, size, size, markFill)
			}

			if p, ok := b.Occupant(sq); ok {
				canvas.Text(x+size/2, y+size*4/5, glyphs[p.Color()][p.Type()], textStyle)
			}
		}
	}

	for i := 0; i < 8; i++ {
		file, rank := i, 7-i
		if opts.Flip {
			file, rank = 7-i, i
		}
		canvas.Text(margin+i*size+size/2, 8*size+margin*3/4, string(rune('a'+file)), labelStyle)
		canvas.Text(margin/2, i*size+size/2+size/8, string(rune('1'+rank)), labelStyle)
	}
	canvas.End()
	if ew.err != nil {
		return errors.Wrap(ew.err, "write svg")
	}
	return nil
}
