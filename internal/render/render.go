// Package render draws board snapshots as text or PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/internal/board"
)

// ErrBadStyle indicates a non-positive cell size.
var ErrBadStyle = errors.New("render: cell size must be positive")

// Glyphs used by Text, indexed by board.Kind.
var glyphs = [...]byte{
	board.Empty: '.',
	board.Start: 'S',
	board.End:   'E',
	board.Wall:  '#',
	board.Path:  '*',
}

// Text draws one line per row using . S E # and * for the path.
func Text(s board.Snapshot) string {
	var sb strings.Builder
	sb.Grow(s.Size * (s.Size + 1))
	for _, row := range s.Kinds() {
		for _, k := range row {
			sb.WriteByte(glyphs[k])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Style controls PNG output.
type Style struct {
	CellPx int            // edge length of one cell in pixels
	Gap    int            // pixels left between neighbouring cells
	Colors [5]color.Color // fill per board.Kind
	Back   color.Color    // background showing through the gaps
}

// DefaultStyle paints open cells black, walls white, start and path blue,
// the end red, on a grey background.
func DefaultStyle(cellPx int) Style {
	return Style{
		CellPx: cellPx,
		Gap:    1,
		Colors: [5]color.Color{
			board.Empty: color.Black,
			board.Start: color.RGBA{0, 0, 255, 255},
			board.End:   color.RGBA{255, 0, 0, 255},
			board.Wall:  color.White,
			board.Path:  color.RGBA{0, 0, 255, 255},
		},
		Back: color.RGBA{128, 128, 128, 255},
	}
}

// Image draws the snapshot into a new image of Size*CellPx pixels square.
func Image(s board.Snapshot, st Style) (image.Image, error) {
	dc, err := draw(s, st)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// PNG encodes the snapshot as a PNG image to w.
func PNG(w io.Writer, s board.Snapshot, st Style) error {
	dc, err := draw(s, st)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

func draw(s board.Snapshot, st Style) (*gg.Context, error) {
	if st.CellPx <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadStyle, st.CellPx)
	}
	px := s.Size * st.CellPx
	dc := gg.NewContext(px, px)
	dc.SetColor(st.Back)
	dc.Clear()

	inset := float64(st.Gap) / 2
	side := float64(st.CellPx - st.Gap)
	for r, row := range s.Kinds() {
		for c, k := range row {
			dc.SetColor(st.Colors[k])
			dc.DrawRectangle(float64(c*st.CellPx)+inset, float64(r*st.CellPx)+inset, side, side)
			dc.Fill()
		}
	}

	return dc, nil
}
