// Package layout reads boards drawn as text.
//
//	; comment lines and blank lines are skipped
//	S..#
//	.#..
//	.#.E
//	....
//
// '.' is open, '#' is a wall, 'S' the start and 'E' the end. Every row must
// be as long as there are rows.
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors.
var (
	ErrEmptyLayout       = errors.New("layout: no rows")
	ErrNotSquare         = errors.New("layout: board is not square")
	ErrBadRune           = errors.New("layout: unexpected character")
	ErrDuplicateEndpoint = errors.New("layout: endpoint appears more than once")
)

// Layout is a parsed board. Start and End are nil when absent.
type Layout struct {
	Size    int
	Start   *grid.Cell
	End     *grid.Cell
	Blocked grid.CellSet
}

// Parse reads a layout from r.
func Parse(r io.Reader) (Layout, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(strings.TrimSpace(line), ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return Layout{}, fmt.Errorf("layout: read: %w", err)
	}
	if len(rows) == 0 {
		return Layout{}, ErrEmptyLayout
	}

	l := Layout{Size: len(rows), Blocked: make(grid.CellSet)}
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != l.Size {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r+1, len(runes), l.Size)
		}
		for c, ch := range runes {
			cell := grid.Cell{Row: r, Col: c}
			switch ch {
			case '.':
			case '#':
				l.Blocked.Add(cell)
			case 'S', 's':
				if l.Start != nil {
					return Layout{}, fmt.Errorf("%w: second start at %s", ErrDuplicateEndpoint, cell)
				}
				l.Start = &cell
			case 'E', 'e':
				if l.End != nil {
					return Layout{}, fmt.Errorf("%w: second end at %s", ErrDuplicateEndpoint, cell)
				}
				l.End = &cell
			default:
				return Layout{}, fmt.Errorf("%w: %q at %s", ErrBadRune, ch, cell)
			}
		}
	}

	return l, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (Layout, error) {
	return Parse(strings.NewReader(s))
}
