package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrBoardShape means the text did not describe a 4x4 grid.
	ErrBoardShape = errors.New("t2048: board must be 4 rows of 4 cells")
	// ErrTileValue means a cell was neither 0 nor a positive power of two.
	ErrTileValue = errors.New("t2048: tile must be 0 or a power of two")
)

// ParseBoard reads a board from text. Rows are separated by '/' or newlines,
// cells by spaces or commas; "." is accepted as an empty cell.
//
//	2 0 2 4/0 0 0 0/0 0 0 0/0 0 0 0
func ParseBoard(s string) (Board, error) {
	var board Board

	rows := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\n' })
	var nonEmpty []string
	for _, row := range rows {
		if strings.TrimSpace(row) != "" {
			nonEmpty = append(nonEmpty, row)
		}
	}
	if len(nonEmpty) != BoardSize {
		return board, fmt.Errorf("%w: got %d rows", ErrBoardShape, len(nonEmpty))
	}

	for y, row := range nonEmpty {
		cells := strings.FieldsFunc(row, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
		if len(cells) != BoardSize {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrBoardShape, y+1, len(cells))
		}
		for x, cell := range cells {
			if cell == "." {
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil || !validTile(v) {
				return board, fmt.Errorf("%w: %q at row %d column %d", ErrTileValue, cell, y+1, x+1)
			}
			board[y][x] = v
		}
	}

	return board, nil
}

func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// String returns the single-line form accepted by ParseBoard.
func (b Board) String() string {
	rows := make([]string, BoardSize)
	for y := range BoardSize {
		cells := make([]string, BoardSize)
		for x := range BoardSize {
			cells[x] = strconv.Itoa(b[y][x])
		}
		rows[y] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "/")
}

// Format renders the board as right-aligned columns, one row per line,
// with "." for empty cells.
func (b Board) Format() string {
	width := max(len(strconv.Itoa(MaxTile(b))), 1)

	var sb strings.Builder
	for y := range BoardSize {
		for x := range BoardSize {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if b[y][x] != 0 {
				cell = strconv.Itoa(b[y][x])
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
