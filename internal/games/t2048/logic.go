package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// ErrUnknownDirection is returned by ParseDirection for unrecognized input.
var ErrUnknownDirection = errors.New("t2048: unknown direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts a direction name or its first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents a 4x4 game board. A zero cell is empty; any other cell
// holds a power of two. Boards are values: copies never share cells.
type Board [BoardSize][BoardSize]int

// slideRow collapses a row toward index 0. Equal neighbors merge once per
// pair, left to right; a merged value never merges again in the same pass.
// Returns the new row and the sum of the merged values.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	var tiles [BoardSize]int
	n := 0
	for _, v := range row {
		if v != 0 {
			tiles[n] = v
			n++
		}
	}

	out := 0
	for i := 0; i < n; i++ {
		if i+1 < n && tiles[i] == tiles[i+1] {
			merged := tiles[i] * 2
			result[out] = merged
			score += merged
			i++
		} else {
			result[out] = tiles[i]
		}
		out++
	}

	return result, score
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// reverseRows returns the board with every row reversed.
func reverseRows(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[y][BoardSize-1-x]
		}
	}
	return result
}

// normalize rotates the board so that moving in dir becomes a left slide.
func normalize(board Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return reverseRows(board)
	case DirUp:
		return transpose(board)
	case DirDown:
		return reverseRows(transpose(board))
	default:
		return board
	}
}

// denormalize undoes normalize for the same direction.
func denormalize(board Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return reverseRows(board)
	case DirUp:
		return transpose(board)
	case DirDown:
		return transpose(reverseRows(board))
	default:
		return board
	}
}

// Move slides every row or column of the board in the given direction.
// Returns the new board and the score gained from merges. The input board
// is never modified; compare the result with it to detect a no-op move.
func Move(board Board, dir Direction) (Board, int) {
	rotated := normalize(board, dir)

	var slid Board
	total := 0
	for y := range BoardSize {
		row, score := slideRow(rotated[y])
		slid[y] = row
		total += score
	}

	return denormalize(slid, dir), total
}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasMoves reports whether any move can change the board: an empty cell
// exists, or two horizontal or vertical neighbors hold the same value.
func HasMoves(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				return true
			}
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(board Board) bool {
	return !HasMoves(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			maxVal = max(maxVal, board[y][x])
		}
	}
	return maxVal
}
