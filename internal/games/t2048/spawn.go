package t2048

// DefaultFourProbability is the chance that a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.10

// RandSource is the randomness a Spawner draws from.
// *math/rand/v2.Rand satisfies it; tests supply fixed sequences.
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

// Tile is a tile placed on the board.
type Tile struct {
	Cell
	Value int
}

// Spawner places new tiles into empty cells.
type Spawner struct {
	Rand            RandSource
	FourProbability float64
}

// Spawn puts a 2 or a 4 into a uniformly chosen empty cell.
// A full board is returned unchanged with ok=false and no randomness is consumed.
func (s Spawner) Spawn(board Board) (next Board, tile Tile, ok bool) {
	empty := EmptyCells(board)
	if len(empty) == 0 {
		return board, Tile{}, false
	}

	cell := empty[s.Rand.IntN(len(empty))]

	value := 2
	if s.Rand.Float64() < s.FourProbability {
		value = 4
	}

	board[cell.Y][cell.X] = value
	return board, Tile{Cell: cell, Value: value}, true
}

// AddRandomTile spawns one tile with the default 2/4 odds.
func AddRandomTile(board Board, rng RandSource) Board {
	next, _, _ := Spawner{Rand: rng, FourProbability: DefaultFourProbability}.Spawn(board)
	return next
}
