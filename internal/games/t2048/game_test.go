package t2048

import (
	"math/rand/v2"
	"testing"
)

// scriptedRand replays fixed IntN and Float64 results.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		panic("scriptedRand: IntN value out of range")
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "gap between pair",
			input:    [4]int{2, 0, 2, 4},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if result != tt.expected {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestMoveLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score := Move(board, DirLeft)

	if result != expected {
		t.Errorf("Move left: got\n%v\nwant\n%v", result, expected)
	}

	expectedScore := 4 + 8 + 8
	if score != expectedScore {
		t.Errorf("Move left score = %d, want %d", score, expectedScore)
	}
}

func TestMoveRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _ := Move(board, DirRight)

	if result != expected {
		t.Errorf("Move right: got\n%v\nwant\n%v", result, expected)
	}
}

func TestMoveUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _ := Move(board, DirUp)

	if result != expected {
		t.Errorf("Move up: got\n%v\nwant\n%v", result, expected)
	}
}

func TestMoveDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _ := Move(board, DirDown)

	if result != expected {
		t.Errorf("Move down: got\n%v\nwant\n%v", result, expected)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	rng := &scriptedRand{}
	g := NewWithBoard(DefaultOptions(), rng, board)

	res := g.Move(DirLeft)

	if res.Moved || res.HasSpawn {
		t.Errorf("Move left on packed row should be a no-op, got %+v", res)
	}
	if g.Board() != board {
		t.Errorf("Board changed on no-op move:\n%v", g.Board())
	}
	if g.Score() != 0 || g.Moves() != 0 {
		t.Errorf("No-op move changed score/moves: score=%d moves=%d", g.Score(), g.Moves())
	}
}

func TestGameOver(t *testing.T) {
	// Board with no empty cells and no possible merges
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if !IsGameOver(board) {
		t.Error("Board with no moves should be game over")
	}

	// Board with no empty cells but possible merges
	boardWithMerge := Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}

	if IsGameOver(boardWithMerge) {
		t.Error("Board with possible merge should not be game over")
	}

	// Board with a vertical pair only
	boardWithColumnMerge := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 256},
		{8192, 16384, 32768, 65536},
	}

	if IsGameOver(boardWithColumnMerge) {
		t.Error("Board with vertical merge should not be game over")
	}

	// Board with empty cells
	boardWithEmpty := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	if IsGameOver(boardWithEmpty) {
		t.Error("Board with empty cell should not be game over")
	}
}

func TestGameOverBlocksMoves(t *testing.T) {
	// Moving left fills the last cell; whatever spawns, nothing can merge.
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 8},
		{0, 16, 32, 64},
	}

	rng := &scriptedRand{ints: []int{0}, floats: []float64{0.95}}
	g := NewWithBoard(DefaultOptions(), rng, board)

	res := g.Move(DirLeft)
	if !res.Moved || !res.HasSpawn {
		t.Fatalf("Expected a move with spawn, got %+v", res)
	}
	if res.Spawned.Cell != (Cell{X: 3, Y: 3}) || res.Spawned.Value != 2 {
		t.Errorf("Spawned = %+v, want 2 at (3,3)", res.Spawned)
	}
	if !res.GameOver || !g.IsOver() {
		t.Fatal("Full board without merges should end the game")
	}

	final := g.Board()
	for _, dir := range Directions {
		res := g.Move(dir)
		if res.Moved {
			t.Errorf("Move %s should be blocked after game over", dir)
		}
	}
	if g.Board() != final {
		t.Error("Board changed after game over")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", g.Snapshot().State)
	}
}

func TestScoreAccumulates(t *testing.T) {
	board := Board{
		{2, 2, 2, 2},
		{2, 0, 2, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	g := NewWithBoard(DefaultOptions(), &scriptedRand{}, board)

	res := g.Move(DirLeft)
	if res.ScoreDelta != 12 {
		t.Errorf("ScoreDelta = %d, want 12", res.ScoreDelta)
	}
	if g.Score() != 12 {
		t.Errorf("Score = %d, want 12", g.Score())
	}
	if g.Moves() != 1 {
		t.Errorf("Moves = %d, want 1", g.Moves())
	}
}

func TestDeterministicSpawn(t *testing.T) {
	// Same seed, same initial board
	g1 := New(DefaultOptions(), rand.New(rand.NewPCG(12345, 0)))
	g2 := New(DefaultOptions(), rand.New(rand.NewPCG(12345, 0)))

	if g1.Board() != g2.Board() {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Board(), g2.Board())
	}
}

func TestResetDealsInitialTiles(t *testing.T) {
	g := New(Options{FourProbability: 0.1, InitialTiles: 3}, rand.New(rand.NewPCG(7, 7)))

	if n := BoardSize*BoardSize - len(EmptyCells(g.Board())); n != 3 {
		t.Errorf("Reset placed %d tiles, want 3", n)
	}

	g.Move(DirLeft)
	g.Move(DirUp)
	g.Reset()

	if g.Score() != 0 || g.Moves() != 0 || g.IsOver() {
		t.Errorf("Reset should clear score, moves and game over")
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	}

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}

	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Errorf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{X: 1, Y: 0}) {
		t.Errorf("EmptyCells should be row-major, first = %+v", cells[0])
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left should become [8, 8, 0, 0], not [16, 0, 0, 0]
	row := [4]int{4, 4, 4, 4}
	result, score := slideRow(row)

	expected := [4]int{8, 8, 0, 0}
	if result != expected {
		t.Errorf("slideRow(%v) = %v, want %v (one merge per tile per move)", row, result, expected)
	}

	// Score should be 8+8 = 16, not 8+16 = 24
	if score != 16 {
		t.Errorf("slideRow(%v) score = %d, want 16", row, score)
	}
}

func TestSnapshot(t *testing.T) {
	board := Board{
		{128, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := NewWithBoard(DefaultOptions(), &scriptedRand{}, board)

	snap := g.Snapshot()

	if snap.MaxTile != 128 {
		t.Errorf("Snapshot MaxTile = %d, want 128", snap.MaxTile)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}

	// Snapshots are copies
	snap.Board[0][0] = 0
	if g.Board()[0][0] != 128 {
		t.Error("Mutating a snapshot must not touch the game")
	}
}
