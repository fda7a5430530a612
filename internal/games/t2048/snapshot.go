package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of a session, handed to views.
type Snapshot struct {
	Board   Board
	Score   int
	Moves   int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Board:   g.board,
		Score:   g.score,
		Moves:   g.moves,
		MaxTile: MaxTile(g.board),
		State:   state,
	}
}
