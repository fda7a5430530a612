package t2048

// Options configures a game session.
type Options struct {
	FourProbability float64 // Chance a spawned tile is a 4
	InitialTiles    int     // Tiles placed by Reset
}

// DefaultOptions returns the classic rules: two starting tiles, 10% fours.
func DefaultOptions() Options {
	return Options{
		FourProbability: DefaultFourProbability,
		InitialTiles:    2,
	}
}

// MoveResult describes what a single Game.Move did.
type MoveResult struct {
	Moved      bool // Board changed
	ScoreDelta int  // Sum of merged tile values
	Spawned    Tile // Tile added after the move, valid when HasSpawn
	HasSpawn   bool
	GameOver   bool // No move remains after this one
}

// Game is one play session. It exclusively owns the board, score and
// game-over flag; views read them through Snapshot.
type Game struct {
	opts    Options
	spawner Spawner

	board    Board
	score    int
	moves    int
	gameOver bool
}

// New creates a session and deals the initial tiles.
func New(opts Options, rng RandSource) *Game {
	g := newGame(opts, rng)
	g.Reset()
	return g
}

// NewWithBoard creates a session that starts from the given board
// instead of dealing initial tiles.
func NewWithBoard(opts Options, rng RandSource, board Board) *Game {
	g := newGame(opts, rng)
	g.board = board
	g.gameOver = IsGameOver(board)
	return g
}

func newGame(opts Options, rng RandSource) *Game {
	if opts.InitialTiles <= 0 {
		opts.InitialTiles = DefaultOptions().InitialTiles
	}
	return &Game{
		opts:    opts,
		spawner: Spawner{Rand: rng, FourProbability: opts.FourProbability},
	}
}

// Reset clears the board and score and deals the initial tiles.
func (g *Game) Reset() {
	g.board = Board{}
	g.score = 0
	g.moves = 0
	g.gameOver = false

	for range g.opts.InitialTiles {
		g.board, _, _ = g.spawner.Spawn(g.board)
	}
}

// Move slides the board in dir. A move that leaves the board unchanged is
// ignored: no tile spawns, the score stays and the move count does not
// advance. Once the game is over every move is ignored.
func (g *Game) Move(dir Direction) MoveResult {
	if g.gameOver {
		return MoveResult{GameOver: true}
	}

	next, delta := Move(g.board, dir)
	if next == g.board {
		return MoveResult{}
	}

	g.board = next
	g.score += delta
	g.moves++

	res := MoveResult{Moved: true, ScoreDelta: delta}
	g.board, res.Spawned, res.HasSpawn = g.spawner.Spawn(g.board)

	if IsGameOver(g.board) {
		g.gameOver = true
		res.GameOver = true
	}

	return res
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// Moves returns how many moves changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// IsOver reports whether no move remains.
func (g *Game) IsOver() bool {
	return g.gameOver
}
