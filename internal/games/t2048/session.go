package t2048

// GameStateType represents the current session state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// MoveResult describes the outcome of one turn.
type MoveResult struct {
	Direction Direction
	Changed   bool
	Spawned   *Coord // Nil when nothing was spawned
	Score     int
	GameOver  bool
}

// Session drives one grid through the per-turn protocol:
// shift, spawn if the shift changed the board, then re-check game over and score.
type Session struct {
	variant  string
	grid     *Grid
	moves    int
	gameOver bool
}

// NewSession wraps grid. variant is the registry ID it was created from.
func NewSession(variant string, grid *Grid) *Session {
	return &Session{
		variant:  variant,
		grid:     grid,
		gameOver: grid.IsGameOver(),
	}
}

// ResumeSession wraps a restored grid that has already seen moves turns.
func ResumeSession(variant string, grid *Grid, moves int) *Session {
	s := NewSession(variant, grid)
	s.moves = moves
	return s
}

// Grid returns the underlying board.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Variant returns the variant ID.
func (s *Session) Variant() string {
	return s.variant
}

// Moves returns the number of turns that changed the board.
func (s *Session) Moves() int {
	return s.moves
}

// GameOver returns true once the board is full with no equal neighbours.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Move plays one turn in the given direction.
// A move that changes nothing does not spawn and does not count.
func (s *Session) Move(dir Direction) (MoveResult, error) {
	result := MoveResult{Direction: dir}

	if s.gameOver {
		result.Score = s.grid.Score()
		result.GameOver = true
		return result, nil
	}

	result.Changed = s.grid.Shift(dir)
	if result.Changed {
		s.moves++
		if s.grid.HasEmptyCell() {
			c, err := s.grid.SpawnNewTile()
			if err != nil {
				return result, err
			}
			result.Spawned = &c
		}
	}

	s.gameOver = s.grid.IsGameOver()
	result.GameOver = s.gameOver
	result.Score = s.grid.Score()
	return result, nil
}

// Snapshot captures the complete session state for persistence and display.
type Snapshot struct {
	Variant string
	Size    int
	Moves   int
	Score   int
	MaxTile int
	State   GameStateType
	Board   [][]int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	if s.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Variant: s.variant,
		Size:    s.grid.Size(),
		Moves:   s.moves,
		Score:   s.grid.Score(),
		MaxTile: s.grid.MaxTile(),
		State:   state,
		Board:   s.grid.Values(),
	}
}
