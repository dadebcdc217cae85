package breakout

// GameState is the round state shown to the player.
// Won and Lost are never both set.
type GameState struct {
	Score   int
	Started bool
	Won     bool
	Lost    bool
}

// Over reports whether the round has ended.
func (s GameState) Over() bool {
	return s.Won || s.Lost
}

// Store holds the game state of one session. The four transitions are the
// only way to change it.
type Store struct {
	state GameState
	ends  int
}

// NewStore returns a store in its initial state.
func NewStore() *Store {
	return &Store{}
}

// Start begins a round: score back to 0, flags cleared.
func (s *Store) Start() {
	s.state = GameState{Started: true}
	s.ends = 0
}

// AddScore adds delta to the score. Negative deltas are ignored so the score
// never decreases within a round.
func (s *Store) AddScore(delta int) {
	if delta <= 0 {
		return
	}
	s.state.Score += delta
}

// End finishes the round. Started is left as is.
func (s *Store) End(won bool) {
	s.state.Won = won
	s.state.Lost = !won
	s.ends++
}

// Reset returns the store to its initial state.
func (s *Store) Reset() {
	s.state = GameState{}
	s.ends = 0
}

// State returns a copy of the current state.
func (s *Store) State() GameState {
	return s.state
}

// Ends returns how many times End was called since the last Start or Reset.
func (s *Store) Ends() int {
	return s.ends
}
