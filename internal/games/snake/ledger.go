package snake

// HighScoreStore persists the best score across runs.
// Load may return an error together with 0 when the backing store is
// missing or unreadable.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// MemoryHighScore is an in-process HighScoreStore.
type MemoryHighScore struct {
	Score int
}

// Load returns the stored score.
func (m *MemoryHighScore) Load() (int, error) {
	return m.Score, nil
}

// Save stores the score.
func (m *MemoryHighScore) Save(score int) error {
	m.Score = score
	return nil
}

// Ledger tracks the current score and the persisted high score.
// The store is re-read on every change, so it stays the source of truth.
type Ledger struct {
	store   HighScoreStore
	current int
	high    int
	err     error
}

// NewLedger creates a ledger over store. A nil store keeps the high score
// in memory.
func NewLedger(store HighScoreStore) *Ledger {
	if store == nil {
		store = &MemoryHighScore{}
	}
	l := &Ledger{store: store}
	l.high = l.load()
	return l
}

// ApplyDelta adds delta to the current score and persists a new high score
// if the current score exceeds the stored one.
func (l *Ledger) ApplyDelta(delta int) {
	high := l.load()
	l.current += delta
	if l.current > high {
		high = l.current
		if err := l.store.Save(high); err != nil {
			l.err = err
		}
	}
	l.high = high
}

// Reset brings the current score back to zero. The high score is untouched.
func (l *Ledger) Reset() {
	l.ApplyDelta(-l.current)
}

// Snapshot returns the current and high scores for display.
func (l *Ledger) Snapshot() (current, high int) {
	return l.current, l.high
}

// Current returns the current score.
func (l *Ledger) Current() int {
	return l.current
}

// Err returns the most recent store error, if any. Store failures never
// interrupt the game.
func (l *Ledger) Err() error {
	return l.err
}

// load reads the stored high score, treating failures as 0.
func (l *Ledger) load() int {
	high, err := l.store.Load()
	if err != nil {
		l.err = err
		return 0
	}
	return high
}
