package persistence

import (
	"log"

	"github.com/automoto/coindash/config"
)

// Tracker follows a session's score and submits it to a store when the
// session is lost. It satisfies core.Observer.
type Tracker struct {
	store ScoreStore
	score int
	best  int
}

// NewTracker loads the current best score from store.
func NewTracker(store ScoreStore) *Tracker {
	t := &Tracker{store: store}
	best, err := store.Best()
	if err != nil {
		log.Printf("Warning: Could not load best score: %v", err)
	}
	t.best = best
	return t
}

// Best is the highest score seen by the store.
func (t *Tracker) Best() int {
	return t.best
}

func (t *Tracker) OnScoreChanged(score int) {
	t.score = score
}

func (t *Tracker) OnGameStatusChanged(status config.GameStatus) {
	if status != config.StatusLost || t.score == 0 {
		return
	}
	best, err := t.store.Submit(t.score)
	if err != nil {
		log.Printf("Warning: Could not save best score: %v", err)
		if t.score > t.best {
			t.best = t.score
		}
		return
	}
	if best > t.best {
		log.Printf("New best score: %d", best)
	}
	t.best = best
}

func (t *Tracker) OnLevelChanged(int) {}
