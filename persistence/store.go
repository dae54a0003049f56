// Package persistence keeps the best score across runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

// ScoreStore remembers the highest score ever submitted.
type ScoreStore interface {
	Best() (int, error)
	// Submit records score and returns the best score after the update.
	Submit(score int) (int, error)
}

const bestScoreKey = "best_score"

type savedScore struct {
	Best int `json:"best"`
}

// GdataStore persists the best score in the per-user data directory.
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdataStore opens the data directory for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata for %s: %w", appName, err)
	}
	return &GdataStore{manager: m}, nil
}

func (s *GdataStore) Best() (int, error) {
	data, err := s.manager.LoadItem(bestScoreKey)
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	if data == nil {
		// Nothing saved yet
		return 0, nil
	}

	var saved savedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0, fmt.Errorf("parse best score: %w", err)
	}
	return saved.Best, nil
}

func (s *GdataStore) Submit(score int) (int, error) {
	best, err := s.Best()
	if err != nil {
		log.Printf("Warning: Could not read best score, overwriting: %v", err)
		best = 0
	}
	if score <= best {
		return best, nil
	}

	data, err := json.Marshal(savedScore{Best: score})
	if err != nil {
		return best, fmt.Errorf("serialize best score: %w", err)
	}
	if err := s.manager.SaveItem(bestScoreKey, data); err != nil {
		return best, fmt.Errorf("save best score: %w", err)
	}
	return score, nil
}

// MemoryStore is an in-process ScoreStore.
type MemoryStore struct {
	mu   sync.Mutex
	best int
}

func (s *MemoryStore) Best() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, nil
}

func (s *MemoryStore) Submit(score int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score > s.best {
		s.best = score
	}
	return s.best, nil
}
