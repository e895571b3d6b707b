// Package storage persists progress between sessions.
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	turnObject   = "progress"
	turnProperty = "turn"
)

// TurnRecord is the saved form of the turn counter.
type TurnRecord struct {
	Turn int `yaml:"turn"`
}

// TurnStore saves and restores the turn counter through gdata. A store with
// a nil manager works in memory only.
type TurnStore struct {
	gdataManager *gdata.Manager
	last         TurnRecord
}

// Open creates a gdata-backed store for appName. When gdata can not be
// opened the store falls back to memory-only mode and the error is returned
// for logging.
func Open(appName string) (*TurnStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &TurnStore{}, fmt.Errorf("failed to open save data for %s: %w", appName, err)
	}
	return NewTurnStore(m), nil
}

func NewTurnStore(m *gdata.Manager) *TurnStore {
	return &TurnStore{gdataManager: m}
}

// LoadTurn returns the saved turn, or ok=false if nothing was saved yet.
func (s *TurnStore) LoadTurn() (int, bool, error) {
	if s.gdataManager == nil {
		if s.last.Turn == 0 {
			return 0, false, nil
		}
		return s.last.Turn, true, nil
	}
	if !s.gdataManager.ObjectPropExists(turnObject, turnProperty) {
		return 0, false, nil
	}
	data, err := s.gdataManager.LoadObjectProp(turnObject, turnProperty)
	if err != nil {
		return 0, false, fmt.Errorf("failed to load turn: %w", err)
	}
	var rec TurnRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, false, fmt.Errorf("failed to unmarshal turn: %w", err)
	}
	s.last = rec
	return rec.Turn, true, nil
}

// SaveTurn stores the turn counter.
func (s *TurnStore) SaveTurn(turn int) error {
	s.last = TurnRecord{Turn: turn}
	if s.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.last)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(turnObject, turnProperty, data); err != nil {
		return fmt.Errorf("failed to save turn: %w", err)
	}
	log.Printf("[TurnStore] Turn %d saved", turn)
	return nil
}
