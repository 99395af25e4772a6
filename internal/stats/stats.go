// Package stats tracks items obtained during play. Items are kept in
// memory until Save writes them to the store, so progress made after the
// last checkpoint is lost when a session ends.
package stats

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Backend is the part of the store stats needs.
type Backend interface {
	Items(slot string) ([]storage.ItemEntry, error)
	ObtainItems(slot string, ids []string) error
	RecordRun(run storage.RunEntry) (int64, error)
}

// Stats holds the items of one save slot. A nil backend keeps everything
// in memory.
type Stats struct {
	mu      sync.Mutex
	backend Backend
	slot    string
	items   map[string]bool
	pending map[string]bool
}

// New loads a slot's saved items.
func New(backend Backend, slot string) (*Stats, error) {
	if slot == "" {
		slot = storage.DefaultSlot
	}
	s := &Stats{
		backend: backend,
		slot:    slot,
		items:   make(map[string]bool),
		pending: make(map[string]bool),
	}
	if backend == nil {
		return s, nil
	}
	saved, err := backend.Items(slot)
	if err != nil {
		return nil, fmt.Errorf("stats: load slot %q: %w", slot, err)
	}
	for _, it := range saved {
		s.items[it.ItemID] = true
	}
	return s, nil
}

// Slot returns the save slot name.
func (s *Stats) Slot() string {
	return s.slot
}

func (s *Stats) HasItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

// ObtainItem marks an item as obtained. It is written on the next Save.
func (s *Stats) ObtainItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items[id] {
		return
	}
	s.items[id] = true
	s.pending[id] = true
}

// Pending returns the items not yet saved, sorted.
func (s *Stats) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.pending)
}

// Save writes pending items. On failure they stay pending.
func (s *Stats) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend == nil || len(s.pending) == 0 {
		clear(s.pending)
		return nil
	}
	if err := s.backend.ObtainItems(s.slot, sortedKeys(s.pending)); err != nil {
		return fmt.Errorf("stats: save: %w", err)
	}
	clear(s.pending)
	return nil
}

// Discard forgets items obtained since the last Save.
func (s *Stats) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.pending {
		delete(s.items, id)
	}
	clear(s.pending)
}

// RecordRun stores a finished level.
func (s *Stats) RecordRun(level string, coins int, steps int64) error {
	if s.backend == nil {
		return nil
	}
	_, err := s.backend.RecordRun(storage.RunEntry{
		Slot:    s.slot,
		LevelID: level,
		Coins:   coins,
		Steps:   steps,
	})
	if err != nil {
		return fmt.Errorf("stats: record run: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
