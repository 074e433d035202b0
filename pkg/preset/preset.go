package preset

import (
	"sort"
	"sync"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
)

// Pair couples an engine and a transmission under one preset name.
type Pair struct {
	Engine       models.EngineSpec       `json:"engine"`
	Transmission models.TransmissionSpec `json:"transmission"`
}

// Store is a caller-owned, name-keyed preset collection. It is passed
// explicitly to whatever needs it; the lock only matters when the web
// server shares a store across handlers.
type Store struct {
	mu    sync.RWMutex
	pairs map[string]Pair
}

// NewStore returns an empty preset store
func NewStore() *Store {
	return &Store{pairs: make(map[string]Pair)}
}

// Add inserts or replaces a named preset
func (s *Store) Add(name string, p Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairs[name] = p
}

// Get returns the preset stored under name
func (s *Store) Get(name string) (Pair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pairs[name]
	return p, ok
}

// Has reports whether a preset with this name exists
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pairs[name]
	return ok
}

// Names returns all preset names in sorted order
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.pairs))
	for name := range s.pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
