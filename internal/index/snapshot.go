// Package index holds the catalogue snapshot shared by every request.
package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/faves/internal/catalog"
	"github.com/MrSnakeDoc/faves/internal/domain"
)

// Snapshot points at the current immutable catalog.Set plus data derived
// from it. Readers get the Set itself and never lock while rendering; only
// the pointer swap is guarded.
type Snapshot struct {
	mu            sync.RWMutex
	set           *catalog.Set
	hits          []domain.Hit
	invalid       int
	lastReload    time.Time
	reloadCounter int
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Replace installs a new set. Projections are computed once here so search
// and infra do not re-validate on every request.
func (s *Snapshot) Replace(set *catalog.Set) {
	names := set.Names()
	hits := domain.CollectHits(names, set.Get)

	invalid := 0
	for _, name := range names {
		content, _ := set.Get(name)
		invalid += len(domain.Project(content).Errors)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = set
	s.hits = hits
	s.invalid = invalid
	s.lastReload = time.Now()
	s.reloadCounter++
}

// Current returns the active set, nil before the first Replace.
func (s *Snapshot) Current() *catalog.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.set
}

// Hits returns every valid entry of the active set. Callers must not modify
// the returned slice.
func (s *Snapshot) Hits() []domain.Hit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hits
}

// Count returns the number of categories loaded.
func (s *Snapshot) Count() int {
	return s.Current().Len()
}

// InvalidEntries returns how many entries failed validation across all categories.
func (s *Snapshot) InvalidEntries() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.invalid
}

// GetLastReload returns when the active set was installed.
func (s *Snapshot) GetLastReload() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastReload
}

// Reloads returns how many sets have been installed.
func (s *Snapshot) Reloads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reloadCounter
}
