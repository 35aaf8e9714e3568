package usecase

import (
	"slices"
	"sync"
)

// snapshot guarda la última lista leída con éxito. Las lecturas fallidas sirven esta
// copia (o una lista vacía) en lugar de propagar el error.
type snapshot[T any] struct {
	mu    sync.RWMutex
	items []T
}

func (s *snapshot[T]) store(items []T) {
	s.mu.Lock()
	s.items = slices.Clone(items)
	s.mu.Unlock()
}

func (s *snapshot[T]) last() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.items == nil {
		return []T{}
	}
	return slices.Clone(s.items)
}
