// Package store provides the in-memory keyed tables the services operate
// on. The registry is built once at startup and handed to every service;
// there is no global state and no lazy initialisation.
package store

import "github.com/noah-isme/ccrm/internal/models"

// Store is a keyed in-memory table. Put overwrites on an existing key.
// Values preserves first-insertion order so that exports and listings are
// deterministic.
type Store[T any] struct {
	entries map[string]T
	order   []string
}

// New returns an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{entries: make(map[string]T)}
}

// Put inserts or replaces the entity under key.
func (s *Store[T]) Put(key string, value T) {
	if _, exists := s.entries[key]; !exists {
		s.order = append(s.order, key)
	}
	s.entries[key] = value
}

// Get returns the entity for key and whether it was present.
func (s *Store[T]) Get(key string) (T, bool) {
	value, ok := s.entries[key]
	return value, ok
}

// Values returns all entities in first-insertion order.
func (s *Store[T]) Values() []T {
	out := make([]T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.entries[key])
	}
	return out
}

// Len reports the number of stored entities.
func (s *Store[T]) Len() int {
	return len(s.entries)
}

// Registry aggregates the per-entity stores for one session.
type Registry struct {
	Students    *Store[*models.Student]
	Courses     *Store[*models.Course]
	Instructors *Store[*models.Instructor]
}

// NewRegistry constructs empty stores for all entity types.
func NewRegistry() *Registry {
	return &Registry{
		Students:    New[*models.Student](),
		Courses:     New[*models.Course](),
		Instructors: New[*models.Instructor](),
	}
}
