// Package taskstore holds the tasks of the running session in memory.
package taskstore

import (
	"slices"
	"sync"

	"github.com/Tiliavir/trivial-task-tracker/internal/model"
)

// Observer receives the collection after each change.
type Observer func(tasks []model.Task)

// Store is an ordered, in-memory collection of tasks. Tasks are kept in
// insertion order and never reordered. Callers only ever see copies.
//
// Add does not reject duplicate IDs and the store does not check that
// EndTime is after StartTime.
type Store struct {
	mu        sync.RWMutex
	tasks     []model.Task
	observers map[int]Observer
	nextObs   int
}

// New returns an empty Store.
func New() *Store {
	return &Store{observers: map[int]Observer{}}
}

// Add appends task to the end of the collection and notifies observers.
func (s *Store) Add(task model.Task) {
	s.mu.Lock()
	next := make([]model.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.tasks = append(next, task)
	s.mu.Unlock()

	s.notify()
}

// Delete removes every task with the given id. Unknown ids are a no-op,
// observers are still notified.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.tasks = next
	s.mu.Unlock()

	s.notify()
}

// Tasks returns a snapshot of the collection in insertion order.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Subscribe registers fn to be called synchronously after every Add and
// Delete. The returned function removes the subscription; calling it more
// than once is harmless.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// notify calls observers in subscription order, outside the lock so they
// may read the store. Each observer gets its own snapshot.
func (s *Store) notify() {
	s.mu.RLock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	obs := make([]Observer, 0, len(ids))
	for _, id := range ids {
		obs = append(obs, s.observers[id])
	}
	s.mu.RUnlock()

	for _, fn := range obs {
		fn(s.Tasks())
	}
}
