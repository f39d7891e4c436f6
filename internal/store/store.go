// Package store holds the dashboard's domain collections in memory and is the
// only place they are mutated.
//
// Every collection keeps insertion order. Reads hand out copies, so callers
// may sort or modify what they receive. Mutations on an unknown id are no-ops
// and never fail; validation belongs to the callers. Deleting an employee
// also removes that employee's attendance and leave records.
package store

import (
	"sync"

	"attendance/dashboard/internal/entity"

	"github.com/pkg/errors"
)

// ErrNotFound is what the transport layer reports when a lookup comes back
// empty. The store itself signals absence with a false ok value.
var ErrNotFound = errors.New("not found")

// Entity names passed to an Observer.
const (
	KindEmployee    = "employee"
	KindAttendance  = "attendance"
	KindLeaveRecord = "leave_record"
	KindDesignation = "designation"
	KindStatus      = "status"
)

// Operations passed to an Observer.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Observer is told about every mutation that changed the store. It runs with
// the store lock held and must not call back into the store.
type Observer func(kind, op string)

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the id source. The store still refuses any id it
// has handed out before and asks again.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids.gen = gen
		}
	}
}

// WithObserver registers fn to be called after each effective mutation.
func WithObserver(fn Observer) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// Store is the in-memory Domain Store. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	employees    []entity.Employee
	attendances  []entity.Attendance
	leaveRecords []entity.LeaveRecord
	designations []entity.Designation
	statuses     []entity.Status
	departments  []entity.Department

	ids       *idRegistry
	observers []Observer
}

// New creates a Store populated with copies of the seed collections.
func New(seed Seed, opts ...Option) *Store {
	s := &Store{
		employees:    append([]entity.Employee(nil), seed.Employees...),
		attendances:  append([]entity.Attendance(nil), seed.Attendances...),
		leaveRecords: append([]entity.LeaveRecord(nil), seed.LeaveRecords...),
		designations: append([]entity.Designation(nil), seed.Designations...),
		statuses:     append([]entity.Status(nil), seed.Statuses...),
		departments:  append([]entity.Department(nil), seed.Departments...),
		ids:          newIDRegistry(),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, e := range s.employees {
		s.ids.reserve(e.ID)
	}
	for _, a := range s.attendances {
		s.ids.reserve(a.ID)
	}
	for _, l := range s.leaveRecords {
		s.ids.reserve(l.ID)
	}
	for _, d := range s.designations {
		s.ids.reserve(d.ID)
	}
	for _, st := range s.statuses {
		s.ids.reserve(st.ID)
	}

	return s
}

// Departments returns the fixed department reference list.
func (s *Store) Departments() []entity.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.departments)
}

// Export returns a copy of every collection, shaped like the seed it was
// built from.
func (s *Store) Export() Seed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Seed{
		Employees:    cloneSlice(s.employees),
		Attendances:  cloneSlice(s.attendances),
		LeaveRecords: cloneSlice(s.leaveRecords),
		Designations: cloneSlice(s.designations),
		Statuses:     cloneSlice(s.statuses),
		Departments:  cloneSlice(s.departments),
	}
}

func (s *Store) notify(kind, op string) {
	for _, fn := range s.observers {
		fn(kind, op)
	}
}

// cloneSlice copies src into a fresh, never nil, slice. Entity types hold
// only value fields so a shallow copy is a full copy.
func cloneSlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func indexOf[T any](list []T, match func(T) bool) int {
	for i := range list {
		if match(list[i]) {
			return i
		}
	}
	return -1
}

// removeWhere drops every element matching fn, keeping the order of the rest.
// It returns the new slice and how many elements were removed.
func removeWhere[T any](list []T, match func(T) bool) ([]T, int) {
	kept := list[:0]
	removed := 0
	for _, v := range list {
		if match(v) {
			removed++
			continue
		}
		kept = append(kept, v)
	}

	// clear the tail so removed values are not retained by the backing array
	var zero T
	for i := len(kept); i < len(list); i++ {
		list[i] = zero
	}

	return kept, removed
}
