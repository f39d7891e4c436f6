package store

import (
	"github.com/google/uuid"
)

// Id prefixes, one per collection.
const (
	PrefixEmployee    = "emp"
	PrefixAttendance  = "att"
	PrefixLeaveRecord = "leave"
	PrefixDesignation = "des"
	PrefixStatus      = "status"
)

// IDGenerator returns a candidate id for a new entity of the given prefix.
type IDGenerator func(prefix string) string

// UUIDGenerator produces ids such as "emp-9b2c...".
func UUIDGenerator(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// idRegistry remembers every id the store has ever held so that an id is
// never assigned twice, even after the entity holding it was deleted.
type idRegistry struct {
	gen  IDGenerator
	used map[string]struct{}
}

func newIDRegistry() *idRegistry {
	return &idRegistry{
		gen:  UUIDGenerator,
		used: make(map[string]struct{}),
	}
}

func (r *idRegistry) reserve(id string) {
	r.used[id] = struct{}{}
}

// maxAttempts bounds how often a custom generator is asked before falling
// back to UUIDGenerator.
const maxAttempts = 8

func (r *idRegistry) next(prefix string) string {
	gen := r.gen
	for attempt := 0; ; attempt++ {
		if attempt == maxAttempts {
			gen = UUIDGenerator
		}

		id := gen(prefix)
		if _, taken := r.used[id]; taken || id == "" {
			continue
		}
		r.used[id] = struct{}{}
		return id
	}
}
