package store

import (
	"attendance/dashboard/internal/entity"
)

func (s *Store) AddStatus(st entity.Status) entity.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.ID = s.ids.next(PrefixStatus)
	s.statuses = append(s.statuses, st)
	s.notify(KindStatus, OpAdd)

	return st
}

func (s *Store) UpdateStatus(id string, p StatusPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.statuses, func(st entity.Status) bool { return st.ID == id })
	if i < 0 {
		return false
	}

	p.apply(&s.statuses[i])
	s.notify(KindStatus, OpUpdate)

	return true
}

// DeleteStatus removes the status label. Employees still carrying that label
// keep it.
func (s *Store) DeleteStatus(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	s.statuses, removed = removeWhere(s.statuses, func(st entity.Status) bool { return st.ID == id })
	if removed == 0 {
		return false
	}
	s.notify(KindStatus, OpDelete)

	return true
}

func (s *Store) GetStatusByID(id string) (entity.Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.statuses, func(st entity.Status) bool { return st.ID == id })
	if i < 0 {
		return entity.Status{}, false
	}

	return s.statuses[i], true
}

func (s *Store) Statuses() []entity.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.statuses)
}
