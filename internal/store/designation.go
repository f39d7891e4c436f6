package store

import (
	"attendance/dashboard/internal/entity"
)

func (s *Store) AddDesignation(d entity.Designation) entity.Designation {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = s.ids.next(PrefixDesignation)
	s.designations = append(s.designations, d)
	s.notify(KindDesignation, OpAdd)

	return d
}

// UpdateDesignation does not touch employees that refer to the old name.
func (s *Store) UpdateDesignation(id string, p DesignationPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.designations, func(d entity.Designation) bool { return d.ID == id })
	if i < 0 {
		return false
	}

	p.apply(&s.designations[i])
	s.notify(KindDesignation, OpUpdate)

	return true
}

func (s *Store) DeleteDesignation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	s.designations, removed = removeWhere(s.designations, func(d entity.Designation) bool { return d.ID == id })
	if removed == 0 {
		return false
	}
	s.notify(KindDesignation, OpDelete)

	return true
}

func (s *Store) GetDesignationByID(id string) (entity.Designation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.designations, func(d entity.Designation) bool { return d.ID == id })
	if i < 0 {
		return entity.Designation{}, false
	}

	return s.designations[i], true
}

func (s *Store) Designations() []entity.Designation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.designations)
}
