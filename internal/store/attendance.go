package store

import (
	"attendance/dashboard/internal/entity"
)

// AddAttendance stores a under a freshly generated id. The employee name and
// department are kept exactly as given.
func (s *Store) AddAttendance(a entity.Attendance) entity.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.ids.next(PrefixAttendance)
	s.attendances = append(s.attendances, a)
	s.notify(KindAttendance, OpAdd)

	return a
}

func (s *Store) UpdateAttendance(id string, p AttendancePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.attendances, func(a entity.Attendance) bool { return a.ID == id })
	if i < 0 {
		return false
	}

	p.apply(&s.attendances[i])
	s.notify(KindAttendance, OpUpdate)

	return true
}

func (s *Store) DeleteAttendance(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	s.attendances, removed = removeWhere(s.attendances, func(a entity.Attendance) bool { return a.ID == id })
	if removed == 0 {
		return false
	}
	s.notify(KindAttendance, OpDelete)

	return true
}

func (s *Store) GetAttendanceByID(id string) (entity.Attendance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.attendances, func(a entity.Attendance) bool { return a.ID == id })
	if i < 0 {
		return entity.Attendance{}, false
	}

	return s.attendances[i], true
}

// GetAttendancesByEmployeeID returns the employee's records in collection
// order, or an empty slice.
func (s *Store) GetAttendancesByEmployeeID(employeeID string) []entity.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]entity.Attendance, 0)
	for _, a := range s.attendances {
		if a.EmployeeID == employeeID {
			list = append(list, a)
		}
	}

	return list
}

func (s *Store) Attendances() []entity.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.attendances)
}
