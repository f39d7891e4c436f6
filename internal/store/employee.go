package store

import (
	"attendance/dashboard/internal/entity"
)

// AddEmployee stores e under a freshly generated id and returns the stored
// value. Any id set on e is ignored.
func (s *Store) AddEmployee(e entity.Employee) entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.ids.next(PrefixEmployee)
	s.employees = append(s.employees, e)
	s.notify(KindEmployee, OpAdd)

	return e
}

// UpdateEmployee merges p into the employee with the given id and reports
// whether it exists. Attendance snapshots of the old name and department are
// left as they are.
func (s *Store) UpdateEmployee(id string, p EmployeePatch) bool {
	found, _ := s.UpdateEmployeeChecked(id, p, nil)
	return found
}

// UpdateEmployeeChecked is UpdateEmployee with a caller supplied check. The
// check sees the merged employee under the store lock and a non-nil error
// keeps the stored value unchanged, so a cross-field rule cannot be raced by
// another update. check must not call back into the store.
func (s *Store) UpdateEmployeeChecked(id string, p EmployeePatch, check func(merged entity.Employee) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.employees, func(e entity.Employee) bool { return e.ID == id })
	if i < 0 {
		return false, nil
	}

	merged := s.employees[i]
	p.apply(&merged)
	if check != nil {
		if err := check(merged); err != nil {
			return true, err
		}
	}

	s.employees[i] = merged
	s.notify(KindEmployee, OpUpdate)

	return true, nil
}

// DeleteEmployee removes the employee together with every attendance and
// leave record that references it, and reports whether the employee existed.
// An unknown id changes nothing, including records that happen to carry it.
func (s *Store) DeleteEmployee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	s.employees, removed = removeWhere(s.employees, func(e entity.Employee) bool { return e.ID == id })
	if removed == 0 {
		return false
	}
	s.notify(KindEmployee, OpDelete)

	var n int
	s.attendances, n = removeWhere(s.attendances, func(a entity.Attendance) bool { return a.EmployeeID == id })
	for ; n > 0; n-- {
		s.notify(KindAttendance, OpDelete)
	}

	s.leaveRecords, n = removeWhere(s.leaveRecords, func(l entity.LeaveRecord) bool { return l.EmployeeID == id })
	for ; n > 0; n-- {
		s.notify(KindLeaveRecord, OpDelete)
	}

	return true
}

func (s *Store) GetEmployeeByID(id string) (entity.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.employees, func(e entity.Employee) bool { return e.ID == id })
	if i < 0 {
		return entity.Employee{}, false
	}

	return s.employees[i], true
}

// Employees returns every employee in insertion order.
func (s *Store) Employees() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.employees)
}
