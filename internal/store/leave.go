package store

import (
	"attendance/dashboard/internal/entity"
)

func (s *Store) AddLeaveRecord(l entity.LeaveRecord) entity.LeaveRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = s.ids.next(PrefixLeaveRecord)
	s.leaveRecords = append(s.leaveRecords, l)
	s.notify(KindLeaveRecord, OpAdd)

	return l
}

func (s *Store) UpdateLeaveRecord(id string, p LeaveRecordPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.leaveRecords, func(l entity.LeaveRecord) bool { return l.ID == id })
	if i < 0 {
		return false
	}

	p.apply(&s.leaveRecords[i])
	s.notify(KindLeaveRecord, OpUpdate)

	return true
}

func (s *Store) DeleteLeaveRecord(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int
	s.leaveRecords, removed = removeWhere(s.leaveRecords, func(l entity.LeaveRecord) bool { return l.ID == id })
	if removed == 0 {
		return false
	}
	s.notify(KindLeaveRecord, OpDelete)

	return true
}

func (s *Store) GetLeaveRecordByID(id string) (entity.LeaveRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.leaveRecords, func(l entity.LeaveRecord) bool { return l.ID == id })
	if i < 0 {
		return entity.LeaveRecord{}, false
	}

	return s.leaveRecords[i], true
}

// GetLeavesByEmployeeID returns the employee's leave records in collection
// order, or an empty slice.
func (s *Store) GetLeavesByEmployeeID(employeeID string) []entity.LeaveRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]entity.LeaveRecord, 0)
	for _, l := range s.leaveRecords {
		if l.EmployeeID == employeeID {
			list = append(list, l)
		}
	}

	return list
}

func (s *Store) LeaveRecords() []entity.LeaveRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.leaveRecords)
}
