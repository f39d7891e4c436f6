package leave

import (
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"
)

type Leave interface {
	LeaveRecords() []entity.LeaveRecord
	GetLeaveRecordByID(id string) (entity.LeaveRecord, bool)
	GetLeavesByEmployeeID(employeeID string) []entity.LeaveRecord
	AddLeaveRecord(l entity.LeaveRecord) entity.LeaveRecord
	UpdateLeaveRecord(id string, p store.LeaveRecordPatch) bool
	DeleteLeaveRecord(id string) bool
}

type Employee interface {
	GetEmployeeByID(id string) (entity.Employee, bool)
}
