package attendance

import (
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"
)

type Attendance interface {
	Attendances() []entity.Attendance
	GetAttendanceByID(id string) (entity.Attendance, bool)
	AddAttendance(a entity.Attendance) entity.Attendance
	UpdateAttendance(id string, p store.AttendancePatch) bool
	DeleteAttendance(id string) bool
}

// Employee resolves the employee an attendance record is logged for.
type Employee interface {
	GetEmployeeByID(id string) (entity.Employee, bool)
}
