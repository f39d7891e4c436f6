package employee

import (
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"
)

type Employee interface {
	Employees() []entity.Employee
	GetEmployeeByID(id string) (entity.Employee, bool)
	AddEmployee(e entity.Employee) entity.Employee
	UpdateEmployee(id string, p store.EmployeePatch) bool
	UpdateEmployeeChecked(id string, p store.EmployeePatch, check func(merged entity.Employee) error) (bool, error)
	DeleteEmployee(id string) bool
	GetAttendancesByEmployeeID(employeeID string) []entity.Attendance
	GetLeavesByEmployeeID(employeeID string) []entity.LeaveRecord
}
