package report

import (
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"
)

type Store interface {
	Attendances() []entity.Attendance
	Employees() []entity.Employee
	Designations() []entity.Designation
	Departments() []entity.Department
	Export() store.Seed
}
