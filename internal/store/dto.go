package store

import (
	"attendance/dashboard/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

// Patch types carry a partial update. A nil field leaves the stored value
// unchanged; a non-nil field overwrites it, even with a zero value. The
// validate tags are checked by the HTTP layer; the store ignores them.

type EmployeePatch struct {
	Name            *string    `json:"name" form:"name"`
	Email           *string    `json:"email" form:"email" validate:"omitempty,email"`
	Phone           *string    `json:"phone" form:"phone"`
	Department      *string    `json:"department" form:"department"`
	Designation     *string    `json:"designation" form:"designation"`
	JoinDate        *date.Date `json:"join_date" form:"join_date"`
	Status          *string    `json:"status" form:"status"`
	Photo           *string    `json:"photo" form:"photo"`
	Address         *string    `json:"address" form:"address"`
	DaysPresent     *int       `json:"days_present" form:"days_present" validate:"omitempty,gte=0"`
	TotalLeaves     *int       `json:"total_leaves" form:"total_leaves" validate:"omitempty,gte=0"`
	RemainingLeaves *int       `json:"remaining_leaves" form:"remaining_leaves" validate:"omitempty,gte=0"`
}

func (p EmployeePatch) apply(e *entity.Employee) {
	set(&e.Name, p.Name)
	set(&e.Email, p.Email)
	set(&e.Phone, p.Phone)
	set(&e.Department, p.Department)
	set(&e.Designation, p.Designation)
	set(&e.JoinDate, p.JoinDate)
	set(&e.Status, p.Status)
	set(&e.Photo, p.Photo)
	set(&e.Address, p.Address)
	set(&e.DaysPresent, p.DaysPresent)
	set(&e.TotalLeaves, p.TotalLeaves)
	set(&e.RemainingLeaves, p.RemainingLeaves)
}

type AttendancePatch struct {
	EmployeeID   *string    `json:"employee_id" form:"employee_id"`
	EmployeeName *string    `json:"employee_name" form:"employee_name"`
	Department   *string    `json:"department" form:"department"`
	Date         *date.Date `json:"date" form:"date"`
	TimeIn       *string    `json:"time_in" form:"time_in" validate:"omitempty,clock"`
	TimeOut      *string    `json:"time_out" form:"time_out" validate:"omitempty,clock"`
	BreakTime    *string    `json:"break_time" form:"break_time" validate:"omitempty,clock"`
	Status       *string    `json:"status" form:"status" validate:"omitempty,oneof=Present Late Absent"`
}

func (p AttendancePatch) apply(a *entity.Attendance) {
	set(&a.EmployeeID, p.EmployeeID)
	set(&a.EmployeeName, p.EmployeeName)
	set(&a.Department, p.Department)
	set(&a.Date, p.Date)
	set(&a.TimeIn, p.TimeIn)
	set(&a.TimeOut, p.TimeOut)
	set(&a.BreakTime, p.BreakTime)
	set(&a.Status, p.Status)
}

type LeaveRecordPatch struct {
	EmployeeID *string    `json:"employee_id" form:"employee_id"`
	StartDate  *date.Date `json:"start_date" form:"start_date"`
	EndDate    *date.Date `json:"end_date" form:"end_date"`
	Reason     *string    `json:"reason" form:"reason"`
	Status     *string    `json:"status" form:"status" validate:"omitempty,oneof=Approved Pending Rejected"`
	Type       *string    `json:"type" form:"type"`
}

func (p LeaveRecordPatch) apply(l *entity.LeaveRecord) {
	set(&l.EmployeeID, p.EmployeeID)
	set(&l.StartDate, p.StartDate)
	set(&l.EndDate, p.EndDate)
	set(&l.Reason, p.Reason)
	set(&l.Status, p.Status)
	set(&l.Type, p.Type)
}

type DesignationPatch struct {
	Name        *string `json:"name" form:"name"`
	Department  *string `json:"department" form:"department"`
	Description *string `json:"description" form:"description"`
}

func (p DesignationPatch) apply(d *entity.Designation) {
	set(&d.Name, p.Name)
	set(&d.Department, p.Department)
	set(&d.Description, p.Description)
}

type StatusPatch struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Color       *string `json:"color" form:"color" validate:"omitempty,hexcolor"`
}

func (p StatusPatch) apply(s *entity.Status) {
	set(&s.Name, p.Name)
	set(&s.Description, p.Description)
	set(&s.Color, p.Color)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
