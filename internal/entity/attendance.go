package entity

import (
	"github.com/Azure/go-autorest/autorest/date"
)

const (
	AttendancePresent = "Present"
	AttendanceLate    = "Late"
	AttendanceAbsent  = "Absent"
)

// AttendanceStatuses is the display vocabulary in report order.
var AttendanceStatuses = []string{AttendancePresent, AttendanceLate, AttendanceAbsent}

// Attendance is one logged working day. EmployeeName and Department are copied
// from the employee when the record is created and are not kept in sync.
type Attendance struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Department   string    `json:"department"`
	Date         date.Date `json:"date"`
	TimeIn       string    `json:"time_in"`
	TimeOut      string    `json:"time_out"`
	BreakTime    string    `json:"break_time"`
	Status       string    `json:"status"`
}
