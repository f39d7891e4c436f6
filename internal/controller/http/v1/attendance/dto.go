package attendance

import (
	"time"

	"attendance/dashboard/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

const (
	clockLayout  = "15:04"
	defaultBreak = "00:30"
)

type CreateRequest struct {
	EmployeeID string    `json:"employee_id" validate:"required"`
	Date       date.Date `json:"date"`
	TimeIn     string    `json:"time_in" validate:"omitempty,clock"`
	TimeOut    string    `json:"time_out" validate:"omitempty,clock"`
	BreakTime  string    `json:"break_time" validate:"omitempty,clock"`
	Status     string    `json:"status" validate:"required,oneof=Present Late Absent"`
}

// shift checks the times of a record with the given status and returns them
// normalized to HH:MM. Absent records carry no times and no break.
func shift(status, timeIn, timeOut, breakTime string) (in, out, brk string, err error) {
	if status == entity.AttendanceAbsent {
		return "", "", "00:00", nil
	}

	if timeIn == "" || timeOut == "" {
		return "", "", "", errors.New("time_in and time_out are required unless absent")
	}

	tin, err := time.Parse(clockLayout, timeIn)
	if err != nil {
		return "", "", "", errors.Wrap(err, "time_in")
	}
	tout, err := time.Parse(clockLayout, timeOut)
	if err != nil {
		return "", "", "", errors.Wrap(err, "time_out")
	}
	if !tout.After(tin) {
		return "", "", "", errors.New("time_out must be after time_in")
	}

	if breakTime == "" {
		breakTime = defaultBreak
	}
	tb, err := time.Parse(clockLayout, breakTime)
	if err != nil {
		return "", "", "", errors.Wrap(err, "break_time")
	}

	return tin.Format(clockLayout), tout.Format(clockLayout), tb.Format(clockLayout), nil
}
