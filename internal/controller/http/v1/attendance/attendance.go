package attendance

import (
	"net/http"
	"reflect"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/report"
	"attendance/dashboard/internal/store"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Controller struct {
	attendance Attendance
	employee   Employee
}

func NewController(attendance Attendance, employee Employee) *Controller {
	return &Controller{attendance, employee}
}

// ParseFilter reads the attendance filter from the query string. Dates use
// the YYYY-MM-DD form.
func ParseFilter(c *web.Context) (report.AttendanceFilter, error) {
	var filter report.AttendanceFilter

	dates := map[string]*date.Date{
		"start_date": &filter.StartDate,
		"end_date":   &filter.EndDate,
		"date":       &filter.Date,
	}
	for key, dst := range dates {
		raw, ok := c.GetQueryFunc(reflect.String, key).(*string)
		if !ok {
			continue
		}
		d, err := date.ParseDate(*raw)
		if err != nil {
			return filter, web.NewRequestError(errors.Errorf("%s: expected YYYY-MM-DD", key), http.StatusBadRequest)
		}
		*dst = d
	}

	if department, ok := c.GetQueryFunc(reflect.String, "department").(*string); ok {
		filter.Department = *department
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = *status
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = *search
	}

	return filter, c.ValidQuery()
}

// GetList returns filtered attendance, newest first.
func (uc Controller) GetList(c *web.Context) error {
	filter, err := ParseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list := report.FilterAttendances(uc.attendance.Attendances(), filter)

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, ok := uc.attendance.GetAttendanceByID(id)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "attendance %s", id), http.StatusNotFound))
	}

	return c.Respond(map[string]interface{}{
		"data":   detail,
		"status": true,
	}, http.StatusOK)
}

// Create logs a day for an existing employee, copying the employee's current
// name and department onto the record.
func (uc Controller) Create(c *web.Context) error {
	var request CreateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}
	if request.Date.IsZero() {
		return c.RespondError(web.NewRequestError(errors.New("date required"), http.StatusBadRequest))
	}

	emp, ok := uc.employee.GetEmployeeByID(request.EmployeeID)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "employee %s", request.EmployeeID), http.StatusBadRequest))
	}

	in, out, brk, err := shift(request.Status, request.TimeIn, request.TimeOut, request.BreakTime)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	response := uc.attendance.AddAttendance(entity.Attendance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Department:   emp.Department,
		Date:         request.Date,
		TimeIn:       in,
		TimeOut:      out,
		BreakTime:    brk,
		Status:       request.Status,
	})

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// UpdateColumns merges the given fields. The resulting record must still
// have consistent times for its status, and a new employee_id must name an
// existing employee.
func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request store.AttendancePatch

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}

	if request.EmployeeID != nil {
		emp, ok := uc.employee.GetEmployeeByID(*request.EmployeeID)
		if !ok {
			return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "employee %s", *request.EmployeeID), http.StatusBadRequest))
		}
		// moving a record to another employee snapshots that employee
		if current, ok := uc.attendance.GetAttendanceByID(id); ok && current.EmployeeID != emp.ID {
			if request.EmployeeName == nil {
				request.EmployeeName = &emp.Name
			}
			if request.Department == nil {
				request.Department = &emp.Department
			}
		}
	}

	if current, ok := uc.attendance.GetAttendanceByID(id); ok {
		merged := current
		pick := func(dst *string, v *string) {
			if v != nil {
				*dst = *v
			}
		}
		pick(&merged.Status, request.Status)
		pick(&merged.TimeIn, request.TimeIn)
		pick(&merged.TimeOut, request.TimeOut)
		pick(&merged.BreakTime, request.BreakTime)

		in, out, brk, err := shift(merged.Status, merged.TimeIn, merged.TimeOut, merged.BreakTime)
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
		}
		request.TimeIn, request.TimeOut, request.BreakTime = &in, &out, &brk
	}

	found := uc.attendance.UpdateAttendance(id, request)

	var data interface{}
	if found {
		data, _ = uc.attendance.GetAttendanceByID(id)
	}

	return c.Respond(map[string]interface{}{
		"data":   data,
		"found":  found,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	found := uc.attendance.DeleteAttendance(id)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"found":  found,
		"status": true,
	}, http.StatusOK)
}
