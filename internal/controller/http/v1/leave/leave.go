package leave

import (
	"net/http"
	"reflect"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"

	"github.com/pkg/errors"
)

type Controller struct {
	leave    Leave
	employee Employee
}

func NewController(leave Leave, employee Employee) *Controller {
	return &Controller{leave, employee}
}

// GetList returns every leave record, or those of one employee when
// employee_id is given.
func (uc Controller) GetList(c *web.Context) error {
	employeeID, _ := c.GetQueryFunc(reflect.String, "employee_id").(*string)

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	var list []entity.LeaveRecord
	if employeeID != nil {
		list = uc.leave.GetLeavesByEmployeeID(*employeeID)
	} else {
		list = uc.leave.LeaveRecords()
	}

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

	detail, ok := uc.leave.GetLeaveRecordByID(id)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "leave record %s", id), http.StatusNotFound))
	}

	return c.Respond(map[string]interface{}{
		"data":   detail,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request CreateRequest

	if err := c.BindFunc(&request, "StartDate", "EndDate"); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}
	if request.EndDate.Before(request.StartDate.Time) {
		return c.RespondError(web.NewRequestError(errors.New("end_date must not be before start_date"), http.StatusBadRequest))
	}
	if _, ok := uc.employee.GetEmployeeByID(request.EmployeeID); !ok {
		return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "employee %s", request.EmployeeID), http.StatusBadRequest))
	}

	if request.Status == "" {
		request.Status = entity.LeavePending
	}

	response := uc.leave.AddLeaveRecord(entity.LeaveRecord{
		EmployeeID: request.EmployeeID,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		Reason:     request.Reason,
		Status:     request.Status,
		Type:       request.Type,
	})

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request store.LeaveRecordPatch

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}

	if request.EmployeeID != nil {
		if _, ok := uc.employee.GetEmployeeByID(*request.EmployeeID); !ok {
			return c.RespondError(web.NewRequestError(errors.Wrapf(store.ErrNotFound, "employee %s", *request.EmployeeID), http.StatusBadRequest))
		}
	}

	if current, ok := uc.leave.GetLeaveRecordByID(id); ok {
		start, end := current.StartDate, current.EndDate
		if request.StartDate != nil {
			start = *request.StartDate
		}
		if request.EndDate != nil {
			end = *request.EndDate
		}
		if end.Before(start.Time) {
			return c.RespondError(web.NewRequestError(errors.New("end_date must not be before start_date"), http.StatusBadRequest))
		}
	}

	found := uc.leave.UpdateLeaveRecord(id, request)

	var data interface{}
	if found {
		data, _ = uc.leave.GetLeaveRecordByID(id)
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

	found := uc.leave.DeleteLeaveRecord(id)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"found":  found,
		"status": true,
	}, http.StatusOK)
}
