package employee

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"time"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/report"
	"attendance/dashboard/internal/service"
	"attendance/dashboard/internal/store"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Controller struct {
	employee Employee
	exporter *service.Exporter
}

func NewController(employee Employee, exporter *service.Exporter) *Controller {
	return &Controller{employee, exporter}
}

func notFound(id string) error {
	return web.NewRequestError(errors.Wrapf(store.ErrNotFound, "employee %s", id), http.StatusNotFound)
}

func (uc Controller) GetList(c *web.Context) error {
	var filter report.EmployeeFilter

	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = *search
	}
	if department, ok := c.GetQueryFunc(reflect.String, "department").(*string); ok {
		filter.Department = *department
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = *status
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list := report.FilterEmployees(uc.employee.Employees(), filter)

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

// GetDetailById returns the employee profile with its attendance and leave
// history.
func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, ok := uc.employee.GetEmployeeByID(id)
	if !ok {
		return c.RespondError(notFound(id))
	}

	return c.Respond(map[string]interface{}{
		"data": Profile{
			Employee:     detail,
			Attendances:  uc.employee.GetAttendancesByEmployeeID(id),
			LeaveRecords: uc.employee.GetLeavesByEmployeeID(id),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request CreateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}

	e := request.entity()
	if e.JoinDate.IsZero() {
		e.JoinDate = date.Date{Time: time.Now().UTC().Truncate(24 * time.Hour)}
	}
	if e.Status == "" {
		e.Status = entity.EmployeeStatusActive
	}

	return c.Respond(map[string]interface{}{
		"data":   uc.employee.AddEmployee(e),
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request store.EmployeePatch

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&request); err != nil {
		return c.RespondError(err)
	}

	var blank []string
	for name, v := range map[string]*string{
		"name": request.Name, "email": request.Email, "phone": request.Phone,
		"designation": request.Designation, "photo": request.Photo,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			blank = append(blank, name)
		}
	}
	if len(blank) > 0 {
		sort.Strings(blank)
		return c.RespondError(web.NewRequestError(errors.Errorf("%s cannot be empty", strings.Join(blank, ", ")), http.StatusBadRequest))
	}

	found, err := uc.employee.UpdateEmployeeChecked(id, request, func(merged entity.Employee) error {
		if merged.RemainingLeaves > merged.TotalLeaves {
			return errors.New("remaining_leaves cannot exceed total_leaves")
		}
		return nil
	})
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	var data interface{}
	if found {
		data, _ = uc.employee.GetEmployeeByID(id)
	}

	return c.Respond(map[string]interface{}{
		"data":   data,
		"found":  found,
		"status": true,
	}, http.StatusOK)
}

// Delete removes the employee along with its attendance and leave records.
func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	found := uc.employee.DeleteEmployee(id)

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"found":  found,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetAttendance(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   uc.employee.GetAttendancesByEmployeeID(id),
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetLeaves(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   uc.employee.GetLeavesByEmployeeID(id),
		"status": true,
	}, http.StatusOK)
}

// GetBadge serves the employee's QR badge as a PNG.
func (uc Controller) GetBadge(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, ok := uc.employee.GetEmployeeByID(id)
	if !ok {
		return c.RespondError(notFound(id))
	}

	png, err := service.Badge(detail)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=badge-%s.png", detail.ID))
	c.Data(http.StatusOK, "image/png", png)

	return nil
}

// UploadPhoto replaces the employee photo with a thumbnail of the uploaded
// image.
func (uc Controller) UploadPhoto(c *web.Context) error {
	id := c.GetParam(reflect.String, "id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if _, ok := uc.employee.GetEmployeeByID(id); !ok {
		return c.RespondError(notFound(id))
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "photo"), http.StatusBadRequest))
	}

	photo, err := service.PhotoFromUpload(file)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	found := uc.employee.UpdateEmployee(id, store.EmployeePatch{Photo: &photo})
	detail, _ := uc.employee.GetEmployeeByID(id)

	return c.Respond(map[string]interface{}{
		"data":   detail,
		"found":  found,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ExportEmployee(c *web.Context) error {
	const name = "employees.xlsx"

	path, err := uc.exporter.Save(name, func(w io.Writer) error {
		return service.WriteEmployeesExcel(w, uc.employee.Employees())
	})
	if err != nil {
		log.Println("employee export:", err)
		return c.RespondError(err)
	}

	c.FileAttachment(path, name)

	return nil
}

// CreateByExcel adds every valid row of an uploaded employee sheet and
// reports the rows it skipped.
func (uc Controller) CreateByExcel(c *web.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "file"), http.StatusBadRequest))
	}

	src, err := file.Open()
	if err != nil {
		return c.RespondError(err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Println("employee import src.Close() error:", closeErr)
		}
	}()

	existing := make(map[string]struct{})
	for _, e := range uc.employee.Employees() {
		existing[strings.ToLower(e.Email)] = struct{}{}
	}

	rows, incomplete, err := service.ReadEmployeesExcel(src, existing)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	response := ImportResponse{
		Created:        make([]entity.Employee, 0, len(rows)),
		IncompleteRows: incomplete,
	}
	for _, e := range rows {
		response.Created = append(response.Created, uc.employee.AddEmployee(e))
	}
	if response.IncompleteRows == nil {
		response.IncompleteRows = []int{}
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}
