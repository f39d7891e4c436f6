package report

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"reflect"
	"time"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/commands"
	"attendance/dashboard/internal/controller/http/v1/attendance"
	"attendance/dashboard/internal/report"
	"attendance/dashboard/internal/service"

	"github.com/pkg/errors"
)

// Row is an attendance record as it appears in a report.
type Row struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Date         string  `json:"date"`
	TimeIn       string  `json:"time_in"`
	TimeOut      string  `json:"time_out"`
	BreakTime    string  `json:"break_time"`
	WorkHours    float64 `json:"work_hours"`
	Status       string  `json:"status"`
}

type Controller struct {
	store    Store
	exporter *service.Exporter
	today    func() time.Time
}

// NewController builds the report endpoints. today decides which day the
// dashboard treats as the current one.
func NewController(store Store, exporter *service.Exporter, today func() time.Time) *Controller {
	if today == nil {
		today = time.Now
	}
	return &Controller{store, exporter, today}
}

func (uc Controller) Attendance(c *web.Context) error {
	filter, err := attendance.ParseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list := report.FilterAttendances(uc.store.Attendances(), filter)

	rows := make([]Row, 0, len(list))
	for _, a := range list {
		var day string
		if !a.Date.IsZero() {
			day = a.Date.Format("2006-01-02")
		}
		rows = append(rows, Row{
			ID:           a.ID,
			EmployeeID:   a.EmployeeID,
			EmployeeName: a.EmployeeName,
			Department:   a.Department,
			Date:         day,
			TimeIn:       a.TimeIn,
			TimeOut:      a.TimeOut,
			BreakTime:    a.BreakTime,
			WorkHours:    report.WorkHours(a.TimeIn, a.TimeOut, a.BreakTime),
			Status:       a.Status,
		})
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": rows,
			"count":   len(rows),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Statistics(c *web.Context) error {
	filter, err := attendance.ParseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list := report.FilterAttendances(uc.store.Attendances(), filter)

	return c.Respond(map[string]interface{}{
		"data":   report.Summarize(list),
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Dashboard(c *web.Context) error {
	var raw string
	if r, ok := c.GetQueryFunc(reflect.String, "range").(*string); ok {
		raw = *r
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	r, err := report.ParseRange(raw)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	response := report.BuildDashboard(uc.store.Attendances(), len(uc.store.Employees()), uc.today(), r)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Organization(c *web.Context) error {
	response := report.OrganizationStats(uc.store.Departments(), uc.store.Employees(), uc.store.Designations())

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// Export writes the filtered attendance report as an xlsx workbook or a pdf
// document and sends it as an attachment.
func (uc Controller) Export(c *web.Context) error {
	format := "xlsx"
	if f, ok := c.GetQueryFunc(reflect.String, "format").(*string); ok {
		format = *f
	}

	filter, err := attendance.ParseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list := report.FilterAttendances(uc.store.Attendances(), filter)

	var write func(w io.Writer) error
	switch format {
	case "xlsx":
		write = func(w io.Writer) error { return service.WriteAttendanceExcel(w, list) }
	case "pdf":
		write = func(w io.Writer) error { return service.WriteAttendancePDF(w, "Attendance Report", list) }
	default:
		return c.RespondError(web.NewRequestError(errors.Errorf("format: unsupported %q", format), http.StatusBadRequest))
	}

	name := "attendance." + format
	path, err := uc.exporter.Save(name, write)
	if err != nil {
		log.Println("attendance export:", err)
		return c.RespondError(err)
	}

	c.FileAttachment(path, name)

	return nil
}

// SeedSQL dumps the current store contents as PostgreSQL statements.
func (uc Controller) SeedSQL(c *web.Context) error {
	var buf bytes.Buffer

	if err := commands.WriteSeedSQL(&buf, uc.store.Export()); err != nil {
		log.Println("seed sql:", err)
		return c.RespondError(err)
	}

	c.Data(http.StatusOK, "application/sql; charset=utf-8", buf.Bytes())

	return nil
}
