package service

import (
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/report"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

const (
	EmployeeSheet   = "Employees"
	AttendanceSheet = "Attendance"
)

var employeeHeaders = []interface{}{
	"Name", "Email", "Phone", "Department", "Designation", "Join Date",
	"Status", "Address", "Days Present", "Total Leaves", "Remaining Leaves",
}

var attendanceHeaders = []interface{}{
	"Date", "Employee", "Department", "Time In", "Time Out", "Break", "Work Hours", "Status",
}

// WriteEmployeesExcel writes the employee directory as a single sheet. The
// column layout is the one ReadEmployeesExcel accepts.
func WriteEmployeesExcel(w io.Writer, employees []entity.Employee) error {
	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []interface{}{
			e.Name, e.Email, e.Phone, e.Department, e.Designation, e.JoinDate.String(),
			e.Status, e.Address, e.DaysPresent, e.TotalLeaves, e.RemainingLeaves,
		})
	}

	return writeSheet(w, EmployeeSheet, employeeHeaders, rows)
}

// WriteAttendanceExcel writes attendance records with their computed work
// hours, in the order given.
func WriteAttendanceExcel(w io.Writer, list []entity.Attendance) error {
	rows := make([][]interface{}, 0, len(list))
	for _, a := range list {
		rows = append(rows, []interface{}{
			a.Date.String(), a.EmployeeName, a.Department, a.TimeIn, a.TimeOut, a.BreakTime,
			report.WorkHours(a.TimeIn, a.TimeOut, a.BreakTime), a.Status,
		})
	}

	return writeSheet(w, AttendanceSheet, attendanceHeaders, rows)
}

func writeSheet(w io.Writer, sheet string, headers []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Println("excel close error:", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "renaming sheet")
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.Wrap(err, "writing headers")
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return errors.Wrapf(err, "writing row %d", i+2)
		}
	}

	return f.Write(w)
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9()+\- ]+$`)
)

// ReadEmployeesExcel parses an employee sheet in the layout written by
// WriteEmployeesExcel. Rows that are incomplete, malformed or repeat an email
// already seen (in the file or in existingEmails) are skipped and reported by
// their 1-based row number. Within the file the first row with an email wins;
// each rejected row is reported once.
func ReadEmployeesExcel(r io.Reader, existingEmails map[string]struct{}) ([]entity.Employee, []int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(EmployeeSheet)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading sheet %q", EmployeeSheet)
	}

	var (
		employees      []entity.Employee
		incompleteRows []int
	)
	localEmails := make(map[string]struct{})

	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		if len(row) < 5 {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		cell := func(n int) string {
			if n >= len(row) {
				return ""
			}
			return norm.NFC.String(strings.TrimSpace(row[n]))
		}

		e := entity.Employee{
			Name:        cell(0),
			Email:       strings.ToLower(cell(1)),
			Phone:       cell(2),
			Department:  cell(3),
			Designation: cell(4),
			Status:      cell(6),
			Address:     cell(7),
		}

		if e.Name == "" || e.Email == "" || e.Phone == "" || e.Designation == "" {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}
		if !emailRegex.MatchString(e.Email) || !phoneRegex.MatchString(e.Phone) {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}
		if _, exists := existingEmails[e.Email]; exists {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}
		if _, exists := localEmails[e.Email]; exists {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		if s := cell(5); s != "" {
			d, err := date.ParseDate(s)
			if err != nil {
				incompleteRows = append(incompleteRows, i+1)
				continue
			}
			e.JoinDate = d
		} else {
			e.JoinDate = date.Date{Time: time.Now().UTC().Truncate(24 * time.Hour)}
		}
		if e.Status == "" {
			e.Status = entity.EmployeeStatusActive
		}

		counts := []*int{&e.DaysPresent, &e.TotalLeaves, &e.RemainingLeaves}
		bad := false
		for n, dst := range counts {
			s := cell(8 + n)
			if s == "" {
				continue
			}
			v, err := strconv.Atoi(s)
			if err != nil || v < 0 {
				bad = true
				break
			}
			*dst = v
		}
		if bad || e.RemainingLeaves > e.TotalLeaves {
			incompleteRows = append(incompleteRows, i+1)
			continue
		}

		localEmails[e.Email] = struct{}{}
		employees = append(employees, e)
	}

	return employees, incompleteRows, nil
}
