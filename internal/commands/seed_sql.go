package commands

import (
	"database/sql"
	"fmt"
	"io"
	"log"

	"attendance/dashboard/internal/store"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DefaultDSN only selects the dialect; SeedSQL never opens a connection.
const DefaultDSN = "postgres://postgres:@localhost:5432/dashboard?sslmode=disable"

type Scheme struct {
	Index       int
	Description string
	Query       string
}

type employeeRow struct {
	bun.BaseModel `bun:"table:employees"`

	ID              string `bun:"id,pk"`
	Name            string `bun:"name,notnull"`
	Email           string `bun:"email,notnull"`
	Phone           string `bun:"phone"`
	Department      string `bun:"department"`
	Designation     string `bun:"designation"`
	JoinDate        string `bun:"join_date,type:date,nullzero"`
	Status          string `bun:"status"`
	Photo           string `bun:"photo"`
	Address         string `bun:"address"`
	DaysPresent     int    `bun:"days_present,notnull"`
	TotalLeaves     int    `bun:"total_leaves,notnull"`
	RemainingLeaves int    `bun:"remaining_leaves,notnull"`
}

type attendanceRow struct {
	bun.BaseModel `bun:"table:attendances"`

	ID           string `bun:"id,pk"`
	EmployeeID   string `bun:"employee_id,notnull"`
	EmployeeName string `bun:"employee_name"`
	Department   string `bun:"department"`
	Date         string `bun:"date,type:date,nullzero"`
	TimeIn       string `bun:"time_in,nullzero"`
	TimeOut      string `bun:"time_out,nullzero"`
	BreakTime    string `bun:"break_time"`
	Status       string `bun:"status,notnull"`
}

type leaveRecordRow struct {
	bun.BaseModel `bun:"table:leave_records"`

	ID         string `bun:"id,pk"`
	EmployeeID string `bun:"employee_id,notnull"`
	StartDate  string `bun:"start_date,type:date,nullzero"`
	EndDate    string `bun:"end_date,type:date,nullzero"`
	Reason     string `bun:"reason"`
	Status     string `bun:"status"`
	Type       string `bun:"type"`
}

type designationRow struct {
	bun.BaseModel `bun:"table:designations"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Department  string `bun:"department"`
	Description string `bun:"description"`
}

type statusRow struct {
	bun.BaseModel `bun:"table:statuses"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name,notnull"`
	Description string `bun:"description"`
	Color       string `bun:"color"`
}

type departmentRow struct {
	bun.BaseModel `bun:"table:departments"`

	Name string `bun:"name,pk"`
}

func dateString(d date.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

// SeedSQL renders the contents of seed as a PostgreSQL script: one CREATE
// TABLE per collection followed by its rows. Deleting an employee row
// cascades to its attendance and leave rows, as it does in the store.
func SeedSQL(seed store.Seed) ([]Scheme, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(DefaultDSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer func() {
		if err := db.Close(); err != nil {
			log.Println("seed sql db.Close() error:", err)
		}
	}()

	employees := make([]employeeRow, 0, len(seed.Employees))
	for _, e := range seed.Employees {
		employees = append(employees, employeeRow{
			ID: e.ID, Name: e.Name, Email: e.Email, Phone: e.Phone, Department: e.Department,
			Designation: e.Designation, JoinDate: dateString(e.JoinDate), Status: e.Status,
			Photo: e.Photo, Address: e.Address, DaysPresent: e.DaysPresent, TotalLeaves: e.TotalLeaves,
			RemainingLeaves: e.RemainingLeaves,
		})
	}

	attendances := make([]attendanceRow, 0, len(seed.Attendances))
	for _, a := range seed.Attendances {
		attendances = append(attendances, attendanceRow{
			ID: a.ID, EmployeeID: a.EmployeeID, EmployeeName: a.EmployeeName, Department: a.Department,
			Date: dateString(a.Date), TimeIn: a.TimeIn, TimeOut: a.TimeOut, BreakTime: a.BreakTime,
			Status: a.Status,
		})
	}

	leaves := make([]leaveRecordRow, 0, len(seed.LeaveRecords))
	for _, l := range seed.LeaveRecords {
		leaves = append(leaves, leaveRecordRow{
			ID: l.ID, EmployeeID: l.EmployeeID, StartDate: dateString(l.StartDate),
			EndDate: dateString(l.EndDate), Reason: l.Reason, Status: l.Status, Type: l.Type,
		})
	}

	designations := make([]designationRow, 0, len(seed.Designations))
	for _, d := range seed.Designations {
		designations = append(designations, designationRow{ID: d.ID, Name: d.Name, Department: d.Department, Description: d.Description})
	}

	statuses := make([]statusRow, 0, len(seed.Statuses))
	for _, s := range seed.Statuses {
		statuses = append(statuses, statusRow{ID: s.ID, Name: s.Name, Description: s.Description, Color: s.Color})
	}

	departments := make([]departmentRow, 0, len(seed.Departments))
	for _, d := range seed.Departments {
		departments = append(departments, departmentRow{Name: d})
	}

	cascade := `("employee_id") REFERENCES "employees" ("id") ON DELETE CASCADE`

	var scheme []Scheme
	add := func(desc string, q interface{ String() string }) {
		scheme = append(scheme, Scheme{Index: len(scheme) + 1, Description: desc, Query: q.String()})
	}

	add("Create table: departments", db.NewCreateTable().Model((*departmentRow)(nil)).IfNotExists())
	add("Create table: employees", db.NewCreateTable().Model((*employeeRow)(nil)).IfNotExists())
	add("Create table: attendances", db.NewCreateTable().Model((*attendanceRow)(nil)).IfNotExists().ForeignKey(cascade))
	add("Create table: leave_records", db.NewCreateTable().Model((*leaveRecordRow)(nil)).IfNotExists().ForeignKey(cascade))
	add("Create table: designations", db.NewCreateTable().Model((*designationRow)(nil)).IfNotExists())
	add("Create table: statuses", db.NewCreateTable().Model((*statusRow)(nil)).IfNotExists())

	// bun refuses to render an insert of an empty slice
	if len(departments) > 0 {
		add(fmt.Sprintf("Insert %d departments", len(departments)), db.NewInsert().Model(&departments))
	}
	if len(employees) > 0 {
		add(fmt.Sprintf("Insert %d employees", len(employees)), db.NewInsert().Model(&employees))
	}
	if len(attendances) > 0 {
		add(fmt.Sprintf("Insert %d attendances", len(attendances)), db.NewInsert().Model(&attendances))
	}
	if len(leaves) > 0 {
		add(fmt.Sprintf("Insert %d leave records", len(leaves)), db.NewInsert().Model(&leaves))
	}
	if len(designations) > 0 {
		add(fmt.Sprintf("Insert %d designations", len(designations)), db.NewInsert().Model(&designations))
	}
	if len(statuses) > 0 {
		add(fmt.Sprintf("Insert %d statuses", len(statuses)), db.NewInsert().Model(&statuses))
	}

	return scheme, nil
}

// WriteSeedSQL writes the SeedSQL script for seed to w.
func WriteSeedSQL(w io.Writer, seed store.Seed) (err error) {
	// bun reports malformed models by panicking while rendering
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("rendering seed sql: %v", r)
		}
	}()

	scheme, err := SeedSQL(seed)
	if err != nil {
		return err
	}

	for _, s := range scheme {
		if _, err = fmt.Fprintf(w, "-- %d. %s\n%s;\n\n", s.Index, s.Description, s.Query); err != nil {
			return errors.Wrap(err, "writing seed sql")
		}
	}

	return nil
}
