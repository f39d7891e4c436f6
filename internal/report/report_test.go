package report

import (
	"reflect"
	"testing"
	"time"

	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

var today = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func day(s string) date.Date {
	d, err := date.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWorkHours(t *testing.T) {
	tt := []struct {
		in, out, brk string
		want         float64
	}{
		{"09:00", "17:30", "00:30", 8},
		{"08:15", "17:00", "00:45", 8},
		{"22:00", "06:00", "00:30", 7.5},
		{"09:00", "09:10", "00:30", 0},
		{"", "17:00", "00:30", 0},
		{"09:00", "", "00:30", 0},
		{"09:00", "17:20", "bad", 8.3},
	}

	for _, tc := range tt {
		if got := WorkHours(tc.in, tc.out, tc.brk); got != tc.want {
			t.Fatalf("WorkHours(%q, %q, %q) = %v, want %v", tc.in, tc.out, tc.brk, got, tc.want)
		}
	}
}

func TestAverageWorkHours(t *testing.T) {
	list := []entity.Attendance{
		{TimeIn: "08:00", TimeOut: "17:00"},
		{TimeIn: "09:00", TimeOut: "17:00"},
		{Status: entity.AttendanceAbsent},
	}
	if got := AverageWorkHours(list); got != 8.5 {
		t.Fatalf("average = %v, want 8.5", got)
	}
	if got := AverageWorkHours(nil); got != 0 {
		t.Fatalf("average of nothing = %v", got)
	}
}

func TestStatusDistributionOverSeed(t *testing.T) {
	seed := store.DefaultSeed(today)

	buckets := StatusDistribution(seed.Attendances)
	if len(buckets) != 3 {
		t.Fatalf("buckets = %+v", buckets)
	}

	sum := 0
	for i, b := range buckets {
		if b.Name != entity.AttendanceStatuses[i] {
			t.Fatalf("bucket %d is %q", i, b.Name)
		}
		sum += b.Value
	}
	if sum != 30 {
		t.Fatalf("counts sum to %d, want 30", sum)
	}
}

func TestStatusDistributionKeepsUnknownLabels(t *testing.T) {
	list := []entity.Attendance{
		{Status: "Remote"},
		{Status: entity.AttendanceLate},
		{Status: "Remote"},
		{Status: "Holiday"},
	}

	want := []Bucket{
		{Name: "Present", Value: 0},
		{Name: "Late", Value: 1},
		{Name: "Absent", Value: 0},
		{Name: "Remote", Value: 2},
		{Name: "Holiday", Value: 1},
	}
	if got := StatusDistribution(list); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDepartmentDistributionAndTop(t *testing.T) {
	list := []entity.Attendance{
		{Department: "Sales"},
		{Department: "Finance"},
		{Department: "Finance"},
		{Department: "Sales"},
		{Department: "Operations"},
	}

	got := DepartmentDistribution(list)
	want := []Bucket{{"Sales", 2}, {"Finance", 2}, {"Operations", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	top, ok := TopDepartment(got)
	if !ok || top.Name != "Sales" {
		t.Fatalf("top = %+v %v, want Sales", top, ok)
	}

	if _, ok := TopDepartment(DepartmentDistribution(nil)); ok {
		t.Fatalf("empty distribution has a top department")
	}
}

func TestFilterAttendances(t *testing.T) {
	list := []entity.Attendance{
		{ID: "a", EmployeeName: "John Doe", Department: "Engineering", Date: day("2024-03-01"), Status: "Present"},
		{ID: "b", EmployeeName: "Jane Smith", Department: "Marketing", Date: day("2024-03-03"), Status: "Late"},
		{ID: "c", EmployeeName: "John Doe", Department: "Engineering", Date: day("2024-03-03"), Status: "Absent"},
		{ID: "d", EmployeeName: "Emily Davis", Department: "Human Resources", Date: day("2024-03-05"), Status: "Present"},
	}

	ids := func(l []entity.Attendance) []string {
		out := []string{}
		for _, a := range l {
			out = append(out, a.ID)
		}
		return out
	}

	tt := []struct {
		name string
		f    AttendanceFilter
		want []string
	}{
		{"all sorted newest first", AttendanceFilter{}, []string{"d", "b", "c", "a"}},
		{"inclusive range", AttendanceFilter{StartDate: day("2024-03-01"), EndDate: day("2024-03-03")}, []string{"b", "c", "a"}},
		{"exact date", AttendanceFilter{Date: day("2024-03-03")}, []string{"b", "c"}},
		{"department", AttendanceFilter{Department: "Engineering"}, []string{"c", "a"}},
		{"status", AttendanceFilter{Status: "Present"}, []string{"d", "a"}},
		{"name search", AttendanceFilter{Search: "  JOHN "}, []string{"c", "a"}},
	}

	for _, tc := range tt {
		if got := ids(FilterAttendances(list, tc.f)); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	if list[0].ID != "a" {
		t.Fatalf("input slice was reordered")
	}
}

func TestFilterEmployees(t *testing.T) {
	emps := store.DefaultSeed(today).Employees

	got := FilterEmployees(emps, EmployeeFilter{Search: "JANE@"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("email search = %+v", got)
	}

	got = FilterEmployees(emps, EmployeeFilter{Department: "Finance", Status: "Active"})
	if len(got) != 1 || got[0].Name != "Michael Johnson" {
		t.Fatalf("department filter = %+v", got)
	}

	if got = FilterEmployees(emps, EmployeeFilter{Status: "Terminated"}); len(got) != 0 {
		t.Fatalf("status filter = %+v", got)
	}
}

func TestFilterDesignationsAndStatuses(t *testing.T) {
	seed := store.DefaultSeed(today)

	des := FilterDesignations(seed.Designations, DesignationFilter{Search: "manage"})
	if len(des) != 2 {
		t.Fatalf("designation search = %+v", des)
	}
	des = FilterDesignations(seed.Designations, DesignationFilter{Search: "manage", Department: "Marketing"})
	if len(des) != 1 || des[0].Name != "Marketing Manager" {
		t.Fatalf("designation department filter = %+v", des)
	}

	st := FilterStatuses(seed.Statuses, "temporarily")
	if len(st) != 2 {
		t.Fatalf("status search = %+v", st)
	}
}

func TestDailySummary(t *testing.T) {
	list := []entity.Attendance{
		{Date: day("2024-03-15"), Status: "Present"},
		{Date: day("2024-03-15"), Status: "Late"},
		{Date: day("2024-03-15"), Status: "Absent"},
		{Date: day("2024-03-14"), Status: "Present"},
	}

	s := DailySummary(list, 3, today)
	if s.Present != 1 || s.Late != 1 || s.Absent != 1 || s.Rate != 67 || s.Date != "2024-03-15" {
		t.Fatalf("summary = %+v", s)
	}

	if s = DailySummary(list, 0, today); s.Rate != 0 {
		t.Fatalf("rate without employees = %d", s.Rate)
	}
}

func TestTrend(t *testing.T) {
	seed := store.DefaultSeed(today)

	for _, r := range []Range{RangeWeek, RangeMonth, RangeQuarter} {
		points := Trend(seed.Attendances, today, r)
		if len(points) != r.Days() {
			t.Fatalf("%s: %d points", r, len(points))
		}
		if points[len(points)-1].Date != "2024-03-15" {
			t.Fatalf("%s: last point %s", r, points[len(points)-1].Date)
		}
		if points[0].Date >= points[1].Date {
			t.Fatalf("%s: not oldest first", r)
		}
	}

	// the seed holds one record per day for the last 30 days
	total := 0
	for _, p := range Trend(seed.Attendances, today, RangeQuarter) {
		total += p.Present + p.Late + p.Absent
	}
	if total != 30 {
		t.Fatalf("quarter trend covers %d records, want 30", total)
	}
}

func TestParseRange(t *testing.T) {
	if r, err := ParseRange(""); err != nil || r != RangeWeek {
		t.Fatalf("empty range = %q %v", r, err)
	}
	if r, err := ParseRange("quarter"); err != nil || r != RangeQuarter {
		t.Fatalf("quarter = %q %v", r, err)
	}
	if _, err := ParseRange("year"); !errors.Is(err, ErrUnknownRange) {
		t.Fatalf("year: err = %v", err)
	}
}

func TestOrganizationStats(t *testing.T) {
	seed := store.DefaultSeed(today)
	seed.Employees[3].Status = "On Leave"

	o := OrganizationStats(seed.Departments, seed.Employees, seed.Designations)
	want := Organization{Departments: 7, Employees: 4, Designations: 7, Active: 3, Inactive: 1}
	if o != want {
		t.Fatalf("got %+v, want %+v", o, want)
	}
}
