package report

import (
	"math"
	"time"

	"attendance/dashboard/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

// Bucket is one slice of a distribution chart.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StatusDistribution counts records per status. Present, Late and Absent are
// always listed first, even at zero; any other label follows in the order it
// was first seen. The values add up to len(list).
func StatusDistribution(list []entity.Attendance) []Bucket {
	buckets := make([]Bucket, 0, len(entity.AttendanceStatuses))
	pos := make(map[string]int, len(entity.AttendanceStatuses))
	for _, s := range entity.AttendanceStatuses {
		pos[s] = len(buckets)
		buckets = append(buckets, Bucket{Name: s})
	}

	return tally(buckets, pos, list, func(a entity.Attendance) string { return a.Status })
}

// DepartmentDistribution counts records per snapshotted department in the
// order departments first appear.
func DepartmentDistribution(list []entity.Attendance) []Bucket {
	return tally(nil, map[string]int{}, list, func(a entity.Attendance) string { return a.Department })
}

func tally(buckets []Bucket, pos map[string]int, list []entity.Attendance, key func(entity.Attendance) string) []Bucket {
	for _, a := range list {
		k := key(a)
		i, ok := pos[k]
		if !ok {
			i = len(buckets)
			pos[k] = i
			buckets = append(buckets, Bucket{Name: k})
		}
		buckets[i].Value++
	}
	if buckets == nil {
		buckets = []Bucket{}
	}
	return buckets
}

// TopDepartment returns the bucket with the highest count. The earliest one
// wins a tie; ok is false for an empty distribution.
func TopDepartment(buckets []Bucket) (top Bucket, ok bool) {
	for _, b := range buckets {
		if !ok || b.Value > top.Value {
			top, ok = b, true
		}
	}
	return top, ok
}

// Summary is the attendance picture for a single day.
type Summary struct {
	Date    string `json:"date"`
	Total   int    `json:"total_employees"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
	// Rate is the share of employees that showed up, present or late, as a
	// whole percentage.
	Rate int `json:"attendance_rate"`
}

func DailySummary(list []entity.Attendance, employees int, day time.Time) Summary {
	key := dayKey(date.Date{Time: day})
	s := Summary{Date: key, Total: employees}

	for _, a := range list {
		if dayKey(a.Date) != key {
			continue
		}
		switch a.Status {
		case entity.AttendancePresent:
			s.Present++
		case entity.AttendanceLate:
			s.Late++
		case entity.AttendanceAbsent:
			s.Absent++
		}
	}

	if employees > 0 {
		s.Rate = int(math.Round(float64(s.Present+s.Late) / float64(employees) * 100))
	}

	return s
}

// Range is the window of a dashboard trend chart.
type Range string

const (
	RangeWeek    Range = "week"
	RangeMonth   Range = "month"
	RangeQuarter Range = "quarter"
)

var ErrUnknownRange = errors.New("unknown range")

// ParseRange accepts week, month or quarter. An empty value means week.
func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case "":
		return RangeWeek, nil
	case RangeWeek, RangeMonth, RangeQuarter:
		return r, nil
	}
	return "", errors.Wrapf(ErrUnknownRange, "%q", s)
}

func (r Range) Days() int {
	switch r {
	case RangeMonth:
		return 30
	case RangeQuarter:
		return 90
	}
	return 7
}

type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

// Trend returns one point per day of the range ending at today, oldest first.
func Trend(list []entity.Attendance, today time.Time, r Range) []TrendPoint {
	n := r.Days()
	points := make([]TrendPoint, n)
	pos := make(map[string]int, n)

	for i := 0; i < n; i++ {
		day := today.AddDate(0, 0, i-(n-1))
		points[i].Date = day.Format("2006-01-02")
		pos[points[i].Date] = i
	}

	for _, a := range list {
		i, ok := pos[dayKey(a.Date)]
		if !ok {
			continue
		}
		switch a.Status {
		case entity.AttendancePresent:
			points[i].Present++
		case entity.AttendanceLate:
			points[i].Late++
		case entity.AttendanceAbsent:
			points[i].Absent++
		}
	}

	return points
}

type Organization struct {
	Departments  int `json:"departments"`
	Employees    int `json:"employees"`
	Designations int `json:"designations"`
	Active       int `json:"active_employees"`
	Inactive     int `json:"inactive_employees"`
}

func OrganizationStats(departments []entity.Department, employees []entity.Employee, designations []entity.Designation) Organization {
	o := Organization{
		Departments:  len(departments),
		Employees:    len(employees),
		Designations: len(designations),
	}
	for _, e := range employees {
		if e.Status == entity.EmployeeStatusActive {
			o.Active++
		}
	}
	o.Inactive = o.Employees - o.Active

	return o
}

// Statistics bundles the distributions shown next to an attendance report.
type Statistics struct {
	Total       int      `json:"total"`
	Status      []Bucket `json:"status"`
	Departments []Bucket `json:"departments"`
	Top         *Bucket  `json:"top_department,omitempty"`
	AvgHours    float64  `json:"average_work_hours"`
}

func Summarize(list []entity.Attendance) Statistics {
	st := Statistics{
		Total:       len(list),
		Status:      StatusDistribution(list),
		Departments: DepartmentDistribution(list),
		AvgHours:    AverageWorkHours(list),
	}
	if top, ok := TopDepartment(st.Departments); ok {
		st.Top = &top
	}
	return st
}

// Dashboard is the payload of the landing page.
type Dashboard struct {
	Employees int          `json:"total_employees"`
	Today     Summary      `json:"today"`
	AvgHours  float64      `json:"average_work_hours"`
	Range     Range        `json:"range"`
	Trend     []TrendPoint `json:"trend"`
}

func BuildDashboard(list []entity.Attendance, employees int, today time.Time, r Range) Dashboard {
	return Dashboard{
		Employees: employees,
		Today:     DailySummary(list, employees, today),
		AvgHours:  AverageWorkHours(list),
		Range:     r,
		Trend:     Trend(list, today, r),
	}
}
