// Package report derives listings and statistics from store snapshots. It
// never mutates what it is given.
package report

import (
	"sort"
	"strings"

	"attendance/dashboard/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
	"golang.org/x/text/unicode/norm"
)

type EmployeeFilter struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Status     string `form:"status"`
}

type DesignationFilter struct {
	Search     string `form:"search"`
	Department string `form:"department"`
}

// AttendanceFilter narrows attendance records. Zero values match everything.
// StartDate and EndDate are inclusive.
type AttendanceFilter struct {
	StartDate  date.Date
	EndDate    date.Date
	Date       date.Date
	Department string
	Status     string
	Search     string
}

// fold prepares s for case-insensitive substring matching.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

func contains(haystack, needle string) bool {
	return strings.Contains(fold(haystack), needle)
}

func FilterEmployees(list []entity.Employee, f EmployeeFilter) []entity.Employee {
	q := fold(f.Search)

	out := make([]entity.Employee, 0, len(list))
	for _, e := range list {
		if q != "" && !contains(e.Name, q) && !contains(e.Email, q) {
			continue
		}
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		out = append(out, e)
	}

	return out
}

func FilterDesignations(list []entity.Designation, f DesignationFilter) []entity.Designation {
	q := fold(f.Search)

	out := make([]entity.Designation, 0, len(list))
	for _, d := range list {
		if q != "" && !contains(d.Name, q) && !contains(d.Description, q) {
			continue
		}
		if f.Department != "" && d.Department != f.Department {
			continue
		}
		out = append(out, d)
	}

	return out
}

func FilterStatuses(list []entity.Status, search string) []entity.Status {
	q := fold(search)

	out := make([]entity.Status, 0, len(list))
	for _, s := range list {
		if q != "" && !contains(s.Name, q) && !contains(s.Description, q) {
			continue
		}
		out = append(out, s)
	}

	return out
}

// FilterAttendances returns the matching records sorted by date, newest
// first. Records sharing a date keep their relative order.
func FilterAttendances(list []entity.Attendance, f AttendanceFilter) []entity.Attendance {
	q := fold(f.Search)
	start, end, exact := dayKey(f.StartDate), dayKey(f.EndDate), dayKey(f.Date)

	out := make([]entity.Attendance, 0, len(list))
	for _, a := range list {
		day := dayKey(a.Date)
		switch {
		case start != "" && day < start:
			continue
		case end != "" && day > end:
			continue
		case exact != "" && day != exact:
			continue
		case f.Department != "" && a.Department != f.Department:
			continue
		case f.Status != "" && a.Status != f.Status:
			continue
		case q != "" && !contains(a.EmployeeName, q):
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return dayKey(out[i].Date) > dayKey(out[j].Date)
	})

	return out
}

// dayKey renders d as YYYY-MM-DD, which sorts chronologically. The zero
// date yields "".
func dayKey(d date.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}
