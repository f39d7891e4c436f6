package store

import (
	"fmt"
	"math/rand"
	"time"

	"attendance/dashboard/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

// Seed is the initial content of a Store.
type Seed struct {
	Employees    []entity.Employee    `json:"employees"`
	Attendances  []entity.Attendance  `json:"attendances"`
	LeaveRecords []entity.LeaveRecord `json:"leave_records"`
	Designations []entity.Designation `json:"designations"`
	Statuses     []entity.Status      `json:"statuses"`
	Departments  []entity.Department  `json:"departments"`
}

// seedAttendanceDays is how many daily records the default seed generates.
const seedAttendanceDays = 30

// DefaultSeed returns the demo data the dashboard starts with. Attendance is
// generated for the 30 days ending at today; the same today always yields the
// same records.
func DefaultSeed(today time.Time) Seed {
	employees := defaultEmployees()

	return Seed{
		Employees:    employees,
		Attendances:  seedAttendances(employees, today),
		LeaveRecords: defaultLeaveRecords(),
		Designations: defaultDesignations(),
		Statuses:     defaultStatuses(),
		Departments:  DefaultDepartments(),
	}
}

// DefaultDepartments is the fixed department reference list.
func DefaultDepartments() []entity.Department {
	return []entity.Department{
		"Engineering",
		"Marketing",
		"Finance",
		"Human Resources",
		"Operations",
		"Sales",
		"Customer Support",
	}
}

func defaultEmployees() []entity.Employee {
	return []entity.Employee{
		{
			ID:              "1",
			Name:            "John Doe",
			Email:           "john@example.com",
			Phone:           "(555) 123-4567",
			Department:      "Engineering",
			Designation:     "Senior Developer",
			JoinDate:        mustDate("2022-02-15"),
			Status:          "Active",
			Photo:           "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
			Address:         "123 Main St, Anytown, CA 12345",
			DaysPresent:     220,
			TotalLeaves:     24,
			RemainingLeaves: 14,
		},
		{
			ID:              "2",
			Name:            "Jane Smith",
			Email:           "jane@example.com",
			Phone:           "(555) 987-6543",
			Department:      "Marketing",
			Designation:     "Marketing Manager",
			JoinDate:        mustDate("2021-08-10"),
			Status:          "Active",
			Photo:           "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150",
			Address:         "456 Oak Ave, Somewhere, NY 54321",
			DaysPresent:     210,
			TotalLeaves:     24,
			RemainingLeaves: 8,
		},
		{
			ID:              "3",
			Name:            "Michael Johnson",
			Email:           "michael@example.com",
			Phone:           "(555) 456-7890",
			Department:      "Finance",
			Designation:     "Financial Analyst",
			JoinDate:        mustDate("2022-05-20"),
			Status:          "Active",
			Photo:           "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
			Address:         "789 Pine St, Elsewhere, TX 67890",
			DaysPresent:     195,
			TotalLeaves:     24,
			RemainingLeaves: 12,
		},
		{
			ID:              "4",
			Name:            "Emily Davis",
			Email:           "emily@example.com",
			Phone:           "(555) 234-5678",
			Department:      "Human Resources",
			Designation:     "HR Specialist",
			JoinDate:        mustDate("2021-11-15"),
			Status:          "Active",
			Photo:           "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150",
			Address:         "101 Maple Dr, Anywhere, FL 13579",
			DaysPresent:     200,
			TotalLeaves:     24,
			RemainingLeaves: 10,
		},
	}
}

// seedAttendances spreads one record per day over the employees in turn,
// newest first. Absent days carry no times and a zero break.
func seedAttendances(employees []entity.Employee, today time.Time) []entity.Attendance {
	if len(employees) == 0 {
		return []entity.Attendance{}
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	rnd := rand.New(rand.NewSource(day.Unix()))

	list := make([]entity.Attendance, 0, seedAttendanceDays)
	for i := 0; i < seedAttendanceDays; i++ {
		emp := employees[i%len(employees)]
		status := entity.AttendanceStatuses[rnd.Intn(len(entity.AttendanceStatuses))]

		att := entity.Attendance{
			ID:           fmt.Sprintf("%s-%d", PrefixAttendance, i+1),
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Department:   emp.Department,
			Date:         date.Date{Time: day.AddDate(0, 0, -i)},
			BreakTime:    "00:00",
			Status:       status,
		}

		if status != entity.AttendanceAbsent {
			hourIn := 8
			if status == entity.AttendanceLate {
				hourIn = 9
			}
			att.TimeIn = fmt.Sprintf("%02d:%02d", hourIn, rnd.Intn(60))
			att.TimeOut = fmt.Sprintf("%02d:%02d", 17+rnd.Intn(2), rnd.Intn(60))
			att.BreakTime = fmt.Sprintf("00:%02d", 30+rnd.Intn(30))
		}

		list = append(list, att)
	}

	return list
}

func defaultLeaveRecords() []entity.LeaveRecord {
	return []entity.LeaveRecord{
		{
			ID:         "leave-1",
			EmployeeID: "1",
			StartDate:  mustDate("2023-04-10"),
			EndDate:    mustDate("2023-04-12"),
			Reason:     "Family vacation",
			Status:     entity.LeaveApproved,
			Type:       "Annual Leave",
		},
		{
			ID:         "leave-2",
			EmployeeID: "2",
			StartDate:  mustDate("2023-05-05"),
			EndDate:    mustDate("2023-05-05"),
			Reason:     "Medical appointment",
			Status:     entity.LeaveApproved,
			Type:       "Sick Leave",
		},
		{
			ID:         "leave-3",
			EmployeeID: "1",
			StartDate:  mustDate("2023-06-20"),
			EndDate:    mustDate("2023-06-22"),
			Reason:     "Personal matters",
			Status:     entity.LeavePending,
			Type:       "Personal Leave",
		},
	}
}

func defaultDesignations() []entity.Designation {
	return []entity.Designation{
		{ID: "des-1", Name: "Junior Developer", Department: "Engineering", Description: "Entry-level software developer"},
		{ID: "des-2", Name: "Senior Developer", Department: "Engineering", Description: "Experienced software developer"},
		{ID: "des-3", Name: "Project Manager", Department: "Engineering", Description: "Manages software development projects"},
		{ID: "des-4", Name: "Marketing Specialist", Department: "Marketing", Description: "Specializes in marketing campaigns"},
		{ID: "des-5", Name: "Marketing Manager", Department: "Marketing", Description: "Manages marketing team and strategies"},
		{ID: "des-6", Name: "Financial Analyst", Department: "Finance", Description: "Analyzes financial data and reports"},
		{ID: "des-7", Name: "HR Specialist", Department: "Human Resources", Description: "Handles employee relations and recruitment"},
	}
}

func defaultStatuses() []entity.Status {
	return []entity.Status{
		{ID: "status-1", Name: "Active", Description: "Currently employed", Color: "#22c55e"},
		{ID: "status-2", Name: "On Leave", Description: "Temporarily on leave", Color: "#f59e0b"},
		{ID: "status-3", Name: "Terminated", Description: "No longer employed", Color: "#ef4444"},
		{ID: "status-4", Name: "Suspended", Description: "Temporarily suspended", Color: "#6366f1"},
	}
}

func mustDate(s string) date.Date {
	d, err := date.ParseDate(s)
	if err != nil {
		panic(fmt.Sprintf("seed date %q: %v", s, err))
	}
	return d
}
