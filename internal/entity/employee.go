package entity

import (
	"github.com/Azure/go-autorest/autorest/date"
)

// EmployeeStatusActive is the status label counted as active in organization
// statistics. Other labels are free-form and come from the Status collection.
const EmployeeStatusActive = "Active"

type Employee struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Department      string    `json:"department"`
	Designation     string    `json:"designation"`
	JoinDate        date.Date `json:"join_date"`
	Status          string    `json:"status"`
	Photo           string    `json:"photo"`
	Address         string    `json:"address"`
	DaysPresent     int       `json:"days_present"`
	TotalLeaves     int       `json:"total_leaves"`
	RemainingLeaves int       `json:"remaining_leaves"`
}
