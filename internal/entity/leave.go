package entity

import (
	"github.com/Azure/go-autorest/autorest/date"
)

const (
	LeaveApproved = "Approved"
	LeavePending  = "Pending"
	LeaveRejected = "Rejected"
)

type LeaveRecord struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	StartDate  date.Date `json:"start_date"`
	EndDate    date.Date `json:"end_date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
}
