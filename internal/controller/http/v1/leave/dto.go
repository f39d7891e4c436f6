package leave

import (
	"github.com/Azure/go-autorest/autorest/date"
)

type CreateRequest struct {
	EmployeeID string    `json:"employee_id" validate:"required"`
	StartDate  date.Date `json:"start_date"`
	EndDate    date.Date `json:"end_date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status" validate:"omitempty,oneof=Approved Pending Rejected"`
	Type       string    `json:"type" validate:"required"`
}
