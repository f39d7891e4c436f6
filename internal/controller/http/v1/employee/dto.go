package employee

import (
	"attendance/dashboard/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

type CreateRequest struct {
	Name            string    `json:"name" validate:"required"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           string    `json:"phone" validate:"required"`
	Department      string    `json:"department"`
	Designation     string    `json:"designation" validate:"required"`
	JoinDate        date.Date `json:"join_date"`
	Status          string    `json:"status"`
	Photo           string    `json:"photo" validate:"required"`
	Address         string    `json:"address"`
	DaysPresent     int       `json:"days_present" validate:"gte=0"`
	TotalLeaves     int       `json:"total_leaves" validate:"gte=0"`
	RemainingLeaves int       `json:"remaining_leaves" validate:"gte=0,ltefield=TotalLeaves"`
}

func (r CreateRequest) entity() entity.Employee {
	return entity.Employee{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Department:      r.Department,
		Designation:     r.Designation,
		JoinDate:        r.JoinDate,
		Status:          r.Status,
		Photo:           r.Photo,
		Address:         r.Address,
		DaysPresent:     r.DaysPresent,
		TotalLeaves:     r.TotalLeaves,
		RemainingLeaves: r.RemainingLeaves,
	}
}

// Profile is an employee together with its attendance and leave history.
type Profile struct {
	entity.Employee
	Attendances  []entity.Attendance  `json:"attendances"`
	LeaveRecords []entity.LeaveRecord `json:"leave_records"`
}

type ImportResponse struct {
	Created        []entity.Employee `json:"created"`
	IncompleteRows []int             `json:"incomplete_rows"`
}
