package service

import (
	"fmt"

	"attendance/dashboard/internal/entity"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const badgeSize = 256

// BadgeContent is the text encoded in an employee's badge.
func BadgeContent(e entity.Employee) string {
	return fmt.Sprintf("employee:%s;name:%s;department:%s", e.ID, e.Name, e.Department)
}

// Badge returns a PNG QR code identifying the employee.
func Badge(e entity.Employee) ([]byte, error) {
	png, err := qrcode.Encode(BadgeContent(e), qrcode.Medium, badgeSize)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding badge for %s", e.ID)
	}
	return png, nil
}
