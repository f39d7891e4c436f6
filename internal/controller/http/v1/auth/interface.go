package auth

import (
	"attendance/dashboard/internal/entity"
)

type Users interface {
	Login(username, password string) (entity.User, bool)
	ByID(id string) (entity.User, bool)
	ResetPassword(email string) bool
}
