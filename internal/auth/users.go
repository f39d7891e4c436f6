package auth

import (
	"strings"

	"attendance/dashboard/internal/entity"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Directory is the fixed list of dashboard operators.
type Directory struct {
	users []entity.User
}

type Account struct {
	entity.User
	PlainPassword string
}

// DefaultAccounts are the two demo operators.
func DefaultAccounts() []Account {
	return []Account{
		{
			User: entity.User{
				ID:       "1",
				Username: "admin",
				Email:    "admin@example.com",
				Role:     RoleAdmin,
				Avatar:   "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150",
			},
			PlainPassword: "admin123",
		},
		{
			User: entity.User{
				ID:       "2",
				Username: "user",
				Email:    "user@example.com",
				Role:     RoleUser,
				Avatar:   "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150",
			},
			PlainPassword: "user123",
		},
	}
}

// NewDirectory hashes the account passwords with the given bcrypt cost.
func NewDirectory(accounts []Account, cost int) (*Directory, error) {
	d := &Directory{users: make([]entity.User, 0, len(accounts))}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.PlainPassword), cost)
		if err != nil {
			return nil, errors.Wrapf(err, "hashing password of %s", a.Username)
		}
		u := a.User
		h := string(hash)
		u.Password = &h
		d.users = append(d.users, u)
	}

	return d, nil
}

// Login checks the credentials and returns the user without its password
// hash.
func (d *Directory) Login(username, password string) (entity.User, bool) {
	for _, u := range d.users {
		if u.Username != username || u.Password == nil {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(password)); err != nil {
			return entity.User{}, false
		}
		u.Password = nil
		return u, true
	}
	return entity.User{}, false
}

func (d *Directory) ByID(id string) (entity.User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			u.Password = nil
			return u, true
		}
	}
	return entity.User{}, false
}

// ResetPassword reports whether a user with this email exists. No mail is
// sent.
func (d *Directory) ResetPassword(email string) bool {
	email = strings.TrimSpace(email)
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
