package entity

// User is a dashboard operator known to the mock sign-in. It is unrelated to
// Employee.
type User struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Avatar   string  `json:"avatar"`
	Password *string `json:"-"`
}
