package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account row. PasswordHash is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at,omitempty"`
	PasswordHash string `json:"-"`
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
