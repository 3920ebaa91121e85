package entity

import "fmt"

type Role string

const (
	RoleAdmin Role = "Администратор"
	RoleStaff Role = "Сотрудник"
	RoleUser  Role = "Пользователь"
)

// ParseRole accepts the stored value only, roles never come from request bodies.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleStaff, RoleUser:
		return Role(value), nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

type User struct {
	Base
	Username       string `db:"username"`
	HashedPassword string `db:"hashed_password"`
	Phone          string `db:"phone"`
	Role           Role   `db:"role"`
}

// UserPatch carries the fields of a partial update, nil means keep
type UserPatch struct {
	Username       *string
	HashedPassword *string
	Phone          *string
}
