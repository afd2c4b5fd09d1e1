package domain

import (
	"fmt"
	"time"
)

// UserType is a closed set; persisted as an integer code.
type UserType int

const (
	TypeAdmin     UserType = 1
	TypeModerator UserType = 2
	TypeNormal    UserType = 3
)

// UserTypeFromInt converts a stored code into a UserType.
// Unknown codes are an error, never silently mapped.
func UserTypeFromInt(code int) (UserType, error) {
	switch t := UserType(code); t {
	case TypeAdmin, TypeModerator, TypeNormal:
		return t, nil
	}
	return 0, fmt.Errorf("invalid user type code: %d", code)
}

func (t UserType) String() string {
	switch t {
	case TypeAdmin:
		return "admin"
	case TypeModerator:
		return "moderator"
	case TypeNormal:
		return "normal"
	}
	return fmt.Sprintf("UserType(%d)", int(t))
}

// UserStatus is a closed set; persisted as an integer code.
type UserStatus int

const (
	StatusNormal    UserStatus = 1
	StatusSuspended UserStatus = 2
	StatusBanned    UserStatus = 3
	StatusRemoved   UserStatus = 4 // user deleted their account
)

func UserStatusFromInt(code int) (UserStatus, error) {
	switch s := UserStatus(code); s {
	case StatusNormal, StatusSuspended, StatusBanned, StatusRemoved:
		return s, nil
	}
	return 0, fmt.Errorf("invalid user status code: %d", code)
}

func (s UserStatus) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusSuspended:
		return "suspended"
	case StatusBanned:
		return "banned"
	case StatusRemoved:
		return "removed"
	}
	return fmt.Sprintf("UserStatus(%d)", int(s))
}

// Blocked reports whether the status invalidates every outstanding
// token for the user.
func (s UserStatus) Blocked() bool {
	return s == StatusSuspended || s == StatusBanned || s == StatusRemoved
}

type User struct {
	Id           string     `json:"id"`
	RegisteredAt time.Time  `json:"registered_at"`
	PasswordHash string     `json:"-"`
	Type         UserType   `json:"user_type"`
	Status       UserStatus `json:"user_status"`
}
