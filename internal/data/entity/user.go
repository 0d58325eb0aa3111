package entity

import (
	"time"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAgent    UserRole = "agent"
	RoleManager  UserRole = "manager"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleManager, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Username            string     `db:"username"`
	Email               string     `db:"email"`
	PasswordHash        string     `db:"password"`
	Phone               *string    `db:"phone"`
	Address             *string    `db:"address"`
	Role                UserRole   `db:"role"`
	IsActive            bool       `db:"is_active"`
	IsEmailVerified     bool       `db:"is_email_verified"`
	IsPhoneVerified     bool       `db:"is_phone_verified"`
	MFAEnabled          bool       `db:"mfa_enabled"`
	FailedLoginAttempts int        `db:"failed_login_attempts"`
	LockoutEnd          *time.Time `db:"lockout_end"`
	LastLogin           *time.Time `db:"last_login"`
	PasswordChangedAt   time.Time  `db:"password_changed_at"`
}

// Locked is derived, never stored: a user is locked while a lockout
// window is open.
func (u *User) Locked(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}
