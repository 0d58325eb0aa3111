package response

import (
	"time"

	"rental-admin/internal/data/entity"
)

type UserResponse struct {
	ID                  string          `json:"id"`
	Username            string          `json:"username"`
	Email               string          `json:"email"`
	Phone               *string         `json:"phone,omitempty"`
	Address             *string         `json:"address,omitempty"`
	Role                entity.UserRole `json:"role"`
	IsActive            bool            `json:"is_active"`
	IsEmailVerified     bool            `json:"is_email_verified"`
	IsPhoneVerified     bool            `json:"is_phone_verified"`
	MFAEnabled          bool            `json:"mfa_enabled"`
	FailedLoginAttempts int             `json:"failed_login_attempts"`
	Locked              bool            `json:"locked"`
	LockoutEnd          *time.Time      `json:"lockout_end,omitempty"`
	LastLogin           *time.Time      `json:"last_login,omitempty"`
	PasswordChangedAt   time.Time       `json:"password_changed_at"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// RoleChangeResponse carries the updated user plus any non-blocking
// warning the transition guard raised (admin de-escalation).
type RoleChangeResponse struct {
	User    UserResponse `json:"user"`
	Warning string       `json:"warning,omitempty"`
}

// ResetPasswordResponse returns the one-time temporary password. It is
// shown to the admin exactly once and never stored in plaintext.
type ResetPasswordResponse struct {
	UserID       string    `json:"user_id"`
	TempPassword string    `json:"temp_password"`
	ChangedAt    time.Time `json:"changed_at"`
}

// UserToResponse converts an entity; lock state is derived at render time.
func UserToResponse(user *entity.User, now time.Time) UserResponse {
	return UserResponse{
		ID:                  user.ID.String(),
		Username:            user.Username,
		Email:               user.Email,
		Phone:               user.Phone,
		Address:             user.Address,
		Role:                user.Role,
		IsActive:            user.IsActive,
		IsEmailVerified:     user.IsEmailVerified,
		IsPhoneVerified:     user.IsPhoneVerified,
		MFAEnabled:          user.MFAEnabled,
		FailedLoginAttempts: user.FailedLoginAttempts,
		Locked:              user.Locked(now),
		LockoutEnd:          user.LockoutEnd,
		LastLogin:           user.LastLogin,
		PasswordChangedAt:   user.PasswordChangedAt,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
}
