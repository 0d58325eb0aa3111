package request

// ListUsersRequest carries the list filters; empty strings mean "any".
// Active and Locked are tri-state: "", "true" or "false".
type ListUsersRequest struct {
	PaginatedRequest
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=customer agent manager admin"`
	Active string `json:"active,omitempty" validate:"omitempty,oneof=true false"`
	Locked string `json:"locked,omitempty" validate:"omitempty,oneof=true false"`
	Search string `json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Role     string  `json:"role" validate:"required,oneof=customer agent manager admin"`
}

type UpdateUserRequest struct {
	Username        string  `json:"username" validate:"required,min=3,max=50"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Address         *string `json:"address,omitempty" validate:"omitempty,max=255"`
	IsEmailVerified *bool   `json:"is_email_verified,omitempty"`
	IsPhoneVerified *bool   `json:"is_phone_verified,omitempty"`
	MFAEnabled      *bool   `json:"mfa_enabled,omitempty"`
}

// UpdateUserStatusRequest activates or deactivates an account.
// Deactivation is guarded: it needs Confirm and a non-blank Reason.
type UpdateUserStatusRequest struct {
	IsActive *bool  `json:"is_active" validate:"required"`
	Confirm  bool   `json:"confirm"`
	Reason   string `json:"reason,omitempty"`
}

// UpdateUserRoleRequest changes the privilege role. Escalations to
// manager or admin are guarded and need a recorded reason.
type UpdateUserRoleRequest struct {
	Role    string `json:"role" validate:"required,oneof=customer agent manager admin"`
	Confirm bool   `json:"confirm"`
	Reason  string `json:"reason,omitempty"`
}
