package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/request"
	"rental-admin/internal/dto/response"
	"rental-admin/internal/rules"
	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	SetUserStatus(ctx context.Context, userID string, req *request.UpdateUserStatusRequest) (*response.UserResponse, error)
	SetUserRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) (*response.RoleChangeResponse, error)
	ResetPassword(ctx context.Context, userID string) (*response.ResetPasswordResponse, error)
	UnlockUser(ctx context.Context, userID string) (*response.UserResponse, error)
	GetStats(ctx context.Context) (*response.UserStatsResponse, error)
}

type userService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	config    *utils.Config
	log       *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, auditRepo repository.AuditRepository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		config:    config,
		log:       log,
	}
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := us.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		us.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	existing, err = us.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		us.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}
	if existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Phone:             req.Phone,
		Address:           req.Address,
		Role:              entity.UserRole(req.Role),
		IsActive:          true,
		PasswordChangedAt: now,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		us.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user")
	}

	us.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user, now)
	return &resp, nil
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user, time.Now())
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := repository.UserFilter{Search: req.Search}
	if req.Role != "" {
		role := entity.UserRole(req.Role)
		filter.Role = &role
	}
	if req.Active != "" {
		active := req.Active == "true"
		filter.IsActive = &active
	}
	if req.Locked != "" {
		locked := req.Locked == "true"
		filter.Locked = &locked
	}

	users, err := us.userRepo.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("failed to get users")
	}

	total, err := us.userRepo.CountAll(ctx, filter)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users")
	}

	now := time.Now()
	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user, now)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.Limit(), total), nil
}

func (us *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Uniqueness checks only when the value actually changes
	if req.Email != user.Email {
		existing, err := us.userRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			us.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
			return nil, fmt.Errorf("failed to check email")
		}
		if existing != nil {
			return nil, fmt.Errorf("email already registered")
		}
	}
	if req.Username != user.Username {
		existing, err := us.userRepo.FindByUsername(ctx, req.Username)
		if err != nil {
			us.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
			return nil, fmt.Errorf("failed to check username")
		}
		if existing != nil {
			return nil, fmt.Errorf("username already taken")
		}
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Phone = req.Phone
	user.Address = req.Address
	if req.IsEmailVerified != nil {
		user.IsEmailVerified = *req.IsEmailVerified
	}
	if req.IsPhoneVerified != nil {
		user.IsPhoneVerified = *req.IsPhoneVerified
	}
	if req.MFAEnabled != nil {
		user.MFAEnabled = *req.MFAEnabled
	}
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user")
	}

	resp := response.UserToResponse(user, user.UpdatedAt)
	return &resp, nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := us.userRepo.Delete(ctx, user.ID); err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("id", userID))
		return fmt.Errorf("failed to delete user")
	}

	us.log.Info("User deleted", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
	return nil
}

// SetUserStatus activates or deactivates the account. Deactivation is
// guarded: the caller must confirm and record a reason.
func (us *userService) SetUserStatus(ctx context.Context, userID string, req *request.UpdateUserStatusRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldValue := strconv.FormatBool(user.IsActive)
	newValue := strconv.FormatBool(*req.IsActive)

	outcome := rules.EvaluateTransition(rules.EntityUser, rules.FieldIsActive, oldValue, newValue)
	if err := enforceGuard(outcome, req.Confirm, req.Reason); err != nil {
		return nil, err
	}

	if user.IsActive != *req.IsActive {
		user.IsActive = *req.IsActive
		user.UpdatedAt = time.Now()

		if err := us.userRepo.Update(ctx, user); err != nil {
			us.log.Error("Failed to update user status", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("failed to update user status")
		}

		recordAudit(ctx, us.auditRepo, us.log, rules.EntityUser, user.ID.String(),
			rules.FieldIsActive, oldValue, newValue, req.Reason)

		us.log.Info("User status changed",
			zap.String("user_id", user.ID.String()),
			zap.Bool("is_active", user.IsActive))
	}

	resp := response.UserToResponse(user, time.Now())
	return &resp, nil
}

// SetUserRole changes the privilege role. Escalation to manager/admin
// requires a recorded reason; de-escalation from admin returns a
// non-blocking warning alongside the updated user.
func (us *userService) SetUserRole(ctx context.Context, userID string, req *request.UpdateUserRoleRequest) (*response.RoleChangeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldRole := string(user.Role)
	outcome := rules.EvaluateTransition(rules.EntityUser, rules.FieldRole, oldRole, req.Role)
	if err := enforceGuard(outcome, req.Confirm, req.Reason); err != nil {
		return nil, err
	}

	if oldRole != req.Role {
		user.Role = entity.UserRole(req.Role)
		user.UpdatedAt = time.Now()

		if err := us.userRepo.Update(ctx, user); err != nil {
			us.log.Error("Failed to update user role", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("failed to update user role")
		}

		recordAudit(ctx, us.auditRepo, us.log, rules.EntityUser, user.ID.String(),
			rules.FieldRole, oldRole, req.Role, req.Reason)

		us.log.Info("User role changed",
			zap.String("user_id", user.ID.String()),
			zap.String("old_role", oldRole),
			zap.String("new_role", req.Role))
	}

	return &response.RoleChangeResponse{
		User:    response.UserToResponse(user, time.Now()),
		Warning: outcome.Warning,
	}, nil
}

// ResetPassword issues a random temporary password. The plaintext is
// returned once for the admin to hand over; only the bcrypt hash is stored.
func (us *userService) ResetPassword(ctx context.Context, userID string) (*response.ResetPasswordResponse, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tempPassword, err := utils.GenerateTempPassword(us.config.Admin.TempPasswordLength)
	if err != nil {
		us.log.Error("Failed to generate temp password", zap.Error(err))
		return nil, fmt.Errorf("failed to generate password")
	}

	hashed, err := utils.HashPassword(tempPassword)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user.PasswordHash = hashed
	user.PasswordChangedAt = now
	user.UpdatedAt = now

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to reset password")
	}

	us.log.Info("Password reset by admin", zap.String("user_id", user.ID.String()))

	return &response.ResetPasswordResponse{
		UserID:       user.ID.String(),
		TempPassword: tempPassword,
		ChangedAt:    now,
	}, nil
}

// UnlockUser clears an active lockout and the failed-attempt counter.
func (us *userService) UnlockUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !user.Locked(now) && user.FailedLoginAttempts == 0 {
		resp := response.UserToResponse(user, now)
		return &resp, nil
	}

	user.LockoutEnd = nil
	user.FailedLoginAttempts = 0
	user.UpdatedAt = now

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to unlock user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to unlock user")
	}

	us.log.Info("User unlocked", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user, now)
	return &resp, nil
}

// GetStats reduces the current user set into the overview counters.
func (us *userService) GetStats(ctx context.Context) (*response.UserStatsResponse, error) {
	stats := &response.UserStatsResponse{
		ByRole: make(map[string]int64),
	}

	now := time.Now()
	const pageSize = 500
	offset := 0

	for {
		users, err := us.userRepo.FindAll(ctx, repository.UserFilter{}, pageSize, offset)
		if err != nil {
			us.log.Error("Failed to load users for stats", zap.Error(err))
			return nil, fmt.Errorf("failed to compute stats")
		}

		for _, user := range users {
			stats.Total++
			if user.IsActive {
				stats.Active++
			} else {
				stats.Inactive++
			}
			if user.Locked(now) {
				stats.Locked++
			}
			if user.MFAEnabled {
				stats.MFAEnabled++
			}
			stats.ByRole[string(user.Role)]++
		}

		if len(users) < pageSize {
			break
		}
		offset += pageSize
	}

	if stats.Total > 0 {
		stats.ActivePercent = float64(stats.Active) / float64(stats.Total) * 100
	}

	return stats, nil
}

func (us *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	id, err := utils.ParseUUID(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return user, nil
}
