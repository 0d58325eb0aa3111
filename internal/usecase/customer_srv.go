package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/dto/request"
	"rental-admin/internal/dto/response"
	"rental-admin/internal/rules"
	"rental-admin/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error)
	GetCustomer(ctx context.Context, userID string) (*response.CustomerResponse, error)
	GetAllCustomers(ctx context.Context, req *request.ListCustomersRequest) (*response.PaginatedResponse[response.CustomerResponse], error)
	UpdateCustomer(ctx context.Context, userID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error)
	SetAccountStatus(ctx context.Context, userID string, req *request.UpdateAccountStatusRequest) (*response.CustomerResponse, error)
	SetVerification(ctx context.Context, userID string, req *request.UpdateVerificationRequest) (*response.CustomerResponse, error)
	UpdateLoyalty(ctx context.Context, userID string, req *request.UpdateLoyaltyRequest) (*response.LoyaltyResponse, error)
	DeleteCustomer(ctx context.Context, userID string) error
	GetStats(ctx context.Context) (*response.CustomerStatsResponse, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	auditRepo    repository.AuditRepository
	log          *zap.Logger
}

func NewCustomerService(customerRepo repository.CustomerRepository, userRepo repository.UserRepository, auditRepo repository.AuditRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// CreateCustomer attaches a rental profile to an existing user. Each
// user gets at most one; new profiles start pending verification.
func (cs *customerService) CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		cs.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := utils.ParseUUID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := cs.userRepo.FindByID(ctx, userID)
	if err != nil {
		cs.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to check user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	existing, err := cs.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		cs.log.Error("Failed to check customer", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to check customer")
	}
	if existing != nil {
		return nil, fmt.Errorf("customer profile already exists")
	}

	expiry, issueDate, err := parseLicenseDates(req.LicenseExpiry, req.LicenseIssueDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &entity.Customer{
		UserID:                  userID,
		DriversLicenseNumber:    req.DriversLicenseNumber,
		LicenseExpiry:           expiry,
		LicenseIssueDate:        issueDate,
		LicenseIssuingAuthority: req.LicenseIssuingAuthority,
		NationalID:              req.NationalID,
		AccountStatus:           entity.AccountPendingVerification,
		VerificationStatus:      entity.VerificationPending,
		LoyaltyPoints:           0,
		MarketingOptIn:          req.MarketingOptIn,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if req.PreferredPaymentMethod != nil {
		method := entity.PaymentMethod(*req.PreferredPaymentMethod)
		customer.PreferredPaymentMethod = &method
	}

	if err := cs.customerRepo.Create(ctx, customer); err != nil {
		cs.log.Error("Failed to create customer", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to create customer")
	}

	cs.log.Info("Customer created",
		zap.String("user_id", customer.UserID.String()),
		zap.String("license", customer.DriversLicenseNumber))

	resp := response.CustomerToResponse(customer, now)
	return &resp, nil
}

func (cs *customerService) GetCustomer(ctx context.Context, userID string) (*response.CustomerResponse, error) {
	customer, err := cs.findCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.CustomerToResponse(customer, time.Now())
	return &resp, nil
}

func (cs *customerService) GetAllCustomers(ctx context.Context, req *request.ListCustomersRequest) (*response.PaginatedResponse[response.CustomerResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := repository.CustomerFilter{Search: req.Search}
	if req.AccountStatus != "" {
		status, ok := entity.NormalizeAccountStatus(req.AccountStatus)
		if !ok {
			return nil, fmt.Errorf("invalid account status")
		}
		filter.AccountStatus = &status
	}
	if req.VerificationStatus != "" {
		status := entity.VerificationStatus(req.VerificationStatus)
		filter.VerificationStatus = &status
	}
	if req.LicenseStatus != "" {
		filter.LicenseStatus = rules.LicenseStatus(req.LicenseStatus)
	}

	customers, err := cs.customerRepo.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		cs.log.Error("Failed to get all customers",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("failed to get customers")
	}

	total, err := cs.customerRepo.CountAll(ctx, filter)
	if err != nil {
		cs.log.Error("Failed to count customers", zap.Error(err))
		return nil, fmt.Errorf("failed to count customers")
	}

	now := time.Now()
	customerResponses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = response.CustomerToResponse(customer, now)
	}

	return response.NewPaginatedResponse(customerResponses, req.Page, req.Limit(), total), nil
}

func (cs *customerService) UpdateCustomer(ctx context.Context, userID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := cs.findCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	expiry, issueDate, err := parseLicenseDates(req.LicenseExpiry, req.LicenseIssueDate)
	if err != nil {
		return nil, err
	}

	customer.DriversLicenseNumber = req.DriversLicenseNumber
	customer.LicenseExpiry = expiry
	customer.LicenseIssueDate = issueDate
	customer.LicenseIssuingAuthority = req.LicenseIssuingAuthority
	customer.NationalID = req.NationalID
	customer.MarketingOptIn = req.MarketingOptIn
	customer.PreferredPaymentMethod = nil
	if req.PreferredPaymentMethod != nil {
		method := entity.PaymentMethod(*req.PreferredPaymentMethod)
		customer.PreferredPaymentMethod = &method
	}
	customer.UpdatedAt = time.Now()

	if err := cs.customerRepo.UpdateDetails(ctx, customer); err != nil {
		cs.log.Error("Failed to update customer", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update customer")
	}

	resp := response.CustomerToResponse(customer, customer.UpdatedAt)
	return &resp, nil
}

// SetAccountStatus moves the customer between account states through
// the transition guard.
func (cs *customerService) SetAccountStatus(ctx context.Context, userID string, req *request.UpdateAccountStatusRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := cs.findCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	newStatus, ok := entity.NormalizeAccountStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid account status")
	}

	oldStatus := customer.AccountStatus
	outcome := rules.EvaluateTransition(rules.EntityCustomer, rules.FieldAccountStatus, string(oldStatus), string(newStatus))
	if err := enforceGuard(outcome, req.Confirm, req.Reason); err != nil {
		return nil, err
	}

	if oldStatus != newStatus {
		customer.AccountStatus = newStatus
		customer.UpdatedAt = time.Now()

		if err := cs.customerRepo.UpdateAccountStatus(ctx, customer.UserID, newStatus, customer.UpdatedAt); err != nil {
			cs.log.Error("Failed to update account status", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("failed to update account status")
		}

		recordAudit(ctx, cs.auditRepo, cs.log, rules.EntityCustomer, customer.UserID.String(),
			rules.FieldAccountStatus, string(oldStatus), string(newStatus), req.Reason)

		cs.log.Info("Customer account status changed",
			zap.String("user_id", customer.UserID.String()),
			zap.String("old_status", string(oldStatus)),
			zap.String("new_status", string(newStatus)))
	}

	resp := response.CustomerToResponse(customer, time.Now())
	return &resp, nil
}

// SetVerification updates the reviewer-assigned verification state.
// Rejections are guarded and must carry notes explaining the decision.
func (cs *customerService) SetVerification(ctx context.Context, userID string, req *request.UpdateVerificationRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := cs.findCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	newStatus := entity.VerificationStatus(req.Status)
	oldStatus := customer.VerificationStatus

	outcome := rules.EvaluateTransition(rules.EntityCustomer, rules.FieldVerificationStatus, string(oldStatus), string(newStatus))
	if err := enforceGuard(outcome, req.Confirm, ""); err != nil {
		return nil, err
	}

	if newStatus == entity.VerificationRejected && oldStatus != entity.VerificationRejected {
		if req.Notes == nil || strings.TrimSpace(*req.Notes) == "" {
			return nil, fmt.Errorf("reason required: rejection notes must explain the decision")
		}
	}

	if oldStatus != newStatus || req.Notes != nil {
		customer.VerificationStatus = newStatus
		if req.Notes != nil {
			customer.VerificationNotes = req.Notes
		}
		customer.UpdatedAt = time.Now()

		if err := cs.customerRepo.UpdateVerification(ctx, customer.UserID, newStatus, customer.VerificationNotes, customer.UpdatedAt); err != nil {
			cs.log.Error("Failed to update verification", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("failed to update verification")
		}

		notes := ""
		if req.Notes != nil {
			notes = *req.Notes
		}
		recordAudit(ctx, cs.auditRepo, cs.log, rules.EntityCustomer, customer.UserID.String(),
			rules.FieldVerificationStatus, string(oldStatus), string(newStatus), notes)

		cs.log.Info("Customer verification changed",
			zap.String("user_id", customer.UserID.String()),
			zap.String("old_status", string(oldStatus)),
			zap.String("new_status", string(newStatus)))
	}

	resp := response.CustomerToResponse(customer, time.Now())
	return &resp, nil
}

// UpdateLoyalty applies one of the two ledger operations and returns
// the before/after/delta triple.
func (cs *customerService) UpdateLoyalty(ctx context.Context, userID string, req *request.UpdateLoyaltyRequest) (*response.LoyaltyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := cs.findCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	var change rules.LoyaltyChange
	switch req.Op {
	case "set":
		change = rules.SetLoyaltyTotal(customer.LoyaltyPoints, req.Amount)
	case "add":
		change = rules.AddLoyaltyPoints(customer.LoyaltyPoints, req.Amount)
	default:
		return nil, fmt.Errorf("invalid loyalty operation")
	}

	if change.NewTotal != customer.LoyaltyPoints {
		now := time.Now()
		if err := cs.customerRepo.UpdateLoyaltyPoints(ctx, customer.UserID, change.NewTotal, now); err != nil {
			cs.log.Error("Failed to update loyalty points", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("failed to update loyalty points")
		}

		recordAudit(ctx, cs.auditRepo, cs.log, rules.EntityCustomer, customer.UserID.String(),
			"loyalty_points", strconv.Itoa(change.Previous), strconv.Itoa(change.NewTotal), "")

		cs.log.Info("Loyalty points updated",
			zap.String("user_id", customer.UserID.String()),
			zap.String("op", req.Op),
			zap.Int("previous", change.Previous),
			zap.Int("new_total", change.NewTotal))
	}

	return &response.LoyaltyResponse{
		UserID: customer.UserID.String(),
		Change: change,
	}, nil
}

// DeleteCustomer removes the rental profile only; the user account
// stays in place.
func (cs *customerService) DeleteCustomer(ctx context.Context, userID string) error {
	customer, err := cs.findCustomer(ctx, userID)
	if err != nil {
		return err
	}

	if err := cs.customerRepo.Delete(ctx, customer.UserID); err != nil {
		cs.log.Error("Failed to delete customer", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to delete customer")
	}

	cs.log.Info("Customer profile deleted, user retained",
		zap.String("user_id", customer.UserID.String()))
	return nil
}

// GetStats reduces the customer set into the dashboard counters,
// classifying each license against today.
func (cs *customerService) GetStats(ctx context.Context) (*response.CustomerStatsResponse, error) {
	stats := &response.CustomerStatsResponse{
		ByAccountStatus:      make(map[string]int64),
		ByVerificationStatus: make(map[string]int64),
		ExpiringBySeverity:   make(map[string]int64),
	}

	now := time.Now()
	const pageSize = 500
	offset := 0
	var verified int64

	for {
		customers, err := cs.customerRepo.FindAll(ctx, repository.CustomerFilter{}, pageSize, offset)
		if err != nil {
			cs.log.Error("Failed to load customers for stats", zap.Error(err))
			return nil, fmt.Errorf("failed to compute stats")
		}

		for _, customer := range customers {
			stats.Total++
			stats.ByAccountStatus[string(customer.AccountStatus)]++
			stats.ByVerificationStatus[string(customer.VerificationStatus)]++
			stats.TotalLoyaltyPoints += int64(customer.LoyaltyPoints)
			if customer.VerificationStatus == entity.VerificationVerified {
				verified++
			}

			classification := rules.ClassifyLicense(customer.LicenseExpiry, now)
			switch classification.Status {
			case rules.LicenseExpired:
				stats.LicenseExpired++
			case rules.LicenseExpiring:
				stats.LicenseExpiring++
				stats.ExpiringBySeverity[string(classification.Severity)]++
			}
		}

		if len(customers) < pageSize {
			break
		}
		offset += pageSize
	}

	if stats.Total > 0 {
		stats.VerifiedPercent = float64(verified) / float64(stats.Total) * 100
	}

	return stats, nil
}

func (cs *customerService) findCustomer(ctx context.Context, userID string) (*entity.Customer, error) {
	id, err := utils.ParseUUID(userID)
	if err != nil {
		cs.log.Warn("Invalid customer ID", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("invalid customer ID")
	}

	customer, err := cs.customerRepo.FindByUserID(ctx, id)
	if err != nil {
		cs.log.Error("Failed to find customer", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get customer")
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	return customer, nil
}

// parseLicenseDates validates the expiry and optional issue date. The
// issue date may not be in the future.
func parseLicenseDates(expiryStr string, issueStr *string) (time.Time, *time.Time, error) {
	expiry, err := time.Parse("2006-01-02", expiryStr)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid license expiry date")
	}

	var issueDate *time.Time
	if issueStr != nil {
		parsed, err := time.Parse("2006-01-02", *issueStr)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("invalid license issue date")
		}
		if parsed.After(time.Now()) {
			return time.Time{}, nil, fmt.Errorf("invalid license issue date: cannot be in the future")
		}
		issueDate = &parsed
	}

	return expiry, issueDate, nil
}
