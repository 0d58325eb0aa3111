package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/rules"
	"rental-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CustomerFilter narrows FindAll/CountAll. LicenseStatus maps the derived
// classification onto a date predicate so list pages and totals agree.
type CustomerFilter struct {
	AccountStatus      *entity.AccountStatus
	VerificationStatus *entity.VerificationStatus
	LicenseStatus      rules.LicenseStatus
	Search             string
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
	FindAll(ctx context.Context, filter CustomerFilter, limit, offset int) ([]*entity.Customer, error)
	CountAll(ctx context.Context, filter CustomerFilter) (int64, error)
	UpdateDetails(ctx context.Context, customer *entity.Customer) error
	UpdateAccountStatus(ctx context.Context, userID uuid.UUID, status entity.AccountStatus, updatedAt time.Time) error
	UpdateVerification(ctx context.Context, userID uuid.UUID, status entity.VerificationStatus, notes *string, updatedAt time.Time) error
	UpdateLoyaltyPoints(ctx context.Context, userID uuid.UUID, points int, updatedAt time.Time) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log,
	}
}

const customerColumns = `user_id, drivers_license_number, license_expiry, license_issue_date,
	       license_issuing_authority, national_id, account_status, verification_status,
	       verification_notes, loyalty_points, preferred_payment_method, marketing_opt_in,
	       created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var customer entity.Customer
	err := row.Scan(
		&customer.UserID,
		&customer.DriversLicenseNumber,
		&customer.LicenseExpiry,
		&customer.LicenseIssueDate,
		&customer.LicenseIssuingAuthority,
		&customer.NationalID,
		&customer.AccountStatus,
		&customer.VerificationStatus,
		&customer.VerificationNotes,
		&customer.LoyaltyPoints,
		&customer.PreferredPaymentMethod,
		&customer.MarketingOptIn,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create inserts the rental profile for an existing user
func (cr *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (user_id, drivers_license_number, license_expiry, license_issue_date,
		                      license_issuing_authority, national_id, account_status, verification_status,
		                      verification_notes, loyalty_points, preferred_payment_method, marketing_opt_in,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := cr.db.Exec(ctx, query,
		customer.UserID,
		customer.DriversLicenseNumber,
		customer.LicenseExpiry,
		customer.LicenseIssueDate,
		customer.LicenseIssuingAuthority,
		customer.NationalID,
		customer.AccountStatus,
		customer.VerificationStatus,
		customer.VerificationNotes,
		customer.LoyaltyPoints,
		customer.PreferredPaymentMethod,
		customer.MarketingOptIn,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("user_id", customer.UserID.String()),
		)
		return fmt.Errorf("create customer %s: %w", customer.UserID.String(), err)
	}

	return nil
}

func (cr *customerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM customers
		WHERE user_id = $1
	`, customerColumns)

	customer, err := scanCustomer(cr.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find customer",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find customer %s: %w", userID.String(), err)
	}

	return customer, nil
}

func buildCustomerWhere(filter CustomerFilter) (string, []any) {
	clauses := []string{"1=1"}
	var args []any

	if filter.AccountStatus != nil {
		args = append(args, *filter.AccountStatus)
		clauses = append(clauses, fmt.Sprintf("account_status = $%d", len(args)))
	}
	if filter.VerificationStatus != nil {
		args = append(args, *filter.VerificationStatus)
		clauses = append(clauses, fmt.Sprintf("verification_status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("(drivers_license_number ILIKE $%d OR national_id ILIKE $%d)", len(args), len(args)))
	}

	// Same day boundaries as the classifier: expired is strictly before
	// today, expiring runs from today through the lookahead window.
	switch filter.LicenseStatus {
	case rules.LicenseExpired:
		clauses = append(clauses, "license_expiry::date < CURRENT_DATE")
	case rules.LicenseExpiring:
		clauses = append(clauses, fmt.Sprintf("license_expiry::date >= CURRENT_DATE AND license_expiry::date <= CURRENT_DATE + %d", rules.ExpiryWindowDays))
	case rules.LicenseValid:
		clauses = append(clauses, fmt.Sprintf("license_expiry::date > CURRENT_DATE + %d", rules.ExpiryWindowDays))
	}

	return strings.Join(clauses, " AND "), args
}

// FindAll retrieves a filtered, paginated list of customers
func (cr *customerRepository) FindAll(ctx context.Context, filter CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	where, args := buildCustomerWhere(filter)
	query := fmt.Sprintf(`
		SELECT %s
		FROM customers
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, customerColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := cr.db.Query(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to get all customers",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all customers limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			cr.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customers rows: %w", err)
	}

	return customers, nil
}

func (cr *customerRepository) CountAll(ctx context.Context, filter CustomerFilter) (int64, error) {
	where, args := buildCustomerWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM customers WHERE %s`, where)

	var count int64
	err := cr.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		cr.log.Error("Database error counting customers",
			zap.Error(err),
		)
		return 0, fmt.Errorf("count all customers: %w", err)
	}

	return count, nil
}

// UpdateDetails writes the profile fields only. Status, verification and
// loyalty points have their own guarded operations.
func (cr *customerRepository) UpdateDetails(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET drivers_license_number = $2, license_expiry = $3, license_issue_date = $4,
		    license_issuing_authority = $5, national_id = $6, preferred_payment_method = $7,
		    marketing_opt_in = $8, updated_at = $9
		WHERE user_id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		customer.UserID,
		customer.DriversLicenseNumber,
		customer.LicenseExpiry,
		customer.LicenseIssueDate,
		customer.LicenseIssuingAuthority,
		customer.NationalID,
		customer.PreferredPaymentMethod,
		customer.MarketingOptIn,
		customer.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to update customer details",
			zap.Error(err),
			zap.String("user_id", customer.UserID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", customer.UserID.String())
	}

	return nil
}

func (cr *customerRepository) UpdateAccountStatus(ctx context.Context, userID uuid.UUID, status entity.AccountStatus, updatedAt time.Time) error {
	query := `UPDATE customers SET account_status = $2, updated_at = $3 WHERE user_id = $1`

	result, err := cr.db.Exec(ctx, query, userID, status, updatedAt)
	if err != nil {
		cr.log.Error("Failed to update account status",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update account status %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", userID.String())
	}

	return nil
}

func (cr *customerRepository) UpdateVerification(ctx context.Context, userID uuid.UUID, status entity.VerificationStatus, notes *string, updatedAt time.Time) error {
	query := `UPDATE customers SET verification_status = $2, verification_notes = $3, updated_at = $4 WHERE user_id = $1`

	result, err := cr.db.Exec(ctx, query, userID, status, notes, updatedAt)
	if err != nil {
		cr.log.Error("Failed to update verification status",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update verification %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", userID.String())
	}

	return nil
}

func (cr *customerRepository) UpdateLoyaltyPoints(ctx context.Context, userID uuid.UUID, points int, updatedAt time.Time) error {
	query := `UPDATE customers SET loyalty_points = $2, updated_at = $3 WHERE user_id = $1`

	result, err := cr.db.Exec(ctx, query, userID, points, updatedAt)
	if err != nil {
		cr.log.Error("Failed to update loyalty points",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("points", points),
		)
		return fmt.Errorf("update loyalty points %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", userID.String())
	}

	return nil
}

// Delete removes the rental profile. The underlying user row is untouched.
func (cr *customerRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM customers WHERE user_id = $1`

	result, err := cr.db.Exec(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete customer %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", userID.String())
	}

	cr.log.Info("Customer deleted", zap.String("user_id", userID.String()))
	return nil
}
