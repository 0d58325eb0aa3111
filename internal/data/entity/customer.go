package entity

import (
	"time"

	"github.com/google/uuid"
)

type AccountStatus string

const (
	AccountActive              AccountStatus = "active"
	AccountSuspended           AccountStatus = "suspended"
	AccountClosed              AccountStatus = "closed"
	AccountPendingVerification AccountStatus = "pending_verification"
)

// NormalizeAccountStatus maps the legacy "inactive" value onto "closed"
// and folds case. The second return is false for unknown values.
func NormalizeAccountStatus(s string) (AccountStatus, bool) {
	switch AccountStatus(s) {
	case AccountActive, AccountSuspended, AccountClosed, AccountPendingVerification:
		return AccountStatus(s), true
	case "inactive":
		return AccountClosed, true
	}
	return "", false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentDebitCard    PaymentMethod = "debit_card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCash         PaymentMethod = "cash"
	PaymentMobileMoney  PaymentMethod = "mobile_money"
	PaymentOther        PaymentMethod = "other"
)

// Customer is the rental profile extending a User 1:1. It shares the
// user's id and may not exist yet for a given user. Deleting it leaves
// the user intact.
type Customer struct {
	UserID                  uuid.UUID          `db:"user_id"`
	DriversLicenseNumber    string             `db:"drivers_license_number"`
	LicenseExpiry           time.Time          `db:"license_expiry"`
	LicenseIssueDate        *time.Time         `db:"license_issue_date"`
	LicenseIssuingAuthority *string            `db:"license_issuing_authority"`
	NationalID              *string            `db:"national_id"`
	AccountStatus           AccountStatus      `db:"account_status"`
	VerificationStatus      VerificationStatus `db:"verification_status"`
	VerificationNotes       *string            `db:"verification_notes"`
	LoyaltyPoints           int                `db:"loyalty_points"`
	PreferredPaymentMethod  *PaymentMethod     `db:"preferred_payment_method"`
	MarketingOptIn          bool               `db:"marketing_opt_in"`
	CreatedAt               time.Time          `db:"created_at"`
	UpdatedAt               time.Time          `db:"updated_at"`
}
