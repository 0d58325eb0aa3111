package response

import (
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/rules"
)

type CustomerResponse struct {
	UserID                  string                      `json:"user_id"`
	DriversLicenseNumber    string                      `json:"drivers_license_number"`
	LicenseExpiry           string                      `json:"license_expiry"`
	LicenseIssueDate        *string                     `json:"license_issue_date,omitempty"`
	LicenseIssuingAuthority *string                     `json:"license_issuing_authority,omitempty"`
	NationalID              *string                     `json:"national_id,omitempty"`
	AccountStatus           entity.AccountStatus        `json:"account_status"`
	VerificationStatus      entity.VerificationStatus   `json:"verification_status"`
	VerificationNotes       *string                     `json:"verification_notes,omitempty"`
	LoyaltyPoints           int                         `json:"loyalty_points"`
	PreferredPaymentMethod  *entity.PaymentMethod       `json:"preferred_payment_method,omitempty"`
	MarketingOptIn          bool                        `json:"marketing_opt_in"`
	License                 rules.LicenseClassification `json:"license"`
	CreatedAt               time.Time                   `json:"created_at"`
	UpdatedAt               time.Time                   `json:"updated_at"`
}

// LoyaltyResponse reports a ledger mutation as the before/after/delta
// triple the dashboard shows for confirmation.
type LoyaltyResponse struct {
	UserID string              `json:"user_id"`
	Change rules.LoyaltyChange `json:"change"`
}

// CustomerToResponse converts an entity; the license classification is
// derived against the given reference date, never stored.
func CustomerToResponse(customer *entity.Customer, today time.Time) CustomerResponse {
	var issueDate *string
	if customer.LicenseIssueDate != nil {
		d := customer.LicenseIssueDate.Format("2006-01-02")
		issueDate = &d
	}

	return CustomerResponse{
		UserID:                  customer.UserID.String(),
		DriversLicenseNumber:    customer.DriversLicenseNumber,
		LicenseExpiry:           customer.LicenseExpiry.Format("2006-01-02"),
		LicenseIssueDate:        issueDate,
		LicenseIssuingAuthority: customer.LicenseIssuingAuthority,
		NationalID:              customer.NationalID,
		AccountStatus:           customer.AccountStatus,
		VerificationStatus:      customer.VerificationStatus,
		VerificationNotes:       customer.VerificationNotes,
		LoyaltyPoints:           customer.LoyaltyPoints,
		PreferredPaymentMethod:  customer.PreferredPaymentMethod,
		MarketingOptIn:          customer.MarketingOptIn,
		License:                 rules.ClassifyLicense(customer.LicenseExpiry, today),
		CreatedAt:               customer.CreatedAt,
		UpdatedAt:               customer.UpdatedAt,
	}
}
