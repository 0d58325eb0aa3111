package request

// ListCustomersRequest carries the list filters; empty strings mean
// "any". LicenseStatus filters on the derived classification.
type ListCustomersRequest struct {
	PaginatedRequest
	AccountStatus      string `json:"account_status,omitempty" validate:"omitempty,oneof=active suspended closed inactive pending_verification"`
	VerificationStatus string `json:"verification_status,omitempty" validate:"omitempty,oneof=pending verified rejected"`
	LicenseStatus      string `json:"license_status,omitempty" validate:"omitempty,oneof=expired expiring valid"`
	Search             string `json:"search,omitempty" validate:"omitempty,max=100"`
}

type CreateCustomerRequest struct {
	UserID                  string  `json:"user_id" validate:"required,uuid"`
	DriversLicenseNumber    string  `json:"drivers_license_number" validate:"required,min=1,max=50"`
	LicenseExpiry           string  `json:"license_expiry" validate:"required,datetime=2006-01-02"`
	LicenseIssueDate        *string `json:"license_issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LicenseIssuingAuthority *string `json:"license_issuing_authority,omitempty" validate:"omitempty,max=100"`
	NationalID              *string `json:"national_id,omitempty" validate:"omitempty,max=50"`
	PreferredPaymentMethod  *string `json:"preferred_payment_method,omitempty" validate:"omitempty,oneof=credit_card debit_card paypal bank_transfer cash mobile_money other"`
	MarketingOptIn          bool    `json:"marketing_opt_in"`
}

type UpdateCustomerRequest struct {
	DriversLicenseNumber    string  `json:"drivers_license_number" validate:"required,min=1,max=50"`
	LicenseExpiry           string  `json:"license_expiry" validate:"required,datetime=2006-01-02"`
	LicenseIssueDate        *string `json:"license_issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LicenseIssuingAuthority *string `json:"license_issuing_authority,omitempty" validate:"omitempty,max=100"`
	NationalID              *string `json:"national_id,omitempty" validate:"omitempty,max=50"`
	PreferredPaymentMethod  *string `json:"preferred_payment_method,omitempty" validate:"omitempty,oneof=credit_card debit_card paypal bank_transfer cash mobile_money other"`
	MarketingOptIn          bool    `json:"marketing_opt_in"`
}

// UpdateAccountStatusRequest moves a customer between account states.
// "inactive" is accepted as a legacy alias of "closed".
type UpdateAccountStatusRequest struct {
	Status  string `json:"status" validate:"required,oneof=active suspended closed inactive pending_verification"`
	Confirm bool   `json:"confirm"`
	Reason  string `json:"reason,omitempty"`
}

type UpdateVerificationRequest struct {
	Status  string  `json:"status" validate:"required,oneof=pending verified rejected"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	Confirm bool    `json:"confirm"`
}

// UpdateLoyaltyRequest applies one of the two ledger operations:
// "set" replaces the balance, "add" increments it.
type UpdateLoyaltyRequest struct {
	Op     string `json:"op" validate:"required,oneof=set add"`
	Amount int    `json:"amount"`
}
