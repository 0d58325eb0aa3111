package response

// UserStatsResponse are the dashboard overview counters, computed as
// reductions over the current user set.
type UserStatsResponse struct {
	Total         int64            `json:"total"`
	Active        int64            `json:"active"`
	Inactive      int64            `json:"inactive"`
	Locked        int64            `json:"locked"`
	MFAEnabled    int64            `json:"mfa_enabled"`
	ByRole        map[string]int64 `json:"by_role"`
	ActivePercent float64          `json:"active_percent"`
}

// CustomerStatsResponse aggregates account/verification breakdowns plus
// the license-expiry tiers the alerts panel renders.
type CustomerStatsResponse struct {
	Total                int64            `json:"total"`
	ByAccountStatus      map[string]int64 `json:"by_account_status"`
	ByVerificationStatus map[string]int64 `json:"by_verification_status"`
	LicenseExpired       int64            `json:"license_expired"`
	LicenseExpiring      int64            `json:"license_expiring"`
	ExpiringBySeverity   map[string]int64 `json:"expiring_by_severity"`
	TotalLoyaltyPoints   int64            `json:"total_loyalty_points"`
	VerifiedPercent      float64          `json:"verified_percent"`
}
