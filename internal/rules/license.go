package rules

import (
	"errors"
	"time"
)

type LicenseStatus string

const (
	LicenseExpired  LicenseStatus = "expired"
	LicenseExpiring LicenseStatus = "expiring"
	LicenseValid    LicenseStatus = "valid"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityNone   Severity = ""
)

// ExpiryWindowDays is the lookahead used to flag a license as expiring.
const ExpiryWindowDays = 30

// ErrInvalidDate is returned when a license expiry string cannot be parsed.
// Callers must not treat an unparseable date as expired.
var ErrInvalidDate = errors.New("invalid date")

type LicenseClassification struct {
	Status          LicenseStatus `json:"status"`
	DaysUntilExpiry int           `json:"days_until_expiry"`
	Severity        Severity      `json:"severity,omitempty"`
}

// ClassifyLicense derives the display status of a driver's license from
// its expiry date. Both dates are truncated to UTC midnight first, so the
// day delta is the same regardless of server timezone:
//
//	expired:  expiry before today
//	expiring: expiry within the next 30 calendar days (today included)
//	valid:    anything later
//
// Severity escalates inside the expiring window: high at 7 days or fewer,
// medium at 14, low otherwise.
func ClassifyLicense(expiry, today time.Time) LicenseClassification {
	days := daysBetween(utcMidnight(today), utcMidnight(expiry))

	switch {
	case days < 0:
		// For an expired license the count reads as days since expiry,
		// always reported as a magnitude.
		return LicenseClassification{
			Status:          LicenseExpired,
			DaysUntilExpiry: -days,
		}
	case days <= ExpiryWindowDays:
		return LicenseClassification{
			Status:          LicenseExpiring,
			DaysUntilExpiry: days,
			Severity:        expirySeverity(days),
		}
	default:
		return LicenseClassification{
			Status:          LicenseValid,
			DaysUntilExpiry: days,
		}
	}
}

// ClassifyLicenseString parses an expiry in YYYY-MM-DD form before
// classifying. Malformed input gets a typed error instead of a guess.
func ClassifyLicenseString(expiry string, today time.Time) (LicenseClassification, error) {
	parsed, err := time.Parse("2006-01-02", expiry)
	if err != nil {
		return LicenseClassification{}, ErrInvalidDate
	}
	return ClassifyLicense(parsed, today), nil
}

func expirySeverity(days int) Severity {
	switch {
	case days <= 7:
		return SeverityHigh
	case days <= 14:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
