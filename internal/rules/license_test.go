package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassifyLicense_Expired(t *testing.T) {
	got := ClassifyLicense(date("2023-12-31"), date("2024-01-01"))

	assert.Equal(t, LicenseExpired, got.Status)
	assert.Equal(t, 1, got.DaysUntilExpiry)
	assert.Equal(t, SeverityNone, got.Severity)
}

func TestClassifyLicense_ExpiredDaysAreAbsolute(t *testing.T) {
	// The day count is a magnitude on both sides of today.
	got := ClassifyLicense(date("2023-12-01"), date("2024-01-01"))

	assert.Equal(t, LicenseExpired, got.Status)
	assert.Equal(t, 31, got.DaysUntilExpiry)
}

func TestClassifyLicense_ExpiresToday(t *testing.T) {
	got := ClassifyLicense(date("2024-01-01"), date("2024-01-01"))

	assert.Equal(t, LicenseExpiring, got.Status)
	assert.Equal(t, 0, got.DaysUntilExpiry)
	assert.Equal(t, SeverityHigh, got.Severity)
}

func TestClassifyLicense_WindowBoundaries(t *testing.T) {
	// Day 30 is still inside the expiring window, day 31 is not.
	atBoundary := ClassifyLicense(date("2024-01-31"), date("2024-01-01"))
	assert.Equal(t, LicenseExpiring, atBoundary.Status)
	assert.Equal(t, 30, atBoundary.DaysUntilExpiry)
	assert.Equal(t, SeverityLow, atBoundary.Severity)

	pastBoundary := ClassifyLicense(date("2024-02-01"), date("2024-01-01"))
	assert.Equal(t, LicenseValid, pastBoundary.Status)
	assert.Equal(t, 31, pastBoundary.DaysUntilExpiry)
	assert.Equal(t, SeverityNone, pastBoundary.Severity)
}

func TestClassifyLicense_SeverityTiers(t *testing.T) {
	tests := []struct {
		days     int
		expiry   string
		severity Severity
	}{
		{5, "2024-01-06", SeverityHigh},
		{7, "2024-01-08", SeverityHigh},
		{8, "2024-01-09", SeverityMedium},
		{10, "2024-01-11", SeverityMedium},
		{14, "2024-01-15", SeverityMedium},
		{15, "2024-01-16", SeverityLow},
		{25, "2024-01-26", SeverityLow},
	}

	for _, tt := range tests {
		got := ClassifyLicense(date(tt.expiry), date("2024-01-01"))
		assert.Equal(t, LicenseExpiring, got.Status, "days=%d", tt.days)
		assert.Equal(t, tt.days, got.DaysUntilExpiry)
		assert.Equal(t, tt.severity, got.Severity, "days=%d", tt.days)
	}
}

func TestClassifyLicense_TwelveDaysOut(t *testing.T) {
	// 12 days falls in the medium tier, not high.
	got := ClassifyLicense(date("2025-01-01"), date("2024-12-20"))

	assert.Equal(t, LicenseExpiring, got.Status)
	assert.Equal(t, 12, got.DaysUntilExpiry)
	assert.Equal(t, SeverityMedium, got.Severity)
}

func TestClassifyLicense_FourteenDaysOut(t *testing.T) {
	got := ClassifyLicense(date("2024-01-15"), date("2024-01-01"))

	assert.Equal(t, LicenseExpiring, got.Status)
	assert.Equal(t, 14, got.DaysUntilExpiry)
	assert.Equal(t, SeverityMedium, got.Severity)
}

func TestClassifyLicense_IgnoresTimeOfDay(t *testing.T) {
	// Same calendar day, different clock times, must classify identically.
	lateExpiry := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	earlyToday := time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)

	got := ClassifyLicense(lateExpiry, earlyToday)
	assert.Equal(t, 14, got.DaysUntilExpiry)
	assert.Equal(t, LicenseExpiring, got.Status)
}

func TestClassifyLicense_TimezoneIndependent(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// Local 2024-01-02 05:00 WIB is 2024-01-01 22:00 UTC; day math
	// happens at UTC midnight either way.
	localToday := time.Date(2024, 1, 2, 5, 0, 0, 0, jakarta)
	utcToday := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)

	expiry := date("2024-01-15")
	assert.Equal(t, ClassifyLicense(expiry, utcToday), ClassifyLicense(expiry, localToday))
}

func TestClassifyLicenseString(t *testing.T) {
	got, err := ClassifyLicenseString("2024-01-15", date("2024-01-01"))
	assert.NoError(t, err)
	assert.Equal(t, LicenseExpiring, got.Status)
	assert.Equal(t, 14, got.DaysUntilExpiry)
}

func TestClassifyLicenseString_InvalidDate(t *testing.T) {
	_, err := ClassifyLicenseString("not-a-date", date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ClassifyLicenseString("15/01/2024", date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ClassifyLicenseString("", date("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidDate)
}
