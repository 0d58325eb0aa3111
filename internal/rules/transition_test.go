package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateTransition_AccountStatusToClosed(t *testing.T) {
	got := EvaluateTransition("customer", "account_status", "active", "closed")

	assert.True(t, got.ConfirmRequired)
	assert.NotEmpty(t, got.Message)
	assert.False(t, got.ReasonRequired)
}

func TestEvaluateTransition_AccountStatusToSuspended(t *testing.T) {
	got := EvaluateTransition("customer", "account_status", "active", "suspended")

	assert.True(t, got.ConfirmRequired)
	assert.NotEmpty(t, got.Message)

	// Suspension and closure carry distinct warning copy.
	closed := EvaluateTransition("customer", "account_status", "active", "closed")
	assert.NotEqual(t, got.Message, closed.Message)
}

func TestEvaluateTransition_Reactivation(t *testing.T) {
	got := EvaluateTransition("customer", "account_status", "suspended", "active")

	assert.True(t, got.ConfirmRequired)

	// Reactivation copy is softer than the suspension warning.
	suspend := EvaluateTransition("customer", "account_status", "active", "suspended")
	assert.NotEqual(t, suspend.Message, got.Message)
}

func TestEvaluateTransition_NoOpNeverConfirms(t *testing.T) {
	tests := []struct {
		entity, field, value string
	}{
		{"customer", "account_status", "active"},
		{"customer", "account_status", "suspended"},
		{"customer", "verification_status", "rejected"},
		{"user", "is_active", "true"},
		{"user", "role", "admin"},
	}

	for _, tt := range tests {
		got := EvaluateTransition(tt.entity, tt.field, tt.value, tt.value)
		assert.False(t, got.ConfirmRequired, "%s.%s %s->%s", tt.entity, tt.field, tt.value, tt.value)
		assert.False(t, got.ReasonRequired)
	}
}

func TestEvaluateTransition_PendingVerificationToActive(t *testing.T) {
	got := EvaluateTransition("customer", "account_status", "pending_verification", "active")

	assert.False(t, got.ConfirmRequired)
	assert.False(t, got.ReasonRequired)
}

func TestEvaluateTransition_VerificationRejected(t *testing.T) {
	got := EvaluateTransition("customer", "verification_status", "pending", "rejected")

	assert.True(t, got.ConfirmRequired)
	assert.NotEmpty(t, got.Message)
}

func TestEvaluateTransition_VerificationApproved(t *testing.T) {
	got := EvaluateTransition("customer", "verification_status", "pending", "verified")

	assert.False(t, got.ConfirmRequired)
}

func TestEvaluateTransition_UserDeactivation(t *testing.T) {
	got := EvaluateTransition("user", "is_active", "true", "false")

	assert.True(t, got.ConfirmRequired)
	assert.True(t, got.ReasonRequired)
}

func TestEvaluateTransition_UserReactivation(t *testing.T) {
	got := EvaluateTransition("user", "is_active", "false", "true")

	assert.False(t, got.ConfirmRequired)
	assert.False(t, got.ReasonRequired)
}

func TestEvaluateTransition_RoleEscalation(t *testing.T) {
	toAdmin := EvaluateTransition("user", "role", "agent", "admin")
	assert.True(t, toAdmin.ReasonRequired)
	assert.False(t, toAdmin.ConfirmRequired)

	toManager := EvaluateTransition("user", "role", "customer", "manager")
	assert.True(t, toManager.ReasonRequired)

	toAgent := EvaluateTransition("user", "role", "customer", "agent")
	assert.False(t, toAgent.ReasonRequired)
}

func TestEvaluateTransition_AdminDeescalationWarnsOnly(t *testing.T) {
	got := EvaluateTransition("user", "role", "admin", "agent")

	assert.False(t, got.ConfirmRequired)
	assert.False(t, got.ReasonRequired)
	assert.NotEmpty(t, got.Warning)
}

func TestEvaluateTransition_AdminToManagerIsNotEscalation(t *testing.T) {
	got := EvaluateTransition("user", "role", "admin", "manager")

	assert.False(t, got.ReasonRequired)
	assert.NotEmpty(t, got.Warning)
}

func TestEvaluateTransition_CaseInsensitive(t *testing.T) {
	got := EvaluateTransition("Customer", "account_status", "Active", "Closed")

	assert.True(t, got.ConfirmRequired)
}

func TestEvaluateTransition_LegacyInactiveAlias(t *testing.T) {
	// "inactive" is the legacy spelling of "closed" and guards the same way.
	got := EvaluateTransition("customer", "account_status", "active", "inactive")
	assert.True(t, got.ConfirmRequired)

	// inactive -> closed is a no-op once normalized.
	noop := EvaluateTransition("customer", "account_status", "inactive", "closed")
	assert.False(t, noop.ConfirmRequired)
}

func TestEvaluateTransition_UnknownEntityOrField(t *testing.T) {
	assert.Equal(t, Outcome{}, EvaluateTransition("vehicle", "status", "a", "b"))
	assert.Equal(t, Outcome{}, EvaluateTransition("customer", "marketing_opt_in", "false", "true"))
}

func TestEvaluateTransition_Deterministic(t *testing.T) {
	first := EvaluateTransition("customer", "account_status", "active", "suspended")
	second := EvaluateTransition("customer", "account_status", "active", "suspended")

	assert.Equal(t, first, second)
}
