package rules

import (
	"strings"
)

// Entity kinds and fields covered by the transition guard.
const (
	EntityUser     = "user"
	EntityCustomer = "customer"

	FieldAccountStatus      = "account_status"
	FieldVerificationStatus = "verification_status"
	FieldIsActive           = "is_active"
	FieldRole               = "role"
)

// Outcome tells the caller what must happen before a field change may be
// submitted. ConfirmRequired gates on an explicit confirmation,
// ReasonRequired on a non-blank free-text reason. Warning is advisory
// only and never blocks.
type Outcome struct {
	ConfirmRequired bool   `json:"confirm_required"`
	Message         string `json:"message,omitempty"`
	ReasonRequired  bool   `json:"reason_required"`
	Warning         string `json:"warning,omitempty"`
}

type transitionKey struct {
	entity string
	field  string
}

type transitionRule func(oldValue, newValue string) Outcome

var transitionRules = map[transitionKey]transitionRule{
	{EntityCustomer, FieldAccountStatus}:      customerAccountStatusRule,
	{EntityCustomer, FieldVerificationStatus}: customerVerificationRule,
	{EntityUser, FieldIsActive}:               userActiveRule,
	{EntityUser, FieldRole}:                   userRoleRule,
}

// EvaluateTransition looks up the guard rule for a proposed field change.
// Unknown entity/field combinations and no-op changes never require
// anything. Pure and deterministic; values are compared case-insensitively.
func EvaluateTransition(entity, field, oldValue, newValue string) Outcome {
	oldValue = normalizeValue(oldValue)
	newValue = normalizeValue(newValue)

	if oldValue == newValue {
		return Outcome{}
	}

	rule, ok := transitionRules[transitionKey{normalizeValue(entity), normalizeValue(field)}]
	if !ok {
		return Outcome{}
	}

	return rule(oldValue, newValue)
}

func customerAccountStatusRule(oldValue, newValue string) Outcome {
	switch newValue {
	case "suspended":
		return Outcome{
			ConfirmRequired: true,
			Message:         "Suspending this customer blocks all new rentals until the account is reactivated. Continue?",
		}
	case "closed":
		return Outcome{
			ConfirmRequired: true,
			Message:         "Closing this account is permanent for the customer profile. Active rentals must be settled separately. Continue?",
		}
	case "active":
		if oldValue == "suspended" {
			return Outcome{
				ConfirmRequired: true,
				Message:         "Reactivate this customer account?",
			}
		}
	}
	return Outcome{}
}

func customerVerificationRule(oldValue, newValue string) Outcome {
	if newValue == "rejected" {
		return Outcome{
			ConfirmRequired: true,
			Message:         "Rejecting verification prevents this customer from renting vehicles. Continue?",
		}
	}
	return Outcome{}
}

func userActiveRule(oldValue, newValue string) Outcome {
	if newValue == "false" {
		return Outcome{
			ConfirmRequired: true,
			Message:         "Deactivating this user revokes their access immediately. A reason is required.",
			ReasonRequired:  true,
		}
	}
	return Outcome{}
}

// rolePrivilege is the total order admin > manager > agent > customer.
var rolePrivilege = map[string]int{
	"customer": 0,
	"agent":    1,
	"manager":  2,
	"admin":    3,
}

func userRoleRule(oldValue, newValue string) Outcome {
	var out Outcome

	escalating := rolePrivilege[newValue] > rolePrivilege[oldValue]
	if escalating && (newValue == "admin" || newValue == "manager") {
		out.ReasonRequired = true
		out.Message = "Escalating to a privileged role requires a recorded reason."
	}

	if oldValue == "admin" {
		out.Warning = "This removes the user's admin privileges. They will lose access to admin-only screens."
	}

	return out
}

// normalizeValue folds case and maps the legacy "inactive" account
// status onto its canonical value.
func normalizeValue(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "inactive" {
		return "closed"
	}
	return v
}
