package request

// EvaluateTransitionRequest asks the guard whether a proposed field
// change needs confirmation and/or a recorded reason. The dashboard
// calls this before rendering its confirmation dialog.
type EvaluateTransitionRequest struct {
	Entity   string `json:"entity" validate:"required,oneof=user customer"`
	Field    string `json:"field" validate:"required"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value" validate:"required"`
}
