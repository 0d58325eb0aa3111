package adaptor

import (
	"net/http"

	"rental-admin/internal/dto/request"
	"rental-admin/internal/usecase"
	"rental-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/admin/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create customer")
		return
	}

	utils.ResponseCreated(w, "Customer created successfully", customer)
}

// Get handles GET /api/admin/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get customer")
		return
	}

	utils.ResponseSuccess(w, "Customer retrieved successfully", customer)
}

// List handles GET /api/admin/customers with status/verification/license filters
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListCustomersRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		AccountStatus:      query.Get("account_status"),
		VerificationStatus: query.Get("verification_status"),
		LicenseStatus:      query.Get("license_status"),
		Search:             query.Get("search"),
	}

	customers, err := h.service.GetAllCustomers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all customers")
		return
	}

	utils.ResponseSuccess(w, "Customers retrieved successfully", customers)
}

// Update handles PUT /api/admin/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, "Customer updated successfully", customer)
}

// SetAccountStatus handles PATCH /api/admin/customers/{id}/status
func (h *CustomerHandler) SetAccountStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateAccountStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.service.SetAccountStatus(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set account status")
		return
	}

	utils.ResponseSuccess(w, "Account status updated successfully", customer)
}

// SetVerification handles PATCH /api/admin/customers/{id}/verification
func (h *CustomerHandler) SetVerification(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateVerificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.service.SetVerification(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set verification")
		return
	}

	utils.ResponseSuccess(w, "Verification status updated successfully", customer)
}

// UpdateLoyalty handles PATCH /api/admin/customers/{id}/loyalty
func (h *CustomerHandler) UpdateLoyalty(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateLoyaltyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.UpdateLoyalty(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update loyalty points")
		return
	}

	utils.ResponseSuccess(w, "Loyalty points updated successfully", result)
}

// Delete handles DELETE /api/admin/customers/{id} - profile only, user retained
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete customer")
		return
	}

	utils.ResponseSuccess(w, "Customer details deleted successfully. User account retained.", nil)
}

// Stats handles GET /api/admin/customers/stats
func (h *CustomerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get customer stats")
		return
	}

	utils.ResponseSuccess(w, "Customer statistics retrieved successfully", stats)
}
