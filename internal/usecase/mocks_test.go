package usecase

import (
	"context"
	"time"

	"rental-admin/internal/data/entity"
	"rental-admin/internal/data/repository"
	"rental-admin/internal/rules"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. They keep just enough
// behavior for the service tests: storage by id and filter-free listing.

type mockUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMockUserRepo(users ...*entity.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range m.users {
		users = append(users, u)
	}
	if offset >= len(users) {
		return nil, nil
	}
	return users[offset:], nil
}

func (m *mockUserRepo) CountAll(ctx context.Context, filter repository.UserFilter) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

type mockCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newMockCustomerRepo(customers ...*entity.Customer) *mockCustomerRepo {
	m := &mockCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		m.customers[c.UserID] = c
	}
	return m
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	m.customers[customer.UserID] = customer
	return nil
}

func (m *mockCustomerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	return m.customers[userID], nil
}

// matchesFilter mirrors the repository's WHERE clause, including the
// license-status date predicate.
func matchesFilter(c *entity.Customer, filter repository.CustomerFilter) bool {
	if filter.AccountStatus != nil && c.AccountStatus != *filter.AccountStatus {
		return false
	}
	if filter.VerificationStatus != nil && c.VerificationStatus != *filter.VerificationStatus {
		return false
	}
	if filter.LicenseStatus != "" && rules.ClassifyLicense(c.LicenseExpiry, time.Now()).Status != filter.LicenseStatus {
		return false
	}
	return true
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	var customers []*entity.Customer
	for _, c := range m.customers {
		if matchesFilter(c, filter) {
			customers = append(customers, c)
		}
	}
	if offset >= len(customers) {
		return nil, nil
	}
	customers = customers[offset:]
	if limit > 0 && len(customers) > limit {
		customers = customers[:limit]
	}
	return customers, nil
}

func (m *mockCustomerRepo) CountAll(ctx context.Context, filter repository.CustomerFilter) (int64, error) {
	var count int64
	for _, c := range m.customers {
		if matchesFilter(c, filter) {
			count++
		}
	}
	return count, nil
}

func (m *mockCustomerRepo) UpdateDetails(ctx context.Context, customer *entity.Customer) error {
	m.customers[customer.UserID] = customer
	return nil
}

func (m *mockCustomerRepo) UpdateAccountStatus(ctx context.Context, userID uuid.UUID, status entity.AccountStatus, updatedAt time.Time) error {
	m.customers[userID].AccountStatus = status
	m.customers[userID].UpdatedAt = updatedAt
	return nil
}

func (m *mockCustomerRepo) UpdateVerification(ctx context.Context, userID uuid.UUID, status entity.VerificationStatus, notes *string, updatedAt time.Time) error {
	m.customers[userID].VerificationStatus = status
	m.customers[userID].VerificationNotes = notes
	m.customers[userID].UpdatedAt = updatedAt
	return nil
}

func (m *mockCustomerRepo) UpdateLoyaltyPoints(ctx context.Context, userID uuid.UUID, points int, updatedAt time.Time) error {
	m.customers[userID].LoyaltyPoints = points
	m.customers[userID].UpdatedAt = updatedAt
	return nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	delete(m.customers, userID)
	return nil
}

type mockAuditRepo struct {
	entries []*entity.AuditEntry
}

func (m *mockAuditRepo) Create(ctx context.Context, entry *entity.AuditEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditRepo) FindAll(ctx context.Context, entityType string, limit, offset int) ([]*entity.AuditEntry, error) {
	var entries []*entity.AuditEntry
	for _, e := range m.entries {
		if entityType == "" || e.EntityType == entityType {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *mockAuditRepo) CountAll(ctx context.Context, entityType string) (int64, error) {
	entries, _ := m.FindAll(ctx, entityType, 0, 0)
	return int64(len(entries)), nil
}
