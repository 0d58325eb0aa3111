package repository

import (
	"context"
	"testing"
	"time"

	"rental-admin/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userRows = []string{
	"id", "username", "email", "password", "phone", "address", "role",
	"is_active", "is_email_verified", "is_phone_verified", "mfa_enabled",
	"failed_login_attempts", "lockout_end", "last_login", "password_changed_at",
	"created_at", "updated_at", "deleted_at",
}

func addUserRow(rows *pgxmock.Rows, id uuid.UUID, now time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, "jdoe", "jdoe@example.com", "hashed", nil, nil, entity.RoleAgent,
		true, true, false, false,
		0, nil, nil, now,
		now, now, nil,
	)
}

func TestUserRepository_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM\s+users\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(addUserRow(pgxmock.NewRows(userRows), id, now))

	user, err := repo.FindByID(context.Background(), id)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, entity.RoleAgent, user.Role)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM\s+users\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), id)

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:          "jdoe",
		Email:             "jdoe@example.com",
		PasswordHash:      "hashed",
		Role:              entity.RoleCustomer,
		IsActive:          true,
		PasswordChangedAt: now,
	}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash,
			user.Phone, user.Address, user.Role, user.IsActive,
			user.IsEmailVerified, user.IsPhoneVerified, user.MFAEnabled,
			user.FailedLoginAttempts, user.LockoutEnd, user.LastLogin,
			user.PasswordChangedAt, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	id := uuid.New()
	mock.ExpectExec(`UPDATE users SET deleted_at = NOW\(\)`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	id := uuid.New()
	mock.ExpectExec(`UPDATE users SET deleted_at = NOW\(\)`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Delete(context.Background(), id)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CountAll_WithRoleFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	role := entity.RoleAdmin
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE deleted_at IS NULL AND role = \$1`).
		WithArgs(role).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountAll(context.Background(), UserFilter{Role: &role})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll_LockedFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	locked := true
	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM\s+users\s+WHERE deleted_at IS NULL AND lockout_end IS NOT NULL AND lockout_end > NOW\(\)`).
		WithArgs(10, 0).
		WillReturnRows(addUserRow(pgxmock.NewRows(userRows), id, now))

	users, err := repo.FindAll(context.Background(), UserFilter{Locked: &locked}, 10, 0)

	assert.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
