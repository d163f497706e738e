package postgresadapter

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/internal/shared/identity"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return NewRepository(db, nil), mock
}

var accountColumns = []string{"account_id", "email", "name", "photo_url", "role", "created_at", "updated_at"}

func TestInsertAccountIfAbsentUsesOnConflictDoNothing(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO "accounts" .*ON CONFLICT \("email"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow("stu-1", "stu@x.com", "Original", "", "student", now, now))

	account, created, err := repo.InsertAccountIfAbsent(context.Background(), entities.Account{
		AccountID: "stu-1",
		Email:     "STU@x.com",
		Name:      "Replay",
		Role:      identity.RoleStudent,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Original", account.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAccountIfAbsentCreates(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`INSERT INTO "accounts" .*ON CONFLICT \("email"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	account, created, err := repo.InsertAccountIfAbsent(context.Background(), entities.Account{
		AccountID: "stu-1",
		Email:     "stu@x.com",
		Name:      "Stu",
		Role:      identity.RoleStudent,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, identity.RoleStudent, account.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNonAdminAccountRefusesAdmin(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "accounts" WHERE account_id = $1 AND role <> $2`)).
		WithArgs("admin-1", "admin").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE account_id = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow("admin-1", "admin@x.com", "Admin", "", "admin", now, now))

	err := repo.DeleteNonAdminAccount(context.Background(), "admin-1")
	assert.ErrorIs(t, err, domainerrors.ErrAdminDeletion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNonAdminAccountNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "accounts"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE account_id = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	err := repo.DeleteNonAdminAccount(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
