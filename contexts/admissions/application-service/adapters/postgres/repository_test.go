package postgresadapter

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
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

var applicationColumns = []string{
	"application_id", "scholarship_id", "user_id", "user_email", "user_name",
	"university_name", "scholarship_category", "degree", "application_fees", "service_charge",
	"payment_status", "application_status", "feedback",
	"applicant_phone", "applicant_address", "applicant_gender", "ssc_result", "hsc_result", "study_gap",
	"application_date", "payment_date", "transaction_id", "checkout_session_id", "updated_at",
}

func applicationRow(id string, status string, payment string, paidAt any, transactionID string, at time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(applicationColumns).AddRow(
		id, "S", "A", "a@x.com", "Stu",
		"Uni of X", "full fund", "masters", 45.0, 5.0,
		payment, status, "",
		"", "", "", "", "", "",
		at, paidAt, transactionID, "cs_1", at,
	)
}

func paidApplication(now time.Time) entities.Application {
	return entities.Application{
		ApplicationID:     "new-id",
		ScholarshipID:     "S",
		UserID:            "A",
		UserEmail:         "A@x.com",
		PaymentStatus:     entities.PaymentStatusPaid,
		ApplicationStatus: entities.ApplicationStatusSubmitted,
		ApplicationDate:   now,
		PaymentDate:       &now,
		TransactionID:     "pi_123",
		CheckoutSessionID: "cs_1",
		UpdatedAt:         now,
	}
}

func TestUpsertPaidIsSingleConflictUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	mock.ExpectExec(`INSERT INTO "applications" .*ON CONFLICT \("scholarship_id","user_id"\) DO UPDATE SET .*"application_status"=CASE WHEN applications.application_status = .*"payment_date"=CASE WHEN`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "applications" WHERE scholarship_id = $1 AND user_id = $2`)).
		WillReturnRows(applicationRow("existing-id", "submitted", "paid", earlier, "pi_123", earlier))

	stored, err := repo.UpsertPaid(context.Background(), paidApplication(now))
	require.NoError(t, err)
	assert.Equal(t, "existing-id", stored.ApplicationID)
	assert.Equal(t, entities.PaymentStatusPaid, stored.PaymentStatus)
	require.NotNil(t, stored.PaymentDate)
	assert.True(t, stored.PaymentDate.Equal(earlier))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPendingIfAbsentKeepsExistingRecord(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO "applications" .*ON CONFLICT \("scholarship_id","user_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "applications" WHERE scholarship_id = $1 AND user_id = $2`)).
		WillReturnRows(applicationRow("paid-id", "submitted", "paid", now, "pi_123", now))

	pending := paidApplication(now)
	pending.PaymentStatus = entities.PaymentStatusUnpaid
	pending.ApplicationStatus = entities.ApplicationStatusPending
	pending.PaymentDate = nil
	pending.TransactionID = ""

	stored, created, err := repo.InsertPendingIfAbsent(context.Background(), pending)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "paid-id", stored.ApplicationID)
	assert.True(t, stored.IsPaid())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPendingIfAbsentCreates(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()

	mock.ExpectExec(`INSERT INTO "applications" .*ON CONFLICT \("scholarship_id","user_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	pending := paidApplication(now)
	pending.PaymentStatus = entities.PaymentStatusUnpaid
	pending.ApplicationStatus = entities.ApplicationStatusPending
	pending.PaymentDate = nil

	stored, created, err := repo.InsertPendingIfAbsent(context.Background(), pending)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "a@x.com", stored.UserEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePendingRefusesProcessedApplication(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()

	mock.ExpectExec(`DELETE FROM "applications" WHERE application_id = \$1 AND application_status = \$2`).
		WithArgs("app-1", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "applications" WHERE application_id = $1`)).
		WillReturnRows(applicationRow("app-1", "submitted", "paid", now, "pi_1", now))

	err := repo.DeletePending(context.Background(), "app-1")
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationLocked))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidState))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusMissingApplication(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`UPDATE "applications" SET .* WHERE application_id = \$\d+ AND application_status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "applications" WHERE application_id = $1`)).
		WillReturnRows(sqlmock.NewRows(applicationColumns))

	_, err := repo.UpdateStatus(context.Background(), "missing", entities.ApplicationStatusSubmitted, entities.ApplicationStatusProcessing, time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScholarshipMapsNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "scholarships" WHERE scholarship_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"scholarship_id"}))

	_, err := repo.GetScholarship(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrScholarshipNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
