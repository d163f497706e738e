package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/ports"
)

// applicationKey matches the applications_scholarship_user_key unique index.
var applicationKey = []clause.Column{{Name: "scholarship_id"}, {Name: "user_id"}}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetApplication(ctx context.Context, applicationID string) (entities.Application, error) {
	return r.first(r.db.WithContext(ctx).Where("application_id = ?", strings.TrimSpace(applicationID)))
}

func (r *Repository) FindApplication(ctx context.Context, scholarshipID string, userID string) (entities.Application, error) {
	return r.first(r.db.WithContext(ctx).
		Where("scholarship_id = ?", strings.TrimSpace(scholarshipID)).
		Where("user_id = ?", strings.TrimSpace(userID)))
}

func (r *Repository) ListApplications(ctx context.Context, filter ports.ApplicationFilter) ([]entities.Application, error) {
	tx := r.db.WithContext(ctx).Model(&applicationModel{})
	if email := strings.ToLower(strings.TrimSpace(filter.UserEmail)); email != "" {
		tx = tx.Where("user_email = ?", email)
	}
	if filter.Status != "" {
		tx = tx.Where("application_status = ?", string(filter.Status))
	}

	var rows []applicationModel
	if err := tx.Order("application_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Application, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// UpsertPaid is a single INSERT ... ON CONFLICT DO UPDATE. The conflict branch
// mirrors services.MergePaid: payment date survives a replay of the same
// transaction and only a pending record moves to submitted.
func (r *Repository) UpsertPaid(ctx context.Context, paid entities.Application) (entities.Application, error) {
	row := applicationModelFromEntity(paid)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: applicationKey,
			DoUpdates: clause.Assignments(map[string]any{
				"payment_status": string(entities.PaymentStatusPaid),
				"application_status": gorm.Expr(
					"CASE WHEN applications.application_status = ? THEN EXCLUDED.application_status ELSE applications.application_status END",
					string(entities.ApplicationStatusPending),
				),
				"payment_date": gorm.Expr(
					"CASE WHEN applications.transaction_id = EXCLUDED.transaction_id AND applications.payment_date IS NOT NULL THEN applications.payment_date ELSE EXCLUDED.payment_date END",
				),
				"transaction_id":       gorm.Expr("EXCLUDED.transaction_id"),
				"checkout_session_id":  gorm.Expr("EXCLUDED.checkout_session_id"),
				"user_email":           gorm.Expr("EXCLUDED.user_email"),
				"university_name":      gorm.Expr("EXCLUDED.university_name"),
				"scholarship_category": gorm.Expr("EXCLUDED.scholarship_category"),
				"degree":               gorm.Expr("EXCLUDED.degree"),
				"application_fees":     gorm.Expr("EXCLUDED.application_fees"),
				"service_charge":       gorm.Expr("EXCLUDED.service_charge"),
				"updated_at":           gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return entities.Application{}, err
	}
	return r.FindApplication(ctx, row.ScholarshipID, row.UserID)
}

func (r *Repository) InsertPendingIfAbsent(ctx context.Context, pending entities.Application) (entities.Application, bool, error) {
	row := applicationModelFromEntity(pending)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   applicationKey,
			DoNothing: true,
		}).
		Create(&row)
	if result.Error != nil {
		return entities.Application{}, false, result.Error
	}
	if result.RowsAffected == 1 {
		return row.toEntity(), true, nil
	}

	existing, err := r.FindApplication(ctx, row.ScholarshipID, row.UserID)
	if err != nil {
		return entities.Application{}, false, err
	}
	return existing, false, nil
}

func (r *Repository) UpdatePendingDetails(
	ctx context.Context,
	applicationID string,
	details entities.ApplicantDetails,
	updatedAt time.Time,
) (entities.Application, error) {
	applicationID = strings.TrimSpace(applicationID)
	result := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("application_id = ?", applicationID).
		Where("application_status = ?", string(entities.ApplicationStatusPending)).
		Updates(map[string]any{
			"applicant_phone":   details.Phone,
			"applicant_address": details.Address,
			"applicant_gender":  details.Gender,
			"ssc_result":        details.SSCResult,
			"hsc_result":        details.HSCResult,
			"study_gap":         details.StudyGap,
			"updated_at":        updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.Application{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Application{}, r.missingOr(ctx, applicationID, domainerrors.ErrApplicationLocked)
	}
	return r.GetApplication(ctx, applicationID)
}

func (r *Repository) DeletePending(ctx context.Context, applicationID string) error {
	applicationID = strings.TrimSpace(applicationID)
	result := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Where("application_status = ?", string(entities.ApplicationStatusPending)).
		Delete(&applicationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOr(ctx, applicationID, domainerrors.ErrApplicationLocked)
	}
	return nil
}

func (r *Repository) UpdateStatus(
	ctx context.Context,
	applicationID string,
	from entities.ApplicationStatus,
	to entities.ApplicationStatus,
	updatedAt time.Time,
) (entities.Application, error) {
	applicationID = strings.TrimSpace(applicationID)
	result := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("application_id = ?", applicationID).
		Where("application_status = ?", string(from)).
		Updates(map[string]any{
			"application_status": string(to),
			"updated_at":         updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.Application{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Application{}, r.missingOr(ctx, applicationID,
			fmt.Errorf("%w: status changed concurrently", domainerrors.ErrInvalidStatusTransition))
	}
	return r.GetApplication(ctx, applicationID)
}

func (r *Repository) UpdateFeedback(ctx context.Context, applicationID string, feedback string, updatedAt time.Time) (entities.Application, error) {
	applicationID = strings.TrimSpace(applicationID)
	result := r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("application_id = ?", applicationID).
		Updates(map[string]any{
			"feedback":   feedback,
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.Application{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return r.GetApplication(ctx, applicationID)
}

// GetScholarship implements ports.ScholarshipReader from the catalog table.
func (r *Repository) GetScholarship(ctx context.Context, scholarshipID string) (entities.ScholarshipSnapshot, error) {
	var row scholarshipProjectionModel
	if err := r.db.WithContext(ctx).
		Where("scholarship_id = ?", strings.TrimSpace(scholarshipID)).
		First(&row).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ScholarshipSnapshot{}, domainerrors.ErrScholarshipNotFound
		}
		return entities.ScholarshipSnapshot{}, err
	}
	return entities.ScholarshipSnapshot{
		ScholarshipID:       row.ScholarshipID,
		ScholarshipName:     row.ScholarshipName,
		UniversityName:      row.UniversityName,
		UniversityCountry:   row.UniversityCountry,
		UniversityCity:      row.UniversityCity,
		ScholarshipCategory: row.ScholarshipCategory,
		SubjectCategory:     row.SubjectCategory,
		Degree:              row.Degree,
		ApplicationFees:     row.ApplicationFees,
		ServiceCharge:       row.ServiceCharge,
		ApplicationDeadline: row.ApplicationDeadline,
	}, nil
}

// missingOr distinguishes "no such row" from "row exists but the guarded
// condition did not hold" after a conditional write touched nothing.
func (r *Repository) missingOr(ctx context.Context, applicationID string, conflict error) error {
	if _, err := r.GetApplication(ctx, applicationID); err != nil {
		return err
	}
	r.logger.Debug("conditional application write skipped",
		"event", "application_conditional_write_skipped",
		"module", "admissions/application-service",
		"layer", "adapter",
		"application_id", applicationID,
	)
	return conflict
}

func (r *Repository) first(tx *gorm.DB) (entities.Application, error) {
	var row applicationModel
	if err := tx.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, domainerrors.ErrApplicationNotFound
		}
		return entities.Application{}, err
	}
	return row.toEntity(), nil
}

type applicationModel struct {
	ApplicationID       string     `gorm:"column:application_id;primaryKey"`
	ScholarshipID       string     `gorm:"column:scholarship_id"`
	UserID              string     `gorm:"column:user_id"`
	UserEmail           string     `gorm:"column:user_email"`
	UserName            string     `gorm:"column:user_name"`
	UniversityName      string     `gorm:"column:university_name"`
	ScholarshipCategory string     `gorm:"column:scholarship_category"`
	Degree              string     `gorm:"column:degree"`
	ApplicationFees     float64    `gorm:"column:application_fees"`
	ServiceCharge       float64    `gorm:"column:service_charge"`
	PaymentStatus       string     `gorm:"column:payment_status"`
	ApplicationStatus   string     `gorm:"column:application_status"`
	Feedback            string     `gorm:"column:feedback"`
	ApplicantPhone      string     `gorm:"column:applicant_phone"`
	ApplicantAddress    string     `gorm:"column:applicant_address"`
	ApplicantGender     string     `gorm:"column:applicant_gender"`
	SSCResult           string     `gorm:"column:ssc_result"`
	HSCResult           string     `gorm:"column:hsc_result"`
	StudyGap            string     `gorm:"column:study_gap"`
	ApplicationDate     time.Time  `gorm:"column:application_date"`
	PaymentDate         *time.Time `gorm:"column:payment_date"`
	TransactionID       string     `gorm:"column:transaction_id"`
	CheckoutSessionID   string     `gorm:"column:checkout_session_id"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (applicationModel) TableName() string {
	return "applications"
}

func applicationModelFromEntity(item entities.Application) applicationModel {
	return applicationModel{
		ApplicationID:       strings.TrimSpace(item.ApplicationID),
		ScholarshipID:       strings.TrimSpace(item.ScholarshipID),
		UserID:              strings.TrimSpace(item.UserID),
		UserEmail:           strings.ToLower(strings.TrimSpace(item.UserEmail)),
		UserName:            strings.TrimSpace(item.UserName),
		UniversityName:      item.UniversityName,
		ScholarshipCategory: item.ScholarshipCategory,
		Degree:              item.Degree,
		ApplicationFees:     item.ApplicationFees,
		ServiceCharge:       item.ServiceCharge,
		PaymentStatus:       string(item.PaymentStatus),
		ApplicationStatus:   string(item.ApplicationStatus),
		Feedback:            item.Feedback,
		ApplicantPhone:      item.Applicant.Phone,
		ApplicantAddress:    item.Applicant.Address,
		ApplicantGender:     item.Applicant.Gender,
		SSCResult:           item.Applicant.SSCResult,
		HSCResult:           item.Applicant.HSCResult,
		StudyGap:            item.Applicant.StudyGap,
		ApplicationDate:     item.ApplicationDate.UTC(),
		PaymentDate:         normalizeOptionalTime(item.PaymentDate),
		TransactionID:       item.TransactionID,
		CheckoutSessionID:   item.CheckoutSessionID,
		UpdatedAt:           item.UpdatedAt.UTC(),
	}
}

func (m applicationModel) toEntity() entities.Application {
	return entities.Application{
		ApplicationID:       m.ApplicationID,
		ScholarshipID:       m.ScholarshipID,
		UserID:              m.UserID,
		UserEmail:           m.UserEmail,
		UserName:            m.UserName,
		UniversityName:      m.UniversityName,
		ScholarshipCategory: m.ScholarshipCategory,
		Degree:              m.Degree,
		ApplicationFees:     m.ApplicationFees,
		ServiceCharge:       m.ServiceCharge,
		PaymentStatus:       entities.PaymentStatus(m.PaymentStatus),
		ApplicationStatus:   entities.ApplicationStatus(m.ApplicationStatus),
		Feedback:            m.Feedback,
		Applicant: entities.ApplicantDetails{
			Phone:     m.ApplicantPhone,
			Address:   m.ApplicantAddress,
			Gender:    m.ApplicantGender,
			SSCResult: m.SSCResult,
			HSCResult: m.HSCResult,
			StudyGap:  m.StudyGap,
		},
		ApplicationDate:   m.ApplicationDate.UTC(),
		PaymentDate:       normalizeOptionalTime(m.PaymentDate),
		TransactionID:     m.TransactionID,
		CheckoutSessionID: m.CheckoutSessionID,
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

type scholarshipProjectionModel struct {
	ScholarshipID       string     `gorm:"column:scholarship_id;primaryKey"`
	ScholarshipName     string     `gorm:"column:scholarship_name"`
	UniversityName      string     `gorm:"column:university_name"`
	UniversityCountry   string     `gorm:"column:university_country"`
	UniversityCity      string     `gorm:"column:university_city"`
	ScholarshipCategory string     `gorm:"column:scholarship_category"`
	SubjectCategory     string     `gorm:"column:subject_category"`
	Degree              string     `gorm:"column:degree"`
	ApplicationFees     float64    `gorm:"column:application_fees"`
	ServiceCharge       float64    `gorm:"column:service_charge"`
	ApplicationDeadline *time.Time `gorm:"column:application_deadline"`
}

func (scholarshipProjectionModel) TableName() string {
	return "scholarships"
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

// UUIDGenerator implements ports.IDGenerator using RFC 4122 UUID v4 values.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// SystemClock implements ports.Clock using wall-clock UTC time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
