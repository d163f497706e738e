package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"scholarstream/contexts/admissions/scholarship-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/scholarship-service/domain/errors"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateScholarship(ctx context.Context, scholarship entities.Scholarship) error {
	row := scholarshipModelFromEntity(scholarship)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) GetScholarship(ctx context.Context, scholarshipID string) (entities.Scholarship, error) {
	var row scholarshipModel
	err := r.db.WithContext(ctx).
		Where("scholarship_id = ?", strings.TrimSpace(scholarshipID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Scholarship{}, domainerrors.ErrScholarshipNotFound
		}
		return entities.Scholarship{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListScholarships(ctx context.Context) ([]entities.Scholarship, error) {
	var rows []scholarshipModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Scholarship, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type scholarshipModel struct {
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
	PostedByEmail       string     `gorm:"column:posted_by_email"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
}

func (scholarshipModel) TableName() string {
	return "scholarships"
}

func scholarshipModelFromEntity(item entities.Scholarship) scholarshipModel {
	var deadline *time.Time
	if item.ApplicationDeadline != nil {
		value := item.ApplicationDeadline.UTC()
		deadline = &value
	}
	return scholarshipModel{
		ScholarshipID:       item.ScholarshipID,
		ScholarshipName:     item.ScholarshipName,
		UniversityName:      item.UniversityName,
		UniversityCountry:   item.UniversityCountry,
		UniversityCity:      item.UniversityCity,
		ScholarshipCategory: item.ScholarshipCategory,
		SubjectCategory:     item.SubjectCategory,
		Degree:              string(item.Degree),
		ApplicationFees:     item.ApplicationFees,
		ServiceCharge:       item.ServiceCharge,
		ApplicationDeadline: deadline,
		PostedByEmail:       item.PostedByEmail,
		CreatedAt:           item.CreatedAt.UTC(),
	}
}

func (m scholarshipModel) toEntity() entities.Scholarship {
	return entities.Scholarship{
		ScholarshipID:       m.ScholarshipID,
		ScholarshipName:     m.ScholarshipName,
		UniversityName:      m.UniversityName,
		UniversityCountry:   m.UniversityCountry,
		UniversityCity:      m.UniversityCity,
		ScholarshipCategory: m.ScholarshipCategory,
		SubjectCategory:     m.SubjectCategory,
		Degree:              entities.Degree(m.Degree),
		ApplicationFees:     m.ApplicationFees,
		ServiceCharge:       m.ServiceCharge,
		ApplicationDeadline: m.ApplicationDeadline,
		PostedByEmail:       m.PostedByEmail,
		CreatedAt:           m.CreatedAt.UTC(),
	}
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
