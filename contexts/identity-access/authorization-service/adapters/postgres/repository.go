package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholarstream/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "scholarstream/contexts/identity-access/authorization-service/domain/errors"
	"scholarstream/internal/shared/identity"
)

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

func (r *Repository) InsertAccountIfAbsent(ctx context.Context, account entities.Account) (entities.Account, bool, error) {
	row := accountModelFromEntity(account)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(&row)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return entities.Account{}, false, fmt.Errorf("%w: account id already registered", domainerrors.ErrInvalidInput)
		}
		return entities.Account{}, false, result.Error
	}
	if result.RowsAffected == 1 {
		return row.toEntity(), true, nil
	}

	existing, err := r.GetAccountByEmail(ctx, row.Email)
	if err != nil {
		return entities.Account{}, false, err
	}
	return existing, false, nil
}

func (r *Repository) GetAccount(ctx context.Context, accountID string) (entities.Account, error) {
	return r.first(ctx, "account_id = ?", strings.TrimSpace(accountID))
}

func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (entities.Account, error) {
	return r.first(ctx, "email = ?", identity.NormalizeEmail(email))
}

func (r *Repository) UpdateRole(ctx context.Context, accountID string, role identity.Role, updatedAt time.Time) (entities.Account, error) {
	result := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("account_id = ?", strings.TrimSpace(accountID)).
		Updates(map[string]any{
			"role":       string(role),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.Account{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return r.GetAccount(ctx, accountID)
}

func (r *Repository) DeleteNonAdminAccount(ctx context.Context, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("role <> ?", string(identity.RoleAdmin)).
		Delete(&accountModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := r.GetAccount(ctx, accountID); err != nil {
		return err
	}
	r.logger.Warn("admin account deletion refused",
		"event", "authz_admin_delete_refused",
		"module", "identity-access/authorization-service",
		"layer", "adapter",
		"account_id", accountID,
	)
	return domainerrors.ErrAdminDeletion
}

func (r *Repository) first(ctx context.Context, query string, arg string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

type accountModel struct {
	AccountID string    `gorm:"column:account_id;primaryKey"`
	Email     string    `gorm:"column:email"`
	Name      string    `gorm:"column:name"`
	PhotoURL  string    `gorm:"column:photo_url"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (accountModel) TableName() string {
	return "accounts"
}

func accountModelFromEntity(item entities.Account) accountModel {
	return accountModel{
		AccountID: strings.TrimSpace(item.AccountID),
		Email:     identity.NormalizeEmail(item.Email),
		Name:      strings.TrimSpace(item.Name),
		PhotoURL:  strings.TrimSpace(item.PhotoURL),
		Role:      string(item.Role),
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func (m accountModel) toEntity() entities.Account {
	return entities.Account{
		AccountID: m.AccountID,
		Email:     m.Email,
		Name:      m.Name,
		PhotoURL:  m.PhotoURL,
		Role:      identity.Role(m.Role),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
