// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByUsername retrieves the credential with the given unique username.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error) {
	var adminM model.AdminCredentialModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return toAdminDomain(&adminM), nil
}

// Create persists a new credential row. Passwords arrive already hashed.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.AdminCredential) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("username already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin credential")
	}

	admin.ID = adminM.ID
	admin.IsActive = adminM.IsActive
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// Count returns the total number of credential rows.
func (repo *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AdminCredentialModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count admin credentials")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminCredentialModel to a domain AdminCredential entity.
func toAdminDomain(data *model.AdminCredentialModel) *entity.AdminCredential {
	if data == nil {
		return nil
	}

	return &entity.AdminCredential{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAdminDomain converts a domain AdminCredential entity to a GORM AdminCredentialModel.
func fromAdminDomain(data *entity.AdminCredential) *model.AdminCredentialModel {
	if data == nil {
		return nil
	}

	return &model.AdminCredentialModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
	}
}
