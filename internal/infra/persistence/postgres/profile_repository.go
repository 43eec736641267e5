package postgres

import (
	"context"

	"lazycook/internal/domain/entity"
	domainerrors "lazycook/internal/domain/errors"
	"lazycook/internal/domain/repository"
	"lazycook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile row bound to its account.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		ID:        profile.ID,
		Name:      profile.Name,
		AccountID: profile.AccountID,
	}
	if profileM.ID == uuid.Nil {
		profileM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileNameTaken.WrapMessage("display name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("profile references missing account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// FindByAccountID retrieves the profile owned by the given account.
func (repo *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by account id")
	}

	return &entity.Profile{
		ID:        profileM.ID,
		Name:      profileM.Name,
		AccountID: profileM.AccountID,
		CreatedAt: profileM.CreatedAt,
	}, nil
}
