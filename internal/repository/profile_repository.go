package repository

import (
	"github.com/lshigami/StudyForge/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByUserID(userID uint) (*model.Profile, error)
	Upsert(profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(profile *model.Profile) error {
	var existing model.Profile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
