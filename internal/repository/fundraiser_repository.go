package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/givehub/backend/internal/models"
)

type FundraiserRepository struct {
	db *gorm.DB
}

func NewFundraiserRepository(db *gorm.DB) *FundraiserRepository {
	return &FundraiserRepository{db: db}
}

func (r *FundraiserRepository) Create(fundraiser *models.Fundraiser) error {
	return r.db.Create(fundraiser).Error
}

func (r *FundraiserRepository) GetAll() ([]models.Fundraiser, error) {
	var fundraisers []models.Fundraiser
	err := r.db.Preload("Creator").Find(&fundraisers).Error
	return fundraisers, err
}

func (r *FundraiserRepository) GetByID(id uint) (*models.Fundraiser, error) {
	var fundraiser models.Fundraiser
	if err := r.db.Preload("Creator").First(&fundraiser, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrFundraiserNotFound
		}
		return nil, err
	}
	return &fundraiser, nil
}
