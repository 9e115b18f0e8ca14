package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/givehub/backend/internal/models"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

func (r *DonationRepository) Update(donation *models.Donation) error {
	return r.db.Save(donation).Error
}

func (r *DonationRepository) GetAll() ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Preload("Donor").Find(&donations).Error
	return donations, err
}

func (r *DonationRepository) GetByID(id uint) (*models.Donation, error) {
	var donation models.Donation
	if err := r.db.Preload("Donor").First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}
