package service

import (
	"github.com/givehub/backend/internal/models"
)

type DonationRepository interface {
	Create(donation *models.Donation) error
	Update(donation *models.Donation) error
	GetAll() ([]models.Donation, error)
	GetByID(id uint) (*models.Donation, error)
}

type DonationService struct {
	donations DonationRepository
}

func NewDonationService(donations DonationRepository) *DonationService {
	return &DonationService{donations: donations}
}

// Create records the donation as pending and immediately completes it.
// There is no payment gateway: this is an always-succeeds intake, not a
// financial transaction. The failed status stays reserved for a future
// gateway.
func (s *DonationService) Create(donorID uint, req models.DonationRequest) (*models.Donation, error) {
	donation := &models.Donation{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Amount: req.Amount,
		Status: models.DonationPending,
		UserID: donorID,
	}

	if err := s.donations.Create(donation); err != nil {
		return nil, err
	}

	donation.Status = models.DonationCompleted
	if err := s.donations.Update(donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// List returns every donation with its donor. Any authenticated caller
// sees all of them; scoping to the caller would be a product decision.
func (s *DonationService) List() ([]models.Donation, error) {
	return s.donations.GetAll()
}

func (s *DonationService) GetByID(id uint) (*models.Donation, error) {
	return s.donations.GetByID(id)
}
