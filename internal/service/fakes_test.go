package service

import (
	"github.com/givehub/backend/internal/models"
)

type fakeUserRepo struct {
	nextID uint
	users  map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakeFundraiserRepo struct {
	nextID      uint
	fundraisers []models.Fundraiser
	createErr   error
}

func (f *fakeFundraiserRepo) Create(fundraiser *models.Fundraiser) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	fundraiser.ID = f.nextID
	f.fundraisers = append(f.fundraisers, *fundraiser)
	return nil
}

func (f *fakeFundraiserRepo) GetAll() ([]models.Fundraiser, error) {
	return f.fundraisers, nil
}

func (f *fakeFundraiserRepo) GetByID(id uint) (*models.Fundraiser, error) {
	for i := range f.fundraisers {
		if f.fundraisers[i].ID == id {
			return &f.fundraisers[i], nil
		}
	}
	return nil, models.ErrFundraiserNotFound
}

type fakeDonationRepo struct {
	nextID    uint
	donations []models.Donation
	// statusAtCreate records what status each donation carried on its
	// first write.
	statusAtCreate []models.DonationStatus
}

func (f *fakeDonationRepo) Create(donation *models.Donation) error {
	f.nextID++
	donation.ID = f.nextID
	f.statusAtCreate = append(f.statusAtCreate, donation.Status)
	f.donations = append(f.donations, *donation)
	return nil
}

func (f *fakeDonationRepo) Update(donation *models.Donation) error {
	for i := range f.donations {
		if f.donations[i].ID == donation.ID {
			f.donations[i] = *donation
			return nil
		}
	}
	return models.ErrDonationNotFound
}

func (f *fakeDonationRepo) GetAll() ([]models.Donation, error) {
	return f.donations, nil
}

func (f *fakeDonationRepo) GetByID(id uint) (*models.Donation, error) {
	for i := range f.donations {
		if f.donations[i].ID == id {
			return &f.donations[i], nil
		}
	}
	return nil, models.ErrDonationNotFound
}
