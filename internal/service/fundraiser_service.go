package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/givehub/backend/internal/models"
	"github.com/givehub/backend/pkg/storage"
)

// MaxImageSize mirrors the upload limit the frontend was built against.
const MaxImageSize = 5_000_000

type FundraiserRepository interface {
	Create(fundraiser *models.Fundraiser) error
	GetAll() ([]models.Fundraiser, error)
	GetByID(id uint) (*models.Fundraiser, error)
}

type FundraiserService struct {
	fundraisers FundraiserRepository
	storage     storage.Storage
}

func NewFundraiserService(fundraisers FundraiserRepository, store storage.Storage) *FundraiserService {
	return &FundraiserService{
		fundraisers: fundraisers,
		storage:     store,
	}
}

// Create stores the campaign image and persists the record. The image
// is rejected before anything is written; creatorID comes from the auth
// gate, never from the request body.
func (s *FundraiserService) Create(creatorID uint, req models.FundraiserRequest, image *multipart.FileHeader) (*models.Fundraiser, error) {
	if image == nil {
		return nil, models.ErrImageRequired
	}
	if image.Size > MaxImageSize {
		return nil, models.ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(image.Filename))
	if !isValidImageExt(ext) || !isValidImageType(image.Header.Get("Content-Type")) {
		return nil, models.ErrImageType
	}

	src, err := image.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	key := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	imageURL, err := s.storage.Save(key, src)
	if err != nil {
		return nil, err
	}

	fundraiser := &models.Fundraiser{
		Title:        req.Title,
		Category:     models.FundraiserCategory(req.Category),
		TargetAmount: req.TargetAmount,
		Description:  req.Description,
		ImageURL:     imageURL,
		Status:       models.FundraiserActive,
		CreatorID:    creatorID,
	}

	if err := s.fundraisers.Create(fundraiser); err != nil {
		_ = s.storage.Delete(key)
		return nil, err
	}

	return fundraiser, nil
}

func (s *FundraiserService) List() ([]models.Fundraiser, error) {
	return s.fundraisers.GetAll()
}

func (s *FundraiserService) GetByID(id uint) (*models.Fundraiser, error) {
	return s.fundraisers.GetByID(id)
}

func isValidImageExt(ext string) bool {
	switch ext {
	case ".jpeg", ".jpg", ".png", ".gif":
		return true
	}
	return false
}

func isValidImageType(mimeType string) bool {
	switch mimeType {
	// image/jpg is nonstandard but some clients send it.
	case "image/jpeg", "image/jpg", "image/png", "image/gif":
		return true
	}
	return false
}
