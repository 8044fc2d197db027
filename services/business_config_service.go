package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/kendall-kelly/blinds-quote-api/models"
	"github.com/kendall-kelly/blinds-quote-api/utils"
)

// BusinessConfigService manages the letterhead and its logo
type BusinessConfigService struct {
	configs BusinessConfigRepository
}

// NewBusinessConfigService creates a letterhead service
func NewBusinessConfigService(configs BusinessConfigRepository) *BusinessConfigService {
	return &BusinessConfigService{configs: configs}
}

// Get returns the current letterhead
func (s *BusinessConfigService) Get(ctx context.Context) (*models.BusinessConfig, error) {
	return s.configs.Get(ctx)
}

// Update applies a partial update. An empty logo string removes the logo;
// any other value must decode to a PNG or JPEG image.
func (s *BusinessConfigService) Update(ctx context.Context, patch models.BusinessConfigPatch) (*models.BusinessConfig, error) {
	if patch.LogoBase64 != nil && *patch.LogoBase64 != "" {
		if _, _, err := utils.DecodeLogoBase64(*patch.LogoBase64); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLogo, err)
		}
	}

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	patch.Apply(cfg)
	if cfg.LogoBase64 != nil && *cfg.LogoBase64 == "" {
		cfg.LogoBase64 = nil
	}
	if err := s.configs.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadLogo validates an uploaded image and stores it in the letterhead
func (s *BusinessConfigService) UploadLogo(ctx context.Context, fileHeader *multipart.FileHeader) (*models.BusinessConfig, error) {
	data, _, err := utils.ReadLogoFile(fileHeader)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	encoded := utils.EncodeLogoBase64(data)
	cfg.LogoBase64 = &encoded
	if err := s.configs.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Logo returns the decoded logo and its MIME type
func (s *BusinessConfigService) Logo(ctx context.Context) ([]byte, string, error) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	if cfg.LogoBase64 == nil || *cfg.LogoBase64 == "" {
		return nil, "", fmt.Errorf("logo: %w", ErrNotFound)
	}
	data, format, err := utils.DecodeLogoBase64(*cfg.LogoBase64)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidLogo, err)
	}
	return data, utils.LogoContentType(format), nil
}
