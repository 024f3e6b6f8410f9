package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/storage"
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type photoService struct {
	photoRepo  repository.DamagePhotoRepository
	rentalRepo repository.RentalRepository
	store      storage.PhotoStore
}

func NewPhotoService(photoRepo repository.DamagePhotoRepository, rentalRepo repository.RentalRepository, store storage.PhotoStore) PhotoService {
	return &photoService{photoRepo: photoRepo, rentalRepo: rentalRepo, store: store}
}

func (s *photoService) AttachDamagePhoto(ctx context.Context, rentalID, uploadedBy int64, fileName, contentType string, data io.Reader) (*domain.DamagePhoto, error) {
	if !allowedPhotoTypes[contentType] {
		return nil, fmt.Errorf("%w: unsupported content type %s", domain.ErrValidation, contentType)
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	// Damage is documented at return time, so only a rental that is out or
	// just back can take photos.
	if rental.Status != domain.RentalStatusActive && rental.Status != domain.RentalStatusReturned {
		return nil, domain.ErrRentalNotActive
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	key := uuid.New().String() + ext
	size, err := s.store.Save(key, data)
	if err != nil {
		return nil, err
	}

	photo := &domain.DamagePhoto{
		RentalID:    rentalID,
		FileName:    fileName,
		StorageKey:  key,
		FileSize:    size,
		ContentType: contentType,
		UploadedBy:  uploadedBy,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// Keep storage and the index in sync when the row insert fails.
		if derr := s.store.Delete(key); derr != nil {
			logger.Warn("orphan photo file left in storage", "key", key, "error", derr)
		}
		return nil, err
	}

	logger.Info("damage photo attached", "rental_id", rentalID, "photo_id", photo.ID)
	return photo, nil
}

func (s *photoService) ListDamagePhotos(ctx context.Context, rentalID int64) ([]domain.DamagePhoto, error) {
	if _, err := s.rentalRepo.GetByID(ctx, rentalID); err != nil {
		return nil, err
	}
	return s.photoRepo.ListByRental(ctx, rentalID)
}

func (s *photoService) OpenDamagePhoto(ctx context.Context, photoID int64) (*domain.DamagePhoto, io.ReadCloser, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, nil, err
	}
	r, err := s.store.Open(photo.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return photo, r, nil
}
