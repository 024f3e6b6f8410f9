package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const photoColumns = `id, rental_id, file_name, storage_key, file_size, content_type, uploaded_by, created_at`

type damagePhotoRepository struct {
	db *sql.DB
}

func NewDamagePhotoRepository(db *sql.DB) repository.DamagePhotoRepository {
	return &damagePhotoRepository{db: db}
}

func (r *damagePhotoRepository) Create(ctx context.Context, p *domain.DamagePhoto) error {
	query := `INSERT INTO damage_photos (rental_id, file_name, storage_key, file_size, content_type, uploaded_by, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.RentalID, p.FileName, p.StorageKey, p.FileSize, p.ContentType, p.UploadedBy, time.Now()).Scan(&p.ID)
}

func (r *damagePhotoRepository) GetByID(ctx context.Context, id int64) (*domain.DamagePhoto, error) {
	p := &domain.DamagePhoto{}
	query := `SELECT ` + photoColumns + ` FROM damage_photos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.RentalID, &p.FileName, &p.StorageKey, &p.FileSize, &p.ContentType, &p.UploadedBy, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *damagePhotoRepository) ListByRental(ctx context.Context, rentalID int64) ([]domain.DamagePhoto, error) {
	query := `SELECT ` + photoColumns + ` FROM damage_photos WHERE rental_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.DamagePhoto
	for rows.Next() {
		var p domain.DamagePhoto
		if err := rows.Scan(&p.ID, &p.RentalID, &p.FileName, &p.StorageKey, &p.FileSize, &p.ContentType, &p.UploadedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
