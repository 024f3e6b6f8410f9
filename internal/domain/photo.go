package domain

import "time"

// DamagePhoto is a photo attached to a rental during the return damage
// report. The file itself lives in storage under StorageKey; the row is the
// index entry.
type DamagePhoto struct {
	ID          int64     `json:"id"`
	RentalID    int64     `json:"rental_id"`
	FileName    string    `json:"file_name"`
	StorageKey  string    `json:"storage_key"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `json:"content_type"`
	UploadedBy  int64     `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}
