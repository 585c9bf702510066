package models

import (
	"time"

	"github.com/google/uuid"
)

// Track is the metadata record of an uploaded audio or video file.
// The file bytes themselves live in the content store under the track ID;
// only the descriptive metadata is persisted in the record store.
type Track struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"-"`
	Name     string    `json:"name"`
	FileName string    `json:"fileName"`

	// MimeType is the declared content type of the uploaded file
	// (e.g. "audio/mpeg"). Informational; playback is the client's concern.
	MimeType string `json:"type"`

	SizeBytes int64     `json:"size"`
	AddedAt   time.Time `json:"addedAt"`
}

func (t Track) TableName() string {
	return "tracks"
}
