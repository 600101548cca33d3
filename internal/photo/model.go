package photo

import (
	"net/http"
	"time"

	"github.com/parth1928/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "photo not found")
	ErrVenueNotFound    = apperror.New(http.StatusNotFound, "venue not found")
	ErrNotImage         = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrTooLarge         = apperror.New(http.StatusBadRequest, "uploaded file exceeds the size limit")
	ErrThumbnailMissing = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "not the owner of this venue")
)

// Photo is an image attached to a venue, stored on disk with a
// pre-generated thumbnail.
type Photo struct {
	ID            string    `json:"id"`
	VenueID       string    `json:"venue_id"`
	UploaderID    string    `json:"uploader_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// URL returns the public URL for the full-size image.
func URL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public URL for the thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
