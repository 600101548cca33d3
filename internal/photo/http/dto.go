package http

import (
	"time"

	"github.com/parth1928/quickcourt-backend/internal/photo"
)

type PhotoResponse struct {
	ID           string  `json:"id"`
	VenueID      string  `json:"venue_id"`
	Filename     string  `json:"filename"`
	ContentType  string  `json:"content_type"`
	Size         int64   `json:"size"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	CreatedAt    string  `json:"created_at"`
}

func toPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		VenueID:     p.VenueID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.ThumbnailPath != nil {
		t := photo.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &t
	}
	return resp
}

type UploadPhotoResponse struct {
	Message string        `json:"message"`
	Photo   PhotoResponse `json:"photo"`
}
