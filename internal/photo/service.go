package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/parth1928/quickcourt-backend/internal/pkg/storage"
	"github.com/parth1928/quickcourt-backend/internal/venue"
)

// maxUploadBytes caps venue photo uploads at 10 MiB.
const maxUploadBytes = 10 << 20

const (
	thumbnailWidth  = 400
	thumbnailHeight = 300
)

type Service interface {
	Upload(ctx context.Context, venueID, uploaderID string, header *multipart.FileHeader) (*Photo, error)
	ListByVenue(ctx context.Context, venueID string) ([]Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id, requesterID string, isAdmin bool) error
}

type service struct {
	repo         Repository
	venueService venue.Service
	storage      storage.Storage
	imgProc      *storage.ImageProcessor
}

func NewService(repo Repository, venueService venue.Service, store storage.Storage) Service {
	return &service{
		repo:         repo,
		venueService: venueService,
		storage:      store,
		imgProc:      storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, venueID, uploaderID string, header *multipart.FileHeader) (*Photo, error) {
	if err := s.requireOwnership(ctx, venueID, uploaderID); err != nil {
		return nil, err
	}
	if header.Size > maxUploadBytes {
		return nil, ErrTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffered so the content can be read twice: once for the original,
	// once for the thumbnail. Uploads are capped to image sizes.
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	// Sharded path: venues/<venueID>/ab/<uuid>.ext
	shard := photoID[:2]
	storagePath := fmt.Sprintf("venues/%s/%s/%s%s", venueID, shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(content), thumbnailWidth, thumbnailHeight)
	if err != nil {
		// Undecodable payload claiming to be an image.
		_ = s.storage.Delete(ctx, storagePath)
		return nil, ErrNotImage
	}
	tPath := fmt.Sprintf("venues/%s/%s/%s_thumb.jpg", venueID, shard, photoID)
	if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
		thumbnailPath = &tPath
	}

	p := &Photo{
		ID:            photoID,
		VenueID:       venueID,
		UploaderID:    uploaderID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) ListByVenue(ctx context.Context, venueID string) ([]Photo, error) {
	if _, err := s.venueService.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return s.repo.ListByVenue(ctx, venueID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}
	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.ThumbnailPath == nil {
		return nil, nil, ErrThumbnailMissing
	}
	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}
	return stream, p, nil
}

func (s *service) Delete(ctx context.Context, id, requesterID string, isAdmin bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin {
		if err := s.requireOwnership(ctx, p.VenueID, requesterID); err != nil {
			return err
		}
	}

	// Best-effort storage cleanup, the record is the source of truth.
	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) requireOwnership(ctx context.Context, venueID, userID string) error {
	owned, err := s.venueService.IsOwnedBy(ctx, venueID, userID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return ErrVenueNotFound
		}
		return err
	}
	if !owned {
		return ErrPermissionDenied
	}
	return nil
}
