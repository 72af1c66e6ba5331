package service

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/config"
	"tweetfeed/internal/metrics"
	"tweetfeed/internal/models"
	"tweetfeed/internal/repository"
	"tweetfeed/internal/storage"
)

type MediaService interface {
	Upload(ctx context.Context, req models.UploadMediaRequest) (*models.Media, error)
	Get(ctx context.Context, mediaID int64) (*models.Media, error)
}

type mediaService struct {
	mediaRepo repository.MediaRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewMediaService(mediaRepo repository.MediaRepository, storage storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{
		mediaRepo: mediaRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func (s *mediaService) Upload(ctx context.Context, req models.UploadMediaRequest) (*models.Media, error) {
	if !slices.Contains(s.cfg.AllowedContentTypes, req.ContentType) {
		return nil, apperror.InvalidInput("invalid file type")
	}

	if s.cfg.MaxUploadSize > 0 && int64(len(req.Data)) > s.cfg.MaxUploadSize {
		return nil, apperror.InvalidInput(fmt.Sprintf("file is too large: %s exceeds the %s limit",
			humanize.IBytes(uint64(len(req.Data))), humanize.IBytes(uint64(s.cfg.MaxUploadSize))))
	}

	media := &models.Media{
		Filename: req.Filename,
		MimeType: req.ContentType,
	}

	if s.storage == nil {
		media.Data = req.Data
		if err := s.mediaRepo.Create(ctx, media); err != nil {
			return nil, err
		}
	} else {
		objectName, err := s.storage.UploadMedia(ctx, req.Filename, req.ContentType, req.Data)
		if err != nil {
			return nil, fmt.Errorf("store media bytes: %w", err)
		}

		media.ObjectKey = sql.NullString{String: objectName, Valid: true}
		if err := s.mediaRepo.Create(ctx, media); err != nil {
			if delErr := s.storage.DeleteMedia(ctx, objectName); delErr != nil {
				logrus.WithError(delErr).WithField("object", objectName).Warn("orphaned media object")
			}
			return nil, err
		}
	}

	metrics.MediaUploadedBytes.WithLabelValues(req.ContentType).Add(float64(len(req.Data)))
	logrus.WithFields(logrus.Fields{
		"media_id": media.ID,
		"filename": media.Filename,
		"size":     humanize.IBytes(uint64(len(req.Data))),
	}).Info("media uploaded")

	return media, nil
}

// Get returns the media with its bytes loaded, from object storage when needed.
func (s *mediaService) Get(ctx context.Context, mediaID int64) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	if !media.ObjectKey.Valid {
		return media, nil
	}

	if s.storage == nil {
		return nil, fmt.Errorf("media %d is held in object storage, which is not configured", mediaID)
	}

	data, err := s.storage.GetMedia(ctx, media.ObjectKey.String)
	if err != nil {
		return nil, err
	}
	media.Data = data

	return media, nil
}
