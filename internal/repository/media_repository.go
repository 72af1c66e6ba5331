package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/models"
)

type MediaRepositoryImpl struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) *MediaRepositoryImpl {
	return &MediaRepositoryImpl{db: db}
}

func (r *MediaRepositoryImpl) Create(ctx context.Context, media *models.Media) error {
	query := `
		INSERT INTO medias (filename, data, mimetype, object_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	// bytes held in object storage leave the data column NULL
	var data interface{}
	if !media.ObjectKey.Valid {
		if media.Data == nil {
			media.Data = []byte{}
		}
		data = media.Data
	}

	err := r.db.GetContext(ctx, &media.ID, query, media.Filename, data, media.MimeType, media.ObjectKey)
	if err != nil {
		return fmt.Errorf("create media: %w", err)
	}

	return nil
}

func (r *MediaRepositoryImpl) GetByID(ctx context.Context, mediaID int64) (*models.Media, error) {
	query := `SELECT id, filename, data, mimetype, object_key FROM medias WHERE id = $1`

	var media models.Media
	err := r.db.GetContext(ctx, &media, query, mediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("media not found")
		}
		return nil, fmt.Errorf("get media %d: %w", mediaID, err)
	}

	return &media, nil
}
