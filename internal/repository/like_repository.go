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

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (user_id, tweet_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &like.ID, query, like.UserID, like.TweetID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Wrap(apperror.KindDuplicate, "like already exists", err)
		}
		return fmt.Errorf("create like: %w", err)
	}

	return nil
}

func (r *likeRepository) Get(ctx context.Context, userID, tweetID int64) (*models.Like, error) {
	query := `SELECT id, user_id, tweet_id FROM likes WHERE user_id = $1 AND tweet_id = $2`

	var like models.Like
	err := r.db.GetContext(ctx, &like, query, userID, tweetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("like not found")
		}
		return nil, fmt.Errorf("get like: %w", err)
	}

	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, likeID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE id = $1`, likeID)
	if err != nil {
		return fmt.Errorf("delete like %d: %w", likeID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("like not found")
	}

	return nil
}
