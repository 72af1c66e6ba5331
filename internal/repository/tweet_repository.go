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

type TweetRepositoryImpl struct {
	DB *sqlx.DB
}

func NewTweetRepository(db *sqlx.DB) *TweetRepositoryImpl {
	return &TweetRepositoryImpl{DB: db}
}

func (r *TweetRepositoryImpl) Create(ctx context.Context, tweet *models.Tweet) error {
	query := `
		INSERT INTO tweets (user_id, text, media_ids)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	// an empty attachment list is stored as NULL
	if len(tweet.MediaIDs) == 0 {
		tweet.MediaIDs = nil
	}

	err := r.DB.GetContext(ctx, &tweet.ID, query, tweet.UserID, tweet.Text, tweet.MediaIDs)
	if err != nil {
		return fmt.Errorf("create tweet: %w", err)
	}

	return nil
}

func (r *TweetRepositoryImpl) GetByID(ctx context.Context, tweetID int64) (*models.Tweet, error) {
	query := `SELECT id, user_id, text, media_ids FROM tweets WHERE id = $1`

	var tweet models.Tweet
	err := r.DB.GetContext(ctx, &tweet, query, tweetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("tweet not found")
		}
		return nil, fmt.Errorf("get tweet %d: %w", tweetID, err)
	}

	return &tweet, nil
}

// Delete removes the tweet together with its likes and comments.
func (r *TweetRepositoryImpl) Delete(ctx context.Context, tweetID int64) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE tweet_id = $1`, tweetID); err != nil {
			return fmt.Errorf("delete likes of tweet %d: %w", tweetID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE tweet_id = $1`, tweetID); err != nil {
			return fmt.Errorf("delete comments of tweet %d: %w", tweetID, err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM tweets WHERE id = $1`, tweetID)
		if err != nil {
			return fmt.Errorf("delete tweet %d: %w", tweetID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("check deleted rows: %w", err)
		}

		if rowsAffected == 0 {
			return apperror.NotFound("tweet not found")
		}

		return nil
	})
}

func (r *TweetRepositoryImpl) ListFeedTweets(ctx context.Context) ([]models.FeedTweetRow, error) {
	query := `
		SELECT t.id, t.text, t.media_ids, u.id AS author_id, u.username AS author_name
		FROM tweets t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.id
	`

	rows := []models.FeedTweetRow{}
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list feed tweets: %w", err)
	}

	return rows, nil
}

func (r *TweetRepositoryImpl) ListFeedLikes(ctx context.Context) ([]models.FeedLikeRow, error) {
	query := `
		SELECT l.tweet_id, u.id AS user_id, u.username AS name
		FROM likes l
		JOIN users u ON u.id = l.user_id
		ORDER BY l.id
	`

	rows := []models.FeedLikeRow{}
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list feed likes: %w", err)
	}

	return rows, nil
}
