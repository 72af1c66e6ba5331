package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"tweetfeed/internal/models"
)

const (
	pqUniqueViolation pq.ErrorCode = "23505"
	pqCheckViolation  pq.ErrorCode = "23514"
)

type Repository struct {
	User    UserRepository
	Tweet   TweetRepository
	Like    LikeRepository
	Follow  FollowRepository
	Media   MediaRepository
	Stats   StatsRepository
	Content ContentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Tweet:   NewTweetRepository(db),
		Like:    NewLikeRepository(db),
		Follow:  NewFollowRepository(db),
		Media:   NewMediaRepository(db),
		Stats:   NewStatsRepository(db),
		Content: NewContentRepository(db),
	}
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	GetByID(ctx context.Context, tweetID int64) (*models.Tweet, error)
	Delete(ctx context.Context, tweetID int64) error
	ListFeedTweets(ctx context.Context) ([]models.FeedTweetRow, error)
	ListFeedLikes(ctx context.Context) ([]models.FeedLikeRow, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Get(ctx context.Context, userID, tweetID int64) (*models.Like, error)
	Delete(ctx context.Context, likeID int64) error
}

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Get(ctx context.Context, followerID, followeeID int64) (*models.Follow, error)
	Delete(ctx context.Context, followerID, followeeID int64) error
	GetFollowers(ctx context.Context, userID int64) ([]models.ProfileRef, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.ProfileRef, error)
}

type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, mediaID int64) (*models.Media, error)
}

type StatsRepository interface {
	CountRows(ctx context.Context) (map[string]int, error)
}

type ContentRepository interface {
	Seed(ctx context.Context, data SeedData) error
	Reset(ctx context.Context) error
}

// withTx runs fn inside one transaction, committing only when fn succeeds.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logrus.WithError(rbErr).Warn("rollback failed")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == pqUniqueViolation
}

func isCheckViolation(err error) bool {
	return pqCode(err) == pqCheckViolation
}
