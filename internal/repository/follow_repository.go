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

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO followers (follower_id, followee_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &follow.ID, query, follow.FollowerID, follow.FolloweeID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return apperror.Wrap(apperror.KindDuplicate, "following already exists", err)
		case isCheckViolation(err):
			return apperror.Wrap(apperror.KindInvalidInput, "cannot follow yourself", err)
		}
		return fmt.Errorf("create following: %w", err)
	}

	return nil
}

func (r *followRepository) Get(ctx context.Context, followerID, followeeID int64) (*models.Follow, error) {
	query := `
		SELECT id, follower_id, followee_id FROM followers
		WHERE follower_id = $1 AND followee_id = $2
	`

	var follow models.Follow
	err := r.db.GetContext(ctx, &follow, query, followerID, followeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("following not found")
		}
		return nil, fmt.Errorf("get following: %w", err)
	}

	return &follow, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	query := `DELETE FROM followers WHERE follower_id = $1 AND followee_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("delete following: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("following not found")
	}

	return nil
}

// GetFollowers lists users following userID, named by their display name.
func (r *followRepository) GetFollowers(ctx context.Context, userID int64) ([]models.ProfileRef, error) {
	query := `
		SELECT u.id, u.name
		FROM followers f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followee_id = $1
		ORDER BY f.id
	`

	refs := []models.ProfileRef{}
	if err := r.db.SelectContext(ctx, &refs, query, userID); err != nil {
		return nil, fmt.Errorf("get followers of %d: %w", userID, err)
	}

	return refs, nil
}

// GetFollowing lists users that userID follows.
func (r *followRepository) GetFollowing(ctx context.Context, userID int64) ([]models.ProfileRef, error) {
	query := `
		SELECT u.id, u.name
		FROM followers f
		JOIN users u ON u.id = f.followee_id
		WHERE f.follower_id = $1
		ORDER BY f.id
	`

	refs := []models.ProfileRef{}
	if err := r.db.SelectContext(ctx, &refs, query, userID); err != nil {
		return nil, fmt.Errorf("get following of %d: %w", userID, err)
	}

	return refs, nil
}
