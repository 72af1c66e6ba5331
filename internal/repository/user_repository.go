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

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (api_key, username, name, surname)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &user.ID, query, user.APIKey, user.Username, user.Name, user.Surname)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Wrap(apperror.KindDuplicate, "a user with such data already exists", err)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, name, surname, api_key FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, name, surname, api_key FROM users WHERE api_key = $1`

	err := r.db.GetContext(ctx, &user, query, apiKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user by api key: %w", err)
	}

	return &user, nil
}
