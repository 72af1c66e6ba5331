package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tweetfeed/internal/models"
)

// SeedTweet and SeedPair reference users and tweets by their index in SeedData.
type SeedTweet struct {
	AuthorIndex int
	Text        string
}

type SeedPair struct {
	From int
	To   int
}

type SeedData struct {
	Users   []models.User
	Tweets  []SeedTweet
	Likes   []SeedPair // user index -> tweet index
	Follows []SeedPair // follower index -> followee index
}

type contentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Seed(ctx context.Context, data SeedData) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		userIDs := make([]int64, len(data.Users))
		for i, user := range data.Users {
			err := tx.GetContext(ctx, &userIDs[i],
				`INSERT INTO users (api_key, username, name, surname) VALUES ($1, $2, $3, $4) RETURNING id`,
				user.APIKey, user.Username, user.Name, user.Surname)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", user.Username, err)
			}
		}

		tweetIDs := make([]int64, len(data.Tweets))
		for i, tweet := range data.Tweets {
			if !inRange(tweet.AuthorIndex, len(userIDs)) {
				return fmt.Errorf("seed tweet %d: author index %d out of range", i, tweet.AuthorIndex)
			}
			err := tx.GetContext(ctx, &tweetIDs[i],
				`INSERT INTO tweets (user_id, text) VALUES ($1, $2) RETURNING id`,
				userIDs[tweet.AuthorIndex], tweet.Text)
			if err != nil {
				return fmt.Errorf("seed tweet %d: %w", i, err)
			}
		}

		for _, like := range data.Likes {
			if !inRange(like.From, len(userIDs)) || !inRange(like.To, len(tweetIDs)) {
				continue
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO likes (user_id, tweet_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				userIDs[like.From], tweetIDs[like.To])
			if err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}

		for _, follow := range data.Follows {
			if follow.From == follow.To || !inRange(follow.From, len(userIDs)) || !inRange(follow.To, len(userIDs)) {
				continue
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO followers (follower_id, followee_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				userIDs[follow.From], userIDs[follow.To])
			if err != nil {
				return fmt.Errorf("seed following: %w", err)
			}
		}

		return nil
	})
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

// Reset wipes every row and restarts the id sequences.
func (r *contentRepository) Reset(ctx context.Context) error {
	query := `TRUNCATE TABLE likes, comments, followers, tweets, medias, users RESTART IDENTITY CASCADE`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("reset content: %w", err)
	}

	return nil
}
