package models

import (
	"database/sql"

	"github.com/lib/pq"
)

type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Name     string `json:"name" db:"name"`
	Surname  string `json:"surname" db:"surname"`
	APIKey   string `json:"api_key" db:"api_key"`
}

type Tweet struct {
	ID       int64         `json:"id" db:"id"`
	UserID   int64         `json:"user_id" db:"user_id"`
	Text     string        `json:"text" db:"text"`
	MediaIDs pq.Int64Array `json:"media_ids" db:"media_ids"`
}

type Like struct {
	ID      int64 `json:"id" db:"id"`
	UserID  int64 `json:"user_id" db:"user_id"`
	TweetID int64 `json:"tweet_id" db:"tweet_id"`
}

type Follow struct {
	ID         int64 `json:"id" db:"id"`
	FollowerID int64 `json:"follower_id" db:"follower_id"`
	FolloweeID int64 `json:"followee_id" db:"followee_id"`
}

// Media keeps its bytes either inline in Data or in object storage under ObjectKey.
type Media struct {
	ID        int64          `json:"id" db:"id"`
	Filename  string         `json:"filename" db:"filename"`
	Data      []byte         `json:"-" db:"data"`
	MimeType  string         `json:"mimetype" db:"mimetype"`
	ObjectKey sql.NullString `json:"-" db:"object_key"`
}

// FeedTweetRow is a tweet joined with its author, as read for feed assembly.
type FeedTweetRow struct {
	ID         int64         `db:"id"`
	Text       string        `db:"text"`
	MediaIDs   pq.Int64Array `db:"media_ids"`
	AuthorID   int64         `db:"author_id"`
	AuthorName string        `db:"author_name"`
}

// FeedLikeRow is a like joined with the liking user.
type FeedLikeRow struct {
	TweetID int64  `db:"tweet_id"`
	UserID  int64  `db:"user_id"`
	Name    string `db:"name"`
}

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type LikeRef struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type FeedItem struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Attachments []string  `json:"attachments"`
	Author      Author    `json:"author"`
	Likes       []LikeRef `json:"likes"`
}

type ProfileRef struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Profile struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Followers []ProfileRef `json:"followers"`
	Following []ProfileRef `json:"following"`
}

type CreateUserRequest struct {
	APIKey   string `json:"api_key" validate:"required"`
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
}

type CreateTweetRequest struct {
	UserID   int64   `json:"-"`
	Text     string  `json:"tweet_data" validate:"required"`
	MediaIDs []int64 `json:"tweet_media_ids" validate:"omitempty,dive,gt=0"`
}

type UploadMediaRequest struct {
	Filename    string
	ContentType string
	Data        []byte
}
