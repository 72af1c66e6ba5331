// Package feed turns joined tweet/like rows into feed items and orders them for a viewer.
package feed

import (
	"cmp"
	"fmt"
	"slices"

	"tweetfeed/internal/models"
)

// AttachmentPath is the retrieval path served by the media endpoint.
func AttachmentPath(mediaID int64) string {
	return fmt.Sprintf("/api/medias/%d", mediaID)
}

// Assemble builds one feed item per tweet row, keeping the row order.
// Likes are attached in the order they appear in likes.
func Assemble(tweets []models.FeedTweetRow, likes []models.FeedLikeRow) []models.FeedItem {
	likesByTweet := make(map[int64][]models.LikeRef, len(tweets))
	for _, like := range likes {
		likesByTweet[like.TweetID] = append(likesByTweet[like.TweetID], models.LikeRef{
			UserID: like.UserID,
			Name:   like.Name,
		})
	}

	items := make([]models.FeedItem, 0, len(tweets))
	for _, tweet := range tweets {
		attachments := make([]string, 0, len(tweet.MediaIDs))
		for _, mediaID := range tweet.MediaIDs {
			attachments = append(attachments, AttachmentPath(mediaID))
		}

		tweetLikes := likesByTweet[tweet.ID]
		if tweetLikes == nil {
			tweetLikes = []models.LikeRef{}
		}

		items = append(items, models.FeedItem{
			ID:          tweet.ID,
			Content:     tweet.Text,
			Attachments: attachments,
			Author:      models.Author{ID: tweet.AuthorID, Name: tweet.AuthorName},
			Likes:       tweetLikes,
		})
	}

	return items
}

// Rank puts tweets by followed authors first, then everyone else. Each group is
// ordered by descending like count; equal counts keep their input order.
// With no followed authors the whole list is ordered by like count only.
func Rank(items []models.FeedItem, followingIDs []int64) []models.FeedItem {
	if len(followingIDs) == 0 {
		ranked := slices.Clone(items)
		sortByLikes(ranked)
		return ranked
	}

	following := make(map[int64]struct{}, len(followingIDs))
	for _, id := range followingIDs {
		following[id] = struct{}{}
	}

	followed := make([]models.FeedItem, 0, len(items))
	rest := make([]models.FeedItem, 0, len(items))
	for _, item := range items {
		if _, ok := following[item.Author.ID]; ok {
			followed = append(followed, item)
		} else {
			rest = append(rest, item)
		}
	}

	sortByLikes(followed)
	sortByLikes(rest)

	return append(followed, rest...)
}

func sortByLikes(items []models.FeedItem) {
	slices.SortStableFunc(items, func(a, b models.FeedItem) int {
		return cmp.Compare(len(b.Likes), len(a.Likes))
	})
}
