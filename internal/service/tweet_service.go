package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/feed"
	"tweetfeed/internal/metrics"
	"tweetfeed/internal/models"
	"tweetfeed/internal/repository"
)

type TweetService interface {
	CreateTweet(ctx context.Context, req models.CreateTweetRequest) (*models.Tweet, error)
	DeleteTweet(ctx context.Context, userID, tweetID int64) error
	LikeTweet(ctx context.Context, userID, tweetID int64) error
	UnlikeTweet(ctx context.Context, userID, tweetID int64) error
	Feed(ctx context.Context, viewerID int64) ([]models.FeedItem, error)
}

type tweetService struct {
	tweetRepo  repository.TweetRepository
	likeRepo   repository.LikeRepository
	followRepo repository.FollowRepository
}

func NewTweetService(tweetRepo repository.TweetRepository, likeRepo repository.LikeRepository,
	followRepo repository.FollowRepository) TweetService {
	return &tweetService{
		tweetRepo:  tweetRepo,
		likeRepo:   likeRepo,
		followRepo: followRepo,
	}
}

func (s *tweetService) CreateTweet(ctx context.Context, req models.CreateTweetRequest) (*models.Tweet, error) {
	tweet := &models.Tweet{
		UserID:   req.UserID,
		Text:     req.Text,
		MediaIDs: req.MediaIDs,
	}

	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	metrics.TweetsCreated.Inc()
	logrus.WithFields(logrus.Fields{
		"tweet_id": tweet.ID,
		"user_id":  tweet.UserID,
		"media":    len(tweet.MediaIDs),
	}).Debug("tweet created")

	return tweet, nil
}

// DeleteTweet removes a tweet on behalf of its author only.
func (s *tweetService) DeleteTweet(ctx context.Context, userID, tweetID int64) error {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}

	if tweet.UserID != userID {
		return apperror.Authorization("no right to delete")
	}

	if err := s.tweetRepo.Delete(ctx, tweetID); err != nil {
		return err
	}

	metrics.TweetsDeleted.Inc()
	return nil
}

func (s *tweetService) LikeTweet(ctx context.Context, userID, tweetID int64) error {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return err
	}

	_, err := s.likeRepo.Get(ctx, userID, tweetID)
	switch {
	case err == nil:
		return apperror.Duplicate("like already exists")
	case !errors.Is(err, apperror.ErrNotFound):
		return err
	}

	if err := s.likeRepo.Create(ctx, &models.Like{UserID: userID, TweetID: tweetID}); err != nil {
		return err
	}

	metrics.LikeActions.WithLabelValues("like").Inc()
	return nil
}

func (s *tweetService) UnlikeTweet(ctx context.Context, userID, tweetID int64) error {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return err
	}

	like, err := s.likeRepo.Get(ctx, userID, tweetID)
	if err != nil {
		return err
	}

	if err := s.likeRepo.Delete(ctx, like.ID); err != nil {
		return err
	}

	metrics.LikeActions.WithLabelValues("unlike").Inc()
	return nil
}

// Feed returns every tweet, ranked for the viewer.
func (s *tweetService) Feed(ctx context.Context, viewerID int64) ([]models.FeedItem, error) {
	following, err := s.followRepo.GetFollowing(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	followingIDs := make([]int64, 0, len(following))
	for _, ref := range following {
		followingIDs = append(followingIDs, ref.ID)
	}

	tweets, err := s.tweetRepo.ListFeedTweets(ctx)
	if err != nil {
		return nil, err
	}

	likes, err := s.tweetRepo.ListFeedLikes(ctx)
	if err != nil {
		return nil, err
	}

	return feed.Rank(feed.Assemble(tweets, likes), followingIDs), nil
}
