package service

import (
	"context"
	"errors"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/metrics"
	"tweetfeed/internal/models"
	"tweetfeed/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow rejects self-follows and repeated pairs before writing.
func (s *followService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return apperror.InvalidInput("cannot follow yourself")
	}

	if err := s.checkFollowee(ctx, followeeID); err != nil {
		return err
	}

	_, err := s.followRepo.Get(ctx, followerID, followeeID)
	switch {
	case err == nil:
		return apperror.Duplicate("following already exists")
	case !errors.Is(err, apperror.ErrNotFound):
		return err
	}

	err = s.followRepo.Create(ctx, &models.Follow{FollowerID: followerID, FolloweeID: followeeID})
	if err != nil {
		return err
	}

	metrics.FollowActions.WithLabelValues("follow").Inc()
	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if err := s.checkFollowee(ctx, followeeID); err != nil {
		return err
	}

	if err := s.followRepo.Delete(ctx, followerID, followeeID); err != nil {
		return err
	}

	metrics.FollowActions.WithLabelValues("unfollow").Inc()
	return nil
}

func (s *followService) checkFollowee(ctx context.Context, followeeID int64) error {
	_, err := s.userRepo.GetUserByID(ctx, followeeID)
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.Wrap(apperror.KindNotFound, "followee not found", err)
	}
	return err
}
