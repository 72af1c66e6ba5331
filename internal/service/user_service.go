package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"tweetfeed/internal/metrics"
	"tweetfeed/internal/models"
	"tweetfeed/internal/repository"
)

type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UserByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		APIKey:   req.APIKey,
		Username: req.Username,
		Name:     req.Name,
		Surname:  req.Surname,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersRegistered.Inc()
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")

	return user, nil
}

func (s *userService) UserByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	return s.userRepo.GetUserByAPIKey(ctx, apiKey)
}

// Profile is named by username; its follow lists carry display names.
func (s *userService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.GetFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.GetFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		ID:        user.ID,
		Name:      user.Username,
		Followers: nonNilRefs(followers),
		Following: nonNilRefs(following),
	}, nil
}

func nonNilRefs(refs []models.ProfileRef) []models.ProfileRef {
	if refs == nil {
		return []models.ProfileRef{}
	}
	return refs
}
