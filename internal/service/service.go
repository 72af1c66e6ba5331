package service

import (
	"tweetfeed/internal/config"
	"tweetfeed/internal/repository"
	"tweetfeed/internal/storage"
)

type Service struct {
	User    UserService
	Tweet   TweetService
	Follow  FollowService
	Media   MediaService
	Content ContentService
	Stats   StatsService
}

// NewService wires every service over rep. A nil storage keeps media bytes in the database.
func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User:    NewUserService(rep.User, rep.Follow),
		Tweet:   NewTweetService(rep.Tweet, rep.Like, rep.Follow),
		Follow:  NewFollowService(rep.Follow, rep.User),
		Media:   NewMediaService(rep.Media, storage, cfg),
		Content: NewContentService(rep.Content),
		Stats:   NewStatsService(rep.Stats),
	}
}
