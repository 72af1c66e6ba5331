package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tweetfeed/internal/models"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UserByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockTweetService struct {
	mock.Mock
}

func (m *MockTweetService) CreateTweet(ctx context.Context, req models.CreateTweetRequest) (*models.Tweet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetService) DeleteTweet(ctx context.Context, userID, tweetID int64) error {
	args := m.Called(ctx, userID, tweetID)
	return args.Error(0)
}

func (m *MockTweetService) LikeTweet(ctx context.Context, userID, tweetID int64) error {
	args := m.Called(ctx, userID, tweetID)
	return args.Error(0)
}

func (m *MockTweetService) UnlikeTweet(ctx context.Context, userID, tweetID int64) error {
	args := m.Called(ctx, userID, tweetID)
	return args.Error(0)
}

func (m *MockTweetService) Feed(ctx context.Context, viewerID int64) ([]models.FeedItem, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedItem), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, req models.UploadMediaRequest) (*models.Media, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaService) Get(ctx context.Context, mediaID int64) (*models.Media, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Seed(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContentService) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) CountRows(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockDB struct {
	mock.Mock
}

func (m *MockDB) CloseDB() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockDB) RunMigrations(migrationFilePath string) error {
	args := m.Called(migrationFilePath)
	return args.Error(0)
}

func (m *MockDB) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
