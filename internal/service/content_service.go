package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tweetfeed/internal/models"
	"tweetfeed/internal/repository"
)

const (
	demoUsers  = 20
	demoTweets = 40

	// DemoAPIKey belongs to the first demo user so a client can log in right after seeding.
	DemoAPIKey = "test"
)

var demoNames = []string{
	"Alice", "Boris", "Clara", "Dmitry", "Elena", "Felix", "Galina", "Hugo", "Irina", "Jonas",
	"Katya", "Leon", "Maria", "Nikita", "Olga", "Pavel", "Quinn", "Roman", "Sofia", "Timur",
}

var demoSurnames = []string{
	"Ivanova", "Petrov", "Smirnova", "Kuznetsov", "Popova", "Sokolov", "Lebedeva", "Kozlov",
	"Novikova", "Morozov",
}

var demoPhrases = []string{
	"Good morning everyone",
	"Just shipped a new release",
	"Coffee first, code later",
	"Reading a great book about distributed systems",
	"Who else is watching the match tonight?",
	"Finally fixed that flaky test",
	"Weekend hike photos coming soon",
	"Learning something new every day",
}

type ContentService interface {
	Seed(ctx context.Context) error
	Reset(ctx context.Context) error
}

type contentService struct {
	contentRepo repository.ContentRepository
	newRand     func() *rand.Rand
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
		},
	}
}

func (s *contentService) Seed(ctx context.Context) error {
	data := DemoContent(s.newRand())

	if err := s.contentRepo.Seed(ctx, data); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"users":   len(data.Users),
		"tweets":  len(data.Tweets),
		"likes":   len(data.Likes),
		"follows": len(data.Follows),
	}).Info("demo content created")

	return nil
}

func (s *contentService) Reset(ctx context.Context) error {
	if err := s.contentRepo.Reset(ctx); err != nil {
		return err
	}

	logrus.Warn("all content deleted")
	return nil
}

// DemoContent builds a presentation data set: every user writes into a shared pool
// of tweets, likes one random tweet and follows one random other user.
func DemoContent(rnd *rand.Rand) repository.SeedData {
	data := repository.SeedData{
		Users:   make([]models.User, 0, demoUsers),
		Tweets:  make([]repository.SeedTweet, 0, demoTweets),
		Likes:   make([]repository.SeedPair, 0, demoUsers),
		Follows: make([]repository.SeedPair, 0, demoUsers),
	}

	for i := range demoUsers {
		apiKey := uuid.NewString()
		if i == 0 {
			apiKey = DemoAPIKey
		}

		data.Users = append(data.Users, models.User{
			APIKey:   apiKey,
			Username: fmt.Sprintf("user_%02d", i+1),
			Name:     demoNames[i%len(demoNames)],
			Surname:  demoSurnames[i%len(demoSurnames)],
		})
	}

	for i := range demoTweets {
		data.Tweets = append(data.Tweets, repository.SeedTweet{
			AuthorIndex: rnd.IntN(demoUsers),
			Text:        fmt.Sprintf("%s #%d", demoPhrases[rnd.IntN(len(demoPhrases))], i+1),
		})
	}

	for user := range demoUsers {
		data.Likes = append(data.Likes, repository.SeedPair{From: user, To: rnd.IntN(demoTweets)})

		followee := rnd.IntN(demoUsers)
		if followee == user {
			followee = (followee + 1) % demoUsers
		}
		data.Follows = append(data.Follows, repository.SeedPair{From: user, To: followee})
	}

	return data
}
