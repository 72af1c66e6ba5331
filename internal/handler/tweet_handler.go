package handlers

import (
	"context"
	"net/http"

	"tweetfeed/internal/models"
)

type CreateTweetResponse struct {
	Result  bool  `json:"result"`
	TweetID int64 `json:"tweet_id"`
}

type FeedResponse struct {
	Result bool              `json:"result"`
	Tweets []models.FeedItem `json:"tweets"`
}

func (h *Handlers) CreateTweet(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req models.CreateTweetRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationError(err))
		return
	}

	req.UserID = user.ID

	tweet, err := h.TweetService.CreateTweet(r.Context(), req)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, CreateTweetResponse{Result: true, TweetID: tweet.ID}, http.StatusCreated)
}

func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.TweetService.Feed(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if items == nil {
		items = []models.FeedItem{}
	}

	writeSuccess(w, FeedResponse{Result: true, Tweets: items}, http.StatusOK)
}

func (h *Handlers) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	h.tweetAction(w, r, h.TweetService.DeleteTweet, http.StatusOK)
}

func (h *Handlers) LikeTweet(w http.ResponseWriter, r *http.Request) {
	h.tweetAction(w, r, h.TweetService.LikeTweet, http.StatusCreated)
}

func (h *Handlers) UnlikeTweet(w http.ResponseWriter, r *http.Request) {
	h.tweetAction(w, r, h.TweetService.UnlikeTweet, http.StatusOK)
}

// tweetAction runs a (user, tweet) operation for the caller against the tweet in the path.
func (h *Handlers) tweetAction(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context, userID, tweetID int64) error, successStatus int) {
	user, err := currentUser(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	tweetID, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := action(r.Context(), user.ID, tweetID); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, ResultResponse{Result: true}, successStatus)
}
