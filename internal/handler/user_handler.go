package handlers

import (
	"net/http"

	"tweetfeed/internal/models"
)

type ProfileResponse struct {
	Result bool            `json:"result"`
	User   *models.Profile `json:"user"`
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationError(err))
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), req)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeProfile(w, r, user.ID)
}

func (h *Handlers) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeProfile(w, r, userID)
}

func (h *Handlers) writeProfile(w http.ResponseWriter, r *http.Request, userID int64) {
	profile, err := h.UserService.Profile(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, ProfileResponse{Result: true, User: profile}, http.StatusOK)
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	user, followeeID, err := h.followTarget(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.FollowService.Follow(r.Context(), user.ID, followeeID); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, ResultResponse{Result: true}, http.StatusCreated)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	user, followeeID, err := h.followTarget(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.FollowService.Unfollow(r.Context(), user.ID, followeeID); err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, ResultResponse{Result: true}, http.StatusOK)
}

func (h *Handlers) followTarget(r *http.Request) (*models.User, int64, error) {
	user, err := currentUser(r)
	if err != nil {
		return nil, 0, err
	}

	followeeID, err := pathID(r)
	if err != nil {
		return nil, 0, err
	}

	return user, followeeID, nil
}
