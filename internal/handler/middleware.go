package handlers

import (
	"context"
	"net/http"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/models"
)

const APIKeyHeader = "api-key"

type contextKey string

const userContextKey contextKey = "user"

// APIKeyMiddleware resolves the api-key header to a user and stores it in the request context.
func (h *Handlers) APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(APIKeyHeader)
		if apiKey == "" {
			WriteError(w, apperror.InvalidInput("api-key header is required"))
			return
		}

		user, err := h.UserService.UserByAPIKey(r.Context(), apiKey)
		if err != nil {
			WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok && user != nil
}

// currentUser is only valid behind APIKeyMiddleware.
func currentUser(r *http.Request) (*models.User, error) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}
