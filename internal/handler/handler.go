package handlers

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/config"
	"tweetfeed/internal/database"
	"tweetfeed/internal/service"
)

type Handlers struct {
	UserService    service.UserService
	TweetService   service.TweetService
	FollowService  service.FollowService
	MediaService   service.MediaService
	ContentService service.ContentService
	StatsService   service.StatsService
	DB             database.MethodsDB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, db database.MethodsDB, cfg *config.Config) *Handlers {
	return &Handlers{
		UserService:    services.User,
		TweetService:   services.Tweet,
		FollowService:  services.Follow,
		MediaService:   services.Media,
		ContentService: services.Content,
		StatsService:   services.Stats,
		DB:             db,
		Cfg:            cfg,
		Validate:       NewValidator(),
	}
}

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.Handle("/users/me", h.APIKeyMiddleware(http.HandlerFunc(h.GetMyProfile))).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", h.GetUserProfile).Methods(http.MethodGet)
	api.Handle("/users/{id:[0-9]+}/follow", h.APIKeyMiddleware(http.HandlerFunc(h.Follow))).Methods(http.MethodPost)
	api.Handle("/users/{id:[0-9]+}/follow", h.APIKeyMiddleware(http.HandlerFunc(h.Unfollow))).Methods(http.MethodDelete)

	api.Handle("/tweets", h.APIKeyMiddleware(http.HandlerFunc(h.CreateTweet))).Methods(http.MethodPost)
	api.Handle("/tweets", h.APIKeyMiddleware(http.HandlerFunc(h.GetFeed))).Methods(http.MethodGet)
	api.Handle("/tweets/{id:[0-9]+}", h.APIKeyMiddleware(http.HandlerFunc(h.DeleteTweet))).Methods(http.MethodDelete)
	api.Handle("/tweets/{id:[0-9]+}/likes", h.APIKeyMiddleware(http.HandlerFunc(h.LikeTweet))).Methods(http.MethodPost)
	api.Handle("/tweets/{id:[0-9]+}/likes", h.APIKeyMiddleware(http.HandlerFunc(h.UnlikeTweet))).Methods(http.MethodDelete)

	api.HandleFunc("/medias", h.UploadMedia).Methods(http.MethodPost)
	api.HandleFunc("/medias/{id:[0-9]+}", h.GetMedia).Methods(http.MethodGet)

	if h.Cfg.DemoContentEnabled {
		api.HandleFunc("/content/create", h.CreateContent).Methods(http.MethodGet)
		api.HandleFunc("/content/delete", h.DeleteContent).Methods(http.MethodGet)
	}

	return router
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidInput(fmt.Sprintf("invalid id %q", raw))
	}

	return id, nil
}
