package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	UsersRegistered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_registered_total",
		Help: "Total users successfully registered",
	})

	TweetsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_created_total",
		Help: "Total tweets successfully posted",
	})

	TweetsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_deleted_total",
		Help: "Total tweets deleted by their authors",
	})

	LikeActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "like_actions_total",
		Help: "Total like and unlike actions",
	}, []string{"action"})

	FollowActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "follow_actions_total",
		Help: "Total follow and unfollow actions",
	}, []string{"action"})

	MediaUploadedBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "media_uploaded_bytes_total",
		Help: "Total bytes of media accepted, by MIME type",
	}, []string{"mimetype"})

	ErrorsByKind = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total error responses by error type",
	}, []string{"error_type"})
)

func init() {
	prometheus.MustRegister(
		RequestDuration,
		UsersRegistered,
		TweetsCreated,
		TweetsDeleted,
		LikeActions,
		FollowActions,
		MediaUploadedBytes,
		ErrorsByKind,
	)
}
