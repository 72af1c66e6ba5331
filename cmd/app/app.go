package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"tweetfeed/internal/config"
	"tweetfeed/internal/database"
	"tweetfeed/internal/repository"
	"tweetfeed/internal/service"
	"tweetfeed/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	// a nil Storage keeps media bytes in the medias table
	var mediaStorage storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			db.CloseDB()
			return nil, nil, fmt.Errorf("init minio: %w", err)
		}
		mediaStorage = minioClient
		logrus.WithField("endpoint", cfg.MinIO.Endpoint).Info("media stored in minio")
	} else {
		logrus.Info("media stored in database")
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, mediaStorage)

	return db, services, nil
}
