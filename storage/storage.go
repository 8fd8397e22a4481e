package storage

import (
	"io"
	"net/http"

	"yatube/config"
)

// StorageAPI is what the handlers need from a media backend: post images go
// in at upload time and come back out on the /media route.
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var defaultStorage StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		defaultStorage = NewS3Storage(config.S3_BUCKET, config.S3_REGION, config.S3_ENDPOINT, config.S3_PREFIX)
		return
	}
	defaultStorage = NewDiskStorage(config.MEDIA_DIR)
}

func GetDefaultStorage() StorageAPI {
	if defaultStorage == nil {
		panic("no storage available")
	}
	return defaultStorage
}
