package store

import (
	"context"
	"play-release-tools/src/application/artifact/entity"
	"play-release-tools/src/lib/cerr"
	"strings"
)

var _ entity.FileStore = RoutingFileStore{}

// RoutingFileStore hands a location to the store registered for its scheme
// and to the local store when it has none. Remote stores are optional; a
// location for an unconfigured one fails.
type RoutingFileStore struct {
	local  entity.FileStore
	google entity.FileStore
	s3     entity.FileStore
}

func NewRoutingFileStore(local entity.FileStore, google entity.FileStore, s3 entity.FileStore) RoutingFileStore {
	return RoutingFileStore{
		local:  local,
		google: google,
		s3:     s3,
	}
}

func (r RoutingFileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	fileStore, name := r.storeFor(fileURL)
	if fileStore == nil {
		return nil, cerr.Field("file_url", fileURL).
			Field("store", name).
			Error("No file store is configured for this location")
	}

	return fileStore.GetFile(ctx, fileURL)
}

func (r RoutingFileStore) storeFor(fileURL string) (entity.FileStore, string) {
	switch {
	case strings.HasPrefix(fileURL, GOOGLE_STORAGE_SCHEME), strings.HasPrefix(fileURL, GOOGLE_STORAGE_HOST+"/"):
		return r.google, "google_cloud_storage"
	case strings.HasPrefix(fileURL, S3_SCHEME):
		return r.s3, "s3"
	default:
		return r.local, "local"
	}
}
