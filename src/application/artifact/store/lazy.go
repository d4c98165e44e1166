package store

import (
	"context"
	"play-release-tools/src/application/artifact/entity"
	"play-release-tools/src/lib/cerr"
)

var _ entity.FileStore = &LazyFileStore{}

// LazyFileStore defers building a remote store until a location needs it, so
// credentials for a store are only required when that store is used.
type LazyFileStore struct {
	build     func(ctx context.Context) (entity.FileStore, error)
	fileStore entity.FileStore
}

func NewLazyFileStore(build func(ctx context.Context) (entity.FileStore, error)) *LazyFileStore {
	return &LazyFileStore{
		build: build,
	}
}

func (l *LazyFileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	if l.fileStore == nil {
		fileStore, err := l.build(ctx)
		if err != nil {
			return nil, cerr.Field("file_url", fileURL).Wrap(err).Error("Failed to set up file store")
		}
		l.fileStore = fileStore
	}

	return l.fileStore.GetFile(ctx, fileURL)
}
