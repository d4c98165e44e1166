package store

import (
	"context"
	"os"
	"path/filepath"
	"play-release-tools/src/application/artifact/entity"
	"play-release-tools/src/lib/cerr"
	"strings"
)

var _ entity.FileStore = LocalFileStore{}

const FILE_SCHEME = "file://"

type LocalFileStore struct{}

func (LocalFileStore) GetFile(_ context.Context, fileURL string) ([]byte, error) {
	path := filepath.Clean(strings.TrimPrefix(fileURL, FILE_SCHEME))

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, cerr.Field("path", path).Wrap(err).Error("Failed to read local file")
	}

	return contents, nil
}
