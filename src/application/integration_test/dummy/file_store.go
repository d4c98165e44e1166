package dummy

import (
	"context"
	"play-release-tools/src/application/artifact/entity"
)

var _ entity.FileStore = &FileStore{}

func NewDummyFileStore() *FileStore {
	return &FileStore{
		Unavailable: false,
		State:       make(map[string][]byte),
	}
}

type FileStore struct {
	Unavailable bool
	State       map[string][]byte
	Requested   []string
}

func (t *FileStore) GetFile(_ context.Context, url string) ([]byte, error) {
	t.Requested = append(t.Requested, url)

	if t.Unavailable {
		return nil, NetworkFailure
	}

	content, ok := t.State[url]
	if !ok {
		return nil, NotFound
	}

	return content, nil
}

func (t *FileStore) AddFile(url string, fileContent []byte) {
	t.State[url] = append([]byte{}, fileContent...)
}
