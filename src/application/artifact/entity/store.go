package entity

import "context"

type FileStore interface {
	GetFile(ctx context.Context, url string) ([]byte, error)
}
