package entity

import (
	"context"

	"google.golang.org/api/androidpublisher/v3"
)

// Client is an authorized session against the publishing API. A session is
// owned by one workflow run and must be closed by it.
type Client interface {
	InsertEdit(ctx context.Context, packageName string) (Edit, error)
	CommitEdit(ctx context.Context, packageName string, editID string) (Edit, error)
	DeleteEdit(ctx context.Context, packageName string, editID string) error

	ListTracks(ctx context.Context, packageName string, editID string) ([]*androidpublisher.Track, error)
	GetTrack(ctx context.Context, packageName string, editID string, trackName string) (*androidpublisher.Track, error)
	UpdateTrack(ctx context.Context, packageName string, editID string, track *androidpublisher.Track) (*androidpublisher.Track, error)

	UploadBundle(ctx context.Context, packageName string, editID string, bundle Bundle) (UploadedBundle, error)

	Close() error
}

type SessionOpener interface {
	Open(ctx context.Context) (Client, error)
}

type Edit struct {
	ID                string
	ExpiryTimeSeconds string
}
