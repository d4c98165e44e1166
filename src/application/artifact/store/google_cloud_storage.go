package store

import (
	"context"
	"io"
	"play-release-tools/src/application/artifact/entity"
	"play-release-tools/src/lib/cerr"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var _ entity.FileStore = GoogleFileStore{}

const (
	GOOGLE_STORAGE_HOST   = "https://storage.googleapis.com"
	GOOGLE_STORAGE_SCHEME = "gs://"
)

type GoogleFileStore struct {
	storageClient *storage.Client
}

// NewGoogleFileStore uses application default credentials when jsonKey is empty.
func NewGoogleFileStore(ctx context.Context, jsonKey string) (GoogleFileStore, error) {
	options := []option.ClientOption{}
	if jsonKey != "" {
		options = append(options, option.WithCredentialsJSON([]byte(jsonKey)))
	}

	googleStorageClient, err := storage.NewClient(ctx, options...)
	if err != nil {
		return GoogleFileStore{}, cerr.Wrap(err).Error("Failed to create Google Cloud Storage client")
	}

	return GoogleFileStore{
		storageClient: googleStorageClient,
	}, nil
}

func (g GoogleFileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	errctx := cerr.Field("file_url", fileURL)

	bucket, filePath, err := GoogleBucketAndPath(fileURL)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Couldn't extract file path from URL")
	}

	reader, err := g.storageClient.Bucket(bucket).Object(filePath).NewReader(ctx)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to create reader for Google object handle")
	}

	defer reader.Close()

	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to read remote file")
	}

	return contents, nil
}

// GoogleBucketAndPath accepts both gs://bucket/path and
// https://storage.googleapis.com/bucket/path.
func GoogleBucketAndPath(fileURL string) (string, string, error) {
	var bucketAndPath string
	switch {
	case strings.HasPrefix(fileURL, GOOGLE_STORAGE_SCHEME):
		bucketAndPath = strings.TrimPrefix(fileURL, GOOGLE_STORAGE_SCHEME)
	case strings.HasPrefix(fileURL, GOOGLE_STORAGE_HOST+"/"):
		bucketAndPath = strings.TrimPrefix(fileURL, GOOGLE_STORAGE_HOST+"/")
	default:
		return "", "", cerr.Error("File path given not in the Google cloud storage format")
	}

	return splitBucketAndKey(bucketAndPath)
}

func splitBucketAndKey(bucketAndPath string) (string, string, error) {
	chunks := strings.SplitN(bucketAndPath, "/", 2)
	if len(chunks) != 2 || chunks[0] == "" || chunks[1] == "" {
		return "", "", cerr.Field("location", bucketAndPath).Error("Location does not name both a bucket and an object")
	}

	return chunks[0], chunks[1], nil
}
