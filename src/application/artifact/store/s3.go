package store

import (
	"context"
	"play-release-tools/src/application/artifact/entity"
	"play-release-tools/src/lib/cerr"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var _ entity.FileStore = S3FileStore{}

const S3_SCHEME = "s3://"

type S3FileStore struct {
	downloader *s3manager.Downloader
}

// NewS3FileStore takes credentials from the default AWS chain. A non-empty
// endpoint points the client at an S3 compatible service instead.
func NewS3FileStore(region string, endpoint string) (S3FileStore, error) {
	config := aws.NewConfig().WithRegion(region)
	if endpoint != "" {
		config = config.WithEndpoint(endpoint).WithS3ForcePathStyle(true)
	}

	awsSession, err := session.NewSession(config)
	if err != nil {
		return S3FileStore{}, cerr.Wrap(err).Error("Failed to create AWS session")
	}

	return S3FileStore{
		downloader: s3manager.NewDownloader(awsSession),
	}, nil
}

func (s S3FileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	errctx := cerr.Field("file_url", fileURL)

	bucket, key, err := S3BucketAndKey(fileURL)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Couldn't extract object key from URL")
	}

	buffer := aws.NewWriteAtBuffer([]byte{})
	_, err = s.downloader.DownloadWithContext(ctx, buffer, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to download object from S3")
	}

	return buffer.Bytes(), nil
}

func S3BucketAndKey(fileURL string) (string, string, error) {
	if !strings.HasPrefix(fileURL, S3_SCHEME) {
		return "", "", cerr.Error("File path given not in the S3 format")
	}

	return splitBucketAndKey(strings.TrimPrefix(fileURL, S3_SCHEME))
}
