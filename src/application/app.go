package application

import (
	"context"
	"io"
	artifact "play-release-tools/src/application/artifact/entity"
	filestore "play-release-tools/src/application/artifact/store"
	"play-release-tools/src/application/auth"
	"play-release-tools/src/application/config"
	"play-release-tools/src/application/publish"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/application/publishing/googleplay"
	"play-release-tools/src/application/release"
	"play-release-tools/src/lib/cerr"

	"github.com/apex/log"
)

// App holds the collaborators of one command invocation.
type App struct {
	Config    config.Config
	Opener    entity.SessionOpener
	FileStore artifact.FileStore
	Publisher publish.Publisher
}

// Console is where the interactive authorization flow talks to the operator.
type Console struct {
	In  io.Reader
	Out io.Writer
}

func NewApp(cfg config.Config, console Console) (App, error) {
	publisher, err := newPublisher(cfg)
	if err != nil {
		return App{}, err
	}

	return App{
		Config:    cfg,
		Opener:    googleplay.NewOpener(newAuthorizer(cfg, console)),
		FileStore: newFileStore(cfg),
		Publisher: publisher,
	}, nil
}

func (a App) PriorityUpdater() release.PriorityUpdater {
	return release.NewPriorityUpdater(a.Opener)
}

func (a App) BundleReleaser() release.BundleReleaser {
	return release.NewBundleReleaser(a.Opener, a.FileStore)
}

func (a App) TrackLister() release.TrackLister {
	return release.NewTrackLister(a.Opener)
}

func (a App) Close() error {
	if a.Publisher == nil {
		return nil
	}

	return a.Publisher.Close()
}

func newAuthorizer(cfg config.Config, console Console) auth.Authorizer {
	if cfg.ServiceAccountKey != "" {
		log.Debug("Authorizing with a service account key")
		return auth.NewServiceAccountAuthorizer(cfg.ServiceAccountKey)
	}

	return auth.NewInstalledAppAuthorizer(cfg.ClientSecrets, cfg.RedirectURL, auth.ConsolePrompt{
		In:  console.In,
		Out: console.Out,
	})
}

func newFileStore(cfg config.Config) artifact.FileStore {
	googleFileStore := filestore.NewLazyFileStore(func(ctx context.Context) (artifact.FileStore, error) {
		return filestore.NewGoogleFileStore(ctx, cfg.GoogleCloudKey)
	})

	s3FileStore := filestore.NewLazyFileStore(func(context.Context) (artifact.FileStore, error) {
		return filestore.NewS3FileStore(cfg.AWSRegion, cfg.S3Endpoint)
	})

	return filestore.NewRoutingFileStore(filestore.LocalFileStore{}, googleFileStore, s3FileStore)
}

func newPublisher(cfg config.Config) (publish.Publisher, error) {
	if cfg.RabbitMQURL == "" {
		return publish.NoopPublisher{}, nil
	}

	publisher, err := publish.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueueName)
	if err != nil {
		return nil, cerr.Field("queue_name", cfg.RabbitMQQueueName).
			Wrap(err).Error("Failed to set up release event publisher")
	}

	return publisher, nil
}
