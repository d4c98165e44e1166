package googleplay

import (
	"context"
	"net/http"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/lib/cerr"

	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var _ entity.Client = &GooglePlayClient{}

type GooglePlayClient struct {
	service    *androidpublisher.Service
	httpClient *http.Client
	closed     bool
}

func NewGooglePlayClient(ctx context.Context, httpClient *http.Client, options ...option.ClientOption) (*GooglePlayClient, error) {
	options = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, options...)

	service, err := androidpublisher.NewService(ctx, options...)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to create Android Publisher client")
	}

	return &GooglePlayClient{
		service:    service,
		httpClient: httpClient,
	}, nil
}

func (g *GooglePlayClient) InsertEdit(ctx context.Context, packageName string) (entity.Edit, error) {
	appEdit, err := g.service.Edits.Insert(packageName, &androidpublisher.AppEdit{}).Context(ctx).Do()
	if err != nil {
		return entity.Edit{}, cerr.Field("package_name", packageName).
			Wrap(err).Error("Failed to insert edit")
	}

	return toEdit(appEdit), nil
}

func (g *GooglePlayClient) CommitEdit(ctx context.Context, packageName string, editID string) (entity.Edit, error) {
	appEdit, err := g.service.Edits.Commit(packageName, editID).Context(ctx).Do()
	if err != nil {
		return entity.Edit{}, cerr.Field("package_name", packageName).
			Field("edit_id", editID).
			Wrap(err).Error("Failed to commit edit")
	}

	return toEdit(appEdit), nil
}

func (g *GooglePlayClient) DeleteEdit(ctx context.Context, packageName string, editID string) error {
	err := g.service.Edits.Delete(packageName, editID).Context(ctx).Do()
	if err != nil {
		return cerr.Field("package_name", packageName).
			Field("edit_id", editID).
			Wrap(err).Error("Failed to delete edit")
	}

	return nil
}

func (g *GooglePlayClient) ListTracks(ctx context.Context, packageName string, editID string) ([]*androidpublisher.Track, error) {
	response, err := g.service.Edits.Tracks.List(packageName, editID).Context(ctx).Do()
	if err != nil {
		return nil, cerr.Field("package_name", packageName).
			Field("edit_id", editID).
			Wrap(err).Error("Failed to list tracks")
	}

	return response.Tracks, nil
}

func (g *GooglePlayClient) GetTrack(ctx context.Context, packageName string, editID string, trackName string) (*androidpublisher.Track, error) {
	track, err := g.service.Edits.Tracks.Get(packageName, editID, trackName).Context(ctx).Do()
	if err != nil {
		return nil, cerr.Field("package_name", packageName).
			Field("edit_id", editID).
			Field("track", trackName).
			Wrap(err).Error("Failed to get track")
	}

	return track, nil
}

func (g *GooglePlayClient) UpdateTrack(ctx context.Context, packageName string, editID string, track *androidpublisher.Track) (*androidpublisher.Track, error) {
	updated, err := g.service.Edits.Tracks.Update(packageName, editID, track.Track, track).Context(ctx).Do()
	if err != nil {
		return nil, cerr.Field("package_name", packageName).
			Field("edit_id", editID).
			Field("track", track.Track).
			Wrap(err).Error("Failed to update track")
	}

	return updated, nil
}

func (g *GooglePlayClient) UploadBundle(ctx context.Context, packageName string, editID string, bundle entity.Bundle) (entity.UploadedBundle, error) {
	mediaType := bundle.MediaType
	if mediaType == "" {
		mediaType = entity.MediaTypeFor(bundle.Name)
	}

	uploaded, err := g.service.Edits.Bundles.Upload(packageName, editID).
		Media(bundle.Content, googleapi.ContentType(mediaType)).
		Context(ctx).
		Do()
	if err != nil {
		return entity.UploadedBundle{}, cerr.Field("package_name", packageName).
			Field("edit_id", editID).
			Field("bundle", bundle.Name).
			Wrap(err).Error("Failed to upload bundle")
	}

	return entity.UploadedBundle{
		VersionCode: uploaded.VersionCode,
		SHA256:      uploaded.Sha256,
	}, nil
}

func (g *GooglePlayClient) Close() error {
	if g.closed {
		return cerr.Error("Publishing session is already closed")
	}

	g.closed = true
	g.httpClient.CloseIdleConnections()
	return nil
}

func toEdit(appEdit *androidpublisher.AppEdit) entity.Edit {
	return entity.Edit{
		ID:                appEdit.Id,
		ExpiryTimeSeconds: appEdit.ExpiryTimeSeconds,
	}
}
