package release

import (
	"bytes"
	"context"
	"path"
	artifact "play-release-tools/src/application/artifact/entity"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/lib/cerr"

	"github.com/apex/log"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
)

type BundleRelease struct {
	PackageName  string
	Track        string
	ArtifactURL  string
	Status       string
	Priority     int64
	ReleaseName  string
	ReleaseNotes []*androidpublisher.LocalizedText
}

type BundleReleaser struct {
	opener    entity.SessionOpener
	fileStore artifact.FileStore
}

func NewBundleReleaser(opener entity.SessionOpener, fileStore artifact.FileStore) BundleReleaser {
	return BundleReleaser{
		opener:    opener,
		fileStore: fileStore,
	}
}

// ReleaseBundle uploads the artifact and points the track at a new release of
// it, all in one edit. The artifact is fetched before any edit is opened.
func (b BundleReleaser) ReleaseBundle(ctx context.Context, bundleRelease BundleRelease) (result Result, err error) {
	status := bundleRelease.Status
	if status == "" {
		status = string(entity.DraftStatus)
	}

	errctx := cerr.Fields(cerr.F{
		"package_name": bundleRelease.PackageName,
		"track":        bundleRelease.Track,
		"artifact_url": bundleRelease.ArtifactURL,
		"status":       status,
	})
	logger := log.WithFields(log.Fields(errctx.ContextFields))

	logger.Info("Fetching bundle")
	content, err := b.fileStore.GetFile(ctx, bundleRelease.ArtifactURL)
	if err != nil {
		return fail(ctx, "", errctx, err, "Failed to fetch bundle")
	}

	session, err := b.opener.Open(ctx)
	if err != nil {
		return fail(ctx, "", errctx, err, "Failed to open publishing session")
	}
	defer func() {
		err = closeSession(session, err)
	}()

	edit, err := session.InsertEdit(ctx, bundleRelease.PackageName)
	if err != nil {
		return fail(ctx, "", errctx, err, "Failed to open an edit")
	}

	logger = logger.WithField("edit_id", edit.ID)
	logger.WithField("size_bytes", len(content)).Info("Uploading bundle")

	name := path.Base(bundleRelease.ArtifactURL)
	uploaded, err := session.UploadBundle(ctx, bundleRelease.PackageName, edit.ID, entity.Bundle{
		Name:      name,
		MediaType: entity.MediaTypeFor(name),
		Content:   bytes.NewReader(content),
	})
	if err != nil {
		return fail(ctx, edit.ID, errctx, err, "Failed to upload bundle")
	}

	logger = logger.WithField("version_code", uploaded.VersionCode)
	logger.Info("Uploaded bundle")

	track := &androidpublisher.Track{
		Track: bundleRelease.Track,
		Releases: []*androidpublisher.TrackRelease{
			{
				Name:                bundleRelease.ReleaseName,
				Status:              status,
				VersionCodes:        googleapi.Int64s{uploaded.VersionCode},
				InAppUpdatePriority: bundleRelease.Priority,
				ReleaseNotes:        bundleRelease.ReleaseNotes,
				ForceSendFields:     []string{priorityField},
			},
		},
	}

	updated, err := session.UpdateTrack(ctx, bundleRelease.PackageName, edit.ID, track)
	if err != nil {
		return fail(ctx, edit.ID, errctx, err, "Failed to add the release to the track")
	}

	result, err = commit(ctx, session, bundleRelease.PackageName, edit.ID, errctx)
	if err != nil || result.Outcome != Committed {
		return result, err
	}

	logger.Info("Committed edit")

	result.Track = updated
	result.Release = track.Releases[0]
	return result, nil
}
