package release

import (
	"context"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/lib/cerr"

	"github.com/apex/log"
	"google.golang.org/api/androidpublisher/v3"
)

type TrackListing struct {
	Outcome Outcome
	EditID  string
	Tracks  []*androidpublisher.Track
}

type TrackLister struct {
	opener entity.SessionOpener
}

func NewTrackLister(opener entity.SessionOpener) TrackLister {
	return TrackLister{
		opener: opener,
	}
}

// ListTracks reads every track through a throwaway edit, which is deleted
// afterwards instead of committed.
func (t TrackLister) ListTracks(ctx context.Context, packageName string) (listing TrackListing, err error) {
	errctx := cerr.Field("package_name", packageName)

	session, err := t.opener.Open(ctx)
	if err != nil {
		return t.fail(ctx, "", errctx, err, "Failed to open publishing session")
	}
	defer func() {
		err = closeSession(session, err)
	}()

	edit, err := session.InsertEdit(ctx, packageName)
	if err != nil {
		return t.fail(ctx, "", errctx, err, "Failed to open an edit")
	}

	tracks, err := session.ListTracks(ctx, packageName, edit.ID)
	if err != nil {
		return t.fail(ctx, edit.ID, errctx, err, "Failed to list tracks")
	}

	// an undeleted edit expires on its own
	if err := session.DeleteEdit(ctx, packageName, edit.ID); err != nil {
		log.WithError(err).WithField("edit_id", edit.ID).Warn("Failed to discard edit")
	}

	return TrackListing{
		Outcome: Discarded,
		EditID:  edit.ID,
		Tracks:  tracks,
	}, nil
}

func (t TrackLister) fail(ctx context.Context, editID string, errctx cerr.Context, err error, message string) (TrackListing, error) {
	result, err := fail(ctx, editID, errctx, err, message)
	if err != nil {
		return TrackListing{}, err
	}

	return TrackListing{Outcome: result.Outcome, EditID: result.EditID}, nil
}
