package release

import (
	"context"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/lib/cerr"

	"github.com/apex/log"
)

type PriorityUpdate struct {
	PackageName string
	Track       string
	// passed through as given, the publishing API enforces the range
	Priority int64
	Selector Selector
}

type PriorityUpdater struct {
	opener entity.SessionOpener
}

func NewPriorityUpdater(opener entity.SessionOpener) PriorityUpdater {
	return PriorityUpdater{
		opener: opener,
	}
}

// UpdatePriority runs one read-modify-write cycle of a track inside its own
// edit. The session is closed on every path. A cancelled context before the
// commit yields a Cancelled result and no error.
func (p PriorityUpdater) UpdatePriority(ctx context.Context, update PriorityUpdate) (result Result, err error) {
	selector := update.Selector
	if selector == nil {
		selector = FirstRelease
	}

	errctx := cerr.Fields(cerr.F{
		"package_name": update.PackageName,
		"track":        update.Track,
		"priority":     update.Priority,
		"selector":     selector.String(),
	})
	logger := log.WithFields(log.Fields(errctx.ContextFields))

	session, err := p.opener.Open(ctx)
	if err != nil {
		return fail(ctx, "", errctx, err, "Failed to open publishing session")
	}
	defer func() {
		err = closeSession(session, err)
	}()

	edit, err := session.InsertEdit(ctx, update.PackageName)
	if err != nil {
		return fail(ctx, "", errctx, err, "Failed to open an edit")
	}

	logger = logger.WithField("edit_id", edit.ID)
	logger.Info("Opened edit")

	track, err := session.GetTrack(ctx, update.PackageName, edit.ID, update.Track)
	if err != nil {
		return fail(ctx, edit.ID, errctx, err, "Failed to fetch track")
	}

	index, err := selector.Select(track.Releases)
	if err != nil {
		return Result{}, errctx.Field("edit_id", edit.ID).
			Field("release_count", len(track.Releases)).
			Wrap(err).Error("Failed to select the release to modify")
	}

	release := track.Releases[index]
	logger.WithFields(log.Fields{
		"release_index":     index,
		"release_name":      release.Name,
		"previous_priority": release.InAppUpdatePriority,
	}).Info("Setting update priority")

	release.InAppUpdatePriority = update.Priority
	release.ForceSendFields = forceSend(release.ForceSendFields, priorityField)

	updated, err := session.UpdateTrack(ctx, update.PackageName, edit.ID, track)
	if err != nil {
		return fail(ctx, edit.ID, errctx, err, "Failed to write the track back")
	}

	result, err = commit(ctx, session, update.PackageName, edit.ID, errctx)
	if err != nil || result.Outcome != Committed {
		return result, err
	}

	logger.Info("Committed edit")

	result.Track = updated
	result.Release = release
	result.ReleaseIndex = index
	return result, nil
}
