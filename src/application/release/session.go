package release

import (
	"context"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/lib/cerr"

	"github.com/apex/log"
)

const priorityField = "InAppUpdatePriority"

// closeSession folds a close failure into the run's error without hiding an
// earlier one.
func closeSession(session entity.Client, runErr error) error {
	closeErr := session.Close()
	if closeErr == nil {
		return runErr
	}

	if runErr != nil {
		log.WithError(closeErr).Warn("Failed to close publishing session")
		return runErr
	}

	return cerr.Wrap(closeErr).Error("Failed to close publishing session")
}

func fail(ctx context.Context, editID string, errctx cerr.Context, err error, message string) (Result, error) {
	if wasCancelled(ctx) {
		log.WithField("edit_id", editID).Info("Cancelled before commit")
		return cancelledResult(editID), nil
	}

	if editID != "" {
		errctx = errctx.Field("edit_id", editID)
	}

	return Result{}, errctx.Wrap(err).Error(message)
}

// commit checks for an interrupt before sending the commit, so a cancelled
// run is only reported as CommitUnknown when the request may have gone out.
func commit(ctx context.Context, session entity.Client, packageName string, editID string, errctx cerr.Context) (Result, error) {
	if wasCancelled(ctx) {
		log.WithField("edit_id", editID).Info("Cancelled before commit")
		return cancelledResult(editID), nil
	}

	if _, err := session.CommitEdit(ctx, packageName, editID); err != nil {
		if wasCancelled(ctx) {
			log.WithField("edit_id", editID).Warn("Cancelled while committing, the commit outcome is unknown")
			return Result{Outcome: CommitUnknown, EditID: editID}, nil
		}

		return Result{}, errctx.Field("edit_id", editID).Wrap(err).Error("Failed to commit edit")
	}

	return Result{Outcome: Committed, EditID: editID}, nil
}

func forceSend(fields []string, field string) []string {
	for _, existing := range fields {
		if existing == field {
			return fields
		}
	}

	return append(fields, field)
}
