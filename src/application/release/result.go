package release

import (
	"context"
	"errors"

	"google.golang.org/api/androidpublisher/v3"
)

type Outcome string

const (
	Committed Outcome = "committed"
	Cancelled Outcome = "cancelled"
	Discarded Outcome = "discarded"
	// interrupted while the commit was in flight; the remote may or may not
	// have applied it
	CommitUnknown Outcome = "commit_unknown"
)

type Result struct {
	Outcome Outcome
	EditID  string
	Track   *androidpublisher.Track
	// the release as it was sent, and its index in the fetched track
	Release      *androidpublisher.TrackRelease
	ReleaseIndex int
}

func cancelledResult(editID string) Result {
	return Result{
		Outcome: Cancelled,
		EditID:  editID,
	}
}

// wasCancelled reports whether the run context was cancelled, which turns any
// failure that follows into a cancellation. Deadlines are ordinary failures.
func wasCancelled(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}
