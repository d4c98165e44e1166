package cli

import (
	"encoding/json"
	"io"
	"play-release-tools/src/application"
	"play-release-tools/src/application/publish"
	"play-release-tools/src/application/release"
	"play-release-tools/src/lib/cerr"
	"time"

	"github.com/apex/log"
	"google.golang.org/api/androidpublisher/v3"
)

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return cerr.Wrap(err).Error("Failed to write output")
	}

	return nil
}

// announce runs after the commit, so a broker failure is logged and the
// command still succeeds.
func announce(app application.App, eventType string, event publish.ReleaseEvent) {
	msg, err := publish.CreateEventMessage(eventType, event, time.Now().UTC())
	if err == nil {
		err = app.Publisher.Publish(msg)
	}

	if err != nil {
		cerr.Log(cerr.Field("event_type", eventType).
			Field("edit_id", event.EditID).
			Wrap(err).Error("Failed to publish release event"))
		return
	}

	log.WithField("event_type", eventType).Debug("Published release event")
}

func closeApp(app application.App) {
	if err := app.Close(); err != nil {
		log.WithError(err).Warn("Failed to close release event publisher")
	}
}

// releaseAt returns the release as it was sent. The track returned by the
// service is not guaranteed to keep the release order.
func releaseAt(result release.Result) *androidpublisher.TrackRelease {
	if result.Release == nil {
		return &androidpublisher.TrackRelease{}
	}

	return result.Release
}

func reportInterrupted(result release.Result) {
	logger := log.WithField("edit_id", result.EditID)
	if result.Outcome == release.CommitUnknown {
		logger.Warn("Interrupted while committing, the commit outcome is unknown")
		return
	}

	logger.Warn("Interrupted, nothing was committed")
}
