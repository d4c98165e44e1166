package publish

import (
	"encoding/json"
	"play-release-tools/src/lib/cerr"
	"time"

	"github.com/streadway/amqp"
)

const (
	PriorityUpdatedType string = "release_priority_updated"
	BundleReleasedType  string = "bundle_released"
)

type ReleaseEvent struct {
	PackageName  string  `json:"package_name"`
	Track        string  `json:"track"`
	EditID       string  `json:"edit_id"`
	ReleaseName  string  `json:"release_name,omitempty"`
	Status       string  `json:"status,omitempty"`
	VersionCodes []int64 `json:"version_codes"`
	Priority     int64   `json:"in_app_update_priority"`
}

func CreateEventMessage(eventType string, event ReleaseEvent, timestamp time.Time) (amqp.Publishing, error) {
	jsonBytes, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, cerr.Wrap(err).Error("Failed to marshal release event")
	}

	return amqp.Publishing{
		Type:      eventType,
		Timestamp: timestamp,
		Body:      jsonBytes,
	}, nil
}
