package publish_test

import (
	"encoding/json"
	"play-release-tools/src/application/publish"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Release events", func() {
	It("carries the event type, timestamp and JSON body", func() {
		timestamp := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		event := publish.ReleaseEvent{
			PackageName:  "com.cradleVSA.neptune",
			Track:        "internal",
			EditID:       "edit-1",
			VersionCodes: []int64{36},
			Priority:     0,
		}

		msg, err := publish.CreateEventMessage(publish.PriorityUpdatedType, event, timestamp)
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Type).To(Equal(publish.PriorityUpdatedType))
		Expect(msg.Timestamp).To(Equal(timestamp))

		var body map[string]interface{}
		Expect(json.Unmarshal(msg.Body, &body)).To(Succeed())
		Expect(body).To(HaveKeyWithValue("track", "internal"))
		Expect(body).To(HaveKeyWithValue("in_app_update_priority", BeEquivalentTo(0)))
		Expect(body).NotTo(HaveKey("release_name"))
	})

	It("round trips into the event type", func() {
		event := publish.ReleaseEvent{
			PackageName:  "com.cradleVSA.neptune",
			Track:        "beta",
			EditID:       "edit-9",
			ReleaseName:  "1.5.0",
			Status:       "draft",
			VersionCodes: []int64{101},
			Priority:     4,
		}

		msg, err := publish.CreateEventMessage(publish.BundleReleasedType, event, time.Now())
		Expect(err).NotTo(HaveOccurred())

		var decoded publish.ReleaseEvent
		Expect(json.Unmarshal(msg.Body, &decoded)).To(Succeed())
		Expect(decoded).To(Equal(event))
	})
})
