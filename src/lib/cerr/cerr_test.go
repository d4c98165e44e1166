package cerr_test

import (
	"errors"
	"play-release-tools/src/lib/cerr"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Contextual errors", func() {
	var rootCause = errors.New("connection reset")

	It("formats the message with its cause", func() {
		err := cerr.Wrap(rootCause).Error("Failed to commit edit")
		Expect(err.Error()).To(Equal("Failed to commit edit: connection reset"))
	})

	It("formats a bare message without a cause", func() {
		err := cerr.Error("Track has no releases")
		Expect(err.Error()).To(Equal("Track has no releases"))
	})

	It("keeps the cause reachable through errors.Is", func() {
		err := cerr.Field("edit_id", "edit-1").Wrap(rootCause).Error("Failed to commit edit")
		Expect(errors.Is(err, rootCause)).To(BeTrue())
	})

	It("collects fields from every layer, outer fields winning", func() {
		inner := cerr.Fields(cerr.F{
			"track":   "internal",
			"edit_id": "edit-1",
		}).Error("Failed to get track")

		outer := cerr.Field("edit_id", "edit-2").
			Field("package_name", "com.example").
			Wrap(inner).Error("Failed to update priority")

		var ctxErr cerr.ContextualError
		Expect(errors.As(outer, &ctxErr)).To(BeTrue())
		Expect(ctxErr.Context.ContextFields).To(Equal(cerr.F{
			"track":        "internal",
			"edit_id":      "edit-2",
			"package_name": "com.example",
		}))
	})

	It("does not share field maps between derived contexts", func() {
		base := cerr.Field("track", "beta")
		_ = base.Field("priority", 3)

		Expect(base.ContextFields).To(HaveLen(1))
	})
})
