package logger_test

import (
	"bytes"
	"encoding/json"
	"play-release-tools/src/lib/env"
	"play-release-tools/src/lib/logger"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Setup", func() {
	var output *bytes.Buffer

	BeforeEach(func() {
		output = &bytes.Buffer{}
	})

	AfterEach(func() {
		log.SetHandler(discard.New())
	})

	It("writes JSON lines in production", func() {
		Expect(logger.Setup(env.Production, "info", output)).To(Succeed())

		log.WithField("track", "internal").Info("Committed edit")

		var entry map[string]interface{}
		Expect(json.Unmarshal(output.Bytes(), &entry)).To(Succeed())
		Expect(entry).To(HaveKeyWithValue("message", "Committed edit"))
		Expect(entry).To(HaveKeyWithValue("fields", HaveKeyWithValue("track", "internal")))
	})

	It("drops entries below the level", func() {
		Expect(logger.Setup(env.Development, "warn", output)).To(Succeed())

		log.Info("Opened edit")
		Expect(output.Len()).To(BeZero())

		log.Warn("Failed to discard edit")
		Expect(output.String()).To(ContainSubstring("Failed to discard edit"))
	})

	It("rejects unknown levels", func() {
		Expect(logger.Setup(env.Production, "chatty", output)).NotTo(Succeed())
	})
})
