package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"play-release-tools/src/application"
	"play-release-tools/src/application/cli"
	"play-release-tools/src/application/config"
	"play-release-tools/src/application/integration_test/dummy"
	"play-release-tools/src/application/publish"
	"play-release-tools/src/application/publish/publishfakes"

	"github.com/spf13/cobra"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Commands", func() {
	const packageName = "com.cradleVSA.neptune"

	var (
		playService   *dummy.PlayService
		fakePublisher *publishfakes.FakePublisher
		buildErr      error

		root   *cobra.Command
		stdout *bytes.Buffer
	)

	BeforeEach(func() {
		playService = dummy.NewPlayService()
		playService.SetTrack(packageName, &androidpublisher.Track{
			Track: "beta",
			Releases: []*androidpublisher.TrackRelease{
				{Name: "41", Status: "inProgress", VersionCodes: googleapi.Int64s{41}, UserFraction: 0.2},
				{Name: "40", Status: "completed", VersionCodes: googleapi.Int64s{40}, InAppUpdatePriority: 1},
			},
		})

		fakePublisher = &publishfakes.FakePublisher{}
		buildErr = nil

		root = cli.NewRootCommand(func(cfg config.Config, _ application.Console) (application.App, error) {
			if buildErr != nil {
				return application.App{}, buildErr
			}

			return application.App{
				Config:    cfg,
				Opener:    playService,
				FileStore: dummy.NewDummyFileStore(),
				Publisher: fakePublisher,
			}, nil
		})

		stdout = &bytes.Buffer{}
		root.SetOut(stdout)
		root.SetErr(&bytes.Buffer{})
	})

	Describe("priority", func() {
		It("picks the release named by the selector", func() {
			root.SetArgs([]string{"priority", "--track", "beta", "--priority", "4", "--select", "version-code:40"})
			Expect(root.Execute()).To(Succeed())

			track, ok := playService.CommittedTrack(packageName, "beta")
			Expect(ok).To(BeTrue())
			Expect(track.Releases[0].InAppUpdatePriority).To(BeZero())
			Expect(track.Releases[0].UserFraction).To(Equal(0.2))
			Expect(track.Releases[1].InAppUpdatePriority).To(Equal(int64(4)))
		})

		It("publishes one event describing the selected release", func() {
			root.SetArgs([]string{"priority", "--track", "beta", "--priority", "4", "--select", "name:40"})
			Expect(root.Execute()).To(Succeed())

			Expect(fakePublisher.PublishCallCount()).To(Equal(1))
			msg := fakePublisher.PublishArgsForCall(0)
			Expect(msg.Type).To(Equal(publish.PriorityUpdatedType))

			var event publish.ReleaseEvent
			Expect(json.Unmarshal(msg.Body, &event)).To(Succeed())
			Expect(event).To(Equal(publish.ReleaseEvent{
				PackageName:  packageName,
				Track:        "beta",
				EditID:       "edit-1",
				ReleaseName:  "40",
				Status:       "completed",
				VersionCodes: []int64{40},
				Priority:     4,
			}))
		})

		It("describes the modified release even when the service reorders its answer", func() {
			playService.ReorderReleases = true

			root.SetArgs([]string{"priority", "--track", "beta", "--priority", "4", "--select", "version-code:40"})
			Expect(root.Execute()).To(Succeed())

			Expect(fakePublisher.PublishCallCount()).To(Equal(1))
			var event publish.ReleaseEvent
			Expect(json.Unmarshal(fakePublisher.PublishArgsForCall(0).Body, &event)).To(Succeed())
			Expect(event.ReleaseName).To(Equal("40"))
			Expect(event.VersionCodes).To(Equal([]int64{40}))
			Expect(event.Priority).To(Equal(int64(4)))
		})

		It("ignores publishing and closing failures after the commit", func() {
			fakePublisher.PublishReturns(errors.New("channel closed"))
			fakePublisher.CloseReturns(errors.New("connection reset"))

			root.SetArgs([]string{"priority", "--track", "beta", "--priority", "4"})
			Expect(root.Execute()).To(Succeed())
			Expect(playService.CommittedEdits()).To(Equal(1))
			Expect(fakePublisher.CloseCallCount()).To(Equal(1))
		})

		Context("when interrupted before the commit", func() {
			var cancel context.CancelFunc

			BeforeEach(func() {
				var ctx context.Context
				ctx, cancel = context.WithCancel(context.Background())
				playService.BeforeCall = func(operation string) {
					if operation == dummy.OpUpdateTrack {
						cancel()
					}
				}

				root.SetArgs([]string{"priority", "--track", "beta", "--priority", "4"})
				Expect(root.ExecuteContext(ctx)).To(Succeed())
			})

			AfterEach(func() {
				cancel()
			})

			It("commits nothing", func() {
				Expect(playService.CommittedEdits()).To(BeZero())
				Expect(playService.CloseCount).To(Equal(1))
			})

			It("publishes nothing and prints nothing", func() {
				Expect(fakePublisher.PublishCallCount()).To(BeZero())
				Expect(stdout.Len()).To(BeZero())
			})
		})

		Context("when interrupted while committing", func() {
			It("exits cleanly without announcing a release", func() {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				playService.BeforeCall = func(operation string) {
					if operation == dummy.OpCommitEdit {
						cancel()
					}
				}

				root.SetArgs([]string{"priority", "--track", "beta", "--priority", "4"})
				Expect(root.ExecuteContext(ctx)).To(Succeed())

				Expect(fakePublisher.PublishCallCount()).To(BeZero())
				Expect(stdout.Len()).To(BeZero())
				Expect(playService.CloseCount).To(Equal(1))
			})
		})

		It("fails when a selector matches nothing", func() {
			root.SetArgs([]string{"priority", "--track", "beta", "--priority", "4", "--select", "status:halted"})
			Expect(root.Execute()).To(HaveOccurred())
			Expect(playService.CommittedEdits()).To(BeZero())
			Expect(fakePublisher.PublishCallCount()).To(BeZero())
		})
	})

	It("fails when the app can't be set up", func() {
		buildErr = errors.New("broker unreachable")

		root.SetArgs([]string{"tracks"})
		err := root.Execute()
		Expect(errors.Is(err, buildErr)).To(BeTrue())
		Expect(playService.Calls).To(BeEmpty())
	})

	It("rejects an unknown environment", func() {
		root.SetArgs([]string{"tracks", "--environment", "staging"})
		Expect(root.Execute()).To(HaveOccurred())
		Expect(playService.Calls).To(BeEmpty())
	})
})
