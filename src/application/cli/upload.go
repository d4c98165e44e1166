package cli

import (
	"play-release-tools/src/application/publish"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/application/release"
	"play-release-tools/src/lib/cerr"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/androidpublisher/v3"
)

func newUploadCommand(deps *dependencies) *cobra.Command {
	var (
		trackName   string
		bundle      string
		status      string
		priority    string
		releaseName string
		notes       []string
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload an app bundle and release it on a track",
		Example: "  play-release upload --track internal --bundle app/release/app-release.aab\n" +
			"  play-release upload --track beta --bundle gs://artifacts/app-release.aab --notes en-US='Bug fixes' --priority 4",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedPriority, err := strconv.ParseInt(priority, 10, 64)
			if err != nil {
				return cerr.Field("priority", priority).Wrap(err).Error("Priority must be a whole number")
			}

			releaseNotes, err := parseReleaseNotes(notes)
			if err != nil {
				return err
			}

			app, err := deps.app(cmd)
			if err != nil {
				return err
			}
			defer closeApp(app)

			ctx, stop := interruptible(cmd)
			result, err := app.BundleReleaser().ReleaseBundle(ctx, release.BundleRelease{
				PackageName:  app.Config.PackageName,
				Track:        trackName,
				ArtifactURL:  bundle,
				Status:       status,
				Priority:     parsedPriority,
				ReleaseName:  releaseName,
				ReleaseNotes: releaseNotes,
			})
			stop()
			if err != nil {
				return err
			}

			if result.Outcome != release.Committed {
				reportInterrupted(result)
				return nil
			}

			created := releaseAt(result)
			announce(app, publish.BundleReleasedType, publish.ReleaseEvent{
				PackageName:  app.Config.PackageName,
				Track:        trackName,
				EditID:       result.EditID,
				ReleaseName:  created.Name,
				Status:       created.Status,
				VersionCodes: created.VersionCodes,
				Priority:     created.InAppUpdatePriority,
			})

			return writeJSON(cmd.OutOrStdout(), result.Track)
		},
	}

	cmd.Flags().StringVar(&trackName, "track", "", "The track to release on")
	cmd.Flags().StringVar(&bundle, "bundle", "", "The .aab to upload: a local path, file://, gs:// or s3:// location")
	cmd.Flags().StringVar(&status, "status", string(entity.DraftStatus), "Status of the new release")
	cmd.Flags().StringVar(&priority, "priority", "0", "The update priority for the release, a value from 0-5")
	cmd.Flags().StringVar(&releaseName, "release-name", "", "Name of the new release")
	cmd.Flags().StringArrayVar(&notes, "notes", nil, "Release notes as <language>=<text>, repeatable")
	_ = cmd.MarkFlagRequired("track")
	_ = cmd.MarkFlagRequired("bundle")

	return cmd
}

func parseReleaseNotes(notes []string) ([]*androidpublisher.LocalizedText, error) {
	localized := []*androidpublisher.LocalizedText{}
	for _, note := range notes {
		language, text, found := strings.Cut(note, "=")
		if !found || language == "" {
			return nil, cerr.Field("notes", note).Error("Release notes must look like <language>=<text>")
		}

		localized = append(localized, &androidpublisher.LocalizedText{
			Language: language,
			Text:     text,
		})
	}

	return localized, nil
}
