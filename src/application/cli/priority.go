package cli

import (
	"play-release-tools/src/application/publish"
	"play-release-tools/src/application/release"
	"play-release-tools/src/lib/cerr"
	"strconv"

	"github.com/spf13/cobra"
)

func newPriorityCommand(deps *dependencies) *cobra.Command {
	var (
		trackName string
		priority  string
		selection string
	)

	cmd := &cobra.Command{
		Use:   "priority",
		Short: "Set the in-app update priority of a release on a track",
		Example: "  play-release priority --track internal --priority 3\n" +
			"  play-release priority --track production --priority 5 --select version-code:36",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// range checks are left to the publishing API
			parsedPriority, err := strconv.ParseInt(priority, 10, 64)
			if err != nil {
				return cerr.Field("priority", priority).Wrap(err).Error("Priority must be a whole number")
			}

			selector, err := release.ParseSelector(selection)
			if err != nil {
				return err
			}

			app, err := deps.app(cmd)
			if err != nil {
				return err
			}
			defer closeApp(app)

			ctx, stop := interruptible(cmd)
			result, err := app.PriorityUpdater().UpdatePriority(ctx, release.PriorityUpdate{
				PackageName: app.Config.PackageName,
				Track:       trackName,
				Priority:    parsedPriority,
				Selector:    selector,
			})
			stop()
			if err != nil {
				return err
			}

			if result.Outcome != release.Committed {
				reportInterrupted(result)
				return nil
			}

			updated := releaseAt(result)
			announce(app, publish.PriorityUpdatedType, publish.ReleaseEvent{
				PackageName:  app.Config.PackageName,
				Track:        trackName,
				EditID:       result.EditID,
				ReleaseName:  updated.Name,
				Status:       updated.Status,
				VersionCodes: updated.VersionCodes,
				Priority:     updated.InAppUpdatePriority,
			})

			return writeJSON(cmd.OutOrStdout(), result.Track)
		},
	}

	cmd.Flags().StringVar(&trackName, "track", "", "The track the release is on, one of [internal, alpha, beta, production] or a custom track")
	cmd.Flags().StringVar(&priority, "priority", "", "The update priority for the release, a value from 0-5")
	cmd.Flags().StringVar(&selection, "select", "first", "Release to modify: first, index:<n>, version-code:<code>, status:<status> or name:<name>")
	_ = cmd.MarkFlagRequired("track")
	_ = cmd.MarkFlagRequired("priority")

	return cmd
}
