package cli

import (
	"play-release-tools/src/application/release"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

func newTracksCommand(deps *dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "Print every track with its releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := deps.app(cmd)
			if err != nil {
				return err
			}
			defer closeApp(app)

			ctx, stop := interruptible(cmd)
			listing, err := app.TrackLister().ListTracks(ctx, app.Config.PackageName)
			stop()
			if err != nil {
				return err
			}

			if listing.Outcome == release.Cancelled {
				log.Warn("Interrupted")
				return nil
			}

			return writeJSON(cmd.OutOrStdout(), listing.Tracks)
		},
	}
}
