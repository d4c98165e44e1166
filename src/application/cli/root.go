package cli

import (
	"context"
	"os"
	"os/signal"
	"play-release-tools/src/application"
	"play-release-tools/src/application/config"
	"play-release-tools/src/lib/cerr"
	"play-release-tools/src/lib/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type AppBuilder func(cfg config.Config, console application.Console) (application.App, error)

type dependencies struct {
	build      AppBuilder
	viper      *viper.Viper
	configFile string
}

func NewRootCommand(build AppBuilder) *cobra.Command {
	deps := &dependencies{
		build: build,
		viper: config.NewViper(),
	}

	root := &cobra.Command{
		Use:           "play-release",
		Short:         "Maintain Google Play release tracks",
		Long:          "Update in-app update priorities, upload bundles and inspect release tracks through the Google Play Developer API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&deps.configFile, "config", "", "YAML config file")
	flags.String("package-name", config.DefaultPackageName, "Application package name")
	flags.String("client-secrets", config.DefaultClientSecrets, "OAuth client secrets file of an installed application")
	flags.String("environment", "production", "One of [production, development]")
	flags.String("log-level", config.DefaultLogLevel, "One of [debug, info, warn, error, fatal]")

	for key, flag := range map[string]string{
		config.PackageNameKey:   "package-name",
		config.ClientSecretsKey: "client-secrets",
		config.EnvironmentKey:   "environment",
		config.LogLevelKey:      "log-level",
	} {
		_ = deps.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newPriorityCommand(deps),
		newUploadCommand(deps),
		newTracksCommand(deps),
	)

	return root
}

// app loads the configuration, sets up logging and builds the collaborators.
// The caller closes the returned App.
func (d *dependencies) app(cmd *cobra.Command) (application.App, error) {
	cfg, err := config.Load(d.viper, d.configFile)
	if err != nil {
		return application.App{}, err
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return application.App{}, err
	}

	app, err := d.build(cfg, application.Console{
		In:  cmd.InOrStdin(),
		Out: cmd.ErrOrStderr(),
	})
	if err != nil {
		return application.App{}, cerr.Wrap(err).Error("Failed to set up")
	}

	return app, nil
}

// interruptible scopes the interrupt signal to one workflow run. An interrupt
// cancels the returned context instead of killing the process.
func interruptible(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	return signal.NotifyContext(parent, os.Interrupt)
}
