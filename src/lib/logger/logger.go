package logger

import (
	"io"
	"play-release-tools/src/lib/cerr"
	"play-release-tools/src/lib/env"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
)

// Setup points the package level apex logger at w: human readable output in
// development, one JSON object per line in production.
func Setup(environment env.Environment, level string, w io.Writer) error {
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		return cerr.Field("log_level", level).Wrap(err).Error("Invalid log level")
	}

	switch environment {
	case env.Development:
		log.SetHandler(cli.New(w))
	default:
		log.SetHandler(json.New(w))
	}

	log.SetLevel(parsedLevel)
	return nil
}
