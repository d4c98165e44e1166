package env

import (
	"play-release-tools/src/lib/cerr"
	"strings"
)

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

// Parse defaults to Production when no environment is given.
func Parse(value string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(value))) {
	case "", Production:
		return Production, nil
	case Development:
		return Development, nil
	default:
		return "", cerr.Field("environment", value).Error("Invalid environment is set")
	}
}
