package auth

import (
	"context"
	"play-release-tools/src/lib/cerr"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var _ Authorizer = ServiceAccountAuthorizer{}

// ServiceAccountAuthorizer is the non-interactive alternative, for service
// accounts invited to the Play Console.
type ServiceAccountAuthorizer struct {
	jsonKey string
}

func NewServiceAccountAuthorizer(jsonKey string) ServiceAccountAuthorizer {
	return ServiceAccountAuthorizer{
		jsonKey: jsonKey,
	}
}

func (s ServiceAccountAuthorizer) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	credentials, err := google.CredentialsFromJSON(ctx, []byte(s.jsonKey), PublisherScope)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to parse service account key")
	}

	return credentials.TokenSource, nil
}
