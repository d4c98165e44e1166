package auth

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	"google.golang.org/api/androidpublisher/v3"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	PublisherScope = androidpublisher.AndroidpublisherScope

	// out-of-band redirect: the consent page shows a code to paste back
	OutOfBandRedirectURL = "urn:ietf:wg:oauth:2.0:oob"
)

var ErrMissingClientSecrets = errors.New("client secrets file not found")

//counterfeiter:generate . Authorizer
type Authorizer interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}
