package googleplay

import (
	"context"
	"play-release-tools/src/application/auth"
	"play-release-tools/src/application/publishing/entity"
	"play-release-tools/src/lib/cerr"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

var _ entity.SessionOpener = Opener{}

// Opener authorizes and builds a fresh client for every session, so no
// credentials or connections are shared between workflow runs.
type Opener struct {
	authorizer auth.Authorizer
	options    []option.ClientOption
}

func NewOpener(authorizer auth.Authorizer, options ...option.ClientOption) Opener {
	return Opener{
		authorizer: authorizer,
		options:    options,
	}
}

func (o Opener) Open(ctx context.Context) (entity.Client, error) {
	tokenSource, err := o.authorizer.TokenSource(ctx)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to authorize against the publishing API")
	}

	client, err := NewGooglePlayClient(ctx, oauth2.NewClient(ctx, tokenSource), o.options...)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to open publishing session")
	}

	return client, nil
}
