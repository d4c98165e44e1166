package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"play-release-tools/src/lib/cerr"
	"strings"

	"github.com/apex/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var _ Authorizer = InstalledAppAuthorizer{}

// CodePrompt returns early with the context's error when the context is
// cancelled while waiting for the operator.
type CodePrompt interface {
	AskCode(ctx context.Context, authURL string) (string, error)
}

type InstalledAppAuthorizer struct {
	secretsPath string
	redirectURL string
	prompt      CodePrompt
}

func NewInstalledAppAuthorizer(secretsPath string, redirectURL string, prompt CodePrompt) InstalledAppAuthorizer {
	if redirectURL == "" {
		redirectURL = OutOfBandRedirectURL
	}

	return InstalledAppAuthorizer{
		secretsPath: secretsPath,
		redirectURL: redirectURL,
		prompt:      prompt,
	}
}

func (i InstalledAppAuthorizer) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	errctx := cerr.Field("client_secrets", i.secretsPath)

	config, err := i.loadConfig()
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to load OAuth client configuration")
	}

	authURL := config.AuthCodeURL("state", oauth2.AccessTypeOffline)
	code, err := i.prompt.AskCode(ctx, authURL)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to read the authorization code")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to exchange the authorization code for a token")
	}

	log.Info("Authorized against the publishing API")

	return config.TokenSource(ctx, token), nil
}

func (i InstalledAppAuthorizer) loadConfig() (*oauth2.Config, error) {
	contents, err := os.ReadFile(i.secretsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cerr.Wrap(ErrMissingClientSecrets).Error(MissingSecretsGuidance(i.secretsPath))
	}
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to read client secrets file")
	}

	config, err := google.ConfigFromJSON(contents, PublisherScope)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to parse client secrets file")
	}

	config.RedirectURL = i.redirectURL
	return config, nil
}

func MissingSecretsGuidance(path string) string {
	return fmt.Sprintf("Download the OAuth client secrets for an installed application from the Google Cloud console and save them as %s", path)
}

var _ CodePrompt = ConsolePrompt{}

// ConsolePrompt prints the consent URL and reads the pasted code from a line of input.
type ConsolePrompt struct {
	In  io.Reader
	Out io.Writer
}

type consoleLine struct {
	text string
	err  error
}

// AskCode stops waiting when ctx is cancelled. The pending read is left
// behind; the process is expected to exit soon after.
func (c ConsolePrompt) AskCode(ctx context.Context, authURL string) (string, error) {
	_, err := fmt.Fprintf(c.Out, "Open the following URL in a browser, sign in and paste the code it gives back:\n\n%s\n\nCode: ", authURL)
	if err != nil {
		return "", cerr.Wrap(err).Error("Failed to print the authorization URL")
	}

	lines := make(chan consoleLine, 1)
	go func() {
		text, err := bufio.NewReader(c.In).ReadString('\n')
		lines <- consoleLine{text: text, err: err}
	}()

	var line consoleLine
	select {
	case <-ctx.Done():
		return "", cerr.Wrap(ctx.Err()).Error("Stopped waiting for the authorization code")
	case line = <-lines:
	}

	if line.err != nil && !(errors.Is(line.err, io.EOF) && line.text != "") {
		return "", cerr.Wrap(line.err).Error("Failed to read from console")
	}

	code := strings.TrimSpace(line.text)
	if code == "" {
		return "", cerr.Error("No authorization code was entered")
	}

	return code, nil
}
