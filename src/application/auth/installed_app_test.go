package auth_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"play-release-tools/src/application/auth"
	"strings"

	"github.com/onsi/gomega/gbytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstalledAppAuthorizer", func() {
	var (
		secretsDir  string
		secretsPath string

		tokenServer   *httptest.Server
		exchangedCode string

		consoleOut *bytes.Buffer
		consoleIn  string

		authorizer auth.InstalledAppAuthorizer
	)

	BeforeEach(func() {
		var err error
		secretsDir, err = os.MkdirTemp("", "client-secrets")
		Expect(err).NotTo(HaveOccurred())
		secretsPath = filepath.Join(secretsDir, "client_secrets.json")

		exchangedCode = ""
		tokenServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.ParseForm()).To(Succeed())
			exchangedCode = r.PostForm.Get("code")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
		}))

		consoleOut = &bytes.Buffer{}
		consoleIn = "pasted-code\n"
	})

	AfterEach(func() {
		tokenServer.Close()
		_ = os.RemoveAll(secretsDir)
	})

	JustBeforeEach(func() {
		prompt := auth.ConsolePrompt{
			In:  strings.NewReader(consoleIn),
			Out: consoleOut,
		}
		authorizer = auth.NewInstalledAppAuthorizer(secretsPath, "", prompt)
	})

	Describe("Client secrets file is missing", func() {
		It("fails with the missing secrets error", func() {
			_, err := authorizer.TokenSource(context.Background())
			Expect(errors.Is(err, auth.ErrMissingClientSecrets)).To(BeTrue())
		})

		It("tells the operator where to put the file", func() {
			_, err := authorizer.TokenSource(context.Background())
			Expect(err.Error()).To(ContainSubstring(secretsPath))
		})

		It("never prompts", func() {
			_, _ = authorizer.TokenSource(context.Background())
			Expect(consoleOut.Len()).To(BeZero())
		})
	})

	Describe("Client secrets file is present", func() {
		BeforeEach(func() {
			secrets := fmt.Sprintf(`{"installed":{
				"client_id":"client-id",
				"client_secret":"client-secret",
				"auth_uri":"https://accounts.example.com/auth",
				"token_uri":"%s/token",
				"redirect_uris":["urn:ietf:wg:oauth:2.0:oob"]
			}}`, tokenServer.URL)

			err := os.WriteFile(secretsPath, []byte(secrets), 0o600)
			Expect(err).NotTo(HaveOccurred())
		})

		It("shows the consent URL for the publisher scope", func() {
			_, err := authorizer.TokenSource(context.Background())
			Expect(err).NotTo(HaveOccurred())

			Expect(consoleOut.String()).To(ContainSubstring("https://accounts.example.com/auth"))
			Expect(consoleOut.String()).To(ContainSubstring("client_id=client-id"))
			Expect(consoleOut.String()).To(ContainSubstring("androidpublisher"))
		})

		It("exchanges the pasted code for a token", func() {
			tokenSource, err := authorizer.TokenSource(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(exchangedCode).To(Equal("pasted-code"))

			token, err := tokenSource.Token()
			Expect(err).NotTo(HaveOccurred())
			Expect(token.AccessToken).To(Equal("access-123"))
		})

		Describe("Interrupted while waiting for the code", func() {
			var (
				consoleWriter *io.PipeWriter
				tokenErr      chan error
			)

			BeforeEach(func() {
				tokenErr = make(chan error, 1)
			})

			AfterEach(func() {
				if consoleWriter != nil {
					_ = consoleWriter.Close()
				}
			})

			It("stops waiting and returns the cancellation", func() {
				var consoleReader *io.PipeReader
				consoleReader, consoleWriter = io.Pipe()
				prompted := gbytes.NewBuffer()
				waitingAuthorizer := auth.NewInstalledAppAuthorizer(secretsPath, "", auth.ConsolePrompt{
					In:  consoleReader,
					Out: prompted,
				})

				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()

				go func() {
					_, err := waitingAuthorizer.TokenSource(ctx)
					tokenErr <- err
				}()

				Eventually(prompted).Should(gbytes.Say("Code: "))
				Consistently(tokenErr, "100ms").ShouldNot(Receive())

				cancel()

				var err error
				Eventually(tokenErr, "2s").Should(Receive(&err))
				Expect(errors.Is(err, context.Canceled)).To(BeTrue())
				Expect(exchangedCode).To(BeEmpty())
			})
		})

		Describe("Nothing is pasted", func() {
			BeforeEach(func() {
				consoleIn = "\n"
			})

			It("fails without contacting the token endpoint", func() {
				_, err := authorizer.TokenSource(context.Background())
				Expect(err).To(HaveOccurred())
				Expect(exchangedCode).To(BeEmpty())
			})
		})
	})

	Describe("Client secrets file is not valid", func() {
		BeforeEach(func() {
			err := os.WriteFile(secretsPath, []byte("not json"), 0o600)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails without the missing secrets error", func() {
			_, err := authorizer.TokenSource(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, auth.ErrMissingClientSecrets)).To(BeFalse())
		})
	})
})

var _ = Describe("ServiceAccountAuthorizer", func() {
	It("rejects a malformed key", func() {
		_, err := auth.NewServiceAccountAuthorizer("{").TokenSource(context.Background())
		Expect(err).To(HaveOccurred())
	})
})
