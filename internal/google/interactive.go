package google

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"
)

// oauthState is the CSRF token for the local callback exchange. The
// listener binds an ephemeral loopback port, so a fixed value is
// sufficient here.
const oauthState = "state-token"

// BrowserFlow performs the interactive installed-app authorization flow:
// it binds a local callback listener on an ephemeral port, opens the
// consent page in a browser, and exchanges the returned authorization code
// for a token. Token blocks until the user completes or denies consent, or
// ctx is cancelled.
type BrowserFlow struct {
	Conf   *oauth2.Config
	Logger *slog.Logger

	// OpenURL opens the consent URL; defaults to the platform browser.
	// Replaceable in tests.
	OpenURL func(url string) error
}

// NewBrowserFlow creates a browser-based interactive flow for conf.
func NewBrowserFlow(conf *oauth2.Config) *BrowserFlow {
	return &BrowserFlow{
		Conf:    conf,
		Logger:  slog.Default(),
		OpenURL: openBrowser,
	}
}

// Token runs the flow once and returns the obtained token.
func (f *BrowserFlow) Token(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to bind local callback listener: %w", err)
	}

	// The redirect URL must carry the ephemeral port the listener chose.
	conf := *f.Conf
	conf.RedirectURL = fmt.Sprintf("http://%s/oauth/callback", ln.Addr().String())

	tokenChan := make(chan *oauth2.Token, 1)
	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/callback", func(w http.ResponseWriter, r *http.Request) {
		if state := r.URL.Query().Get("state"); state != oauthState {
			errChan <- fmt.Errorf("state mismatch in callback")
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			http.Error(w, "missing authorization code", http.StatusBadRequest)
			return
		}

		token, err := conf.Exchange(r.Context(), code)
		if err != nil {
			errChan <- fmt.Errorf("failed to exchange auth code: %w", err)
			http.Error(w, "code exchange failed", http.StatusInternalServerError)
			return
		}

		fmt.Fprint(w, "Authorization successful! You can close this window.")
		tokenChan <- token
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(ln); err != http.ErrServerClosed {
			errChan <- err
		}
	}()
	defer func() { _ = server.Shutdown(context.Background()) }()

	authURL := conf.AuthCodeURL(oauthState, oauth2.AccessTypeOffline)

	f.Logger.Info("opening browser for Google authorization")
	fmt.Printf("If the browser doesn't open, visit this URL:\n%s\n", authURL)

	if f.OpenURL != nil {
		if err := f.OpenURL(authURL); err != nil {
			f.Logger.Warn("could not open browser", "error", err)
		}
	}

	select {
	case token := <-tokenChan:
		return token, nil
	case err := <-errChan:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// openBrowser opens url in the platform default browser.
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	return exec.Command(cmd, args...).Start()
}
