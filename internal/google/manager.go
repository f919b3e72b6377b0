package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/worklog/agenda/internal/instrumentation"
	"github.com/worklog/agenda/internal/logging"
)

// TokenProvider is an interface for producing OAuth tokens.
// This abstraction allows different token sources (interactive browser
// flow, pre-provisioned tokens in server environments, fakes in tests).
type TokenProvider interface {
	// Token obtains an OAuth token. It may block on user interaction;
	// cancellation is via ctx.
	Token(ctx context.Context) (*oauth2.Token, error)
}

// Manager produces a valid, non-expired credential for each call.
//
// Resolution order: persisted token file (refreshed through the OAuth2
// token source when expired but refreshable), then the fallback provider.
// Any newly obtained or refreshed token is persisted back to TokenPath.
type Manager struct {
	conf      *oauth2.Config
	tokenPath string
	fallback  TokenProvider
	metrics   *instrumentation.Metrics
	logger    *slog.Logger
}

// NewManager creates a credential manager. fallback may be nil, in which
// case a missing or unrefreshable token is an error rather than a trigger
// for interactive authorization.
func NewManager(conf *oauth2.Config, tokenPath string, fallback TokenProvider) *Manager {
	return &Manager{
		conf:      conf,
		tokenPath: tokenPath,
		fallback:  fallback,
		logger:    slog.Default(),
	}
}

// SetMetrics attaches a metrics recorder for auth and refresh attempts.
func (m *Manager) SetMetrics(metrics *instrumentation.Metrics) {
	m.metrics = metrics
}

// Token returns a valid token, refreshing or re-authorizing as needed.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := LoadToken(m.tokenPath)
	if err == nil {
		if tok.Valid() {
			return tok, nil
		}

		if tok.RefreshToken != "" {
			fresh, refreshErr := m.refresh(ctx, tok)
			if refreshErr == nil {
				return fresh, nil
			}
			m.logger.Warn("token refresh failed, falling back to authorization flow",
				logging.Err(refreshErr))
		}
	}

	if m.fallback == nil {
		if err != nil {
			return nil, &AuthError{Op: "flow", Err: fmt.Errorf("no usable token at %s and no authorization flow configured: %w", m.tokenPath, err)}
		}
		return nil, &AuthError{Op: "flow", Err: fmt.Errorf("token at %s is expired and not refreshable", m.tokenPath)}
	}

	fresh, err := m.fallback.Token(ctx)
	if err != nil {
		m.metrics.RecordOAuthAuth(ctx, instrumentation.OAuthResultFailure)
		return nil, &AuthError{Op: "flow", Err: err}
	}
	m.metrics.RecordOAuthAuth(ctx, instrumentation.OAuthResultSuccess)

	if err := SaveToken(m.tokenPath, fresh); err != nil {
		return nil, &AuthError{Op: "persist", Err: err}
	}
	m.logger.Info("saved new token", "path", m.tokenPath)

	return fresh, nil
}

// refresh exchanges the refresh token for a new access token and persists
// the result.
func (m *Manager) refresh(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error) {
	fresh, err := m.conf.TokenSource(ctx, tok).Token()
	if err != nil {
		m.metrics.RecordOAuthTokenRefresh(ctx, instrumentation.OAuthResultFailure)
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	m.metrics.RecordOAuthTokenRefresh(ctx, instrumentation.OAuthResultSuccess)

	if err := SaveToken(m.tokenPath, fresh); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed token: %w", err)
	}
	m.logger.Debug("refreshed token", "path", m.tokenPath,
		"access_token", logging.SanitizeToken(fresh.AccessToken))

	return fresh, nil
}

// Client returns an HTTP client that authorizes requests with a token from
// this manager. The interactive flow may run here if no persisted token is
// usable.
func (m *Manager) Client(ctx context.Context) (*http.Client, error) {
	tok, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}
	return m.conf.Client(ctx, tok), nil
}
