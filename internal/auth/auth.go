// package auth implements the optional Google sign-in used by the
// settings menu. Playback and search work without an account; signing in
// only attaches an identity for future sync features.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clickpod/clickpod/internal/models"
	"github.com/clickpod/clickpod/internal/server"
	"github.com/clickpod/clickpod/internal/shared"
	"golang.org/x/oauth2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// flowTimeout bounds how long SignIn waits for the browser callback.
const flowTimeout = 2 * time.Minute

// Authenticator drives the authorization code flow against Google and
// holds the resulting identity in memory.
type Authenticator struct {
	config     *oauth2.Config
	listenAddr string
	httpClient *http.Client
	logger     *log.Logger

	mu    sync.Mutex
	token *oauth2.Token
	user  *models.User
}

// NewAuthenticator creates an Authenticator from the credentials section
// of the configuration.
func NewAuthenticator(cfg shared.GoogleConfig, listenAddr string, client *http.Client, logger *log.Logger) (*Authenticator, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: google client credentials not configured", shared.ErrAuthFailed)
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Authenticator{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: oauth2.Endpoint{
				AuthURL:  googleAuthURL,
				TokenURL: googleTokenURL,
			},
		},
		listenAddr: listenAddr,
		httpClient: client,
		logger:     logger,
	}, nil
}

// SignIn runs the full authorization flow: start a temporary callback
// server, open the browser, wait for the redirect, exchange the code and
// fetch the user profile.
func (a *Authenticator) SignIn(ctx context.Context) (*models.User, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, err
	}

	handler := server.NewOAuthHandler(a.config, state)
	router := server.NewBasicRouter()
	router.Handler(handler)

	httpServer := server.New(a.listenAddr, router)
	serverErrors := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	authURL := a.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if err := shared.OpenBrowser(authURL); err != nil {
		a.logger.Warn("failed to open browser automatically", "err", err)
		a.logger.Info("open this URL to sign in", "url", authURL)
	}

	timeout := time.NewTimer(flowTimeout)
	defer timeout.Stop()

	var result server.OAuthResult
	select {
	case result = <-handler.Result():
	case err := <-serverErrors:
		return nil, fmt.Errorf("callback server error: %w", err)
	case <-timeout.C:
		a.shutdown(httpServer)
		return nil, fmt.Errorf("%w: authorization timed out", shared.ErrAuthFailed)
	case <-ctx.Done():
		a.shutdown(httpServer)
		return nil, ctx.Err()
	}

	a.shutdown(httpServer)

	if result.Error() != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, result.Error())
	}
	if result.Token == nil {
		return nil, fmt.Errorf("%w: no token received", shared.ErrAuthFailed)
	}

	user, err := a.fetchUser(ctx, result.Token)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.token = result.Token
	a.user = user
	a.mu.Unlock()

	a.logger.Info("signed in", "user", user.Name)
	return user, nil
}

// SignOut drops the stored identity. It is a no-op when signed out.
func (a *Authenticator) SignOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = nil
	a.user = nil
}

// Current returns the signed-in user, or nil.
func (a *Authenticator) Current() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (a *Authenticator) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token != nil
}

func (a *Authenticator) fetchUser(ctx context.Context, token *oauth2.Token) (*models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo returned status %d", shared.ErrAuthFailed, resp.StatusCode)
	}

	var payload struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return &models.User{ID: payload.ID, Name: payload.Name, Email: payload.Email}, nil
}

func (a *Authenticator) shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Warn("error shutting down callback server", "err", err)
	}
}
